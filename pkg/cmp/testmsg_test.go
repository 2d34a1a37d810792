package cmp

import (
	"time"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	pref "google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// readingType is a dynamic message type the tests compare instances of.
// Building it at runtime saves generating a test proto while still walking
// the same protoreflect surface generated code does:
//
//	message Reading {
//	  double value = 1;
//	  float ratio = 2;
//	  repeated double samples = 3;
//	  google.protobuf.Timestamp recorded = 4;
//	  google.protobuf.Duration window = 5;
//	  string name = 6;
//	  Reading previous = 7;
//	}
var readingType = func() pref.MessageType {
	scalar := func(num int32, name string, typ descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
		return &descriptorpb.FieldDescriptorProto{
			Name:   proto.String(name),
			Number: proto.Int32(num),
			Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
			Type:   typ.Enum(),
		}
	}
	message := func(num int32, name, typeName string) *descriptorpb.FieldDescriptorProto {
		f := scalar(num, name, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE)
		f.TypeName = proto.String(typeName)
		return f
	}
	samples := scalar(3, "samples", descriptorpb.FieldDescriptorProto_TYPE_DOUBLE)
	samples.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()

	file, err := protodesc.NewFile(&descriptorpb.FileDescriptorProto{
		Name:    proto.String("cmp_test_reading.proto"),
		Package: proto.String("cmp.test"),
		Syntax:  proto.String("proto3"),
		Dependency: []string{
			"google/protobuf/timestamp.proto",
			"google/protobuf/duration.proto",
		},
		MessageType: []*descriptorpb.DescriptorProto{{
			Name: proto.String("Reading"),
			Field: []*descriptorpb.FieldDescriptorProto{
				scalar(1, "value", descriptorpb.FieldDescriptorProto_TYPE_DOUBLE),
				scalar(2, "ratio", descriptorpb.FieldDescriptorProto_TYPE_FLOAT),
				samples,
				message(4, "recorded", ".google.protobuf.Timestamp"),
				message(5, "window", ".google.protobuf.Duration"),
				scalar(6, "name", descriptorpb.FieldDescriptorProto_TYPE_STRING),
				message(7, "previous", ".cmp.test.Reading"),
			},
		}},
	}, protoregistry.GlobalFiles)
	if err != nil {
		panic(err)
	}
	return dynamicpb.NewMessageType(file.Messages().Get(0))
}()

var readingFields = readingType.Descriptor().Fields()

type readingOpt func(m pref.Message)

func reading(opts ...readingOpt) proto.Message {
	m := readingType.New()
	for _, opt := range opts {
		opt(m)
	}
	return m.Interface()
}

func value(f float64) readingOpt {
	return func(m pref.Message) {
		m.Set(readingFields.ByName("value"), pref.ValueOfFloat64(f))
	}
}

func ratio(f float32) readingOpt {
	return func(m pref.Message) {
		m.Set(readingFields.ByName("ratio"), pref.ValueOfFloat32(f))
	}
}

func samples(fs ...float64) readingOpt {
	return func(m pref.Message) {
		list := m.Mutable(readingFields.ByName("samples")).List()
		for _, f := range fs {
			list.Append(pref.ValueOfFloat64(f))
		}
	}
}

func recorded(secs int64, nanos int) readingOpt {
	return func(m pref.Message) {
		ts := timestamppb.New(time.Unix(secs, int64(nanos)))
		m.Set(readingFields.ByName("recorded"), pref.ValueOfMessage(ts.ProtoReflect()))
	}
}

func window(d time.Duration) readingOpt {
	return func(m pref.Message) {
		m.Set(readingFields.ByName("window"), pref.ValueOfMessage(durationpb.New(d).ProtoReflect()))
	}
}

func name(s string) readingOpt {
	return func(m pref.Message) {
		m.Set(readingFields.ByName("name"), pref.ValueOfString(s))
	}
}

func previous(r proto.Message) readingOpt {
	return func(m pref.Message) {
		m.Set(readingFields.ByName("previous"), pref.ValueOfMessage(r.ProtoReflect()))
	}
}

// Short fixture constructors, named for the field they set.

func fa(f float64) proto.Message { return reading(value(f)) }

func fr(f float32) proto.Message { return reading(ratio(f)) }

func tv(secs int64, nanos int) proto.Message { return reading(recorded(secs, nanos)) }

func dv(d time.Duration) proto.Message { return reading(window(d)) }

func tf(secs int64, nanos int, f float64) proto.Message {
	return reading(recorded(secs, nanos), value(f))
}
