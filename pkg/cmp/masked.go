package cmp

import (
	"github.com/mennanov/fmutils"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/fieldmaskpb"
)

// WithinMask returns a Message that compares only the fields selected by
// mask, applying eq to masked copies of the operands. The operands
// themselves are never mutated. Mask paths follow the
// google.protobuf.FieldMask syntax, nested paths like "updated.seconds"
// included. A nil mask selects everything, returning eq unchanged.
func WithinMask(mask *fieldmaskpb.FieldMask, eq Message) Message {
	if mask == nil {
		return eq
	}
	return func(x, y proto.Message) bool {
		return eq(maskedClone(x, fmutils.Filter, mask), maskedClone(y, fmutils.Filter, mask))
	}
}

// IgnoringMask returns a Message that compares all fields except those
// selected by mask, applying eq to pruned copies of the operands. A nil
// mask ignores nothing, returning eq unchanged.
func IgnoringMask(mask *fieldmaskpb.FieldMask, eq Message) Message {
	if mask == nil {
		return eq
	}
	return func(x, y proto.Message) bool {
		return eq(maskedClone(x, fmutils.Prune, mask), maskedClone(y, fmutils.Prune, mask))
	}
}

func maskedClone(m proto.Message, apply func(proto.Message, []string), mask *fieldmaskpb.FieldMask) proto.Message {
	if m == nil {
		return nil
	}
	m = proto.Clone(m)
	apply(m, mask.GetPaths())
	return m
}
