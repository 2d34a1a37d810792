package cmp

import (
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"
)

// Logged returns eq wrapped to record a Debug entry on logger each time a
// comparison finds the messages differ. Handy for working out why an
// equivalence check upstream of a dedup or change notification let a value
// through. Equal comparisons log nothing.
func Logged(logger *zap.Logger, eq Message) Message {
	return func(x, y proto.Message) bool {
		equal := eq(x, y)
		if !equal {
			logger.Debug("messages differ",
				zap.String("type", messageName(x)),
				zap.Any("x", x),
				zap.Any("y", y),
			)
		}
		return equal
	}
}

func messageName(m proto.Message) string {
	if m == nil {
		return ""
	}
	return string(m.ProtoReflect().Descriptor().FullName())
}
