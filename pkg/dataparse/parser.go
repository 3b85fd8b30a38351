// Package dataparse infers the native type of an untyped query-parameter
// string so equality filters can target the value the document store
// actually holds. A filter built with the wrong native type silently
// matches zero documents instead of erroring, so the trial order below is
// part of the contract.
package dataparse

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind identifies which variant of Value is populated.
type Kind int

const (
	KindString Kind = iota
	KindTime
	KindUUID
	KindBool
	KindInt32
	KindInt64
)

func (k Kind) String() string {
	switch k {
	case KindTime:
		return "time"
	case KindUUID:
		return "uuid"
	case KindBool:
		return "bool"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	default:
		return "string"
	}
}

// Value is a tagged variant holding exactly one native representation.
type Value struct {
	Kind  Kind
	Time  time.Time
	UUID  uuid.UUID
	Bool  bool
	Int32 int32
	Int64 int64
	Str   string
}

// timeLayouts are the formats the HTTP boundary actually emits. Probed in
// order; the first match wins.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Parse converts the string representation of a value to its native type.
// Candidates are tried in fixed order: date-time, UUID, bool, int32,
// int64, and finally the string itself. Parse never fails; a value that
// matches no candidate is a string.
//
// Bool accepts only "true" and "false" (case-insensitive) so that "1" and
// "0" remain integers.
func Parse(s string) Value {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Value{Kind: KindTime, Time: t}
		}
	}

	if id, err := uuid.Parse(s); err == nil {
		return Value{Kind: KindUUID, UUID: id}
	}

	switch strings.ToLower(s) {
	case "true":
		return Value{Kind: KindBool, Bool: true}
	case "false":
		return Value{Kind: KindBool, Bool: false}
	}

	if n, err := strconv.ParseInt(s, 10, 32); err == nil {
		return Value{Kind: KindInt32, Int32: int32(n)}
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Value{Kind: KindInt64, Int64: n}
	}

	return Value{Kind: KindString, Str: s}
}

// Interface returns the populated variant as the value to hand to the
// store's filter builder.
func (v Value) Interface() interface{} {
	switch v.Kind {
	case KindTime:
		return v.Time
	case KindUUID:
		return v.UUID
	case KindBool:
		return v.Bool
	case KindInt32:
		return v.Int32
	case KindInt64:
		return v.Int64
	default:
		return v.Str
	}
}
