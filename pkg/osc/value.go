package osc

import (
	"encoding/json"
	"errors"
	"fmt"

	goosc "github.com/hypebeast/go-osc/osc"
)

// ErrUnsupportedArgument is returned by FromArgument for argument types
// that have no OSC type tag.
var ErrUnsupportedArgument = errors.New("unsupported OSC argument type")

// Value is one typed OSC argument. The set of implementations is closed:
// every variant maps to exactly one OSC type tag character (except Bool,
// which maps to "T" or "F" depending on its value).
type Value interface {
	json.Marshaler

	// TypeTag returns the single type tag character for this value.
	TypeTag() string
}

// Int is a 32-bit integer, tag "i".
type Int int32

// Long is a 64-bit integer, tag "l".
type Long int64

// Float is a 32-bit float, tag "f".
type Float float32

// Double is a 64-bit float, tag "d".
type Double float64

// String is an OSC string, tag "s".
type String string

// Blob is an opaque byte sequence, tag "b".
type Blob []byte

// Char is a single character, tag "c".
type Char rune

// Bool is an OSC boolean, tag "T" when true and "F" when false.
type Bool bool

// TimeTag is an OSC time tag (NTP format), tag "t".
type TimeTag uint64

// Nil is the OSC nil value, tag "N".
type Nil struct{}

// Impulse is the OSC impulse (infinitum) value, tag "I".
type Impulse struct{}

func (Int) TypeTag() string     { return "i" }
func (Long) TypeTag() string    { return "l" }
func (Float) TypeTag() string   { return "f" }
func (Double) TypeTag() string  { return "d" }
func (String) TypeTag() string  { return "s" }
func (Blob) TypeTag() string    { return "b" }
func (Char) TypeTag() string    { return "c" }
func (TimeTag) TypeTag() string { return "t" }
func (Nil) TypeTag() string     { return "N" }
func (Impulse) TypeTag() string { return "I" }

// TypeTag returns "T" for true and "F" for false.
func (b Bool) TypeTag() string {
	if b {
		return "T"
	}
	return "F"
}

// MarshalJSON encodes the value as a JSON number.
func (v Int) MarshalJSON() ([]byte, error) { return json.Marshal(int32(v)) }

// MarshalJSON encodes the value as a JSON number.
func (v Long) MarshalJSON() ([]byte, error) { return json.Marshal(int64(v)) }

// MarshalJSON encodes the value as a JSON number.
func (v Float) MarshalJSON() ([]byte, error) { return json.Marshal(float32(v)) }

// MarshalJSON encodes the value as a JSON number.
func (v Double) MarshalJSON() ([]byte, error) { return json.Marshal(float64(v)) }

// MarshalJSON encodes the value as a JSON string.
func (v String) MarshalJSON() ([]byte, error) { return json.Marshal(string(v)) }

// MarshalJSON encodes the blob as an array of byte values.
// encoding/json would base64-encode a []byte, which is not what
// OSCQuery clients expect.
func (v Blob) MarshalJSON() ([]byte, error) {
	nums := make([]uint16, len(v))
	for i, b := range v {
		nums[i] = uint16(b)
	}
	return json.Marshal(nums)
}

// MarshalJSON encodes the character as a one-rune JSON string.
func (v Char) MarshalJSON() ([]byte, error) { return json.Marshal(string(rune(v))) }

// MarshalJSON encodes the value as a JSON boolean.
func (v Bool) MarshalJSON() ([]byte, error) { return json.Marshal(bool(v)) }

// MarshalJSON encodes the raw NTP time tag as a JSON number.
func (v TimeTag) MarshalJSON() ([]byte, error) { return json.Marshal(uint64(v)) }

// MarshalJSON encodes nil as JSON null.
func (Nil) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// MarshalJSON encodes impulse as JSON null.
func (Impulse) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// TypeTagOf concatenates the type tags of values, e.g. "ff" for two floats.
func TypeTagOf(values []Value) string {
	tags := make([]byte, 0, len(values))
	for _, v := range values {
		tags = append(tags, v.TypeTag()[0])
	}
	return string(tags)
}

// FromArgument converts a message argument decoded by hypebeast/go-osc
// into a Value. go-osc decodes OSC arguments as untyped any values, so
// this is the single place where its concrete types are mapped back onto
// the tagged variants.
func FromArgument(arg any) (Value, error) {
	switch a := arg.(type) {
	case int32:
		return Int(a), nil
	case int64:
		return Long(a), nil
	case float32:
		return Float(a), nil
	case float64:
		return Double(a), nil
	case string:
		return String(a), nil
	case []byte:
		return Blob(a), nil
	case bool:
		return Bool(a), nil
	case goosc.Timetag:
		return TimeTag(a.TimeTag()), nil
	case *goosc.Timetag:
		return TimeTag(a.TimeTag()), nil
	case nil:
		return Nil{}, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedArgument, arg)
	}
}
