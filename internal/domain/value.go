package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ValueKind identifies which member of a Value is set
type ValueKind uint8

const (
	KindNull ValueKind = iota
	KindString
	KindInt
	KindFloat
	KindBool
)

// Value is a closed scalar used in analytics properties: a string, a number or a bool.
// The zero Value is null.
type Value struct {
	kind ValueKind
	s    string
	i    int64
	f    float64
	b    bool
}

// Properties is a flat property map attached to analytics events
type Properties map[string]Value

func StringValue(s string) Value { return Value{kind: KindString, s: s} }
func IntValue(i int) Value { return Value{kind: KindInt, i: int64(i)} }
func Int64Value(i int64) Value { return Value{kind: KindInt, i: i} }
func FloatValue(f float64) Value { return Value{kind: KindFloat, f: f} }
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }
func (v Value) Kind() ValueKind { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsString returns the string member if the value holds a string
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == KindString
}

// AsInt returns the integer member if the value holds an integer
func (v Value) AsInt() (int64, bool) {
	return v.i, v.kind == KindInt
}

// AsFloat returns the value as a float for either numeric kind
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	}
	return 0, false
}

// AsBool returns the bool member if the value holds a bool
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// Interface returns the underlying Go value, nil for null
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindBool:
		return v.b
	}
	return nil
}

func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	}
	return ""
}

// MarshalJSON encodes the value as its natural JSON scalar
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// UnmarshalJSON accepts a JSON string, number, bool or null.
// Numbers without a fraction or exponent decode as integers.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	switch t := raw.(type) {
	case nil:
		*v = Value{}
	case string:
		*v = StringValue(t)
	case bool:
		*v = BoolValue(t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			*v = Int64Value(i)
			return nil
		}
		f, err := t.Float64()
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidInput, t.String())
		}
		*v = FloatValue(f)
	default:
		return fmt.Errorf("%w: property values must be scalar", ErrInvalidInput)
	}
	return nil
}

// Clone returns a shallow copy of the property map
func (p Properties) Clone() Properties {
	out := make(Properties, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Merge copies every entry of other into p, overwriting existing keys
func (p Properties) Merge(other Properties) Properties {
	if p == nil {
		p = make(Properties, len(other))
	}
	for k, v := range other {
		p[k] = v
	}
	return p
}
