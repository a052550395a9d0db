package config

import (
	"fmt"
	"math"
)

// Validator describes the legal shape of a configuration value: a pure
// predicate plus a human-readable description of what it accepts.
// Validators never mutate or coerce the candidate value.
type Validator struct {
	// Expected is the shape description reported in violations,
	// e.g. "a string" or "a list of strings".
	Expected string

	// Accept reports whether the value has the expected shape.
	Accept func(value interface{}) bool
}

// Built-in validators. Numeric predicates accept every Go numeric kind;
// values decoded from JSON arrive as float64, so integer checks also
// accept floats with no fractional part.
var (
	IsString = Validator{
		Expected: "a string",
		Accept:   func(v interface{}) bool { _, ok := v.(string); return ok },
	}

	IsNumber = Validator{
		Expected: "a number",
		Accept:   isNumeric,
	}

	IsInteger = Validator{
		Expected: "an integer",
		Accept:   isInteger,
	}

	IsBoolean = Validator{
		Expected: "a boolean",
		Accept:   func(v interface{}) bool { _, ok := v.(bool); return ok },
	}

	IsMap = Validator{
		Expected: "a map",
		Accept:   func(v interface{}) bool { return asMap(v) != nil },
	}

	// PowerOfTwo accepts positive integers n with n&(n-1) == 0.
	PowerOfTwo = Validator{
		Expected: "a positive power-of-two integer",
		Accept: func(v interface{}) bool {
			n, ok := integerValue(v)
			return ok && n > 0 && n&(n-1) == 0
		},
	}

	StringOrStringList = Validator{
		Expected: "a string or a list of strings",
		Accept: func(v interface{}) bool {
			if IsString.Accept(v) {
				return true
			}
			return ListOf(IsString).Accept(v)
		},
	}

	NumberOrNumberList = Validator{
		Expected: "a number or a list of numbers",
		Accept: func(v interface{}) bool {
			if isNumeric(v) {
				return true
			}
			return ListOf(IsNumber).Accept(v)
		},
	}

	// SerializationEntry accepts one serialization registration: either a
	// bare class identifier, or a single-pair map from class identifier to
	// serializer identifier.
	SerializationEntry = Validator{
		Expected: "a class identifier or a {class: serializer} pair",
		Accept: func(v interface{}) bool {
			if IsString.Accept(v) {
				return true
			}
			m := asMap(v)
			if len(m) != 1 {
				return false
			}
			for _, serializer := range m {
				if !IsString.Accept(serializer) {
					return false
				}
			}
			return true
		},
	}

	// MetricsConsumerEntry accepts one metrics-consumer registration
	// record. The argument field is opaque and may be anything, nil
	// included, but class and parallelism.hint are mandatory.
	MetricsConsumerEntry = Validator{
		Expected: "a {class, parallelism.hint, argument} record",
		Accept: func(v interface{}) bool {
			m := asMap(v)
			if m == nil {
				return false
			}
			class, ok := m["class"]
			if !ok || !IsString.Accept(class) {
				return false
			}
			hint, ok := m["parallelism.hint"]
			if !ok || !isInteger(hint) {
				return false
			}
			for field := range m {
				if field != "class" && field != "parallelism.hint" && field != "argument" {
					return false
				}
			}
			return true
		},
	}
)

// ListOf builds a validator accepting a sequence whose every element
// satisfies elem. An empty list is accepted.
func ListOf(elem Validator) Validator {
	return Validator{
		Expected: fmt.Sprintf("a list where each element is %s", elem.Expected),
		Accept: func(v interface{}) bool {
			seq, ok := asList(v)
			if !ok {
				return false
			}
			for _, e := range seq {
				if !elem.Accept(e) {
					return false
				}
			}
			return true
		},
	}
}

func isNumeric(v interface{}) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}

func isInteger(v interface{}) bool {
	_, ok := integerValue(v)
	return ok
}

// integerValue extracts an int64 from any numeric value that carries no
// fractional part.
func integerValue(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	case float32:
		if float64(n) == math.Trunc(float64(n)) {
			return int64(n), true
		}
	case float64:
		if n == math.Trunc(n) {
			return int64(n), true
		}
	}
	return 0, false
}

// asMap normalizes the map representations produced by the YAML and JSON
// decoders to map[string]interface{}. Returns nil if v is not a map or has
// a non-string key.
func asMap(v interface{}) map[string]interface{} {
	switch m := v.(type) {
	case map[string]interface{}:
		return m
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(m))
		for k, val := range m {
			s, ok := k.(string)
			if !ok {
				return nil
			}
			out[s] = val
		}
		return out
	}
	return nil
}

func asList(v interface{}) ([]interface{}, bool) {
	seq, ok := v.([]interface{})
	return seq, ok
}

// typeName tags a value for violation messages.
func typeName(v interface{}) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
