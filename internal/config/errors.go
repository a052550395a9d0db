package config

import "fmt"

// SchemaViolation reports a recognized key whose value does not satisfy the
// key's validator. It carries enough context for the submitter to fix the
// value without consulting the cluster.
type SchemaViolation struct {
	Key      string
	Expected string
	Value    interface{}
}

func (e *SchemaViolation) Error() string {
	return fmt.Sprintf("config key %q: expected %s, got %s (%v)",
		e.Key, e.Expected, typeName(e.Value), summarize(e.Value))
}

// MalformedEntry reports an accumulator entry rejected at append time,
// naming the offending field.
type MalformedEntry struct {
	Key    string
	Field  string
	Reason string
}

func (e *MalformedEntry) Error() string {
	return fmt.Sprintf("config key %q: malformed entry: field %q %s", e.Key, e.Field, e.Reason)
}

// summarize keeps violation messages readable for large nested values.
func summarize(v interface{}) string {
	s := fmt.Sprintf("%v", v)
	if len(s) > 120 {
		s = s[:117] + "..."
	}
	return s
}
