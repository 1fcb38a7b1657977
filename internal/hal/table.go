package hal

import (
	"fmt"
	"strings"
)

// Table is a named, immutable list of perflock resource values. Legacy
// opcodes carry their value inside the opcode; paired tables interleave a
// resource id with its value.
type Table struct {
	name   string
	values []int32
}

// Resource is one (id, value) pair of a paired table.
type Resource struct {
	ID    int32
	Value int32
}

func Opcodes(name string, opcodes ...int32) Table {
	return Table{name: name, values: append([]int32(nil), opcodes...)}
}

func Pairs(name string, resources ...Resource) Table {
	values := make([]int32, 0, len(resources)*2)
	for _, r := range resources {
		values = append(values, r.ID, r.Value)
	}
	return Table{name: name, values: values}
}

func (t Table) Name() string { return t.name }

func (t Table) Len() int { return len(t.values) }

// Values returns a copy the caller is free to hand to C or mutate.
func (t Table) Values() []int32 {
	return append([]int32(nil), t.values...)
}

func (t Table) Equal(other Table) bool {
	if t.name != other.name || len(t.values) != len(other.values) {
		return false
	}
	for i := range t.values {
		if t.values[i] != other.values[i] {
			return false
		}
	}
	return true
}

func (t Table) String() string {
	hex := make([]string, len(t.values))
	for i, v := range t.values {
		hex[i] = fmt.Sprintf("%#x", uint32(v))
	}
	return fmt.Sprintf("%s[%s]", t.name, strings.Join(hex, " "))
}

// MarshalYAML renders the values in hex, the way they read in perflock docs.
func (t Table) MarshalYAML() (any, error) {
	hex := make([]string, len(t.values))
	for i, v := range t.values {
		hex[i] = fmt.Sprintf("0x%X", uint32(v))
	}
	return struct {
		Name   string   `yaml:"name"`
		Values []string `yaml:"values,flow"`
	}{t.name, hex}, nil
}
