package ir

import "fmt"

// Type is the kind of a parameter or cell Value.
type Type int

const (
	StringType Type = iota
	BoolType
	IntType
	FloatType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		StringType: "String",
		BoolType:   "Bool",
		IntType:    "Int",
		FloatType:  "Float",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for _, tt := range Types() {
		if tt.String() == string(d) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

func Types() []Type {
	return []Type{
		StringType,
		BoolType,
		IntType,
		FloatType,
	}
}
