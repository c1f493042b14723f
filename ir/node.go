package ir

import (
	"strconv"
)

// Node is the unit every Reader returns for a path.
type Node struct {
	Name           string      `json:"name"`
	Parameters     []Parameter `json:"parameters,omitempty"`
	Data           []Point     `json:"data,omitempty"`
	Metadata       []KeyValue  `json:"metadata,omitempty"`
	Table          *Table      `json:"table,omitempty"`
	ChildNodeNames []string    `json:"childNodeNames,omitempty"`
}

// Parameter is a key/value pair of a Node. An empty Key marks an anonymous
// parameter.
type Parameter struct {
	Key   string `json:"key,omitempty"`
	Value Value  `json:"value"`
}

// Value is a tagged union; the field named by Type holds the value.
type Value struct {
	Type    Type
	String  string
	Bool    bool
	Int64   int64
	Float64 float64
}

// Point is one (x, y) sample.
type Point struct {
	X float64
	Y float64
}

type KeyValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Table is a tabular projection independent of Node.Data. Rows map column
// keys to cell values; a missing key is an empty cell.
type Table struct {
	Columns []Column           `json:"columns"`
	Rows    []map[string]Value `json:"rows"`
}

type Column struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

func FromString(s string) Value {
	return Value{Type: StringType, String: s}
}

func FromBool(b bool) Value {
	return Value{Type: BoolType, Bool: b}
}

func FromInt(i int64) Value {
	return Value{Type: IntType, Int64: i}
}

func FromFloat(f float64) Value {
	return Value{Type: FloatType, Float64: f}
}

func Param(key string, v Value) Parameter {
	return Parameter{Key: key, Value: v}
}

func StringParam(key, v string) Parameter {
	return Parameter{Key: key, Value: FromString(v)}
}

// Format renders the value as text.
func (v Value) Format() string {
	switch v.Type {
	case BoolType:
		return strconv.FormatBool(v.Bool)
	case IntType:
		return strconv.FormatInt(v.Int64, 10)
	case FloatType:
		return strconv.FormatFloat(v.Float64, 'g', -1, 64)
	default:
		return v.String
	}
}

// Parameter returns the value of the first parameter with the given key.
func (n *Node) Parameter(key string) (Value, bool) {
	for i := range n.Parameters {
		if n.Parameters[i].Key == key {
			return n.Parameters[i].Value, true
		}
	}
	return Value{}, false
}
