package andi

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/batchatco/go-native-netcdf/netcdf"
	"github.com/batchatco/go-native-netcdf/netcdf/api"

	"github.com/sciformats/go-sciformats/ir"
)

// Dataset is the part of a netCDF group the AnDI readers use.
type Dataset interface {
	Attributes() api.AttributeMap
	ListVariables() []string
	GetVariable(name string) (*api.Variable, error)
}

type nopCloser struct {
	io.ReadSeeker
}

func (nopCloser) Close() error { return nil }

// openNetCDF decodes the netCDF header of r. r stays owned by the caller.
func openNetCDF(r io.ReadSeeker) (Dataset, error) {
	g, err := netcdf.New(nopCloser{r})
	if err != nil {
		return nil, fmt.Errorf("%w: netcdf: %w", ir.ErrParse, err)
	}
	return g, nil
}

func hasVariable(ds Dataset, name string) bool {
	for _, v := range ds.ListVariables() {
		if v == name {
			return true
		}
	}
	return false
}

func variable(ds Dataset, name string) (*api.Variable, error) {
	if !hasVariable(ds, name) {
		return nil, fmt.Errorf("%w: %s", ErrMissingVariable, name)
	}
	v, err := ds.GetVariable(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ir.ErrParse, name, err)
	}
	return v, nil
}

// floats reads a numeric variable.
func floats(ds Dataset, name string) ([]float64, error) {
	v, err := variable(ds, name)
	if err != nil {
		return nil, err
	}
	f, err := toFloats(v.Values)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return f, nil
}

// optionalFloats reads a numeric variable; a missing one is nil.
func optionalFloats(ds Dataset, name string) ([]float64, error) {
	f, err := floats(ds, name)
	if errors.Is(err, ErrMissingVariable) {
		return nil, nil
	}
	return f, err
}

// scalar reads the first value of a numeric variable.
func scalar(ds Dataset, name string) (float64, bool, error) {
	f, err := optionalFloats(ds, name)
	if err != nil || len(f) == 0 {
		return 0, false, err
	}
	return f[0], true, nil
}

func toFloats(v any) ([]float64, error) {
	switch x := v.(type) {
	case []float64:
		return x, nil
	case []float32:
		return convert(x), nil
	case []int64:
		return convert(x), nil
	case []int32:
		return convert(x), nil
	case []int16:
		return convert(x), nil
	case []int8:
		return convert(x), nil
	case []uint8:
		return convert(x), nil
	case float64:
		return []float64{x}, nil
	case float32:
		return []float64{float64(x)}, nil
	case int64:
		return []float64{float64(x)}, nil
	case int32:
		return []float64{float64(x)}, nil
	case int16:
		return []float64{float64(x)}, nil
	case int8:
		return []float64{float64(x)}, nil
	case uint8:
		return []float64{float64(x)}, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrVariableType, v)
}

type number interface {
	~float32 | ~int64 | ~int32 | ~int16 | ~int8 | ~uint8
}

func convert[T number](xs []T) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = float64(x)
	}
	return res
}

// toStrings reads a char variable; a 2D char array decodes to one string
// per row.
func toStrings(v any) ([]string, error) {
	switch x := v.(type) {
	case []string:
		res := make([]string, len(x))
		for i := range x {
			res[i] = trimChars(x[i])
		}
		return res, nil
	case string:
		return []string{trimChars(x)}, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrVariableType, v)
}

func trimChars(s string) string {
	return strings.TrimRight(s, "\x00 ")
}

// attrValue maps a netCDF attribute value to a node value. Arrays of one
// element are unwrapped; longer numeric arrays are rendered as text.
func attrValue(v any) ir.Value {
	switch x := v.(type) {
	case string:
		return ir.FromString(trimChars(x))
	case float64:
		return ir.FromFloat(x)
	case float32:
		return ir.FromFloat(float64(x))
	case int64:
		return ir.FromInt(x)
	case int32:
		return ir.FromInt(int64(x))
	case int16:
		return ir.FromInt(int64(x))
	case int8:
		return ir.FromInt(int64(x))
	case uint8:
		return ir.FromInt(int64(x))
	}
	f, err := toFloats(v)
	if err != nil {
		return ir.FromString(fmt.Sprint(v))
	}
	if len(f) == 1 {
		return attrValue(firstElem(v))
	}
	parts := make([]string, len(f))
	for i := range f {
		parts[i] = strconv.FormatFloat(f[i], 'g', -1, 64)
	}
	return ir.FromString(strings.Join(parts, ", "))
}

// firstElem returns the first element of a numeric slice.
func firstElem(v any) any {
	switch x := v.(type) {
	case []float64:
		return x[0]
	case []float32:
		return x[0]
	case []int64:
		return x[0]
	case []int32:
		return x[0]
	case []int16:
		return x[0]
	case []int8:
		return x[0]
	case []uint8:
		return x[0]
	}
	return v
}

func attrParams(m api.AttributeMap) []ir.Parameter {
	if m == nil {
		return nil
	}
	keys := m.Keys()
	ps := make([]ir.Parameter, 0, len(keys))
	for _, k := range keys {
		v, _ := m.Get(k)
		ps = append(ps, ir.Param(k, attrValue(v)))
	}
	return ps
}

func attrString(m api.AttributeMap, key string) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m.Get(key)
	if !ok {
		return "", false
	}
	return attrValue(v).Format(), true
}

// unitOf returns the "units" attribute of a variable.
func unitOf(ds Dataset, name string) string {
	if !hasVariable(ds, name) {
		return ""
	}
	v, err := ds.GetVariable(name)
	if err != nil || v == nil {
		return ""
	}
	u, _ := attrString(v.Attributes, "units")
	return u
}
