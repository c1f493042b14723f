package ir

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

type valueBase struct {
	Type   Type     `json:"type"`
	String *string  `json:"string,omitempty"`
	Bool   *bool    `json:"bool,omitempty"`
	Int64  *int64   `json:"int,omitempty"`
	Float  *float64 `json:"float,omitempty"`
	// Number holds floats JSON cannot represent (NaN, ±Inf).
	Number string `json:"number,omitempty"`
}

func (v Value) MarshalJSON() ([]byte, error) {
	base := valueBase{Type: v.Type}
	switch v.Type {
	case StringType:
		base.String = &v.String
	case BoolType:
		base.Bool = &v.Bool
	case IntType:
		base.Int64 = &v.Int64
	case FloatType:
		if math.IsNaN(v.Float64) || math.IsInf(v.Float64, 0) {
			base.Number = strconv.FormatFloat(v.Float64, 'g', -1, 64)
		} else {
			base.Float = &v.Float64
		}
	default:
		return nil, fmt.Errorf("cannot marshal value of %s", v.Type)
	}
	return json.Marshal(base)
}

func (v *Value) UnmarshalJSON(d []byte) error {
	base := &valueBase{}
	if err := json.Unmarshal(d, base); err != nil {
		return err
	}
	*v = Value{Type: base.Type}
	switch base.Type {
	case StringType:
		if base.String != nil {
			v.String = *base.String
		}
	case BoolType:
		if base.Bool != nil {
			v.Bool = *base.Bool
		}
	case IntType:
		if base.Int64 != nil {
			v.Int64 = *base.Int64
		}
	case FloatType:
		switch {
		case base.Float != nil:
			v.Float64 = *base.Float
		case base.Number != "":
			f, err := strconv.ParseFloat(base.Number, 64)
			if err != nil {
				return fmt.Errorf("bad float %q: %w", base.Number, err)
			}
			v.Float64 = f
		}
	default:
		return fmt.Errorf("cannot unmarshal value of %s", base.Type)
	}
	return nil
}

// MarshalYAML emits the bare value; YAML has native NaN and infinities.
func (v Value) MarshalYAML() (any, error) {
	switch v.Type {
	case BoolType:
		return v.Bool, nil
	case IntType:
		return v.Int64, nil
	case FloatType:
		return v.Float64, nil
	default:
		return v.String, nil
	}
}

func (p Point) MarshalJSON() ([]byte, error) {
	return []byte("[" + jsonFloat(p.X) + "," + jsonFloat(p.Y) + "]"), nil
}

func (p *Point) UnmarshalJSON(d []byte) error {
	var xy []json.RawMessage
	if err := json.Unmarshal(d, &xy); err != nil {
		return err
	}
	if len(xy) != 2 {
		return fmt.Errorf("point must have 2 coordinates, got %d", len(xy))
	}
	x, err := parseJSONFloat(xy[0])
	if err != nil {
		return err
	}
	y, err := parseJSONFloat(xy[1])
	if err != nil {
		return err
	}
	p.X, p.Y = x, y
	return nil
}

func (p Point) MarshalYAML() (any, error) {
	return []float64{p.X, p.Y}, nil
}

func jsonFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.Quote(s)
	}
	return s
}

func parseJSONFloat(d json.RawMessage) (float64, error) {
	if len(d) > 0 && d[0] == '"' {
		var s string
		if err := json.Unmarshal(d, &s); err != nil {
			return 0, err
		}
		return strconv.ParseFloat(s, 64)
	}
	return strconv.ParseFloat(string(d), 64)
}
