package jdx

import (
	"fmt"
	"math"
	"strconv"
)

// ASDF (ASCII squeezed difference form) line decoding.
//
//	AFFN/PAC  1.5 -2 +3E+2   plain numbers, '+' or '-' may separate values
//	SQZ       @ A-I a-i      leading digit 0, 1..9, -1..-9
//	DIF       % J-R j-r      difference to the previous value
//	DUP       S-Z s          repeat count 1..9 of the previous token
//	?                        missing value (NaN)

type asdfKind int

const (
	affnToken asdfKind = iota
	sqzToken
	difToken
	dupToken
	missingToken
)

type asdfToken struct {
	kind asdfKind
	text string
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// leadDigit maps a compressed form character to its kind and leading digit
// text.
func leadDigit(c byte) (asdfKind, string, bool) {
	switch {
	case c == '@':
		return sqzToken, "0", true
	case 'A' <= c && c <= 'I':
		return sqzToken, strconv.Itoa(int(c-'A') + 1), true
	case 'a' <= c && c <= 'i':
		return sqzToken, "-" + strconv.Itoa(int(c-'a')+1), true
	case c == '%':
		return difToken, "0", true
	case 'J' <= c && c <= 'R':
		return difToken, strconv.Itoa(int(c-'J') + 1), true
	case 'j' <= c && c <= 'r':
		return difToken, "-" + strconv.Itoa(int(c-'j')+1), true
	case 'S' <= c && c <= 'Z':
		return dupToken, strconv.Itoa(int(c-'S') + 1), true
	case c == 's':
		return dupToken, "9", true
	}
	return 0, "", false
}

// scanAFFN returns the end of the number starting at i. An 'E' or 'e' is
// taken as exponent only when followed by a sign and a digit.
func scanAFFN(s string, i int) int {
	j := i
	if j < len(s) && (s[j] == '+' || s[j] == '-') {
		j++
	}
	for j < len(s) && (isDigit(s[j]) || s[j] == '.') {
		j++
	}
	if j+2 < len(s) && (s[j] == 'E' || s[j] == 'e') && (s[j+1] == '+' || s[j+1] == '-') && isDigit(s[j+2]) {
		j += 2
		for j < len(s) && isDigit(s[j]) {
			j++
		}
	}
	return j
}

func tokenizeASDF(line string) ([]asdfToken, error) {
	var toks []asdfToken
	i := 0
	for i < len(line) {
		c := line[i]
		switch {
		case c == ' ' || c == '\t' || c == ',' || c == ';':
			i++
		case c == '?':
			toks = append(toks, asdfToken{kind: missingToken})
			i++
		case c == '+' || c == '-' || c == '.' || isDigit(c):
			j := scanAFFN(line, i)
			text := line[i:j]
			if text == "+" || text == "-" || text == "." {
				return nil, fmt.Errorf("%w: %q in %q", ErrNumber, text, line)
			}
			toks = append(toks, asdfToken{kind: affnToken, text: text})
			i = j
		default:
			kind, lead, ok := leadDigit(c)
			if !ok {
				return nil, fmt.Errorf("%w: illegal character %q in %q", ErrUnexpected, c, line)
			}
			j := i + 1
			for j < len(line) && (isDigit(line[j]) || line[j] == '.') {
				j++
			}
			toks = append(toks, asdfToken{kind: kind, text: lead + line[i+1:j]})
			i = j
		}
	}
	return toks, nil
}

// decodeASDFLine expands one line into its values. The first value is the
// abscissa. lastDIF reports whether the final value was produced in DIF
// form, in which case the next line starts with a y check value.
func decodeASDFLine(line string) (vals []float64, lastDIF bool, err error) {
	toks, err := tokenizeASDF(line)
	if err != nil {
		return nil, false, err
	}
	var dif float64
	for k, t := range toks {
		switch t.kind {
		case affnToken, sqzToken:
			v, err := strconv.ParseFloat(t.text, 64)
			if err != nil {
				return nil, false, fmt.Errorf("%w: %q in %q", ErrNumber, t.text, line)
			}
			vals = append(vals, v)
			lastDIF = false
		case missingToken:
			vals = append(vals, math.NaN())
			lastDIF = false
		case difToken:
			if len(vals) == 0 {
				return nil, false, fmt.Errorf("%w: DIF without preceding value in %q", ErrUnexpected, line)
			}
			d, err := strconv.ParseFloat(t.text, 64)
			if err != nil {
				return nil, false, fmt.Errorf("%w: %q in %q", ErrNumber, t.text, line)
			}
			dif = d
			vals = append(vals, vals[len(vals)-1]+d)
			lastDIF = true
		case dupToken:
			n, err := strconv.Atoi(t.text)
			if err != nil || n < 1 || k == 0 || toks[k-1].kind == dupToken {
				return nil, false, fmt.Errorf("%w: DUP %q in %q", ErrUnexpected, t.text, line)
			}
			for r := 1; r < n; r++ {
				prev := vals[len(vals)-1]
				if lastDIF {
					vals = append(vals, prev+dif)
				} else {
					vals = append(vals, prev)
				}
			}
		}
	}
	return vals, lastDIF, nil
}
