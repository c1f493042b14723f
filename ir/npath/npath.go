package npath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformedPath = errors.New("malformed path")

// Decode converts a node path into the child indices it addresses.
//
// Examples:
//   - Decode("") → []
//   - Decode("/") → []
//   - Decode("/0/2-peaks") → [0, 2]
//   - Decode("3/2-note/1") → [3, 2, 1]
//
// The label after the first '-' of a segment is ignored. A segment whose
// prefix is not a non-negative decimal integer is an error, as is an empty
// segment after the optional leading '/'.
func Decode(path string) ([]int, error) {
	segs := strings.Split(path, "/")
	if len(segs) == 1 && segs[0] == "" {
		return []int{}, nil
	}
	if len(segs) == 2 && segs[0] == "" && segs[1] == "" {
		return []int{}, nil
	}
	if segs[0] == "" {
		segs = segs[1:]
	}
	res := make([]int, 0, len(segs))
	for _, seg := range segs {
		i, err := decodeSegment(seg)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrMalformedPath, path, err)
		}
		res = append(res, i)
	}
	return res, nil
}

func decodeSegment(seg string) (int, error) {
	idx, _, _ := strings.Cut(seg, "-")
	if idx == "" {
		return 0, fmt.Errorf("segment %q has no index", seg)
	}
	u, err := strconv.ParseUint(idx, 10, 31)
	if err != nil {
		return 0, fmt.Errorf("segment %q: illegal index %q", seg, idx)
	}
	return int(u), nil
}

// Encode joins indices with '/'. Decode(Encode(x)) returns x.
func Encode(indices []int) string {
	buf := strings.Builder{}
	for i, idx := range indices {
		if i > 0 {
			buf.WriteByte('/')
		}
		buf.WriteString(strconv.Itoa(idx))
	}
	return buf.String()
}

// Segment builds a human readable path segment "index-label", or just
// "index" when label is empty. A '/' in label becomes '_'.
func Segment(index int, label string) string {
	if label == "" {
		return strconv.Itoa(index)
	}
	return strconv.Itoa(index) + "-" + strings.ReplaceAll(label, "/", "_")
}

// Join appends a segment to a parent path.
func Join(parent, segment string) string {
	if parent == "" || parent == "/" {
		return "/" + segment
	}
	return parent + "/" + segment
}
