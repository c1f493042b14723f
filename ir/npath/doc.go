// Package npath provides node path decoding and child slot composition.
//
// A node path is a slash separated list of child indices. Each segment is a
// bare index or "index-label"; the label is for display only:
//
//	indices, err := npath.Decode("/1-PAGE=N=1/0")  // [1, 0]
//	path := npath.Encode([]int{1, 0})               // "1/0"
//	seg := npath.Segment(2, "Audit Trail")          // "2-Audit Trail"
//
// The root is "" or "/".
//
// # Slot Ranges
//
// A node whose children come from several categories (for example Bruker
// sections, NTUPLES and nested blocks of a JCAMP-DX block) shares one flat
// index space among them. Readers describe the categories as an ordered
// []Range and resolve an index with Locate:
//
//	slot, offset, ok := npath.Locate([]npath.Range{{Len: 2}, {Len: 0}, {Len: 1}}, 2)
//	// slot == 2, offset == 0, ok == true
package npath
