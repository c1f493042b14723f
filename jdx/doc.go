// Package jdx reads JCAMP-DX files.
//
// A file is one block (##TITLE= ... ##END=) that may nest further blocks.
// ParseBlock builds a Block with its labeled data records and the sections
// that have their own grammar: PEAK TABLE, PEAK ASSIGNMENTS, XYDATA,
// RADATA, XYPOINTS, NTUPLES, AUDIT TRAIL and the Bruker RELAX and
// parameter sections. Bulk data is located at parse time and decoded when
// a node is read.
//
// # Addressing
//
// The children of a block node are indexed in this order:
//
//	Bruker relax sections
//	Bruker specific parameter sections
//	NTUPLES (its pages are its children)
//	AUDIT TRAIL
//	nested blocks
//
// so "/2/0" is the first page of the NTUPLES section of a block that has
// one relax and one parameter section.
package jdx
