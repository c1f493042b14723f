// Package ir provides the uniform node model every format reader produces.
//
// # Overview
//
// Readers for JCAMP-DX, AnDI and exported JSON documents all answer path
// queries with an *ir.Node. A Node is flat: it carries its own content and
// only the names of its children. Children are fetched with a further Read
// using a longer path (see package npath).
//
// # Node Structure
//
//   - Name: display label
//   - Parameters: ordered key/value pairs; an empty key is an anonymous
//     parameter
//   - Data: ordered (x, y) samples
//   - Metadata: ordered string pairs, e.g. axis units
//   - Table: optional column definitions plus rows of cell values
//   - ChildNodeNames: one label per addressable child, index aligned
//
// The number of ChildNodeNames is always the number of indices that are
// valid for the next path segment at that node.
//
// # Values
//
// Parameter and cell values are a tagged union selected by Type:
//
//	ir.FromString("NMR SPECTRUM")
//	ir.FromInt(42)
//	ir.FromFloat(math.NaN())
//	ir.FromBool(true)
//
// # JSON Interoperability
//
// Values encode their type explicitly so that an int survives a round trip
// as an int. Floats JSON cannot represent (NaN, ±Inf) are carried as strings,
// both in values and in Point coordinates.
//
// # Related Packages
//
//   - github.com/sciformats/go-sciformats/ir/npath - path addressing
//   - github.com/sciformats/go-sciformats/plugin - readers and dispatch
//   - github.com/sciformats/go-sciformats/export - tree export
package ir
