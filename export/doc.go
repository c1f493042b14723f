// Package export writes the node tree of any plugin.Reader as a single
// JSON or YAML document and reads the JSON form back.
//
// An exported node holds the fields of ir.Node plus "children", the child
// nodes in ChildNodeNames order:
//
//	{"name": "root", "childNodeNames": ["a"], "children": [{"name": "a"}]}
//
// The JSON Plugin serves such a document through the usual path grammar,
// so an export can be read again like the file it came from.
package export
