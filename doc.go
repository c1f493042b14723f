// Package sciformats reads spectroscopy and chromatography files into a
// uniform node tree.
//
// # Usage
//
//	repo, err := sciformats.NewRepository(nil, nil)
//	f, err := sciformats.Open(repo, "spectrum.jdx")
//	defer f.Close()
//	root, err := f.Read("")
//	page, err := f.Read("/0-NMR SPECTRUM/1-PAGE=N=2") // NTUPLES page 2
//
// Plugins are selected by name ("jdx", "andi", "json") in a Config, which
// can be loaded from YAML or JSON with LoadConfig.
//
// # Packages
//
//   - ir: node model
//   - ir/npath: path grammar
//   - plugin: plugin contract and repository
//   - jdx: JCAMP-DX
//   - andi: AnDI netCDF
//   - export: JSON and YAML export, JSON import
package sciformats
