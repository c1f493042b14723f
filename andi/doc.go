// Package andi reads AnDI (Analytical Data Interchange) netCDF files:
// chromatography files following the AIA template and mass spectrometry
// files following the ANDI-MS template.
//
// Node layout for chromatography:
//
//	""    root, global attributes
//	"/0"  Chromatogram
//	"/1"  Peaks (table)
//
// and for mass spectrometry:
//
//	""      root, global attributes
//	"/0"    Total Ion Current
//	"/1"    Scans
//	"/1/i"  scan i
package andi
