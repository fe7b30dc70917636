// Package io provides JSON import and export for stone placements.
//
// # JSON Format
//
// A stone file is an object with a single "stones" array:
//
//	{
//	  "stones": [
//	    {"x": 0.08, "y": 35.3, "team": 0},
//	    {"x": 1.57, "y": 37.2, "team": 1},
//	    {"x": 0.12, "y": 37.9}
//	  ]
//	}
//
// Coordinates are metres (see package regulation for the axes). The team is
// 0 or 1 for the two teams and 2 for an empty slot; a stone without a team is
// an empty slot and is never drawn.
//
// # Import
//
// Use [ImportJSON] to read a sheet from a file path, or [ReadJSON] to read
// from any io.Reader:
//
//	s, err := io.ImportJSON("stones.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Stones are added with [sheet.Sheet.Put] in file order, so a file with more
// than 16 stones fails with a TOO_MANY_STONES error.
//
// # Export
//
// Use [ExportJSON] to write a sheet to a file, or [WriteJSON] to write to any
// io.Writer. Exported files can be re-imported identically.
//
// [sheet.Sheet.Put]: github.com/matzehuels/curlviz/pkg/sheet.Sheet.Put
package io
