// Package config defines the drawing configuration of a curling sheet.
//
// A [Config] controls the output scale (pixels per metre), the physical sheet
// width, the orientation of the image and the colour palette. Every
// constructor in this package validates before returning, so a Config
// obtained from [New], [FromMap], [Load] or [Read] always satisfies:
//
//   - PPM > 0
//   - SheetWidth > 0
//   - every colour is '#' followed by exactly 8 hex digits (RRGGBBAA)
//   - at least one stone colour per team
//
// A Config assembled by hand (or mutated after construction) must be checked
// with [Config.Validate] before use.
//
// # Files
//
// Configurations are stored as JSON or TOML with the following keys:
//
//	{
//	  "inversion": false,
//	  "full": false,
//	  "ppm": 20,
//	  "sheet_width": 4.75,
//	  "colors": {
//	    "background": "#FFFFFFFF",
//	    "line": "#000000FF",
//	    "inner_house_circle": "#FF000080",
//	    "outer_house_circle": "#0000FF80",
//	    "stones": ["#FF0000FF", "#FFFF00FF"]
//	  }
//	}
//
// Missing keys keep their defaults; unknown keys are rejected.
package config
