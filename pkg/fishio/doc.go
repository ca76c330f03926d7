// Package fishio provides JSON import and export for fishbone diagrams.
//
// # Overview
//
// The exchange format carries content only: the head statement and the
// nested labels of big, mid, and small bones. Identifiers and spine sides
// are presentation-layer derived — import assigns fresh IDs and
// re-derives alternating sides, export discards both. A round trip
// (import, edit nothing, export, re-import) reproduces the same labels
// and nesting.
//
// # JSON Format
//
//	{
//	  "head": "Late deliveries",
//	  "bigBones": [
//	    {
//	      "label": "People",
//	      "midBones": [
//	        {
//	          "label": "Training",
//	          "smallBones": [{"label": "No budget"}]
//	        }
//	      ]
//	    }
//	  ]
//	}
//
// Every level is optional below the head: an empty diagram is
// `{"head": "..."}`.
//
// # Import
//
// Use [Import] to read a diagram from a file path, or [Read] to read
// from any io.Reader:
//
//	d, err := fishio.Import("defects.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Export
//
// Use [Export] to write a diagram to a file, or [Write] to write to any
// io.Writer. The output is indented, stable, and re-importable.
//
// # Concurrency
//
// [Read] and [Import] return independent trees that can be mutated
// freely. None of the functions retain the reader or writer they are
// given.
package fishio
