// Package catalog serves named scales to the CLI, TUI and batch
// exporter.
//
// A Catalog holds the built-in presets from package scale plus any custom
// definitions loaded from YAML, and caches generated scales:
//
//	cat, err := catalog.New(catalog.WithCacheSize(256))
//	if err := cat.LoadFile("scales.yaml"); err != nil {
//	    // handle error
//	}
//	tones, err := cat.Generate("F#", "dorian")
//
// # Custom scale files
//
//	scales:
//	  - id: hirajoshi
//	    name: Hirajoshi
//	    degrees:
//	      1: keep
//	      2: keep
//	      3: b3
//	      5: keep
//	      6: {replace: b6}
//
// A degree value is "keep", "remove", an alteration label (shorthand for
// replace) or a mapping with keep, replace, add and remove fields.
package catalog
