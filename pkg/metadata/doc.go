// Package metadata provides read-only views over texture metadata.
//
// Texture metadata arrives in many serialization formats (JSON sidecar files,
// YAML, TOML). Interpreters never see the format: they consume a [View], a
// narrow capability interface offering section, string and integer lookups.
// A lookup for a key that is missing, or that holds a value of a different
// kind, reports absence rather than failing.
//
// # Views
//
// [MapView] implements [View] over the generic map[string]any shape every
// decoder in this package produces:
//
//	view := metadata.NewMapView(map[string]any{
//	    "scaling": map[string]any{"type": "tile", "width": 16, "height": 16},
//	})
//	scaling, ok := view.SubView("scaling")
//
// # Decoders
//
// A [Decoder] turns raw bytes into that generic shape. Decoders are selected
// by file name, the same way for every supported format:
//
//	view, err := metadata.Load("textures/gui/button.png.moremcmeta")
//
// Supported formats:
//   - JSON: .json, .mcmeta, .moremcmeta
//   - YAML: .yaml, .yml
//   - TOML: .toml
//
// [Discover] walks a directory tree and returns every file a decoder
// supports, which is how the CLI finds metadata to inspect.
package metadata
