// Package pkg provides the core libraries for guiscale, a validator for GUI
// texture scaling metadata.
//
// # Overview
//
// A GUI texture may ship with metadata describing how it stretches to fit a
// widget: plainly (stretch), by repeating a frame (tile), or by keeping its
// borders fixed and scaling only the middle (nine_slice). guiscale reads that
// metadata, checks it, and turns it into a typed descriptor. The pkg directory
// is organized into:
//
//  1. [scaling] - The analyzer and the scaling descriptor types
//  2. [metadata] - The key/value view the analyzer reads, plus JSON, YAML
//     and TOML backends
//  3. [errors] - Coded errors shared by every package
//  4. [observability] - Optional hooks around loading and analysis
//  5. [buildinfo] - Version information injected at build time
//
// # Architecture
//
//	metadata file (.mcmeta, .json, .yaml, .toml)
//	         ↓
//	    [metadata] package (decode + View)
//	         ↓
//	    [scaling] package (GUIAnalyzer)
//	         ↓
//	    scaling.Analyzed (Stretch | Tile | NineSlice + frame size)
//
// # Quick Start
//
//	view, err := metadata.Load("textures/gui/button.png.mcmeta")
//	if err != nil {
//	    return err
//	}
//	result, err := scaling.GUIAnalyzer{}.Analyze(view, 0, 0)
//	if err != nil {
//	    fmt.Println(errors.GetCode(err), errors.UserMessage(err))
//	    return err
//	}
//	if n, ok := result.Scaling().(scaling.NineSlice); ok {
//	    fmt.Println(n.Left, n.Right, n.Top, n.Bottom)
//	}
//
// Metadata that is already in memory can be wrapped directly:
//
//	view := metadata.NewMapView(map[string]any{
//	    "scaling": map[string]any{"type": "tile", "width": 16, "height": 16},
//	})
//
// # Errors
//
// Every failure carries an [errors.Code]. The analyzer returns exactly one of
// MISSING_SECTION, MISSING_FIELD, INVALID_VALUE or UNKNOWN_TYPE; the metadata
// backends add INVALID_FORMAT, FILE_NOT_FOUND and INVALID_PATH.
//
// [scaling]: https://pkg.go.dev/github.com/matzehuels/guiscale/pkg/scaling
// [metadata]: https://pkg.go.dev/github.com/matzehuels/guiscale/pkg/metadata
// [errors]: https://pkg.go.dev/github.com/matzehuels/guiscale/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/guiscale/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/guiscale/pkg/buildinfo
package pkg
