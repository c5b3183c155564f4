// Package scaling interprets the scaling section of GUI texture metadata.
//
// A GUI texture is drawn into areas larger than the image itself. The
// scaling section says how:
//
//	scaling:
//	  type: "stretch" | "tile" | "nine_slice"
//	  width: integer        # required unless type == stretch
//	  height: integer       # required unless type == stretch
//	  border: integer       # nine_slice only, used if no nested border section
//	  border:               # nine_slice only, alternative nested form
//	    left: integer
//	    right: integer
//	    top: integer
//	    bottom: integer
//
// [GUIAnalyzer] validates that section and produces an [Analyzed] value: a
// [Scaling] descriptor ([Stretch], [Tile] or [NineSlice]) plus the frame
// dimensions for tile and nine-slice scaling.
//
// # Validation order
//
// Validation stops at the first violated constraint, always in the same
// order: scaling section, type, width, height, then the border fields
// (left, right, top, bottom). Given the same input, the reported error is
// always the same.
//
// # Errors
//
// Failures are *errors.Error values from pkg/errors with one of the codes
// MISSING_SECTION, MISSING_FIELD, INVALID_VALUE or UNKNOWN_TYPE.
//
// # Concurrency
//
// Analysis is a pure function of its input. A [GUIAnalyzer] holds no state
// and may be shared freely between goroutines.
package scaling
