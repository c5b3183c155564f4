package scaling

import (
	"encoding/json"
	"fmt"
)

// Kind identifies a scaling variant by its metadata name.
type Kind string

// Known scaling kinds. Matching against metadata is case-sensitive.
const (
	KindStretch   Kind = "stretch"
	KindTile      Kind = "tile"
	KindNineSlice Kind = "nine_slice"
)

// Kinds lists every known scaling kind.
var Kinds = []Kind{KindStretch, KindTile, KindNineSlice}

// Scaling describes how a GUI texture fills an area larger than itself.
// The set of implementations is closed: Stretch, Tile and NineSlice.
type Scaling interface {
	Kind() Kind
	String() string
	scaling()
}

// Stretch scales the whole image to fill the area.
type Stretch struct{}

// Tile repeats a fixed-size frame to fill the area.
type Tile struct{}

// NineSlice keeps the four corners fixed, repeats or stretches the edges
// and fills the center. Border widths are in pixels and never negative.
type NineSlice struct {
	Left   int
	Right  int
	Top    int
	Bottom int
}

func (Stretch) Kind() Kind   { return KindStretch }
func (Tile) Kind() Kind      { return KindTile }
func (NineSlice) Kind() Kind { return KindNineSlice }

func (Stretch) String() string { return string(KindStretch) }
func (Tile) String() string    { return string(KindTile) }
func (n NineSlice) String() string {
	return fmt.Sprintf("%s(left=%d, right=%d, top=%d, bottom=%d)", KindNineSlice, n.Left, n.Right, n.Top, n.Bottom)
}

func (Stretch) scaling()   {}
func (Tile) scaling()      {}
func (NineSlice) scaling() {}

// Analyzed is the result of analyzing one texture's metadata.
// Stretch results never carry frame dimensions; Tile and NineSlice results
// always do. Values are immutable and comparable with ==.
type Analyzed struct {
	scaling     Scaling
	frameWidth  int
	frameHeight int
	hasFrame    bool
}

func stretched() Analyzed {
	return Analyzed{scaling: Stretch{}}
}

func framed(s Scaling, width, height int) Analyzed {
	return Analyzed{scaling: s, frameWidth: width, frameHeight: height, hasFrame: true}
}

// Scaling returns the scaling descriptor.
func (a Analyzed) Scaling() Scaling { return a.scaling }

// FrameWidth returns the frame width in pixels, if present.
func (a Analyzed) FrameWidth() (int, bool) { return a.frameWidth, a.hasFrame }

// FrameHeight returns the frame height in pixels, if present.
func (a Analyzed) FrameHeight() (int, bool) { return a.frameHeight, a.hasFrame }

type jsonAnalyzed struct {
	Type        Kind        `json:"type"`
	FrameWidth  *int        `json:"frame_width,omitempty"`
	FrameHeight *int        `json:"frame_height,omitempty"`
	Border      *jsonBorder `json:"border,omitempty"`
}

type jsonBorder struct {
	Left   int `json:"left"`
	Right  int `json:"right"`
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
}

// MarshalJSON encodes the result as
//
//	{"type": "nine_slice", "frame_width": 200, "frame_height": 20,
//	 "border": {"left": 1, "right": 2, "top": 3, "bottom": 4}}
//
// Frame dimensions are omitted for stretch, border for anything but
// nine_slice.
func (a Analyzed) MarshalJSON() ([]byte, error) {
	if a.scaling == nil {
		return []byte("null"), nil
	}
	out := jsonAnalyzed{Type: a.scaling.Kind()}
	if a.hasFrame {
		w, h := a.frameWidth, a.frameHeight
		out.FrameWidth = &w
		out.FrameHeight = &h
	}
	if n, ok := a.scaling.(NineSlice); ok {
		out.Border = &jsonBorder{Left: n.Left, Right: n.Right, Top: n.Top, Bottom: n.Bottom}
	}
	return json.Marshal(out)
}
