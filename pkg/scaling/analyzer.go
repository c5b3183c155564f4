package scaling

import (
	"github.com/matzehuels/guiscale/pkg/errors"
	"github.com/matzehuels/guiscale/pkg/metadata"
)

const (
	sectionScaling = "scaling"
	sectionBorder  = "border"
)

// Analyzer turns a texture's metadata into an analysis result. Hosts select
// an Analyzer per texture type; imageWidth and imageHeight are the pixel
// dimensions of the associated image.
type Analyzer interface {
	Analyze(view metadata.View, imageWidth, imageHeight int) (Analyzed, error)
}

// GUIAnalyzer reads the scaling section of GUI texture metadata.
// The zero value is ready to use.
type GUIAnalyzer struct{}

var _ Analyzer = GUIAnalyzer{}

// Analyze validates the scaling section of view. Image dimensions are
// accepted for interface conformance; no constraint ties the scaling
// parameters to them.
func (GUIAnalyzer) Analyze(view metadata.View, imageWidth, imageHeight int) (Analyzed, error) {
	section, ok := view.SubView(sectionScaling)
	if !ok {
		return Analyzed{}, errors.MissingSection(sectionScaling)
	}
	raw, ok := section.StringValue("type")
	if !ok {
		return Analyzed{}, errors.MissingField("type", sectionScaling)
	}

	switch Kind(raw) {
	case KindStretch:
		return stretched(), nil
	case KindTile, KindNineSlice:
	default:
		return Analyzed{}, errors.UnknownType(raw)
	}

	width, err := requirePositive(section, "width", sectionScaling)
	if err != nil {
		return Analyzed{}, err
	}
	height, err := requirePositive(section, "height", sectionScaling)
	if err != nil {
		return Analyzed{}, err
	}

	if Kind(raw) == KindTile {
		return framed(Tile{}, width, height), nil
	}

	border, err := readBorder(section)
	if err != nil {
		return Analyzed{}, err
	}
	return framed(border, width, height), nil
}

// readBorder reads the nine-slice border widths. The nested border section
// takes precedence over the single flat border value.
func readBorder(section metadata.View) (NineSlice, error) {
	nested, ok := section.SubView(sectionBorder)
	if !ok {
		size, err := requireNonNegative(section, sectionBorder, sectionScaling)
		if err != nil {
			return NineSlice{}, err
		}
		return NineSlice{Left: size, Right: size, Top: size, Bottom: size}, nil
	}

	var n NineSlice
	sides := []struct {
		key string
		dst *int
	}{
		{"left", &n.Left},
		{"right", &n.Right},
		{"top", &n.Top},
		{"bottom", &n.Bottom},
	}
	for _, side := range sides {
		v, err := requireNonNegative(nested, side.key, sectionBorder)
		if err != nil {
			return NineSlice{}, err
		}
		*side.dst = v
	}
	return n, nil
}

func requirePositive(view metadata.View, key, section string) (int, error) {
	v, ok := view.IntegerValue(key)
	if !ok {
		return 0, errors.MissingField(key, section)
	}
	if v <= 0 {
		return 0, errors.InvalidValue("%s must be positive", key)
	}
	return v, nil
}

func requireNonNegative(view metadata.View, key, section string) (int, error) {
	v, ok := view.IntegerValue(key)
	if !ok {
		return 0, errors.MissingField(key, section)
	}
	if v < 0 {
		return 0, errors.InvalidValue("%s is negative", key)
	}
	return v, nil
}
