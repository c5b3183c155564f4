package metadata

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/guiscale/pkg/errors"
)

// Decoder reads one serialization format into the generic map shape a
// MapView wraps.
type Decoder interface {
	// Decode parses data into a map. An empty document yields an empty map.
	Decode(data []byte) (map[string]any, error)
	// Supports reports whether this decoder handles the given filename.
	Supports(filename string) bool
	// Type returns the format identifier (e.g., "json", "yaml").
	Type() string
}

// Decoders is the default decoder set, in detection order.
var Decoders = []Decoder{
	&JSONDecoder{},
	&YAMLDecoder{},
	&TOMLDecoder{},
}

// DetectDecoder finds a decoder that supports the given file path.
// Returns an INVALID_FORMAT error if no decoder matches.
func DetectDecoder(path string, decoders ...Decoder) (Decoder, error) {
	if len(decoders) == 0 {
		decoders = Decoders
	}
	name := filepath.Base(path)
	for _, d := range decoders {
		if d.Supports(name) {
			return d, nil
		}
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported metadata file: %s", name)
}

// Supported reports whether any default decoder handles filename.
func Supported(filename string) bool {
	_, err := DetectDecoder(filename)
	return err == nil
}

// Parse decodes data with the decoder selected by name and returns a view
// over the result.
func Parse(name string, data []byte) (View, error) {
	d, err := DetectDecoder(name)
	if err != nil {
		return nil, err
	}
	m, err := d.Decode(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode %s as %s", filepath.Base(name), d.Type())
	}
	return NewMapView(m), nil
}

// Load reads the metadata file at path and returns a view over its contents.
func Load(path string) (View, error) {
	if err := errors.ValidateMetadataPath(path); err != nil {
		return nil, err
	}
	// #nosec G304 -- path is provided by the user on the command line.
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "metadata file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", path)
	}
	return Parse(path, data)
}

// =============================================================================
// JSON
// =============================================================================

// JSONDecoder decodes JSON documents, including .mcmeta and .moremcmeta
// sidecar files. Numbers are kept as json.Number so large integers survive.
type JSONDecoder struct{}

func (d *JSONDecoder) Type() string { return "json" }

func (d *JSONDecoder) Supports(name string) bool {
	return hasExt(name, ".json", ".mcmeta", ".moremcmeta")
}

func (d *JSONDecoder) Decode(data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unexpected data after top-level object")
	}
	return orEmpty(m), nil
}

// =============================================================================
// YAML
// =============================================================================

// YAMLDecoder decodes YAML documents. Only the first document is read.
type YAMLDecoder struct{}

func (d *YAMLDecoder) Type() string { return "yaml" }

func (d *YAMLDecoder) Supports(name string) bool {
	return hasExt(name, ".yaml", ".yml")
}

func (d *YAMLDecoder) Decode(data []byte) (map[string]any, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return orEmpty(m), nil
}

// =============================================================================
// TOML
// =============================================================================

// TOMLDecoder decodes TOML documents.
type TOMLDecoder struct{}

func (d *TOMLDecoder) Type() string { return "toml" }

func (d *TOMLDecoder) Supports(name string) bool {
	return hasExt(name, ".toml")
}

func (d *TOMLDecoder) Decode(data []byte) (map[string]any, error) {
	var m map[string]any
	if _, err := toml.Decode(string(data), &m); err != nil {
		return nil, err
	}
	return orEmpty(m), nil
}

// =============================================================================
// Helpers
// =============================================================================

func hasExt(name string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

func orEmpty(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}
