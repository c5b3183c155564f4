package metadata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/guiscale/pkg/errors"
)

const (
	nineSliceJSON = `{
  "scaling": {
    "type": "nine_slice",
    "width": 200,
    "height": 20,
    "border": {"left": 1, "right": 2, "top": 3, "bottom": 4}
  }
}`

	nineSliceYAML = `
scaling:
  type: nine_slice
  width: 200
  height: 20
  border:
    left: 1
    right: 2
    top: 3
    bottom: 4
`

	nineSliceTOML = `
[scaling]
type = "nine_slice"
width = 200
height = 20

[scaling.border]
left = 1
right = 2
top = 3
bottom = 4
`
)

func TestDetectDecoder(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"gui.json", "json", false},
		{"textures/gui/button.png.mcmeta", "json", false},
		{"textures/gui/button.png.moremcmeta", "json", false},
		{"GUI.JSON", "json", false},
		{"gui.yaml", "yaml", false},
		{"gui.yml", "yaml", false},
		{"gui.toml", "toml", false},

		{"button.png", "", true},
		{"README", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			d, err := DetectDecoder(tt.path)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Type())
		})
	}
}

func TestDetectDecoder_ExplicitSet(t *testing.T) {
	_, err := DetectDecoder("gui.json", &YAMLDecoder{})
	assert.Error(t, err, "json is not in the given set")

	d, err := DetectDecoder("gui.yml", &YAMLDecoder{})
	require.NoError(t, err)
	assert.Equal(t, "yaml", d.Type())
}

func TestParse_FormatsAgree(t *testing.T) {
	docs := map[string]string{
		"gui.json": nineSliceJSON,
		"gui.yaml": nineSliceYAML,
		"gui.toml": nineSliceTOML,
	}

	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			view, err := Parse(name, []byte(doc))
			require.NoError(t, err)

			scaling, ok := view.SubView("scaling")
			require.True(t, ok)

			typ, ok := scaling.StringValue("type")
			require.True(t, ok)
			assert.Equal(t, "nine_slice", typ)

			width, ok := scaling.IntegerValue("width")
			require.True(t, ok)
			assert.Equal(t, 200, width)

			border, ok := scaling.SubView("border")
			require.True(t, ok)
			for key, want := range map[string]int{"left": 1, "right": 2, "top": 3, "bottom": 4} {
				got, ok := border.IntegerValue(key)
				require.True(t, ok, key)
				assert.Equal(t, want, got, key)
			}
		})
	}
}

func TestParse_EmptyDocuments(t *testing.T) {
	for _, name := range []string{"a.json", "a.yaml", "a.toml"} {
		t.Run(name, func(t *testing.T) {
			view, err := Parse(name, []byte("  \n"))
			require.NoError(t, err)
			_, ok := view.SubView("scaling")
			assert.False(t, ok)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := map[string]string{
		"bad.json":      `{"scaling": `,
		"trailing.json": `{"a": 1} {"b": 2}`,
		"array.json":    `[1, 2]`,
		"bad.yaml":      "scaling: [unclosed",
		"list.yaml":     "- a\n- b\n",
		"bad.toml":      "[scaling\ntype = ",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(name, []byte(doc))
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeInvalidFormat, errors.GetCode(err))
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "button.png.moremcmeta")
	require.NoError(t, os.WriteFile(path, []byte(nineSliceJSON), 0o600))

	view, err := Load(path)
	require.NoError(t, err)
	_, ok := view.SubView("scaling")
	assert.True(t, ok)

	_, err = Load(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))

	_, err = Load("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidPath))
}
