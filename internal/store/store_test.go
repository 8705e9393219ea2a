package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uilift/pkg/extract"
	"uilift/pkg/ir"
)

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	}
}

func sampleTemplate(name string) *ir.Template {
	root := ir.NewNode(ir.KindLayout, "root")
	root.AddChild(ir.NewNode(ir.KindLabel, "title"))
	return &ir.Template{
		Name:    name,
		Style:   ir.DefaultStyle(),
		Screens: map[string]*ir.Node{"home": root},
	}
}

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"UI from google.com":  "UI_from_googlecom",
		"My App":              "My_App",
		"  padded  ":          "padded",
		"!!!":                 "template",
		"":                    "template",
		"Design (v2) / final": "Design_v2__final",
	}
	for input, want := range cases {
		assert.Equal(t, want, Slug(input), "slug of %q", input)
	}
}

func TestSaveNamesExports(t *testing.T) {
	s, err := New(t.TempDir(), WithClock(fixedClock()))
	require.NoError(t, err)

	path, err := s.Save(sampleTemplate("UI from google.com"))
	require.NoError(t, err)

	assert.Equal(t, "UI_from_googlecom_20240315_103000.json", filepath.Base(path))
	assert.FileExists(t, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	decoded, err := ir.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "UI from google.com", decoded.Name)
}

func TestListSortsByName(t *testing.T) {
	s, err := New(t.TempDir(), WithClock(fixedClock()))
	require.NoError(t, err)

	_, err = s.Save(sampleTemplate("beta"))
	require.NoError(t, err)
	_, err = s.Save(sampleTemplate("alpha"))
	require.NoError(t, err)

	paths, err := s.List()
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, "alpha_20240315_103000.json", filepath.Base(paths[0]))
	assert.Equal(t, "beta_20240315_103000.json", filepath.Base(paths[1]))
}

func TestListEmptyStore(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	paths, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestLoadServesRepeatsFromCache(t *testing.T) {
	s, err := New(t.TempDir(), WithClock(fixedClock()))
	require.NoError(t, err)

	path, err := s.Save(sampleTemplate("cached"))
	require.NoError(t, err)

	first, err := s.Load(path)
	require.NoError(t, err)
	second, err := s.Load(path)
	require.NoError(t, err)

	assert.Same(t, first, second, "unchanged file should hit the decode cache")
}

func TestLoadMissingFile(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	_, err = s.Load(filepath.Join(s.Dir(), "nope.json"))

	var notFound *extract.SourceNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestLoadMalformed(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(s.Dir(), 0o755))

	path := filepath.Join(s.Dir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": 42}`), 0o644))

	_, err = s.Load(path)
	require.Error(t, err)
	var malformed *ir.MalformedIRError
	assert.ErrorAs(t, err, &malformed)
}
