package cli

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uilift/internal/store"
	"uilift/pkg/ir"
)

func TestExtractSiteStoresTemplate(t *testing.T) {
	opts := testOptions(t)

	out, _, err := runCommand(t, NewExtractCommand(opts), "site", "https://example.com")
	require.NoError(t, err)

	assert.Contains(t, out, `✓ Extracted "UI from https://example.com" (complete)`)
	assert.Contains(t, out, "Screens: 2")
	assert.Contains(t, out, "Template written to ")

	s, err := store.New(opts.Config.CacheDir)
	require.NoError(t, err)
	paths, err := s.List()
	require.NoError(t, err)
	require.Len(t, paths, 1)

	template, err := s.Load(paths[0])
	require.NoError(t, err)
	assert.Equal(t, []string{"contact", "home"}, template.ScreenNames())
	assert.Equal(t, "https://example.com", template.Metadata.Source)
}

func TestExtractSiteJSONEnvelope(t *testing.T) {
	opts := testOptions(t)
	opts.Format = "json"

	out, _, err := runCommand(t, NewExtractCommand(opts), "site", "https://example.com")
	require.NoError(t, err)

	var resp Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok, "data should be an object, got %T", resp.Data)
	assert.Equal(t, "UI from https://example.com", data["name"])
	assert.Equal(t, "complete", data["status"])
	assert.Equal(t, float64(2), data["screens"])
	assert.NotEmpty(t, data["output"])
}

func TestExtractSiteToExplicitPath(t *testing.T) {
	opts := testOptions(t)
	output := filepath.Join(t.TempDir(), "site.json")

	out, _, err := runCommand(t, NewExtractCommand(opts), "site", "https://example.com", "--output", output)
	require.NoError(t, err)
	assert.Contains(t, out, output)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	template, err := ir.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "UI from https://example.com", template.Name)

	// Explicit output bypasses the cache store.
	s, err := store.New(opts.Config.CacheDir)
	require.NoError(t, err)
	paths, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestExtractSiteNameOverride(t *testing.T) {
	opts := testOptions(t)
	output := filepath.Join(t.TempDir(), "site.json")

	_, _, err := runCommand(t, NewExtractCommand(opts), "site", "https://example.com", "--name", "Landing", "--output", output)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	template, err := ir.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "Landing", template.Name)
}

func TestExtractAPKMissingBundle(t *testing.T) {
	opts := testOptions(t)

	out, _, err := runCommand(t, NewExtractCommand(opts), "apk", filepath.Join(t.TempDir(), "nope.apk"))
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error [source_not_found]")
}

func TestExtractScreensRequiresName(t *testing.T) {
	opts := testOptions(t)

	_, _, err := runCommand(t, NewExtractCommand(opts), "screens", "one.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestExtractScreensStoresTemplate(t *testing.T) {
	opts := testOptions(t)
	path := writeScreenshot(t, t.TempDir(), "screen.png")

	out, _, err := runCommand(t, NewExtractCommand(opts), "screens", path, "--name", "Demo App")
	require.NoError(t, err)
	assert.Contains(t, out, `✓ Extracted "UI from Demo App"`)

	s, err := store.New(opts.Config.CacheDir)
	require.NoError(t, err)
	paths, err := s.List()
	require.NoError(t, err)
	require.Len(t, paths, 1)

	template, err := s.Load(paths[0])
	require.NoError(t, err)
	assert.Equal(t, []string{"Screen_1"}, template.ScreenNames())
	assert.Equal(t, 1, template.Metadata.ScreenshotCount)
}

// writeScreenshot renders a white screen with one blue block, enough for the
// vision pipeline to find a region.
func writeScreenshot(t *testing.T, dir, name string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF})
		}
	}
	for y := 24; y < 40; y++ {
		for x := 24; x < 40; x++ {
			img.Set(x, y, color.RGBA{0x19, 0x76, 0xD2, 0xFF})
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}
