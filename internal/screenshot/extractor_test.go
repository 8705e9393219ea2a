package screenshot

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"uilift/pkg/extract"
	"uilift/pkg/ir"
)

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func fillRect(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			img.SetRGBA(xx, yy, c)
		}
	}
}

func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", name, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", name, err)
	}
	return path
}

func TestExtractDominantColors(t *testing.T) {
	white := color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	blue := color.RGBA{0x19, 0x76, 0xD2, 0xFF}

	first := solidImage(64, 64, white)
	fillRect(first, 24, 24, 16, 16, blue)
	second := solidImage(64, 64, white)
	fillRect(second, 8, 8, 16, 16, blue)

	dir := t.TempDir()
	paths := []string{
		writePNG(t, dir, "one.png", first),
		writePNG(t, dir, "two.png", second),
	}

	extractor := New(filepath.Join(dir, "cache"))
	result, err := extractor.Extract(context.Background(), paths, "Demo App")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if result.Partial() {
		t.Fatalf("expected complete extraction, warnings: %v", result.Warnings)
	}

	template := result.Template
	if template.Name != "UI from Demo App" {
		t.Fatalf("template name: %q", template.Name)
	}
	if template.Metadata.Source != "screenshots" {
		t.Fatalf("source: %q", template.Metadata.Source)
	}
	if template.Metadata.Platform != "unknown" {
		t.Fatalf("platform: %q", template.Metadata.Platform)
	}
	if template.Metadata.ScreenshotCount != 2 {
		t.Fatalf("screenshot count: %d", template.Metadata.ScreenshotCount)
	}

	colors := template.Style.Colors
	if colors["background"] != "#FFFFFF" || colors["surface"] != "#FFFFFF" {
		t.Fatalf("background %q surface %q", colors["background"], colors["surface"])
	}
	if colors["primary"] != "#1976D2" {
		t.Fatalf("primary: %q", colors["primary"])
	}
	if colors["secondary"] != "#424242" {
		t.Fatalf("secondary should keep default, got %q", colors["secondary"])
	}

	if got := template.ScreenNames(); len(got) != 2 || got[0] != "Screen_1" || got[1] != "Screen_2" {
		t.Fatalf("screens: %v", got)
	}

	root := template.Screens["Screen_1"]
	if root.ID != "root" || root.Kind != ir.KindLayout {
		t.Fatalf("root id %q kind %q", root.ID, root.Kind)
	}
	if root.Style["width"] != "64px" || root.Style["height"] != "64px" {
		t.Fatalf("root style: %v", root.Style)
	}
	if len(root.Children) != 1 {
		t.Fatalf("expected one region, got %d", len(root.Children))
	}
	button := root.Children[0]
	if button.Kind != ir.KindButton || button.ID != "button_0" {
		t.Fatalf("region kind %q id %q", button.Kind, button.ID)
	}
	if button.Style["left"] != "24px" || button.Style["top"] != "24px" {
		t.Fatalf("region position: %v", button.Style)
	}
	if button.Style["width"] != "16px" || button.Style["height"] != "16px" {
		t.Fatalf("region size: %v", button.Style)
	}
	if button.Style["background"] != "#1976D2" {
		t.Fatalf("region background: %q", button.Style["background"])
	}
}

func TestExtractSinglePixelKeepsPaletteComplete(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "tiny.png", solidImage(1, 1, color.RGBA{0x34, 0x56, 0x78, 0xFF}))

	extractor := New(filepath.Join(dir, "cache"))
	result, err := extractor.Extract(context.Background(), []string{path}, "tiny")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if result.Partial() {
		t.Fatalf("expected complete extraction, warnings: %v", result.Warnings)
	}

	colors := result.Template.Style.Colors
	for _, key := range ir.RequiredColorKeys() {
		value := colors[key]
		if len(value) != 7 || !strings.HasPrefix(value, "#") {
			t.Fatalf("color %s not a hex value: %q", key, value)
		}
	}
	if colors["background"] != "#345678" {
		t.Fatalf("background: %q", colors["background"])
	}
	if colors["primary"] != "#1976D2" {
		t.Fatalf("primary should keep default, got %q", colors["primary"])
	}

	staged := result.Template.Assets["screenshot_1"]
	if staged == "" {
		t.Fatalf("expected staged screenshot, assets: %v", result.Template.Assets)
	}
	if _, err := os.Stat(staged); err != nil {
		t.Fatalf("staged asset: %v", err)
	}
}

func TestExtractSkipsUndecodable(t *testing.T) {
	dir := t.TempDir()
	good := writePNG(t, dir, "good.png", solidImage(32, 32, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}))
	broken := filepath.Join(dir, "broken.png")
	if err := os.WriteFile(broken, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("write broken file: %v", err)
	}

	extractor := New(filepath.Join(dir, "cache"))
	result, err := extractor.Extract(context.Background(), []string{good, broken}, "mixed")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if result.Partial() {
		t.Fatalf("one decoded screen should stay complete, warnings: %v", result.Warnings)
	}
	if got := result.Template.ScreenNames(); len(got) != 1 || got[0] != "Screen_1" {
		t.Fatalf("screens: %v", got)
	}
	if len(result.Warnings) == 0 || !strings.Contains(result.Warnings[0], "broken.png") {
		t.Fatalf("warnings: %v", result.Warnings)
	}
	if len(result.Template.Assets) != 2 {
		t.Fatalf("both inputs should be staged, assets: %v", result.Template.Assets)
	}
}

func TestExtractAllUndecodableIsPartial(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.png")
	if err := os.WriteFile(broken, []byte("still not an image"), 0o644); err != nil {
		t.Fatalf("write broken file: %v", err)
	}

	extractor := New(filepath.Join(dir, "cache"))
	result, err := extractor.Extract(context.Background(), []string{broken}, "hopeless")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !result.Partial() {
		t.Fatalf("expected partial result")
	}
	if len(result.Template.Screens) != 0 {
		t.Fatalf("screens: %v", result.Template.ScreenNames())
	}
}

func TestExtractMissingSource(t *testing.T) {
	extractor := New(t.TempDir())

	var notFound *extract.SourceNotFoundError
	_, err := extractor.Extract(context.Background(), []string{"/does/not/exist.png"}, "x")
	if !errors.As(err, &notFound) {
		t.Fatalf("expected SourceNotFoundError, got %v", err)
	}
	if notFound.Path != "/does/not/exist.png" {
		t.Fatalf("path: %q", notFound.Path)
	}

	_, err = extractor.Extract(context.Background(), nil, "x")
	if !errors.As(err, &notFound) {
		t.Fatalf("expected SourceNotFoundError for empty set, got %v", err)
	}
}

func TestExtractWithInjectedDecoder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := 0; i < 2; i++ {
		path := filepath.Join(dir, fmt.Sprintf("frame_%d.png", i))
		if err := os.WriteFile(path, []byte("placeholder"), 0o644); err != nil {
			t.Fatalf("write placeholder: %v", err)
		}
		paths = append(paths, path)
	}

	frame := solidImage(16, 16, color.RGBA{0x10, 0x20, 0x30, 0xFF})
	decoder := DecoderFunc(func(string) (image.Image, error) {
		return frame, nil
	})

	extractor := New(filepath.Join(dir, "cache"), WithDecoder(decoder), WithWorkers(2))
	result, err := extractor.Extract(context.Background(), paths, "stub")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(result.Template.Screens) != 2 {
		t.Fatalf("screens: %v", result.Template.ScreenNames())
	}
	if got := result.Template.Style.Colors["background"]; got != "#102030" {
		t.Fatalf("background: %q", got)
	}
}
