package uilift

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"uilift/pkg/emit"
)

func TestExtractSiteThenApplyStaticWeb(t *testing.T) {
	ctx := context.Background()

	result, err := ExtractSite(ctx, "https://example.com")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if result.Partial() {
		t.Fatalf("expected complete extraction, warnings: %v", result.Warnings)
	}

	root := t.TempDir()
	applied, err := Apply(ctx, result.Template, root, "static-web")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if applied.Target != "static-web" {
		t.Fatalf("target: %q", applied.Target)
	}
	if len(applied.Written) == 0 {
		t.Fatal("no files written")
	}

	page, err := os.ReadFile(filepath.Join(root, "home.html"))
	if err != nil {
		t.Fatalf("read page: %v", err)
	}
	if !strings.Contains(string(page), ">Get Started</button>") {
		t.Fatalf("hero call to action missing from page:\n%s", page)
	}

	css, err := os.ReadFile(filepath.Join(root, "css", "styles.css"))
	if err != nil {
		t.Fatalf("read stylesheet: %v", err)
	}
	if !strings.Contains(string(css), "#home_cta_button, .home_cta_button {") {
		t.Fatal("call-to-action rule missing from stylesheet")
	}
}

func TestApplyRejectsUnknownTarget(t *testing.T) {
	ctx := context.Background()

	result, err := ExtractSite(ctx, "https://example.com")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	_, err = Apply(ctx, result.Template, t.TempDir(), "motif")
	var unsupported *emit.UnsupportedTargetError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedTargetError, got %v", err)
	}
}

func TestTargetsSorted(t *testing.T) {
	want := []string{"component-web", "desktop-native", "mobile-native", "reactive-mobile", "static-web"}
	got := Targets()
	if len(got) != len(want) {
		t.Fatalf("targets: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("targets[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
