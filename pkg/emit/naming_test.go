package emit_test

import (
	"testing"

	"uilift/pkg/emit"
)

func TestPascalCase(t *testing.T) {
	cases := map[string]string{
		"home_screen": "HomeScreen",
		"Screen_1":    "Screen1",
		"contact":     "Contact",
		"main-menu":   "MainMenu",
	}
	for in, want := range cases {
		if got := emit.PascalCase(in); got != want {
			t.Errorf("PascalCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTitleWords(t *testing.T) {
	if got := emit.TitleWords("home_screen"); got != "Home Screen" {
		t.Fatalf("TitleWords: %q", got)
	}
	if got := emit.TitleWords("Screen_1"); got != "Screen 1" {
		t.Fatalf("TitleWords: %q", got)
	}
}

func TestIDAllocatorKeepsFreeIDsAndResolvesCollisions(t *testing.T) {
	alloc := emit.NewIDAllocator()

	if got := alloc.Claim("layout", "root"); got != "root" {
		t.Fatalf("first claim: %q", got)
	}
	if got := alloc.Claim("button", ""); got != "button_2" {
		t.Fatalf("missing id claim: %q", got)
	}
	if got := alloc.Claim("button", "root"); got != "root_3" {
		t.Fatalf("colliding claim: %q", got)
	}

	// A fresh allocator over the same sequence reproduces the same names.
	again := emit.NewIDAllocator()
	seq := []string{
		again.Claim("layout", "root"),
		again.Claim("button", ""),
		again.Claim("button", "root"),
	}
	want := []string{"root", "button_2", "root_3"}
	for i := range want {
		if seq[i] != want[i] {
			t.Fatalf("replay mismatch at %d: %q != %q", i, seq[i], want[i])
		}
	}
}
