package template_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"uilift/pkg/emit/template"
)

func TestRenderTemplateFromFS(t *testing.T) {
	files := fstest.MapFS{
		"greeting.tmpl": &fstest.MapFile{
			Data: []byte("Hello {{ name }}!"),
		},
	}

	engine, err := template.New(template.WithFS(files))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := engine.RenderTemplate("greeting", map[string]any{"name": "World"})
	if err != nil {
		t.Fatalf("RenderTemplate: %v", err)
	}
	if out != "Hello World!" {
		t.Fatalf("unexpected output: %q", out)
	}

	// Second render hits the parse cache and must produce the same bytes.
	again, err := engine.RenderTemplate("greeting", map[string]any{"name": "World"})
	if err != nil {
		t.Fatalf("RenderTemplate (cached): %v", err)
	}
	if again != out {
		t.Fatalf("cached render differs: %q vs %q", again, out)
	}
}

func TestRenderTemplateUnknownPath(t *testing.T) {
	engine, err := template.New(template.WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatal("expected error for unknown template")
	}
}

func TestRenderStringConvertsStructs(t *testing.T) {
	engine, err := template.New(template.WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	data := struct {
		Title   string   `json:"title"`
		Screens []string `json:"screens"`
	}{
		Title:   "Demo",
		Screens: []string{"home", "contact"},
	}

	out, err := engine.RenderString("{{ title }}: {% for s in screens %}{{ s }} {% endfor %}", data)
	if err != nil {
		t.Fatalf("RenderString: %v", err)
	}
	if out != "Demo: home contact " {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRenderDispatchesInlineContent(t *testing.T) {
	files := fstest.MapFS{
		"page.tmpl": &fstest.MapFile{Data: []byte("from file")},
	}
	engine, err := template.New(template.WithFS(files))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	inline, err := engine.Render("inline {{ v }}", map[string]any{"v": 1})
	if err != nil {
		t.Fatalf("Render inline: %v", err)
	}
	if inline != "inline 1" {
		t.Fatalf("unexpected inline output: %q", inline)
	}

	fromFile, err := engine.Render("page", nil)
	if err != nil {
		t.Fatalf("Render file: %v", err)
	}
	if fromFile != "from file" {
		t.Fatalf("unexpected file output: %q", fromFile)
	}
}

func TestDefaultFilters(t *testing.T) {
	engine, err := template.New(template.WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := engine.RenderString(`{{ "  padded  "|trim }}|{{ "Widget"|lowerfirst }}`, nil)
	if err != nil {
		t.Fatalf("RenderString: %v", err)
	}
	if out != "padded|widget" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestGlobalData(t *testing.T) {
	engine, err := template.New(
		template.WithFS(fstest.MapFS{}),
		template.WithGlobalData(map[string]any{"generator": "uilift"}),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := engine.RenderString("by {{ generator }}", nil)
	if err != nil {
		t.Fatalf("RenderString: %v", err)
	}
	if out != "by uilift" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRegisterFilter(t *testing.T) {
	engine, err := template.New(template.WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	err = engine.RegisterFilter("shout_uilift_test", func(input any, _ any) (any, error) {
		s, _ := input.(string)
		return strings.ToUpper(s), nil
	})
	if err != nil {
		t.Fatalf("RegisterFilter: %v", err)
	}

	out, err := engine.RenderString(`{{ "go"|shout_uilift_test }}`, nil)
	if err != nil {
		t.Fatalf("RenderString: %v", err)
	}
	if out != "GO" {
		t.Fatalf("unexpected output: %q", out)
	}

	// Filter names are process wide.
	if err := engine.RegisterFilter("shout_uilift_test", func(input any, _ any) (any, error) {
		return input, nil
	}); err == nil {
		t.Fatal("expected duplicate filter registration to fail")
	}
}

func TestNewRequiresSource(t *testing.T) {
	if _, err := template.New(); err == nil {
		t.Fatal("expected error when no template source is configured")
	}
}
