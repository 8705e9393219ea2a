// Package web plans a static site from a template: one stylesheet carrying
// design tokens as CSS custom properties plus a rule per generated node id,
// and one HTML page per screen. The stylesheet and the pages are produced by
// the same tree walk so every id referenced by a rule exists in the markup.
package web

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"uilift/pkg/emit"
	"uilift/pkg/emit/template"
	"uilift/pkg/ir"
)

// TargetID is the registry id for the static site back-end.
const TargetID = "static-web"

// Option customises the emitter.
type Option func(*config)

type config struct {
	templates fs.FS
}

// WithTemplatesFS overrides the embedded templates.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templates = files
		}
	}
}

// Emitter lowers templates into plain HTML and CSS.
type Emitter struct {
	engine *template.Engine
	policy *bluemonday.Policy
}

var _ emit.Emitter = (*Emitter)(nil)

// New constructs the static site emitter.
func New(options ...Option) *Emitter {
	cfg := &config{templates: embeddedTemplates}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}
	return &Emitter{
		engine: template.MustNew(template.WithFS(cfg.templates)),
		policy: bluemonday.StrictPolicy(),
	}
}

// Name implements emit.Emitter.
func (e *Emitter) Name() string { return TargetID }

// Primitive reports the HTML element emitted for kind.
func (e *Emitter) Primitive(kind ir.Kind) string { return elementFor(kind) }

// Plan implements emit.Emitter.
func (e *Emitter) Plan(t *ir.Template) (*emit.Plan, error) {
	plan := emit.NewPlan(TargetID)

	// Walk every screen once, producing the page markup and the id/style
	// pairs its stylesheet rules are built from.
	screens := t.ScreenNames()
	pages := make([]page, 0, len(screens))
	var rules []rule
	for _, screen := range screens {
		pg := e.renderPage(t, screen)
		rules = append(rules, pg.rules...)
		pages = append(pages, pg)
	}

	head, err := e.engine.RenderTemplate("templates/styles.css", map[string]any{
		"colors":     sortedTokens(t.Style.Colors),
		"typography": sizedTypography(t.Style.Typography),
		"spacing":    sortedTokens(t.Style.Dimensions),
	})
	if err != nil {
		return nil, fmt.Errorf("web: render stylesheet: %w", err)
	}
	plan.AddFileString("css/styles.css", stylesheet(head, rules))

	for _, pg := range pages {
		plan.AddFileString(pg.name+".html", pg.html)
	}

	for _, name := range sortedKeys(t.Assets) {
		src := t.Assets[name]
		plan.AddAsset(src, "assets/"+filepath.Base(src))
	}
	return plan, nil
}

type page struct {
	name  string
	html  string
	rules []rule
}

// rule is one stylesheet entry keyed by a generated node id. Every node gets
// a rule, even an empty one, so ids in the markup always resolve.
type rule struct {
	id    string
	style map[string]string
}

func (e *Emitter) renderPage(t *ir.Template, screen string) page {
	pg := page{name: screen}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html lang=\"en\">\n")
	b.WriteString("<head>\n")
	b.WriteString("  <meta charset=\"UTF-8\">\n")
	b.WriteString("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	fmt.Fprintf(&b, "  <title>%s</title>\n", e.policy.Sanitize(emit.TitleWords(screen)))
	b.WriteString("  <link rel=\"stylesheet\" href=\"css/styles.css\">\n")
	b.WriteString("</head>\n")
	b.WriteString("<body>\n")

	alloc := emit.NewIDAllocator()
	e.writeElement(&b, &pg, t.Screens[screen], 1, screen, alloc)

	if targets := t.Navigation[screen]; len(targets) > 0 {
		b.WriteString("  <div class=\"navigation\">\n")
		for _, target := range targets {
			fmt.Fprintf(&b, "    <a href=\"%s.html\">%s</a>\n", target, e.policy.Sanitize(emit.TitleWords(target)))
		}
		b.WriteString("  </div>\n")
	}

	b.WriteString("</body>\n")
	b.WriteString("</html>\n")

	pg.html = b.String()
	return pg
}

// elementFor maps every component kind onto an HTML element. Unknown maps to
// a plain div.
func elementFor(kind ir.Kind) string {
	switch kind {
	case ir.KindButton:
		return "button"
	case ir.KindTextField:
		return "input"
	case ir.KindLabel:
		return "p"
	case ir.KindImage:
		return "img"
	case ir.KindLayout, ir.KindGrid, ir.KindDialog, ir.KindTab, ir.KindCard:
		return "div"
	case ir.KindNavigation, ir.KindMenu:
		return "nav"
	case ir.KindList:
		return "ul"
	case ir.KindCheckbox, ir.KindRadio, ir.KindSlider:
		return "input"
	case ir.KindDropdown:
		return "select"
	case ir.KindProgress:
		return "progress"
	case ir.KindUnknown:
		return "div"
	}
	return "div"
}

var voidElements = map[string]bool{
	"img": true, "input": true, "br": true, "hr": true, "meta": true, "link": true,
}

func (e *Emitter) writeElement(b *strings.Builder, pg *page, node *ir.Node, indent int, screen string, alloc *emit.IDAllocator) {
	pad := strings.Repeat("  ", indent)
	element := elementFor(node.Kind)
	if node.Kind == ir.KindTextField && node.Property("multiline", "") == "true" {
		element = "textarea"
	}

	fullID := screen + "_" + alloc.Claim(string(node.Kind), node.ID)
	pg.rules = append(pg.rules, rule{id: fullID, style: node.Style})

	b.WriteString(pad + "<" + element)
	fmt.Fprintf(b, ` id="%s" class="%s %s"`, fullID, fullID, node.Kind)

	switch node.Kind {
	case ir.KindTextField:
		if placeholder := node.Property("placeholder", ""); placeholder != "" {
			fmt.Fprintf(b, ` placeholder="%s"`, e.policy.Sanitize(placeholder))
		}
	case ir.KindCheckbox:
		b.WriteString(` type="checkbox"`)
	case ir.KindRadio:
		b.WriteString(` type="radio"`)
	case ir.KindSlider:
		b.WriteString(` type="range"`)
	case ir.KindImage:
		src := node.Property("src", "assets/placeholder.png")
		alt := node.Property("alt", "Image")
		fmt.Fprintf(b, ` src="%s" alt="%s"`, e.policy.Sanitize(src), e.policy.Sanitize(alt))
	}
	b.WriteString(">")

	if len(node.Children) == 0 && voidElements[element] {
		b.WriteString("\n")
		return
	}

	if node.Kind == ir.KindButton || node.Kind == ir.KindLabel {
		if text := node.Property("text", ""); text != "" {
			b.WriteString(e.policy.Sanitize(text))
		}
	}
	if len(node.Children) > 0 {
		b.WriteString("\n")
		for _, child := range node.Children {
			e.writeElement(b, pg, child, indent+1, screen, alloc)
		}
		b.WriteString(pad)
	}
	b.WriteString("</" + element + ">\n")
}

// stylesheet appends the per-node rules to the rendered token head.
func stylesheet(head string, rules []rule) string {
	var b strings.Builder
	b.WriteString(head)
	for _, r := range rules {
		fmt.Fprintf(&b, "#%s, .%s {\n", r.id, r.id)
		for _, key := range sortedKeys(r.style) {
			fmt.Fprintf(&b, "  %s: %s;\n", key, r.style[key])
		}
		b.WriteString("}\n\n")
	}
	return b.String()
}

type token struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type sizedFont struct {
	Name string `json:"name"`
	Size string `json:"size"`
}

// sizedTypography keeps the roles that carry a size. Bare family entries have
// no font-size variable to declare.
func sizedTypography(typography map[string]ir.FontSpec) []sizedFont {
	names := make([]string, 0, len(typography))
	for name, spec := range typography {
		if spec.Size != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	fonts := make([]sizedFont, 0, len(names))
	for _, name := range names {
		fonts = append(fonts, sizedFont{Name: name, Size: typography[name].Size})
	}
	return fonts
}

func sortedTokens(m map[string]string) []token {
	tokens := make([]token, 0, len(m))
	for _, name := range sortedKeys(m) {
		tokens = append(tokens, token{Name: name, Value: m[name]})
	}
	return tokens
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
