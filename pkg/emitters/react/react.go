// Package react plans a React project from a template: a theme module, one
// function component per screen and an App entry rendering the first screen.
// Extracted text is sanitized before it lands in JSX.
package react

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

// TargetID is the registry id for the React back-end.
const TargetID = "component-web"

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

// Emitter lowers templates into a React project layout.
type Emitter struct {
	engine *template.Engine
	policy *bluemonday.Policy
}

var _ emit.Emitter = (*Emitter)(nil)

// New constructs the React emitter.
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

// Primitive reports the JSX element emitted for kind.
func (e *Emitter) Primitive(kind ir.Kind) string { return elementFor(kind) }

// Plan implements emit.Emitter.
func (e *Emitter) Plan(t *ir.Template) (*emit.Plan, error) {
	plan := emit.NewPlan(TargetID)

	theme, err := e.engine.RenderTemplate("templates/theme.js", map[string]any{
		"colors":     sortedTokens(t.Style.Colors),
		"typography": typographyEntries(t.Style.Typography),
		"spacing":    sortedTokens(t.Style.Dimensions),
	})
	if err != nil {
		return nil, fmt.Errorf("react: render theme: %w", err)
	}
	plan.AddFileString("src/theme.js", theme)

	screens := t.ScreenNames()
	for _, screen := range screens {
		name := emit.PascalCase(screen)
		plan.AddFileString("src/components/"+name+".js", e.componentJS(name, t.Screens[screen]))
	}
	plan.AddFileString("src/App.js", appJS(screens))

	for _, name := range sortedKeys(t.Assets) {
		src := t.Assets[name]
		plan.AddAsset(src, "public/assets/"+filepath.Base(src))
	}
	return plan, nil
}

// elementFor maps every component kind onto a JSX element. Unknown maps to a
// plain div.
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

func (e *Emitter) componentJS(name string, root *ir.Node) string {
	var b strings.Builder
	b.WriteString("import React from 'react';\n")
	b.WriteString("import { colors, typography, spacing } from '../theme';\n\n")
	fmt.Fprintf(&b, "const %s = () => {\n", name)
	b.WriteString("  return (\n")
	e.writeJSX(&b, root, 2, emit.NewIDAllocator())
	b.WriteString("\n  );\n")
	b.WriteString("};\n\n")
	fmt.Fprintf(&b, "export default %s;\n", name)
	return b.String()
}

func appJS(screens []string) string {
	var b strings.Builder
	b.WriteString("import React from 'react';\n")
	for _, screen := range screens {
		name := emit.PascalCase(screen)
		fmt.Fprintf(&b, "import %s from './components/%s';\n", name, name)
	}
	b.WriteString("\nimport { colors } from './theme';\n\n")
	b.WriteString("function App() {\n")
	b.WriteString("  return (\n")
	b.WriteString("    <div className=\"App\" style={{ backgroundColor: colors.background }}>\n")
	if len(screens) > 0 {
		fmt.Fprintf(&b, "      <%s />\n", emit.PascalCase(screens[0]))
	}
	b.WriteString("    </div>\n")
	b.WriteString("  );\n")
	b.WriteString("}\n\n")
	b.WriteString("export default App;\n")
	return b.String()
}

var voidElements = map[string]bool{
	"img": true, "input": true, "br": true, "hr": true, "meta": true, "link": true,
}

func (e *Emitter) writeJSX(b *strings.Builder, node *ir.Node, indent int, alloc *emit.IDAllocator) {
	pad := strings.Repeat("  ", indent)
	element := elementFor(node.Kind)
	if node.Kind == ir.KindTextField && node.Property("multiline", "") == "true" {
		element = "textarea"
	}

	id := alloc.Claim(string(node.Kind), node.ID)
	b.WriteString(pad + "<" + element)
	if node.ID != "" {
		fmt.Fprintf(b, ` id="%s"`, id)
	}

	switch node.Kind {
	case ir.KindTextField:
		if placeholder := node.Property("placeholder", ""); placeholder != "" {
			fmt.Fprintf(b, ` placeholder="%s"`, e.policy.Sanitize(placeholder))
		}
	case ir.KindButton:
		b.WriteString(" onClick={() => {}}")
	case ir.KindCheckbox:
		b.WriteString(` type="checkbox"`)
	case ir.KindRadio:
		b.WriteString(` type="radio"`)
	case ir.KindSlider:
		b.WriteString(` type="range"`)
	case ir.KindImage:
		src := node.Property("src", "/assets/placeholder.png")
		alt := node.Property("alt", "Image")
		fmt.Fprintf(b, ` src="%s" alt="%s"`, e.policy.Sanitize(src), e.policy.Sanitize(alt))
	}

	if props := styleProps(node.Style); len(props) > 0 {
		b.WriteString(" style={{\n")
		for i, prop := range props {
			b.WriteString(pad + "  " + prop)
			if i < len(props)-1 {
				b.WriteString(",")
			}
			b.WriteString("\n")
		}
		b.WriteString(pad + "}}")
	}

	if len(node.Children) == 0 && voidElements[element] {
		b.WriteString(" />")
		return
	}
	b.WriteString(">")

	if node.Kind == ir.KindButton || node.Kind == ir.KindLabel {
		if text := node.Property("text", ""); text != "" {
			b.WriteString(e.policy.Sanitize(text))
		}
	}
	if len(node.Children) > 0 {
		b.WriteString("\n")
		for _, child := range node.Children {
			e.writeJSX(b, child, indent+1, alloc)
			b.WriteString("\n")
		}
		b.WriteString(pad)
	}
	b.WriteString("</" + element + ">")
}

// styleProps converts a style map into sorted camelCase JS object entries.
func styleProps(style map[string]string) []string {
	props := make([]string, 0, len(style))
	for _, key := range sortedKeys(style) {
		props = append(props, fmt.Sprintf("%s: '%s'", camelCase(key), jsEscape(style[key])))
	}
	return props
}

func camelCase(key string) string {
	if !strings.Contains(key, "-") {
		return key
	}
	parts := strings.Split(key, "-")
	var b strings.Builder
	b.WriteString(parts[0])
	for _, part := range parts[1:] {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}
	return b.String()
}

func jsEscape(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`)
	return replacer.Replace(s)
}

type token struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type typographyEntry struct {
	Name   string  `json:"name"`
	Family string  `json:"family"`
	Props  []token `json:"props"`
}

func typographyEntries(typography map[string]ir.FontSpec) []typographyEntry {
	names := make([]string, 0, len(typography))
	for name := range typography {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]typographyEntry, 0, len(names))
	for _, name := range names {
		spec := typography[name]
		if spec.Family != "" {
			entries = append(entries, typographyEntry{Name: name, Family: spec.Family})
			continue
		}
		var props []token
		if spec.Size != "" {
			props = append(props, token{Name: "size", Value: spec.Size})
		}
		if spec.Weight != "" {
			props = append(props, token{Name: "weight", Value: spec.Weight})
		}
		if spec.Transform != "" {
			props = append(props, token{Name: "transform", Value: spec.Transform})
		}
		entries = append(entries, typographyEntry{Name: name, Props: props})
	}
	return entries
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
