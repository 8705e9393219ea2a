// Package wpf plans a WPF project from a template: a resource dictionary
// exposing colors, dimension doubles and default control styles, one XAML
// page with code-behind per screen, and an App.xaml that merges the
// dictionary into the application resources.
package wpf

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/beevik/etree"

	"uilift/pkg/emit"
	"uilift/pkg/emit/template"
	"uilift/pkg/ir"
)

// TargetID is the registry id for the WPF back-end.
const TargetID = "desktop-native"

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

// Emitter lowers templates into a WPF project layout.
type Emitter struct {
	engine *template.Engine
}

var _ emit.Emitter = (*Emitter)(nil)

// New constructs the WPF emitter.
func New(options ...Option) *Emitter {
	cfg := &config{templates: embeddedTemplates}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}
	return &Emitter{engine: template.MustNew(template.WithFS(cfg.templates))}
}

// Name implements emit.Emitter.
func (e *Emitter) Name() string { return TargetID }

// Primitive reports the WPF control emitted for kind.
func (e *Emitter) Primitive(kind ir.Kind) string { return controlFor(kind) }

// Plan implements emit.Emitter.
func (e *Emitter) Plan(t *ir.Template) (*emit.Plan, error) {
	plan := emit.NewPlan(TargetID)

	theme, err := e.engine.RenderTemplate("templates/apptheme.xaml", map[string]any{
		"colors":      colorTokens(t.Style.Colors),
		"doubles":     doubleTokens(t.Style.Dimensions),
		"button_size": fontScalar(t.Style.Typography, "button", "14"),
		"body_size":   fontScalar(t.Style.Typography, "body1", "16"),
		"radius":      pxScalar(t.Style.Dimensions["border_radius"], "4"),
	})
	if err != nil {
		return nil, fmt.Errorf("wpf: render theme: %w", err)
	}
	plan.AddFileString("Resources/AppTheme.xaml", theme)

	for _, screen := range t.ScreenNames() {
		page := emit.PascalCase(screen) + "Page"

		xaml, err := pageXAML(screen, t.Screens[screen], t.Style.Dimensions)
		if err != nil {
			return nil, fmt.Errorf("wpf: render page %s: %w", screen, err)
		}
		plan.AddFileString("Views/"+page+".xaml", xaml)

		behind, err := e.engine.RenderTemplate("templates/page.xaml.cs", map[string]any{"page": page})
		if err != nil {
			return nil, fmt.Errorf("wpf: render code-behind %s: %w", screen, err)
		}
		plan.AddFileString("Views/"+page+".xaml.cs", behind)
	}

	app, err := e.engine.RenderTemplate("templates/app.xaml", nil)
	if err != nil {
		return nil, fmt.Errorf("wpf: render application: %w", err)
	}
	plan.AddFileString("App.xaml", app)

	for _, name := range sortedKeys(t.Assets) {
		src := t.Assets[name]
		plan.AddAsset(src, "Images/"+filepath.Base(src))
	}
	return plan, nil
}

// controlFor maps every component kind onto a WPF control. Unknown maps to a
// plain Border.
func controlFor(kind ir.Kind) string {
	switch kind {
	case ir.KindLayout:
		return "Grid"
	case ir.KindButton:
		return "Button"
	case ir.KindTextField:
		return "TextBox"
	case ir.KindLabel:
		return "TextBlock"
	case ir.KindImage:
		return "Image"
	case ir.KindList:
		return "ListView"
	case ir.KindGrid:
		return "Grid"
	case ir.KindNavigation:
		return "StackPanel"
	case ir.KindMenu:
		return "Menu"
	case ir.KindDialog:
		return "Border"
	case ir.KindTab:
		return "TabControl"
	case ir.KindCheckbox:
		return "CheckBox"
	case ir.KindRadio:
		return "RadioButton"
	case ir.KindDropdown:
		return "ComboBox"
	case ir.KindSlider:
		return "Slider"
	case ir.KindProgress:
		return "ProgressBar"
	case ir.KindCard:
		return "Border"
	case ir.KindUnknown:
		return "Border"
	}
	return "Border"
}

func pageXAML(screen string, root *ir.Node, dims map[string]string) (string, error) {
	page := emit.PascalCase(screen) + "Page"

	doc := etree.NewDocument()
	el := doc.CreateElement("Page")
	el.CreateAttr("x:Class", "YourNamespace.Views."+page)
	el.CreateAttr("xmlns", "http://schemas.microsoft.com/winfx/2006/xaml/presentation")
	el.CreateAttr("xmlns:x", "http://schemas.microsoft.com/winfx/2006/xaml")
	el.CreateAttr("xmlns:mc", "http://schemas.openxmlformats.org/markup-compatibility/2006")
	el.CreateAttr("xmlns:d", "http://schemas.microsoft.com/expression/blend/2008")
	el.CreateAttr("mc:Ignorable", "d")
	el.CreateAttr("Title", emit.TitleWords(screen))

	grid := el.CreateElement("Grid")
	appendControl(grid, root, dims, emit.NewIDAllocator())

	doc.Indent(4)
	out, err := doc.WriteToString()
	if err != nil {
		return "", err
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out, nil
}

func appendControl(parent *etree.Element, node *ir.Node, dims map[string]string, alloc *emit.IDAllocator) {
	el := parent.CreateElement(controlFor(node.Kind))

	id := alloc.Claim(string(node.Kind), node.ID)
	if node.ID != "" {
		el.CreateAttr("x:Name", id)
	}

	switch node.Kind {
	case ir.KindButton:
		el.CreateAttr("Style", "{StaticResource DefaultButtonStyle}")
		el.CreateAttr("Content", node.Property("text", ""))
	case ir.KindTextField:
		el.CreateAttr("Style", "{StaticResource DefaultTextBoxStyle}")
		if placeholder := node.Property("placeholder", ""); placeholder != "" {
			el.CreateAttr("Text", placeholder)
		}
		if node.Property("multiline", "") == "true" {
			el.CreateAttr("TextWrapping", "Wrap")
			el.CreateAttr("AcceptsReturn", "True")
		}
	case ir.KindLabel:
		el.CreateAttr("Text", node.Property("text", ""))
		if size, ok := scalarOf(node.Style["font-size"]); ok {
			el.CreateAttr("FontSize", size)
		}
		if color := node.Style["color"]; color != "" {
			el.CreateAttr("Foreground", color)
		}
	case ir.KindImage:
		el.CreateAttr("Source", node.Property("src", "/Images/placeholder.png"))
	case ir.KindCard:
		el.CreateAttr("Background", "{StaticResource surfaceColor}")
		el.CreateAttr("CornerRadius", pxScalar(dims["border_radius"], "4"))
		el.CreateAttr("Padding", "12")
	}

	if width := node.Style["width"]; width != "" && width != "100%" {
		if value, ok := scalarOf(width); ok {
			el.CreateAttr("Width", value)
		}
	}
	if height := node.Style["height"]; height != "" && height != "100%" {
		if value, ok := scalarOf(height); ok {
			el.CreateAttr("Height", value)
		}
	}

	// Buttons and text boxes take background and padding from their
	// dictionary styles.
	styled := node.Kind == ir.KindButton || node.Kind == ir.KindTextField
	if bg := node.Style["background"]; bg != "" && !styled {
		el.CreateAttr("Background", bg)
	}
	if margin, ok := scalarOf(node.Style["margin"]); ok {
		el.CreateAttr("Margin", margin)
	}
	if padding, ok := scalarOf(node.Style["padding"]); ok && !styled {
		el.CreateAttr("Padding", padding)
	}

	if node.Style["position"] == "absolute" {
		left := pxScalar(node.Style["left"], "0")
		top := pxScalar(node.Style["top"], "0")
		el.CreateAttr("HorizontalAlignment", "Left")
		el.CreateAttr("VerticalAlignment", "Top")
		el.CreateAttr("Margin", left+","+top+",0,0")
	}

	for _, child := range node.Children {
		appendControl(el, child, dims, alloc)
	}
}

func scalarOf(raw string) (string, bool) {
	if raw == "" || raw == "100%" {
		return "", false
	}
	dim, ok := ir.ParseDimension(raw)
	if !ok || dim.Unit != ir.UnitPx {
		return "", false
	}
	return dim.Scalar(), true
}

func pxScalar(raw, fallback string) string {
	if raw == "" {
		raw = fallback
	}
	if dim, ok := ir.ParseDimension(raw); ok && dim.Unit == ir.UnitPx {
		return dim.Scalar()
	}
	return strings.TrimSuffix(raw, "px")
}

func fontScalar(typography map[string]ir.FontSpec, role, fallback string) string {
	if spec, ok := typography[role]; ok && spec.Size != "" {
		return pxScalar(spec.Size, fallback)
	}
	return fallback
}

// wpfColor widens #RRGGBB to the #AARRGGBB form WPF brushes expect.
func wpfColor(value string) string {
	if strings.HasPrefix(value, "#") && len(value) == 7 {
		return "#FF" + value[1:]
	}
	return value
}

type token struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func colorTokens(colors map[string]string) []token {
	tokens := make([]token, 0, len(colors))
	for _, name := range sortedKeys(colors) {
		tokens = append(tokens, token{Name: name, Value: wpfColor(colors[name])})
	}
	return tokens
}

// doubleTokens keeps the dimensions that reduce to a pixel scalar. Durations
// and keywords have no double representation.
func doubleTokens(dims map[string]string) []token {
	tokens := make([]token, 0, len(dims))
	for _, name := range sortedKeys(dims) {
		if value, ok := scalarOf(dims[name]); ok {
			tokens = append(tokens, token{Name: name, Value: value})
		}
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
