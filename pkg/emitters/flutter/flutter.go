// Package flutter plans a Flutter project from a template: a theme file with
// color and spacing constants, one StatelessWidget per screen, and a
// deterministic pubspec.yaml naming the copied asset directory.
package flutter

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"uilift/pkg/emit"
	"uilift/pkg/emit/template"
	"uilift/pkg/ir"
)

// TargetID is the registry id for the Flutter back-end.
const TargetID = "reactive-mobile"

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

// Emitter lowers templates into a Flutter project layout.
type Emitter struct {
	engine *template.Engine
}

var _ emit.Emitter = (*Emitter)(nil)

// New constructs the Flutter emitter.
func New(options ...Option) *Emitter {
	cfg := &config{templates: embeddedTemplates}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}
	return &Emitter{
		engine: template.MustNew(template.WithFS(cfg.templates)),
	}
}

// Name implements emit.Emitter.
func (e *Emitter) Name() string { return TargetID }

// Primitive reports the Flutter widget emitted for kind.
func (e *Emitter) Primitive(kind ir.Kind) string { return widgetFor(kind) }

// Plan implements emit.Emitter.
func (e *Emitter) Plan(t *ir.Template) (*emit.Plan, error) {
	plan := emit.NewPlan(TargetID)

	radius := "4"
	if dim, ok := ir.ParseDimension(t.Style.Dimensions["border_radius"]); ok {
		radius = dim.Scalar()
	}
	theme, err := e.engine.RenderTemplate("templates/theme.dart", map[string]any{
		"colors":  colorTokens(t.Style.Colors),
		"spacing": spacingTokens(t.Style.Dimensions),
		"radius":  radius,
	})
	if err != nil {
		return nil, fmt.Errorf("flutter: render theme: %w", err)
	}
	plan.AddFileString("lib/theme.dart", theme)

	for _, screen := range t.ScreenNames() {
		plan.AddFileString(
			"lib/screens/"+fileName(screen)+"_screen.dart",
			screenDart(screen, t.Screens[screen]),
		)
	}

	pubspec, err := e.engine.RenderTemplate("templates/pubspec.yaml", map[string]any{
		"package":     packageName(t.Name),
		"description": yamlSafe(t.Description, "Generated UI project."),
		"has_assets":  len(t.Assets) > 0,
	})
	if err != nil {
		return nil, fmt.Errorf("flutter: render pubspec: %w", err)
	}
	plan.AddFileString("pubspec.yaml", pubspec)

	for _, name := range sortedKeys(t.Assets) {
		src := t.Assets[name]
		plan.AddAsset(src, "assets/"+filepath.Base(src))
	}
	return plan, nil
}

// widgetFor maps every component kind onto a Flutter widget. Unknown maps to
// a plain Container.
func widgetFor(kind ir.Kind) string {
	switch kind {
	case ir.KindButton:
		return "ElevatedButton"
	case ir.KindTextField:
		return "TextField"
	case ir.KindLabel:
		return "Text"
	case ir.KindImage:
		return "Image"
	case ir.KindLayout:
		return "Container"
	case ir.KindNavigation, ir.KindMenu:
		return "Row"
	case ir.KindList:
		return "ListView"
	case ir.KindGrid:
		return "GridView"
	case ir.KindDialog:
		return "Dialog"
	case ir.KindTab:
		return "TabBar"
	case ir.KindCheckbox:
		return "Checkbox"
	case ir.KindRadio:
		return "Radio"
	case ir.KindDropdown:
		return "DropdownButton"
	case ir.KindSlider:
		return "Slider"
	case ir.KindProgress:
		return "CircularProgressIndicator"
	case ir.KindCard:
		return "Card"
	case ir.KindUnknown:
		return "Container"
	}
	return "Container"
}

func screenDart(name string, root *ir.Node) string {
	var b strings.Builder
	b.WriteString("import 'package:flutter/material.dart';\n")
	b.WriteString("import '../theme.dart';\n\n")

	class := emit.PascalCase(name) + "Screen"
	fmt.Fprintf(&b, "class %s extends StatelessWidget {\n", class)
	fmt.Fprintf(&b, "  const %s({super.key});\n\n", class)
	b.WriteString("  @override\n")
	b.WriteString("  Widget build(BuildContext context) {\n")
	b.WriteString("    return Scaffold(\n")
	b.WriteString("      appBar: AppBar(\n")
	fmt.Fprintf(&b, "        title: Text('%s'),\n", dartString(emit.TitleWords(name)))
	b.WriteString("      ),\n")
	b.WriteString("      body: ")
	writeWidget(&b, root, 3)
	b.WriteString(",\n")
	b.WriteString("    );\n")
	b.WriteString("  }\n")
	b.WriteString("}\n")
	return b.String()
}

// writeWidget emits node starting at the caller's position; continuation
// lines are indented two spaces per level.
func writeWidget(b *strings.Builder, node *ir.Node, indent int) {
	pad := strings.Repeat("  ", indent)
	in1 := pad + "  "
	in2 := in1 + "  "

	switch node.Kind {
	case ir.KindLabel:
		b.WriteString("Text(\n")
		fmt.Fprintf(b, "%s'%s',\n", in1, dartString(node.Property("text", "")))
		if props := textStyleProps(node); len(props) > 0 {
			b.WriteString(in1 + "style: TextStyle(\n")
			for _, prop := range props {
				b.WriteString(in2 + prop + ",\n")
			}
			b.WriteString(in1 + "),\n")
		}
		b.WriteString(pad + ")")

	case ir.KindButton:
		b.WriteString("ElevatedButton(\n")
		b.WriteString(in1 + "onPressed: () {},\n")
		fmt.Fprintf(b, "%schild: Text('%s'),\n", in1, dartString(node.Property("text", "")))
		b.WriteString(pad + ")")

	case ir.KindTextField:
		b.WriteString("TextField(\n")
		b.WriteString(in1 + "decoration: InputDecoration(\n")
		fmt.Fprintf(b, "%shintText: '%s',\n", in2, dartString(node.Property("placeholder", "")))
		b.WriteString(in1 + "),\n")
		if node.Property("multiline", "") == "true" {
			b.WriteString(in1 + "maxLines: null,\n")
		}
		b.WriteString(pad + ")")

	case ir.KindImage:
		fmt.Fprintf(b, "Image.asset('%s')", dartString(node.Property("src", "assets/placeholder.png")))

	case ir.KindLayout, ir.KindUnknown:
		writeContainer(b, node, indent)

	default:
		writeGeneric(b, node, indent)
	}
}

func writeContainer(b *strings.Builder, node *ir.Node, indent int) {
	pad := strings.Repeat("  ", indent)
	in1 := pad + "  "

	b.WriteString("Container(\n")
	for _, prop := range containerProps(node) {
		b.WriteString(in1 + prop + ",\n")
	}
	writeChildArg(b, node, indent)
	b.WriteString(pad + ")")
}

// writeGeneric emits the mapped widget for kinds without a rich translation.
// Required constructor arguments get inert placeholders so the generated file
// stays valid Dart.
func writeGeneric(b *strings.Builder, node *ir.Node, indent int) {
	pad := strings.Repeat("  ", indent)
	in1 := pad + "  "
	in2 := in1 + "  "
	widget := widgetFor(node.Kind)

	switch node.Kind {
	case ir.KindCheckbox:
		b.WriteString("Checkbox(value: false, onChanged: null)")
		return
	case ir.KindRadio:
		b.WriteString("Radio(value: 0, groupValue: 0, onChanged: null)")
		return
	case ir.KindSlider:
		b.WriteString("Slider(value: 0, onChanged: null)")
		return
	case ir.KindDropdown:
		b.WriteString("DropdownButton(items: const [], onChanged: null)")
		return
	case ir.KindTab:
		b.WriteString("TabBar(tabs: const [])")
		return
	}

	if len(node.Children) == 0 {
		b.WriteString(widget + "()")
		return
	}

	switch node.Kind {
	case ir.KindNavigation, ir.KindMenu, ir.KindList:
		b.WriteString(widget + "(\n")
		b.WriteString(in1 + "children: [\n")
		for _, child := range node.Children {
			b.WriteString(in2)
			writeWidget(b, child, indent+2)
			b.WriteString(",\n")
		}
		b.WriteString(in1 + "],\n")
		b.WriteString(pad + ")")
	case ir.KindGrid:
		b.WriteString("GridView.count(\n")
		b.WriteString(in1 + "crossAxisCount: 2,\n")
		b.WriteString(in1 + "children: [\n")
		for _, child := range node.Children {
			b.WriteString(in2)
			writeWidget(b, child, indent+2)
			b.WriteString(",\n")
		}
		b.WriteString(in1 + "],\n")
		b.WriteString(pad + ")")
	default:
		b.WriteString(widget + "(\n")
		writeChildArg(b, node, indent)
		b.WriteString(pad + ")")
	}
}

// writeChildArg emits the child/children argument for a container-style
// widget: a single child inline, multiple children wrapped in a Column.
func writeChildArg(b *strings.Builder, node *ir.Node, indent int) {
	pad := strings.Repeat("  ", indent)
	in1 := pad + "  "
	in2 := in1 + "  "
	in3 := in2 + "  "

	switch len(node.Children) {
	case 0:
	case 1:
		b.WriteString(in1 + "child: ")
		writeWidget(b, node.Children[0], indent+1)
		b.WriteString(",\n")
	default:
		b.WriteString(in1 + "child: Column(\n")
		b.WriteString(in2 + "children: [\n")
		for _, child := range node.Children {
			b.WriteString(in3)
			writeWidget(b, child, indent+3)
			b.WriteString(",\n")
		}
		b.WriteString(in2 + "],\n")
		b.WriteString(in1 + "),\n")
	}
}

func textStyleProps(node *ir.Node) []string {
	var props []string
	if color := node.Style["color"]; color != "" {
		props = append(props, "color: Color("+dartColor(color)+")")
	}
	if size, ok := scalarOf(node.Style["font-size"]); ok {
		props = append(props, "fontSize: "+size)
	}
	switch node.Style["font-weight"] {
	case "bold", "bolder":
		props = append(props, "fontWeight: FontWeight.bold")
	case "normal":
		props = append(props, "fontWeight: FontWeight.normal")
	}
	return props
}

func containerProps(node *ir.Node) []string {
	var props []string
	if width, ok := scalarOf(node.Style["width"]); ok {
		props = append(props, "width: "+width)
	}
	if height, ok := scalarOf(node.Style["height"]); ok {
		props = append(props, "height: "+height)
	}
	if bg := node.Style["background"]; bg != "" {
		props = append(props, "color: Color("+dartColor(bg)+")")
	}
	if padding, ok := scalarOf(node.Style["padding"]); ok {
		props = append(props, "padding: EdgeInsets.all("+padding+")")
	}
	if margin, ok := scalarOf(node.Style["margin"]); ok {
		props = append(props, "margin: EdgeInsets.all("+margin+")")
	}
	return props
}

// scalarOf extracts a bare numeric literal from a pixel-valued style string.
// Percent, fill and intrinsic sizes have no Flutter counterpart here and are
// dropped, matching how containers size to their parent by default.
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

func dartColor(value string) string {
	return strings.Replace(value, "#", "0xFF", 1)
}

func dartString(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `'`, `\'`, `$`, `\$`, "\n", `\n`)
	return replacer.Replace(s)
}

func colorTokens(colors map[string]string) []token {
	tokens := make([]token, 0, len(colors))
	for _, name := range sortedKeys(colors) {
		tokens = append(tokens, token{Name: name, Value: dartColor(colors[name])})
	}
	return tokens
}

func spacingTokens(dimensions map[string]string) []token {
	tokens := make([]token, 0, len(dimensions))
	for _, name := range sortedKeys(dimensions) {
		if value, ok := scalarOf(dimensions[name]); ok {
			tokens = append(tokens, token{Name: name, Value: value})
		}
	}
	return tokens
}

// packageName lowers a template name into a valid pub package name.
func packageName(name string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore && b.Len() > 0 {
				b.WriteRune('_')
				lastUnderscore = true
			}
		}
	}
	out := strings.Trim(b.String(), "_")
	if out == "" {
		return "uilift_app"
	}
	if out[0] >= '0' && out[0] <= '9' {
		out = "app_" + out
	}
	return out
}

// yamlSafe strips characters that would break a plain YAML scalar.
func yamlSafe(s, fallback string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '.', r == '_', r == '-', r == '/':
			b.WriteRune(r)
		}
	}
	out := strings.TrimSpace(b.String())
	if out == "" {
		return fallback
	}
	return out
}

// fileName lowers a screen name for a Dart file path.
func fileName(screen string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(screen) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

type token struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
