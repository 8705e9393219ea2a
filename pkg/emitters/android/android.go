// Package android plans Android resource and layout files from a template.
// The theming files (colors, dimens, styles) come from embedded templates;
// screen layouts are built as XML element trees so attribute values are
// escaped properly.
package android

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

// TargetID is the registry id for the Android back-end.
const TargetID = "mobile-native"

const (
	valuesDir   = "app/src/main/res/values"
	layoutDir   = "app/src/main/res/layout"
	drawableDir = "app/src/main/res/drawable"
)

// Option customises the emitter.
type Option func(*config)

type config struct {
	templates fs.FS
}

// WithTemplatesFS overrides the embedded resource templates.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templates = files
		}
	}
}

// Emitter lowers templates into an Android project layout.
type Emitter struct {
	engine *template.Engine
}

var _ emit.Emitter = (*Emitter)(nil)

// New constructs the Android emitter.
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

// Primitive reports the Android view class emitted for kind.
func (e *Emitter) Primitive(kind ir.Kind) string { return viewFor(kind) }

// Plan implements emit.Emitter.
func (e *Emitter) Plan(t *ir.Template) (*emit.Plan, error) {
	plan := emit.NewPlan(TargetID)

	colors, err := e.engine.RenderTemplate("templates/colors.xml", map[string]any{
		"colors": sortedTokens(t.Style.Colors, nil),
	})
	if err != nil {
		return nil, fmt.Errorf("android: render colors: %w", err)
	}
	plan.AddFileString(valuesDir+"/colors.xml", colors)

	dimens, err := e.engine.RenderTemplate("templates/dimens.xml", map[string]any{
		"dimens": sortedTokens(t.Style.Dimensions, dimenValue),
	})
	if err != nil {
		return nil, fmt.Errorf("android: render dimens: %w", err)
	}
	plan.AddFileString(valuesDir+"/dimens.xml", dimens)

	styles, err := e.engine.RenderTemplate("templates/styles.xml", nil)
	if err != nil {
		return nil, fmt.Errorf("android: render styles: %w", err)
	}
	plan.AddFileString(valuesDir+"/styles.xml", styles)

	for _, screen := range t.ScreenNames() {
		layout, err := layoutXML(t.Screens[screen])
		if err != nil {
			return nil, fmt.Errorf("android: layout %s: %w", screen, err)
		}
		plan.AddFileString(layoutDir+"/"+resourceName(screen)+".xml", layout)
	}

	for _, name := range sortedKeys(t.Assets) {
		src := t.Assets[name]
		plan.AddAsset(src, drawableDir+"/"+filepath.Base(src))
	}
	return plan, nil
}

// viewFor maps every component kind onto an Android view class. Unknown maps
// to the bare View primitive.
func viewFor(kind ir.Kind) string {
	switch kind {
	case ir.KindButton:
		return "Button"
	case ir.KindTextField:
		return "EditText"
	case ir.KindLabel:
		return "TextView"
	case ir.KindImage:
		return "ImageView"
	case ir.KindLayout, ir.KindNavigation, ir.KindMenu, ir.KindDialog:
		return "LinearLayout"
	case ir.KindList:
		return "ListView"
	case ir.KindGrid:
		return "GridView"
	case ir.KindTab:
		return "TabLayout"
	case ir.KindCheckbox:
		return "CheckBox"
	case ir.KindRadio:
		return "RadioButton"
	case ir.KindDropdown:
		return "Spinner"
	case ir.KindSlider:
		return "SeekBar"
	case ir.KindProgress:
		return "ProgressBar"
	case ir.KindCard:
		return "CardView"
	case ir.KindUnknown:
		return "View"
	}
	return "View"
}

func layoutXML(root *ir.Node) (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)

	el := doc.CreateElement(viewFor(root.Kind))
	el.CreateAttr("xmlns:android", "http://schemas.android.com/apk/res/android")
	el.CreateAttr("xmlns:app", "http://schemas.android.com/apk/res-auto")
	el.CreateAttr("android:layout_width", "match_parent")
	el.CreateAttr("android:layout_height", "match_parent")
	if root.Kind == ir.KindLayout {
		el.CreateAttr("android:orientation", "vertical")
	}

	alloc := emit.NewIDAllocator()
	alloc.Claim(string(root.Kind), root.ID)
	for _, child := range root.Children {
		appendView(el, child, alloc)
	}

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

func appendView(parent *etree.Element, node *ir.Node, alloc *emit.IDAllocator) {
	el := parent.CreateElement(viewFor(node.Kind))
	el.CreateAttr("android:layout_width", sizeValue(node.Style["width"]))
	el.CreateAttr("android:layout_height", sizeValue(node.Style["height"]))

	id := alloc.Claim(string(node.Kind), node.ID)
	if node.ID != "" {
		el.CreateAttr("android:id", "@+id/"+id)
	}

	switch node.Kind {
	case ir.KindButton, ir.KindLabel:
		if text := node.Property("text", ""); text != "" {
			el.CreateAttr("android:text", text)
		}
	case ir.KindTextField:
		if hint := node.Property("placeholder", ""); hint != "" {
			el.CreateAttr("android:hint", hint)
		}
		if node.Property("multiline", "") == "true" {
			el.CreateAttr("android:inputType", "textMultiLine")
			el.CreateAttr("android:gravity", "top|start")
		}
	}

	if bg := node.Style["background"]; bg != "" {
		el.CreateAttr("android:background", bg)
	}
	if color := node.Style["color"]; color != "" && isTextKind(node.Kind) {
		el.CreateAttr("android:textColor", color)
	}
	if padding := node.Style["padding"]; padding != "" {
		el.CreateAttr("android:padding", dpValue(padding))
	}
	if margin := node.Style["margin"]; margin != "" {
		el.CreateAttr("android:layout_margin", dpValue(margin))
	}
	if node.Style["position"] == "absolute" {
		el.CreateAttr("android:layout_marginLeft", dpValue(styleOr(node, "left", "0px")))
		el.CreateAttr("android:layout_marginTop", dpValue(styleOr(node, "top", "0px")))
	}
	if size := node.Style["font-size"]; size != "" && isTextKind(node.Kind) {
		el.CreateAttr("android:textSize", spValue(size))
	}

	for _, child := range node.Children {
		appendView(el, child, alloc)
	}
}

func isTextKind(kind ir.Kind) bool {
	return kind == ir.KindButton || kind == ir.KindLabel || kind == ir.KindTextField
}

func styleOr(node *ir.Node, key, fallback string) string {
	if value := node.Style[key]; value != "" {
		return value
	}
	return fallback
}

// sizeValue converts a width/height style string into an Android layout size.
func sizeValue(raw string) string {
	if raw == "" {
		return "wrap_content"
	}
	if dim, ok := ir.ParseDimension(raw); ok {
		switch dim.Unit {
		case ir.UnitFill:
			return "match_parent"
		case ir.UnitIntrinsic:
			return "wrap_content"
		case ir.UnitPercent:
			if dim.Magnitude == 100 {
				return "match_parent"
			}
		case ir.UnitPx:
			return dim.Scalar() + "dp"
		}
	}
	return strings.ReplaceAll(raw, "px", "dp")
}

func dpValue(raw string) string {
	if dim, ok := ir.ParseDimension(raw); ok && dim.Unit == ir.UnitPx {
		return dim.Scalar() + "dp"
	}
	return strings.ReplaceAll(raw, "px", "dp")
}

func spValue(raw string) string {
	if dim, ok := ir.ParseDimension(raw); ok && dim.Unit == ir.UnitPx {
		return dim.Scalar() + "sp"
	}
	return strings.ReplaceAll(raw, "px", "sp")
}

// dimenValue converts one style dimension into an Android resource value:
// font and text entries become sp, everything else dp.
func dimenValue(name, value string) string {
	if strings.HasSuffix(value, "dp") || strings.HasSuffix(value, "sp") {
		return value
	}
	if strings.Contains(name, "font") || strings.Contains(name, "text") {
		return spValue(value)
	}
	return dpValue(value)
}

// resourceName lowers a screen name into a valid resource file name.
func resourceName(screen string) string {
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

func sortedTokens(m map[string]string, transform func(name, value string) string) []token {
	tokens := make([]token, 0, len(m))
	for _, name := range sortedKeys(m) {
		value := m[name]
		if transform != nil {
			value = transform(name, value)
		}
		tokens = append(tokens, token{Name: name, Value: value})
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
