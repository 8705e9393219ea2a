package apk

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"

	"uilift/pkg/ir"
)

// viewKinds maps layout element tags (last dot segment, so qualified names
// like androidx.cardview.widget.CardView resolve too) onto component kinds.
// Tags outside the table degrade to KindUnknown.
var viewKinds = map[string]ir.Kind{
	"LinearLayout":     ir.KindLayout,
	"RelativeLayout":   ir.KindLayout,
	"FrameLayout":      ir.KindLayout,
	"ConstraintLayout": ir.KindLayout,
	"Button":           ir.KindButton,
	"TextView":         ir.KindLabel,
	"EditText":         ir.KindTextField,
	"ImageView":        ir.KindImage,
	"RecyclerView":     ir.KindList,
	"ListView":         ir.KindList,
	"GridView":         ir.KindGrid,
	"CheckBox":         ir.KindCheckbox,
	"RadioButton":      ir.KindRadio,
	"Spinner":          ir.KindDropdown,
	"SeekBar":          ir.KindSlider,
	"ProgressBar":      ir.KindProgress,
	"TabLayout":        ir.KindTab,
	"CardView":         ir.KindCard,
}

// presentationAttrs maps layout attributes onto style keys. Everything else
// stays a plain property.
var presentationAttrs = map[string]string{
	"layout_width":  "width",
	"layout_height": "height",
	"padding":       "padding",
	"textSize":      "font-size",
	"textColor":     "color",
	"textStyle":     "font-style",
	"background":    "background",
}

// buildScreens converts every res/layout/*.xml into one screen named after
// the file. Unparsable layouts are skipped with a warning rather than
// aborting the extraction.
func buildScreens(workDir string) (map[string]*ir.Node, []string) {
	screens := make(map[string]*ir.Node)
	var warnings []string

	layoutDir := filepath.Join(workDir, "res", "layout")
	entries, err := os.ReadDir(layoutDir)
	if err != nil {
		return screens, warnings
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".xml") {
			continue
		}
		path := filepath.Join(layoutDir, entry.Name())
		doc := etree.NewDocument()
		if err := doc.ReadFromFile(path); err != nil {
			warnings = append(warnings, fmt.Sprintf("layout %s skipped: %v", entry.Name(), err))
			continue
		}
		root := doc.Root()
		if root == nil {
			warnings = append(warnings, fmt.Sprintf("layout %s skipped: no root element", entry.Name()))
			continue
		}
		screenName := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		screens[screenName] = convertElement(root)
	}
	return screens, warnings
}

// convertElement lowers one layout element and its subtree into a node.
func convertElement(el *etree.Element) *ir.Node {
	tag := el.Tag
	if idx := strings.LastIndex(tag, "."); idx >= 0 {
		tag = tag[idx+1:]
	}
	kind, ok := viewKinds[tag]
	if !ok {
		kind = ir.KindUnknown
	}

	node := ir.NewNode(kind, "")
	for _, attr := range el.Attr {
		if attr.Space == "xmlns" || attr.Key == "xmlns" {
			continue
		}
		node.Properties[attr.Key] = attr.Value
		if styleKey, ok := presentationAttrs[attr.Key]; ok {
			node.Style[styleKey] = attr.Value
		}
	}
	node.ID = cleanViewID(node.Properties["id"])

	for _, child := range el.ChildElements() {
		node.AddChild(convertElement(child))
	}
	return node
}

// cleanViewID strips the resource reference prefix so emitted identifiers
// read like names instead of @+id expressions.
func cleanViewID(raw string) string {
	id := strings.TrimPrefix(raw, "@+id/")
	id = strings.TrimPrefix(id, "@id/")
	return id
}
