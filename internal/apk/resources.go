package apk

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
)

// canonicalColorKey maps a provider resource name onto a canonical palette
// slot by substring, or "" when nothing matches. Text variants are checked
// first so names like textColorPrimary land on the text slots instead of the
// brand slots.
func canonicalColorKey(name string) string {
	n := strings.ToLower(name)
	hasText := strings.Contains(n, "text")
	switch {
	case hasText && strings.Contains(n, "primary"):
		return "text_primary"
	case hasText && strings.Contains(n, "secondary"):
		return "text_secondary"
	case strings.Contains(n, "primary"):
		return "primary"
	case strings.Contains(n, "secondary"), strings.Contains(n, "accent"):
		return "secondary"
	case strings.Contains(n, "background"):
		return "background"
	case strings.Contains(n, "surface"):
		return "surface"
	case strings.Contains(n, "error"):
		return "error"
	}
	return ""
}

// canonicalDimensionKey does the same for dimension resource names.
func canonicalDimensionKey(name string) string {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "padding"):
		return "padding"
	case strings.Contains(n, "margin"):
		return "margin"
	case strings.Contains(n, "radius"), strings.Contains(n, "corner"):
		return "border_radius"
	case strings.Contains(n, "icon") && strings.Contains(n, "size"):
		return "icon_size"
	case strings.Contains(n, "button") && strings.Contains(n, "height"):
		return "button_height"
	case strings.Contains(n, "input") && strings.Contains(n, "height"):
		return "input_height"
	}
	return ""
}

// scanColors overlays color resources onto the style map. Unmatched resource
// names are discarded; unparsable files are skipped.
func scanColors(workDir string, colors map[string]string) {
	scanResourceFiles(workDir, "colors.xml", "//color", func(name, value string) {
		if key := canonicalColorKey(name); key != "" {
			colors[key] = value
		}
	})
}

// scanDimensions overlays dimension resources onto the style map.
func scanDimensions(workDir string, dimensions map[string]string) {
	scanResourceFiles(workDir, "dimens.xml", "//dimen", func(name, value string) {
		if key := canonicalDimensionKey(name); key != "" {
			dimensions[key] = value
		}
	})
}

func scanResourceFiles(workDir, fileName, query string, apply func(name, value string)) {
	_ = filepath.WalkDir(workDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Base(path) != fileName {
			return nil
		}
		doc := etree.NewDocument()
		if err := doc.ReadFromFile(path); err != nil {
			return nil
		}
		for _, el := range doc.FindElements(query) {
			name := el.SelectAttrValue("name", "")
			value := strings.TrimSpace(el.Text())
			if name != "" && value != "" {
				apply(name, value)
			}
		}
		return nil
	})
}
