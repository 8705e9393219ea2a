package apk

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/beevik/etree"
)

var packagePattern = regexp.MustCompile(`package="([^"]+)"`)

// readPackageName resolves the application identifier. Textual manifests are
// parsed directly; binary-encoded ones defeat the XML parser, so the fallback
// scans every XML entry for a package attribute. Returns "" when nothing
// resolves.
func readPackageName(workDir string) string {
	manifestPath := filepath.Join(workDir, "AndroidManifest.xml")
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(manifestPath); err == nil {
		if root := doc.Root(); root != nil {
			if pkg := root.SelectAttrValue("package", ""); pkg != "" {
				return pkg
			}
		}
	}
	return scanForPackageAttr(workDir)
}

func scanForPackageAttr(workDir string) string {
	var found string
	_ = filepath.WalkDir(workDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".xml") {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		if m := packagePattern.FindSubmatch(data); m != nil {
			found = string(m[1])
			return fs.SkipAll
		}
		return nil
	})
	return found
}

// readAppLabel pulls the human-readable application name out of the string
// resources, when present.
func readAppLabel(workDir string) string {
	var label string
	_ = filepath.WalkDir(workDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Base(path) != "strings.xml" {
			return nil
		}
		doc := etree.NewDocument()
		if err := doc.ReadFromFile(path); err != nil {
			return nil
		}
		if el := doc.FindElement("//string[@name='app_name']"); el != nil {
			if text := strings.TrimSpace(el.Text()); text != "" {
				label = text
				return fs.SkipAll
			}
		}
		return nil
	})
	return label
}
