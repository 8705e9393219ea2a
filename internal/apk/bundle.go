package apk

import (
	"archive/zip"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"uilift/pkg/extract"
)

// unpackBundle extracts every archive entry beneath dest. Entry paths are
// confined to dest so a hostile archive cannot write outside the unpack dir.
func unpackBundle(bundlePath, dest string) error {
	reader, err := zip.OpenReader(bundlePath)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer reader.Close()

	for _, entry := range reader.File {
		if err := extractEntry(entry, dest); err != nil {
			return fmt.Errorf("extract %s: %w", entry.Name, err)
		}
	}
	return nil
}

func extractEntry(entry *zip.File, dest string) error {
	target := filepath.Join(dest, filepath.FromSlash(entry.Name))
	if !strings.HasPrefix(target, filepath.Clean(dest)+string(os.PathSeparator)) {
		return fmt.Errorf("entry path escapes unpack dir")
	}
	if entry.FileInfo().IsDir() {
		return os.MkdirAll(target, 0o755)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	in, err := entry.Open()
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(target)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}

// bundleDigest hashes the bundle file so templates record which exact
// artifact they came from.
func bundleDigest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// stageAssets copies bitmap resources from every drawable directory into the
// per-run staging dir under the cache root. Individual copy failures degrade
// to warnings; only a failure to create the staging dir itself surfaces.
func (e *Extractor) stageAssets(workDir, runID string) (map[string]string, []string) {
	assets := make(map[string]string)
	var warnings []string

	var files []string
	_ = filepath.WalkDir(workDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if !strings.Contains(filepath.Base(filepath.Dir(path)), "drawable") {
			return nil
		}
		if isBitmap(path) {
			files = append(files, path)
		}
		return nil
	})
	if len(files) == 0 {
		return assets, warnings
	}

	stagingDir, err := extract.AssetStagingDir(e.cacheRoot, runID)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("asset staging unavailable: %v", err))
		return assets, warnings
	}
	for _, src := range files {
		name := filepath.Base(src)
		staged, err := extract.StageFile(stagingDir, name, src)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("asset %s skipped: %v", name, err))
			continue
		}
		assets[name] = staged
	}
	return assets, warnings
}

func isBitmap(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
		return true
	}
	return false
}

// countResources tallies files per resource type directory (layout, drawable,
// values, ...) so template metadata records what the bundle shipped.
func countResources(workDir string) map[string]int {
	counts := make(map[string]int)
	resRoot := filepath.Join(workDir, "res")
	entries, err := os.ReadDir(resRoot)
	if err != nil {
		return nil
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		kind, _, _ := strings.Cut(entry.Name(), "-")
		n := countFiles(filepath.Join(resRoot, entry.Name()))
		if n > 0 {
			counts[kind] += n
		}
	}
	if len(counts) == 0 {
		return nil
	}
	return counts
}

func countFiles(dir string) int {
	total := 0
	_ = filepath.WalkDir(dir, func(_ string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			total++
		}
		return nil
	})
	return total
}
