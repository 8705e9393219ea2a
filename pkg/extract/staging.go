package extract

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// AssetStagingDir creates the per-run asset directory under the cache root
// and returns its path. Staged assets outlive the extraction call so the IR
// asset map keeps pointing at real files.
func AssetStagingDir(cacheRoot, extractionID string) (string, error) {
	dir := filepath.Join(cacheRoot, "assets_"+extractionID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("extract: create asset staging dir: %w", err)
	}
	return dir, nil
}

// StageFile copies src into the staging dir under name and returns the staged
// path.
func StageFile(stagingDir, name, src string) (string, error) {
	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("extract: open asset %s: %w", src, err)
	}
	defer in.Close()

	dst := filepath.Join(stagingDir, name)
	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("extract: stage asset %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return "", fmt.Errorf("extract: copy asset %s: %w", name, err)
	}
	return dst, nil
}
