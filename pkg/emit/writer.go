package emit

import (
	"io"
	"os"
	"path/filepath"
)

// writePlan materializes a plan under root. Parent directories are created on
// demand and staged assets that vanished since extraction are skipped. The
// returned slice holds the absolute paths written so far, in plan order, even
// when an error cuts the run short.
func writePlan(root string, plan *Plan) ([]string, error) {
	written := make([]string, 0, len(plan.Files)+len(plan.Assets))
	for _, file := range plan.Files {
		dest := filepath.Join(root, filepath.FromSlash(file.Path))
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return written, &WriteFailureError{Path: dest, Err: err}
		}
		if err := os.WriteFile(dest, file.Content, 0o644); err != nil {
			return written, &WriteFailureError{Path: dest, Err: err}
		}
		written = append(written, dest)
	}
	for _, asset := range plan.Assets {
		dest := filepath.Join(root, filepath.FromSlash(asset.Dest))
		copied, err := copyAsset(asset.Source, dest)
		if err != nil {
			return written, &WriteFailureError{Path: dest, Err: err}
		}
		if copied {
			written = append(written, dest)
		}
	}
	return written, nil
}

func copyAsset(source, dest string) (bool, error) {
	in, err := os.Open(source)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return false, err
	}
	out, err := os.Create(dest)
	if err != nil {
		return false, err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return false, err
	}
	return true, nil
}
