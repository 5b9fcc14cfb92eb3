package site

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/clyra-ai/wrkr-docs/internal/walker"
)

// copyStatic copies every file under staticDir into outputDir, keeping
// relative paths. Files whose destination already has the same content are
// left alone. A missing staticDir copies nothing.
func copyStatic(ctx context.Context, staticDir, outputDir string) (copied, skipped int, err error) {
	if staticDir == "" {
		return 0, 0, nil
	}
	files, err := walker.Walk(walker.WalkerConfig{RootDir: staticDir, MaxFileSize: -1})
	if errors.Is(err, fs.ErrNotExist) {
		return 0, 0, nil
	}
	if err != nil {
		return 0, 0, fmt.Errorf("listing static assets: %w", err)
	}

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return copied, skipped, err
		}
		dst := filepath.Join(outputDir, filepath.FromSlash(f.RelPath))
		if hash, err := walker.HashFile(dst); err == nil && hash == f.ContentHash {
			skipped++
			continue
		}
		if err := copyFile(f.Path, dst); err != nil {
			return copied, skipped, fmt.Errorf("copying %s: %w", f.RelPath, err)
		}
		copied++
	}
	return copied, skipped, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
