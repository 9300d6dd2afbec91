package storage

import (
	"context"
	"errors"
	"fmt"
	"github.com/spf13/viper"
	"io"
	"os"
	"path/filepath"
)

var (
	ErrTooLarge    = errors.New("slip exceeds size limit")
	ErrOutsideRoot = errors.New("slip path outside upload dir")
)

// DiskSlipStore writes payment slips under upload.dir.
type DiskSlipStore struct {
	Cfg *viper.Viper

	dir      string
	maxBytes int64
}

func (out *DiskSlipStore) Init() error {
	out.dir = out.Cfg.GetString("upload.dir")
	out.maxBytes = out.Cfg.GetInt64("upload.max_bytes")

	if err := os.MkdirAll(out.dir, 0o750); err != nil {
		return fmt.Errorf("create upload dir: %w", err)
	}

	return nil
}

// Save stores r under the base name of filename and fails if it already exists.
func (out *DiskSlipStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := filepath.Join(out.dir, filepath.Base(filename))
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return "", fmt.Errorf("create slip file: %w", err)
	}

	src := r
	if out.maxBytes > 0 {
		src = io.LimitReader(r, out.maxBytes+1)
	}

	n, err := io.Copy(f, src)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err == nil && out.maxBytes > 0 && n > out.maxBytes {
		err = ErrTooLarge
	}
	if err != nil {
		_ = os.Remove(path)
		return "", err
	}

	return path, nil
}

// Remove deletes a slip previously returned by Save. Missing files are not an error.
func (out *DiskSlipStore) Remove(_ context.Context, path string) error {
	if filepath.Dir(filepath.Clean(path)) != filepath.Clean(out.dir) {
		return ErrOutsideRoot
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove slip file: %w", err)
	}

	return nil
}
