// Package fsblob is a plain-directory durable tier for development and tests.
//
// Each entry is one file. File names are the base64url-encoded durable key,
// so arbitrary keys (including path separators) cannot escape the root
// directory. Writes go through a temp file and rename, so readers never see
// a partial payload.
package fsblob

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aligent/hybridstore/durable"
)

type Dir struct {
	root string
}

var _ durable.Store = (*Dir)(nil)

func New(root string) (*Dir, error) {
	if root == "" {
		return nil, errors.New("fsblob: root directory is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("fsblob: create root: %w", err)
	}
	return &Dir{root: root}, nil
}

func (d *Dir) path(key string) string {
	name := base64.RawURLEncoding.EncodeToString([]byte(key))
	return filepath.Join(d.root, name+".blob")
}

func (d *Dir) Read(_ context.Context, key string) ([]byte, bool, error) {
	payload, err := os.ReadFile(d.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return payload, true, nil
}

func (d *Dir) Write(_ context.Context, key string, payload []byte) error {
	dst := d.path(key)
	tmp, err := os.CreateTemp(d.root, ".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dst)
}

func (d *Dir) Delete(_ context.Context, key string) error {
	err := os.Remove(d.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (d *Dir) Close(context.Context) error { return nil }
