package save

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tatianab/monster-game/internal/catalog"
	"github.com/tatianab/monster-game/internal/trainer"
)

const fileExt = ".json"

// FileStore keeps one JSON document per slot in a directory.
type FileStore struct {
	dir string
	cat *catalog.Catalog
}

// NewFileStore returns a store rooted at dir. The directory is created on
// the first save.
func NewFileStore(dir string, cat *catalog.Catalog) *FileStore {
	return &FileStore{dir: dir, cat: cat}
}

func (s *FileStore) path(slot string) string {
	return filepath.Join(s.dir, slot+fileExt)
}

// Save writes the slot through a temporary file so a failed write never
// leaves a truncated save behind.
func (s *FileStore) Save(ctx context.Context, slot string, t *trainer.Trainer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkSlot(slot); err != nil {
		return err
	}
	data, err := Encode(t)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create save dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, slot+".*.tmp")
	if err != nil {
		return fmt.Errorf("save %s: %w", slot, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("save %s: %w", slot, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save %s: %w", slot, err)
	}
	if err := os.Rename(tmp.Name(), s.path(slot)); err != nil {
		return fmt.Errorf("save %s: %w", slot, err)
	}
	return nil
}

func (s *FileStore) Load(ctx context.Context, slot string) (*trainer.Trainer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkSlot(slot); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path(slot))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", slot, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", slot, err)
	}
	t, err := Decode(s.cat, data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", slot, err)
	}
	return t, nil
}

// List returns the saved slot names in sorted order. A missing directory
// has no saves.
func (s *FileStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list saves: %w", err)
	}

	slots := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, fileExt) {
			continue
		}
		slots = append(slots, strings.TrimSuffix(name, fileExt))
	}
	sort.Strings(slots)
	return slots, nil
}

func (s *FileStore) Close() error { return nil }
