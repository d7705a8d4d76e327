package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/goccy/go-json"
)

var validNamespace = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// FileStore menyimpan satu file JSON per namespace. Dipakai CLI sebagai
// pengganti localStorage browser.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (f *FileStore) path(ns string) (string, error) {
	if !validNamespace.MatchString(ns) {
		return "", fmt.Errorf("invalid storage namespace %q", ns)
	}
	return filepath.Join(f.dir, ns+".json"), nil
}

func (f *FileStore) read(ns string) (map[string]string, error) {
	p, err := f.path(ns)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read storage file: %w", err)
	}
	items := map[string]string{}
	if len(raw) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode storage file %s: %w", p, err)
	}
	return items, nil
}

func (f *FileStore) write(ns string, items map[string]string) error {
	p, err := f.path(ns)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(f.dir, 0o700); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write storage file: %w", err)
	}
	return os.Rename(tmp, p)
}

func (f *FileStore) Get(_ context.Context, ns, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	items, err := f.read(ns)
	if err != nil {
		return "", false, err
	}
	v, ok := items[key]
	return v, ok, nil
}

func (f *FileStore) Set(_ context.Context, ns, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	items, err := f.read(ns)
	if err != nil {
		// file rusak ditimpa, sama seperti localStorage.setItem
		items = map[string]string{}
	}
	items[key] = value
	return f.write(ns, items)
}

func (f *FileStore) Remove(_ context.Context, ns, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	items, err := f.read(ns)
	if err != nil {
		return err
	}
	if _, ok := items[key]; !ok {
		return nil
	}
	delete(items, key)
	return f.write(ns, items)
}

func (f *FileStore) Clear(_ context.Context, ns string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, err := f.path(ns)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear storage file: %w", err)
	}
	return nil
}
