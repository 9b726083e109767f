package store

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// FileNames maps document names to the files of the flat-file layout.
var FileNames = map[string]string{
	Catalog:  "products.json",
	Requests: "service_requests.json",
	Orders:   "orders.json",
}

// FileBackend stores every document as one JSON file under dir.
type FileBackend struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func OpenFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create data dir %s", dir)
	}
	return &FileBackend{dir: dir, locks: make(map[string]*sync.Mutex)}, nil
}

func (b *FileBackend) Path(name string) string {
	if f, ok := FileNames[name]; ok {
		return filepath.Join(b.dir, f)
	}
	return filepath.Join(b.dir, name+".json")
}

func (b *FileBackend) lock(name string) *sync.Mutex {
	b.mu.Lock()
	defer b.mu.Unlock()
	l, ok := b.locks[name]
	if !ok {
		l = &sync.Mutex{}
		b.locks[name] = l
	}
	return l
}

func (b *FileBackend) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(b.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", name)
	}
	return raw, nil
}

func (b *FileBackend) Update(ctx context.Context, name string, fn func(cur []byte) ([]byte, error)) error {
	l := b.lock(name)
	l.Lock()
	defer l.Unlock()

	cur, err := b.Read(ctx, name)
	if err != nil {
		return err
	}
	out, err := fn(cur)
	if err != nil || out == nil {
		return err
	}
	return writeFile(b.Path(name), out)
}

func (b *FileBackend) Close() error { return nil }

// writeFile replaces path via a temp file in the same directory so readers
// never observe a partial document.
func writeFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "sync %s", path)
	}
	mode := os.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "chmod %s", path)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "close %s", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "replace %s", path)
	}
	return nil
}
