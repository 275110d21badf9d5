// Package cas implements a content-addressed, file-backed binary store for resolution results.
package cas

import (
	"bufio"
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/graphcache/internal/core/domain"
	"go.trai.ch/graphcache/internal/core/ports"
	"go.trai.ch/graphcache/internal/engine/codec"
	"go.trai.ch/zerr"
)

var (
	_ ports.BinaryStore  = (*Store)(nil)
	_ ports.BlobHandle   = (*Blob)(nil)
	_ ports.StoreFactory = (*Factory)(nil)
)

const (
	tempPattern = "results-*.tmp"
	blobExt     = ".bin"
)

// Store appends records to a temporary file. Done names the file after the xxhash
// digest of its contents.
type Store struct {
	dir  string
	keep bool

	mu      sync.Mutex
	file    *os.File
	w       *bufio.Writer
	digest  *xxhash.Digest
	scratch bytes.Buffer
	sealed  bool
}

// NewStore creates a store writing into dir. Blobs are deleted on Close unless keep is set.
func NewStore(dir string, keep bool) (*Store, error) {
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}
	f, err := os.CreateTemp(dir, tempPattern)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}
	return &Store{
		dir:    dir,
		keep:   keep,
		file:   f,
		w:      bufio.NewWriter(f),
		digest: xxhash.New(),
	}, nil
}

// Write appends everything fn encodes, or nothing if fn fails.
func (s *Store) Write(fn func(ports.Encoder) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sealed {
		return zerr.Wrap(domain.ErrStoreSealed, "write record")
	}
	s.scratch.Reset()
	if err := fn(codec.NewEncoder(&s.scratch)); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if _, err := s.w.Write(s.scratch.Bytes()); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", s.file.Name())
	}
	_, _ = s.digest.Write(s.scratch.Bytes())
	return nil
}

// Done flushes the file and renames it to "<digest>-<unique>.bin".
func (s *Store) Done() (ports.BlobHandle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sealed {
		return nil, zerr.Wrap(domain.ErrStoreSealed, "seal store")
	}
	s.sealed = true

	tmp := s.file.Name()
	if err := s.w.Flush(); err != nil {
		_ = s.file.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", tmp)
	}
	if err := s.file.Close(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", tmp)
	}

	digest := strconv.FormatUint(s.digest.Sum64(), 16)
	unique := strings.TrimSuffix(strings.TrimPrefix(filepath.Base(tmp), "results-"), ".tmp")
	path := filepath.Join(s.dir, digest+"-"+unique+blobExt)
	if err := os.Rename(tmp, path); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	return &Blob{path: path, digest: digest, keep: s.keep}, nil
}

// Abort discards an unsealed store.
func (s *Store) Abort() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sealed {
		return nil
	}
	s.sealed = true
	_ = s.file.Close()
	return os.Remove(s.file.Name())
}

// Blob is a sealed results file.
type Blob struct {
	path   string
	digest string
	keep   bool

	mu     sync.Mutex
	closed bool
}

// Path returns the location of the blob on disk.
func (b *Blob) Path() string { return b.path }

// Digest returns the hex xxhash digest of the blob's contents.
func (b *Blob) Digest() string { return b.digest }

// Read opens the file and decodes it from the start.
func (b *Blob) Read(fn func(ports.Decoder) error) error {
	b.mu.Lock()
	closed := b.closed
	b.mu.Unlock()
	if closed {
		return zerr.With(zerr.Wrap(domain.ErrBlobClosed, "read blob"), "path", b.path)
	}

	//nolint:gosec // Path is built by Store.Done inside the configured store directory
	f, err := os.Open(b.path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", b.path)
	}
	defer func() { _ = f.Close() }()

	return fn(codec.NewDecoder(bufio.NewReader(f)))
}

// Close releases the blob and deletes the file unless the store keeps blobs.
// Closing twice is a no-op.
func (b *Blob) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	if b.keep {
		return nil
	}
	if err := os.Remove(b.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to remove results blob"), "path", b.path)
	}
	return nil
}

// Factory opens file-backed stores in a fixed directory.
type Factory struct {
	Dir  string
	Keep bool
}

// NewFactory creates a Factory from the tool settings, rooted at root.
func NewFactory(settings domain.Settings, root string) *Factory {
	return &Factory{Dir: settings.ResolveStoreDir(root), Keep: settings.KeepBlobs}
}

// NewStore implements ports.StoreFactory.
func (f *Factory) NewStore() (ports.BinaryStore, error) {
	return NewStore(f.Dir, f.Keep)
}
