// Package memstore implements an in-memory binary store.
package memstore

import (
	"bytes"
	"sync"

	"go.trai.ch/graphcache/internal/core/domain"
	"go.trai.ch/graphcache/internal/core/ports"
	"go.trai.ch/graphcache/internal/engine/codec"
	"go.trai.ch/zerr"
)

var (
	_ ports.BinaryStore  = (*Store)(nil)
	_ ports.BlobHandle   = (*Blob)(nil)
	_ ports.StoreFactory = Factory{}
)

// Store buffers records in memory.
type Store struct {
	mu      sync.Mutex
	buf     bytes.Buffer
	scratch bytes.Buffer
	sealed  bool
}

// New creates an empty Store.
func New() *Store {
	return &Store{}
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
	s.buf.Write(s.scratch.Bytes())
	return nil
}

// Done seals the store.
func (s *Store) Done() (ports.BlobHandle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sealed {
		return nil, zerr.Wrap(domain.ErrStoreSealed, "seal store")
	}
	s.sealed = true
	return &Blob{data: bytes.Clone(s.buf.Bytes())}, nil
}

// Blob is a sealed in-memory blob.
type Blob struct {
	mu     sync.Mutex
	data   []byte
	closed bool
}

// NewBlob wraps raw bytes as a sealed blob.
func NewBlob(data []byte) *Blob {
	return &Blob{data: data}
}

// Read decodes the blob from the start.
func (b *Blob) Read(fn func(ports.Decoder) error) error {
	b.mu.Lock()
	data, closed := b.data, b.closed
	b.mu.Unlock()

	if closed {
		return zerr.Wrap(domain.ErrBlobClosed, "read blob")
	}
	return fn(codec.NewDecoder(bytes.NewReader(data)))
}

// Close drops the blob's bytes.
func (b *Blob) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.data = nil
	return nil
}

// Factory opens in-memory stores.
type Factory struct{}

// NewStore implements ports.StoreFactory.
func (Factory) NewStore() (ports.BinaryStore, error) {
	return New(), nil
}
