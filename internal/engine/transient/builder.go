// Package transient stores the results of one resolution in a binary store and
// rebuilds the result graph from it on demand.
package transient

import (
	"go.trai.ch/graphcache/internal/core/domain"
	"go.trai.ch/graphcache/internal/core/ports"
	"go.trai.ch/graphcache/internal/engine/codec"
	"go.trai.ch/zerr"
)

// TransientResults is what a finished Builder hands to a Loader.
type TransientResults struct {
	Handle ports.BlobHandle
	// Requests maps first-level node ids to the declared dependencies that selected them.
	Requests map[int64][]domain.DependencyRequest
}

// Builder writes the records of a resolved graph to a BinaryStore.
//
// Errors are sticky: once a write fails, every later call returns the same error
// without touching the store.
type Builder struct {
	store    ports.BinaryStore
	requests map[int64][]domain.DependencyRequest
	header   bool
	sealed   bool
	handle   ports.BlobHandle
	err      error
}

// NewBuilder creates a Builder writing to store.
func NewBuilder(store ports.BinaryStore) *Builder {
	return &Builder{
		store:    store,
		requests: make(map[int64][]domain.DependencyRequest),
	}
}

// NewResolvedDependency writes a NODE record for node.
func (b *Builder) NewResolvedDependency(node domain.GraphNode) error {
	return b.write(func(enc ports.Encoder) error {
		return codec.WriteNode(enc, node.NodeID(), node.Component(), node.Variant())
	})
}

// AddFirstLevelDependency remembers req for node. The FIRST_LEVEL record is written
// only for the first request of a node, later requests join the side table.
func (b *Builder) AddFirstLevelDependency(req domain.DependencyRequest, node domain.GraphNode) error {
	id := node.NodeID()
	var err error
	if _, seen := b.requests[id]; seen {
		err = b.writable()
	} else {
		err = b.write(func(enc ports.Encoder) error {
			return codec.WriteFirstLevel(enc, id)
		})
	}
	if err != nil {
		return err
	}
	b.requests[id] = append(b.requests[id], req)
	return nil
}

// AddChild writes an EDGE record from parent to child.
func (b *Builder) AddChild(parent, child domain.GraphNode, artifactsID int) error {
	return b.write(func(enc ports.Encoder) error {
		return codec.WriteEdge(enc, parent.NodeID(), child.NodeID(), artifactsID)
	})
}

// AddNodeArtifacts writes a NODE_ARTIFACTS record for node.
func (b *Builder) AddNodeArtifacts(node domain.GraphNode, artifactsID int) error {
	return b.write(func(enc ports.Encoder) error {
		return codec.WriteNodeArtifacts(enc, node.NodeID(), artifactsID)
	})
}

// Done writes the ROOT record and seals the store.
func (b *Builder) Done(root domain.GraphNode) error {
	if err := b.write(func(enc ports.Encoder) error {
		return codec.WriteRoot(enc, root.NodeID())
	}); err != nil {
		return err
	}
	b.sealed = true
	handle, err := b.store.Done()
	if err != nil {
		b.err = err
		return err
	}
	b.handle = handle
	return nil
}

// Err returns the first error the builder ran into.
func (b *Builder) Err() error {
	return b.err
}

// Complete returns the sealed blob and the first-level request table.
func (b *Builder) Complete() (*TransientResults, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.handle == nil {
		return nil, zerr.Wrap(domain.ErrResultsIncomplete, "complete results")
	}
	return &TransientResults{Handle: b.handle, Requests: b.requests}, nil
}

func (b *Builder) writable() error {
	if b.err == nil && b.sealed {
		b.err = zerr.Wrap(domain.ErrStoreSealed, "write record")
	}
	return b.err
}

func (b *Builder) write(fn func(ports.Encoder) error) error {
	if err := b.writable(); err != nil {
		return err
	}
	if !b.header {
		if err := b.store.Write(codec.WriteHeader); err != nil {
			b.err = err
			return err
		}
		b.header = true
	}
	if err := b.store.Write(fn); err != nil {
		b.err = err
		return err
	}
	return nil
}
