package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/graphcache/internal/core/ports"
)

// FinderNodeID is the unique identifier for the document finder Graft node.
const FinderNodeID graft.ID = "adapter.fs.finder"

func init() {
	graft.Register(graft.Node[ports.DocumentFinder]{
		ID:        FinderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DocumentFinder, error) {
			return NewFinder(), nil
		},
	})
}
