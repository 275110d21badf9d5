package ports

import "context"

// Progress observes documents moving through one resolution run.
// Begin and End bracket a run. Started and Finished may be called concurrently.
//
//go:generate mockgen -source=progress.go -destination=mocks/mock_progress.go -package=mocks
type Progress interface {
	Begin(ctx context.Context, docs []string)
	Started(doc string)
	// Finished reports a document as done. unresolved counts the dependencies that
	// could not be resolved, err is set when the document could not be processed.
	Finished(doc string, unresolved int, err error)
	End()
}
