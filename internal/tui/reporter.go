package tui

import (
	"context"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Reporter shows resolution progress on a terminal. Every run gets its own program.
type Reporter struct {
	opts []tea.ProgramOption

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewReporter creates a Reporter drawing on w.
// Input is not read and signals are left to the caller.
func NewReporter(w io.Writer, opts ...tea.ProgramOption) *Reporter {
	return &Reporter{
		opts: append([]tea.ProgramOption{
			tea.WithOutput(w),
			tea.WithInput(nil),
			tea.WithoutSignalHandler(),
		}, opts...),
	}
}

// Begin starts a program for the run and queues docs.
func (r *Reporter) Begin(ctx context.Context, docs []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, r.opts...)
	p := tea.NewProgram(NewModel(), opts...)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = p.Run()
	}()

	r.program = p
	r.done = done
	p.Send(MsgDocumentsQueued{Paths: docs})
}

// Started implements ports.Progress.
func (r *Reporter) Started(doc string) {
	r.send(MsgDocumentStarted{Path: doc})
}

// Finished implements ports.Progress.
func (r *Reporter) Finished(doc string, unresolved int, err error) {
	r.send(MsgDocumentFinished{Path: doc, Unresolved: unresolved, Err: err})
}

// End stops the program of the current run and waits for its last frame.
func (r *Reporter) End() {
	r.mu.Lock()
	p, done := r.program, r.done
	r.program, r.done = nil, nil
	r.mu.Unlock()

	if p == nil {
		return
	}
	p.Send(MsgRunEnded{})
	<-done
}

func (r *Reporter) send(msg tea.Msg) {
	r.mu.Lock()
	p := r.program
	r.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}
