package tui

// MsgDocumentsQueued is sent when a run starts with the documents it will process.
type MsgDocumentsQueued struct {
	Paths []string
}

// MsgDocumentStarted is sent when a document begins resolving.
type MsgDocumentStarted struct {
	Path string
}

// MsgDocumentFinished is sent when a document is done.
type MsgDocumentFinished struct {
	Path       string
	Unresolved int
	Err        error
}

// MsgRunEnded is sent when every document of the run is done.
type MsgRunEnded struct{}
