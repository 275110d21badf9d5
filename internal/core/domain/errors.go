package domain

import "go.trai.ch/zerr"

var (
	// ErrCorruptResults is returned when a stored results stream cannot be decoded.
	// It covers unknown record tags and streams that end before the root record.
	ErrCorruptResults = zerr.New("corrupt resolution results stream")

	// ErrUnsupportedFormat is returned when a results stream carries an unknown format version.
	ErrUnsupportedFormat = zerr.New("unsupported resolution results format")

	// ErrDanglingReference is returned when a record references a node id that no prior
	// node record introduced.
	ErrDanglingReference = zerr.New("dangling node reference")

	// ErrDuplicateNode is returned when two node records carry the same id.
	ErrDuplicateNode = zerr.New("duplicate node id")

	// ErrUnknownArtifactSet is returned when an artifact set id has no entry in the artifact table.
	ErrUnknownArtifactSet = zerr.New("unknown artifact set")

	// ErrResultsLoadFailed matches every error returned when the reconstruction of stored
	// results fails. errors.Is also reaches the underlying record error.
	ErrResultsLoadFailed = zerr.New("could not load resolved configuration results")

	// ErrResultsIncomplete is returned when results are requested before the root record was written.
	ErrResultsIncomplete = zerr.New("resolution results are incomplete")

	// ErrStoreSealed is returned when a write is attempted on a sealed binary store.
	ErrStoreSealed = zerr.New("binary store is sealed")

	// ErrBlobClosed is returned when a closed blob handle is read.
	ErrBlobClosed = zerr.New("blob handle is closed")

	// ErrStoreCreateFailed is returned when the binary store directory or file cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create binary store")

	// ErrStoreWriteFailed is returned when a record cannot be written to the binary store.
	ErrStoreWriteFailed = zerr.New("failed to write to binary store")

	// ErrStoreReadFailed is returned when a sealed blob cannot be opened for reading.
	ErrStoreReadFailed = zerr.New("failed to read from binary store")

	// ErrInvalidSelector is returned when a dependency coordinate is not of the form group:module:version.
	ErrInvalidSelector = zerr.New("invalid dependency selector, expected group:module:version")

	// ErrNodeAlreadyExists is returned when a graph node with the same id is added twice.
	ErrNodeAlreadyExists = zerr.New("graph node already exists")

	// ErrNodeNotFound is returned when an edge references a graph node that was never added.
	ErrNodeNotFound = zerr.New("graph node not found")

	// ErrInvalidNodeID is returned when a graph node is given a negative id.
	ErrInvalidNodeID = zerr.New("graph node ids must be non-negative")

	// ErrMissingRoot is returned when a graph has no root node.
	ErrMissingRoot = zerr.New("graph has no root node")

	// ErrResolveFailed is returned when a resolution finished with unresolved dependencies.
	ErrResolveFailed = zerr.New("could not resolve all dependencies")

	// ErrConfigReadFailed is returned when a resolution document cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read resolution document")

	// ErrConfigParseFailed is returned when a resolution document cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse resolution document")

	// ErrDocumentNotFound is returned when a document argument matches no file.
	ErrDocumentNotFound = zerr.New("resolution document not found")

	// ErrSettingsLoadFailed is returned when the tool settings cannot be loaded.
	ErrSettingsLoadFailed = zerr.New("failed to load settings")

	// ErrNoDocumentsSpecified is returned when the resolve command gets no documents.
	ErrNoDocumentsSpecified = zerr.New("no resolution documents specified")

	// ErrWatchFailed is returned when resolution documents cannot be watched for changes.
	ErrWatchFailed = zerr.New("failed to watch resolution documents")
)
