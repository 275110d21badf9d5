package ports

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

// Encoder writes the primitive values of a results stream.
type Encoder interface {
	WriteByte(b byte) error
	// WriteSmallLong writes a non-negative id as an unsigned varint.
	WriteSmallLong(v int64) error
	// WriteSmallInt writes an int as a zig-zag varint.
	WriteSmallInt(v int) error
	WriteString(s string) error
}

// Decoder reads the primitive values written by an Encoder.
type Decoder interface {
	ReadByte() (byte, error)
	ReadSmallLong() (int64, error)
	ReadSmallInt() (int, error)
	ReadString() (string, error)
}

// BinaryStore is an append-only byte sink for one resolution.
type BinaryStore interface {
	// Write runs fn against an encoder. Everything fn writes is appended as one unit:
	// if fn fails, nothing is appended.
	Write(fn func(Encoder) error) error
	// Done seals the store and returns a handle to the written blob.
	// Writes after Done fail.
	Done() (BlobHandle, error)
}

// BlobHandle gives read access to a sealed blob.
type BlobHandle interface {
	// Read runs fn against a decoder positioned at the start of the blob.
	Read(fn func(Decoder) error) error
	// Close releases the blob. Reads after Close fail.
	Close() error
}

// StoreFactory opens a fresh BinaryStore per resolution.
type StoreFactory interface {
	NewStore() (BinaryStore, error)
}
