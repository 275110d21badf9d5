package codec

import (
	"encoding/binary"
	"io"
	"math"

	"go.trai.ch/graphcache/internal/core/domain"
	"go.trai.ch/graphcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Encoder = (*Encoder)(nil)
	_ ports.Decoder = (*Decoder)(nil)
)

// Encoder writes primitive values to an io.Writer.
type Encoder struct {
	w       io.Writer
	scratch [binary.MaxVarintLen64]byte
}

// NewEncoder creates an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// WriteByte writes a single byte.
func (e *Encoder) WriteByte(b byte) error {
	e.scratch[0] = b
	_, err := e.w.Write(e.scratch[:1])
	return err
}

// WriteSmallLong writes a non-negative value as an unsigned varint.
func (e *Encoder) WriteSmallLong(v int64) error {
	if v < 0 {
		return zerr.With(zerr.New("negative value cannot be written as an unsigned varint"), "value", v)
	}
	n := binary.PutUvarint(e.scratch[:], uint64(v))
	_, err := e.w.Write(e.scratch[:n])
	return err
}

// WriteSmallInt writes v as a zig-zag varint.
func (e *Encoder) WriteSmallInt(v int) error {
	n := binary.PutVarint(e.scratch[:], int64(v))
	_, err := e.w.Write(e.scratch[:n])
	return err
}

// WriteString writes the byte length of s followed by its bytes.
func (e *Encoder) WriteString(s string) error {
	n := binary.PutUvarint(e.scratch[:], uint64(len(s)))
	if _, err := e.w.Write(e.scratch[:n]); err != nil {
		return err
	}
	_, err := io.WriteString(e.w, s)
	return err
}

// ByteReader is the input of a Decoder.
type ByteReader interface {
	io.Reader
	io.ByteReader
}

// Decoder reads primitive values written by an Encoder.
// It never reads past the last value requested.
type Decoder struct {
	r ByteReader
}

// NewDecoder creates a Decoder reading from r.
func NewDecoder(r ByteReader) *Decoder {
	return &Decoder{r: r}
}

// ReadByte reads a single byte.
func (d *Decoder) ReadByte() (byte, error) {
	return d.r.ReadByte()
}

// ReadSmallLong reads an unsigned varint.
func (d *Decoder) ReadSmallLong() (int64, error) {
	v, err := binary.ReadUvarint(d.r)
	if err != nil {
		return 0, err
	}
	if v > math.MaxInt64 {
		return 0, zerr.With(zerr.Wrap(domain.ErrCorruptResults, "id out of range"), "value", v)
	}
	return int64(v), nil
}

// ReadSmallInt reads a zig-zag varint that must fit into 32 bits.
func (d *Decoder) ReadSmallInt() (int, error) {
	v, err := binary.ReadVarint(d.r)
	if err != nil {
		return 0, err
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, zerr.With(zerr.Wrap(domain.ErrCorruptResults, "int out of range"), "value", v)
	}
	return int(v), nil
}

// maxStringLen guards against allocating for a corrupt length prefix.
const maxStringLen = 1 << 20

// ReadString reads a length-prefixed string.
func (d *Decoder) ReadString() (string, error) {
	n, err := binary.ReadUvarint(d.r)
	if err != nil {
		return "", err
	}
	if n > maxStringLen {
		return "", zerr.With(zerr.Wrap(domain.ErrCorruptResults, "string too long"), "length", n)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(d.r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}
