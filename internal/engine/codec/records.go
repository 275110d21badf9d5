package codec

import (
	"errors"
	"io"

	"go.trai.ch/graphcache/internal/core/domain"
	"go.trai.ch/graphcache/internal/core/ports"
	"go.trai.ch/zerr"
)

// WriteHeader writes the format version byte.
func WriteHeader(enc ports.Encoder) error {
	return enc.WriteByte(FormatVersion)
}

// WriteNode writes a NODE record.
func WriteNode(enc ports.Encoder, id int64, component domain.ModuleVersionID, variant string) error {
	if err := writeTagged(enc, TagNode, id); err != nil {
		return err
	}
	for _, s := range []string{
		component.Group.String(),
		component.Module.String(),
		component.Version.String(),
		variant,
	} {
		if err := enc.WriteString(s); err != nil {
			return err
		}
	}
	return nil
}

// WriteFirstLevel writes a FIRST_LEVEL record.
func WriteFirstLevel(enc ports.Encoder, id int64) error {
	return writeTagged(enc, TagFirstLevel, id)
}

// WriteEdge writes an EDGE record.
func WriteEdge(enc ports.Encoder, parent, child int64, artifactsID int) error {
	if err := writeTagged(enc, TagEdge, parent); err != nil {
		return err
	}
	if err := enc.WriteSmallLong(child); err != nil {
		return err
	}
	return enc.WriteSmallInt(artifactsID)
}

// WriteNodeArtifacts writes a NODE_ARTIFACTS record.
func WriteNodeArtifacts(enc ports.Encoder, id int64, artifactsID int) error {
	if err := writeTagged(enc, TagNodeArtifacts, id); err != nil {
		return err
	}
	return enc.WriteSmallInt(artifactsID)
}

// WriteRoot writes the ROOT record.
func WriteRoot(enc ports.Encoder, id int64) error {
	return writeTagged(enc, TagRoot, id)
}

func writeTagged(enc ports.Encoder, tag Tag, id int64) error {
	if err := enc.WriteByte(byte(tag)); err != nil {
		return err
	}
	return enc.WriteSmallLong(id)
}

// Handler receives decoded records in stream order.
type Handler interface {
	Node(id int64, component domain.ModuleVersionID, variant string) error
	FirstLevel(id int64) error
	Edge(parent, child int64, artifactsID int) error
	NodeArtifacts(id int64, artifactsID int) error
	Root(id int64) error
}

// Progress describes how far ReadRecords got.
type Progress struct {
	// Records is the number of records handled successfully.
	Records int
	// LastTag is the tag of the last record started.
	LastTag Tag
}

// ReadRecords checks the format version and feeds every record to h until the ROOT
// record has been handled. Nothing after the ROOT record is read.
// Errors returned by h are passed through unchanged.
func ReadRecords(dec ports.Decoder, h Handler) (Progress, error) {
	var p Progress

	version, err := dec.ReadByte()
	if err != nil {
		return p, p.corrupt(err, "missing format version")
	}
	if version != FormatVersion {
		err := zerr.With(zerr.Wrap(domain.ErrUnsupportedFormat, "read header"), "version", version)
		return p, zerr.With(err, "supported", FormatVersion)
	}

	for {
		b, err := dec.ReadByte()
		if err != nil {
			return p, p.corrupt(err, "stream ended before root record")
		}
		p.LastTag = Tag(b)

		done, err := readRecord(dec, p.LastTag, h)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return p, p.corrupt(err, "truncated "+p.LastTag.String()+" record")
			}
			if errors.Is(err, domain.ErrCorruptResults) {
				err = zerr.With(err, "records_read", p.Records)
			}
			return p, err
		}
		p.Records++
		if done {
			return p, nil
		}
	}
}

func readRecord(dec ports.Decoder, tag Tag, h Handler) (bool, error) {
	switch tag {
	case TagNode:
		id, err := dec.ReadSmallLong()
		if err != nil {
			return false, err
		}
		var parts [4]string
		for i := range parts {
			if parts[i], err = dec.ReadString(); err != nil {
				return false, err
			}
		}
		return false, h.Node(id, domain.NewModuleVersionID(parts[0], parts[1], parts[2]), parts[3])
	case TagFirstLevel:
		id, err := dec.ReadSmallLong()
		if err != nil {
			return false, err
		}
		return false, h.FirstLevel(id)
	case TagEdge:
		parent, err := dec.ReadSmallLong()
		if err != nil {
			return false, err
		}
		child, err := dec.ReadSmallLong()
		if err != nil {
			return false, err
		}
		artifactsID, err := dec.ReadSmallInt()
		if err != nil {
			return false, err
		}
		return false, h.Edge(parent, child, artifactsID)
	case TagNodeArtifacts:
		id, err := dec.ReadSmallLong()
		if err != nil {
			return false, err
		}
		artifactsID, err := dec.ReadSmallInt()
		if err != nil {
			return false, err
		}
		return false, h.NodeArtifacts(id, artifactsID)
	case TagRoot:
		id, err := dec.ReadSmallLong()
		if err != nil {
			return false, err
		}
		return true, h.Root(id)
	default:
		return false, zerr.With(zerr.Wrap(domain.ErrCorruptResults, "unknown record tag"), "tag", byte(tag))
	}
}

func (p Progress) corrupt(cause error, msg string) error {
	err := zerr.Wrap(domain.ErrCorruptResults, msg)
	err = zerr.With(err, "records_read", p.Records)
	err = zerr.With(err, "tag", p.LastTag.String())
	if !errors.Is(cause, io.EOF) && !errors.Is(cause, io.ErrUnexpectedEOF) {
		return errors.Join(err, cause)
	}
	return err
}
