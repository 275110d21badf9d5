// Package codec defines the binary format of stored resolution results.
//
// A stream is a format version byte followed by tagged records. Ids are unsigned
// varints, artifact set ids are zig-zag varints and strings are length-prefixed UTF-8.
// The ROOT record is always last.
package codec

import "strconv"

// FormatVersion is the version byte that starts every results stream.
const FormatVersion byte = 1

// Tag identifies the kind of a record.
type Tag byte

// Record tags. The values are part of the stored format.
const (
	TagNode          Tag = 1
	TagRoot          Tag = 2
	TagFirstLevel    Tag = 3
	TagEdge          Tag = 4
	TagNodeArtifacts Tag = 5
)

func (t Tag) String() string {
	switch t {
	case TagNode:
		return "NODE"
	case TagRoot:
		return "ROOT"
	case TagFirstLevel:
		return "FIRST_LEVEL"
	case TagEdge:
		return "EDGE"
	case TagNodeArtifacts:
		return "NODE_ARTIFACTS"
	default:
		return "tag(" + strconv.Itoa(int(t)) + ")"
	}
}
