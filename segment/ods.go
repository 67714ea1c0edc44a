package segment

import (
	"github.com/bugVanisher/dvbsub/dvbdb"
	"github.com/bugVanisher/dvbsub/internal/bitio"
)

const (
	objectCodingMethodPixels = 0x00
	objectCodingMethodString = 0x01
)

// parseODS implements Object Data Segment framing. Authored fresh from
// spec.md §4.6 (ParserODS.cpp was not present in the retrieval pack):
// the object's metadata is parsed and the segment's pixel-data/RLE
// payload is skipped rather than decompressed, matching spec.md §1's
// Non-goal that object bitmap RLE decode stays a pinned interface the
// host (not this package) implements.
func parseODS(db *dvbdb.Database, r *bitio.Reader) error {
	objID, err := r.ReadUint16BE()
	if err != nil {
		return err
	}
	flags, err := r.ReadUint8()
	if err != nil {
		return err
	}
	version := (flags >> 4) & 0x0F
	codingMethod := (flags >> 2) & 0x03

	logger.Trace().Uint16("object", objID).Uint8("version", version).Msg("object data segment")

	switch codingMethod {
	case objectCodingMethodPixels:
		topLen, err := r.ReadUint16BE()
		if err != nil {
			return err
		}
		bottomLen, err := r.ReadUint16BE()
		if err != nil {
			return err
		}
		return r.Skip(int(topLen) + int(bottomLen))
	default:
		// Character/string-coded objects: out of this decoder's scope,
		// drain whatever's left of the segment.
		return r.Skip(r.BytesLeft())
	}
}
