package segment

import (
	"github.com/bugVanisher/dvbsub/dvbdb"
	"github.com/bugVanisher/dvbsub/internal/bitio"
	"github.com/bugVanisher/dvbsub/internal/dvbtype"
)

// parseDDS implements Display Definition Segment parsing. Authored
// fresh from spec.md §4.7 (ParserDDS.cpp was not present in the
// retrieval pack, only referenced by Parser.cpp/Display.hpp): it
// assembles the parsed Display the same way parseEDS promotes it,
// rather than touching CurrentDisplay directly — a DDS only takes
// effect once the composition it belongs to is committed by an EDS.
func parseDDS(db *dvbdb.Database, r *bitio.Reader) error {
	flags, err := r.ReadUint8()
	if err != nil {
		return err
	}
	version := (flags >> 4) & 0x0F
	windowFlag := (flags>>3)&0x01 != 0

	width, err := r.ReadUint16BE()
	if err != nil {
		return err
	}
	height, err := r.ReadUint16BE()
	if err != nil {
		return err
	}

	// The wire fields carry width-1 and height-1; X2/Y2 are exclusive.
	displayBounds := dvbtype.Rectangle{X1: 0, Y1: 0, X2: int32(width) + 1, Y2: int32(height) + 1}
	windowBounds := displayBounds

	if windowFlag {
		xMin, err := r.ReadUint16BE()
		if err != nil {
			return err
		}
		xMax, err := r.ReadUint16BE()
		if err != nil {
			return err
		}
		yMin, err := r.ReadUint16BE()
		if err != nil {
			return err
		}
		yMax, err := r.ReadUint16BE()
		if err != nil {
			return err
		}
		windowBounds = dvbtype.Rectangle{X1: int32(xMin), Y1: int32(yMin), X2: int32(xMax), Y2: int32(yMax)}
	}

	db.ParsedDisplay().Set(version, displayBounds, windowBounds)
	return nil
}
