package segment

import (
	"github.com/bugVanisher/dvbsub/dvbdb"
	"github.com/bugVanisher/dvbsub/internal/bitio"
)

// Page composition states, from the page_state field of a PCS.
const (
	pageStateNormal           = 0x00
	pageStateAcquisitionPoint = 0x01
	pageStateModeChange       = 0x02
	pageStateReserved         = 0x03
)

// parsePCS implements Page Composition Segment parsing, ported from
// ParserPCS.cpp. ACQUISITION_POINT and MODE_CHANGE both unconditionally
// reset the epoch, matching the original exactly (not a "continue if a
// baseline exists" optimization) unless db's lenient mode is set by the
// caller — see decoder.Decoder.Lenient and DESIGN.md.
func parsePCS(db *dvbdb.Database, r *bitio.Reader) error {
	timeout, err := r.ReadUint8()
	if err != nil {
		return err
	}
	verState, err := r.ReadUint8()
	if err != nil {
		return err
	}
	version := (verState >> 4) & 0x0F
	state := (verState >> 2) & 0x03

	switch state {
	case pageStateNormal:
		if !db.Page().IsReadyForNewComposition() {
			return nil
		}
	case pageStateModeChange:
		db.EpochReset()
	case pageStateAcquisitionPoint:
		if !db.Lenient || !db.Page().IsReadyForNewComposition() {
			db.EpochReset()
		}
	case pageStateReserved:
		return wrapf(ErrReservedPageState, "page_state=0x%02x", state)
	}

	if db.Page().State() == dvbdb.PageParsing && db.Page().Version() == version {
		// Duplicate PCS for the composition already being parsed.
		return nil
	}

	db.Page().StartParsing(version, db.Status().LastPts(), uint32(timeout))

	for r.BytesLeft() > 0 {
		regionID, err := r.ReadUint8()
		if err != nil {
			return err
		}
		if _, err := r.ReadUint8(); err != nil { // reserved
			return err
		}
		x, err := r.ReadUint16BE()
		if err != nil {
			return err
		}
		y, err := r.ReadUint16BE()
		if err != nil {
			return err
		}
		if !db.Page().AddRegion(regionID, int32(x), int32(y)) {
			logger.Warn().Msg("page region list full, remaining region entries dropped")
			break
		}
	}

	return nil
}
