// Package segment implements the subtitling segment framing, dispatch
// and per-type parsers (PCS/RCS/CDS/ODS/DDS/EDS), ported from
// dvbsubdecoder's Parser.cpp and its per-segment ParserXXX.cpp files.
package segment

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bugVanisher/dvbsub/dvbdb"
	"github.com/bugVanisher/dvbsub/internal/bitio"
)

const (
	syncByteValue       = 0x0F
	endMarkerValue      = 0xFF
	subtitleDataIDValue = 0x20
	subtitleStreamID    = 0x00
)

// Segment type codes, from dvbsubdecoder's Consts.hpp.
const (
	typePageComposition    = 0x10
	typeRegionComposition  = 0x11
	typeClutDefinition     = 0x12
	typeObjectData         = 0x13
	typeDisplayDefinition  = 0x14
	typeDisparitySignaling = 0x15 // present in the standard, never acted on
	typeEndOfDisplaySet    = 0x80
)

var logger zerolog.Logger = log.Logger

// SetLogger overrides the package-level default (global) logger used
// for parse-error/skip diagnostics.
func SetLogger(l zerolog.Logger) { logger = l }

// ParsePacketData walks one subtitling PES payload's segments and
// applies them to db. A malformed data identifier, sync byte, end
// marker, or any in-segment parse error triggers an epoch reset, caught
// here rather than propagated to the caller — matching
// Parser::parsePacketData, which swallows both ParserException and
// PesPacketReader::Exception internally rather than letting them
// escape to the per-packet loop in Parser::process.
func ParsePacketData(db *dvbdb.Database, r *bitio.Reader) {
	if err := parsePacketData(db, r); err != nil {
		logger.Warn().Err(err).Msg("subtitling segment parse error, resetting epoch")
		db.EpochReset()
	}
}

func parsePacketData(db *dvbdb.Database, r *bitio.Reader) error {
	dataID, err := r.ReadUint8()
	if err != nil {
		return err
	}
	if dataID != subtitleDataIDValue {
		return wrapf(ErrInvalidDataIdentifier, "data_identifier=0x%02x", dataID)
	}

	streamID, err := r.ReadUint8()
	if err != nil {
		return err
	}
	if streamID != subtitleStreamID {
		return wrapf(ErrInvalidDataIdentifier, "subtitle_stream_id=0x%02x", streamID)
	}

	for {
		marker, err := r.ReadUint8()
		if err != nil {
			return err
		}
		if marker == endMarkerValue {
			return nil
		}
		if marker != syncByteValue {
			return wrapf(ErrInvalidSyncByte, "sync_byte=0x%02x", marker)
		}

		segType, err := r.ReadUint8()
		if err != nil {
			return err
		}
		pageID, err := r.ReadUint16BE()
		if err != nil {
			return err
		}
		length, err := r.ReadUint16BE()
		if err != nil {
			return err
		}
		body, err := r.Sub(int(length))
		if err != nil {
			return err
		}
		if err := r.Skip(int(length)); err != nil {
			return err
		}

		if err := dispatch(db, segType, pageID, body); err != nil {
			return err
		}
	}
}

func dispatch(db *dvbdb.Database, segType uint8, pageID uint16, r *bitio.Reader) error {
	status := db.Status()
	if !status.HavePageIDs() {
		return nil
	}

	switch segType {
	case typePageComposition:
		if !status.IsCompositionPage(pageID) {
			return nil
		}
		return parsePCS(db, r)
	case typeRegionComposition:
		if !status.IsCompositionPage(pageID) {
			return nil
		}
		return parseRCS(db, r)
	case typeClutDefinition:
		if !status.IsSelectedPage(pageID) {
			return nil
		}
		return parseCDS(db, r)
	case typeObjectData:
		if !status.IsSelectedPage(pageID) {
			return nil
		}
		return parseODS(db, r)
	case typeDisplayDefinition:
		if !status.IsCompositionPage(pageID) {
			return nil
		}
		return parseDDS(db, r)
	case typeEndOfDisplaySet:
		if !status.IsAncillaryPage(pageID) {
			return nil
		}
		return parseEDS(db, r)
	case typeDisparitySignaling:
		return nil
	default:
		logger.Trace().Uint8("type", segType).Msg("unknown segment type, ignored")
		return nil
	}
}
