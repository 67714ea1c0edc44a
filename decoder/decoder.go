// Package decoder is the public façade over the whole pipeline: PES
// intake, segment parsing, the decoded-state database, and the
// presenter. Ported from dvbsubdecoder's DecoderImpl.hpp/.cpp (the
// façade) and Parser.cpp (the STC/PTS timing and page-timeout logic
// that decides when each buffered packet is actually processed).
package decoder

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bugVanisher/dvbsub/dvbdb"
	"github.com/bugVanisher/dvbsub/internal/dvbtype"
	"github.com/bugVanisher/dvbsub/pes"
	"github.com/bugVanisher/dvbsub/present"
	"github.com/bugVanisher/dvbsub/segment"
)

// Timing constants, from dvbsubdecoder's Config.hpp (all in 90kHz
// clock ticks).
const (
	ptsStcDiffMin90kHz = 4500      // 50ms
	ptsStcDiffMax90kHz = 2_700_000 // 30s
	pesDelayMax90kHz   = 270_000   // 3s
)

type timingAction int

const (
	actionWait timingAction = iota
	actionProcess
	actionDrop
)

// Decoder is the top-level, single-instance subtitle decoding pipeline.
type Decoder struct {
	logger zerolog.Logger

	db        *dvbdb.Database
	pesBuf    *pes.Buffer
	presenter *present.Presenter

	timeProvider TimeProvider

	started      bool
	redrawNeeded bool
}

// SetLenient controls whether PCS ACQUISITION_POINT continues an
// existing composition instead of always resetting the epoch. Defaults
// to false: the original source resets unconditionally. See DESIGN.md's
// Open Question decision.
func (d *Decoder) SetLenient(lenient bool) { d.db.Lenient = lenient }

// Lenient reports the current ACQUISITION_POINT handling mode.
func (d *Decoder) Lenient() bool { return d.db.Lenient }

// Config bundles the construction-time parameters a Decoder needs.
type Config struct {
	PesBufferSize   int
	PixmapArenaSize int
	Client          Client
	TimeProvider    TimeProvider
	Logger          *zerolog.Logger
}

// New builds a Decoder wired to the given client and time source. The
// decoder starts stopped; call Start to begin processing.
func New(cfg Config) *Decoder {
	logger := log.Logger
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	db := dvbdb.New(cfg.PixmapArenaSize)
	db.SetLogger(logger)

	pesBuf := pes.NewBuffer(cfg.PesBufferSize)
	pesBuf.SetLogger(logger)

	presenter := present.New(db, cfg.Client)
	presenter.SetLogger(logger)

	segment.SetLogger(logger)

	return &Decoder{
		logger:       logger,
		db:           db,
		pesBuf:       pesBuf,
		presenter:    presenter,
		timeProvider: cfg.TimeProvider,
	}
}

// SetPageIds tells the decoder which composition/ancillary page ids to
// select segments from. Changing the page ids implies a Reset, matching
// DecoderImpl::setPageIds.
func (d *Decoder) SetPageIds(compositionPageID, ancillaryPageID uint16) {
	d.db.Status().SetPageIds(compositionPageID, ancillaryPageID)
	d.Reset()
}

// Start enables packet processing.
func (d *Decoder) Start() { d.started = true }

// Stop disables packet processing; buffered packets are left in place.
func (d *Decoder) Stop() { d.started = false }

// Reset discards all decoded state and forces a full repaint on the
// next Draw, matching DecoderImpl::reset's exact sequence: clear the
// PES ring, reset the epoch, reset both Displays, then invalidate.
func (d *Decoder) Reset() {
	d.pesBuf.Clear()
	d.db.EpochReset()
	d.db.CurrentDisplay().Reset()
	d.db.ParsedDisplay().Reset()
	d.Invalidate()
}

// AddPESPacket appends one raw PES packet's bytes to the intake ring.
// Returns false if there isn't room.
func (d *Decoder) AddPESPacket(packet []byte) bool {
	return d.pesBuf.AddPESPacket(packet)
}

// Invalidate makes the next Draw redraw everything, regardless of what
// changed.
func (d *Decoder) Invalidate() {
	d.presenter.Invalidate()
	d.redrawNeeded = true
}

// Draw issues the accumulated graphics calls to the client.
func (d *Decoder) Draw() {
	d.presenter.Draw()
	d.redrawNeeded = false
}

// Process drains as many buffered PES packets as the current STC allows
// and returns whether anything changed: either new subtitling data was
// processed, or a Draw is still pending from an earlier Invalidate.
// Matches DecoderImpl::process: a no-op, returning false, if the
// decoder isn't started.
func (d *Decoder) Process() bool {
	if !d.started {
		return false
	}

	stc := d.timeProvider.GetStc()
	anyProcessed := false

packetLoop:
	for {
		header, reader, ok := d.pesBuf.GetNextPacket(dvbtype.TimeTypeLow32)
		if !ok {
			break packetLoop
		}

		if header.IsSubtitlesPacket() && header.HasPTS {
			switch decideAction(stc, header.PTS) {
			case actionWait:
				break packetLoop
			case actionProcess:
				anyProcessed = true
				d.db.Status().SetLastPts(header.PTS)
				segment.ParsePacketData(d.db, reader)
			case actionDrop:
				d.logger.Info().Msg("dropping overdue subtitling packet")
			}
		}

		d.pesBuf.MarkPacketConsumed(header)
	}

	d.checkPageTimeout(stc)

	return anyProcessed || d.redrawNeeded
}

// diff32 computes b-a as a signed 32-bit difference, correctly handling
// the wraparound of the 32-bit PTS/STC projection space.
func diff32(a, b uint32) int32 {
	return int32(b - a)
}

// decideAction implements Parser::isTimeToProcess's WAIT/PROCESS/DROP
// decision, in the same order the original checks it: DROP is the
// default, overridden first by the WAIT range (PTS due between 50ms
// and 30s from now, both bounds inclusive) and only then by PROCESS
// (PTS already due, or overdue by no more than 3s). A PTS more than
// 30s in the future never matches either override and falls through
// to DROP, same as one that's overdue by more than 3s.
func decideAction(stc, pts dvbtype.StcTime) timingAction {
	d := diff32(stc.Value, pts.Value) // pts - stc, mod 2^32

	if d >= ptsStcDiffMin90kHz && d <= ptsStcDiffMax90kHz {
		return actionWait
	}
	if d < ptsStcDiffMin90kHz && d >= -pesDelayMax90kHz {
		return actionProcess
	}
	return actionDrop
}

// checkPageTimeout clears a committed page's regions once its signaled
// timeout has elapsed, matching Parser::checkPageTimeout.
func (d *Decoder) checkPageTimeout(stc dvbtype.StcTime) {
	page := d.db.Page()
	if page.State() != dvbdb.PageComplete || page.Timeout() == 0 {
		return
	}

	elapsedTicks := diff32(page.PTS().Value, stc.Value)
	if elapsedTicks < 0 {
		return
	}
	elapsedSeconds := uint32(elapsedTicks) / 90000
	if elapsedSeconds < page.Timeout() {
		return
	}

	page.SetTimedOut()
	d.redrawNeeded = true
	d.logger.Info().Msg("page timed out")
}
