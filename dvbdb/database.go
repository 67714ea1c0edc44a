// Package dvbdb is the decoded-state database: the fixed-capacity
// pools of regions and CLUTs, the page being parsed, the parsed/current
// Display, object-ref bookkeeping against the shared 256-object budget,
// and the two swappable RenderingState snapshots the presenter diffs.
// Ported from dvbsubdecoder's Database.cpp/.hpp.
package dvbdb

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Database is the single owner of all decoded subtitling state for one
// decoder instance.
type Database struct {
	logger zerolog.Logger

	isEpochStart bool

	status Status

	currentDisplay Display
	parsedDisplay  Display

	page Page

	regions RegionPool
	cluts   ClutPool

	objectRefsUsed int

	pixmaps *PixmapAllocator

	renderingStates [2]RenderingState
	prev, curr      *RenderingState

	// Lenient, when true, lets PCS ACQUISITION_POINT continue an
	// existing composition instead of always resetting the epoch. See
	// DESIGN.md's Open Question decision; defaults to false (matches
	// the original source's unconditional reset).
	Lenient bool
}

// New constructs a database with a pixmap arena of the given size (in
// bytes; one byte per pixel across all simultaneously-allocated
// pixmaps).
func New(pixmapArenaSize int) *Database {
	db := &Database{
		logger:  log.Logger,
		pixmaps: NewPixmapAllocator(pixmapArenaSize),
	}
	db.currentDisplay.Reset()
	db.parsedDisplay.Reset()
	db.page.Reset()
	db.prev = &db.renderingStates[0]
	db.curr = &db.renderingStates[1]
	// isEpochStart starts false: dvbsubdecoder's Database constructor
	// leaves it false until the first explicit EpochReset, which happens
	// as part of Decoder.Reset() before any packet is processed.
	db.isEpochStart = false
	return db
}

// SetLogger overrides the default (global) logger.
func (db *Database) SetLogger(l zerolog.Logger) { db.logger = l }

// EpochReset discards all region/CLUT/object/page state and the parsed
// display, as if subtitling just started on this stream. Called on
// MODE_CHANGE, ACQUISITION_POINT (unconditionally — see DESIGN.md) and
// on any in-segment parse error.
func (db *Database) EpochReset() {
	db.isEpochStart = true
	db.page.Reset()
	db.regions.Reset()
	db.cluts.Reset()
	db.objectRefsUsed = 0
	db.pixmaps.Reset()
	db.parsedDisplay.Reset()
	db.logger.Debug().Msg("epoch reset")
}

// IsEpochStart reports whether no page has been committed since the
// last EpochReset.
func (db *Database) IsEpochStart() bool { return db.isEpochStart }

// Status returns the page-id gating and last-PTS tracker.
func (db *Database) Status() *Status { return &db.status }

// CurrentDisplay returns the display bounds currently in force.
func (db *Database) CurrentDisplay() *Display { return &db.currentDisplay }

// ParsedDisplay returns the display bounds being assembled by DDS/EDS
// parsing, promoted to CurrentDisplay on EDS commit.
func (db *Database) ParsedDisplay() *Display { return &db.parsedDisplay }

// Page returns the page composition being parsed (or last committed).
func (db *Database) Page() *Page { return &db.page }

// Regions returns the region pool.
func (db *Database) Regions() *RegionPool { return &db.regions }

// Cluts returns the CLUT pool.
func (db *Database) Cluts() *ClutPool { return &db.cluts }

// CanAddRegionObject reports whether the shared 256-object-ref budget
// has room for one more.
func (db *Database) CanAddRegionObject() bool {
	return db.objectRefsUsed < MaxSupportedObjects
}

// AddRegionObject appends an object ref to region, charging it against
// the shared budget. ok is false if the budget is exhausted.
func (db *Database) AddRegionObject(region *Region, objectID uint16, x, y int32) bool {
	if !db.CanAddRegionObject() {
		db.logger.Warn().Msg("object-ref pool exhausted")
		return false
	}
	region.objectRefs = append(region.objectRefs, ObjectRef{ObjectID: objectID, PosX: x, PosY: y})
	db.objectRefsUsed++
	return true
}

// RemoveRegionObjects clears a region's object list and returns its
// slots to the shared budget.
func (db *Database) RemoveRegionObjects(region *Region) {
	db.objectRefsUsed -= len(region.objectRefs)
	region.objectRefs = region.objectRefs[:0]
}

// AllocatePixmap carves a width*height pixmap out of the epoch's arena.
func (db *Database) AllocatePixmap(width, height int32) (*Pixmap, bool) {
	return db.pixmaps.Allocate(width, height)
}

// FinishPage clears the epoch-start flag once a page composition has
// committed. The RenderingState rebuild itself happens inside
// present.Presenter.Draw (see DESIGN.md): building it here, once, at
// EDS time meant an epoch reset or an aborted composition never
// un-rendered whatever had last been committed, since nothing
// re-evaluated Page.State() before the next draw.
func (db *Database) FinishPage() {
	db.isEpochStart = false
}

// SwapRenderingStates exchanges which RenderingState is "previous" and
// which is "current", called by the presenter at the start of each Draw
// so that Previous holds what's on screen while Current is rebuilt.
func (db *Database) SwapRenderingStates() {
	db.prev, db.curr = db.curr, db.prev
}

// Previous returns the other RenderingState: during a Draw, after the
// swap, it describes what was on screen before that Draw.
func (db *Database) Previous() *RenderingState { return db.prev }

// Current returns the RenderingState the last Draw built, i.e. what's on
// screen now; during a Draw it is the one being rebuilt.
func (db *Database) Current() *RenderingState { return db.curr }
