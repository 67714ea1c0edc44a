// Package present implements the diff-based presenter: it rebuilds a
// RenderingState snapshot from the database's committed Page/Region/
// Display state, diffs it against what was last drawn, and issues the
// minimal set of graphics calls needed to bring the screen up to date.
// Ported bit-exactly from dvbsubdecoder's Presenter.cpp.
package present

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bugVanisher/dvbsub/dvbdb"
	"github.com/bugVanisher/dvbsub/internal/dvbtype"
)

// Client receives the presenter's graphics calls. Concrete sinks (a
// real display, the demo CLI's logger) implement this.
type Client interface {
	GfxSetDisplayBounds(display, window dvbtype.Rectangle)
	GfxClear(rect dvbtype.Rectangle)
	GfxDraw(bitmap dvbtype.Bitmap, srcRect, dstRect dvbtype.Rectangle)
	GfxFinish(modifiedRect dvbtype.Rectangle)
}

// Presenter owns no decoded state of its own beyond a reference to the
// database and the client it drives; everything it diffs lives in the
// database's two RenderingStates and is rebuilt fresh on every Draw.
type Presenter struct {
	db     *dvbdb.Database
	client Client
	logger zerolog.Logger
}

// New builds a presenter over db, driving client.
func New(db *dvbdb.Database, client Client) *Presenter {
	return &Presenter{db: db, client: client, logger: log.Logger}
}

// SetLogger overrides the default (global) logger.
func (p *Presenter) SetLogger(l zerolog.Logger) { p.logger = l }

// Invalidate resets the current RenderingState (what the last Draw put
// on screen), so the next Draw sees a bounds change, re-announces the
// display bounds and redraws every region. Used after a Reset or
// whenever the host needs a full repaint (e.g. after a screen resize).
func (p *Presenter) Invalidate() {
	p.db.Current().Reset()
}

// Draw first swaps current/previous, so Previous holds what's on
// screen, then rebuilds Current from the database's committed state,
// diffs the two, and issues the client calls needed to reconcile them.
// Matches Presenter::draw/buildCurrentState.
func (p *Presenter) Draw() {
	p.db.SwapRenderingStates()
	prev := p.db.Previous()
	curr := p.db.Current()

	p.buildCurrentState(curr)

	var modified dvbtype.Rectangle

	boundsChanged := prev.DisplayBounds() != curr.DisplayBounds() ||
		prev.WindowBounds() != curr.WindowBounds()
	if boundsChanged {
		p.client.GfxSetDisplayBounds(curr.DisplayBounds(), curr.WindowBounds())
		prev.RemoveAllRegions()
		modified = curr.DisplayBounds()
	}

	for i := 0; i < prev.RegionCount(); i++ {
		old := prev.RegionByIndex(i)
		if j, ok := p.findMatch(old, curr); ok {
			curr.UnmarkRegionAsDirtyByIndex(j)
			continue
		}
		p.logger.Trace().Uint8("region", old.ID).Msg("clear")
		p.client.GfxClear(old.Rect)
		modified = modified.Union(old.Rect)
	}

	for i := 0; i < curr.RegionCount(); i++ {
		info := curr.RegionByIndex(i)
		if !info.Dirty {
			continue
		}
		bitmap, ok := p.buildBitmap(info.ID)
		if !ok {
			curr.UnmarkRegionAsDirtyByIndex(i)
			continue
		}
		srcRect := dvbtype.Rectangle{X2: bitmap.Width, Y2: bitmap.Height}
		p.logger.Trace().Uint8("region", info.ID).Msg("draw")
		p.client.GfxDraw(bitmap, srcRect, info.Rect)
		modified = modified.Union(info.Rect)
		curr.UnmarkRegionAsDirtyByIndex(i)
	}

	p.client.GfxFinish(modified)
}

// buildCurrentState rebuilds state from the current Display and, iff
// the page composition is COMPLETE, each region it places — in Page
// order — ported from Presenter::buildCurrentState. Any other Page
// state (still PARSING, or TIMEDOUT) leaves state with no regions at
// all, which is what makes an epoch reset or an aborted composition
// correctly clear the screen on the next Draw instead of leaving
// whatever was last committed stuck on screen.
func (p *Presenter) buildCurrentState(state *dvbdb.RenderingState) {
	state.RemoveAllRegions()

	display := p.db.CurrentDisplay()
	state.SetBounds(display.DisplayBounds(), display.WindowBounds())

	page := p.db.Page()
	if page.State() != dvbdb.PageComplete {
		return
	}

	windowBounds := display.WindowBounds()

	for i := 0; i < page.RegionCount(); i++ {
		ref := page.RegionByIndex(i)
		region, ok := p.db.Regions().GetByID(ref.ID)
		if !ok {
			p.logger.Info().Uint8("region", ref.ID).Msg("region not found")
			continue
		}

		// Containment is checked against the still window-relative
		// rectangle, before it's shifted into absolute display
		// coordinates below, matching Presenter::buildCurrentState's
		// exact order.
		rect := dvbtype.Rectangle{
			X1: ref.X, Y1: ref.Y,
			X2: ref.X + region.Width(),
			Y2: ref.Y + region.Height(),
		}
		if !rect.Inside(windowBounds) {
			p.logger.Info().Uint8("region", ref.ID).Msg("rectangle does not fit in window")
			continue
		}

		rect = rect.Shift(windowBounds.X1, windowBounds.Y1)
		if !state.AddRegion(region.ID(), region.Version(), rect) {
			p.logger.Info().Uint8("region", ref.ID).Msg("cannot add region")
		}
	}
}

// findMatch looks for a curr region identical in id, version and rect
// to old, meaning it's already on screen unchanged and needs neither a
// clear nor a redraw.
func (p *Presenter) findMatch(old dvbdb.RegionInfo, curr *dvbdb.RenderingState) (int, bool) {
	for j := 0; j < curr.RegionCount(); j++ {
		n := curr.RegionByIndex(j)
		if n.ID == old.ID && n.Version == old.Version && n.Rect == old.Rect {
			return j, true
		}
	}
	return 0, false
}

// buildBitmap looks up regionID's live pixmap and selects its CLUT's
// array by depth, matching spec.md's step 6: "look up the live region
// -> pixmap and its CLUT array (selected by depth: 2/4/8-bit)".
func (p *Presenter) buildBitmap(regionID uint8) (dvbtype.Bitmap, bool) {
	region, ok := p.db.Regions().GetByID(regionID)
	if !ok {
		return dvbtype.Bitmap{}, false
	}
	pixmap := region.Pixmap()
	if pixmap == nil {
		return dvbtype.Bitmap{}, false
	}
	clut, ok := p.db.Cluts().GetByID(region.ClutID())
	if !ok {
		return dvbtype.Bitmap{}, false
	}

	var palette []uint32
	switch region.Depth() {
	case dvbdb.RegionDepth2Bit:
		arr := clut.Array2Bit()
		palette = arr[:]
	case dvbdb.RegionDepth4Bit:
		arr := clut.Array4Bit()
		palette = arr[:]
	default:
		arr := clut.Array8Bit()
		palette = arr[:]
	}

	return dvbtype.Bitmap{
		Width:  pixmap.Width(),
		Height: pixmap.Height(),
		Pixels: pixmap.Data(),
		Clut:   palette,
	}, true
}
