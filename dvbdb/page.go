package dvbdb

import "github.com/bugVanisher/dvbsub/internal/dvbtype"

// PageParseState tracks where a page composition is in its parse
// lifecycle, distinct from the PCS page_state field segment parsers
// read off the wire.
type PageParseState int

const (
	// PageComplete means the last page composition finished normally
	// (an EDS committed it). This is also the state a fresh epoch starts
	// in, so the first PCS's NORMAL_CASE branch is allowed to proceed.
	PageComplete PageParseState = iota
	PageParsing
	PageTimedOut
)

// RegionReference is where a page places one of its regions on the
// display.
type RegionReference struct {
	ID   uint8
	X, Y int32
}

// Page tracks the region layout and timing of the page composition
// currently being parsed (or last committed).
type Page struct {
	state   PageParseState
	version uint8
	pts     dvbtype.StcTime
	timeout uint32
	regions [MaxSupportedRegions]RegionReference
	count   int
}

// Reset returns the page to its epoch-start state.
func (p *Page) Reset() {
	p.state = PageComplete
	p.version = InvalidVersion
	p.pts = dvbtype.StcTime{}
	p.timeout = 0
	p.count = 0
}

// State returns the page's current parse state.
func (p *Page) State() PageParseState { return p.state }

// IsReadyForNewComposition reports whether NORMAL_CASE may proceed:
// the previous composition finished, one way or another.
func (p *Page) IsReadyForNewComposition() bool {
	return p.state == PageComplete || p.state == PageTimedOut
}

// Version returns the last PCS version parsed into this page.
func (p *Page) Version() uint8 { return p.version }

// PTS returns the PTS of the PES packet the current composition was
// parsed from.
func (p *Page) PTS() dvbtype.StcTime { return p.pts }

// Timeout returns the page's signaled timeout, in seconds.
func (p *Page) Timeout() uint32 { return p.timeout }

// StartParsing begins a new page composition.
func (p *Page) StartParsing(version uint8, pts dvbtype.StcTime, timeout uint32) {
	p.state = PageParsing
	p.version = version
	p.pts = pts
	p.timeout = timeout
	p.count = 0
}

// FinishParsing marks the in-progress composition as complete. Calling
// this outside PageParsing is a caller bug (the segment dispatcher only
// calls it for an EDS that arrives while a page is parsing), so it panics rather than silently
// no-op-ing.
func (p *Page) FinishParsing() {
	if p.state != PageParsing {
		panic("dvbdb: Page.FinishParsing called outside PageParsing")
	}
	p.state = PageComplete
}

// SetTimedOut marks the page as timed out and drops its region layout,
// matching dvbsubdecoder's Page::setTimedOut (which also clears the
// region count rather than leaving stale regions referenced).
func (p *Page) SetTimedOut() {
	p.state = PageTimedOut
	p.count = 0
}

// AddRegion places a region on the page. ok is false if the page
// already holds MaxSupportedRegions regions.
func (p *Page) AddRegion(id uint8, x, y int32) bool {
	if p.count >= len(p.regions) {
		return false
	}
	p.regions[p.count] = RegionReference{ID: id, X: x, Y: y}
	p.count++
	return true
}

// RegionCount returns the number of regions placed on the page.
func (p *Page) RegionCount() int { return p.count }

// RegionByIndex returns the region reference at the given slot.
func (p *Page) RegionByIndex(index int) RegionReference {
	if index < 0 || index >= p.count {
		panic("dvbdb: Page.RegionByIndex index out of range")
	}
	return p.regions[index]
}
