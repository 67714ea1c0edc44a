package dvbdb

import "github.com/bugVanisher/dvbsub/internal/dvbtype"

// RegionInfo is one rendered region's presentation-relevant state: its
// display-coordinate rectangle and whether the presenter still needs to
// (re)draw it.
type RegionInfo struct {
	ID       uint8
	Version  uint8
	Rect     dvbtype.Rectangle
	Dirty    bool
}

// RenderingState is a snapshot of what's on screen (or about to be): a
// display/window rectangle pair plus the list of currently placed
// regions. Presenter diffs two of these (previous vs. current) to
// compute the minimal set of draw calls, ported from
// dvbsubdecoder's RenderingState.hpp.
type RenderingState struct {
	displayBounds dvbtype.Rectangle
	windowBounds  dvbtype.Rectangle
	regions       [MaxSupportedRegions]RegionInfo
	count         int
}

// Reset invalidates the display rectangle and removes all regions.
func (s *RenderingState) Reset() {
	s.displayBounds = dvbtype.Rectangle{}
	s.windowBounds = dvbtype.Rectangle{}
	s.count = 0
}

// DisplayBounds returns the display rectangle.
func (s *RenderingState) DisplayBounds() dvbtype.Rectangle { return s.displayBounds }

// WindowBounds returns the subtitling window rectangle.
func (s *RenderingState) WindowBounds() dvbtype.Rectangle { return s.windowBounds }

// SetBounds sets the display and window bounds.
func (s *RenderingState) SetBounds(displayBounds, windowBounds dvbtype.Rectangle) {
	s.displayBounds = displayBounds
	s.windowBounds = windowBounds
}

// RemoveAllRegions drops all regions without touching the bounds.
func (s *RenderingState) RemoveAllRegions() { s.count = 0 }

// MarkAllRegionsAsDirty marks every currently-defined region dirty.
func (s *RenderingState) MarkAllRegionsAsDirty() {
	for i := 0; i < s.count; i++ {
		s.regions[i].Dirty = true
	}
}

// UnmarkRegionAsDirtyByIndex clears one region's dirty flag. index must
// be in range; an out-of-range index is a caller bug (mirrors the
// original's std::range_error) so this panics.
func (s *RenderingState) UnmarkRegionAsDirtyByIndex(index int) {
	if index < 0 || index >= s.count {
		panic("dvbdb: RenderingState index out of range")
	}
	s.regions[index].Dirty = false
}

// AddRegion appends one region, marked dirty. ok is false if the state
// already holds MaxSupportedRegions regions.
func (s *RenderingState) AddRegion(id, version uint8, rect dvbtype.Rectangle) bool {
	if s.count >= len(s.regions) {
		return false
	}
	s.regions[s.count] = RegionInfo{ID: id, Version: version, Rect: rect, Dirty: true}
	s.count++
	return true
}

// RegionCount returns the number of regions currently held.
func (s *RenderingState) RegionCount() int { return s.count }

// RegionByIndex returns the region at the given slot. index must be in
// range; out of range is a caller bug, so this panics.
func (s *RenderingState) RegionByIndex(index int) RegionInfo {
	if index < 0 || index >= s.count {
		panic("dvbdb: RenderingState index out of range")
	}
	return s.regions[index]
}
