package dvbdb

import "github.com/bugVanisher/dvbsub/internal/dvbtype"

// Status tracks the page ids the host has selected and the PTS of the
// last processed packet. Reconstructed from spec.md §4.2's dispatch
// table: dvbsubdecoder's own Status.hpp/.cpp were not present in the
// retrieval pack.
type Status struct {
	spec              dvbtype.Specification
	compositionPageID uint16
	ancillaryPageID   uint16
	havePageIDs       bool
	lastPts           dvbtype.StcTime
}

// SetPageIds records which page ids the host wants composition and
// ancillary (if any) segments selected from.
func (s *Status) SetPageIds(compositionPageID, ancillaryPageID uint16) {
	s.compositionPageID = compositionPageID
	s.ancillaryPageID = ancillaryPageID
	s.havePageIDs = true
}

// HavePageIDs reports whether SetPageIds has been called yet.
func (s *Status) HavePageIDs() bool { return s.havePageIDs }

// IsCompositionPage reports whether pageID is the selected composition
// page. PCS, RCS and DDS segments are only honored for this page id.
func (s *Status) IsCompositionPage(pageID uint16) bool {
	return s.havePageIDs && pageID == s.compositionPageID
}

// IsAncillaryPage reports whether pageID is the selected ancillary page.
// EDS segments require this page id specifically.
func (s *Status) IsAncillaryPage(pageID uint16) bool {
	return s.havePageIDs && pageID == s.ancillaryPageID
}

// IsSelectedPage reports whether pageID is either selected page. CDS and
// ODS segments accept either.
func (s *Status) IsSelectedPage(pageID uint16) bool {
	return s.IsCompositionPage(pageID) || s.IsAncillaryPage(pageID)
}

// SpecVersion returns the subtitling standard revision in effect.
func (s *Status) SpecVersion() dvbtype.Specification { return s.spec }

// SetSpecVersion records which subtitling standard revision is in
// effect. The value is only stored: segment parsing does not read it.
func (s *Status) SetSpecVersion(v dvbtype.Specification) { s.spec = v }

// LastPts returns the PTS of the most recently processed subtitling PES
// packet.
func (s *Status) LastPts() dvbtype.StcTime { return s.lastPts }

// SetLastPts records the PTS of the packet currently being processed.
func (s *Status) SetLastPts(pts dvbtype.StcTime) { s.lastPts = pts }
