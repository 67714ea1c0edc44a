package segment

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bugVanisher/dvbsub/dvbdb"
	"github.com/bugVanisher/dvbsub/internal/bitio"
)

func u16(v uint16) []byte { return []byte{byte(v >> 8), byte(v)} }

func wrapSegment(segType uint8, pageID uint16, body []byte) []byte {
	out := []byte{syncByteValue, segType, byte(pageID >> 8), byte(pageID)}
	out = append(out, u16(uint16(len(body)))...)
	out = append(out, body...)
	return out
}

func wrapPacketData(segments ...[]byte) []byte {
	out := []byte{subtitleDataIDValue, subtitleStreamID}
	for _, s := range segments {
		out = append(out, s...)
	}
	out = append(out, endMarkerValue)
	return out
}

func newDB(comp, anc uint16) *dvbdb.Database {
	db := dvbdb.New(1 << 16)
	db.EpochReset()
	db.Status().SetPageIds(comp, anc)
	return db
}

func TestParsePacketDataSimpleOneRegionPage(t *testing.T) {
	db := newDB(1, 2)

	var pcsBody []byte
	pcsBody = append(pcsBody, 30)        // page_time_out
	pcsBody = append(pcsBody, 0)         // version 0, page_state NORMAL_CASE
	pcsBody = append(pcsBody, 5)         // region_id
	pcsBody = append(pcsBody, 0)         // reserved
	pcsBody = append(pcsBody, u16(10)...) // region_horizontal_address
	pcsBody = append(pcsBody, u16(20)...) // region_vertical_address
	pcs := wrapSegment(typePageComposition, 1, pcsBody)

	var rcsBody []byte
	rcsBody = append(rcsBody, 5)    // region_id
	rcsBody = append(rcsBody, 0)    // version 0, no forced fill
	rcsBody = append(rcsBody, u16(20)...) // width
	rcsBody = append(rcsBody, u16(10)...) // height
	rcsBody = append(rcsBody, 0x0C) // compat 0, depth 8-bit
	rcsBody = append(rcsBody, 0)    // clut id
	rcsBody = append(rcsBody, 0)    // background index
	rcsBody = append(rcsBody, 0)    // 4/2-bit background codes
	rcs := wrapSegment(typeRegionComposition, 1, rcsBody)

	eds := wrapSegment(typeEndOfDisplaySet, 2, nil)

	data := wrapPacketData(pcs, rcs, eds)
	r := bitio.NewReader(data, nil)
	ParsePacketData(db, r)

	require.Equal(t, 1, db.Regions().Count())
	// EDS commits the page; the RenderingState is only built by the
	// presenter's Draw.
	require.Equal(t, dvbdb.PageComplete, db.Page().State())
	require.Equal(t, 1, db.Page().RegionCount())
	ref := db.Page().RegionByIndex(0)
	require.Equal(t, uint8(5), ref.ID)
}

func TestParsePacketDataIgnoresUnselectedPage(t *testing.T) {
	db := newDB(1, 2)
	pcs := wrapSegment(typePageComposition, 99, []byte{30, 0})
	data := wrapPacketData(pcs)
	r := bitio.NewReader(data, nil)
	ParsePacketData(db, r)

	require.Equal(t, dvbdb.PageComplete, db.Page().State())
}

func TestParsePacketDataMalformedSyncByteResetsEpoch(t *testing.T) {
	db := newDB(1, 2)
	region, _ := db.Regions().Add(9)
	_ = region

	data := []byte{subtitleDataIDValue, subtitleStreamID, 0xAB, endMarkerValue}
	r := bitio.NewReader(data, nil)
	ParsePacketData(db, r)

	require.Equal(t, 0, db.Regions().Count())
}

func TestParsePacketDataAcquisitionPointResetsEpochUnconditionally(t *testing.T) {
	db := newDB(1, 2)
	db.Regions().Add(3)

	pcs := wrapSegment(typePageComposition, 1, []byte{30, byte(pageStateAcquisitionPoint << 2)})
	data := wrapPacketData(pcs)
	r := bitio.NewReader(data, nil)
	ParsePacketData(db, r)

	require.Equal(t, 0, db.Regions().Count())
	require.Equal(t, dvbdb.PageParsing, db.Page().State())
}
