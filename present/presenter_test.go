package present

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bugVanisher/dvbsub/dvbdb"
	"github.com/bugVanisher/dvbsub/internal/dvbtype"
)

type recordingClient struct {
	calls []string
}

func (c *recordingClient) GfxSetDisplayBounds(display, window dvbtype.Rectangle) {
	c.calls = append(c.calls, "setBounds")
}
func (c *recordingClient) GfxClear(rect dvbtype.Rectangle) { c.calls = append(c.calls, "clear") }
func (c *recordingClient) GfxDraw(bitmap dvbtype.Bitmap, srcRect, dstRect dvbtype.Rectangle) {
	c.calls = append(c.calls, "draw")
}
func (c *recordingClient) GfxFinish(modifiedRect dvbtype.Rectangle) {
	c.calls = append(c.calls, "finish")
}

// placeRegion defines regionID with a width x height pixmap bound to CLUT 0, then
// places it on the page at (x,y) — enough of the RCS/PCS wire-format
// work to exercise the presenter without going through segment parsing.
func placeRegion(t *testing.T, db *dvbdb.Database, regionID uint8, x, y, width, height int32) {
	t.Helper()
	region, ok := db.Regions().Add(regionID)
	require.True(t, ok)
	pixmap, ok := db.AllocatePixmap(width, height)
	require.True(t, ok)
	_, ok = db.Cluts().GetOrAdd(0)
	require.True(t, ok)
	region.Init(0, 0, dvbdb.RegionDepth8Bit, 0, 0, pixmap)
	require.True(t, db.Page().AddRegion(regionID, x, y))
}

// committedPage starts and finishes a page composition, placing one
// region at (x,y), so buildCurrentState sees PageComplete with the
// region already laid out.
func committedPage(t *testing.T, db *dvbdb.Database, regionID uint8, x, y, width, height int32) {
	t.Helper()
	db.Page().StartParsing(0, dvbtype.StcTime{}, 30)
	placeRegion(t, db, regionID, x, y, width, height)
	db.Page().FinishParsing()
}

func TestPresenterDrawsNewRegionOnFirstPresent(t *testing.T) {
	db := dvbdb.New(1024)
	client := &recordingClient{}
	p := New(db, client)

	committedPage(t, db, 1, 3, 2, 10, 4)

	p.Draw()

	require.Equal(t, []string{"setBounds", "draw", "finish"}, client.calls)
	// Draw swaps first, so the state it just built is Current.
	require.Equal(t, 1, db.Current().RegionCount())
	info := db.Current().RegionByIndex(0)
	require.Equal(t, uint8(1), info.ID)
	require.Equal(t, int32(3), info.Rect.X1)
	require.Equal(t, int32(2), info.Rect.Y1)
	require.Equal(t, int32(13), info.Rect.X2)
	require.Equal(t, int32(6), info.Rect.Y2)
}

func TestPresenterSkipsUnmodifiedRegion(t *testing.T) {
	db := dvbdb.New(1024)
	client := &recordingClient{}
	p := New(db, client)

	committedPage(t, db, 1, 0, 0, 5, 5)
	p.Draw()

	client.calls = nil
	p.Draw()

	require.Equal(t, []string{"finish"}, client.calls)
}

func TestPresenterClearsRemovedRegion(t *testing.T) {
	db := dvbdb.New(1024)
	client := &recordingClient{}
	p := New(db, client)

	committedPage(t, db, 1, 0, 0, 5, 5)
	p.Draw()

	client.calls = nil
	db.EpochReset()
	p.Draw()

	require.Equal(t, []string{"clear", "finish"}, client.calls)
}

func TestPresenterRedrawsOnVersionBump(t *testing.T) {
	db := dvbdb.New(1024)
	client := &recordingClient{}
	p := New(db, client)

	committedPage(t, db, 1, 0, 0, 5, 5)
	p.Draw()

	client.calls = nil
	db.Page().StartParsing(1, dvbtype.StcTime{}, 30)
	region, ok := db.Regions().GetByID(1)
	require.True(t, ok)
	pixmap, ok := db.AllocatePixmap(5, 5)
	require.True(t, ok)
	region.Init(1, 0, dvbdb.RegionDepth8Bit, 0, 0, pixmap)
	require.True(t, db.Page().AddRegion(1, 0, 0))
	db.Page().FinishParsing()
	p.Draw()

	// The old version no longer matches anything in the new state, so it
	// is cleared before the new version is drawn.
	require.Equal(t, []string{"clear", "draw", "finish"}, client.calls)
}

func TestPresenterClearsOnIncompletePage(t *testing.T) {
	db := dvbdb.New(1024)
	client := &recordingClient{}
	p := New(db, client)

	committedPage(t, db, 1, 0, 0, 5, 5)
	p.Draw()

	client.calls = nil
	db.Page().StartParsing(1, dvbtype.StcTime{}, 30)
	// Left PageParsing: an aborted composition never reaches EDS, so
	// buildCurrentState must see no regions at all, not the stale
	// ones from the last commit.
	p.Draw()

	require.Equal(t, []string{"clear", "finish"}, client.calls)
}
