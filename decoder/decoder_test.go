package decoder

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/bugVanisher/dvbsub/internal/dvbtype"
)

type fixedTime struct{ stc uint32 }

func (f fixedTime) GetStc() dvbtype.StcTime {
	return dvbtype.StcTime{Type: dvbtype.TimeTypeLow32, Value: f.stc}
}

func u16(v uint16) []byte { return []byte{byte(v >> 8), byte(v)} }

func encodePTSBytes(pts uint32) []byte {
	full := uint64(pts) // LOW_32 projection of a 33-bit PTS is the PTS mod 2^32, so using pts itself round-trips exactly
	b0 := byte(0x20 | ((full>>30)&0x07)<<1 | 0x01)
	b1 := byte(full >> 22)
	b2 := byte((full>>15)&0x7F<<1 | 0x01)
	b3 := byte(full >> 7)
	b4 := byte((full&0x7F)<<1 | 0x01)
	return []byte{b0, b1, b2, b3, b4}
}

func buildPESPacket(pts uint32, payload []byte) []byte {
	optional := encodePTSBytes(pts)
	body := []byte{0x80, 0x2 << 6, byte(len(optional))}
	body = append(body, optional...)
	body = append(body, payload...)
	length := len(body)
	return append([]byte{0x00, 0x00, 0x01, 0xBD, byte(length >> 8), byte(length)}, body...)
}

func wrapSeg(segType uint8, pageID uint16, body []byte) []byte {
	out := []byte{0x0F, segType, byte(pageID >> 8), byte(pageID)}
	out = append(out, u16(uint16(len(body)))...)
	return append(out, body...)
}

// onePagePayload builds a minimal subtitling PES payload: a PCS placing
// one region, an RCS (re)defining it, and an EDS committing the page.
func onePagePayload(regionVersion byte) []byte {
	pcsBody := []byte{30, 0, 5, 0} // timeout=30s, version/state=0 (NORMAL_CASE), region_id=5, reserved=0
	pcsBody = append(pcsBody, u16(10)...)
	pcsBody = append(pcsBody, u16(20)...)
	pcs := wrapSeg(typePageComposition, 1, pcsBody)

	rcsBody := []byte{5, regionVersion << 4} // region_id=5, version/fill
	rcsBody = append(rcsBody, u16(8)...)     // width
	rcsBody = append(rcsBody, u16(6)...)     // height
	rcsBody = append(rcsBody, 0x03, 0, 0, 0) // flags2, clut_id, background x2
	rcs := wrapSeg(typeRegionComposition, 1, rcsBody)

	eds := wrapSeg(typeEndOfDisplaySet, 2, nil)

	out := []byte{0x20, 0x00} // data_identifier, subtitle_stream_id
	out = append(out, pcs...)
	out = append(out, rcs...)
	out = append(out, eds...)
	out = append(out, 0xFF) // end marker
	return out
}

const (
	typePageComposition   = 0x10
	typeRegionComposition = 0x11
	typeEndOfDisplaySet   = 0x80
)

// newDecoderForTest wires a started decoder and flushes the initial
// Invalidate from SetPageIds's implicit Reset, so each test's own
// GfxDraw/GfxSetDisplayBounds expectations describe only what its own
// Process/Draw calls produce.
func newDecoderForTest(client *MockClient, timeProvider TimeProvider) *Decoder {
	d := New(Config{
		PesBufferSize:   4096,
		PixmapArenaSize: 1 << 16,
		Client:          client,
		TimeProvider:    timeProvider,
	})
	d.SetPageIds(1, 2)
	d.Start()
	// The first Draw announces the default display bounds (the previous
	// RenderingState is still zero-valued) and has no regions to draw.
	client.EXPECT().GfxSetDisplayBounds(gomock.Any(), gomock.Any())
	d.Draw()
	return d
}

func TestDecoderProcessesDuePacketAndDraws(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := NewMockClient(ctrl)
	client.EXPECT().GfxFinish(gomock.Any()).AnyTimes()

	d := newDecoderForTest(client, fixedTime{stc: 10_000})
	require.True(t, d.AddPESPacket(buildPESPacket(10_000, onePagePayload(0))))

	require.True(t, d.Process())

	// Bounds are unchanged since the helper's Draw: only the region is drawn.
	client.EXPECT().GfxDraw(gomock.Any(), gomock.Any(), gomock.Any())
	d.Draw()
}

func TestDecoderWaitsForFuturePTS(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := NewMockClient(ctrl)
	client.EXPECT().GfxFinish(gomock.Any()).AnyTimes()

	d := newDecoderForTest(client, fixedTime{stc: 0})
	require.True(t, d.AddPESPacket(buildPESPacket(ptsStcDiffMax90kHz/2, onePagePayload(0))))
	require.False(t, d.Process())
}

func TestDecoderDropsFarOverduePTS(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := NewMockClient(ctrl)
	client.EXPECT().GfxFinish(gomock.Any()).AnyTimes()

	d := newDecoderForTest(client, fixedTime{stc: pesDelayMax90kHz * 2})
	require.True(t, d.AddPESPacket(buildPESPacket(0, onePagePayload(0))))
	require.False(t, d.Process())
}

func TestDecoderResetClearsEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := NewMockClient(ctrl)
	client.EXPECT().GfxFinish(gomock.Any()).AnyTimes()

	d := newDecoderForTest(client, fixedTime{stc: 0})
	require.True(t, d.AddPESPacket(buildPESPacket(0, onePagePayload(0))))

	d.Reset()
	// Reset's Invalidate makes the next Draw re-announce the display bounds.
	client.EXPECT().GfxSetDisplayBounds(gomock.Any(), gomock.Any())
	d.Draw() // flush Reset's Invalidate before asserting Process sees nothing pending

	require.False(t, d.Process())
}
