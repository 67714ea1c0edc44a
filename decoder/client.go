package decoder

import "github.com/bugVanisher/dvbsub/internal/dvbtype"

// Client is the graphics sink the decoder drives: it mirrors
// dvbsubdecoder's DecoderClient interface. GfxAllocate/GfxFree exist
// for parity with the original's object-bitmap scratch allocator but
// are never called by this package — object bitmap RLE decode is a
// pinned, host-owned interface per spec.md §1's Non-goals, so nothing
// here ever needs scratch memory from the client.
type Client interface {
	// GfxSetDisplayBounds is called whenever the display or window
	// rectangle changes.
	GfxSetDisplayBounds(display, window dvbtype.Rectangle)
	// GfxClear is called to erase a rectangle that's no longer showing
	// the region it used to.
	GfxClear(rect dvbtype.Rectangle)
	// GfxDraw is called to (re)paint a region: bitmap is the region's
	// live indexed pixmap plus its selected-by-depth CLUT array,
	// srcRect is the pixmap's own bounds ({0,0,w,h}), and dstRect is
	// where it lands in display coordinates.
	GfxDraw(bitmap dvbtype.Bitmap, srcRect, dstRect dvbtype.Rectangle)
	// GfxFinish is called once after a batch of GfxClear/GfxDraw calls,
	// with the union of every rectangle passed to them, extended to the
	// whole display when the bounds changed (or the zero rectangle if
	// nothing changed), signaling the sink may present the
	// accumulated changes.
	GfxFinish(modifiedRect dvbtype.Rectangle)
	// GfxAllocate/GfxFree: reserved, unused. See type doc comment.
	GfxAllocate(size int) []byte
	GfxFree(block []byte)
}
