package cmd

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bugVanisher/dvbsub/decoder"
	"github.com/bugVanisher/dvbsub/internal/dvbtype"
)

var decodeArgs struct {
	file              string
	compositionPageID uint16
	ancillaryPageID   uint16
	pngOut            string
}

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Decode a raw capture of concatenated subtitling PES packets",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(decodeArgs.file)
		if err != nil {
			return err
		}

		client := &logClient{}
		clock := &monotonicStc{}

		d := decoder.New(decoder.Config{
			PesBufferSize:   512 * 1024,
			PixmapArenaSize: 1 << 20,
			Client:          client,
			TimeProvider:    clock,
		})
		d.SetPageIds(decodeArgs.compositionPageID, decodeArgs.ancillaryPageID)
		d.Start()

		for offset := 0; offset < len(data); {
			n, ok := pesPacketLength(data[offset:])
			if !ok {
				log.Warn().Int("offset", offset).Msg("trailing bytes do not form a full PES packet, stopping")
				break
			}
			if !d.AddPESPacket(data[offset : offset+n]) {
				log.Warn().Msg("pes buffer full, flushing before continuing")
				d.Process()
				d.Draw()
			}
			offset += n
			clock.advance(3000) // ~33ms per packet, a plausible demo cadence

			if d.Process() {
				d.Draw()
			}
		}

		log.Info().Int("regions_drawn", client.drawCount).Msg("decode complete")
		if decodeArgs.pngOut != "" {
			return renderLastRegionPNG(client, decodeArgs.pngOut)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)

	decodeCmd.Flags().StringVarP(&decodeArgs.file, "file", "f", "", "Path to a raw capture of concatenated PES packets")
	decodeCmd.MarkFlagRequired("file")
	decodeCmd.Flags().Uint16Var(&decodeArgs.compositionPageID, "composition-page-id", 1, "Subtitling composition page id to decode")
	decodeCmd.Flags().Uint16Var(&decodeArgs.ancillaryPageID, "ancillary-page-id", 1, "Subtitling ancillary page id to decode")
	decodeCmd.Flags().StringVar(&decodeArgs.pngOut, "png", "", "Optional: render the last drawn region's pixmap through its CLUT to this PNG path")
}

// pesPacketLength reads just enough of a PES header to report how many
// bytes the next packet occupies, without involving the decoder's own
// ring buffer (this file walks a plain byte slice).
func pesPacketLength(b []byte) (int, bool) {
	if len(b) < 6 {
		return 0, false
	}
	if b[0] != 0x00 || b[1] != 0x00 || b[2] != 0x01 {
		return 0, false
	}
	length := int(b[4])<<8 | int(b[5])
	total := 6 + length
	if total > len(b) {
		return 0, false
	}
	return total, true
}

// monotonicStc is a fake STC source for the demo CLI: it just advances
// by a fixed step every time the caller tells it a packet went by,
// since there's no real hardware clock to read in an offline decode.
type monotonicStc struct {
	value uint32
}

func (m *monotonicStc) advance(ticks uint32) { m.value += ticks }

func (m *monotonicStc) GetStc() dvbtype.StcTime {
	return dvbtype.StcTime{Type: dvbtype.TimeTypeLow32, Value: m.value}
}

// logClient is the demo decoder.Client: it just logs every graphics
// call instead of driving a real display, and remembers the last
// drawn region+rect so --png can render something after the fact.
type logClient struct {
	drawCount  int
	lastBitmap dvbtype.Bitmap
	lastRect   dvbtype.Rectangle
}

func (c *logClient) GfxSetDisplayBounds(display, window dvbtype.Rectangle) {
	log.Info().
		Interface("display", display).
		Interface("window", window).
		Msg("gfxSetDisplayBounds")
}

func (c *logClient) GfxClear(rect dvbtype.Rectangle) {
	log.Info().Interface("rect", rect).Msg("gfxClear")
}

func (c *logClient) GfxDraw(bitmap dvbtype.Bitmap, srcRect, dstRect dvbtype.Rectangle) {
	log.Info().
		Int32("width", bitmap.Width).Int32("height", bitmap.Height).
		Interface("src", srcRect).Interface("dst", dstRect).
		Msg("gfxDraw")
	c.drawCount++
	c.lastBitmap = bitmap
	c.lastRect = dstRect
}

func (c *logClient) GfxFinish(modifiedRect dvbtype.Rectangle) {
	log.Info().Interface("modified", modifiedRect).Msg("gfxFinish")
}

func (c *logClient) GfxAllocate(size int) []byte { return make([]byte, size) }

func (c *logClient) GfxFree(block []byte) {}
