// Package pes implements the ring-buffered PES packet intake described
// in dvbsubdecoder's PesBuffer: packets are appended as they arrive from
// the host demux and handed back out in order, each wrapped with the
// bit-exact 33-bit PTS projected into a 32-bit HIGH/LOW time value.
package pes

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bugVanisher/dvbsub/internal/bitio"
	"github.com/bugVanisher/dvbsub/internal/dvbtype"
	"github.com/bugVanisher/dvbsub/utils"
)

// DefaultSize is the PES ring buffer capacity dvbsubdecoder's Storage
// wires PesBuffer with by default.
const DefaultSize = 2 * 65536

const (
	streamIDSubtitles = 0xBD
	ptsDTSFlagsPTS    = 0x2
)

var (
	// ErrMalformedHeader means the bytes at the current read position do
	// not parse as a PES packet header. The caller's recovery is to clear
	// the whole ring, matching PesBuffer::getNextPacket's catch block.
	ErrMalformedHeader = errors.New("pes: malformed packet header")
)

// Header is the subset of a PES packet header the decoder pipeline
// needs: enough to route the packet and, if present, its PTS.
type Header struct {
	StreamID uint8
	Length   uint16
	HasPTS   bool
	PTS      dvbtype.StcTime
}

// IsSubtitlesPacket reports whether this header's stream id identifies a
// private_stream_1 PES packet, the only stream id DVB subtitles use.
func (h Header) IsSubtitlesPacket() bool {
	return h.StreamID == streamIDSubtitles
}

// TotalSize is the number of ring bytes this packet occupies: the 6-byte
// start-code+stream-id+length prefix plus PESPacketLength.
func (h Header) TotalSize() int {
	return 6 + int(h.Length)
}

// Buffer is a fixed-capacity ring buffer of raw PES packet bytes.
type Buffer struct {
	data     []byte
	writePos int
	readPos  int
	used     int
	logger   zerolog.Logger
}

// NewBuffer allocates a ring buffer of the given capacity. Capacity
// never grows after construction, matching dvbsubdecoder's fixed-memory
// design (spec.md's Non-goals).
func NewBuffer(size int) *Buffer {
	if size <= 0 {
		size = DefaultSize
	}
	return &Buffer{data: make([]byte, size), logger: log.Logger}
}

// SetLogger overrides the default (global) logger.
func (b *Buffer) SetLogger(l zerolog.Logger) { b.logger = l }

// Clear discards all buffered bytes.
func (b *Buffer) Clear() {
	b.writePos = 0
	b.readPos = 0
	b.used = 0
}

func (b *Buffer) free() int {
	return len(b.data) - b.used
}

// AddPESPacket appends one PES packet's raw bytes to the ring. Returns
// false, without modifying the buffer, if there isn't room or the
// packet fails the header sanity checks PesBuffer::addPesPacket runs
// up front: too short, a bad start code/stream id, or a
// PES_packet_length field that doesn't match the slice's own length.
// Passing these keeps the "next GetNextPacket returns a header whose
// TotalSize()==len(packet)" invariant from ever desyncing against the
// ring's actual contents.
func (b *Buffer) AddPESPacket(packet []byte) bool {
	if len(packet) > b.free() {
		b.logger.Warn().Int("size", len(packet)).Msg("pes buffer full, dropping packet")
		return false
	}
	if len(packet) < 6 {
		b.logger.Warn().Int("size", len(packet)).Msg("pes packet too short, dropping packet")
		return false
	}
	if packet[0] != 0x00 || packet[1] != 0x00 || packet[2] != 0x01 || packet[3] != streamIDSubtitles {
		b.logger.Warn().Msg("pes packet header invalid, dropping packet")
		return false
	}
	pesLength := utils.BytesToUint16(packet[4:6])
	if pesLength == 0 {
		b.logger.Warn().Msg("pes packet empty, dropping packet")
		return false
	}
	if int(pesLength) != len(packet)-6 {
		b.logger.Warn().Uint16("pes_length", pesLength).Int("expected", len(packet)-6).Msg("pes packet length mismatch, dropping packet")
		return false
	}

	for i := 0; i < len(packet); i++ {
		b.data[(b.writePos+i)%len(b.data)] = packet[i]
	}
	b.writePos = (b.writePos + len(packet)) % len(b.data)
	b.used += len(packet)
	return true
}

// window returns the (up to) two contiguous slices covering n bytes
// starting at the ring's current read position.
func (b *Buffer) window(n int) ([]byte, []byte) {
	if n > b.used {
		n = b.used
	}
	chunk1 := n
	if chunk1 > len(b.data)-b.readPos {
		chunk1 = len(b.data) - b.readPos
	}
	chunk2 := n - chunk1
	w1 := b.data[b.readPos : b.readPos+chunk1]
	var w2 []byte
	if chunk2 > 0 {
		w2 = b.data[0:chunk2]
	}
	return w1, w2
}

// GetNextPacket returns the header and a reader positioned just past the
// PES header (ready to read subtitling payload) for the next complete
// packet in the ring. It returns ok=false if there isn't a full packet
// buffered yet. A malformed header clears the entire ring, matching the
// original's ring-level recovery strategy for corrupted framing.
func (b *Buffer) GetNextPacket(timeType dvbtype.StcTimeType) (Header, *bitio.Reader, bool) {
	if b.used < 6 {
		return Header{}, nil, false
	}

	w1, w2 := b.window(b.used)
	probe := bitio.NewReader(w1, w2)
	header, err := readHeader(probe, timeType)
	if err != nil {
		b.logger.Warn().Err(err).Msg("malformed PES header, clearing buffer")
		b.Clear()
		return Header{}, nil, false
	}

	total := header.TotalSize()
	if b.used < total {
		return Header{}, nil, false
	}

	pw1, pw2 := b.window(total)
	reader := bitio.NewReader(pw1, pw2)
	if _, err := readHeader(reader, timeType); err != nil {
		b.logger.Warn().Err(err).Msg("malformed PES header, clearing buffer")
		b.Clear()
		return Header{}, nil, false
	}

	return header, reader, true
}

// MarkPacketConsumed advances the read position past a packet returned
// by GetNextPacket.
func (b *Buffer) MarkPacketConsumed(h Header) {
	total := h.TotalSize()
	if total > b.used {
		total = b.used
	}
	b.readPos = (b.readPos + total) % len(b.data)
	b.used -= total
}

func readHeader(r *bitio.Reader, timeType dvbtype.StcTimeType) (Header, error) {
	b0, err := r.ReadUint8()
	if err != nil {
		return Header{}, errors.Wrap(err, "start code byte 0")
	}
	b1, err := r.ReadUint8()
	if err != nil {
		return Header{}, errors.Wrap(err, "start code byte 1")
	}
	b2, err := r.ReadUint8()
	if err != nil {
		return Header{}, errors.Wrap(err, "start code byte 2")
	}
	if b0 != 0x00 || b1 != 0x00 || b2 != 0x01 {
		return Header{}, errors.Wrap(ErrMalformedHeader, "start code prefix")
	}

	streamID, err := r.ReadUint8()
	if err != nil {
		return Header{}, errors.Wrap(err, "stream id")
	}
	length, err := r.ReadUint16BE()
	if err != nil {
		return Header{}, errors.Wrap(err, "PES_packet_length")
	}

	header := Header{StreamID: streamID, Length: length}

	// The remaining optional fields only exist for non-control stream
	// ids; DVB subtitles always arrive as private_stream_1 (0xBD), which
	// always carries them.
	if streamID != streamIDSubtitles {
		return header, nil
	}

	if _, err := r.ReadUint8(); err != nil { // '10', scrambling, priority, alignment, copyright, original
		return Header{}, errors.Wrap(err, "PES flags byte 1")
	}
	flags2, err := r.ReadUint8()
	if err != nil {
		return Header{}, errors.Wrap(err, "PES flags byte 2")
	}
	headerDataLength, err := r.ReadUint8()
	if err != nil {
		return Header{}, errors.Wrap(err, "PES_header_data_length")
	}

	optional, err := r.Sub(int(headerDataLength))
	if err != nil {
		return Header{}, errors.Wrap(err, "PES optional fields")
	}

	ptsDTSFlags := (flags2 >> 6) & 0x3
	if ptsDTSFlags&ptsDTSFlagsPTS != 0 {
		ptsBytes, err := optional.ReadBytes(5)
		if err != nil {
			return Header{}, errors.Wrap(err, "PTS bytes")
		}
		header.HasPTS = true
		header.PTS = decodePTS(ptsBytes, timeType)
	}

	if err := r.Skip(int(headerDataLength)); err != nil {
		return Header{}, errors.Wrap(err, "skip PES optional fields")
	}

	return header, nil
}

// decodePTS assembles the 33-bit PTS from its 5-byte marker-bit-padded
// encoding and projects it to a 32-bit value. LOW_32 drops the
// most-significant bit of the 33-bit value (the wraparound bit); HIGH_32
// drops the least-significant bit instead. The pipeline only ever
// compares values of the same projection, so the dropped bit never
// causes a mismatch.
func decodePTS(b []byte, timeType dvbtype.StcTimeType) dvbtype.StcTime {
	bits32to30 := uint64(b[0]>>1) & 0x07
	bits29to22 := uint64(b[1])
	bits21to15 := uint64(b[2]>>1) & 0x7F
	bits14to7 := uint64(b[3])
	bits6to0 := uint64(b[4]>>1) & 0x7F

	full33 := bits32to30<<30 | bits29to22<<22 | bits21to15<<15 | bits14to7<<7 | bits6to0

	var value uint32
	if timeType == dvbtype.TimeTypeHigh32 {
		value = uint32(full33 >> 1)
	} else {
		value = uint32(full33 & 0xFFFFFFFF)
	}
	return dvbtype.StcTime{Type: timeType, Value: value}
}
