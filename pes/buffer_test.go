package pes

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bugVanisher/dvbsub/internal/dvbtype"
)

// buildPESPacket assembles a minimal private_stream_1 PES packet
// carrying payload, optionally with a PTS, mirroring the test helper
// role of the original's PesBuilder.
func buildPESPacket(pts uint64, hasPTS bool, payload []byte) []byte {
	var optional []byte
	ptsDTSFlags := byte(0)
	if hasPTS {
		ptsDTSFlags = 0x2
		optional = append(optional, encodePTSBytes(pts)...)
	}

	body := []byte{
		0x80,                       // '10' + scrambling/priority/alignment/copyright/original
		ptsDTSFlags << 6,           // PTS_DTS_flags in top 2 bits
		byte(len(optional)),        // PES_header_data_length
	}
	body = append(body, optional...)
	body = append(body, payload...)

	length := len(body)
	header := []byte{0x00, 0x00, 0x01, streamIDSubtitles, byte(length >> 8), byte(length)}
	return append(header, body...)
}

func encodePTSBytes(pts uint64) []byte {
	b0 := byte(0x20 | ((pts>>30)&0x07)<<1 | 0x01)
	b1 := byte(pts >> 22)
	b2 := byte((pts>>15)&0x7F<<1 | 0x01)
	b3 := byte(pts >> 7)
	b4 := byte((pts&0x7F)<<1 | 0x01)
	return []byte{b0, b1, b2, b3, b4}
}

func TestBufferRoundTripWithPTS(t *testing.T) {
	buf := NewBuffer(1024)
	packet := buildPESPacket(0x1_0000_0001, true, []byte{0x0F, 0xAA, 0xFF})
	require.True(t, buf.AddPESPacket(packet))

	header, reader, ok := buf.GetNextPacket(dvbtype.TimeTypeLow32)
	require.True(t, ok)
	require.True(t, header.IsSubtitlesPacket())
	require.True(t, header.HasPTS)

	b, err := reader.ReadUint8()
	require.NoError(t, err)
	require.Equal(t, uint8(0x0F), b)

	buf.MarkPacketConsumed(header)
	_, _, ok = buf.GetNextPacket(dvbtype.TimeTypeLow32)
	require.False(t, ok)
}

func TestBufferWaitsWhenEmpty(t *testing.T) {
	buf := NewBuffer(1024)
	_, _, ok := buf.GetNextPacket(dvbtype.TimeTypeLow32)
	require.False(t, ok)
}

func TestBufferRejectsTruncatedPacket(t *testing.T) {
	buf := NewBuffer(1024)
	packet := buildPESPacket(0, false, []byte{0x0F, 0xAA, 0xFF})
	// The PES_packet_length field still describes the full packet, but
	// the slice handed to AddPESPacket is one byte short of it.
	require.False(t, buf.AddPESPacket(packet[:len(packet)-1]))
}

func TestBufferRejectsPacketShorterThanHeader(t *testing.T) {
	buf := NewBuffer(1024)
	require.False(t, buf.AddPESPacket([]byte{0x00, 0x00, 0x01}))
}

func TestBufferRejectsBadStartCode(t *testing.T) {
	buf := NewBuffer(1024)
	packet := buildPESPacket(0, false, []byte{0x0F})
	packet[2] = 0x02 // corrupt the start code prefix
	require.False(t, buf.AddPESPacket(packet))
}

func TestBufferRejectsLengthMismatch(t *testing.T) {
	buf := NewBuffer(1024)
	packet := buildPESPacket(0, false, []byte{0x0F, 0xAA})
	packet[5]++ // corrupt PES_packet_length so it no longer matches len(packet)-6
	require.False(t, buf.AddPESPacket(packet))
}

func TestBufferRejectsOversizedPacket(t *testing.T) {
	buf := NewBuffer(8)
	packet := buildPESPacket(0, false, make([]byte, 32))
	require.False(t, buf.AddPESPacket(packet))
}

func TestBufferWrapAround(t *testing.T) {
	// 24 bytes: the 11-byte first packet leaves the read position at 11,
	// so the 19-byte second packet wraps after its fourth payload byte.
	buf := NewBuffer(24)
	first := buildPESPacket(0, false, []byte{0x01, 0x02})
	require.True(t, buf.AddPESPacket(first))
	h, _, ok := buf.GetNextPacket(dvbtype.TimeTypeLow32)
	require.True(t, ok)
	buf.MarkPacketConsumed(h)

	second := buildPESPacket(0, false, []byte{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF, 0x11, 0x22, 0x33, 0x44})
	require.True(t, buf.AddPESPacket(second))

	h2, reader, ok := buf.GetNextPacket(dvbtype.TimeTypeLow32)
	require.True(t, ok)
	first8, err := reader.ReadBytes(8)
	require.NoError(t, err)
	require.Equal(t, []byte{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF, 0x11, 0x22}, first8)
	buf.MarkPacketConsumed(h2)
}
