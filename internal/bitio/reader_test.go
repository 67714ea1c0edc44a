package bitio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReaderAcrossWindows(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02}, []byte{0x03, 0x04, 0x05})

	require.Equal(t, 5, r.BytesLeft())

	b, err := r.ReadUint8()
	require.NoError(t, err)
	require.Equal(t, uint8(0x01), b)

	v, err := r.ReadUint16BE()
	require.NoError(t, err)
	require.Equal(t, uint16(0x0203), v)

	peek, err := r.PeekUint8()
	require.NoError(t, err)
	require.Equal(t, uint8(0x04), peek)

	require.NoError(t, r.Skip(1))

	last, err := r.ReadUint8()
	require.NoError(t, err)
	require.Equal(t, uint8(0x05), last)

	require.Equal(t, 0, r.BytesLeft())
	_, err = r.ReadUint8()
	require.ErrorIs(t, err, ErrUnderflow)
}

func TestReaderSubSpanningBothWindows(t *testing.T) {
	r := NewReader([]byte{0xAA, 0xBB}, []byte{0xCC, 0xDD})

	sub, err := r.Sub(3)
	require.NoError(t, err)
	require.Equal(t, 3, sub.BytesLeft())

	bs, err := sub.ReadBytes(3)
	require.NoError(t, err)
	require.Equal(t, []byte{0xAA, 0xBB, 0xCC}, bs)

	// outer reader untouched by Sub
	require.Equal(t, 4, r.BytesLeft())
	require.NoError(t, r.Skip(3))
	require.Equal(t, 1, r.BytesLeft())
}

func TestReaderUnderflowOnSub(t *testing.T) {
	r := NewReader([]byte{0x01}, nil)
	_, err := r.Sub(5)
	require.ErrorIs(t, err, ErrUnderflow)
}
