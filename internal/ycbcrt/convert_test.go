package ycbcrt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToARGBAlphaIsComplementOfTransparency(t *testing.T) {
	argb := ToARGB(128, 128, 128, 0)
	require.Equal(t, uint8(0xFF), uint8(argb>>24))

	argb = ToARGB(128, 128, 128, 255)
	require.Equal(t, uint8(0x00), uint8(argb>>24))
}

func TestDefault2BitFirstEntryTransparent(t *testing.T) {
	table := Default2Bit()
	require.Equal(t, uint8(0x00), uint8(table[0]>>24))
}

func TestDefault4BitFirstEntryTransparent(t *testing.T) {
	table := Default4Bit()
	require.Equal(t, uint8(0x00), uint8(table[0]>>24))
	require.Len(t, table, 16)
}

func TestDefault8BitFirstEntryTransparent(t *testing.T) {
	table := Default8Bit()
	require.Equal(t, uint8(0x00), uint8(table[0]>>24))
	require.Len(t, table, 256)
}
