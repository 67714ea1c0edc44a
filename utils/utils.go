// Package utils holds the small big-endian byte/integer conversion
// helpers the wire-format readers build on, adapted from the teacher's
// grab-bag utils package down to just the conversions this decoder
// actually needs (the RTMP/HLS-specific URL and stream-id helpers that
// used to live alongside them had no analogue here and were dropped).
package utils

import "encoding/binary"

// Uint16ToBytes encodes i as two big-endian bytes.
func Uint16ToBytes(i uint16) []byte {
	buf := make([]byte, 2)
	binary.BigEndian.PutUint16(buf, i)
	return buf
}

// BytesToUint16 decodes two big-endian bytes into a uint16.
func BytesToUint16(buf []byte) uint16 {
	return binary.BigEndian.Uint16(buf)
}

// Uint32ToBytes encodes i as four big-endian bytes.
func Uint32ToBytes(i uint32) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, i)
	return buf
}

// BytesToUint32 decodes four big-endian bytes into a uint32.
func BytesToUint32(buf []byte) uint32 {
	return binary.BigEndian.Uint32(buf)
}
