// Package bitio implements a two-window big-endian byte reader used to
// walk PES payloads and subtitling segments without copying the ring
// buffer they were read from.
package bitio

import (
	"errors"

	"github.com/bugVanisher/dvbsub/utils"
)

// ErrUnderflow is returned when a read runs past the end of the window.
var ErrUnderflow = errors.New("bitio: buffer underflow")

// Reader walks a logical byte stream made of up to two backing slices
// (data1 followed by data2), mirroring how dvbsubdecoder's PesBuffer
// hands a packet to its reader as two wraparound chunks instead of a
// single contiguous copy.
type Reader struct {
	data1 []byte
	data2 []byte
	pos   int
}

// NewReader builds a reader over data1 followed by data2. Either slice
// may be nil/empty; a single contiguous window is data1 with a nil data2.
func NewReader(data1, data2 []byte) *Reader {
	return &Reader{data1: data1, data2: data2}
}

func (r *Reader) total() int {
	return len(r.data1) + len(r.data2)
}

// BytesLeft returns the number of unread bytes in the window.
func (r *Reader) BytesLeft() int {
	n := r.total() - r.pos
	if n < 0 {
		return 0
	}
	return n
}

func (r *Reader) at(i int) byte {
	if i < len(r.data1) {
		return r.data1[i]
	}
	return r.data2[i-len(r.data1)]
}

// ReadUint8 reads and consumes one byte.
func (r *Reader) ReadUint8() (uint8, error) {
	if r.BytesLeft() < 1 {
		return 0, ErrUnderflow
	}
	b := r.at(r.pos)
	r.pos++
	return b, nil
}

// PeekUint8 reads the next byte without consuming it.
func (r *Reader) PeekUint8() (uint8, error) {
	if r.BytesLeft() < 1 {
		return 0, ErrUnderflow
	}
	return r.at(r.pos), nil
}

// ReadUint16BE reads and consumes a big-endian 16-bit value.
func (r *Reader) ReadUint16BE() (uint16, error) {
	if r.BytesLeft() < 2 {
		return 0, ErrUnderflow
	}
	buf := [2]byte{r.at(r.pos), r.at(r.pos + 1)}
	r.pos += 2
	return utils.BytesToUint16(buf[:]), nil
}

// ReadBytes reads and consumes n bytes, copied into a fresh slice so
// callers never hold a reference that straddles the two windows.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if r.BytesLeft() < n {
		return nil, ErrUnderflow
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = r.at(r.pos + i)
	}
	r.pos += n
	return out, nil
}

// Skip advances the read position by n bytes.
func (r *Reader) Skip(n int) error {
	if r.BytesLeft() < n {
		return ErrUnderflow
	}
	r.pos += n
	return nil
}

// Sub returns a bounded reader covering the next length bytes of the
// window, without advancing this reader. Callers that want to also
// advance past the sub-window do so explicitly via Skip, mirroring
// dvbsubdecoder's Parser.cpp which builds a segment-scoped reader and
// then separately skips the outer reader past the segment.
func (r *Reader) Sub(length int) (*Reader, error) {
	if r.BytesLeft() < length {
		return nil, ErrUnderflow
	}
	start := r.pos
	end := start + length
	switch {
	case end <= len(r.data1):
		return NewReader(r.data1[start:end], nil), nil
	case start >= len(r.data1):
		s := start - len(r.data1)
		e := end - len(r.data1)
		return NewReader(r.data2[s:e], nil), nil
	default:
		return NewReader(r.data1[start:], r.data2[:end-len(r.data1)]), nil
	}
}
