package segment

import "github.com/pkg/errors"

// Sentinel errors for malformed or unsupported segment content. All are
// "parse errors" in SPEC_FULL.md's ambient-error taxonomy: expected,
// recoverable by epoch reset, never a panic.
var (
	ErrInvalidSyncByte       = errors.New("segment: invalid sync byte")
	ErrInvalidDataIdentifier = errors.New("segment: invalid subtitling data identifier")
	ErrReservedPageState     = errors.New("segment: reserved page composition state")
	ErrTooManyRegions        = errors.New("segment: too many regions for capacity")
	ErrClutPoolExhausted     = errors.New("segment: CLUT pool exhausted")
	ErrPixmapArenaExhausted  = errors.New("segment: pixmap arena exhausted")
)

func wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}
