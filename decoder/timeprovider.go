package decoder

import "github.com/bugVanisher/dvbsub/internal/dvbtype"

// TimeProvider supplies the current System Time Clock value, projected
// to the same 32-bit LOW_32 space PES PTS values are compared in.
// Mirrors dvbsubdecoder's TimeProvider interface.
type TimeProvider interface {
	GetStc() dvbtype.StcTime
}
