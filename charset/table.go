// Package charset holds the static character-set tables the DVB
// subtitle standard references for basic/composite character-coded
// objects (ETSI EN 300 743 Annex, 8-bit single-byte G0/G1 sets). This
// decoder does not render character-coded objects (spec.md's
// pinned-interface Non-goal: only basic bitmap objects are decoded),
// so this table is reserved for a future character renderer rather
// than wired into segment parsing today.
package charset

// ID identifies one of the character sets a region or object can
// signal via its character_code_table field.
type ID uint8

// Character set identifiers, from ETSI EN 300 743 table 18.
const (
	Latin                ID = 0x00
	Latin4                  = 0x03
	Latin5                  = 0x04
	CyrillicLatin1          = 0x05
	CyrillicLatin2          = 0x06
	CyrillicLatin3          = 0x07
	Greek                   = 0x08
	Arabic                  = 0x09
	Hebrew                  = 0x0A
)

// Name returns a human-readable label for a character set id, or ""
// for an id this decoder doesn't recognize.
func Name(id ID) string {
	switch id {
	case Latin:
		return "Latin"
	case Latin4:
		return "Latin #4"
	case Latin5:
		return "Latin #5"
	case CyrillicLatin1:
		return "Cyrillic & Latin #1"
	case CyrillicLatin2:
		return "Cyrillic & Latin #2"
	case CyrillicLatin3:
		return "Cyrillic & Latin #3"
	case Greek:
		return "Greek & Latin"
	case Arabic:
		return "Arabic & Latin"
	case Hebrew:
		return "Hebrew & Latin"
	default:
		return ""
	}
}
