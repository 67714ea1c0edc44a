package segment

import (
	"github.com/bugVanisher/dvbsub/dvbdb"
	"github.com/bugVanisher/dvbsub/internal/bitio"
)

// parseEDS implements End of Display Set Segment handling, ported from
// ParserEDS.cpp: promote the parsed Display to current, reset the
// parsed Display for the next epoch, and finish the page composition.
// The presenter rebuilds its RenderingState from this committed Page
// and Display on the next Draw; nothing here touches rendering state
// directly.
func parseEDS(db *dvbdb.Database, _ *bitio.Reader) error {
	parsed := db.ParsedDisplay()
	db.CurrentDisplay().Set(parsed.Version(), parsed.DisplayBounds(), parsed.WindowBounds())
	parsed.Reset()

	if db.Page().State() != dvbdb.PageParsing {
		// No composition in progress (e.g. its PCS was skipped or
		// dropped): there is no page to finish.
		return nil
	}
	db.Page().FinishParsing()
	db.FinishPage()
	return nil
}
