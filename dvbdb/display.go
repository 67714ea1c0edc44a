package dvbdb

import "github.com/bugVanisher/dvbsub/internal/dvbtype"

// Default SD display resolution, used until a Display Definition
// Segment signals otherwise.
const (
	DefaultSDWidth  = 720
	DefaultSDHeight = 576
)

// Display holds the display and window bounds signaled by a Display
// Definition Segment (or the SD defaults if none has arrived yet).
type Display struct {
	version       uint8
	displayBounds dvbtype.Rectangle
	windowBounds  dvbtype.Rectangle
}

// Reset returns the display to the default SD bounds with an invalid
// version, so the next DDS (if any) always counts as a change.
func (d *Display) Reset() {
	d.version = InvalidVersion
	d.displayBounds = dvbtype.Rectangle{X1: 0, Y1: 0, X2: DefaultSDWidth, Y2: DefaultSDHeight}
	d.windowBounds = d.displayBounds
}

// Set records a new version, display bounds and window bounds.
func (d *Display) Set(version uint8, displayBounds, windowBounds dvbtype.Rectangle) {
	d.version = version
	d.displayBounds = displayBounds
	d.windowBounds = windowBounds
}

// Version returns the last DDS version applied, or InvalidVersion.
func (d *Display) Version() uint8 { return d.version }

// DisplayBounds returns the full display rectangle.
func (d *Display) DisplayBounds() dvbtype.Rectangle { return d.displayBounds }

// WindowBounds returns the subtitling window rectangle within the
// display.
func (d *Display) WindowBounds() dvbtype.Rectangle { return d.windowBounds }
