package models

// Window is a named trailing lookback over a price series.
type Window string

const (
	Window7d   Window = "7d"
	Window30d  Window = "30d"
	Window90d  Window = "90d"
	Window180d Window = "180d"
	Window365d Window = "365d"
)

// Days returns the window length in days (0 for an unknown label).
func (w Window) Days() int {
	switch w {
	case Window7d:
		return 7
	case Window30d:
		return 30
	case Window90d:
		return 90
	case Window180d:
		return 180
	case Window365d:
		return 365
	default:
		return 0
	}
}

// AllWindows lists every window the engine computes. The 30d and 180d
// windows are internal: they only contribute to the peak deviation search
// and never surface on a Signal.
var AllWindows = []Window{Window7d, Window30d, Window90d, Window180d, Window365d}

// ExposedWindows are the three summaries surfaced on a Signal.
var ExposedWindows = []Window{Window7d, Window90d, Window365d}
