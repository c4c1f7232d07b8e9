package solver

import "github.com/oceanrelay/vesselplan/core/model"

// waitUntilOpen computes the additional dwell, in hours, needed before
// service can begin at arrival clock-time (mod 24) arrival, given station
// operating hours. Returns 0 if hours are absent or arrival already falls
// inside the window.
func waitUntilOpen(h model.OperatingHours, arrival float64) float64 {
	if !h.Set {
		return 0
	}
	tm := mod24(arrival)
	if h.InWindow(arrival) {
		return 0
	}
	if h.Open <= h.Close {
		// tm is in [Close, 24) or [0, Open) outside the window; either way
		// the next opening is at Open, possibly the following day.
		if tm < h.Open {
			return h.Open - tm
		}
		return 24 - tm + h.Open
	}
	// Wraparound window; not-in-window means tm is in [Close, Open).
	return h.Open - tm
}

// fitsBeforeClose reports whether a dwell of length dwellHours starting at
// clock-time (mod 24) start fits before the window's close, i.e. does not
// require the station to remain open past its configured hours. Absent
// operating hours always fit.
func fitsBeforeClose(h model.OperatingHours, start, dwellHours float64) bool {
	if !h.Set {
		return true
	}
	tm := mod24(start)
	if h.Open <= h.Close {
		return tm+dwellHours <= h.Close
	}
	windowLen := 24 - h.Open + h.Close
	var posStart float64
	if tm >= h.Open {
		posStart = tm - h.Open
	} else {
		posStart = tm + 24 - h.Open
	}
	return posStart+dwellHours <= windowLen
}

func mod24(t float64) float64 {
	m := t
	for m < 0 {
		m += 24
	}
	for m >= 24 {
		m -= 24
	}
	return m
}
