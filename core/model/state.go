package model

// Action identifies what happened at a station to arrive at a State.
type Action int

const (
	ActionIdle Action = iota
	ActionSwap
	ActionCharge
	ActionSwapCharge
)

func (a Action) String() string {
	switch a {
	case ActionIdle:
		return "idle"
	case ActionSwap:
		return "swap"
	case ActionCharge:
		return "charge"
	case ActionSwapCharge:
		return "swap+charge"
	default:
		return "unknown"
	}
}

// State identifies a point in the DP state space: the station reached, the
// discretized SoC level at arrival, and the linear (non-modulo) arrival
// clock time in hours: the scenario's departure hour plus the hours elapsed
// since departure, so it may exceed 24.
type State struct {
	StationIndex int
	SoCLevel     int
	ArrivalTime  float64
}
