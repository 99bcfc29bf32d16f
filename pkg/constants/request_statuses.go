package constants

// --- REQUEST STATUSES (stored verbatim in the requests collection) ---
const (
	StatusNew        = "New"
	StatusInProgress = "In Progress"
	StatusRepaired   = "Repaired"
	StatusScrap      = "Scrap"
)

// transitionTable lists, per status, the statuses a request may move to next.
// A pair missing from the table is rejected, same-state pairs included: an
// attempt to set a status to its current value fails so callers cannot
// silently skip a stage.
var transitionTable = map[string][]string{
	StatusNew:        {StatusInProgress},
	StatusInProgress: {StatusRepaired, StatusScrap},
	StatusRepaired:   {},
	StatusScrap:      {},
}

// Terminal statuses have no outgoing edges.
var TerminalStatuses = []string{
	StatusRepaired,
	StatusScrap,
}

// AllStatuses in lifecycle order.
var AllStatuses = []string{
	StatusNew,
	StatusInProgress,
	StatusRepaired,
	StatusScrap,
}

// CanTransition reports whether the status edge from -> to is permitted.
// Unknown codes on either side are never permitted.
func CanTransition(from, to string) bool {
	for _, next := range transitionTable[from] {
		if next == to {
			return true
		}
	}
	return false
}

func IsTerminalStatus(code string) bool {
	for _, s := range TerminalStatuses {
		if s == code {
			return true
		}
	}
	return false
}

func IsValidStatus(code string) bool {
	_, ok := transitionTable[code]
	return ok
}
