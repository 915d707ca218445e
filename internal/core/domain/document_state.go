package domain

// DocumentState is the lifecycle state of a business document.
type DocumentState string

const (
	StateDraft     DocumentState = "draft"
	StateSubmitted DocumentState = "submitted"
	StateApproved  DocumentState = "approved"
	StatePosted    DocumentState = "posted"
	StateReversed  DocumentState = "reversed"
	StateVoided    DocumentState = "voided"
)

// documentTransitions is the complete lifecycle table. Reversed and voided are terminal.
var documentTransitions = map[DocumentState][]DocumentState{
	StateDraft:     {StateSubmitted, StateVoided},
	StateSubmitted: {StateApproved, StateDraft, StateVoided},
	StateApproved:  {StatePosted, StateSubmitted, StateVoided},
	StatePosted:    {StateReversed},
	StateReversed:  {},
	StateVoided:    {},
}

// IsValid reports whether s is one of the lifecycle states.
func (s DocumentState) IsValid() bool {
	_, ok := documentTransitions[s]
	return ok
}

// IsTerminal reports whether no transition leaves s.
func (s DocumentState) IsTerminal() bool {
	return s.IsValid() && len(documentTransitions[s]) == 0
}

// CanTransitionTo reports whether the table allows moving from current to target.
// Unknown states never transition.
func CanTransitionTo(current, target DocumentState) bool {
	for _, allowed := range documentTransitions[current] {
		if allowed == target {
			return true
		}
	}
	return false
}

// AllowedTransitions returns the states reachable from s in one step.
// The returned slice is a copy and is empty for terminal or unknown states.
func AllowedTransitions(s DocumentState) []DocumentState {
	allowed := documentTransitions[s]
	out := make([]DocumentState, len(allowed))
	copy(out, allowed)
	return out
}
