package domain_test

import (
	"testing"

	"github.com/SscSPs/posting_spine/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		current domain.DocumentState
		target  domain.DocumentState
		want    bool
	}{
		{"draft to submitted", domain.StateDraft, domain.StateSubmitted, true},
		{"draft to voided", domain.StateDraft, domain.StateVoided, true},
		{"draft to posted", domain.StateDraft, domain.StatePosted, false},
		{"submitted to approved", domain.StateSubmitted, domain.StateApproved, true},
		{"submitted back to draft", domain.StateSubmitted, domain.StateDraft, true},
		{"approved to posted", domain.StateApproved, domain.StatePosted, true},
		{"approved back to submitted", domain.StateApproved, domain.StateSubmitted, true},
		{"approved to draft", domain.StateApproved, domain.StateDraft, false},
		{"approved to voided", domain.StateApproved, domain.StateVoided, true},
		{"posted to reversed", domain.StatePosted, domain.StateReversed, true},
		{"posted to draft", domain.StatePosted, domain.StateDraft, false},
		{"posted to voided", domain.StatePosted, domain.StateVoided, false},
		{"reversed is terminal", domain.StateReversed, domain.StateDraft, false},
		{"voided is terminal", domain.StateVoided, domain.StateDraft, false},
		{"unknown source", domain.DocumentState("archived"), domain.StateDraft, false},
		{"self transition", domain.StateDraft, domain.StateDraft, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.CanTransitionTo(tt.current, tt.target))
		})
	}
}

func TestAllowedTransitions(t *testing.T) {
	assert.ElementsMatch(t,
		[]domain.DocumentState{domain.StatePosted, domain.StateSubmitted, domain.StateVoided},
		domain.AllowedTransitions(domain.StateApproved))
	assert.Empty(t, domain.AllowedTransitions(domain.StateReversed))
	assert.Empty(t, domain.AllowedTransitions(domain.DocumentState("bogus")))

	// mutating the result must not leak into the table
	got := domain.AllowedTransitions(domain.StatePosted)
	got[0] = domain.StateDraft
	assert.Equal(t, []domain.DocumentState{domain.StateReversed}, domain.AllowedTransitions(domain.StatePosted))
}

func TestAllowedTransitionsAgreeWithCanTransitionTo(t *testing.T) {
	states := []domain.DocumentState{
		domain.StateDraft, domain.StateSubmitted, domain.StateApproved,
		domain.StatePosted, domain.StateReversed, domain.StateVoided,
	}
	for _, from := range states {
		allowed := domain.AllowedTransitions(from)
		for _, to := range states {
			assert.Equal(t, contains(allowed, to), domain.CanTransitionTo(from, to),
				"from %s to %s", from, to)
		}
	}
}

func TestDocumentState_IsTerminal(t *testing.T) {
	assert.True(t, domain.StateReversed.IsTerminal())
	assert.True(t, domain.StateVoided.IsTerminal())
	assert.False(t, domain.StatePosted.IsTerminal())
	assert.False(t, domain.DocumentState("nope").IsTerminal())
}

func contains(states []domain.DocumentState, s domain.DocumentState) bool {
	for _, candidate := range states {
		if candidate == s {
			return true
		}
	}
	return false
}
