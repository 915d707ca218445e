package domain

// ReversalStatus summarises where a document sits in a reversal relationship.
type ReversalStatus string

const (
	NotReversed ReversalStatus = "not_reversed"
	Reversed    ReversalStatus = "reversed"
	IsReversal  ReversalStatus = "is_reversal"
)

// DocumentReversalStatus is the reversal view of a single document.
type DocumentReversalStatus struct {
	DocumentID      string         `json:"documentID"`
	Status          ReversalStatus `json:"status"`
	ReversalEventID *string        `json:"reversalEventID,omitempty"`
	ReversedFromID  *string        `json:"reversedFromID,omitempty"`
}

// ReversalEligibility answers whether an event may be reversed and, if not, why.
type ReversalEligibility struct {
	IsEligible bool   `json:"isEligible"`
	Reason     string `json:"reason,omitempty"`
}

// Eligibility reasons.
const (
	ReasonEventNotFound     = "event not found"
	ReasonReversalOfReverse = "cannot reverse a reversal"
	ReasonAlreadyReversed   = "already reversed"
)

// ReversalResult is returned by both reversal write paths.
type ReversalResult struct {
	Event            EconomicEvent   `json:"event"`
	Postings         []LedgerPosting `json:"postings"`
	BatchID          string          `json:"batchID"`
	OriginalEvent    EconomicEvent   `json:"originalEvent"`
	OriginalPostings []LedgerPosting `json:"originalPostings"`
	Document         *Document       `json:"document,omitempty"`
	IsBalanced       bool            `json:"isBalanced"`
}

// PostDocumentResult is returned by the posting spine.
type PostDocumentResult struct {
	Document   Document        `json:"document"`
	Event      EconomicEvent   `json:"event"`
	Postings   []LedgerPosting `json:"postings"`
	BatchID    string          `json:"batchID"`
	IsBalanced bool            `json:"isBalanced"`
}
