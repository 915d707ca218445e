package domain

// EventFilter narrows a tenant-wide event listing.
type EventFilter struct {
	EventTypes []EventType
	Dates      DateRange
	Limit      int
	NextToken  *string
}

// Matches reports whether e passes the type and date filters.
func (f EventFilter) Matches(e EconomicEvent) bool {
	if len(f.EventTypes) > 0 {
		found := false
		for _, t := range f.EventTypes {
			if e.EventType == t {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return f.Dates.Contains(e.EventDate)
}

// PostingFilter narrows an account's posting listing.
type PostingFilter struct {
	Dates     DateRange
	Limit     int
	NextToken *string
}
