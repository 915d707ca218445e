package dto

import (
	"bytes"
	"encoding/json"

	"github.com/SscSPs/posting_spine/internal/core/domain"
)

// AuditWhereField holds the "where" part of an audit context, sent either as a
// plain string or as an object.
type AuditWhereField struct {
	Value domain.WhereInput
}

func (f *AuditWhereField) UnmarshalJSON(data []byte) error {
	text, obj, err := textOrObject[domain.AuditWhere](data)
	if err != nil {
		return err
	}
	if obj != nil {
		f.Value = *obj
	} else if text != nil {
		f.Value = domain.WhereText(*text)
	}
	return nil
}

// AuditWhyField holds the "why" part of an audit context.
type AuditWhyField struct {
	Value domain.WhyInput
}

func (f *AuditWhyField) UnmarshalJSON(data []byte) error {
	text, obj, err := textOrObject[domain.AuditWhy](data)
	if err != nil {
		return err
	}
	if obj != nil {
		f.Value = *obj
	} else if text != nil {
		f.Value = domain.WhyText(*text)
	}
	return nil
}

// AuditHowField holds the "how" part of an audit context.
type AuditHowField struct {
	Value domain.HowInput
}

func (f *AuditHowField) UnmarshalJSON(data []byte) error {
	text, obj, err := textOrObject[domain.AuditHow](data)
	if err != nil {
		return err
	}
	if obj != nil {
		f.Value = *obj
	} else if text != nil {
		f.Value = domain.HowText(*text)
	}
	return nil
}

func textOrObject[T any](data []byte) (*string, *T, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil, nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, nil, err
		}
		return &s, nil, nil
	}
	var obj T
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, nil, err
	}
	return nil, &obj, nil
}

// AuditContextRequest is the caller-supplied 6W1H audit context. Who and what are
// objects; where, why and how may each be a string or an object.
type AuditContextRequest struct {
	Who   *domain.AuditWho   `json:"who"`
	What  *domain.AuditWhat  `json:"what"`
	When  *domain.AuditWhen  `json:"when"`
	Where *AuditWhereField   `json:"where" swaggertype:"object"`
	Why   *AuditWhyField     `json:"why" swaggertype:"object"`
	Which *domain.AuditWhich `json:"which"`
	How   *AuditHowField     `json:"how" swaggertype:"object"`
}

// ToDomain converts the request into the un-normalized domain input. A nil request
// yields an empty input.
func (r *AuditContextRequest) ToDomain() domain.AuditContextInput {
	var in domain.AuditContextInput
	if r == nil {
		return in
	}
	if r.Who != nil {
		in.Who = *r.Who
	}
	if r.What != nil {
		in.What = *r.What
	}
	in.When = r.When
	in.Which = r.Which
	if r.Where != nil {
		in.Where = r.Where.Value
	}
	if r.Why != nil {
		in.Why = r.Why.Value
	}
	if r.How != nil {
		in.How = r.How.Value
	}
	return in
}
