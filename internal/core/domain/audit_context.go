package domain

import (
	"strings"
	"time"
)

// AuditContext is the normalized 6W1H record attached to every economic event.
type AuditContext struct {
	Who   AuditWho   `json:"who"`
	What  AuditWhat  `json:"what"`
	When  AuditWhen  `json:"when"`
	Where AuditWhere `json:"where"`
	Why   AuditWhy   `json:"why"`
	Which AuditWhich `json:"which"`
	How   AuditHow   `json:"how"`
}

type AuditWho struct {
	ActorID   string `json:"actorID"`
	ActorRole string `json:"actorRole,omitempty"`
	ActorName string `json:"actorName,omitempty"`
}

type AuditWhat struct {
	Action       string `json:"action"`
	Description  string `json:"description,omitempty"`
	DocumentType string `json:"documentType,omitempty"`
}

type AuditWhen struct {
	Timestamp time.Time `json:"timestamp"`
	Timezone  string    `json:"timezone,omitempty"`
}

type AuditWhere struct {
	System    string `json:"system,omitempty"`
	Endpoint  string `json:"endpoint,omitempty"`
	IPAddress string `json:"ipAddress,omitempty"`
}

type AuditWhy struct {
	Reason    string `json:"reason,omitempty"`
	Reference string `json:"reference,omitempty"`
}

type AuditWhich struct {
	TenantID     string `json:"tenantID"`
	ResourceType string `json:"resourceType,omitempty"`
	ResourceID   string `json:"resourceID,omitempty"`
}

type AuditHow struct {
	Method         string `json:"method,omitempty"`
	ValidationMode string `json:"validationMode,omitempty"`
}

// WhereInput is either a free-text location (WhereText) or a structured AuditWhere.
type WhereInput interface {
	normalizeWhere() AuditWhere
}

// WhyInput is either a free-text reason (WhyText) or a structured AuditWhy.
type WhyInput interface {
	normalizeWhy() AuditWhy
}

// HowInput is either a free-text method (HowText) or a structured AuditHow.
type HowInput interface {
	normalizeHow() AuditHow
}

type WhereText string

type WhyText string

type HowText string

func (w WhereText) normalizeWhere() AuditWhere { return AuditWhere{System: strings.TrimSpace(string(w))} }
func (w AuditWhere) normalizeWhere() AuditWhere { return w }

func (w WhyText) normalizeWhy() AuditWhy { return AuditWhy{Reason: strings.TrimSpace(string(w))} }
func (w AuditWhy) normalizeWhy() AuditWhy { return w }

func (h HowText) normalizeHow() AuditHow { return AuditHow{Method: strings.TrimSpace(string(h))} }
func (h AuditHow) normalizeHow() AuditHow { return h }

// AuditContextInput is the caller-supplied audit context before normalization.
// Optional parts are filled in by Normalize.
type AuditContextInput struct {
	Who   AuditWho
	What  AuditWhat
	When  *AuditWhen
	Where WhereInput
	Why   WhyInput
	Which *AuditWhich
	How   HowInput
}

// AuditDefaults supplies the values used for parts the caller left out.
// ActorID is the authenticated user and always replaces a caller-supplied actor.
type AuditDefaults struct {
	Now          time.Time
	ActorID      string
	Action       string
	DocumentType string
	Which        AuditWhich
}

// Normalize converts the variant input into a single canonical AuditContext.
func (in AuditContextInput) Normalize(d AuditDefaults) AuditContext {
	out := AuditContext{
		Who:  in.Who,
		What: in.What,
	}
	if d.ActorID != "" {
		out.Who.ActorID = d.ActorID
	}
	if out.What.Action == "" {
		out.What.Action = d.Action
	}
	if out.What.DocumentType == "" {
		out.What.DocumentType = d.DocumentType
	}

	if in.When != nil && !in.When.Timestamp.IsZero() {
		out.When = *in.When
	} else {
		out.When = AuditWhen{Timestamp: d.Now.UTC(), Timezone: "UTC"}
	}
	if out.When.Timezone == "" {
		out.When.Timezone = "UTC"
	}

	if in.Where != nil {
		out.Where = in.Where.normalizeWhere()
	}
	if in.Why != nil {
		out.Why = in.Why.normalizeWhy()
	}
	if in.How != nil {
		out.How = in.How.normalizeHow()
	}

	out.Which = d.Which
	if in.Which != nil {
		if in.Which.ResourceType != "" {
			out.Which.ResourceType = in.Which.ResourceType
		}
		if in.Which.ResourceID != "" {
			out.Which.ResourceID = in.Which.ResourceID
		}
	}
	return out
}
