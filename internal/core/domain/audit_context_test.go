package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/posting_spine/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestAuditContextInput_Normalize(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.FixedZone("CET", 3600))
	defaults := domain.AuditDefaults{
		Now:          now,
		ActorID:      "user-1",
		Action:       "post_document",
		DocumentType: "invoice",
		Which:        domain.AuditWhich{TenantID: "tenant-1", ResourceType: "document", ResourceID: "doc-1"},
	}

	t.Run("text variants", func(t *testing.T) {
		in := domain.AuditContextInput{
			Where: domain.WhereText(" billing-ui "),
			Why:   domain.WhyText("month end"),
			How:   domain.HowText("manual"),
		}
		got := in.Normalize(defaults)

		assert.Equal(t, "billing-ui", got.Where.System)
		assert.Equal(t, "month end", got.Why.Reason)
		assert.Equal(t, "manual", got.How.Method)
		assert.Equal(t, "user-1", got.Who.ActorID)
		assert.Equal(t, "post_document", got.What.Action)
		assert.Equal(t, "invoice", got.What.DocumentType)
		assert.True(t, now.Equal(got.When.Timestamp))
		assert.Equal(t, time.UTC, got.When.Timestamp.Location())
		assert.Equal(t, "UTC", got.When.Timezone)
		assert.Equal(t, defaults.Which, got.Which)
	})

	t.Run("structured variants", func(t *testing.T) {
		when := domain.AuditWhen{Timestamp: now.Add(-time.Hour), Timezone: "Europe/Berlin"}
		in := domain.AuditContextInput{
			Who:   domain.AuditWho{ActorID: "approver", ActorRole: "controller"},
			When:  &when,
			Where: domain.AuditWhere{System: "erp", Endpoint: "/post", IPAddress: "10.0.0.1"},
			Why:   domain.AuditWhy{Reason: "approved", Reference: "PO-7"},
			How:   domain.AuditHow{Method: "api", ValidationMode: "strict"},
			Which: &domain.AuditWhich{TenantID: "other-tenant", ResourceID: "override"},
		}
		got := in.Normalize(defaults)

		// the actor is always the authenticated user; role and name are kept
		assert.Equal(t, "user-1", got.Who.ActorID)
		assert.Equal(t, "controller", got.Who.ActorRole)
		assert.Equal(t, when, got.When)
		assert.Equal(t, "10.0.0.1", got.Where.IPAddress)
		assert.Equal(t, "PO-7", got.Why.Reference)
		assert.Equal(t, "strict", got.How.ValidationMode)
		// tenant always comes from the caller's scope
		assert.Equal(t, "tenant-1", got.Which.TenantID)
		assert.Equal(t, "override", got.Which.ResourceID)
		assert.Equal(t, "document", got.Which.ResourceType)
	})

	t.Run("missing variants stay empty", func(t *testing.T) {
		got := domain.AuditContextInput{}.Normalize(defaults)
		assert.Equal(t, domain.AuditWhere{}, got.Where)
		assert.Equal(t, domain.AuditWhy{}, got.Why)
		assert.Equal(t, domain.AuditHow{}, got.How)
	})
}
