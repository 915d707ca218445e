package docs_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/SscSPs/posting_spine/cmd/docs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

type operation struct {
	Security  []map[string][]string `json:"security"`
	Responses map[string]any        `json:"responses"`
}

type openAPIDoc struct {
	Swagger     string                          `json:"swagger"`
	BasePath    string                          `json:"basePath"`
	Paths       map[string]map[string]operation `json:"paths"`
	Definitions map[string]json.RawMessage      `json:"definitions"`
}

func readDoc(t *testing.T) openAPIDoc {
	t.Helper()
	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)
	var doc openAPIDoc
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return doc
}

func TestDocDescribesEveryRoute(t *testing.T) {
	doc := readDoc(t)
	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "/api/v1", doc.BasePath)

	routes := map[string][]string{
		"/health":                                                     {"get"},
		"/document-states/{state}/transitions":                        {"get"},
		"/tenants/{tenant_id}/accounts":                               {"get", "post"},
		"/tenants/{tenant_id}/accounts/{account_id}":                  {"get"},
		"/tenants/{tenant_id}/accounts/{account_id}/ledger":           {"get"},
		"/tenants/{tenant_id}/accounts/{account_id}/postings":         {"get"},
		"/tenants/{tenant_id}/batches/{batch_id}/postings":            {"get"},
		"/tenants/{tenant_id}/batches/{batch_id}/validate":            {"get"},
		"/tenants/{tenant_id}/documents":                              {"post"},
		"/tenants/{tenant_id}/documents/{document_id}":                {"get"},
		"/tenants/{tenant_id}/documents/{document_id}/events":         {"get"},
		"/tenants/{tenant_id}/documents/{document_id}/post":           {"post"},
		"/tenants/{tenant_id}/documents/{document_id}/postings":       {"get"},
		"/tenants/{tenant_id}/documents/{document_id}/reversal":       {"get"},
		"/tenants/{tenant_id}/documents/{document_id}/reverse":        {"post"},
		"/tenants/{tenant_id}/documents/{document_id}/transition":     {"post"},
		"/tenants/{tenant_id}/events":                                 {"get"},
		"/tenants/{tenant_id}/events/{event_id}":                      {"get"},
		"/tenants/{tenant_id}/events/{event_id}/chain":                {"get"},
		"/tenants/{tenant_id}/events/{event_id}/reversal-eligibility": {"get"},
		"/tenants/{tenant_id}/events/{event_id}/reverse":              {"post"},
		"/tenants/{tenant_id}/reconciliation/latest":                  {"get"},
		"/tenants/{tenant_id}/reconciliation/runs":                    {"post"},
		"/tenants/{tenant_id}/reports/balance-sheet":                  {"get"},
		"/tenants/{tenant_id}/reports/income-statement":               {"get"},
		"/tenants/{tenant_id}/reports/trial-balance":                  {"get"},
		"/tenants/{tenant_id}/reports/verify-books":                   {"get"},
	}
	assert.Len(t, doc.Paths, len(routes))
	for path, methods := range routes {
		ops, ok := doc.Paths[path]
		if !assert.True(t, ok, path) {
			continue
		}
		for _, m := range methods {
			assert.Contains(t, ops, m, path)
		}
	}
}

func TestTenantRoutesDocumentAuth(t *testing.T) {
	doc := readDoc(t)
	for path, ops := range doc.Paths {
		if !strings.HasPrefix(path, "/tenants/") {
			continue
		}
		for method, op := range ops {
			assert.Equal(t, []map[string][]string{{"BearerAuth": {}}}, op.Security, method+" "+path)
			assert.Contains(t, op.Responses, "401", method+" "+path)
			assert.Contains(t, op.Responses, "403", method+" "+path)
		}
	}
}

func TestDefinitionsAreComplete(t *testing.T) {
	doc := readDoc(t)
	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)

	// Every referenced schema has a definition.
	for _, part := range strings.Split(raw, `"#/definitions/`)[1:] {
		name := part[:strings.Index(part, `"`)]
		assert.Contains(t, doc.Definitions, name)
	}
	for _, name := range []string{"dto.PostDocumentRequest", "dto.ReverseRequest", "dto.TrialBalanceResponse", "domain.EventType"} {
		assert.Contains(t, doc.Definitions, name)
	}
}
