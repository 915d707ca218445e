package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SscSPs/posting_spine/internal/core/domain"
	"github.com/SscSPs/posting_spine/internal/core/services"
	"github.com/SscSPs/posting_spine/internal/dto"
	"github.com/SscSPs/posting_spine/internal/handlers"
	"github.com/SscSPs/posting_spine/internal/middleware"
	"github.com/SscSPs/posting_spine/internal/platform/config"
	"github.com/SscSPs/posting_spine/internal/repositories/memory"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// SpineHandlerTestSuite drives the full HTTP surface over the in-memory repositories.
type SpineHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	tenantID string
	token    string

	receivableID string
	revenueID    string
}

func (s *SpineHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	repos := memory.NewRepositoryProvider(memory.NewStore())
	container := services.NewServiceContainer(*repos)

	s.router = gin.New()
	handlers.RegisterRoutes(s.router, &config.Config{JWTSecret: testJWTSecret, IsProduction: true}, container, nil)
	s.tenantID = uuid.NewString()
	s.token = generateTestToken(s.T(), "clerk-1", s.tenantID)

	s.receivableID = s.createAccount("1100", "Accounts Receivable", domain.Asset)
	s.revenueID = s.createAccount("4000", "Revenue", domain.Revenue)
}

func (s *SpineHandlerTestSuite) request(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	if strings.HasPrefix(path, "/") && !strings.HasPrefix(path, "/api") && !strings.HasPrefix(path, "/health") {
		path = "/api/v1/tenants/" + s.tenantID + path
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *SpineHandlerTestSuite) decode(w *httptest.ResponseRecorder, out any) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func (s *SpineHandlerTestSuite) createAccount(code, name string, accountType domain.AccountType) string {
	w := s.request(http.MethodPost, "/accounts", dto.CreateAccountRequest{Code: code, Name: name, AccountType: accountType, CurrencyCode: "USD"})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var res dto.AccountResponse
	s.decode(w, &res)
	return res.AccountID
}

func (s *SpineHandlerTestSuite) approvedInvoice() string {
	w := s.request(http.MethodPost, "/documents", dto.CreateDocumentRequest{DocumentType: domain.DocumentInvoice})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var doc dto.DocumentResponse
	s.decode(w, &doc)
	s.Equal(domain.StateDraft, doc.State)
	s.Equal([]domain.DocumentState{domain.StateSubmitted, domain.StateVoided}, doc.AllowedTransitions)

	for _, target := range []domain.DocumentState{domain.StateSubmitted, domain.StateApproved} {
		w = s.request(http.MethodPost, "/documents/"+doc.DocumentID+"/transition", dto.TransitionDocumentRequest{TargetState: target})
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	}
	return doc.DocumentID
}

func (s *SpineHandlerTestSuite) invoiceBody(debit, credit string) dto.PostDocumentRequest {
	return dto.PostDocumentRequest{
		EventType:    domain.EventRevenue,
		Description:  "Invoice INV-1",
		PostingDate:  "2024-03-05",
		CurrencyCode: "USD",
		Lines: []dto.PostingLineRequest{
			{AccountID: s.receivableID, Direction: domain.Debit, Amount: debit},
			{AccountID: s.revenueID, Direction: domain.Credit, Amount: credit},
		},
	}
}

func (s *SpineHandlerTestSuite) TestHealthIsPublic() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusOK, w.Code)
}

func (s *SpineHandlerTestSuite) TestOtherTenantsBooksAreForbidden() {
	docID := s.approvedInvoice()
	foreign := uuid.NewString()

	s.token = generateTestToken(s.T(), "clerk-2", foreign)
	w := s.request(http.MethodGet, "/accounts", nil)
	s.Equal(http.StatusForbidden, w.Code, w.Body.String())
	w = s.request(http.MethodPost, "/documents/"+docID+"/post", s.invoiceBody("100.00", "100.00"))
	s.Equal(http.StatusForbidden, w.Code, w.Body.String())

	s.token = generateTestToken(s.T(), "clerk-2")
	w = s.request(http.MethodGet, "/accounts", nil)
	s.Equal(http.StatusForbidden, w.Code)

	s.token = generateTestToken(s.T(), "controller", middleware.AllTenants)
	w = s.request(http.MethodGet, "/accounts", nil)
	s.Equal(http.StatusOK, w.Code, w.Body.String())
	w = s.request(http.MethodGet, "/documents/"+docID, nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var doc dto.DocumentResponse
	s.decode(w, &doc)
	s.Equal(domain.StateApproved, doc.State)
}

func (s *SpineHandlerTestSuite) TestPostAndReverseDocument() {
	docID := s.approvedInvoice()

	w := s.request(http.MethodPost, "/documents/"+docID+"/transition", dto.TransitionDocumentRequest{TargetState: domain.StatePosted})
	s.Equal(http.StatusConflict, w.Code, "posting only happens through the post route")

	w = s.request(http.MethodPost, "/documents/"+docID+"/post", s.invoiceBody("100.00", "99.99"))
	s.Require().Equal(http.StatusUnprocessableEntity, w.Code, w.Body.String())
	var unbalanced handlers.ErrorResponse
	s.decode(w, &unbalanced)
	s.Equal("0.0100", unbalanced.Details["difference"])
	s.Equal("100.0000", unbalanced.Details["debits"])

	w = s.request(http.MethodPost, "/documents/"+docID+"/post", s.invoiceBody("100.00", "100"))
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var posted dto.PostDocumentResponse
	s.decode(w, &posted)
	s.Equal(domain.StatePosted, posted.Document.State)
	s.True(posted.IsBalanced)
	s.Require().NotNil(posted.Event.Amount)
	s.Equal("100.0000", *posted.Event.Amount)
	s.Require().Len(posted.Postings, 2)
	s.Equal("100.0000", posted.Postings[0].Amount)
	s.Equal("POST /api/v1/tenants/:tenant_id/documents/:document_id/post", posted.Event.AuditContext.Where.Endpoint)

	w = s.request(http.MethodPost, "/documents/"+docID+"/post", s.invoiceBody("100", "100"))
	s.Equal(http.StatusConflict, w.Code)

	w = s.request(http.MethodGet, "/batches/"+posted.BatchID+"/validate", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var balance dto.BatchBalanceResponse
	s.decode(w, &balance)
	s.True(balance.IsBalanced)
	s.Equal("0.0000", balance.Difference)

	w = s.request(http.MethodGet, "/events/"+posted.Event.EventID+"/reversal-eligibility", nil)
	var eligibility domain.ReversalEligibility
	s.decode(w, &eligibility)
	s.True(eligibility.IsEligible)

	w = s.request(http.MethodPost, "/documents/"+docID+"/reverse", map[string]string{"reversalDate": "2024-03-09"})
	s.Equal(http.StatusBadRequest, w.Code, "a reason is required")

	w = s.request(http.MethodPost, "/documents/"+docID+"/reverse", dto.ReverseRequest{Reason: "duplicate entry", ReversalDate: "2024-03-09"})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var reversal dto.ReversalResponse
	s.decode(w, &reversal)
	s.Require().NotNil(reversal.Document)
	s.Equal(domain.StateReversed, reversal.Document.State)
	s.Equal(posted.Event.EventID, reversal.OriginalEventID)
	s.True(strings.HasPrefix(reversal.Event.Description, "REVERSAL: "))
	s.Equal(domain.Credit, reversal.Postings[0].Direction)

	w = s.request(http.MethodPost, "/events/"+posted.Event.EventID+"/reverse", dto.ReverseRequest{Reason: "again"})
	s.Equal(http.StatusConflict, w.Code)

	w = s.request(http.MethodGet, "/documents/"+docID+"/reversal", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var status dto.ReversalStatusResponse
	s.decode(w, &status)
	s.Equal(domain.Reversed, status.Status)
	s.Len(status.Chain, 2)

	w = s.request(http.MethodGet, "/documents/"+docID+"/postings", nil)
	var postings dto.ListPostingsResponse
	s.decode(w, &postings)
	s.Len(postings.Postings, 4)

	w = s.request(http.MethodGet, "/reports/trial-balance?asOf=2024-03-31", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var tb dto.TrialBalanceResponse
	s.decode(w, &tb)
	s.True(tb.IsBalanced)
	s.Equal("200.0000", tb.TotalDebits)

	w = s.request(http.MethodGet, "/reports/verify-books?from=2024-03-01&to=2024-03-31", nil)
	var books dto.BooksVerificationResponse
	s.decode(w, &books)
	s.True(books.IsBalanced)
	s.Equal(2, books.BatchCount)
}

func (s *SpineHandlerTestSuite) TestPostDocument_RejectsBadInput() {
	docID := s.approvedInvoice()

	body := s.invoiceBody("100.00001", "100.00001")
	w := s.request(http.MethodPost, "/documents/"+docID+"/post", body)
	s.Equal(http.StatusBadRequest, w.Code, "amounts carry at most four fraction digits")

	body = s.invoiceBody("100", "100")
	body.Lines = nil
	w = s.request(http.MethodPost, "/documents/"+docID+"/post", body)
	s.Equal(http.StatusBadRequest, w.Code)

	body = s.invoiceBody("100", "100")
	body.Lines[1].AccountID = uuid.NewString()
	w = s.request(http.MethodPost, "/documents/"+docID+"/post", body)
	s.Equal(http.StatusNotFound, w.Code)

	w = s.request(http.MethodGet, "/documents/"+docID, nil)
	var doc dto.DocumentResponse
	s.decode(w, &doc)
	s.Equal(domain.StateApproved, doc.State, "failed posts leave the document untouched")
}

func (s *SpineHandlerTestSuite) TestEventsListing() {
	for i := 0; i < 3; i++ {
		docID := s.approvedInvoice()
		w := s.request(http.MethodPost, "/documents/"+docID+"/post", s.invoiceBody("10", "10"))
		s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	}

	w := s.request(http.MethodGet, "/events?limit=2", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var page dto.ListEventsResponse
	s.decode(w, &page)
	s.Len(page.Events, 2)
	s.Require().NotNil(page.NextToken)

	w = s.request(http.MethodGet, "/events?limit=2&nextToken="+*page.NextToken, nil)
	var rest dto.ListEventsResponse
	s.decode(w, &rest)
	s.Len(rest.Events, 1)
	s.Nil(rest.NextToken)

	w = s.request(http.MethodGet, "/events?eventType=expense", nil)
	var none dto.ListEventsResponse
	s.decode(w, &none)
	s.Empty(none.Events)

	w = s.request(http.MethodGet, "/events?eventType=bogus", nil)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.request(http.MethodGet, "/events?nextToken=not-a-token", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *SpineHandlerTestSuite) TestReconciliationRunsInlineWithoutQueue() {
	w := s.request(http.MethodPost, "/reconciliation/runs", dto.ReconciliationRunRequest{From: "2024-03-01"})
	s.Require().Equal(http.StatusAccepted, w.Code, w.Body.String())
	var run dto.ReconciliationRunResponse
	s.decode(w, &run)
	s.True(strings.HasPrefix(run.TaskID, "inline-"))

	w = s.request(http.MethodPost, "/reconciliation/runs", dto.ReconciliationRunRequest{From: "2024-04-01", To: "2024-03-01"})
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.request(http.MethodGet, "/reconciliation/latest", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *SpineHandlerTestSuite) TestDocumentStateTransitions() {
	w := s.request(http.MethodGet, "/api/v1/document-states/approved/transitions", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var res dto.AllowedTransitionsResponse
	s.decode(w, &res)
	s.Equal([]domain.DocumentState{domain.StatePosted, domain.StateSubmitted, domain.StateVoided}, res.AllowedTransitions)
	s.False(res.IsTerminal)

	w = s.request(http.MethodGet, "/api/v1/document-states/voided/transitions", nil)
	s.decode(w, &res)
	s.True(res.IsTerminal)
	s.Empty(res.AllowedTransitions)

	w = s.request(http.MethodGet, "/api/v1/document-states/archived/transitions", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func TestSpineHandlers(t *testing.T) {
	suite.Run(t, new(SpineHandlerTestSuite))
}
