package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/posting_spine/internal/core/domain"
	portssvc "github.com/SscSPs/posting_spine/internal/core/ports/services"
	"github.com/SscSPs/posting_spine/internal/dto"
	"github.com/gin-gonic/gin"
)

// documentHandler serves the document lifecycle, posting and reversal routes.
type documentHandler struct {
	documentService  portssvc.DocumentSvcFacade
	spineService     portssvc.PostingSpineSvc
	reversalService  portssvc.ReversalSvcFacade
	reportingService portssvc.ReportingService
}

// RegisterDocumentRoutes registers document routes under a tenant group.
func RegisterDocumentRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &documentHandler{
		documentService:  services.Document,
		spineService:     services.PostingSpine,
		reversalService:  services.Reversal,
		reportingService: services.Reporting,
	}

	documents := rg.Group("/documents")
	{
		documents.POST("", h.createDocument)
		documents.GET("/:document_id", h.getDocument)
		documents.POST("/:document_id/transition", h.transitionDocument)
		documents.POST("/:document_id/post", h.postDocument)
		documents.POST("/:document_id/reverse", h.reverseDocument)
		documents.GET("/:document_id/postings", h.getDocumentPostings)
		documents.GET("/:document_id/events", h.getDocumentEvents)
		documents.GET("/:document_id/reversal", h.getReversalStatus)
	}
}

// registerDocumentStateRoutes exposes the transition table. It needs no tenant.
func registerDocumentStateRoutes(rg *gin.RouterGroup, documentService portssvc.DocumentStateSvc) {
	rg.GET("/document-states/:state/transitions", func(c *gin.Context) {
		getAllowedTransitions(c, documentService)
	})
}

// createDocument godoc
// @Summary Create a draft document
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   document body dto.CreateDocumentRequest true "Document type"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create document"
// @Failure 403 {object} ErrorResponse "Tenant not granted by the token"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/documents [post]
func (h *documentHandler) createDocument(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	var req dto.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, scope.logger, err, "CreateDocument request")
		return
	}

	doc, err := h.documentService.CreateDocument(c.Request.Context(), portssvc.CreateDocumentInput{
		TenantID:     scope.tenantID,
		DocumentType: req.DocumentType,
		UserID:       scope.userID,
	})
	if err != nil {
		respondError(c, scope.logger, err, "Failed to create document")
		return
	}
	scope.logger.Info("Document created", slog.String("document_id", doc.DocumentID))
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(doc))
}

// getDocument godoc
// @Summary Get a document
// @Description Returns the document with the states it may move to next
// @Tags documents
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   document_id path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Document not found"
// @Failure 403 {object} ErrorResponse "Tenant not granted by the token"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/documents/{document_id} [get]
func (h *documentHandler) getDocument(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	doc, err := h.documentService.GetDocument(c.Request.Context(), scope.tenantID, c.Param("document_id"))
	if err != nil {
		respondError(c, scope.logger, err, "Failed to retrieve document")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// transitionDocument godoc
// @Summary Move a document to another state
// @Description Follows the lifecycle table. Posting and reversal have their own routes.
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   document_id path string true "Document ID"
// @Param   transition body dto.TransitionDocumentRequest true "Target state"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Document not found"
// @Failure 409 {object} ErrorResponse "Transition not allowed"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Tenant not granted by the token"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/documents/{document_id}/transition [post]
func (h *documentHandler) transitionDocument(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	var req dto.TransitionDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, scope.logger, err, "TransitionDocument request")
		return
	}
	if !req.TargetState.IsValid() {
		respondError(c, scope.logger, validationError("unknown document state "+string(req.TargetState)), "Invalid target state")
		return
	}

	doc, err := h.documentService.TransitionDocumentState(c.Request.Context(), scope.tenantID, c.Param("document_id"), req.TargetState, scope.userID)
	if err != nil {
		respondError(c, scope.logger, err, "Failed to transition document")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// postDocument godoc
// @Summary Post an approved document
// @Description Records one economic event and one balanced batch of postings and marks the document posted, atomically
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   document_id path string true "Document ID"
// @Param   posting body dto.PostDocumentRequest true "Event and posting lines"
// @Success 201 {object} dto.PostDocumentResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Document or account not found"
// @Failure 409 {object} ErrorResponse "Document is not approved"
// @Failure 422 {object} ErrorResponse "Postings are not balanced"
// @Failure 500 {object} ErrorResponse "Failed to post document"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Tenant not granted by the token"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/documents/{document_id}/post [post]
func (h *documentHandler) postDocument(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	var req dto.PostDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, scope.logger, err, "PostDocument request")
		return
	}
	input, err := req.ToInput(scope.tenantID, c.Param("document_id"), scope.userID)
	if err != nil {
		respondError(c, scope.logger, err, "Invalid posting request")
		return
	}
	input.AuditContext.Where = withEndpoint(c, input.AuditContext.Where)

	result, err := h.spineService.PostDocument(c.Request.Context(), input)
	if err != nil {
		respondError(c, scope.logger, err, "Failed to post document")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPostDocumentResponse(result))
}

// reverseDocument godoc
// @Summary Reverse a posted document
// @Description Records an offsetting event and batch and marks the document reversed
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   document_id path string true "Document ID"
// @Param   reversal body dto.ReverseRequest true "Reversal reason"
// @Success 201 {object} dto.ReversalResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Document not found"
// @Failure 409 {object} ErrorResponse "Document is not posted or already reversed"
// @Failure 500 {object} ErrorResponse "Failed to reverse document"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Tenant not granted by the token"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/documents/{document_id}/reverse [post]
func (h *documentHandler) reverseDocument(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	var req dto.ReverseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, scope.logger, err, "ReverseDocument request")
		return
	}
	input, err := req.ToDocumentInput(scope.tenantID, c.Param("document_id"), scope.userID)
	if err != nil {
		respondError(c, scope.logger, err, "Invalid reversal request")
		return
	}

	result, err := h.reversalService.CreateDocumentReversal(c.Request.Context(), input)
	if err != nil {
		respondError(c, scope.logger, err, "Failed to reverse document")
		return
	}
	c.JSON(http.StatusCreated, dto.ToReversalResponse(result))
}

// getDocumentPostings godoc
// @Summary List the postings of a document
// @Description Postings of every event of the document, including reversals
// @Tags documents
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   document_id path string true "Document ID"
// @Success 200 {object} dto.ListPostingsResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list postings"
// @Failure 403 {object} ErrorResponse "Tenant not granted by the token"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/documents/{document_id}/postings [get]
func (h *documentHandler) getDocumentPostings(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	postings, err := h.reportingService.GetPostingsByDocument(c.Request.Context(), scope.tenantID, c.Param("document_id"))
	if err != nil {
		respondError(c, scope.logger, err, "Failed to list postings")
		return
	}
	c.JSON(http.StatusOK, dto.ListPostingsResponse{Postings: dto.ToPostingResponses(postings)})
}

// DocumentEventsResponse is the event history of a document, oldest first.
type DocumentEventsResponse struct {
	Events []dto.EventResponse `json:"events"`
}

// getDocumentEvents godoc
// @Summary Event history of a document
// @Tags documents
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   document_id path string true "Document ID"
// @Success 200 {object} DocumentEventsResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list events"
// @Failure 403 {object} ErrorResponse "Tenant not granted by the token"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/documents/{document_id}/events [get]
func (h *documentHandler) getDocumentEvents(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	events, err := h.reportingService.GetEventHistory(c.Request.Context(), scope.tenantID, c.Param("document_id"))
	if err != nil {
		respondError(c, scope.logger, err, "Failed to list events")
		return
	}
	c.JSON(http.StatusOK, DocumentEventsResponse{Events: dto.ToEventResponses(events)})
}

// getReversalStatus godoc
// @Summary Reversal status of a document
// @Description Whether the document is reversed or is itself a reversal, with the event chain
// @Tags documents
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   document_id path string true "Document ID"
// @Success 200 {object} dto.ReversalStatusResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Document not found"
// @Failure 403 {object} ErrorResponse "Tenant not granted by the token"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/documents/{document_id}/reversal [get]
func (h *documentHandler) getReversalStatus(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	documentID := c.Param("document_id")
	status, err := h.reversalService.GetReversalStatus(c.Request.Context(), scope.tenantID, documentID)
	if err != nil {
		respondError(c, scope.logger, err, "Failed to read reversal status")
		return
	}
	chain, err := h.reversalService.GetDocumentReversalChain(c.Request.Context(), scope.tenantID, documentID)
	if err != nil {
		respondError(c, scope.logger, err, "Failed to read reversal chain")
		return
	}
	c.JSON(http.StatusOK, dto.ReversalStatusResponse{
		DocumentID:      status.DocumentID,
		Status:          status.Status,
		ReversalEventID: status.ReversalEventID,
		ReversedFromID:  status.ReversedFromID,
		Chain:           dto.ToEventResponses(chain),
	})
}

// getAllowedTransitions godoc
// @Summary Allowed transitions of a state
// @Tags documents
// @Produce  json
// @Param   state path string true "Document state"
// @Success 200 {object} dto.AllowedTransitionsResponse
// @Failure 400 {object} ErrorResponse "Unknown state"
// @Security BearerAuth
// @Router /document-states/{state}/transitions [get]
func getAllowedTransitions(c *gin.Context, documentService portssvc.DocumentStateSvc) {
	state := domain.DocumentState(c.Param("state"))
	if !state.IsValid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown document state " + string(state)})
		return
	}
	c.JSON(http.StatusOK, dto.AllowedTransitionsResponse{
		State:              state,
		AllowedTransitions: documentService.GetAllowedTransitions(state),
		IsTerminal:         state.IsTerminal(),
	})
}

// withEndpoint fills the audit location from the request when the caller sent none.
func withEndpoint(c *gin.Context, where domain.WhereInput) domain.WhereInput {
	if where != nil {
		return where
	}
	return domain.AuditWhere{
		System:    "posting-spine-api",
		Endpoint:  c.Request.Method + " " + c.FullPath(),
		IPAddress: c.ClientIP(),
	}
}
