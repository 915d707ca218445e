package handlers

import (
	"net/http"
	"strings"

	"github.com/SscSPs/posting_spine/internal/core/domain"
	portssvc "github.com/SscSPs/posting_spine/internal/core/ports/services"
	"github.com/SscSPs/posting_spine/internal/dto"
	"github.com/gin-gonic/gin"
)

// eventHandler serves the economic event log and event reversals.
type eventHandler struct {
	eventService    portssvc.EventReaderSvc
	reversalService portssvc.ReversalSvcFacade
}

// RegisterEventRoutes registers event routes under a tenant group.
func RegisterEventRoutes(rg *gin.RouterGroup, eventService portssvc.EventReaderSvc, reversalService portssvc.ReversalSvcFacade) {
	h := &eventHandler{eventService: eventService, reversalService: reversalService}

	events := rg.Group("/events")
	{
		events.GET("", h.listEvents)
		events.GET("/:event_id", h.getEvent)
		events.GET("/:event_id/chain", h.getReversalChain)
		events.GET("/:event_id/reversal-eligibility", h.getReversalEligibility)
		events.POST("/:event_id/reverse", h.reverseEvent)
	}
}

// listEvents godoc
// @Summary List economic events
// @Description Pages through the tenant's event log, newest first
// @Tags events
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   eventType query []string false "Event types to include" collectionFormat(multi)
// @Param   from query string false "First event date (YYYY-MM-DD)"
// @Param   to query string false "Last event date (YYYY-MM-DD)"
// @Param   limit query int false "Page size" default(50)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListEventsResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list events"
// @Failure 403 {object} ErrorResponse "Tenant not granted by the token"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/events [get]
func (h *eventHandler) listEvents(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	dates, err := dateRangeFromQuery(c)
	if err != nil {
		respondError(c, scope.logger, err, "Invalid date range")
		return
	}
	limit, next, err := pageFromQuery(c)
	if err != nil {
		respondError(c, scope.logger, err, "Invalid page parameters")
		return
	}
	filter := domain.EventFilter{Dates: dates, Limit: limit, NextToken: next}
	for _, raw := range c.QueryArray("eventType") {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				filter.EventTypes = append(filter.EventTypes, domain.EventType(t))
			}
		}
	}

	events, nextToken, err := h.eventService.GetEventsByTenant(c.Request.Context(), scope.tenantID, filter)
	if err != nil {
		respondError(c, scope.logger, err, "Failed to list events")
		return
	}
	c.JSON(http.StatusOK, dto.ListEventsResponse{Events: dto.ToEventResponses(events), NextToken: nextToken})
}

// getEvent godoc
// @Summary Get an economic event
// @Tags events
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   event_id path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Tenant not granted by the token"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/events/{event_id} [get]
func (h *eventHandler) getEvent(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	event, err := h.eventService.GetEventByID(c.Request.Context(), scope.tenantID, c.Param("event_id"))
	if err != nil {
		respondError(c, scope.logger, err, "Failed to retrieve event")
		return
	}
	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// getReversalChain godoc
// @Summary Reversal chain of an event
// @Description The original event followed by its reversals, oldest first
// @Tags events
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   event_id path string true "Event ID"
// @Success 200 {object} dto.ReversalChainResponse
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Tenant not granted by the token"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/events/{event_id}/chain [get]
func (h *eventHandler) getReversalChain(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	chain, err := h.eventService.GetReversalChain(c.Request.Context(), scope.tenantID, c.Param("event_id"))
	if err != nil {
		respondError(c, scope.logger, err, "Failed to read reversal chain")
		return
	}
	c.JSON(http.StatusOK, dto.ReversalChainResponse{Chain: dto.ToEventResponses(chain)})
}

// getReversalEligibility godoc
// @Summary Whether an event may be reversed
// @Tags events
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   event_id path string true "Event ID"
// @Success 200 {object} domain.ReversalEligibility
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Tenant not granted by the token"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/events/{event_id}/reversal-eligibility [get]
func (h *eventHandler) getReversalEligibility(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	eligibility, err := h.reversalService.ValidateReversalEligibility(c.Request.Context(), scope.tenantID, c.Param("event_id"))
	if err != nil {
		respondError(c, scope.logger, err, "Failed to check reversal eligibility")
		return
	}
	c.JSON(http.StatusOK, eligibility)
}

// reverseEvent godoc
// @Summary Reverse an economic event
// @Description Records an offsetting event and batch. The document state is not changed.
// @Tags events
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   event_id path string true "Event ID"
// @Param   reversal body dto.ReverseRequest true "Reversal reason"
// @Success 201 {object} dto.ReversalResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 409 {object} ErrorResponse "Already reversed or a reversal itself"
// @Failure 500 {object} ErrorResponse "Failed to reverse event"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Tenant not granted by the token"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/events/{event_id}/reverse [post]
func (h *eventHandler) reverseEvent(c *gin.Context) {
	scope, ok := scopeFromRequest(c)
	if !ok {
		return
	}
	var req dto.ReverseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, scope.logger, err, "ReverseEvent request")
		return
	}
	input, err := req.ToEntryInput(scope.tenantID, c.Param("event_id"), scope.userID)
	if err != nil {
		respondError(c, scope.logger, err, "Invalid reversal request")
		return
	}

	result, err := h.reversalService.CreateReversalEntry(c.Request.Context(), input)
	if err != nil {
		respondError(c, scope.logger, err, "Failed to reverse event")
		return
	}
	c.JSON(http.StatusCreated, dto.ToReversalResponse(result))
}
