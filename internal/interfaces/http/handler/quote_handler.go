// Package handler contains the HTTP handlers for the pricing API.
// Handlers are thin: they bind the request DTO, validate it at the
// boundary, delegate to the application service, and render the
// standard response envelope. No pricing logic lives here.
package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/WillieIlus/printy/internal/application/dto"
	appservice "github.com/WillieIlus/printy/internal/application/service"
	"github.com/WillieIlus/printy/internal/domain/entity"
)

// QuoteHandler serves quote pricing endpoints.
type QuoteHandler struct {
	quotes *appservice.QuoteService
}

// NewQuoteHandler creates a QuoteHandler.
//
// Parameters:
//   - quotes: the application quote service
//
// Returns:
//   - *QuoteHandler: the configured handler
func NewQuoteHandler(quotes *appservice.QuoteService) *QuoteHandler {
	return &QuoteHandler{quotes: quotes}
}

// Routes mounts the quote endpoints on a fresh sub-router.
//
// Returns:
//   - chi.Router: the quote router, ready to mount
func (h *QuoteHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/deliverable", h.PriceDeliverable)
	r.Post("/order", h.PriceOrder)
	return r
}

// PriceDeliverable prices a single deliverable.
//
// POST /v1/quotes/deliverable
func (h *QuoteHandler) PriceDeliverable(w http.ResponseWriter, r *http.Request) {
	var req dto.DeliverableRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, dto.NewErrorResponse[entity.CostBreakdown]("INVALID_JSON", "Request body is not valid JSON"))
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, dto.NewValidationErrorResponse[entity.CostBreakdown](errs))
		return
	}

	breakdown := h.quotes.PriceDeliverable(r.Context(), req.ToJobSpec())

	render.Status(r, http.StatusOK)
	render.JSON(w, r, dto.NewSuccessResponse(breakdown))
}

// PriceOrder prices a full order of deliverables.
//
// POST /v1/quotes/order
func (h *QuoteHandler) PriceOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.OrderQuoteRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, dto.NewErrorResponse[entity.OrderCostBreakdown]("INVALID_JSON", "Request body is not valid JSON"))
		return
	}

	if len(req.Deliverables) == 0 {
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, dto.NewValidationErrorResponse[entity.OrderCostBreakdown]([]dto.ValidationError{
			{Field: "deliverables", Message: "must contain at least one deliverable"},
		}))
		return
	}

	// Validate every deliverable before pricing any of them, so a bad
	// entry in the middle of an order fails the whole request cleanly.
	var errs []dto.ValidationError
	for i, d := range req.Deliverables {
		for _, e := range d.Validate() {
			e.Field = "deliverables[" + strconv.Itoa(i) + "]." + e.Field
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, dto.NewValidationErrorResponse[entity.OrderCostBreakdown](errs))
		return
	}

	jobs := make([]entity.JobSpec, len(req.Deliverables))
	for i, d := range req.Deliverables {
		jobs[i] = d.ToJobSpec()
	}

	order := h.quotes.PriceOrder(r.Context(), jobs)

	render.Status(r, http.StatusOK)
	render.JSON(w, r, dto.NewSuccessResponse(order))
}
