package lifecycle

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/foodbridge/backend/internal/auth"
	"github.com/foodbridge/backend/internal/donation"
	"github.com/foodbridge/backend/internal/dto"
	"github.com/foodbridge/backend/internal/shared"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/:id/assign", h.Assign)
	g.POST("/:id/accept", h.Accept)
	g.POST("/:id/reject", h.Reject)
	g.POST("/:id/complete", h.Complete)
}

// mapError translates the service error taxonomy onto HTTP responses.
// Precondition and authorization failures surface as-is; exhausted-conflict
// failures are reported as retryable.
func (h *Handler) mapError(c echo.Context, op string, err error) error {
	switch {
	case errors.Is(err, shared.ErrNotFound):
		return shared.NotFound("not_found", "donation or volunteer not found")
	case errors.Is(err, shared.ErrPreconditionFailed):
		return shared.Conflict("illegal_transition", err.Error())
	case errors.Is(err, shared.ErrNotAuthorized):
		return shared.Forbidden("not_authorized", "caller is not the assigned volunteer")
	case errors.Is(err, shared.ErrConflict):
		return shared.ServiceUnavailable("storage_conflict", "concurrent update, retry the request")
	default:
		h.logger.Error("transition failed", "op", op, "donation_id", c.Param("id"), "error", err)
		return shared.InternalError("transition_failed", "failed to apply transition")
	}
}

// Assign godoc
// @Summary      Assign a donation to the nearest volunteer
// @Description  Offers a pending donation to the nearest available
// @Description  volunteer. Returns assigned=false with the donation still
// @Description  pending when nobody is eligible; that outcome is retryable,
// @Description  not an error. A no-op for donations already assigned.
// @Tags         lifecycle
// @Produce      json
// @Param        id  path  string  true  "Donation ID"
// @Success      200  {object}  dto.AssignDonationResponse
// @Failure      404  {object}  shared.APIError
// @Failure      503  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /donations/{id}/assign [post]
func (h *Handler) Assign(c echo.Context) error {
	if _, err := auth.RequireAuth(c); err != nil {
		return err
	}

	d, err := h.service.Assign(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.mapError(c, "assign", err)
	}

	return c.JSON(http.StatusOK, dto.AssignDonationResponse{
		Assigned: d.Status != donation.StatusPending,
		Donation: donation.ToResponse(d),
	})
}

// Accept godoc
// @Summary      Accept an offered donation
// @Tags         lifecycle
// @Produce      json
// @Param        id  path  string  true  "Donation ID"
// @Success      200  {object}  dto.DonationResponse
// @Failure      403  {object}  shared.APIError
// @Failure      404  {object}  shared.APIError
// @Failure      409  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /donations/{id}/accept [post]
func (h *Handler) Accept(c echo.Context) error {
	callerID, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	d, err := h.service.Accept(c.Request().Context(), c.Param("id"), callerID)
	if err != nil {
		return h.mapError(c, "accept", err)
	}
	return c.JSON(http.StatusOK, donation.ToResponse(d))
}

// Reject godoc
// @Summary      Reject an offered donation
// @Description  Returns the donation to the pool and immediately reassigns
// @Description  it to the next nearest volunteer, excluding the caller for
// @Description  this attempt. The response shows either the new assignee or
// @Description  a pending donation when nobody else is eligible.
// @Tags         lifecycle
// @Produce      json
// @Param        id  path  string  true  "Donation ID"
// @Success      200  {object}  dto.DonationResponse
// @Failure      403  {object}  shared.APIError
// @Failure      404  {object}  shared.APIError
// @Failure      409  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /donations/{id}/reject [post]
func (h *Handler) Reject(c echo.Context) error {
	callerID, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	d, err := h.service.Reject(c.Request().Context(), c.Param("id"), callerID)
	if err != nil {
		return h.mapError(c, "reject", err)
	}
	return c.JSON(http.StatusOK, donation.ToResponse(d))
}

// Complete godoc
// @Summary      Complete an accepted donation
// @Description  Marks the delivery finished and stores the proof-of-delivery
// @Description  reference on the donation and the volunteer's record.
// @Tags         lifecycle
// @Accept       json
// @Produce      json
// @Param        id       path  string                       true  "Donation ID"
// @Param        request  body  dto.CompleteDonationRequest  true  "Proof of delivery"
// @Success      200  {object}  dto.DonationResponse
// @Failure      400  {object}  shared.APIError
// @Failure      403  {object}  shared.APIError
// @Failure      404  {object}  shared.APIError
// @Failure      409  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /donations/{id}/complete [post]
func (h *Handler) Complete(c echo.Context) error {
	callerID, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	var req dto.CompleteDonationRequest
	if err := c.Bind(&req); err != nil {
		return shared.BadRequest("invalid_request", "invalid request body")
	}
	if req.ProofURL == "" {
		return shared.BadRequest("missing_proof", "proof_url is required")
	}

	d, err := h.service.Complete(c.Request().Context(), c.Param("id"), callerID, req.ProofURL)
	if err != nil {
		return h.mapError(c, "complete", err)
	}
	return c.JSON(http.StatusOK, donation.ToResponse(d))
}
