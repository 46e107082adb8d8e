package donation

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/foodbridge/backend/internal/auth"
	"github.com/foodbridge/backend/internal/dto"
	"github.com/foodbridge/backend/internal/shared"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	store  *Store
	logger *slog.Logger
}

func NewHandler(store *Store, logger *slog.Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/available", h.Available)
	g.GET("/mine", h.Mine)
	g.GET("/:id", h.Get)
}

func ToResponse(d *Donation) dto.DonationResponse {
	return dto.DonationResponse{
		ID:         d.ID,
		DonorID:    d.DonorID,
		FoodName:   d.FoodName,
		Quantity:   d.Quantity,
		ExpiresAt:  d.ExpiresAt.Format(time.RFC3339),
		Address:    d.Address,
		Lat:        d.Lat,
		Lon:        d.Lon,
		Status:     d.Status.String(),
		AssignedTo: d.AssignedTo,
		ProofURL:   d.ProofURL,
		CreatedAt:  d.CreatedAt.Format(time.RFC3339),
	}
}

func toListResponse(donations []*Donation) dto.DonationListResponse {
	response := make([]dto.DonationResponse, len(donations))
	for i, d := range donations {
		response[i] = ToResponse(d)
	}
	return dto.DonationListResponse{Donations: response}
}

// Create godoc
// @Summary      Create a donation
// @Description  Registers a new perishable-goods donation in pending state
// @Tags         donations
// @Accept       json
// @Produce      json
// @Param        request  body      dto.CreateDonationRequest  true  "Donation details"
// @Success      201      {object}  dto.DonationResponse
// @Failure      400      {object}  shared.APIError
// @Failure      401      {object}  shared.APIError
// @Failure      500      {object}  shared.APIError
// @Security     BearerAuth
// @Router       /donations [post]
func (h *Handler) Create(c echo.Context) error {
	donorID, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	var req dto.CreateDonationRequest
	if err := c.Bind(&req); err != nil {
		return shared.BadRequest("invalid_request", "invalid request body")
	}

	if req.FoodName == "" {
		return shared.BadRequest("missing_food_name", "food_name is required")
	}
	if req.Quantity <= 0 {
		return shared.BadRequest("invalid_quantity", "quantity must be positive")
	}
	if req.ExpiryHours <= 0 {
		return shared.BadRequest("invalid_expiry", "expiry_hours must be positive")
	}

	d := &Donation{
		DonorID:   donorID,
		FoodName:  req.FoodName,
		Quantity:  req.Quantity,
		ExpiresAt: time.Now().Add(time.Duration(req.ExpiryHours * float64(time.Hour))),
		Address:   req.Address,
		Lat:       req.Lat,
		Lon:       req.Lon,
		Status:    StatusPending,
	}

	if err := h.store.Create(c.Request().Context(), d); err != nil {
		h.logger.Error("failed to create donation", "error", err, "donor_id", donorID)
		return shared.InternalError("create_failed", "failed to create donation")
	}

	return c.JSON(http.StatusCreated, ToResponse(d))
}

// List godoc
// @Summary      List all donations
// @Tags         donations
// @Produce      json
// @Success      200  {object}  dto.DonationListResponse
// @Failure      500  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /donations [get]
func (h *Handler) List(c echo.Context) error {
	donations, err := h.store.List(c.Request().Context())
	if err != nil {
		h.logger.Error("failed to list donations", "error", err)
		return shared.InternalError("list_failed", "failed to list donations")
	}
	return c.JSON(http.StatusOK, toListResponse(donations))
}

// Available godoc
// @Summary      List unmatched donations
// @Description  Returns every donation still waiting for a volunteer
// @Tags         donations
// @Produce      json
// @Success      200  {object}  dto.DonationListResponse
// @Failure      500  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /donations/available [get]
func (h *Handler) Available(c echo.Context) error {
	donations, err := h.store.ListPending(c.Request().Context())
	if err != nil {
		h.logger.Error("failed to list pending donations", "error", err)
		return shared.InternalError("list_failed", "failed to list donations")
	}
	return c.JSON(http.StatusOK, toListResponse(donations))
}

// Mine godoc
// @Summary      List my donations
// @Tags         donations
// @Produce      json
// @Success      200  {object}  dto.DonationListResponse
// @Failure      401  {object}  shared.APIError
// @Failure      500  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /donations/mine [get]
func (h *Handler) Mine(c echo.Context) error {
	donorID, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	donations, err := h.store.ListByDonor(c.Request().Context(), donorID)
	if err != nil {
		h.logger.Error("failed to list donor donations", "error", err, "donor_id", donorID)
		return shared.InternalError("list_failed", "failed to list donations")
	}
	return c.JSON(http.StatusOK, toListResponse(donations))
}

// Get godoc
// @Summary      Get a donation
// @Tags         donations
// @Produce      json
// @Param        id  path  string  true  "Donation ID"
// @Success      200  {object}  dto.DonationResponse
// @Failure      404  {object}  shared.APIError
// @Failure      500  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /donations/{id} [get]
func (h *Handler) Get(c echo.Context) error {
	d, err := h.store.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NotFound("donation_not_found", "donation not found")
		}
		h.logger.Error("failed to get donation", "error", err, "donation_id", c.Param("id"))
		return shared.InternalError("get_failed", "failed to get donation")
	}
	return c.JSON(http.StatusOK, ToResponse(d))
}
