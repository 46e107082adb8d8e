package volunteer

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
	store         *Store
	donationStore *donation.Store
	logger        *slog.Logger
}

func NewHandler(store *Store, donationStore *donation.Store, logger *slog.Logger) *Handler {
	return &Handler{
		store:         store,
		donationStore: donationStore,
		logger:        logger,
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/me", h.Me)
	g.PATCH("/me/location", h.UpdateLocation)
	g.PATCH("/me/availability", h.UpdateAvailability)
	g.GET("/me/assigned", h.AssignedDonations)
	g.GET("/me/accepted", h.AcceptedDonations)
	g.GET("/me/completed", h.CompletedDeliveries)
	g.GET("/:id", h.Get)
}

func toResponse(v *Volunteer) dto.VolunteerResponse {
	return dto.VolunteerResponse{
		ID:        v.ID,
		UserID:    v.UserID,
		Lat:       v.Lat,
		Lon:       v.Lon,
		Available: v.Available,
		Assigned:  len(v.Assigned),
		Accepted:  len(v.Accepted),
		Completed: len(v.Completed),
	}
}

func (h *Handler) requireVolunteer(c echo.Context) (*Volunteer, error) {
	userID, err := auth.RequireAuth(c)
	if err != nil {
		return nil, err
	}

	v, err := h.store.GetByUserID(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.Forbidden("not_volunteer", "caller is not a volunteer")
		}
		h.logger.Error("failed to look up volunteer", "error", err, "user_id", userID)
		return nil, shared.InternalError("lookup_failed", "failed to look up volunteer")
	}
	return v, nil
}

// Me godoc
// @Summary      Get my volunteer record
// @Tags         volunteers
// @Produce      json
// @Success      200  {object}  dto.VolunteerResponse
// @Failure      401  {object}  shared.APIError
// @Failure      403  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /volunteers/me [get]
func (h *Handler) Me(c echo.Context) error {
	v, err := h.requireVolunteer(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toResponse(v))
}

// Get godoc
// @Summary      Get a volunteer
// @Tags         volunteers
// @Produce      json
// @Param        id  path  string  true  "Volunteer ID"
// @Success      200  {object}  dto.VolunteerResponse
// @Failure      404  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /volunteers/{id} [get]
func (h *Handler) Get(c echo.Context) error {
	v, err := h.store.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NotFound("volunteer_not_found", "volunteer not found")
		}
		h.logger.Error("failed to get volunteer", "error", err, "volunteer_id", c.Param("id"))
		return shared.InternalError("get_failed", "failed to get volunteer")
	}
	return c.JSON(http.StatusOK, toResponse(v))
}

// UpdateLocation godoc
// @Summary      Report my current location
// @Description  Updates the coordinates used for nearest-volunteer matching
// @Tags         volunteers
// @Accept       json
// @Produce      json
// @Param        request  body      dto.UpdateLocationRequest  true  "Coordinates"
// @Success      200      {object}  dto.VolunteerResponse
// @Failure      400      {object}  shared.APIError
// @Failure      401      {object}  shared.APIError
// @Failure      403      {object}  shared.APIError
// @Security     BearerAuth
// @Router       /volunteers/me/location [patch]
func (h *Handler) UpdateLocation(c echo.Context) error {
	v, err := h.requireVolunteer(c)
	if err != nil {
		return err
	}

	var req dto.UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return shared.BadRequest("invalid_request", "invalid request body")
	}
	if req.Lat < -90 || req.Lat > 90 || req.Lon < -180 || req.Lon > 180 {
		return shared.BadRequest("invalid_coordinates", "coordinates out of range")
	}

	if err := h.store.UpdateLocation(c.Request().Context(), v.ID, req.Lat, req.Lon); err != nil {
		h.logger.Error("failed to update location", "error", err, "volunteer_id", v.ID)
		return shared.InternalError("update_failed", "failed to update location")
	}

	v.Lat = req.Lat
	v.Lon = req.Lon
	return c.JSON(http.StatusOK, toResponse(v))
}

// UpdateAvailability godoc
// @Summary      Toggle my availability
// @Tags         volunteers
// @Accept       json
// @Produce      json
// @Param        request  body      dto.UpdateAvailabilityRequest  true  "Availability"
// @Success      200      {object}  dto.VolunteerResponse
// @Failure      400      {object}  shared.APIError
// @Failure      401      {object}  shared.APIError
// @Failure      403      {object}  shared.APIError
// @Security     BearerAuth
// @Router       /volunteers/me/availability [patch]
func (h *Handler) UpdateAvailability(c echo.Context) error {
	v, err := h.requireVolunteer(c)
	if err != nil {
		return err
	}

	var req dto.UpdateAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return shared.BadRequest("invalid_request", "invalid request body")
	}

	if err := h.store.SetAvailability(c.Request().Context(), v.ID, req.Available); err != nil {
		h.logger.Error("failed to set availability", "error", err, "volunteer_id", v.ID)
		return shared.InternalError("update_failed", "failed to update availability")
	}

	v.Available = req.Available
	return c.JSON(http.StatusOK, toResponse(v))
}

// AssignedDonations godoc
// @Summary      List donations offered to me
// @Tags         volunteers
// @Produce      json
// @Success      200  {object}  dto.DonationListResponse
// @Failure      401  {object}  shared.APIError
// @Failure      403  {object}  shared.APIError
// @Failure      500  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /volunteers/me/assigned [get]
func (h *Handler) AssignedDonations(c echo.Context) error {
	v, err := h.requireVolunteer(c)
	if err != nil {
		return err
	}
	return h.donationList(c, v.Assigned)
}

// AcceptedDonations godoc
// @Summary      List donations I am delivering
// @Tags         volunteers
// @Produce      json
// @Success      200  {object}  dto.DonationListResponse
// @Failure      401  {object}  shared.APIError
// @Failure      403  {object}  shared.APIError
// @Failure      500  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /volunteers/me/accepted [get]
func (h *Handler) AcceptedDonations(c echo.Context) error {
	v, err := h.requireVolunteer(c)
	if err != nil {
		return err
	}
	return h.donationList(c, v.Accepted)
}

func (h *Handler) donationList(c echo.Context, ids shared.StringSlice) error {
	donations, err := h.donationStore.ListByIDs(c.Request().Context(), ids)
	if err != nil {
		h.logger.Error("failed to list donations", "error", err)
		return shared.InternalError("list_failed", "failed to list donations")
	}

	response := make([]dto.DonationResponse, len(donations))
	for i, d := range donations {
		response[i] = donation.ToResponse(d)
	}
	return c.JSON(http.StatusOK, dto.DonationListResponse{Donations: response})
}

// CompletedDeliveries godoc
// @Summary      List my completed deliveries
// @Tags         volunteers
// @Produce      json
// @Success      200  {object}  dto.CompletedListResponse
// @Failure      401  {object}  shared.APIError
// @Failure      403  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /volunteers/me/completed [get]
func (h *Handler) CompletedDeliveries(c echo.Context) error {
	v, err := h.requireVolunteer(c)
	if err != nil {
		return err
	}

	deliveries := make([]dto.CompletedDeliveryResponse, len(v.Completed))
	for i, d := range v.Completed {
		deliveries[i] = dto.CompletedDeliveryResponse{
			DonationID: d.DonationID,
			ProofURL:   d.ProofURL,
		}
	}
	return c.JSON(http.StatusOK, dto.CompletedListResponse{Deliveries: deliveries})
}
