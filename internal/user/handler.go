package user

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/foodbridge/backend/internal/auth"
	"github.com/foodbridge/backend/internal/dto"
	"github.com/foodbridge/backend/internal/shared"
	"github.com/foodbridge/backend/internal/volunteer"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	store          *Store
	volunteerStore *volunteer.Store
	logger         *slog.Logger
}

func NewHandler(store *Store, volunteerStore *volunteer.Store, logger *slog.Logger) *Handler {
	return &Handler{
		store:          store,
		volunteerStore: volunteerStore,
		logger:         logger,
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/me", h.Me)
	g.POST("/me/volunteer", h.BecomeVolunteer)
	g.DELETE("/me/volunteer", h.LeaveVolunteer)
}

// Me godoc
// @Summary      Get current user
// @Description  Returns the currently authenticated user's profile
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MeResponse
// @Failure      401  {object}  shared.APIError
// @Failure      404  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /auth/me [get]
func (h *Handler) Me(c echo.Context) error {
	userID, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	u, err := h.store.GetByID(c.Request().Context(), userID)
	if err != nil {
		h.logger.Error("failed to get user", "error", err, "user_id", userID)
		return shared.NotFound("user_not_found", "user not found")
	}

	return c.JSON(http.StatusOK, dto.MeResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role.String(),
	})
}

// BecomeVolunteer godoc
// @Summary      Enroll as a volunteer
// @Description  Switches the current user to the volunteer role and marks
// @Description  them available for assignment
// @Tags         auth
// @Produce      json
// @Success      201  {object}  dto.VolunteerResponse
// @Failure      401  {object}  shared.APIError
// @Failure      404  {object}  shared.APIError
// @Failure      500  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /auth/me/volunteer [post]
func (h *Handler) BecomeVolunteer(c echo.Context) error {
	userID, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	if err := h.store.SetRole(ctx, userID, shared.RoleVolunteer); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NotFound("user_not_found", "user not found")
		}
		h.logger.Error("failed to set role", "error", err, "user_id", userID)
		return shared.InternalError("role_update_failed", "failed to update role")
	}

	v, err := h.volunteerStore.GetByUserID(ctx, userID)
	if errors.Is(err, shared.ErrNotFound) {
		v = &volunteer.Volunteer{UserID: userID, Available: true}
		if err := h.volunteerStore.Create(ctx, v); err != nil {
			h.logger.Error("failed to create volunteer", "error", err, "user_id", userID)
			return shared.InternalError("enroll_failed", "failed to enroll volunteer")
		}
	} else if err != nil {
		h.logger.Error("failed to look up volunteer", "error", err, "user_id", userID)
		return shared.InternalError("enroll_failed", "failed to enroll volunteer")
	} else if err := h.volunteerStore.SetAvailability(ctx, v.ID, true); err != nil {
		h.logger.Error("failed to set availability", "error", err, "volunteer_id", v.ID)
		return shared.InternalError("enroll_failed", "failed to enroll volunteer")
	}

	h.logger.Info("volunteer enrolled", "user_id", userID, "volunteer_id", v.ID)

	return c.JSON(http.StatusCreated, dto.VolunteerResponse{
		ID:        v.ID,
		UserID:    v.UserID,
		Lat:       v.Lat,
		Lon:       v.Lon,
		Available: true,
		Assigned:  len(v.Assigned),
		Accepted:  len(v.Accepted),
		Completed: len(v.Completed),
	})
}

// LeaveVolunteer godoc
// @Summary      Leave the volunteer role
// @Description  Reverts the current user to donor and clears availability.
// @Description  The volunteer record and its history are kept.
// @Tags         auth
// @Success      204  "No Content"
// @Failure      401  {object}  shared.APIError
// @Failure      404  {object}  shared.APIError
// @Failure      500  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /auth/me/volunteer [delete]
func (h *Handler) LeaveVolunteer(c echo.Context) error {
	userID, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	v, err := h.volunteerStore.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NotFound("volunteer_not_found", "volunteer not found")
		}
		h.logger.Error("failed to look up volunteer", "error", err, "user_id", userID)
		return shared.InternalError("leave_failed", "failed to leave volunteer role")
	}

	if err := h.volunteerStore.SetAvailability(ctx, v.ID, false); err != nil {
		h.logger.Error("failed to clear availability", "error", err, "volunteer_id", v.ID)
		return shared.InternalError("leave_failed", "failed to leave volunteer role")
	}

	if err := h.store.SetRole(ctx, userID, shared.RoleDonor); err != nil {
		h.logger.Error("failed to reset role", "error", err, "user_id", userID)
		return shared.InternalError("leave_failed", "failed to leave volunteer role")
	}

	return c.NoContent(http.StatusNoContent)
}
