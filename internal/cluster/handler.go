package cluster

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

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
	g.GET("", h.Latest)
}

// Latest godoc
// @Summary      Get the latest clustering snapshot
// @Description  Returns the geographic clusters produced by the most recent
// @Description  clustering run. Empty until the first run finishes.
// @Tags         clusters
// @Produce      json
// @Success      200  {object}  dto.ClusterListResponse
// @Failure      500  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /clusters [get]
func (h *Handler) Latest(c echo.Context) error {
	snap, err := h.store.Latest(c.Request().Context())
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return c.JSON(http.StatusOK, dto.ClusterListResponse{Clusters: []dto.ClusterResponse{}})
		}
		h.logger.Error("failed to read clusters", "error", err)
		return shared.InternalError("read_failed", "failed to read clusters")
	}

	clusters := make([]dto.ClusterResponse, len(snap.Clusters))
	for i, rec := range snap.Clusters {
		clusters[i] = dto.ClusterResponse{
			CenterLat:   rec.Center.Lat,
			CenterLon:   rec.Center.Lon,
			DonationIDs: rec.DonationIDs,
		}
	}

	return c.JSON(http.StatusOK, dto.ClusterListResponse{
		Clusters:    clusters,
		GeneratedAt: snap.GeneratedAt.Format(time.RFC3339),
	})
}
