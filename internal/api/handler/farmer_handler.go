package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agricert/farmer-certification/internal/api/metrics"
	"github.com/agricert/farmer-certification/internal/core/domain"
	"github.com/agricert/farmer-certification/internal/core/ports"
)

// FarmerHandler handles certification review and status queries.
type FarmerHandler struct {
	farmerService ports.FarmerService
}

func NewFarmerHandler(farmerService ports.FarmerService) *FarmerHandler {
	return &FarmerHandler{farmerService: farmerService}
}

// List returns all farmers with their profiles, newest first.
//
// @Summary      List all farmers (admin)
// @Tags         farmers
// @Produce      json
// @Security     TokenAuth
// @Success      200  {object}  listFarmersResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /users/farmers [get]
func (h *FarmerHandler) List(c echo.Context) error {
	farmers, err := h.farmerService.ListFarmers(c.Request().Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoFarmers) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "no farmers found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, listFarmersResponse{Message: "farmers successfully retrieved", Users: farmers})
}

// UpdateStatus overwrites a farmer's certification status.
//
// @Summary      Update a farmer's certification status (admin)
// @Tags         farmers
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        userId  path      string               true  "Farmer user id"
// @Param        body    body      updateStatusRequest  true  "New status"
// @Success      200     {object}  updateStatusResponse
// @Failure      400     {object}  errorResponse
// @Failure      401     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Failure      500     {object}  errorResponse
// @Router       /users/farmers/{userId}/status [patch]
func (h *FarmerHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.farmerService.UpdateStatus(c.Request().Context(), c.Param("userId"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidStatus):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid status. use 'certified', 'declined', or 'pending'"})
		case errors.Is(err, domain.ErrFarmerNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "farmer not found"})
		}
		return err
	}

	metrics.StatusUpdatesTotal.WithLabelValues(req.Status).Inc()
	return c.JSON(http.StatusOK, updateStatusResponse{Message: "certification status updated successfully", Farmer: user})
}

// StatusByID returns the status projection for a farmer user id. Reachable
// by any authenticated caller, not just the owner or an admin.
//
// @Summary      Get a farmer's certification status by id
// @Tags         farmers
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      string  true  "Farmer user id"
// @Success      200  {object}  statusResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /users/farmers/{id}/status [get]
func (h *FarmerHandler) StatusByID(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}
	return h.respondStatus(c, c.Param("id"))
}

// MyStatus returns the caller's own status projection.
//
// @Summary      Get the calling farmer's certification status
// @Tags         farmers
// @Produce      json
// @Security     TokenAuth
// @Success      200  {object}  statusResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /users/my-status [get]
func (h *FarmerHandler) MyStatus(c echo.Context) error {
	subject, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return h.respondStatus(c, subject)
}

func (h *FarmerHandler) respondStatus(c echo.Context, id string) error {
	projection, err := h.farmerService.StatusByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrFarmerNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "farmer not found"})
		}
		return err
	}

	metrics.StatusQueriesTotal.Inc()
	return c.JSON(http.StatusOK, statusResponse{Message: "status retrieved successfully", Farmer: projection})
}
