package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/codecrafters-goa/CalmNest-CodeCrafters/internal/core/ports"
)

type AnalyticsHandler struct {
	analyticsService ports.AnalyticsService
}

func NewAnalyticsHandler(analyticsService ports.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Overview returns platform-wide engagement counts. Admin only; the role
// check lives in the RequireRoles middleware on the route.
//
// @Summary      Admin analytics overview
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.AnalyticsOverview
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/analytics [get]
func (h *AnalyticsHandler) Overview(c echo.Context) error {
	overview, err := h.analyticsService.Overview(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, overview)
}
