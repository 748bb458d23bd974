package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/dashboard/service"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/params"
)

type DashboardCtrl struct{ svc service.DashboardService }

func New(svc service.DashboardService) *DashboardCtrl { return &DashboardCtrl{svc} }

func (h *DashboardCtrl) Get(c echo.Context) error {
	d, err := h.svc.Build(c.Request().Context(), params.Location(c))
	if err != nil {
		zap.L().Error("dashboard", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, d)
}
