package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/params"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/soil/service"
)

type SoilCtrl struct{ svc service.SoilService }

func New(svc service.SoilService) *SoilCtrl { return &SoilCtrl{svc} }

func (h *SoilCtrl) Health(c echo.Context) error {
	s, err := h.svc.Health(c.Request().Context(), params.Location(c))
	if err != nil {
		zap.L().Error("soil health", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if s == nil {
		return c.JSON(http.StatusOK, echo.Map{})
	}
	return c.JSON(http.StatusOK, s)
}
