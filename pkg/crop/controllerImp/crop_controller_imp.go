package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/crop/service"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/params"
)

const defaultLimit = 10

type CropCtrl struct{ svc service.CropService }

func New(svc service.CropService) *CropCtrl { return &CropCtrl{svc} }

func (h *CropCtrl) Yield(c echo.Context) error {
	out, err := h.svc.Yield(c.Request().Context(), params.String(c, "sensor_id"), params.Limit(c, "limit", defaultLimit))
	if err != nil {
		zap.L().Error("crop yield", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
