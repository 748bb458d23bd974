package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/params"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/pest/repository"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/pest/service"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/pest/serviceImp"
)

type PestCtrl struct{ svc service.PestService }

func New(svc service.PestService) *PestCtrl { return &PestCtrl{svc} }

// List serves /api/pests-diseases. location is optional here: without it
// every region is listed.
func (h *PestCtrl) List(c echo.Context) error {
	f := repository.Filter{
		CropType: params.String(c, "crop_type"),
		Severity: params.String(c, "severity"),
		Location: params.String(c, "location"),
		Limit:    params.Limit(c, "limit", serviceImp.DefaultLimit),
	}
	out, err := h.svc.List(c.Request().Context(), f)
	if err != nil {
		zap.L().Error("pest list", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
