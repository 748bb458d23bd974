package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/advisory/repository"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/advisory/service"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/params"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/rules"
)

type AdvisoryCtrl struct{ svc service.AdvisoryService }

func New(svc service.AdvisoryService) *AdvisoryCtrl { return &AdvisoryCtrl{svc} }

func (h *AdvisoryCtrl) List(c echo.Context) error {
	out, err := h.svc.List(c.Request().Context(), params.String(c, "farmer_id"), params.String(c, "status"))
	if err != nil {
		zap.L().Error("advisory list", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdvisoryCtrl) Create(c echo.Context) error {
	var in service.CreateInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	rec, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return h.fail(c, "advisory create", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"id": rec.ID, "message": "Recommendation created successfully"})
}

func (h *AdvisoryCtrl) Patch(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	rec, err := h.svc.UpdateStatus(c.Request().Context(), uint(id), body.Status)
	if err != nil {
		return h.fail(c, "advisory patch", err)
	}
	return c.JSON(http.StatusOK, rec)
}

// Suggestions answers 200 with {"error": ...} when weather or soil data is
// missing; dashboards render that as "no data available".
func (h *AdvisoryCtrl) Suggestions(c echo.Context) error {
	res, err := h.svc.Suggestions(c.Request().Context(), params.Location(c), params.String(c, "crop_type"))
	if eris.Is(err, rules.ErrMissingInput) {
		return c.JSON(http.StatusOK, echo.Map{"error": rules.ErrMissingInput.Error()})
	}
	if err != nil {
		zap.L().Error("advisory suggestions", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, res)
}

func (h *AdvisoryCtrl) fail(c echo.Context, op string, err error) error {
	switch {
	case eris.Is(err, service.ErrInvalid):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case eris.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	zap.L().Error(op, zap.Error(err))
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}
