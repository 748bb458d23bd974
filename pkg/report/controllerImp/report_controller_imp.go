package controllerImp

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/dashboard/service"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/params"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/report"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportCtrl struct{ svc service.DashboardService }

func New(svc service.DashboardService) *ReportCtrl { return &ReportCtrl{svc} }

func (h *ReportCtrl) DashboardXLSX(c echo.Context) error {
	loc := params.Location(c)
	d, err := h.svc.Build(c.Request().Context(), loc)
	if err != nil {
		zap.L().Error("report dashboard", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	buf, err := report.Workbook(d)
	if err != nil {
		zap.L().Error("report workbook", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	name := strings.ReplaceAll(strings.ToLower(loc), " ", "_")
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="dashboard_%s.xlsx"`, name))
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}
