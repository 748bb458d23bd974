package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/params"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/weather/service"
)

const defaultForecastDays = 7

type WeatherCtrl struct{ svc service.WeatherService }

func New(svc service.WeatherService) *WeatherCtrl { return &WeatherCtrl{svc} }

func (h *WeatherCtrl) Current(c echo.Context) error {
	w, err := h.svc.Current(c.Request().Context(), params.Location(c))
	if err != nil {
		zap.L().Error("weather current", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if w == nil {
		return c.JSON(http.StatusOK, echo.Map{})
	}
	return c.JSON(http.StatusOK, w)
}

func (h *WeatherCtrl) Forecast(c echo.Context) error {
	days := params.Limit(c, "days", defaultForecastDays)
	out, err := h.svc.Forecast(c.Request().Context(), params.Location(c), days)
	if err != nil {
		zap.L().Error("weather forecast", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
