package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/metrics"
)

// Controllers holds every handler group the API mounts.
type Controllers struct {
	Weather interface {
		Current(echo.Context) error
		Forecast(echo.Context) error
	}
	Soil interface {
		Health(echo.Context) error
	}
	Crop interface {
		Yield(echo.Context) error
	}
	Pest interface {
		List(echo.Context) error
	}
	Advisory interface {
		List(echo.Context) error
		Create(echo.Context) error
		Patch(echo.Context) error
		Suggestions(echo.Context) error
	}
	Dashboard interface {
		Get(echo.Context) error
	}
	Report interface {
		DashboardXLSX(echo.Context) error
	}
	Live interface {
		Weather(echo.Context) error
		Soil(echo.Context) error
		Yield(echo.Context) error
		Pests(echo.Context) error
		Advisory(echo.Context) error
		Suggestions(echo.Context) error
		Summary(echo.Context) error
	}
	Health interface {
		Health(echo.Context) error
	}
}

func New(e *echo.Echo, c Controllers) *echo.Echo {
	e.GET("/health", c.Health.Health)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	api := e.Group("/api")

	api.GET("/weather/current", c.Weather.Current)
	api.GET("/weather/forecast", c.Weather.Forecast)
	api.GET("/soil/health", c.Soil.Health)
	api.GET("/crops/yield", c.Crop.Yield)
	api.GET("/pests-diseases", c.Pest.List)

	api.GET("/advisory/recommendations", c.Advisory.List)
	api.POST("/advisory/recommendations", c.Advisory.Create)
	api.PATCH("/advisory/recommendations/:id", c.Advisory.Patch)
	api.GET("/advisory/suggestions", c.Advisory.Suggestions)

	api.GET("/dashboard", c.Dashboard.Get)
	api.GET("/reports/dashboard.xlsx", c.Report.DashboardXLSX)

	live := api.Group("/live")
	live.GET("/weather", c.Live.Weather)
	live.GET("/soil", c.Live.Soil)
	live.GET("/yield", c.Live.Yield)
	live.GET("/pests", c.Live.Pests)
	live.GET("/advisory", c.Live.Advisory)
	live.GET("/suggestions", c.Live.Suggestions)
	live.GET("/summary", c.Live.Summary)

	return e
}
