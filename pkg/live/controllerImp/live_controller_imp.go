// Package controllerImp serves aggregator and rule engine output computed
// straight from the in-memory dataset, bypassing the seeded tables.
package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/aggregator"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/params"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/rules"
)

type Defaults struct {
	Window         int
	AdvisoryWindow int
	PestLimit      int
}

type LiveCtrl struct {
	agg    *aggregator.Aggregator
	engine rules.RulesEngine
	def    Defaults
}

func New(agg *aggregator.Aggregator, engine rules.RulesEngine, def Defaults) *LiveCtrl {
	if def.Window <= 0 {
		def.Window = aggregator.DefaultWindow
	}
	if def.AdvisoryWindow <= 0 {
		def.AdvisoryWindow = 20
	}
	if def.PestLimit <= 0 {
		def.PestLimit = 20
	}
	return &LiveCtrl{agg: agg, engine: engine, def: def}
}

func (h *LiveCtrl) window(c echo.Context) int { return params.Limit(c, "window", h.def.Window) }

func (h *LiveCtrl) Weather(c echo.Context) error {
	w := h.agg.WeatherSnapshot(params.Location(c), h.window(c))
	if w == nil {
		return c.JSON(http.StatusOK, echo.Map{})
	}
	return c.JSON(http.StatusOK, w)
}

func (h *LiveCtrl) Soil(c echo.Context) error {
	s := h.agg.SoilSnapshot(params.Location(c), h.window(c))
	if s == nil {
		return c.JSON(http.StatusOK, echo.Map{})
	}
	return c.JSON(http.StatusOK, s)
}

func (h *LiveCtrl) Yield(c echo.Context) error {
	return c.JSON(http.StatusOK, h.agg.YieldRecords(params.Limit(c, "limit", aggregator.DefaultLimit)))
}

func (h *LiveCtrl) Pests(c echo.Context) error {
	return c.JSON(http.StatusOK, h.agg.PestAlerts(params.Limit(c, "limit", h.def.PestLimit)))
}

func (h *LiveCtrl) Advisory(c echo.Context) error {
	return c.JSON(http.StatusOK, h.agg.AdvisoryFromStats(params.Limit(c, "window", h.def.AdvisoryWindow)))
}

func (h *LiveCtrl) Suggestions(c echo.Context) error {
	loc, win := params.Location(c), h.window(c)
	res, err := h.engine.Evaluate(h.agg.WeatherSnapshot(loc, win), h.agg.SoilSnapshot(loc, win), params.String(c, "crop_type"))
	if err != nil {
		// ErrMissingInput is the only failure Evaluate has
		return c.JSON(http.StatusOK, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, res)
}

// Summary describes the loaded dataset.
func (h *LiveCtrl) Summary(c echo.Context) error {
	st := h.agg.Store()
	return c.JSON(http.StatusOK, echo.Map{
		"source":           st.Source(),
		"records":          st.Len(),
		"rejected":         st.Rejected(),
		"regions":          st.Regions(),
		"synthetic_fields": aggregator.SyntheticFields(),
		"thresholds":       h.engine.Thresholds(),
	})
}
