package serviceImp

import (
	"context"
	"time"

	"github.com/rotisserie/eris"

	advisorySvc "github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/advisory/service"
	cropSvc "github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/crop/service"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/dashboard"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/dashboard/service"
	pestRepo "github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/pest/repository"
	pestSvc "github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/pest/service"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/rules"
	soilSvc "github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/soil/service"
	weatherSvc "github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/weather/service"
)

const (
	forecastDays = 7
	yieldLimit   = 10
)

type Deps struct {
	Weather  weatherSvc.WeatherService
	Soil     soilSvc.SoilService
	Crop     cropSvc.CropService
	Pest     pestSvc.PestService
	Advisory advisorySvc.AdvisoryService
	Now      func() time.Time
}

type dashSvc struct{ d Deps }

func NewDashboardService(d Deps) service.DashboardService {
	if d.Now == nil {
		d.Now = time.Now
	}
	return &dashSvc{d}
}

func (s *dashSvc) Build(ctx context.Context, location string) (*dashboard.Dashboard, error) {
	out := &dashboard.Dashboard{Location: location, Suggestions: []rules.Suggestion{}}
	var err error

	if out.Weather, err = s.d.Weather.Current(ctx, location); err != nil {
		return nil, eris.Wrap(err, "dashboard: weather")
	}
	if out.Forecast, err = s.d.Weather.Forecast(ctx, location, forecastDays); err != nil {
		return nil, eris.Wrap(err, "dashboard: forecast")
	}
	if out.Soil, err = s.d.Soil.Health(ctx, location); err != nil {
		return nil, eris.Wrap(err, "dashboard: soil")
	}
	if out.Yield, err = s.d.Crop.Yield(ctx, "", yieldLimit); err != nil {
		return nil, eris.Wrap(err, "dashboard: yield")
	}
	if out.Pests, err = s.d.Pest.List(ctx, pestRepo.Filter{Location: location}); err != nil {
		return nil, eris.Wrap(err, "dashboard: pests")
	}
	if out.Recommendations, err = s.d.Advisory.List(ctx, "", ""); err != nil {
		return nil, eris.Wrap(err, "dashboard: recommendations")
	}

	res, err := s.d.Advisory.Suggestions(ctx, location, "")
	switch {
	case eris.Is(err, rules.ErrMissingInput):
		// no snapshot yet; the dashboard still renders the other cards
	case err != nil:
		return nil, eris.Wrap(err, "dashboard: suggestions")
	default:
		out.Suggestions = res.Suggestions
	}

	out.Summary = dashboard.Summarize(out)
	out.GeneratedAt = s.d.Now().UTC()
	return out, nil
}
