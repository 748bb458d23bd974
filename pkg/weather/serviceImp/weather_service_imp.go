package serviceImp

import (
	"context"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/entities"
	repo "github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/weather/repository"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/weather/service"
)

type weatherSvc struct{ r repo.WeatherRepository }

func NewWeatherService(r repo.WeatherRepository) service.WeatherService { return &weatherSvc{r} }

func (s *weatherSvc) Current(ctx context.Context, location string) (*entities.WeatherData, error) {
	return s.r.Latest(ctx, location)
}

// Forecast returns the newest days rows for location. The table holds
// derived history, so "forecast" is the recent trend the dashboard charts.
func (s *weatherSvc) Forecast(ctx context.Context, location string, days int) ([]entities.WeatherData, error) {
	if days < 1 {
		days = 1
	}
	return s.r.Recent(ctx, location, days)
}

func (s *weatherSvc) Locations(ctx context.Context) ([]string, error) {
	return s.r.Locations(ctx)
}
