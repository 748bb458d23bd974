package service

import (
	"context"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/entities"
)

type WeatherService interface {
	Current(ctx context.Context, location string) (*entities.WeatherData, error)
	Forecast(ctx context.Context, location string, days int) ([]entities.WeatherData, error)
	Locations(ctx context.Context) ([]string, error)
}
