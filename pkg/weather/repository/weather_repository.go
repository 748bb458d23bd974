package repository

import (
	"context"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/entities"
)

type WeatherRepository interface {
	// Latest returns nil, nil when the location has no rows.
	Latest(ctx context.Context, location string) (*entities.WeatherData, error)
	Recent(ctx context.Context, location string, days int) ([]entities.WeatherData, error)
	Locations(ctx context.Context) ([]string, error)
}
