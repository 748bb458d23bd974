package repository

import (
	"context"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/entities"
)

type SoilRepository interface {
	// Latest returns nil, nil when the location has no rows.
	Latest(ctx context.Context, location string) (*entities.SoilData, error)
}
