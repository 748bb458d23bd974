package repository

import (
	"context"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/entities"
)

type CropRepository interface {
	// List returns rows newest first. An empty sensorID matches every sensor.
	List(ctx context.Context, sensorID string, limit int) ([]entities.CropData, error)
}
