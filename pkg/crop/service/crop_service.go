package service

import (
	"context"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/entities"
)

type CropService interface {
	Yield(ctx context.Context, sensorID string, limit int) ([]entities.CropData, error)
}
