package service

import (
	"context"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/entities"
)

type SoilService interface {
	Health(ctx context.Context, location string) (*entities.SoilData, error)
}
