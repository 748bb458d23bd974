package serviceImp

import (
	"context"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/entities"
	repo "github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/crop/repository"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/crop/service"
)

type cropSvc struct{ r repo.CropRepository }

func NewCropService(r repo.CropRepository) service.CropService { return &cropSvc{r} }

func (s *cropSvc) Yield(ctx context.Context, sensorID string, limit int) ([]entities.CropData, error) {
	return s.r.List(ctx, sensorID, limit)
}
