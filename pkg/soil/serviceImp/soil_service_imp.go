package serviceImp

import (
	"context"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/entities"
	repo "github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/soil/repository"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/soil/service"
)

type soilSvc struct{ r repo.SoilRepository }

func NewSoilService(r repo.SoilRepository) service.SoilService { return &soilSvc{r} }

func (s *soilSvc) Health(ctx context.Context, location string) (*entities.SoilData, error) {
	return s.r.Latest(ctx, location)
}
