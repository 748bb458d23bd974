package serviceImp

import (
	"context"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/entities"
	repo "github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/pest/repository"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/pest/service"
)

const DefaultLimit = 20

type pestSvc struct{ r repo.PestRepository }

func NewPestService(r repo.PestRepository) service.PestService { return &pestSvc{r} }

func (s *pestSvc) List(ctx context.Context, f repo.Filter) ([]entities.PestDisease, error) {
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}
	return s.r.List(ctx, f)
}

func (s *pestSvc) SeverityCounts(ctx context.Context, location string) (map[string]int64, error) {
	return s.r.CountBySeverity(ctx, location)
}
