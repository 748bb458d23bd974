package repository

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/entities"
)

var ErrNotFound = eris.New("advisory: recommendation not found")

type AdvisoryRepository interface {
	// List returns newest first. Empty farmerID or status match everything.
	List(ctx context.Context, farmerID, status string) ([]entities.AdvisoryRecommendation, error)
	Create(ctx context.Context, rec *entities.AdvisoryRecommendation) error
	UpdateStatus(ctx context.Context, id uint, status string) (*entities.AdvisoryRecommendation, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
}
