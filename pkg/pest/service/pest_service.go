package service

import (
	"context"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/entities"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/pest/repository"
)

type PestService interface {
	List(ctx context.Context, f repository.Filter) ([]entities.PestDisease, error)
	SeverityCounts(ctx context.Context, location string) (map[string]int64, error)
}
