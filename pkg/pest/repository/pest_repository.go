package repository

import (
	"context"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/entities"
)

// Filter fields are ANDed; empty strings are ignored.
type Filter struct {
	CropType string
	Severity string
	Location string
	Limit    int
}

type PestRepository interface {
	List(ctx context.Context, f Filter) ([]entities.PestDisease, error)
	CountBySeverity(ctx context.Context, location string) (map[string]int64, error)
}
