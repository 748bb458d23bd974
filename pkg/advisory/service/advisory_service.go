package service

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/entities"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/rules"
)

// ErrInvalid marks a request the caller can fix.
var ErrInvalid = eris.New("advisory: invalid recommendation")

type CreateInput struct {
	FarmerID           string `json:"farmer_id"`
	CropType           string `json:"crop_type"`
	RecommendationType string `json:"recommendation_type"`
	Title              string `json:"title"`
	Description        string `json:"description"`
	Priority           string `json:"priority"`
}

type AdvisoryService interface {
	List(ctx context.Context, farmerID, status string) ([]entities.AdvisoryRecommendation, error)
	Create(ctx context.Context, in CreateInput) (*entities.AdvisoryRecommendation, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*entities.AdvisoryRecommendation, error)
	StatusCounts(ctx context.Context) (map[string]int64, error)
	// Suggestions evaluates the latest stored weather and soil rows of
	// location. It returns rules.ErrMissingInput when either is absent.
	Suggestions(ctx context.Context, location, cropType string) (*rules.Result, error)
}
