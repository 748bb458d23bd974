package serviceImp

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/entities"
	repo "github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/advisory/repository"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/advisory/service"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/rules"
	soilRepo "github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/soil/repository"
	weatherRepo "github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/weather/repository"
)

var (
	priorities = map[string]bool{"high": true, "medium": true, "low": true}
	statuses   = map[string]bool{entities.StatusPending: true, entities.StatusCompleted: true}
)

type advisorySvc struct {
	r       repo.AdvisoryRepository
	weather weatherRepo.WeatherRepository
	soil    soilRepo.SoilRepository
	engine  rules.RulesEngine
}

func NewAdvisoryService(
	r repo.AdvisoryRepository,
	weather weatherRepo.WeatherRepository,
	soil soilRepo.SoilRepository,
	engine rules.RulesEngine,
) service.AdvisoryService {
	return &advisorySvc{r: r, weather: weather, soil: soil, engine: engine}
}

func (s *advisorySvc) List(ctx context.Context, farmerID, status string) ([]entities.AdvisoryRecommendation, error) {
	return s.r.List(ctx, farmerID, status)
}

func (s *advisorySvc) Create(ctx context.Context, in service.CreateInput) (*entities.AdvisoryRecommendation, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, eris.Wrap(service.ErrInvalid, "title is required")
	}
	prio := strings.ToLower(strings.TrimSpace(in.Priority))
	if prio == "" {
		prio = "medium"
	}
	if !priorities[prio] {
		return nil, eris.Wrapf(service.ErrInvalid, "priority %q", in.Priority)
	}
	rec := &entities.AdvisoryRecommendation{
		FarmerID:           strings.TrimSpace(in.FarmerID),
		CropType:           strings.TrimSpace(in.CropType),
		RecommendationType: strings.TrimSpace(in.RecommendationType),
		Title:              strings.TrimSpace(in.Title),
		Description:        in.Description,
		Priority:           prio,
		Status:             entities.StatusPending,
	}
	if err := s.r.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *advisorySvc) UpdateStatus(ctx context.Context, id uint, status string) (*entities.AdvisoryRecommendation, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if !statuses[status] {
		return nil, eris.Wrapf(service.ErrInvalid, "status %q", status)
	}
	return s.r.UpdateStatus(ctx, id, status)
}

func (s *advisorySvc) StatusCounts(ctx context.Context) (map[string]int64, error) {
	return s.r.CountByStatus(ctx)
}

func (s *advisorySvc) Suggestions(ctx context.Context, location, cropType string) (*rules.Result, error) {
	w, err := s.weather.Latest(ctx, location)
	if err != nil {
		return nil, err
	}
	soil, err := s.soil.Latest(ctx, location)
	if err != nil {
		return nil, err
	}
	return s.engine.Evaluate(w, soil, cropType)
}
