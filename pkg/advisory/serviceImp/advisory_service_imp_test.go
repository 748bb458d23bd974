package serviceImp

import (
	"context"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/entities"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/advisory/service"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/rules"
)

type fakeAdvisoryRepo struct {
	created []*entities.AdvisoryRecommendation
	updated map[uint]string
}

func (f *fakeAdvisoryRepo) List(context.Context, string, string) ([]entities.AdvisoryRecommendation, error) {
	return nil, nil
}

func (f *fakeAdvisoryRepo) Create(_ context.Context, rec *entities.AdvisoryRecommendation) error {
	rec.ID = uint(len(f.created) + 1)
	f.created = append(f.created, rec)
	return nil
}

func (f *fakeAdvisoryRepo) UpdateStatus(_ context.Context, id uint, status string) (*entities.AdvisoryRecommendation, error) {
	if f.updated == nil {
		f.updated = map[uint]string{}
	}
	f.updated[id] = status
	return &entities.AdvisoryRecommendation{ID: id, Status: status}, nil
}

func (f *fakeAdvisoryRepo) CountByStatus(context.Context) (map[string]int64, error) {
	return map[string]int64{}, nil
}

type fakeWeather struct{ w *entities.WeatherData }

func (f fakeWeather) Latest(context.Context, string) (*entities.WeatherData, error) { return f.w, nil }
func (f fakeWeather) Recent(context.Context, string, int) ([]entities.WeatherData, error) {
	return nil, nil
}
func (f fakeWeather) Locations(context.Context) ([]string, error) { return nil, nil }

type fakeSoil struct{ s *entities.SoilData }

func (f fakeSoil) Latest(context.Context, string) (*entities.SoilData, error) { return f.s, nil }

func newSvc(w *entities.WeatherData, s *entities.SoilData) (service.AdvisoryService, *fakeAdvisoryRepo) {
	r := &fakeAdvisoryRepo{}
	clock := func() time.Time { return time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC) }
	return NewAdvisoryService(r, fakeWeather{w}, fakeSoil{s}, rules.New(rules.WithClock(clock))), r
}

func TestCreate_Defaults(t *testing.T) {
	svc, r := newSvc(nil, nil)
	rec, err := svc.Create(t.Context(), service.CreateInput{FarmerID: " F1 ", Title: " Irrigate "})
	require.NoError(t, err)
	assert.Equal(t, uint(1), rec.ID)
	assert.Equal(t, "F1", rec.FarmerID)
	assert.Equal(t, "Irrigate", rec.Title)
	assert.Equal(t, "medium", rec.Priority)
	assert.Equal(t, entities.StatusPending, rec.Status)
	assert.Len(t, r.created, 1)
}

func TestCreate_Invalid(t *testing.T) {
	svc, r := newSvc(nil, nil)

	_, err := svc.Create(t.Context(), service.CreateInput{Title: "  "})
	assert.True(t, eris.Is(err, service.ErrInvalid))

	_, err = svc.Create(t.Context(), service.CreateInput{Title: "x", Priority: "urgent"})
	assert.True(t, eris.Is(err, service.ErrInvalid))

	rec, err := svc.Create(t.Context(), service.CreateInput{Title: "x", Priority: "HIGH"})
	require.NoError(t, err)
	assert.Equal(t, "high", rec.Priority)
	assert.Len(t, r.created, 1)
}

func TestUpdateStatus_Validates(t *testing.T) {
	svc, r := newSvc(nil, nil)

	_, err := svc.UpdateStatus(t.Context(), 1, "archived")
	assert.True(t, eris.Is(err, service.ErrInvalid))
	assert.Empty(t, r.updated)

	rec, err := svc.UpdateStatus(t.Context(), 3, " Completed ")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusCompleted, rec.Status)
	assert.Equal(t, map[uint]string{3: entities.StatusCompleted}, r.updated)
}

func TestSuggestions(t *testing.T) {
	w := &entities.WeatherData{TemperatureMax: 36, Rainfall: 2}
	s := &entities.SoilData{PHLevel: 6.5, NitrogenLevel: 30, PhosphorusLevel: 20, PotassiumLevel: 30}
	svc, _ := newSvc(w, s)

	res, err := svc.Suggestions(t.Context(), "Default Location", "Rice")
	require.NoError(t, err)
	assert.Equal(t, "Rice", res.CropType)
	require.Len(t, res.Suggestions, 2)
	assert.Equal(t, "High Temperature Alert", res.Suggestions[0].Title)
	assert.Equal(t, "Low Rainfall", res.Suggestions[1].Title)
}

func TestSuggestions_MissingInput(t *testing.T) {
	svc, _ := newSvc(&entities.WeatherData{}, nil)
	_, err := svc.Suggestions(t.Context(), "Default Location", "")
	assert.True(t, eris.Is(err, rules.ErrMissingInput))
}
