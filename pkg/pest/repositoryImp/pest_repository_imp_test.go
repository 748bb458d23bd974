package repositoryImp

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/database"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/entities"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/dataset"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/pest/repository"
)

func seeded(t *testing.T) repository.PestRepository {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "pest.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	rows := []entities.PestDisease{
		{CropType: "Wheat", Severity: "Severe", AffectedArea: 30, DateReported: "2024-02-28", Location: "South USA"},
		{CropType: "Wheat", Severity: "Low", AffectedArea: 12, DateReported: "2024-03-19", Location: "North India"},
		{CropType: "Cotton", Severity: "Moderate", AffectedArea: 20, DateReported: "2024-04-13", Location: "Central USA"},
		{CropType: "Maize", Severity: "Severe", AffectedArea: 15, DateReported: "2024-04-13", Location: "Central USA"},
	}
	require.NoError(t, db.Create(&rows).Error)
	return New(db)
}

func TestList_NewestFirst(t *testing.T) {
	r := seeded(t)
	out, err := r.List(t.Context(), repository.Filter{})
	require.NoError(t, err)
	require.Len(t, out, 4)
	dates := []string{out[0].DateReported, out[1].DateReported, out[2].DateReported, out[3].DateReported}
	assert.Equal(t, []string{"2024-04-13", "2024-04-13", "2024-03-19", "2024-02-28"}, dates)
	// ties keep insertion order
	assert.Equal(t, "Cotton", out[0].CropType)
}

func TestList_Filters(t *testing.T) {
	r := seeded(t)
	tests := []struct {
		name string
		f    repository.Filter
		want int
	}{
		{"crop", repository.Filter{CropType: "Wheat"}, 2},
		{"severity", repository.Filter{Severity: "Severe"}, 2},
		{"location", repository.Filter{Location: "Central USA"}, 2},
		{"default location spans all", repository.Filter{Location: dataset.DefaultLocation}, 4},
		{"combined", repository.Filter{CropType: "Wheat", Severity: "Severe"}, 1},
		{"limit", repository.Filter{Limit: 3}, 3},
		{"no match", repository.Filter{Location: "Atlantis"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.List(t.Context(), tt.f)
			require.NoError(t, err)
			assert.Len(t, out, tt.want)
		})
	}
}

func TestCountBySeverity(t *testing.T) {
	r := seeded(t)

	all, err := r.CountBySeverity(t.Context(), "")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"Severe": 2, "Low": 1, "Moderate": 1}, all)

	central, err := r.CountBySeverity(t.Context(), "Central USA")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"Severe": 1, "Moderate": 1}, central)
}
