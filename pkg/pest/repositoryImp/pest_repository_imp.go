package repositoryImp

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"gorm.io/gorm"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/entities"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/dataset"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/metrics"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/pest/repository"
)

const table = "pest_disease_data"

type pestRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PestRepository { return &pestRepo{db} }

func (r *pestRepo) scoped(ctx context.Context, location string) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&entities.PestDisease{})
	// alerts are stored per region; the default location spans all of them
	if location != "" && location != dataset.DefaultLocation {
		q = q.Where("location = ?", location)
	}
	return q
}

func (r *pestRepo) List(ctx context.Context, f repository.Filter) (out []entities.PestDisease, err error) {
	defer func(start time.Time) { metrics.RecordDBQuery("select", table, start, err) }(time.Now())

	q := r.scoped(ctx, f.Location)
	if f.CropType != "" {
		q = q.Where("crop_type = ?", f.CropType)
	}
	if f.Severity != "" {
		q = q.Where("severity = ?", f.Severity)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	out = []entities.PestDisease{}
	if err = q.Order("date_reported DESC, id ASC").Find(&out).Error; err != nil {
		return nil, eris.Wrap(err, "pest: list")
	}
	return out, nil
}

func (r *pestRepo) CountBySeverity(ctx context.Context, location string) (_ map[string]int64, err error) {
	defer func(start time.Time) { metrics.RecordDBQuery("select", table, start, err) }(time.Now())

	var rows []struct {
		Severity string
		N        int64
	}
	err = r.scoped(ctx, location).
		Select("severity, COUNT(*) AS n").
		Group("severity").
		Scan(&rows).Error
	if err != nil {
		return nil, eris.Wrap(err, "pest: count by severity")
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Severity] = row.N
	}
	return out, nil
}
