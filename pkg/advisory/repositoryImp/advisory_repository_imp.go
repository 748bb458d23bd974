package repositoryImp

import (
	"context"
	"errors"
	"time"

	"github.com/rotisserie/eris"
	"gorm.io/gorm"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/entities"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/advisory/repository"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/metrics"
)

const table = "advisory_recommendations"

type advisoryRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.AdvisoryRepository { return &advisoryRepo{db} }

func (r *advisoryRepo) List(ctx context.Context, farmerID, status string) (out []entities.AdvisoryRecommendation, err error) {
	defer func(start time.Time) { metrics.RecordDBQuery("select", table, start, err) }(time.Now())

	q := r.db.WithContext(ctx).Model(&entities.AdvisoryRecommendation{})
	if farmerID != "" {
		q = q.Where("farmer_id = ?", farmerID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	out = []entities.AdvisoryRecommendation{}
	if err = q.Order("created_at DESC, id DESC").Find(&out).Error; err != nil {
		return nil, eris.Wrap(err, "advisory: list")
	}
	return out, nil
}

func (r *advisoryRepo) Create(ctx context.Context, rec *entities.AdvisoryRecommendation) (err error) {
	defer func(start time.Time) { metrics.RecordDBQuery("insert", table, start, err) }(time.Now())

	if err = r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return eris.Wrap(err, "advisory: create")
	}
	return nil
}

func (r *advisoryRepo) UpdateStatus(ctx context.Context, id uint, status string) (_ *entities.AdvisoryRecommendation, err error) {
	defer func(start time.Time) { metrics.RecordDBQuery("update", table, start, err) }(time.Now())

	var rec entities.AdvisoryRecommendation
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&rec, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrNotFound
			}
			return err
		}
		if err := tx.Model(&rec).Update("status", status).Error; err != nil {
			return err
		}
		rec.Status = status
		return nil
	})
	if err != nil {
		if eris.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		return nil, eris.Wrap(err, "advisory: update status")
	}
	return &rec, nil
}

func (r *advisoryRepo) CountByStatus(ctx context.Context) (_ map[string]int64, err error) {
	defer func(start time.Time) { metrics.RecordDBQuery("select", table, start, err) }(time.Now())

	var rows []struct {
		Status string
		N      int64
	}
	err = r.db.WithContext(ctx).
		Model(&entities.AdvisoryRecommendation{}).
		Select("status, COUNT(*) AS n").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, eris.Wrap(err, "advisory: count by status")
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.N
	}
	return out, nil
}
