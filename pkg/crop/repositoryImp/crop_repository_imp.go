package repositoryImp

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"gorm.io/gorm"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/entities"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/crop/repository"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/metrics"
)

type cropRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropRepository { return &cropRepo{db} }

func (r *cropRepo) List(ctx context.Context, sensorID string, limit int) (out []entities.CropData, err error) {
	defer func(start time.Time) { metrics.RecordDBQuery("select", "crop_data", start, err) }(time.Now())

	q := r.db.WithContext(ctx).Model(&entities.CropData{})
	if sensorID != "" {
		q = q.Where("sensor_id = ?", sensorID)
	}
	out = []entities.CropData{}
	if err = q.Order("timestamp DESC, id ASC").Limit(limit).Find(&out).Error; err != nil {
		return nil, eris.Wrap(err, "crop: list")
	}
	return out, nil
}
