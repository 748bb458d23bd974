package repositoryImp

import (
	"context"
	"errors"
	"time"

	"github.com/rotisserie/eris"
	"gorm.io/gorm"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/entities"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/metrics"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/soil/repository"
)

type soilRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SoilRepository { return &soilRepo{db} }

func (r *soilRepo) Latest(ctx context.Context, location string) (_ *entities.SoilData, err error) {
	defer func(start time.Time) { metrics.RecordDBQuery("select", "soil_data", start, err) }(time.Now())

	var s entities.SoilData
	err = r.db.WithContext(ctx).
		Where("location = ?", location).
		Order("test_date DESC, id DESC").
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "soil: latest")
	}
	return &s, nil
}
