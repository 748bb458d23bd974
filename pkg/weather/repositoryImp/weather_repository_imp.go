package repositoryImp

import (
	"context"
	"errors"
	"time"

	"github.com/rotisserie/eris"
	"gorm.io/gorm"

	"github.com/Divyaaravichandran/Smart-crop-advisory-system/entities"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/metrics"
	"github.com/Divyaaravichandran/Smart-crop-advisory-system/pkg/weather/repository"
)

const table = "weather_data"

type weatherRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.WeatherRepository { return &weatherRepo{db} }

func (r *weatherRepo) Latest(ctx context.Context, location string) (out *entities.WeatherData, err error) {
	defer func(start time.Time) { metrics.RecordDBQuery("select", table, start, err) }(time.Now())

	var w entities.WeatherData
	err = r.db.WithContext(ctx).
		Where("location = ?", location).
		Order("date DESC, id ASC").
		First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "weather: latest")
	}
	return &w, nil
}

func (r *weatherRepo) Recent(ctx context.Context, location string, days int) (out []entities.WeatherData, err error) {
	defer func(start time.Time) { metrics.RecordDBQuery("select", table, start, err) }(time.Now())

	out = []entities.WeatherData{}
	err = r.db.WithContext(ctx).
		Where("location = ?", location).
		Order("date DESC, id ASC").
		Limit(days).
		Find(&out).Error
	if err != nil {
		return nil, eris.Wrap(err, "weather: recent")
	}
	return out, nil
}

func (r *weatherRepo) Locations(ctx context.Context) (out []string, err error) {
	defer func(start time.Time) { metrics.RecordDBQuery("select", table, start, err) }(time.Now())

	out = []string{}
	err = r.db.WithContext(ctx).
		Model(&entities.WeatherData{}).
		Distinct().
		Order("location").
		Pluck("location", &out).Error
	if err != nil {
		return nil, eris.Wrap(err, "weather: locations")
	}
	return out, nil
}
