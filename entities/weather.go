package entities

import "time"

// WeatherData is a weather snapshot for one location and day.
type WeatherData struct {
	ID             uint      `gorm:"primaryKey" json:"id,omitempty"`
	Location       string    `gorm:"index;not null" json:"location"`
	Date           string    `gorm:"index;not null" json:"date"` // YYYY-MM-DD
	TemperatureMin float64   `json:"temperature_min"`
	TemperatureMax float64   `json:"temperature_max"`
	Humidity       float64   `json:"humidity"`
	Rainfall       float64   `json:"rainfall"`
	WindSpeed      float64   `json:"wind_speed"`
	Pressure       float64   `json:"pressure"`
	CreatedAt      time.Time `json:"created_at,omitempty"`
}

func (WeatherData) TableName() string { return "weather_data" }
