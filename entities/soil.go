package entities

import "time"

// SoilData is a soil health snapshot for one location.
type SoilData struct {
	ID              uint      `gorm:"primaryKey" json:"id,omitempty"`
	Location        string    `gorm:"index;not null" json:"location"`
	PHLevel         float64   `gorm:"column:ph_level" json:"ph_level"`
	NitrogenLevel   float64   `json:"nitrogen_level"`
	PhosphorusLevel float64   `json:"phosphorus_level"`
	PotassiumLevel  float64   `json:"potassium_level"`
	OrganicMatter   float64   `json:"organic_matter"`
	MoistureContent float64   `json:"moisture_content"`
	TestDate        string    `gorm:"index" json:"test_date"` // YYYY-MM-DD
	CreatedAt       time.Time `json:"created_at,omitempty"`
}

func (SoilData) TableName() string { return "soil_data" }
