package entities

import "time"

type PestDisease struct {
	ID                   uint      `gorm:"primaryKey" json:"id,omitempty"`
	CropType             string    `gorm:"index;not null" json:"crop_type"`
	PestName             *string   `json:"pest_name"`
	DiseaseName          *string   `json:"disease_name"`
	Severity             string    `gorm:"index" json:"severity"` // Low|Moderate|Severe
	AffectedArea         float64   `json:"affected_area"`
	TreatmentRecommended string    `json:"treatment_recommended"`
	DateReported         string    `gorm:"index" json:"date_reported"`
	Location             string    `json:"location"`
	CreatedAt            time.Time `json:"created_at,omitempty"`
}

func (PestDisease) TableName() string { return "pest_disease_data" }
