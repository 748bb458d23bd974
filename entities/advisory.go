package entities

import "time"

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

type AdvisoryRecommendation struct {
	ID                 uint      `gorm:"primaryKey" json:"id,omitempty"`
	FarmerID           string    `gorm:"index" json:"farmer_id"`
	CropType           string    `json:"crop_type"`
	RecommendationType string    `json:"recommendation_type"` // soil_management|fertilizer|pest_control|irrigation
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Priority           string    `json:"priority"` // high|medium|low
	Status             string    `gorm:"index;default:pending" json:"status"`
	CreatedAt          time.Time `gorm:"index" json:"created_at,omitempty"`
}

func (AdvisoryRecommendation) TableName() string { return "advisory_recommendations" }
