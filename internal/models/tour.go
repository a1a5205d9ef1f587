package models

type Tour struct {
	Title           string   `json:"title" bson:"title" validate:"required"`
	Description     string   `json:"description,omitempty" bson:"description,omitempty"`
	GuideID         string   `json:"guide_id,omitempty" bson:"guide_id,omitempty"`
	PriceEUR        *float64 `json:"price_eur,omitempty" bson:"price_eur,omitempty" validate:"omitempty,gte=0"`
	DurationMinutes *int     `json:"duration_minutes,omitempty" bson:"duration_minutes,omitempty" validate:"omitempty,gte=0"`
	Language        string   `json:"language,omitempty" bson:"language,omitempty"`
	IsPremium       bool     `json:"is_premium" bson:"is_premium"`
}
