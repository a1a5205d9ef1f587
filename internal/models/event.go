package models

import "time"

type Event struct {
	Title       string     `json:"title" bson:"title" validate:"required"`
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
	Location    string     `json:"location,omitempty" bson:"location,omitempty"`
	StartTime   *time.Time `json:"start_time,omitempty" bson:"start_time,omitempty"`
	EndTime     *time.Time `json:"end_time,omitempty" bson:"end_time,omitempty"`
	ImageURL    string     `json:"image_url,omitempty" bson:"image_url,omitempty"`
	Category    string     `json:"category,omitempty" bson:"category,omitempty"`
	IsFeatured  bool       `json:"is_featured" bson:"is_featured"`
}
