package models

// Booking references its resource by a plain string id; no cross-collection
// check is performed. ResourceType is conventionally one of
// tour|guide|place|event and Status one of pending|confirmed|cancelled,
// but both are accepted as free strings.
type Booking struct {
	UserName     string   `json:"user_name" bson:"user_name" validate:"required"`
	UserEmail    string   `json:"user_email" bson:"user_email" validate:"required"`
	ResourceType string   `json:"resource_type" bson:"resource_type" validate:"required"`
	ResourceID   string   `json:"resource_id" bson:"resource_id" validate:"required"`
	Guests       int      `json:"guests" bson:"guests" validate:"omitempty,gte=1"`
	Notes        string   `json:"notes,omitempty" bson:"notes,omitempty"`
	AmountEUR    *float64 `json:"amount_eur,omitempty" bson:"amount_eur,omitempty" validate:"omitempty,gte=0"`
	Status       string   `json:"status" bson:"status"`
}

// Normalize applies schema defaults for fields the client omitted.
func (b *Booking) Normalize() {
	if b.Guests == 0 {
		b.Guests = 1
	}
	if b.Status == "" {
		b.Status = "pending"
	}
}
