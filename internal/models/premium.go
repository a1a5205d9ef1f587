package models

// PremiumContent is paid content such as audio guides, AR tours, 3D scenes
// or stories (content_type: audio|ar|3d|story).
type PremiumContent struct {
	Title       string   `json:"title" bson:"title" validate:"required"`
	ContentType string   `json:"content_type" bson:"content_type" validate:"required"`
	PriceEUR    *float64 `json:"price_eur" bson:"price_eur" validate:"required,gte=0"`
	AssetURL    string   `json:"asset_url,omitempty" bson:"asset_url,omitempty" validate:"omitempty,url"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	IsActive    *bool    `json:"is_active" bson:"is_active"`
}

// Normalize applies schema defaults for fields the client omitted.
func (p *PremiumContent) Normalize() {
	if p.IsActive == nil {
		active := true
		p.IsActive = &active
	}
}
