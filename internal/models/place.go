package models

// Place is a location or business listed on the platform. It is the only
// entity that goes through summary enrichment before being persisted.
type Place struct {
	Name          string   `json:"name" bson:"name" validate:"required"`
	Type          string   `json:"type" bson:"type" validate:"required"`
	Description   string   `json:"description,omitempty" bson:"description,omitempty"`
	Address       string   `json:"address,omitempty" bson:"address,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty" bson:"longitude,omitempty"`
	Images        []string `json:"images" bson:"images"`
	IsRecommended bool     `json:"is_recommended" bson:"is_recommended"`
	ContactPhone  string   `json:"contact_phone,omitempty" bson:"contact_phone,omitempty"`
	ContactEmail  string   `json:"contact_email,omitempty" bson:"contact_email,omitempty"`
	Website       string   `json:"website,omitempty" bson:"website,omitempty"`
	PriceLevel    *int     `json:"price_level,omitempty" bson:"price_level,omitempty" validate:"omitempty,gte=1,lte=5"`
	Tags          []string `json:"tags" bson:"tags"`
}

// Normalize replaces nil list fields with empty slices so the record carries
// [] rather than null, in storage and in responses alike.
func (p *Place) Normalize() {
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
}

// Enriched returns a copy of p with images and description overridden.
// Empty overrides leave the caller-supplied values untouched, so enrichment
// can never clobber data the client sent.
func (p Place) Enriched(images []string, description string) Place {
	if len(images) > 0 {
		p.Images = images
	}
	if description != "" {
		p.Description = description
	}
	return p
}
