package models

type Guide struct {
	Name      string   `json:"name" bson:"name" validate:"required"`
	Bio       string   `json:"bio,omitempty" bson:"bio,omitempty"`
	Languages []string `json:"languages" bson:"languages"`
	Rating    *float64 `json:"rating,omitempty" bson:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	Phone     string   `json:"phone,omitempty" bson:"phone,omitempty"`
	Email     string   `json:"email,omitempty" bson:"email,omitempty"`
	AvatarURL string   `json:"avatar_url,omitempty" bson:"avatar_url,omitempty"`
}

// Normalize replaces a nil languages list with an empty slice so the record
// carries [] rather than null.
func (g *Guide) Normalize() {
	if g.Languages == nil {
		g.Languages = []string{}
	}
}
