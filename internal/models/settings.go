package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TeamMember struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Photo string `bson:"photo,omitempty" json:"photo,omitempty"`
}

// SiteSettings is a logical singleton: one document per deployment.
type SiteSettings struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone" json:"phone"`
	WhatsApp  string             `bson:"whatsapp" json:"whatsapp"`
	Team      []TeamMember       `bson:"team" json:"team"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"-"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty" json:"-"`
}
