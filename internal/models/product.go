package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CategoryFlowers  = "flores"
	CategoryCeramics = "ceramica"
)

func ValidCategory(category string) bool {
	return category == CategoryFlowers || category == CategoryCeramics
}

type Image struct {
	URL      string `bson:"url" json:"url"`
	Alt      string `bson:"alt,omitempty" json:"alt,omitempty"`
	PublicID string `bson:"publicId,omitempty" json:"publicId,omitempty"`
}

type Specifications struct {
	Dimensions string `bson:"dimensions,omitempty" json:"dimensions,omitempty"`
	Material   string `bson:"material,omitempty" json:"material,omitempty"`
	Weight     string `bson:"weight,omitempty" json:"weight,omitempty"`
	Care       string `bson:"care,omitempty" json:"care,omitempty"`
}

type Product struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Description    string             `bson:"description" json:"description"`
	Price          Price              `bson:"price" json:"price"`
	Category       string             `bson:"category" json:"category"`
	Images         []Image            `bson:"images" json:"images"`
	Featured       bool               `bson:"featured" json:"featured"`
	InStock        bool               `bson:"inStock" json:"inStock"`
	Tags           []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	Specifications Specifications     `bson:"specifications,omitempty" json:"specifications,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PublicProduct is the flat shape the storefront consumes: one image
// URL and an availability flag, price in the legacy bare-number form.
type PublicProduct struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	OnRequest   bool    `json:"onRequest"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Available   bool    `json:"available"`
	Featured    bool    `json:"featured"`
}

const defaultProductImage = "/images/default.jpg"

func (p Product) Public() PublicProduct {
	image := defaultProductImage
	if len(p.Images) > 0 {
		image = p.Images[0].URL
	}
	return PublicProduct{
		ID:          p.ID.Hex(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.LegacyAmount(),
		OnRequest:   p.Price.OnRequest,
		Category:    p.Category,
		Image:       image,
		Available:   p.InStock,
		Featured:    p.Featured,
	}
}
