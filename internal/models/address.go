package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DaySchedule struct {
	Open   string `bson:"open" json:"open"`
	Close  string `bson:"close" json:"close"`
	Closed bool   `bson:"closed" json:"closed"`
}

type OpeningHours struct {
	Monday    DaySchedule `bson:"monday" json:"monday"`
	Tuesday   DaySchedule `bson:"tuesday" json:"tuesday"`
	Wednesday DaySchedule `bson:"wednesday" json:"wednesday"`
	Thursday  DaySchedule `bson:"thursday" json:"thursday"`
	Friday    DaySchedule `bson:"friday" json:"friday"`
	Saturday  DaySchedule `bson:"saturday" json:"saturday"`
	Sunday    DaySchedule `bson:"sunday" json:"sunday"`
}

// Address is one physical location with its own hours. Coordinates are
// [latitude, longitude]; an absent or out-of-range pair means no map
// marker, not an error.
type Address struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Address      string             `bson:"address" json:"address"`
	Coordinates  []float64          `bson:"coordinates,omitempty" json:"coordinates,omitempty"`
	OpeningHours OpeningHours       `bson:"openingHours" json:"openingHours"`
	Active       bool               `bson:"active" json:"-"`
	CreatedAt    time.Time          `bson:"createdAt,omitempty" json:"-"`
	UpdatedAt    time.Time          `bson:"updatedAt,omitempty" json:"-"`
}

// RenderableCoordinates reports whether the coordinate pair is present
// and inside the valid latitude/longitude ranges.
func (a Address) RenderableCoordinates() bool {
	if len(a.Coordinates) != 2 {
		return false
	}
	lat, lng := a.Coordinates[0], a.Coordinates[1]
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
