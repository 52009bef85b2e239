// Package client is the consumer-side kit for the catalog backend: the
// product and settings accessors the storefront and admin views read
// from, plus the session marker for the admin gate.
package client

// Product is the flat storefront shape served by GET /api/products.
type Product struct {
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

type TeamMember struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Photo string `json:"photo,omitempty"`
}

type SiteSettings struct {
	Name     string       `json:"name"`
	Email    string       `json:"email"`
	Phone    string       `json:"phone"`
	WhatsApp string       `json:"whatsapp"`
	Team     []TeamMember `json:"team"`
}

type DaySchedule struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

type OpeningHours struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

type Address struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Address      string       `json:"address"`
	Coordinates  []float64    `json:"coordinates,omitempty"`
	OpeningHours OpeningHours `json:"openingHours"`
}

type ContactSettings struct {
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Addresses []Address `json:"addresses"`
}

type SettingsPayload struct {
	SiteSettings    SiteSettings    `json:"siteSettings"`
	ContactSettings ContactSettings `json:"contactSettings"`
}
