package handlers

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"backend/internal/models"
)

func TestSettingsResponseToleratesEmptyTeam(t *testing.T) {
	settings := models.SiteSettings{Name: "Capim das Pampas"}

	resp := settingsResponse(settings, nil)

	if resp.SiteSettings.Team == nil {
		t.Fatal("expected empty team slice, not nil")
	}
	if resp.ContactSettings.Addresses == nil || len(resp.ContactSettings.Addresses) != 0 {
		t.Fatalf("expected empty address list, got %+v", resp.ContactSettings.Addresses)
	}
}

func TestSettingsResponseDropsUnrenderableCoordinates(t *testing.T) {
	addresses := []models.Address{
		{
			ID:          primitive.NewObjectID(),
			Name:        "Loja Principal",
			Coordinates: []float64{38.7223, -9.1393},
		},
		{
			ID:          primitive.NewObjectID(),
			Name:        "Loja Estranha",
			Coordinates: []float64{400, 400},
		},
	}

	resp := settingsResponse(models.SiteSettings{}, addresses)

	if resp.ContactSettings.Addresses[0].Coordinates == nil {
		t.Fatal("expected valid coordinates kept")
	}
	if resp.ContactSettings.Addresses[1].Coordinates != nil {
		t.Fatal("expected out-of-range coordinates dropped, not errored")
	}
}

func TestSettingsResponseMirrorsContactFields(t *testing.T) {
	settings := models.SiteSettings{
		Name:     "Capim das Pampas",
		Email:    "capimdaspampas@gmail.com",
		Phone:    "+351 934 305 372",
		WhatsApp: "+351 934 305 372",
		Team:     []models.TeamMember{{ID: "1", Name: "Maria Silva"}},
	}

	resp := settingsResponse(settings, nil)

	if resp.ContactSettings.Phone != settings.Phone || resp.ContactSettings.Email != settings.Email {
		t.Fatalf("expected contact fields mirrored from settings, got %+v", resp.ContactSettings)
	}
}

func TestNormalizeProductDocumentLegacyImage(t *testing.T) {
	product, err := normalizeProductDocument(bson.M{
		"name":     "Vaso",
		"category": models.CategoryCeramics,
		"price":    15.0,
		"images":   "https://example.com/vaso.jpg",
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(product.Images) != 1 || product.Images[0].URL != "https://example.com/vaso.jpg" {
		t.Fatalf("expected legacy single-image string wrapped, got %+v", product.Images)
	}
	if product.Price.OnRequest || product.Price.Amount != 15 {
		t.Fatalf("expected legacy numeric price decoded, got %+v", product.Price)
	}
}

func TestNormalizeProductDocumentMissingImages(t *testing.T) {
	product, err := normalizeProductDocument(bson.M{
		"name":     "Ramalhete",
		"category": models.CategoryFlowers,
		"price":    0.0,
	})
	if err != nil {
		t.Fatal(err)
	}

	if product.Images == nil {
		t.Fatal("expected non-nil images slice")
	}
	if !product.Price.OnRequest {
		t.Fatalf("expected zero price decoded as on request, got %+v", product.Price)
	}
}
