package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"backend/internal/models"
)

type SiteSettingsPayload struct {
	Name     string              `json:"name"`
	Email    string              `json:"email"`
	Phone    string              `json:"phone"`
	WhatsApp string              `json:"whatsapp"`
	Team     []models.TeamMember `json:"team"`
}

type ContactSettingsPayload struct {
	Phone     string           `json:"phone"`
	Email     string           `json:"email"`
	Addresses []AddressPayload `json:"addresses"`
}

type SaveSettingsRequest struct {
	SiteSettings    SiteSettingsPayload    `json:"siteSettings"`
	ContactSettings ContactSettingsPayload `json:"contactSettings"`
}

type SettingsResponse struct {
	SiteSettings    SiteSettingsView    `json:"siteSettings"`
	ContactSettings ContactSettingsView `json:"contactSettings"`
}

type SiteSettingsView struct {
	Name     string              `json:"name"`
	Email    string              `json:"email"`
	Phone    string              `json:"phone"`
	WhatsApp string              `json:"whatsapp"`
	Team     []models.TeamMember `json:"team"`
}

type ContactSettingsView struct {
	Phone     string        `json:"phone"`
	Email     string        `json:"email"`
	Addresses []AddressView `json:"addresses"`
}

type AddressView struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Address      string              `json:"address"`
	Coordinates  []float64           `json:"coordinates,omitempty"`
	OpeningHours models.OpeningHours `json:"openingHours"`
}

func settingsResponse(settings models.SiteSettings, addresses []models.Address) SettingsResponse {
	team := settings.Team
	if team == nil {
		team = []models.TeamMember{}
	}

	views := make([]AddressView, 0, len(addresses))
	for _, address := range addresses {
		view := AddressView{
			ID:           address.ID.Hex(),
			Name:         address.Name,
			Address:      address.Address,
			OpeningHours: address.OpeningHours,
		}
		if address.RenderableCoordinates() {
			view.Coordinates = address.Coordinates
		}
		views = append(views, view)
	}

	return SettingsResponse{
		SiteSettings: SiteSettingsView{
			Name:     settings.Name,
			Email:    settings.Email,
			Phone:    settings.Phone,
			WhatsApp: settings.WhatsApp,
			Team:     team,
		},
		ContactSettings: ContactSettingsView{
			Phone:     settings.Phone,
			Email:     settings.Email,
			Addresses: views,
		},
	}
}

/*
GET /api/admin/settings
- public read: the storefront renders contact pages from this
- seeds the settings singleton and the default address when absent
*/
func GetSettings(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/admin/settings"
		defer handlePanic(c, route)

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		settings, err := ensureSettingsSeeded(ctx, db)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Erro ao ler configurações")
			return
		}

		addresses, err := ensureAddressesSeeded(ctx, db)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Erro ao ler configurações")
			return
		}

		setNoStoreHeaders(c)
		c.JSON(http.StatusOK, settingsResponse(settings, addresses))
	}
}

/*
POST /api/admin/settings
- upserts the settings singleton wholesale
- reconciles addresses by id: native ids update, temporary ids insert,
  absent native ids delete
- per-address failures are logged and the loop continues; the
  reconciliation is best effort, not transactional
*/
func SaveSettings(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/admin/settings"
		defer handlePanic(c, route)

		var req SaveSettingsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		now := time.Now()
		team := req.SiteSettings.Team
		if team == nil {
			team = []models.TeamMember{}
		}

		update := bson.M{
			"$set": bson.M{
				"name":      strings.TrimSpace(req.SiteSettings.Name),
				"email":     strings.TrimSpace(req.SiteSettings.Email),
				"phone":     strings.TrimSpace(req.SiteSettings.Phone),
				"whatsapp":  strings.TrimSpace(req.SiteSettings.WhatsApp),
				"team":      team,
				"updatedAt": now,
			},
			"$setOnInsert": bson.M{"createdAt": now},
		}

		if _, err := db.Collection("site_settings").UpdateOne(
			ctx,
			bson.M{},
			update,
			options.Update().SetUpsert(true),
		); err != nil {
			log.Printf("[%s] settings upsert error: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "Erro interno do servidor")
			return
		}

		plan := planAddressSync(req.ContactSettings.Addresses)

		if _, err := db.Collection("addresses").DeleteMany(
			ctx,
			bson.M{"_id": bson.M{"$nin": plan.KeepIDs}},
		); err != nil {
			log.Printf("[%s] address delete error: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "Erro interno do servidor")
			return
		}

		for id, payload := range plan.Updates {
			_, err := db.Collection("addresses").UpdateByID(ctx, id, bson.M{
				"$set": bson.M{
					"name":         strings.TrimSpace(payload.Name),
					"address":      strings.TrimSpace(payload.Address),
					"coordinates":  payload.Coordinates,
					"openingHours": payload.OpeningHours,
					"active":       true,
					"updatedAt":    now,
				},
			})
			if err != nil {
				log.Printf("[%s] address update failed for %s: %v", route, id.Hex(), err)
			}
		}

		for _, payload := range plan.Inserts {
			address := models.Address{
				Name:         strings.TrimSpace(payload.Name),
				Address:      strings.TrimSpace(payload.Address),
				Coordinates:  payload.Coordinates,
				OpeningHours: payload.OpeningHours,
				Active:       true,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if _, err := db.Collection("addresses").InsertOne(ctx, address); err != nil {
				log.Printf("[%s] address insert failed: %v", route, err)
			}
		}

		log.Printf(
			"[%s] saved settings: updates=%d inserts=%d kept=%d",
			route, len(plan.Updates), len(plan.Inserts), len(plan.KeepIDs),
		)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Configurações guardadas com sucesso",
		})
	}
}
