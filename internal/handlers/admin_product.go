package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"backend/internal/models"
)

type ProductPayload struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	Description    string                `json:"description"`
	Price          models.Price          `json:"price"`
	Category       string                `json:"category"`
	Images         []models.Image        `json:"images"`
	Featured       bool                  `json:"featured"`
	InStock        bool                  `json:"inStock"`
	Tags           []string              `json:"tags"`
	Specifications models.Specifications `json:"specifications"`
}

type ReplaceProductsRequest struct {
	Products []ProductPayload `json:"products"`
}

func validateProductPayload(payload ProductPayload) error {
	if strings.TrimSpace(payload.Name) == "" {
		return fmt.Errorf("name required")
	}
	if !models.ValidCategory(payload.Category) {
		return fmt.Errorf("invalid category: %s", payload.Category)
	}
	return nil
}

// buildProductDocuments maps the replacement payload onto store
// documents. Identifiers that are valid ObjectID hex strings are kept
// so ids stay stable across saves; anything else gets a fresh id.
func buildProductDocuments(payloads []ProductPayload, now time.Time) ([]models.Product, error) {
	docs := make([]models.Product, 0, len(payloads))
	for _, payload := range payloads {
		if err := validateProductPayload(payload); err != nil {
			return nil, err
		}

		id := primitive.NewObjectID()
		if parsed, err := primitive.ObjectIDFromHex(strings.TrimSpace(payload.ID)); err == nil {
			id = parsed
		}

		images := payload.Images
		if images == nil {
			images = []models.Image{}
		}
		tags := payload.Tags
		if tags == nil {
			tags = []string{}
		}

		docs = append(docs, models.Product{
			ID:             id,
			Name:           strings.TrimSpace(payload.Name),
			Description:    strings.TrimSpace(payload.Description),
			Price:          payload.Price,
			Category:       payload.Category,
			Images:         images,
			Featured:       payload.Featured,
			InStock:        payload.InStock,
			Tags:           tags,
			Specifications: payload.Specifications,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}
	return docs, nil
}

/*
GET /api/admin/products
- full admin document shape, same seeding as the public read
*/
func GetAdminProducts(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/admin/products"
		defer handlePanic(c, route)

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := ensureProductsSeeded(ctx, db); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Erro ao ler produtos")
			return
		}

		cursor, err := db.Collection("products").Find(
			ctx,
			bson.M{},
			options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
		)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Erro ao ler produtos")
			return
		}
		defer cursor.Close(ctx)

		products, err := decodeProducts(ctx, cursor)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Erro ao ler produtos")
			return
		}

		log.Printf("[%s] returning %d products", route, len(products))
		setNoStoreHeaders(c)
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

/*
POST /api/admin/products
- wholesale replacement: the payload cleanly replaces the prior
  collection, no per-item merge
- concurrent saves are last-write-wins under the single-admin
  assumption
*/
func ReplaceProducts(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/admin/products"
		defer handlePanic(c, route)

		var req ReplaceProductsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		docs, err := buildProductDocuments(req.Products, time.Now())
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if _, err := db.Collection("products").DeleteMany(ctx, bson.M{}); err != nil {
			log.Printf("[%s] delete error: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "Erro interno do servidor")
			return
		}

		if len(docs) > 0 {
			inserts := make([]interface{}, 0, len(docs))
			for _, doc := range docs {
				inserts = append(inserts, doc)
			}
			if _, err := db.Collection("products").InsertMany(ctx, inserts); err != nil {
				log.Printf("[%s] insert error: %v", route, err)
				respondWithError(c, http.StatusInternalServerError, route, "Erro interno do servidor")
				return
			}
		}

		log.Printf("[%s] replaced collection with %d products", route, len(docs))
		c.JSON(http.StatusOK, gin.H{
			"success":     true,
			"message":     "Produtos guardados com sucesso",
			"lastUpdated": time.Now().Format(time.RFC3339),
		})
	}
}
