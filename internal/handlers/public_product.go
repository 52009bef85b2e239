package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"backend/internal/models"
)

/*
GET /api/products
- public storefront read, flat product shape
- seeds defaults when the collection is empty
- filtering by category/search happens client side; the catalog is
  tens of items
*/
func GetProducts(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/products"
		defer handlePanic(c, route)

		log.Printf("[%s] hit", route)

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

		public := make([]models.PublicProduct, 0, len(products))
		for _, product := range products {
			public = append(public, product.Public())
		}

		log.Printf("[%s] returning %d products", route, len(public))
		setNoStoreHeaders(c)
		c.JSON(http.StatusOK, public)
	}
}
