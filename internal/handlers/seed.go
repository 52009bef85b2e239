package handlers

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"backend/internal/models"
)

// First-read materialization: empty collections are filled with the
// shop's default records before the read is served. There is no
// scheduled seeding job.

func ensureProductsSeeded(ctx context.Context, db *mongo.Database) error {
	count, err := db.Collection("products").CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	defaults := models.DefaultProducts()
	docs := make([]interface{}, 0, len(defaults))
	for _, product := range defaults {
		product.CreatedAt = now
		product.UpdatedAt = now
		docs = append(docs, product)
	}

	_, err = db.Collection("products").InsertMany(ctx, docs)
	return err
}

func ensureSettingsSeeded(ctx context.Context, db *mongo.Database) (models.SiteSettings, error) {
	var settings models.SiteSettings
	err := db.Collection("site_settings").FindOne(ctx, bson.M{}).Decode(&settings)
	if err == nil {
		return settings, nil
	}
	if err != mongo.ErrNoDocuments {
		return models.SiteSettings{}, err
	}

	settings = models.DefaultSiteSettings()
	now := time.Now()
	settings.CreatedAt = now
	settings.UpdatedAt = now

	res, err := db.Collection("site_settings").InsertOne(ctx, settings)
	if err != nil {
		return models.SiteSettings{}, err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		settings.ID = id
	}
	return settings, nil
}

func ensureAddressesSeeded(ctx context.Context, db *mongo.Database) ([]models.Address, error) {
	cursor, err := db.Collection("addresses").Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, err
	}

	addresses := make([]models.Address, 0)
	if err := cursor.All(ctx, &addresses); err != nil {
		return nil, err
	}
	if len(addresses) > 0 {
		return addresses, nil
	}

	address := models.DefaultAddress()
	now := time.Now()
	address.CreatedAt = now
	address.UpdatedAt = now

	res, err := db.Collection("addresses").InsertOne(ctx, address)
	if err != nil {
		return nil, err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		address.ID = id
	}
	return []models.Address{address}, nil
}
