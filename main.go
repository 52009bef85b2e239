package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"backend/internal/config"
	"backend/internal/database"
	"backend/internal/handlers"
	"backend/internal/media"
	"backend/internal/middleware"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureProductIndexes(db); err != nil {
		log.Printf("product index warning: %v", err)
	}
	if err := database.EnsureAddressIndexes(db); err != nil {
		log.Printf("address index warning: %v", err)
	}

	uploads, err := media.NewCloudinaryUploader(
		config.AppEnv.CloudinaryURL,
		config.AppEnv.CloudinaryFolder,
	)
	if err != nil {
		log.Fatal(err)
	}

	creds := handlers.AdminCredentials{
		Password:     config.AppEnv.AdminPassword,
		PasswordHash: config.AppEnv.AdminPasswordHash,
	}

	gate := handlers.ConstructionGate{
		Enabled:  config.AppEnv.UnderConstruction,
		Password: config.AppEnv.ConstructionPassword,
		Secret:   config.AppEnv.JWTSecret,
		TTL:      config.AppEnv.SessionTTL,
	}

	loginLimiter := middleware.NewLoginRateLimiter(config.AppEnv.LoginRatePerMinute)

	r := gin.Default()

	r.GET("/api/products", handlers.GetProducts(db))
	r.GET("/api/construction-status", handlers.ConstructionStatus(gate))

	r.POST("/api/admin/login",
		loginLimiter.Middleware(),
		handlers.AdminLogin(creds, config.AppEnv.JWTSecret, config.AppEnv.SessionTTL),
	)
	r.POST("/api/construction/login",
		loginLimiter.Middleware(),
		handlers.ConstructionLogin(gate),
	)

	r.GET("/api/admin/products", handlers.GetAdminProducts(db))
	r.GET("/api/admin/settings", handlers.GetSettings(db))

	admin := r.Group("/api/admin")
	admin.Use(middleware.AdminAuth(config.AppEnv.JWTSecret))
	{
		admin.POST("/products", handlers.ReplaceProducts(db))
		admin.POST("/settings", handlers.SaveSettings(db))
		admin.POST("/upload", handlers.UploadImage(uploads))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
