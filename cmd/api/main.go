package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"officemarket/internal/database"
	"officemarket/internal/middleware"
	"officemarket/internal/modules/notification"
	"officemarket/internal/modules/office"
	"officemarket/internal/modules/tag"
	jwtsvc "officemarket/internal/pkg/jwt"
	"officemarket/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using process environment")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	reviewerName := os.Getenv("REVIEWER_NAME")
	if reviewerName == "" {
		reviewerName = "romuel"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	officeRepo := repository.NewOfficeRepository(db)
	tagRepo := repository.NewTagRepository(db)
	userRepo := repository.NewUserRepository(db)
	notifRepo := repository.NewNotificationRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	notifService := notification.NewService(notifRepo, userRepo, reviewerName)
	notifHandler := notification.NewHandler(notifService)

	officeService := office.NewService(officeRepo, tagRepo, notifService)
	officeHandler := office.NewHandler(officeService)

	tagHandler := tag.NewHandler(tagRepo)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	api := r.Group("/api")
	{
		// public
		officeHandler.RegisterRoutes(api)
		tagHandler.RegisterRoutes(api)

		// protected
		protected := api.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			officeHandler.RegisterProtectedRoutes(protected)
			notifHandler.RegisterRoutes(protected)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
