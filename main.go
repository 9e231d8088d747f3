package main

import (
	"net/http"
	"os"

	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/dwoodsteinhoff/warbler-Twitter-clone/database"
	"github.com/dwoodsteinhoff/warbler-Twitter-clone/handlers"
	"github.com/dwoodsteinhoff/warbler-Twitter-clone/logger"
	"github.com/dwoodsteinhoff/warbler-Twitter-clone/repositories"
	"github.com/dwoodsteinhoff/warbler-Twitter-clone/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	logger.InitLogger()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "warbler.db"
	}

	db, err := database.New(dsn)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "development-key"
		logrus.Warn("SESSION_SECRET not set, using development key")
	}
	store := sessions.NewCookieStore([]byte(secret))

	userRepo := repositories.NewUserRepository(db)
	messageRepo := repositories.NewMessageRepository(db)
	handler := handlers.NewHandler(userRepo, messageRepo, store)

	router := routes.SetupRoutes(handler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	logrus.Infof("Server running on port %s", port)
	logrus.Fatal(http.ListenAndServe(":"+port, router))
}
