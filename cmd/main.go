package main

import (
	"context"

	"marathon-backend/config"
	"marathon-backend/db"
	"marathon-backend/middleware"
	"marathon-backend/token"
	"marathon-backend/utils"

	// Repositories
	event_repositories "marathon-backend/events/repositories"
	registration_repositories "marathon-backend/registrations/repositories"
	result_repositories "marathon-backend/results/repositories"
	users_repositories "marathon-backend/users/repositories"

	// Routes
	event_routes "marathon-backend/events/routes"
	registration_routes "marathon-backend/registrations/routes"
	result_routes "marathon-backend/results/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	config.InitLogger()

	if err := godotenv.Load(".env"); err != nil {
		config.Logger.Fatal("Error loading .env file", zap.Error(err))
	}

	app := fiber.New()
	middleware.InitCors(app)

	database := config.ConfigureDatabase()
	port := config.GetEnv("PORT")
	ctx := context.Background()

	redisClient := config.InitRedisServer(ctx)

	tokenKey := config.GetEnv("TOKEN_SYMMETRIC_KEY")
	tokenMaker, err := token.NewPasetoMaker(tokenKey)
	if err != nil {
		config.Logger.Fatal("Cannot create token maker", zap.Error(err))
	}

	utils.InitializeMailer()
	if utils.GetMailer() == nil {
		config.Logger.Fatal("Mailer not initialized")
	}

	if err := utils.InitializeDateLocation(); err != nil {
		config.Logger.Fatal("Failed to initialize date location", zap.Error(err))
	}

	// Serve generated error reports and uploaded assets
	app.Static("/public", "./public")
	app.Static("/uploads", "./uploads")

	// Repositories
	resultRepo := result_repositories.NewResultRepository(database)
	registrationRepo := registration_repositories.NewRegistrationRepository(database)
	eventRepo := event_repositories.NewEventRepository(database)
	userRepo := users_repositories.NewUserRepository(database)

	appCtx := &middleware.AppContext{
		PasetoMaker: tokenMaker,
		Ctx:         ctx,
		RedisClient: redisClient,
	}

	// Routes
	result_routes.ResultRouterInit(app, database, resultRepo, userRepo, appCtx)
	registration_routes.RegistrationRouterInit(app, database, registrationRepo, eventRepo, userRepo, appCtx)
	event_routes.EventRouterInit(app, database, eventRepo, userRepo, redisClient, appCtx)

	if config.GetEnvOrDefault("SEED_INITIAL_EVENT", "false") == "true" {
		if err := db.SeedInitialEvent(database, "system"); err != nil {
			config.Logger.Error("Initial event seeding failed", zap.Error(err))
		} else {
			config.Logger.Info("Initial event seeding completed")
		}
	}

	// Background cleanup of expired report files and cache entries
	go utils.RunScheduledCleanup(redisClient)

	config.Logger.Info("Server starting", zap.String("port", port))
	config.Logger.Fatal("Server failed", zap.String("port", port), zap.Error(app.Listen(":"+port)))
}
