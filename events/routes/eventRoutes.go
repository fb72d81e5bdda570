package routes

import (
	"marathon-backend/events/controllers"
	"marathon-backend/events/repositories"
	"marathon-backend/middleware"
	users_repositories "marathon-backend/users/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func EventRouterInit(
	app *fiber.App,
	db *gorm.DB,
	eventRepository repositories.EventRepository,
	userRepository users_repositories.UserRepository,
	redisClient *redis.Client,
	appCtx *middleware.AppContext,
) {
	eventController := &controllers.EventController{
		EventRepo:   eventRepository,
		UserRepo:    userRepository,
		DB:          db,
		RedisClient: redisClient,
	}

	eventRoutes := app.Group("/event", middleware.ProtectedRoute(appCtx))
	eventRoutes.Post("/create", eventController.CreateEvent)
	eventRoutes.Get("/dropdown-data", eventController.GetDropdownData)

	categoryRoutes := app.Group("/category", middleware.ProtectedRoute(appCtx))
	categoryRoutes.Post("/create", eventController.CreateCategory)

	participateInRoutes := app.Group("/participatein", middleware.ProtectedRoute(appCtx))
	participateInRoutes.Post("/create", eventController.CreateParticipationOption)
	participateInRoutes.Get("/all", eventController.GetAllParticipationOptions)
	participateInRoutes.Put("/update/:participateinId", eventController.UpdateParticipationOption)
	participateInRoutes.Delete("/delete/:participateinId", eventController.DeleteParticipationOption)
}
