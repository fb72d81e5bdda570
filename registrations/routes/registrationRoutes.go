package routes

import (
	event_repositories "marathon-backend/events/repositories"
	"marathon-backend/middleware"
	"marathon-backend/registrations/controllers"
	"marathon-backend/registrations/repositories"
	users_repositories "marathon-backend/users/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func RegistrationRouterInit(
	app *fiber.App,
	db *gorm.DB,
	registrationRepository repositories.RegistrationRepository,
	eventRepository event_repositories.EventRepository,
	userRepository users_repositories.UserRepository,
	appCtx *middleware.AppContext,
) {
	registrationController := &controllers.RegistrationController{
		RegistrationRepo: registrationRepository,
		EventRepo:        eventRepository,
		UserRepo:         userRepository,
		DB:               db,
	}

	registrationRoutes := app.Group("/event-registration", middleware.ProtectedRoute(appCtx))
	registrationRoutes.Post("/register", registrationController.Register)
	registrationRoutes.Get("/all", registrationController.GetAllRegistrations)
	registrationRoutes.Get("/my-registrations", registrationController.GetMyRegistrations)
	registrationRoutes.Get("/:registrationId", registrationController.GetRegistrationByID)
	registrationRoutes.Put("/update/:registrationId", registrationController.UpdateRegistration)
	registrationRoutes.Delete("/delete/:registrationId", registrationController.DeleteRegistration)
}
