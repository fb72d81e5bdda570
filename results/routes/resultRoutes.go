package routes

import (
	"marathon-backend/middleware"
	"marathon-backend/results/controllers"
	"marathon-backend/results/repositories"
	users_repositories "marathon-backend/users/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ResultRouterInit(
	app *fiber.App,
	db *gorm.DB,
	resultRepository repositories.ResultRepository,
	userRepository users_repositories.UserRepository,
	appCtx *middleware.AppContext,
) {
	resultController := &controllers.ResultController{
		ResultRepo: resultRepository,
		UserRepo:   userRepository,
		DB:         db,
	}

	resultRoutes := app.Group("/results", middleware.ProtectedRoute(appCtx))
	resultRoutes.Post("/upload-excel", resultController.UploadResultsExcel)
	resultRoutes.Post("/add", resultController.AddResult)
	resultRoutes.Get("/all", resultController.GetAllResults)
	resultRoutes.Get("/:resultId", resultController.GetResultByID)
	resultRoutes.Put("/update/:resultId", resultController.UpdateResult)
	resultRoutes.Delete("/delete/:resultId", resultController.DeleteResult)
}
