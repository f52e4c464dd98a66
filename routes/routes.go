package routes

import (
	"log"

	"courseadmin/client"
	"courseadmin/config"
	"courseadmin/console"
	"courseadmin/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, logger *log.Logger) {
	// Courses routes
	coursesController := controllers.NewCoursesController(db)
	courses := app.Group("/api/courses")
	courses.Get("/", coursesController.ListCourses)
	courses.Get("/:id", coursesController.GetCourse)
	courses.Post("/", coursesController.CreateCourse)
	courses.Put("/:id", coursesController.UpdateCourse)
	courses.Delete("/:id", coursesController.DeleteCourse)

	// Sections routes
	sectionsController := controllers.NewSectionsController(db)
	sections := app.Group("/api/sections")
	sections.Get("/course/:courseId", sectionsController.ListByCourse)
	sections.Post("/", sectionsController.CreateSection)
	sections.Put("/:id", sectionsController.UpdateSection)
	sections.Delete("/:id", sectionsController.DeleteSection)

	// Activities routes
	activitiesController := controllers.NewActivitiesController(db)
	activities := app.Group("/api/activities")
	activities.Post("/", activitiesController.CreateActivity)
	activities.Delete("/:id", activitiesController.DeleteActivity)

	// Admin console, talking to the API above through the HTTP client
	api := client.New(cfg.APIBaseURL, logger)
	adminConsole := console.New(api, logger)
	adminConsole.Register(app)
}
