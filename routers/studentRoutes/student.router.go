package studentRoutes

import (
	controllers "prepcourse/controllers/student"
	"prepcourse/validators"
	studentValidator "prepcourse/validators/student"

	"github.com/gofiber/fiber/v2"
)

// SetupStudentRoutes sets up admin student management routes
func SetupStudentRoutes(app *fiber.App) {
	studentGroup := app.Group("/api/students/student")
	id := validators.RequireParams("id")

	studentGroup.Post("/", studentValidator.CreateStudents(), controllers.CreateStudents)
	studentGroup.Get("/", controllers.GetAllStudents)
	studentGroup.Get("/:id", id, controllers.GetStudent)
	studentGroup.Put("/:id", id, studentValidator.UpdateStudent(), controllers.UpdateStudent)
	studentGroup.Delete("/:id", id, controllers.DeleteStudent)
	studentGroup.Put("/:id/password", id, studentValidator.ChangePassword(), controllers.ChangeStudentPassword)

	// Purchases
	studentGroup.Post("/:id/courses", id, studentValidator.PurchasedCourse(), controllers.AddPurchasedCourse)
	studentGroup.Delete("/:id/courses", id, studentValidator.PurchasedCourse(), controllers.RemovePurchasedCourse)
}
