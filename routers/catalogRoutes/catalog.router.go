package catalogRoutes

import (
	controllers "prepcourse/controllers/catalog"
	"prepcourse/validators"
	catalogValidator "prepcourse/validators/catalog"

	"github.com/gofiber/fiber/v2"
)

// SetupCatalogRoutes registers CRUD for courses, subjects, topics and questions
func SetupCatalogRoutes(app *fiber.App) {
	id := validators.RequireParams("id")

	courses := app.Group("/api/courses")
	courses.Post("/", catalogValidator.CreateCourse(), controllers.CreateCourse)
	courses.Get("/", controllers.GetAllCourses)
	courses.Get("/:id", id, controllers.GetCourse)
	courses.Put("/:id", id, catalogValidator.UpdateCourse(), controllers.UpdateCourse)
	courses.Delete("/:id", id, controllers.DeleteCourse)

	subjects := app.Group("/api/subjects")
	subjects.Post("/", catalogValidator.CreateSubject(), controllers.CreateSubject)
	subjects.Get("/", controllers.GetAllSubjects)
	subjects.Get("/course/:courseId", validators.RequireParams("courseId"), controllers.GetSubjectsByCourse)
	subjects.Get("/:id", id, controllers.GetSubject)
	subjects.Put("/:id", id, catalogValidator.UpdateSubject(), controllers.UpdateSubject)
	subjects.Delete("/:id", id, controllers.DeleteSubject)

	topics := app.Group("/api/topics")
	topics.Post("/", catalogValidator.CreateTopic(), controllers.CreateTopic)
	topics.Get("/subject/:subjectId", validators.RequireParams("subjectId"), controllers.GetTopicsBySubject)
	topics.Get("/:id", id, controllers.GetTopic)
	topics.Put("/:id", id, catalogValidator.UpdateTopic(), controllers.UpdateTopic)
	topics.Delete("/:id", id, controllers.DeleteTopic)

	questions := app.Group("/api/questions")
	questions.Post("/", catalogValidator.CreateQuestion(), controllers.CreateQuestion)
	questions.Get("/topic/:topicId", validators.RequireParams("topicId"), controllers.GetQuestionsByTopic)
	questions.Get("/:id", id, controllers.GetQuestion)
	questions.Put("/:id", id, catalogValidator.UpdateQuestion(), controllers.UpdateQuestion)
	questions.Delete("/:id", id, controllers.DeleteQuestion)
}
