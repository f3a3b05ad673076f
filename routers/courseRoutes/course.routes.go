package courseRoutes

import (
	controllers "coursetrack/controllers/course"
	assignmentValidator "coursetrack/validators/assignment"
	courseValidator "coursetrack/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all course routes, including the nested
// assignment paths scoped to one course.
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/courses")

	courseGroup.Get("/", controllers.GetAllCourses)
	courseGroup.Post("/", courseValidator.CourseBody(), controllers.CreateCourse)
	courseGroup.Put("/:id", courseValidator.CourseBody(), controllers.UpdateCourse)
	courseGroup.Delete("/:id", controllers.DeleteCourse)

	courseGroup.Post("/:id/assignments", assignmentValidator.CreateForCourse(), controllers.CreateCourseAssignment)
	courseGroup.Get("/:id/assignments", controllers.GetCourseAssignments)
}
