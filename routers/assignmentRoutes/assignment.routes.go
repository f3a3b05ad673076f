package assignmentRoutes

import (
	controllers "coursetrack/controllers/assignment"
	assignmentValidator "coursetrack/validators/assignment"

	"github.com/gofiber/fiber/v2"
)

// SetupAssignmentRoutes sets up the flat assignment routes
func SetupAssignmentRoutes(app *fiber.App) {
	assignmentGroup := app.Group("/assignments")

	assignmentGroup.Get("/", controllers.GetAllAssignments)
	assignmentGroup.Post("/", assignmentValidator.CreateStandalone(), controllers.CreateAssignment)
	assignmentGroup.Get("/:id", controllers.GetAssignment)
	assignmentGroup.Put("/:id", assignmentValidator.UpdateCompletion(), controllers.UpdateAssignment)
	assignmentGroup.Delete("/:id", controllers.DeleteAssignment)
}
