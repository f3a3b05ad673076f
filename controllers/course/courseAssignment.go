package controllers

import (
	"errors"
	"log"

	"coursetrack/database"
	"coursetrack/middleware"
	"coursetrack/repository"
	assignmentValidator "coursetrack/validators/assignment"

	"github.com/gofiber/fiber/v2"
)

// CreateCourseAssignment handles the nested POST /courses/:id/assignments path.
// is_completed is not accepted here; new assignments start incomplete.
func CreateCourseAssignment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	reqData, ok := c.Locals("validatedAssignment").(*assignmentValidator.AssignmentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	coordinator := repository.NewCoordinator(database.Database.Db)

	assignment, err := coordinator.CreateAssignment(uint(id), reqData.Name, reqData.DueDate, false)
	if err != nil {
		var vErr *repository.ValidationError
		if errors.As(err, &vErr) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Name and due date are required!", nil)
		}
		if errors.Is(err, repository.ErrCourseNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		log.Printf("Error creating assignment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create assignment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Assignment created successfully!", assignment)
}

// GetCourseAssignments lists one course's assignments ordered by due date.
// An unknown course id yields an empty list, matching the flat listing paths.
func GetCourseAssignments(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	repo := repository.NewAssignmentRepo(database.Database.Db)

	assignments, err := repo.ListByCourse(uint(id))
	if err != nil {
		log.Printf("Error fetching assignments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assignments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignments fetched successfully!", assignments)
}
