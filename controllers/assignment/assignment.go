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

func GetAllAssignments(c *fiber.Ctx) error {
	repo := repository.NewAssignmentRepo(database.Database.Db)

	assignments, err := repo.ListAll()
	if err != nil {
		log.Printf("Error fetching assignments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assignments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignments fetched successfully!", assignments)
}

func GetAssignment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid assignment id!", nil)
	}

	repo := repository.NewAssignmentRepo(database.Database.Db)

	assignment, err := repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
		}
		log.Printf("Error fetching assignment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assignment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignment fetched successfully!", assignment)
}

func CreateAssignment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAssignment").(*assignmentValidator.StandaloneAssignmentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	coordinator := repository.NewCoordinator(database.Database.Db)

	assignment, err := coordinator.CreateAssignment(reqData.CourseID, reqData.Name, reqData.DueDate, reqData.IsCompleted)
	if err != nil {
		var vErr *repository.ValidationError
		if errors.As(err, &vErr) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Name, due date, and course ID are required!", nil)
		}
		if errors.Is(err, repository.ErrCourseNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		log.Printf("Error creating assignment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create assignment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Assignment created successfully!", assignment)
}

// UpdateAssignment only mutates the completion flag. Name and due date are
// not updatable through this path.
func UpdateAssignment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid assignment id!", nil)
	}

	reqData, ok := c.Locals("validatedCompletion").(*assignmentValidator.CompletionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	repo := repository.NewAssignmentRepo(database.Database.Db)

	assignment, err := repo.UpdateCompletion(uint(id), reqData.IsCompleted)
	if err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
		}
		log.Printf("Error updating assignment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update assignment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignment updated successfully!", assignment)
}

func DeleteAssignment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid assignment id!", nil)
	}

	repo := repository.NewAssignmentRepo(database.Database.Db)

	if err := repo.Delete(uint(id)); err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
		}
		log.Printf("Error deleting assignment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete assignment!", nil)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
