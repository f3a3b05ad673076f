package controllers

import (
	"errors"
	"log"

	"coursetrack/database"
	"coursetrack/middleware"
	"coursetrack/repository"
	courseValidator "coursetrack/validators/course"

	"github.com/gofiber/fiber/v2"
)

func GetAllCourses(c *fiber.Ctx) error {
	repo := repository.NewCourseRepo(database.Database.Db)

	courses, err := repo.ListWithAssignments()
	if err != nil {
		log.Printf("Error fetching courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	repo := repository.NewCourseRepo(database.Database.Db)

	course, err := repo.Create(reqData.Name, reqData.CourseLink, reqData.StudyHours)
	if err != nil {
		var vErr *repository.ValidationError
		if errors.As(err, &vErr) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Study hours cannot be negative!", nil)
		}
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course created successfully!", course)
}

func UpdateCourse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	repo := repository.NewCourseRepo(database.Database.Db)

	course, err := repo.Update(uint(id), reqData.Name, reqData.CourseLink, reqData.StudyHours)
	if err != nil {
		var vErr *repository.ValidationError
		if errors.As(err, &vErr) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Study hours cannot be negative!", nil)
		}
		if errors.Is(err, repository.ErrCourseNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		log.Printf("Error updating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

func DeleteCourse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	coordinator := repository.NewCoordinator(database.Database.Db)

	if err := coordinator.DeleteCourse(uint(id)); err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		log.Printf("Error deleting course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
