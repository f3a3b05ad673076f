package assignmentValidator

import (
	"time"

	"coursetrack/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// dueDateLayouts are the accepted due_date formats, a bare date or a full
// RFC 3339 timestamp.
var dueDateLayouts = []string{time.RFC3339, "2006-01-02"}

// AssignmentRequest is the validated payload for the nested creation path.
type AssignmentRequest struct {
	Name    string
	DueDate time.Time
}

// StandaloneAssignmentRequest is the validated payload for POST /assignments.
// IsCompleted defaults to false when the field is absent.
type StandaloneAssignmentRequest struct {
	Name        string
	DueDate     time.Time
	CourseID    uint
	IsCompleted bool
}

// CompletionRequest is the validated payload for the completion update path.
type CompletionRequest struct {
	IsCompleted bool
}

func parseDueDate(value string) (time.Time, bool) {
	for _, layout := range dueDateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// CreateForCourse validates the body of POST /courses/:id/assignments.
func CreateForCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name    string `json:"name" validate:"required"`
			DueDate string `json:"due_date" validate:"required"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Name":
					errors["name"] = "Name is required!"
				case "DueDate":
					errors["due_date"] = "Due date is required!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		dueDate, ok := parseDueDate(reqData.DueDate)
		if !ok {
			errors["due_date"] = "Due date must be a valid date!"
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAssignment", &AssignmentRequest{
			Name:    reqData.Name,
			DueDate: dueDate,
		})
		return c.Next()
	}
}

// CreateStandalone validates the body of POST /assignments.
func CreateStandalone() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string `json:"name" validate:"required"`
			DueDate     string `json:"due_date" validate:"required"`
			CourseID    uint   `json:"course_id" validate:"required"`
			IsCompleted *bool  `json:"is_completed"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Name":
					errors["name"] = "Name is required!"
				case "DueDate":
					errors["due_date"] = "Due date is required!"
				case "CourseID":
					errors["course_id"] = "Course ID is required!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		dueDate, ok := parseDueDate(reqData.DueDate)
		if !ok {
			errors["due_date"] = "Due date must be a valid date!"
			return middleware.ValidationErrorResponse(c, errors)
		}

		isCompleted := false
		if reqData.IsCompleted != nil {
			isCompleted = *reqData.IsCompleted
		}

		c.Locals("validatedAssignment", &StandaloneAssignmentRequest{
			Name:        reqData.Name,
			DueDate:     dueDate,
			CourseID:    reqData.CourseID,
			IsCompleted: isCompleted,
		})
		return c.Next()
	}
}

// UpdateCompletion validates the body of PUT /assignments/:id.
func UpdateCompletion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			IsCompleted *bool `json:"is_completed"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.IsCompleted == nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"is_completed": "Completion flag is required!",
			})
		}

		c.Locals("validatedCompletion", &CompletionRequest{IsCompleted: *reqData.IsCompleted})
		return c.Next()
	}
}
