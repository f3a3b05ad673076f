package courseValidator

import (
	"coursetrack/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CourseRequest is the create/update course payload. The same shape is
// accepted on both paths; study_hours must be non-negative on either one.
type CourseRequest struct {
	Name       string `json:"name" validate:"omitempty,max=255"`
	CourseLink string `json:"course_link" validate:"omitempty,max=512"`
	StudyHours int64  `json:"study_hours" validate:"min=0"`
}

func CourseBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "StudyHours":
					errors["study_hours"] = "Study hours cannot be negative!"
				case "Name":
					errors["name"] = "Name is too long!"
				case "CourseLink":
					errors["course_link"] = "Course link is too long!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}
