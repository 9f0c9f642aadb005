package middleware

import (
	stderrors "errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"voxscribe/internal/api/errors"
)

// Validator interface for domain validation
type Validator interface {
	Validate() error
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(queryFieldName)
	}
}

// queryFieldName reports a field by its form tag so error details match
// the parameter names clients send.
func queryFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return strings.ToLower(f.Name)
	}
	return name
}

// ValidateQuery binds and validates query parameters
func ValidateQuery(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindQuery(req); err != nil {
		details := make(map[string]string)

		var validationErrs validator.ValidationErrors
		if stderrors.As(err, &validationErrs) {
			for _, fieldError := range validationErrs {
				details[fieldError.Field()] = describeTag(fieldError)
			}
		} else {
			details["query"] = "invalid query parameters"
		}

		apiErr := errors.NewBadRequestError("Invalid query parameters")
		apiErr.Details = details
		return apiErr
	}

	// Perform domain validation if available
	if validator, ok := req.(Validator); ok {
		if err := validator.Validate(); err != nil {
			return err
		}
	}

	return nil
}

func describeTag(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		return "must be at least " + fieldError.Param()
	case "max", "lte":
		return "must be at most " + fieldError.Param()
	case "oneof":
		return "must be one of " + fieldError.Param()
	default:
		return "is invalid"
	}
}
