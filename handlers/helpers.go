package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/AbdelazizBarhoumi/EPIMobileApplication/database"
	"github.com/AbdelazizBarhoumi/EPIMobileApplication/models"
)

var validate = newValidator()

// newValidator reports errors under JSON field names rather than Go names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct turns validator errors into a field -> message map for the
// 422 envelope.
func validateStruct(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"payload": "invalid payload"}
	}
	fields := map[string]string{}
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "email":
		return "must be a valid email address"
	default:
		return "invalid value"
	}
}

// Response envelope helpers. Every endpoint answers
// {success, data?|message?|errors?}.

func respondOK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": data})
}

func respondCreated(c echo.Context, message string, data any) error {
	return c.JSON(http.StatusCreated, map[string]any{"success": true, "message": message, "data": data})
}

func respondMessage(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, map[string]any{"success": true, "message": message})
}

func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]any{"success": false, "message": message})
}

func respondValidation(c echo.Context, fields map[string]string) error {
	return c.JSON(http.StatusUnprocessableEntity, map[string]any{"success": false, "errors": fields})
}

// ErrorHandler renders every error that escapes a handler in the standard
// {success, message} envelope, including echo's own routing errors. HTTPErrors
// raised with an envelope map pass through untouched.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	status := http.StatusInternalServerError
	message := "Internal server error"
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		switch m := httpErr.Message.(type) {
		case map[string]any:
			_ = c.JSON(status, m)
			return
		case string:
			message = m
		}
	}
	_ = c.JSON(status, map[string]any{"success": false, "message": message})
}

// currentStudent resolves the authenticated user's student profile.
func currentStudent(c echo.Context) (*models.Student, error) {
	userID, _ := c.Get("user_id").(uint)
	var student models.Student
	err := database.DB.Preload("Major").Where("user_id = ?", userID).First(&student).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, echo.NewHTTPError(http.StatusNotFound, map[string]any{"success": false, "message": "Student profile not found"})
	}
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func pathID(c echo.Context, name string) (uint, error) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil || n < 1 {
		return 0, echo.NewHTTPError(http.StatusNotFound, map[string]any{"success": false, "message": "Not found"})
	}
	return uint(n), nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
