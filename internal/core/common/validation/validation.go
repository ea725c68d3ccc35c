package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	errors "github.com/Jaychaware/hrms-lite/internal"
)

// DateLayout is the wire format of attendance dates.
const DateLayout = "2006-01-02"

// dateInputLayout also accepts months and days without zero padding.
const dateInputLayout = "2006-1-2"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type ValidatorFunc func(interface{}) *errors.AppError

type FieldValidator struct {
	FieldName  string
	Value      interface{}
	Validators []ValidatorFunc
}

type ValidationBuilder struct {
	fields []*FieldValidator
}

func NewValidator() *ValidationBuilder {
	return &ValidationBuilder{
		fields: make([]*FieldValidator, 0),
	}
}

func (v *ValidationBuilder) Field(name string, value interface{}) *FieldValidator {
	fv := &FieldValidator{
		FieldName:  name,
		Value:      value,
		Validators: make([]ValidatorFunc, 0),
	}
	v.fields = append(v.fields, fv)
	return fv
}

func (fv *FieldValidator) fail(message string, code errors.ErrorCode) *errors.AppError {
	return errors.NewValidationFieldError(fv.FieldName, message, code)
}

// Required rejects empty and whitespace-only strings. An empty message
// falls back to "<field> is required".
func (fv *FieldValidator) Required(message string) *FieldValidator {
	if message == "" {
		message = fmt.Sprintf("%s is required", fv.FieldName)
	}
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.AppError {
		switch v := value.(type) {
		case string:
			if strings.TrimSpace(v) == "" {
				return fv.fail(message, errors.ErrCodeValidationFailed)
			}
		case *string:
			if v == nil || strings.TrimSpace(*v) == "" {
				return fv.fail(message, errors.ErrCodeValidationFailed)
			}
		case nil:
			return fv.fail(message, errors.ErrCodeValidationFailed)
		}
		return nil
	})
	return fv
}

func (fv *FieldValidator) MaxLength(max int) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.AppError {
		if v, ok := value.(string); ok {
			if len(v) > max {
				message := fmt.Sprintf("%s must not exceed %d characters", fv.FieldName, max)
				return fv.fail(message, errors.ErrCodeValidationFailed)
			}
		}
		return nil
	})
	return fv
}

func (fv *FieldValidator) Email(message string) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) *errors.AppError {
		if v, ok := value.(string); ok && !IsEmail(strings.TrimSpace(v)) {
			return fv.fail(message, errors.ErrCodeInvalidEmail)
		}
		return nil
	})
	return fv
}

// Validate runs every field in declaration order. Each field reports only its
// first failure.
func (v *ValidationBuilder) Validate() *errors.AppError {
	var validationErrors []errors.ValidationError

	for _, field := range v.fields {
		for _, validator := range field.Validators {
			appErr := validator(field.Value)
			if appErr == nil {
				continue
			}
			if details, ok := appErr.Details.(errors.ValidationErrors); ok {
				validationErrors = append(validationErrors, details.Errors...)
			} else {
				validationErrors = append(validationErrors, errors.ValidationError{
					Field:   field.FieldName,
					Message: appErr.Message,
					Code:    string(appErr.Code),
				})
			}
			break
		}
	}

	if len(validationErrors) > 0 {
		return errors.NewValidationError("Validation failed", errors.ErrCodeValidationFailed).
			WithDetails(errors.ValidationErrors{Errors: validationErrors})
	}

	return nil
}

func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ParseDate parses a YYYY-MM-DD calendar date as UTC midnight. Single digit
// months and days are accepted.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateInputLayout, strings.TrimSpace(s), time.UTC)
}

// ValidateEmployee checks the trimmed employee form fields. The messages are
// shown verbatim to users, so their order is the order of the form.
func ValidateEmployee(employeeID, fullName, email, department string) *errors.AppError {
	employeeID, fullName = strings.TrimSpace(employeeID), strings.TrimSpace(fullName)
	email, department = strings.TrimSpace(email), strings.TrimSpace(department)

	validator := NewValidator()
	validator.Field("employee_id", employeeID).Required("Employee ID required").MaxLength(50)
	validator.Field("full_name", fullName).Required("Full Name required").MaxLength(200)
	validator.Field("email", email).Required("Email required").Email("Invalid email").MaxLength(254)
	validator.Field("department", department).Required("Department required").MaxLength(100)
	return validator.Validate()
}
