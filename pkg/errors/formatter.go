package errors

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

func msgForTag(tag string) string {
	switch tag {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return "Value is too short or too small"
	case "max":
		return "Value is too long or too large"
	case "len":
		return "Value must be exact length"
	case "numeric":
		return "Value must be numeric"
	case "oneof":
		return "Value is not one of the allowed options"
	case "url":
		return "Invalid URL format"
	case "dive":
		return "Invalid list element"
	case "gt":
		return "Value must be greater than specified"
	case "gte":
		return "Value must be greater than or equal to specified"
	case "lt":
		return "Value must be less than specified"
	case "lte":
		return "Value must be less than or equal to specified"
	default:
		return "Invalid value"
	}
}

func getJSONFieldName(structType reflect.Type, fieldName string) string {
	field, found := structType.FieldByName(fieldName)
	if !found {
		return fieldName
	}

	jsonTag := field.Tag.Get("json")
	if jsonTag == "" {
		return fieldName
	}

	parts := strings.Split(jsonTag, ",")
	return parts[0]
}

// FormatValidationErrors converts a gin binding error into field-level
// details keyed by JSON field name, one message per failing field.
func FormatValidationErrors(err error, model interface{}) map[string]string {
	if err == nil {
		return nil
	}

	if jsonErr, ok := err.(*json.UnmarshalTypeError); ok {
		return map[string]string{
			jsonErr.Field: fmt.Sprintf("Invalid type. Expected %s, got %s", jsonErr.Type, jsonErr.Value),
		}
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	var structType reflect.Type
	if model != nil {
		structType = reflect.TypeOf(model)
		if structType.Kind() == reflect.Ptr {
			structType = structType.Elem()
		}
	}

	details := make(map[string]string, len(validationErrors))

	for _, fieldError := range validationErrors {
		jsonField := fieldError.Field()
		if model != nil {
			jsonField = getJSONFieldName(structType, fieldError.Field())
		}

		message := msgForTag(fieldError.Tag())

		if fieldError.Param() != "" {
			switch fieldError.Tag() {
			case "min":
				message = fmt.Sprintf("Must be at least %s characters", fieldError.Param())
			case "max":
				message = fmt.Sprintf("Must not exceed %s characters", fieldError.Param())
			case "len":
				message = fmt.Sprintf("Must be exactly %s characters", fieldError.Param())
			case "gt":
				message = fmt.Sprintf("Must be greater than %s", fieldError.Param())
			case "gte":
				message = fmt.Sprintf("Must be greater than or equal to %s", fieldError.Param())
			case "lt":
				message = fmt.Sprintf("Must be less than %s", fieldError.Param())
			case "lte":
				message = fmt.Sprintf("Must be less than or equal to %s", fieldError.Param())
			}
		}

		details[jsonField] = message
	}

	return details
}
