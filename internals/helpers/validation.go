// file: internals/helpers/validation.go
package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Validate menjalankan validator.v10 pada DTO; error dikembalikan sebagai 422
// dengan map field → pesan (caller tinggal `return helper.Validate(c, &req)`).
func ValidateStruct(c *fiber.Ctx, s any) error {
	if err := validate.Struct(s); err != nil {
		ve, ok := err.(validator.ValidationErrors)
		if !ok {
			return JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
		}
		fieldErrors := make(map[string][]string, len(ve))
		for _, fe := range ve {
			field := strings.ToLower(fe.Field())
			fieldErrors[field] = append(fieldErrors[field], messageForTag(fe))
		}
		return JsonValidationError(c, fieldErrors)
	}
	return nil
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "wajib diisi"
	case "email":
		return "format email tidak valid"
	case "min":
		return "kurang dari batas minimum " + fe.Param()
	case "max":
		return "melebihi batas maksimum " + fe.Param()
	case "gt":
		return "harus lebih besar dari " + fe.Param()
	case "gte":
		return "tidak boleh kurang dari " + fe.Param()
	case "oneof":
		return "harus salah satu dari: " + fe.Param()
	default:
		return fe.Tag()
	}
}
