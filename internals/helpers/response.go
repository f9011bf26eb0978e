package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Validator mengembalikan instance validator bersama (thread-safe, cache struct).
func Validator() *validator.Validate { return validate }

// ValidationError: khusus error validasi (validator.v10) → 422 dengan peta field.
func ValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
	}

	errorsMap := make(map[string][]string, len(ve))
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Field()] = append(errorsMap[fieldErr.Field()], validationMessage(fieldErr))
	}
	return JsonValidationError(c, errorsMap)
}

// BindAndValidate: BodyParser + Struct validation. Mengembalikan error respons yang sudah ditulis.
func BindAndValidate(c *fiber.Ctx, dst any) (bool, error) {
	if err := c.BodyParser(dst); err != nil {
		return false, JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(dst); err != nil {
		return false, ValidationError(c, err)
	}
	return true, nil
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "wajib diisi"
	case "min":
		return "minimal " + fe.Param()
	case "max":
		return "maksimal " + fe.Param()
	case "gte":
		return "harus ≥ " + fe.Param()
	case "lte":
		return "harus ≤ " + fe.Param()
	case "oneof":
		return "harus salah satu dari: " + fe.Param()
	case "email":
		return "format email tidak valid"
	case "uuid", "uuid4":
		return "format UUID tidak valid"
	case "datetime":
		return "format tanggal/waktu harus " + fe.Param()
	default:
		return fe.Tag()
	}
}
