// FILE: internal/pkg/serverutils/validator.go
package serverutils

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest runs struct validation on an already-parsed request body
// and converts the first failure into a client-facing 400.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			e := errs[0]
			return fiber.NewError(fiber.StatusBadRequest, "field '"+e.Field()+"' failed validation on '"+e.Tag()+"'")
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}
