package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// parseAndValidate lee el cuerpo JSON en dst y comprueba los campos requeridos.
// Solo valida presencia; el formato de los valores lo decide el almacén.
func parseAndValidate(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return err
	}
	return validate.Struct(dst)
}
