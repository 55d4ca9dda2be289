package preference

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Use(authMiddleware)

	r.Get("/", func(c *fiber.Ctx) error {
		email, _ := c.Locals("email").(string)
		prefs, err := svc.GetByUser(c.Context(), email)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(prefs)
	})

	r.Put("/", func(c *fiber.Ctx) error {
		var req Preferences
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		req.UserID, _ = c.Locals("user_id").(string)
		prefs, err := svc.Upsert(c.Context(), req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(prefs)
	})
}
