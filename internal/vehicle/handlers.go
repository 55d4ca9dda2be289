package vehicle

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Use(authMiddleware)

	r.Post("/", func(c *fiber.Ctx) error {
		var req Vehicle
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.Name == "" || req.ConsumptionPer100Km < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "name and non-negative consumption required")
		}
		req.UserID, _ = c.Locals("user_id").(string)
		v, err := svc.Create(c.Context(), req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(v)
	})

	r.Get("/", func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		vehicles, err := svc.FindByUser(c.Context(), userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(vehicles)
	})

	r.Get("/:id", func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		v, err := svc.Get(c.Context(), userID, c.Params("id"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "vehicle not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(v)
	})

	r.Put("/:id", func(c *fiber.Ctx) error {
		var req Vehicle
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		userID, _ := c.Locals("user_id").(string)
		v, err := svc.Update(c.Context(), userID, c.Params("id"), req)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "vehicle not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(v)
	})

	r.Delete("/:id", func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		if err := svc.Delete(c.Context(), userID, c.Params("id")); err != nil {
			if errors.Is(err, ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "vehicle not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
