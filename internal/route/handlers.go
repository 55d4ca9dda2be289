package route

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type calculateRequest struct {
	Origin      Coordinates `json:"origin"`
	Destination Coordinates `json:"destination"`
	Method      string      `json:"method"`
	RouteType   string      `json:"route_type"`
}

type costRequest struct {
	Method      string `json:"method"`
	VehicleName string `json:"vehicle_name"`
}

type saveRequest struct {
	Name string `json:"name"`
}

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Use(authMiddleware)

	r.Post("/calculate", func(c *fiber.Ctx) error {
		var req calculateRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		email, _ := c.Locals("email").(string)
		route, err := svc.CalculateRoute(c.Context(), email, req.Origin, req.Destination, req.Method)
		if err != nil {
			return statusError(err)
		}
		return c.JSON(route)
	})

	r.Post("/calculate/typed", func(c *fiber.Ctx) error {
		var req calculateRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		email, _ := c.Locals("email").(string)
		route, err := svc.CalculateRouteByType(c.Context(), email, req.Origin, req.Destination, req.Method, req.RouteType)
		if err != nil {
			return statusError(err)
		}
		return c.JSON(route)
	})

	r.Post("/cost", func(c *fiber.Ctx) error {
		var req costRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		email, _ := c.Locals("email").(string)
		cost, err := svc.CalculateCost(c.Context(), email, req.Method, req.VehicleName)
		if err != nil {
			return statusError(err)
		}
		return c.JSON(cost)
	})

	r.Post("/cost/fuel", func(c *fiber.Ctx) error {
		var req costRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		email, _ := c.Locals("email").(string)
		cost, err := svc.CalculateFuelCost(c.Context(), email, req.VehicleName)
		if err != nil {
			return statusError(err)
		}
		return c.JSON(cost)
	})

	r.Post("/cost/calories", func(c *fiber.Ctx) error {
		email, _ := c.Locals("email").(string)
		cost, err := svc.CalculateCalories(c.Context(), email)
		if err != nil {
			return statusError(err)
		}
		return c.JSON(cost)
	})

	r.Post("/saved", func(c *fiber.Ctx) error {
		var req saveRequest
		if err := c.BodyParser(&req); err != nil || req.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name required")
		}
		email, _ := c.Locals("email").(string)
		saved, err := svc.SaveRoute(c.Context(), email, req.Name)
		if err != nil {
			return statusError(err)
		}
		return c.Status(fiber.StatusCreated).JSON(saved)
	})

	r.Get("/saved", func(c *fiber.Ctx) error {
		email, _ := c.Locals("email").(string)
		saved, err := svc.SavedRoutes(c.Context(), email)
		if err != nil {
			return statusError(err)
		}
		return c.JSON(saved)
	})

	r.Delete("/saved/:name", func(c *fiber.Ctx) error {
		email, _ := c.Locals("email").(string)
		if err := svc.DeleteSavedRoute(c.Context(), email, c.Params("name")); err != nil {
			return statusError(err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	r.Post("/saved/:name/favorite", func(c *fiber.Ctx) error {
		email, _ := c.Locals("email").(string)
		if err := svc.ToggleFavorite(c.Context(), email, c.Params("name")); err != nil {
			return statusError(err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}

// statusError maps each domain condition to its response class.
func statusError(err error) error {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrRouteNotCalculated), errors.Is(err, ErrInvalidMethod):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, ErrVehicleNotFound), errors.Is(err, ErrSavedRouteNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, ErrNameTaken):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, ErrRoutingUnavailable):
		return fiber.NewError(fiber.StatusServiceUnavailable, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}
