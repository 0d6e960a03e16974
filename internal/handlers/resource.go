package handlers

import (
	"context"
	"errors"

	"tokoadmin/internal/middleware"
	"tokoadmin/internal/services"

	"github.com/gofiber/fiber/v2"
	zlog "github.com/rs/zerolog/log"
)

// fail maps a service error to its status and plain-text body. Unexpected
// errors are logged under op and reduced to a generic message.
func fail(c *fiber.Ctx, op string, err error) error {
	var verr *services.ValidationError
	var conflict *services.ConflictError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).SendString(verr.Message)
	case errors.As(err, &conflict):
		return c.Status(fiber.StatusConflict).SendString(conflict.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).SendString("Invalid credentials")
	case errors.Is(err, services.ErrUnauthenticated):
		return c.Status(fiber.StatusUnauthorized).SendString("Unauthenticated")
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).SendString("Unauthorized")
	}
	zlog.Error().Err(err).Str("op", op).Str("path", c.Path()).Msg("request failed")
	return c.Status(fiber.StatusInternalServerError).SendString("Internal error")
}

func handleList[T any](op string, fn func(ctx context.Context, storeID string) ([]T, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := fn(c.UserContext(), c.Params("storeId"))
		if err != nil {
			return fail(c, op, err)
		}
		return c.JSON(items)
	}
}

// handleGet responds with the entity, or JSON null when it does not exist.
func handleGet[T any](op, idParam string, fn func(ctx context.Context, id string) (*T, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		item, err := fn(c.UserContext(), c.Params(idParam))
		if err != nil {
			return fail(c, op, err)
		}
		return c.JSON(item)
	}
}

func handleCreate[I, T any](op string, fn func(ctx context.Context, callerID, storeID string, in I) (*T, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		callerID := middleware.CallerID(c)
		if callerID == "" {
			return fail(c, op, services.ErrUnauthenticated)
		}
		var in I
		if err := c.BodyParser(&in); err != nil {
			zlog.Debug().Err(err).Str("op", op).Msg("failed to parse request body")
			return c.Status(fiber.StatusBadRequest).SendString("Invalid request body")
		}
		item, err := fn(c.UserContext(), callerID, c.Params("storeId"), in)
		if err != nil {
			return fail(c, op, err)
		}
		return c.JSON(item)
	}
}

func handleUpdate[I, T any](op, idParam string, fn func(ctx context.Context, callerID, storeID, id string, in I) (*T, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		callerID := middleware.CallerID(c)
		if callerID == "" {
			return fail(c, op, services.ErrUnauthenticated)
		}
		var in I
		if err := c.BodyParser(&in); err != nil {
			zlog.Debug().Err(err).Str("op", op).Msg("failed to parse request body")
			return c.Status(fiber.StatusBadRequest).SendString("Invalid request body")
		}
		item, err := fn(c.UserContext(), callerID, c.Params("storeId"), c.Params(idParam), in)
		if err != nil {
			return fail(c, op, err)
		}
		return c.JSON(item)
	}
}

func handleDelete[T any](op, idParam string, fn func(ctx context.Context, callerID, storeID, id string) (*T, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		callerID := middleware.CallerID(c)
		if callerID == "" {
			return fail(c, op, services.ErrUnauthenticated)
		}
		item, err := fn(c.UserContext(), callerID, c.Params("storeId"), c.Params(idParam))
		if err != nil {
			return fail(c, op, err)
		}
		return c.JSON(item)
	}
}
