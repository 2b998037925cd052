package api

import (
	"strconv"

	"go-hrms/internal/common/apperrors"
	"go-hrms/internal/common/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// RespondError writes the {"error": msg} body with the status derived from the error kind.
func RespondError(c *fiber.Ctx, err error) error {
	return c.Status(apperrors.Status(err)).JSON(fiber.Map{"error": err.Error()})
}

// Pagination reads page and limit query parameters. Missing values fall back to the
// defaults; present values must be positive integers.
func Pagination(c *fiber.Ctx) (int, int, error) {
	page, err := positiveQuery(c, "page", DefaultPage)
	if err != nil {
		return 0, 0, err
	}
	limit, err := positiveQuery(c, "limit", DefaultLimit)
	if err != nil {
		return 0, 0, err
	}
	return page, limit, nil
}

func positiveQuery(c *fiber.Ctx, key string, fallback int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, apperrors.Validation("invalid '%s' query parameter: must be a positive integer", key)
	}
	return n, nil
}

// BindJSON decodes the request body into dst and validates it.
func BindJSON(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return apperrors.Validation("Invalid request body")
	}
	return validation.Struct(dst)
}
