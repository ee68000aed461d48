package utils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/landslide-dashboard/internal/pkg/errors"
)

type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

type Meta struct {
	Total    int     `json:"total,omitempty"`
	TimeMSec float64 `json:"time_ms,omitempty"`
	Cached   bool    `json:"cached,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

func SendCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(SuccessResponse{
		Data: data,
	})
}

// SendError отправляет ошибку в едином формате; доменные ошибки
// переводятся в коды API, всё остальное - 500
func SendError(c *fiber.Ctx, err error) error {
	appErr := errors.FromDomain(err)
	return c.Status(appErr.StatusCode).JSON(ErrorResponse{
		Error: appErr,
	})
}
