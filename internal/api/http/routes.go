package httpapi

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Paurushmuley/Week3-Paurush-Muley/internal/weather"
)

var validate = validator.New()

// mailRequest is the body of the mail endpoint. City is optional: when empty
// the report covers the latest observation per city.
type mailRequest struct {
	City  string `json:"city"`
	Email string `json:"email" validate:"required,email"`
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	api := app.Group("/api")

	api.Get("/test-db-connection", func(c *fiber.Ctx) error {
		if err := service.PingStore(c.Context()); err != nil {
			return c.Status(fiber.StatusInternalServerError).
				SendString("Unable to connect to the database")
		}
		return c.SendString("Database connection has been established successfully.")
	})

	api.Post("/SaveWeatherMapping", func(c *fiber.Ctx) error {
		var batch []weather.Location
		if err := c.BodyParser(&batch); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := service.Ingest(c.Context(), batch); err != nil {
			var storageErr *weather.StorageError
			if errors.As(err, &storageErr) {
				return c.Status(fiber.StatusInternalServerError).
					SendString("Error saving weather data")
			}
			return c.Status(fiber.StatusInternalServerError).
				SendString("Error fetching weather data")
		}

		return c.Status(fiber.StatusCreated).SendString("Weather data saved successfully")
	})

	api.Get("/weatherDashboard", func(c *fiber.Ctx) error {
		city := c.Query("city")

		observations, err := service.Report(c.Context(), city)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Error fetching weather data",
				"details": err.Error(),
			})
		}

		return c.JSON(observations)
	})

	api.Post("/mailWeatherData", func(c *fiber.Ctx) error {
		var req mailRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := service.EmailReport(c.Context(), req.City, req.Email); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Error sending email",
				"details": err.Error(),
			})
		}

		return c.SendString("Email sent successfully")
	})
}
