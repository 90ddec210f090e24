package httpapi

import (
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-lookup/internal/weather"
)

const (
	msgMissingLocation = "City and state query parameters are required."
	msgNotFound        = "We couldn't find the location. Please check the city and state."
	msgServerError     = "Server Error: Something went wrong while fetching weather data."
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service, log *slog.Logger) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-lookup",
		})
	})

	app.Get("/weather", func(c *fiber.Ctx) error {
		q, err := parseLocationQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, msgMissingLocation)
		}

		res, err := service.Lookup(c.UserContext(), q.toLocation())
		if err != nil {
			return err
		}

		if !res.Found() {
			log.Info("rendering not-found view",
				"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
				"location", res.Location.String(),
				"outcome", res.Outcome.String(),
			)
			return renderPage(c, "not_found.html", newNotFoundView(msgNotFound))
		}

		return renderPage(c, "weather.html", newWeatherView(res))
	})
}

// ErrorHandler renders client errors as a JSON body and everything else as a
// generic plain-text server error.
func ErrorHandler(log *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
			return c.Status(fe.Code).JSON(fiber.Map{
				"error": fe.Message,
			})
		}

		log.Error("request failed",
			"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
			"method", c.Method(),
			"path", c.Path(),
			"error", err,
		)
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Status(fiber.StatusInternalServerError).SendString(msgServerError)
	}
}

// locationQuery holds query parameters for identifying a location.
type locationQuery struct {
	City  string `validate:"required"`
	State string `validate:"required"`
}

func (l locationQuery) toLocation() weather.Location {
	return weather.Location{
		City:  l.City,
		State: l.State,
	}
}

func parseLocationQuery(c *fiber.Ctx) (locationQuery, error) {
	var q locationQuery

	q.City = c.Query("city")
	q.State = c.Query("state")

	if err := validate.Struct(q); err != nil {
		return q, err
	}

	return q, nil
}
