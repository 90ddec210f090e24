package httpapi

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-lookup/internal/weather"
)

//go:embed templates/*.html
var viewsFS embed.FS

var pages = template.Must(template.ParseFS(viewsFS, "templates/*.html"))

// pageStyle feeds the shared <head> partial.
type pageStyle struct {
	Background template.CSS
	Border     template.CSS
}

type notFoundView struct {
	pageStyle
	Message string
}

type weatherView struct {
	pageStyle
	City        string
	State       string
	Description string
	Temperature float64
	Humidity    int
	Icon        string
}

func newNotFoundView(msg string) notFoundView {
	return notFoundView{
		pageStyle: pageStyle{Background: template.CSS(weather.DefaultStyle.Color), Border: "black"},
		Message:   msg,
	}
}

// Style colors come from a fixed table, so they are trusted as CSS.
func newWeatherView(res weather.Result) weatherView {
	return weatherView{
		pageStyle:   pageStyle{Background: template.CSS(res.Style.Color), Border: "white"},
		City:        res.Location.City,
		State:       res.Location.State,
		Description: res.Reading.Description,
		Temperature: res.Reading.TemperatureF,
		Humidity:    res.Reading.HumidityPct,
		Icon:        res.Style.Icon,
	}
}

// renderPage executes the named template into a buffer first so a failed
// render never leaves a partial 200 response.
func renderPage(c *fiber.Ctx, name string, data any) error {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}
