package httpapi

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-estimation/internal/store"
	"github.com/i474232898/weather-estimation/internal/weather"
)

var validate = validator.New()

// PlaceSearcher lists reference places matching a query.
type PlaceSearcher interface {
	Search(query string) []weather.Place
}

// RegisterRoutes wires the HTTP handlers into the Fiber app. Requests that
// name no location fall back to the user's saved preferences.
func RegisterRoutes(app *fiber.App, service *weather.Service, places PlaceSearcher, prefs weather.Preferences) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather/estimate", func(c *fiber.Ctx) error {
		locReq, err := parseLocationQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		var reading weather.Reading
		if locReq.empty() {
			reading = service.Estimator().EstimateForPreferences(c.UserContext(), prefs)
		} else {
			reading = service.Estimator().Estimate(c.UserContext(), locReq.toLocation())
		}
		return c.JSON(reading)
	})

	v1.Get("/weather/forecast", func(c *fiber.Ctx) error {
		var req forecastQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		loc := req.Location.toLocation()
		if req.Location.empty() {
			loc = prefs.LocationContext()
		}
		forecast, err := service.Estimator().Forecast(c.UserContext(), loc, req.Days)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		return c.JSON(fiber.Map{
			"location": loc,
			"days":     forecast,
		})
	})

	v1.Get("/weather/current", func(c *fiber.Ctx) error {
		locReq, err := parseLocationQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		reading, err := service.GetLatest(locReq.toLocation())
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no weather data for requested location")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch weather data")
		}

		return c.JSON(reading)
	})

	v1.Get("/weather/history", func(c *fiber.Ctx) error {
		var req historyQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		loc := req.Location.toLocation()
		readings, err := service.GetRange(loc, req.From, req.To)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no weather history for requested range")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch weather history")
		}

		return c.JSON(fiber.Map{
			"location": loc,
			"from":     req.From,
			"to":       req.To,
			"readings": readings,
		})
	})

	v1.Get("/locations", func(c *fiber.Ctx) error {
		q := c.Query("q")
		if len(q) < 2 {
			return fiber.NewError(fiber.StatusBadRequest, "q must be at least 2 characters")
		}
		matches := places.Search(q)
		if matches == nil {
			matches = []weather.Place{}
		}
		return c.JSON(matches)
	})
}

// locationQuery holds query parameters for identifying a location.
// All fields are optional: an empty query still gets an estimate.
type locationQuery struct {
	City   string   `validate:"omitempty,max=100"`
	Region string   `validate:"omitempty,max=100"`
	Lat    *float64 `validate:"omitempty,min=-90,max=90"`
	Lon    *float64 `validate:"omitempty,min=-180,max=180"`
}

// empty reports whether the caller named neither a city nor a coordinate.
func (l locationQuery) empty() bool {
	return l.City == "" && l.Lat == nil
}

func (l locationQuery) toLocation() weather.LocationContext {
	lc := weather.LocationContext{
		DisplayName: l.City,
		Region:      l.Region,
	}
	if l.Lat != nil && l.Lon != nil {
		lc.Coordinate = &weather.Coordinate{Latitude: *l.Lat, Longitude: *l.Lon}
	}
	return lc
}

func parseLocationQuery(c *fiber.Ctx) (locationQuery, error) {
	var q locationQuery

	q.City = c.Query("city")
	q.Region = c.Query("region")

	lat, err := parseOptionalFloat(c.Query("lat"))
	if err != nil {
		return q, errors.New("lat must be a number")
	}
	lon, err := parseOptionalFloat(c.Query("lon"))
	if err != nil {
		return q, errors.New("lon must be a number")
	}
	if (lat == nil) != (lon == nil) {
		return q, errors.New("lat and lon must be given together")
	}
	q.Lat, q.Lon = lat, lon

	if err := validate.Struct(q); err != nil {
		return q, err
	}

	return q, nil
}

func parseOptionalFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// forecastQuery holds query parameters for the forecast endpoint.
type forecastQuery struct {
	Location locationQuery
	Days     int `validate:"required,min=1,max=7"`
}

func (f *forecastQuery) bind(c *fiber.Ctx) error {
	loc, err := parseLocationQuery(c)
	if err != nil {
		return err
	}
	f.Location = loc

	daysStr := c.Query("days")
	if daysStr == "" {
		return errors.New("days query parameter is required")
	}
	days, err := strconv.Atoi(daysStr)
	if err != nil {
		return errors.New("days must be an integer")
	}
	f.Days = days
	return nil
}

// historyQuery holds query parameters for the history endpoint.
type historyQuery struct {
	Location locationQuery
	From     time.Time `validate:"required"`
	To       time.Time `validate:"required,gtefield=From"`
}

func (h *historyQuery) bind(c *fiber.Ctx) error {
	loc, err := parseLocationQuery(c)
	if err != nil {
		return err
	}
	h.Location = loc

	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		return errors.New("from and to query parameters are required")
	}

	from, err := parseTime(fromStr)
	if err != nil {
		return err
	}
	to, err := parseTime(toStr)
	if err != nil {
		return err
	}

	h.From = from
	h.To = to
	return nil
}

// parseTime tries to parse either RFC3339 or Unix seconds.
func parseTime(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	if unix, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(unix, 0).UTC(), nil
	}
	return time.Time{}, errors.New("invalid time format; use RFC3339 or unix seconds")
}
