package hospitalstats

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/hospital-stats", h.Get)
	api.POST("/hospital-stats", h.Create)
	api.PUT("/hospital-stats", h.Update)
}

func (h *Handler) Create(c echo.Context) error {
	var st Stats
	if err := c.Bind(&st); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Record(c.Request().Context(), &st); err != nil {
		if errors.Is(err, ErrStatsExist) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, st)
}

// Get returns the row for ?date=, or the most recent row when no date
// is given.
func (h *Handler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		st  *Stats
		err error
	)
	if raw := c.QueryParam("date"); raw != "" {
		date, perr := time.Parse("2006-01-02", raw)
		if perr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		}
		st, err = h.svc.GetByDate(ctx, date)
	} else {
		st, err = h.svc.Latest(ctx)
	}
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "hospital stats not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch hospital stats")
	}
	return c.JSON(http.StatusOK, st)
}

func (h *Handler) Update(c echo.Context) error {
	raw := c.QueryParam("date")
	if raw == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "date is required")
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	}

	var patch Patch
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	st, err := h.svc.Update(c.Request().Context(), date, &patch)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "hospital stats not found")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, st)
}
