package appointment

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mediboard/mediboard/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/appointments", h.List)
	api.GET("/appointments/today", h.Today)
	api.GET("/appointments/:id", h.Get)
	api.POST("/appointments", h.Create)
	api.PUT("/appointments/:id", h.Update)
	api.DELETE("/appointments/:id", h.Delete)
}

func (h *Handler) Create(c echo.Context) error {
	var a Appointment
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Create(c.Request().Context(), &a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	a, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch appointment")
	}
	return c.JSON(http.StatusOK, a)
}

// List supports filtering by date, patientId, or staffId; the first
// matching filter wins.
func (h *Handler) List(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		items []*Appointment
		err   error
	)
	switch {
	case c.QueryParam("date") != "":
		date, perr := time.Parse("2006-01-02", c.QueryParam("date"))
		if perr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		}
		items, err = h.svc.ListByDate(ctx, date)
	case c.QueryParam("patientId") != "":
		pid, perr := strconv.Atoi(c.QueryParam("patientId"))
		if perr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid patientId")
		}
		items, err = h.svc.ListByPatient(ctx, pid)
	case c.QueryParam("staffId") != "":
		sid, perr := strconv.Atoi(c.QueryParam("staffId"))
		if perr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid staffId")
		}
		items, err = h.svc.ListByStaff(ctx, sid)
	default:
		items, err = h.svc.List(ctx)
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list appointments")
	}

	pg := pagination.FromContext(c)
	total := len(items)
	start, end := pg.Slice(total)
	return c.JSON(http.StatusOK, pagination.NewResponse(items[start:end], total, pg.Limit, pg.Offset))
}

func (h *Handler) Today(c echo.Context) error {
	rows, excluded, err := h.svc.TodayAppointments(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to build today's appointments")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":     rows,
		"excluded": excluded,
	})
}

func (h *Handler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var patch Patch
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	a, err := h.svc.Update(c.Request().Context(), id, &patch)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete appointment")
	}
	return c.NoContent(http.StatusNoContent)
}
