package medicalrecord

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/medical-records", h.ListByPatient)
	api.GET("/medical-records/:id", h.Get)
	api.POST("/medical-records", h.Create)
	api.PUT("/medical-records/:id", h.Update)
	api.DELETE("/medical-records/:id", h.Delete)
}

func (h *Handler) Create(c echo.Context) error {
	var rec MedicalRecord
	if err := c.Bind(&rec); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Create(c.Request().Context(), &rec); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	rec, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "medical record not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch medical record")
	}
	return c.JSON(http.StatusOK, rec)
}

// ListByPatient requires a patientId query parameter; records are never
// listed across all patients.
func (h *Handler) ListByPatient(c echo.Context) error {
	raw := c.QueryParam("patientId")
	if raw == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "patientId is required")
	}
	patientID, err := strconv.Atoi(raw)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patientId")
	}
	items, err := h.svc.ListByPatient(c.Request().Context(), patientID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list medical records")
	}
	return c.JSON(http.StatusOK, items)
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

	rec, err := h.svc.Update(c.Request().Context(), id, &patch)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "medical record not found")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "medical record not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete medical record")
	}
	return c.NoContent(http.StatusNoContent)
}
