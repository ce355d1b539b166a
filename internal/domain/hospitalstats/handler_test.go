package hospitalstats

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo) {
	h := NewHandler(newTestService())
	e := echo.New()
	return h, e
}

func TestHandler_Create(t *testing.T) {
	h, e := newTestHandler()
	body := `{"date":"2026-08-31T00:00:00Z","totalBeds":320,"occupiedBeds":250,"avgStayDuration":4,"emergencyVisits":42,"scheduledSurgeries":8}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
}

func TestHandler_Create_DuplicateDate(t *testing.T) {
	h, e := newTestHandler()
	day := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	h.svc.Record(context.Background(), testStats(day))

	body := `{"date":"2026-08-31T00:00:00Z","totalBeds":320,"occupiedBeds":200,"avgStayDuration":3,"emergencyVisits":10,"scheduledSurgeries":2}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	if httpErr, ok := err.(*echo.HTTPError); !ok || httpErr.Code != http.StatusConflict {
		t.Errorf("expected 409 for duplicate date, got %v", err)
	}
}

func TestHandler_Get_ByDate(t *testing.T) {
	h, e := newTestHandler()
	day := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	h.svc.Record(context.Background(), testStats(day))

	req := httptest.NewRequest(http.MethodGet, "/?date=2026-08-31", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Get(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got Stats
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if got.TotalBeds != 320 {
		t.Errorf("expected 320 beds, got %d", got.TotalBeds)
	}
}

func TestHandler_Get_DefaultsToLatest(t *testing.T) {
	h, e := newTestHandler()
	h.svc.Record(context.Background(), testStats(time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)))
	latest := testStats(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC))
	latest.OccupiedBeds = 270
	h.svc.Record(context.Background(), latest)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Get(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got Stats
	json.Unmarshal(rec.Body.Bytes(), &got)
	if got.OccupiedBeds != 270 {
		t.Errorf("expected latest row, got occupied beds %d", got.OccupiedBeds)
	}
}

func TestHandler_Get_EmptyStore(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Get(c)
	if httpErr, ok := err.(*echo.HTTPError); !ok || httpErr.Code != http.StatusNotFound {
		t.Errorf("expected 404 on empty store, got %v", err)
	}
}

func TestHandler_Update_RequiresDate(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"occupiedBeds":260}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Update(c)
	if httpErr, ok := err.(*echo.HTTPError); !ok || httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without date, got %v", err)
	}
}

func TestHandler_Update(t *testing.T) {
	h, e := newTestHandler()
	day := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	h.svc.Record(context.Background(), testStats(day))

	req := httptest.NewRequest(http.MethodPut, "/?date=2026-08-31", strings.NewReader(`{"occupiedBeds":260}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Update(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got Stats
	json.Unmarshal(rec.Body.Bytes(), &got)
	if got.OccupiedBeds != 260 {
		t.Errorf("expected 260 occupied beds, got %d", got.OccupiedBeds)
	}
}
