package medicalrecord

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo) {
	h := NewHandler(newTestService())
	e := echo.New()
	return h, e
}

func TestHandler_Create(t *testing.T) {
	h, e := newTestHandler()
	body := `{"patientId":1,"staffId":2,"diagnosis":"Hypertension","prescription":"Lisinopril 10mg"}`
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

func TestHandler_ListByPatient_RequiresPatientID(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.ListByPatient(c)
	if httpErr, ok := err.(*echo.HTTPError); !ok || httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without patientId, got %v", err)
	}
}

func TestHandler_ListByPatient(t *testing.T) {
	h, e := newTestHandler()
	h.svc.Create(context.Background(), testRecord(1))
	h.svc.Create(context.Background(), testRecord(2))

	req := httptest.NewRequest(http.MethodGet, "/?patientId=1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListByPatient(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []*MedicalRecord
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected 1 record, got %d", len(got))
	}
}

func TestHandler_Get_NotFound(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("9")

	err := h.Get(c)
	if httpErr, ok := err.(*echo.HTTPError); !ok || httpErr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}

func TestHandler_Update_RejectsUnknownFields(t *testing.T) {
	h, e := newTestHandler()
	h.svc.Create(context.Background(), testRecord(1))

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"severity":"high"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	err := h.Update(c)
	if httpErr, ok := err.(*echo.HTTPError); !ok || httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown field, got %v", err)
	}
}

func TestHandler_Delete(t *testing.T) {
	h, e := newTestHandler()
	h.svc.Create(context.Background(), testRecord(1))

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}

func TestHandler_ListByPatient_EmptySerializesAsArray(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/?patientId=7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListByPatient(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("expected empty array body, got %q", got)
	}
}
