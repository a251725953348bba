package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Leganyst/time-manager/internal/metrics"
	"github.com/Leganyst/time-manager/internal/pagination"
	"github.com/Leganyst/time-manager/internal/schedule"
	"github.com/Leganyst/time-manager/internal/service"
)

type fakeHours struct {
	status service.Status
	err    error
	gotAt  *time.Time
	gotID  string
	page   pagination.Page[service.ContactCenterSummary]
	gotReq pagination.Request
	panics bool
}

func (f *fakeHours) Status(_ context.Context, id string, at *time.Time) (service.Status, error) {
	if f.panics {
		panic("boom")
	}
	f.gotID = id
	f.gotAt = at
	return f.status, f.err
}

func (f *fakeHours) ListContactCenters(_ context.Context, req pagination.Request) (pagination.Page[service.ContactCenterSummary], error) {
	f.gotReq = req
	return f.page, f.err
}

const ccID = "6f1c2b0e-4a8e-4d7a-9d2e-3c1b5f0a9e11"

func TestHours_OK(t *testing.T) {
	evaluated := time.Date(2018, 8, 19, 13, 0, 0, 0, time.UTC)
	svc := &fakeHours{status: service.Status{
		ContactCenterID: ccID,
		EvaluatedAt:     evaluated,
		Open:            true,
		WeekdayHours:    "1PM-4PM",
		WeekendHours:    "12PM-5PM",
	}}
	router := NewRouter(svc, Options{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/contact-centers/"+ccID+"/hours?at=2018-08-19T14:00:00%2B01:00", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.gotID != ccID {
		t.Fatalf("expected id %s, got %s", ccID, svc.gotID)
	}
	if svc.gotAt == nil || !svc.gotAt.Equal(evaluated) {
		t.Fatalf("expected at %v, got %v", evaluated, svc.gotAt)
	}
	_, offset := svc.gotAt.Zone()
	if offset != 3600 {
		t.Fatalf("expected the caller's offset to be kept, got %d", offset)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["open"] != true || body["weekdayHours"] != "1PM-4PM" || body["weekendHours"] != "12PM-5PM" {
		t.Fatalf("unexpected body %v", body)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected a request id header")
	}
}

func TestHours_DefaultsToNow(t *testing.T) {
	svc := &fakeHours{}
	router := NewRouter(svc, Options{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/contact-centers/"+ccID+"/hours", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.gotAt != nil {
		t.Fatalf("expected no reference instant, got %v", svc.gotAt)
	}
}

func TestHours_Errors(t *testing.T) {
	cases := []struct {
		name   string
		path   string
		err    error
		status int
	}{
		{name: "bad at", path: "/api/v1/contact-centers/" + ccID + "/hours?at=yesterday", status: http.StatusBadRequest},
		{name: "bad id", path: "/api/v1/contact-centers/x/hours", err: service.ErrInvalidContactCenter, status: http.StatusBadRequest},
		{name: "not found", path: "/api/v1/contact-centers/" + ccID + "/hours", err: fmt.Errorf("%w: %s", service.ErrContactCenterNotFound, ccID), status: http.StatusNotFound},
		{name: "bad timezone", path: "/api/v1/contact-centers/" + ccID + "/hours", err: fmt.Errorf("evaluate: %w", schedule.ErrInvalidTimezone), status: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := NewRouter(&fakeHours{err: tc.err}, Options{})
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))

			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d: %s", tc.status, rec.Code, rec.Body.String())
			}
			var body errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || body.Error == "" {
				t.Fatalf("expected an error body, got %q", rec.Body.String())
			}
		})
	}
}

func TestListContactCenters(t *testing.T) {
	req := pagination.NewRequest(2, 1)
	svc := &fakeHours{page: pagination.NewPage([]service.ContactCenterSummary{{ID: ccID, Name: "London"}}, req, 3)}
	router := NewRouter(svc, Options{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/contact-centers?page=2&page_size=1", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.gotReq != req {
		t.Fatalf("expected request %+v, got %+v", req, svc.gotReq)
	}

	var body pagination.Page[contactCenterResponse]
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Total != 3 || !body.HasNext || !body.HasPrev || len(body.Items) != 1 || body.Items[0].Name != "London" {
		t.Fatalf("unexpected body %+v", body)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/contact-centers?page=-1", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a negative page, got %d", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	router := NewRouter(&fakeHours{}, Options{Ping: func(context.Context) error { return nil }})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	router = NewRouter(&fakeHours{}, Options{Ping: func(context.Context) error { return errors.New("down") }})
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewRecorder(reg).Evaluation(metrics.ResultOpen, 0.001)

	router := NewRouter(&fakeHours{}, Options{Gatherer: reg})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `time_manager_evaluations_total{result="open"} 1`) {
		t.Fatalf("expected evaluation counter in output, got %s", rec.Body.String())
	}
}

func TestRecovery(t *testing.T) {
	router := NewRouter(&fakeHours{panics: true}, Options{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/contact-centers/"+ccID+"/hours", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 after a panic, got %d", rec.Code)
	}
}
