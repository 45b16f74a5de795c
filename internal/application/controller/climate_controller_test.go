package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"climate-api/internal/application/validation"
	"climate-api/internal/domain/gateway/db"
	"climate-api/internal/domain/model"
	"climate-api/internal/domain/usecase/climate"
	"climate-api/internal/testinfra"

	"github.com/labstack/echo/v4"
)

func newTestServer(t *testing.T, useCase climate.UseCase) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.Validator = validation.NewEchoValidator()
	api := e.Group("")
	NewHomeController(api).InitHomeRoutes()
	NewClimateController(api, useCase).InitClimateRoutes()
	return e
}

func newHawaiiServer(t *testing.T) (*echo.Echo, testinfra.Fixture) {
	t.Helper()

	sqlDB, fixture := testinfra.OpenHawaii(t)
	useCase := climate.NewClimateUseCase(db.NewSQLCClimateGateway(sqlDB), nil, 0)
	return newTestServer(t, useCase), fixture
}

func get(t *testing.T, e *echo.Echo, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()

	if err := json.Unmarshal(rec.Body.Bytes(), dest); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
}

func TestHome(t *testing.T) {
	e, _ := newHawaiiServer(t)

	rec := get(t, e, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "Available Routes:<br/>") {
		t.Fatalf("body = %q", body)
	}
	for _, route := range []string{"/api/v1.0/precipitation", "/api/v1.0/stations", "/api/v1.0/tobs", "/api/v1.0/<start>", "/api/v1.0/<start>/<end>"} {
		if !strings.Contains(body, route) {
			t.Fatalf("route %s missing from %q", route, body)
		}
	}
}

func TestPrecipitation(t *testing.T) {
	e, fixture := newHawaiiServer(t)

	rec := get(t, e, "/api/v1.0/precipitation")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var precipitation map[string]*float64
	decode(t, rec, &precipitation)
	if len(precipitation) != len(fixture.Measurements) {
		t.Fatalf("dates = %d, want %d", len(precipitation), len(fixture.Measurements))
	}
	if value, ok := precipitation["2016-08-21"]; !ok || value != nil {
		t.Fatalf("2016-08-21 = %v, %v; want null", value, ok)
	}
	if value := precipitation["2017-01-02"]; value == nil || *value != 0.5 {
		t.Fatalf("2017-01-02 = %v, want 0.5", value)
	}
}

func TestStations(t *testing.T) {
	e, _ := newHawaiiServer(t)

	rec := get(t, e, "/api/v1.0/stations")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var stations []string
	decode(t, rec, &stations)
	want := []string{testinfra.ActiveStation, testinfra.QuietStation, testinfra.IdleStation}
	if strings.Join(stations, ",") != strings.Join(want, ",") {
		t.Fatalf("stations = %v, want %v", stations, want)
	}
}

func TestLastYearObservations_ReturnsPrecipitation(t *testing.T) {
	e, fixture := newHawaiiServer(t)

	rec := get(t, e, "/api/v1.0/tobs")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var values []*float64
	decode(t, rec, &values)
	want := fixture.PrecipitationSince(testinfra.ActiveStation, testinfra.MinDate)
	if len(values) != 97 || len(want) != 97 {
		t.Fatalf("values = %d, want 97", len(values))
	}
	for i := range values {
		if (values[i] == nil) != (want[i] == nil) || (values[i] != nil && *values[i] != *want[i]) {
			t.Fatalf("values[%d] = %v, want prcp %v", i, values[i], want[i])
		}
	}
	if !strings.Contains(rec.Body.String(), "null") {
		t.Fatalf("expected null prcp entries in %s", rec.Body.String())
	}
}

func TestLastYearObservations_EmptyTable(t *testing.T) {
	sqlDB := testinfra.OpenSQLite(t)
	e := newTestServer(t, climate.NewClimateUseCase(db.NewSQLCClimateGateway(sqlDB), nil, 0))

	rec := get(t, e, "/api/v1.0/tobs")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestTemperatureStats(t *testing.T) {
	e, fixture := newHawaiiServer(t)

	tests := []struct {
		name string
		path string
		want model.TemperatureStats
	}{
		{
			name: "closed range",
			path: "/api/v1.0/2017-01-01/2017-01-03",
			want: model.TemperatureStats{Min: 58, Max: 62, Average: 60},
		},
		{
			name: "single day",
			path: "/api/v1.0/2017-01-05/2017-01-05",
			want: model.TemperatureStats{Min: 66, Max: 66, Average: 66},
		},
	}

	openStats, _ := model.NewTemperatureStats(fixture.Temperatures("2017-01-01", ""))
	tests = append(tests, struct {
		name string
		path string
		want model.TemperatureStats
	}{name: "open range", path: "/api/v1.0/2017-01-01", want: openStats})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, e, tt.path)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
			}

			var raw []float64
			decode(t, rec, &raw)
			if len(raw) != 3 {
				t.Fatalf("body = %s, want a 3 element array", rec.Body.String())
			}
			if raw[0] != tt.want.Min || raw[1] != tt.want.Max || raw[2] != tt.want.Average {
				t.Fatalf("stats = %v, want %+v", raw, tt.want)
			}
		})
	}
}

func TestTemperatureStats_Errors(t *testing.T) {
	e, _ := newHawaiiServer(t)

	tests := []struct {
		name string
		path string
		code int
	}{
		{name: "malformed start", path: "/api/v1.0/2017-13-01", code: http.StatusBadRequest},
		{name: "not a date", path: "/api/v1.0/yesterday", code: http.StatusBadRequest},
		{name: "malformed end", path: "/api/v1.0/2017-01-01/2017-1-3", code: http.StatusBadRequest},
		{name: "start after end", path: "/api/v1.0/2017-01-04/2017-01-02", code: http.StatusBadRequest},
		{name: "empty range", path: "/api/v1.0/2030-01-01", code: http.StatusNotFound},
		{name: "gap between stations", path: "/api/v1.0/2017-02-01/2017-02-28", code: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, e, tt.path)
			if rec.Code != tt.code {
				t.Fatalf("status = %d, want %d, body = %s", rec.Code, tt.code, rec.Body.String())
			}

			var body map[string]string
			decode(t, rec, &body)
			if body["error"] == "" {
				t.Fatalf("body = %s, want an error message", rec.Body.String())
			}
		})
	}
}

func TestTemperatureStats_NoObservationsMessage(t *testing.T) {
	e, _ := newHawaiiServer(t)

	rec := get(t, e, "/api/v1.0/2030-01-01")
	var body map[string]string
	decode(t, rec, &body)
	if body["error"] != "no temperature observations found for the requested range" {
		t.Fatalf("error = %q", body["error"])
	}
}

type failingUseCase struct {
	climate.UseCase
}

func (failingUseCase) Stations(context.Context) ([]string, error) {
	return nil, errors.New("find stations: database is locked")
}

func TestStations_InternalError(t *testing.T) {
	e := newTestServer(t, failingUseCase{})

	rec := get(t, e, "/api/v1.0/stations")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	var body map[string]string
	decode(t, rec, &body)
	if !strings.Contains(body["error"], "database is locked") {
		t.Fatalf("error = %q", body["error"])
	}
}

func TestTemperatureStats_RangeOrderMessage(t *testing.T) {
	e, _ := newHawaiiServer(t)

	rec := get(t, e, "/api/v1.0/2017-01-04/2017-01-02")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var body map[string]string
	decode(t, rec, &body)
	want := "invalid date range: start date 2017-01-04 is after end date 2017-01-02"
	if body["error"] != want {
		t.Fatalf("error = %q, want %q", body["error"], want)
	}
}
