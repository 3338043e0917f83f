// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/danielhkuo/psychopredict/defaults"
	"github.com/danielhkuo/psychopredict/models"
	"github.com/danielhkuo/psychopredict/observability"
	"github.com/danielhkuo/psychopredict/predictor"
	"github.com/danielhkuo/psychopredict/testutil"
)

func newTestRouter(t *testing.T) (*http.ServeMux, *observability.Metrics) {
	t.Helper()

	metrics := observability.NewMetrics()
	pred, err := predictor.New(testutil.TrainedPipeline(t), models.LabelYes, metrics)
	if err != nil {
		t.Fatalf("Failed to build predictor: %v", err)
	}
	store := testutil.SetupTestStore(t)

	return NewRouter(testutil.GetTestConfig(), store, pred, defaults.Builtin(), metrics), metrics
}

func TestHealthEndpoint(t *testing.T) {
	mux, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootServesForm(t *testing.T) {
	mux, _ := newTestRouter(t)

	for _, path := range []string{"/", "/predict"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest("GET", path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("Expected status 200, got %d", w.Code)
			}
			if !strings.Contains(w.Body.String(), `action="/predict"`) {
				t.Error("Expected the survey form")
			}
		})
	}
}

func TestUnknownPathIsNotFound(t *testing.T) {
	mux, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/polls/abc", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestRouteExistence(t *testing.T) {
	mux, _ := newTestRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/metrics"},
		{"GET", "/"},
		{"GET", "/predict"},
		{"POST", "/predict"},
		{"GET", "/predictions"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			// 400 and 401 are valid handler responses here
			if w.Code == http.StatusMethodNotAllowed || w.Code == http.StatusNotFound {
				t.Errorf("Route %s %s returned %d, expected route handler to exist", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux, _ := newTestRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"DELETE", "/predict"},
		{"POST", "/predictions"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestPredictThroughRouter(t *testing.T) {
	mux, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeFormRequest("/predict", url.Values{"Age": {"41"}}))
	testutil.AssertStatus(t, w, http.StatusOK)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/predictions", map[string]string{
		"X-Admin-Key": testutil.TestAdminKey,
	}))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.PredictionListResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Count != 1 || resp.Predictions[0].Age != 41 {
		t.Errorf("Expected one record for age 41, got %+v", resp)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	mux, _ := newTestRouter(t)

	mux.ServeHTTP(httptest.NewRecorder(), testutil.MakeFormRequest("/predict", url.Values{"Age": {"33"}}))
	mux.ServeHTTP(httptest.NewRecorder(), testutil.MakeFormRequest("/predict", url.Values{"Age": {"old"}}))

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	body := w.Body.String()
	for _, want := range []string{
		`psychopredict_http_requests_total{code="200",route="POST /predict"} 1`,
		`psychopredict_http_requests_total{code="400",route="POST /predict"} 1`,
		"psychopredict_predictions_total",
		"psychopredict_inference_duration_seconds_count 1",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected metrics to contain %q", want)
		}
	}
}
