package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wirecalc/internal/electrical"
	"wirecalc/internal/models"
	"wirecalc/internal/service"
)

func TestHealth(t *testing.T) {
	router := newTestRouter(&service.Service{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestCalculatorRoutes_RequireAuth(t *testing.T) {
	router := newTestRouter(&service.Service{Authorization: &mockAuth{}})

	for _, route := range []struct{ method, path string }{
		{http.MethodPost, "/api/v1/calculator/input"},
		{http.MethodPost, "/api/v1/calculator/reset"},
		{http.MethodGet, "/api/v1/calculator/state"},
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(route.method, route.path, nil)
		router.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without token: status = %d, want 401", route.method, route.path, w.Code)
		}
	}
}

func TestCalculatorInput_OK(t *testing.T) {
	calc := &mockCalculator{
		inputResp: models.CalculatorState{
			ID: 1,
			State: electrical.State{
				Volts:       electrical.Known(120),
				Amps:        electrical.Known(2),
				Ohms:        electrical.Known(60),
				Watts:       electrical.Known(240),
				LastUpdated: electrical.RecentFields{electrical.Amps, electrical.Volts},
			},
			UpdatedAt: time.Now().UTC(),
		},
	}
	router := newTestRouter(&service.Service{
		Authorization: &mockAuth{parseID: 1},
		Calculator:    calc,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/calculator/input",
		strings.NewReader(`{"field":"amps","value":"2"}`))
	req.Header.Set("Authorization", authHeader)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if calc.gotInput.Field != "amps" || calc.gotInput.Value != "2" {
		t.Errorf("service got %+v", calc.gotInput)
	}

	var resp struct {
		Status string `json:"status"`
		State  struct {
			Ohms *float64 `json:"ohms"`
		} `json:"state"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Status != statusUpdated {
		t.Errorf("status field = %q, want %q", resp.Status, statusUpdated)
	}
	if resp.State.Ohms == nil || *resp.State.Ohms != 60 {
		t.Errorf("state.ohms = %v, want 60", resp.State.Ohms)
	}
}

func TestCalculatorInput_EmptyValueReachesService(t *testing.T) {
	calc := &mockCalculator{}
	router := newTestRouter(&service.Service{
		Authorization: &mockAuth{parseID: 1},
		Calculator:    calc,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/calculator/input",
		strings.NewReader(`{"field":"volts","value":""}`))
	req.Header.Set("Authorization", authHeader)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if calc.gotInput.Field != "volts" || calc.gotInput.Value != "" {
		t.Errorf("empty value must survive binding, got %+v", calc.gotInput)
	}
}

func TestCalculatorInput_MissingFieldIs400(t *testing.T) {
	router := newTestRouter(&service.Service{
		Authorization: &mockAuth{parseID: 1},
		Calculator:    &mockCalculator{},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/calculator/input",
		strings.NewReader(`{"value":"120"}`))
	req.Header.Set("Authorization", authHeader)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestCalculatorInput_RejectedInputIs400(t *testing.T) {
	router := newTestRouter(&service.Service{
		Authorization: &mockAuth{parseID: 1},
		Calculator:    &mockCalculator{inputErr: electrical.ErrBadNumber},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/calculator/input",
		strings.NewReader(`{"field":"amps","value":"abc"}`))
	req.Header.Set("Authorization", authHeader)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestCalculatorInput_InternalErrorIs500(t *testing.T) {
	router := newTestRouter(&service.Service{
		Authorization: &mockAuth{parseID: 1},
		Calculator:    &mockCalculator{inputErr: errors.New("db down")},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/calculator/input",
		strings.NewReader(`{"field":"amps","value":"5"}`))
	req.Header.Set("Authorization", authHeader)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

func TestCalculatorReset(t *testing.T) {
	calc := &mockCalculator{resetResp: models.CalculatorState{ID: 1}}
	router := newTestRouter(&service.Service{
		Authorization: &mockAuth{parseID: 1},
		Calculator:    calc,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/calculator/reset", nil)
	req.Header.Set("Authorization", authHeader)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if calc.resets != 1 {
		t.Errorf("resets = %d, want 1", calc.resets)
	}
	if !strings.Contains(w.Body.String(), `"status":"reset"`) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestGetState(t *testing.T) {
	router := newTestRouter(&service.Service{
		Authorization: &mockAuth{parseID: 1},
		Monitoring: &mockMonitoring{stateResp: models.CalculatorState{
			ID:    1,
			State: electrical.State{Volts: electrical.Known(120)},
		}},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/calculator/state", nil)
	req.Header.Set("Authorization", authHeader)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		ID    int      `json:"id"`
		Volts *float64 `json:"volts"`
		Amps  *float64 `json:"amps"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.ID != 1 || resp.Volts == nil || *resp.Volts != 120 {
		t.Errorf("body = %s", w.Body.String())
	}
	if resp.Amps != nil {
		t.Errorf("unset quantity must serialize as null, got %v", *resp.Amps)
	}
}

func TestGetState_ErrorIs500(t *testing.T) {
	router := newTestRouter(&service.Service{
		Authorization: &mockAuth{parseID: 1},
		Monitoring:    &mockMonitoring{stateErr: errors.New("db down")},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/calculator/state", nil)
	req.Header.Set("Authorization", authHeader)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}
