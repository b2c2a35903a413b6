package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wirecalc/internal/service"
)

func TestSignUp(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		auth     *mockAuth
		wantCode int
		wantBody string
	}{
		{
			name:     "success",
			body:     `{"username":"alice","password":"s3cret"}`,
			auth:     &mockAuth{signUpID: 7},
			wantCode: http.StatusOK,
			wantBody: `"id":7`,
		},
		{
			name:     "missing password",
			body:     `{"username":"alice"}`,
			auth:     &mockAuth{},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "malformed json",
			body:     `{"username":`,
			auth:     &mockAuth{},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "service rejects",
			body:     `{"username":"alice","password":"s3cret"}`,
			auth:     &mockAuth{signUpErr: errors.New("username taken")},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&service.Service{Authorization: tt.auth})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/auth/sign-up", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d; body = %s", w.Code, tt.wantCode, w.Body.String())
			}
			if tt.wantBody != "" && !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Fatalf("body = %s, want substring %s", w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestSignIn(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		auth     *mockAuth
		wantCode int
		wantBody string
	}{
		{
			name:     "success",
			body:     `{"username":"alice","password":"s3cret"}`,
			auth:     &mockAuth{token: "jwt-token"},
			wantCode: http.StatusOK,
			wantBody: `"token":"jwt-token"`,
		},
		{
			name:     "wrong credentials",
			body:     `{"username":"alice","password":"nope"}`,
			auth:     &mockAuth{tokenErr: service.ErrInvalidPassword},
			wantCode: http.StatusUnauthorized,
			wantBody: "invalid credentials",
		},
		{
			name:     "missing body",
			body:     `{}`,
			auth:     &mockAuth{},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&service.Service{Authorization: tt.auth})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/auth/sign-in", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d; body = %s", w.Code, tt.wantCode, w.Body.String())
			}
			if tt.wantBody != "" && !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Fatalf("body = %s, want substring %s", w.Body.String(), tt.wantBody)
			}
		})
	}
}
