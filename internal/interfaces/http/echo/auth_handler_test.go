package echo_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/haanhduc/mycontact/internal/application/auth"
	httpecho "github.com/haanhduc/mycontact/internal/interfaces/http/echo"
)

func authServer(t *testing.T, login *fakeLogin) *echo.Echo {
	t.Helper()

	return newServer(t, httpecho.Handlers{
		Auth:     httpecho.NewAuthHandler(nil, login, nil, nil, nil),
		Contacts: httpecho.NewContactHandler(nil, nil, nil, nil, nil, nil),
		Category: httpecho.NewCategoryHandler(nil),
		Profile:  httpecho.NewProfileHandler(nil),
		Transfer: httpecho.NewTransferHandler(nil, nil),
		Admin:    httpecho.NewAdminHandler(nil),
	})
}

func TestLoginSuccess(t *testing.T) {
	t.Parallel()

	e := authServer(t, &fakeLogin{out: auth.LoginOutput{
		Token:    "signed-token",
		UserID:   3,
		FullName: "Nguyen Van An",
		Role:     "user",
	}})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"an@example.com","password":"secret"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := do(e, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unexpected json: %v", err)
	}
	data := got["data"].(map[string]any)
	if data["token"] != "signed-token" || data["user_id"].(float64) != 3 {
		t.Fatalf("unexpected payload: %#v", data)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	t.Parallel()

	e := authServer(t, &fakeLogin{err: auth.ErrInvalidCredentials})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"an@example.com","password":"wrong"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := do(e, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestLoginLockedAccount(t *testing.T) {
	t.Parallel()

	e := authServer(t, &fakeLogin{err: auth.ErrAccountLocked})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"locked@example.com","password":"secret"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := do(e, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
