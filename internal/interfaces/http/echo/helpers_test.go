package echo_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/haanhduc/mycontact/internal/application/auth"
	contactapp "github.com/haanhduc/mycontact/internal/application/contact"
	"github.com/haanhduc/mycontact/internal/application/importexport"
	userdomain "github.com/haanhduc/mycontact/internal/domain/user"
	httpecho "github.com/haanhduc/mycontact/internal/interfaces/http/echo"
)

var testIssuer = auth.NewTokenIssuer("handler-test-secret", 0)

func newServer(t *testing.T, h httpecho.Handlers) *echo.Echo {
	t.Helper()

	e := echo.New()
	httpecho.RegisterRoutes(e, testIssuer, h)
	return e
}

func bearerFor(t *testing.T, userID int64, role string) string {
	t.Helper()

	token, err := testIssuer.Issue(userdomain.User{ID: userID, Role: role})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return "Bearer " + token
}

func do(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

type fakeLogin struct {
	out auth.LoginOutput
	err error
}

func (f *fakeLogin) Execute(ctx context.Context, in auth.LoginInput) (auth.LoginOutput, error) {
	if f.err != nil {
		return auth.LoginOutput{}, f.err
	}
	return f.out, nil
}

type fakeListContacts struct {
	out contactapp.ListContactsOutput
	got contactapp.ListContactsInput
	err error
}

func (f *fakeListContacts) Execute(ctx context.Context, in contactapp.ListContactsInput) (contactapp.ListContactsOutput, error) {
	f.got = in
	if f.err != nil {
		return contactapp.ListContactsOutput{}, f.err
	}
	return f.out, nil
}

type fakeCreateContact struct {
	out contactapp.CreateContactOutput
	err error
}

func (f *fakeCreateContact) Execute(ctx context.Context, in contactapp.CreateContactInput) (contactapp.CreateContactOutput, error) {
	if f.err != nil {
		return contactapp.CreateContactOutput{}, f.err
	}
	return f.out, nil
}

type fakeRunImport struct {
	out importexport.RunImportOutput
	got importexport.RunImportInput
	err error
}

func (f *fakeRunImport) Execute(ctx context.Context, in importexport.RunImportInput) (importexport.RunImportOutput, error) {
	f.got = in
	if f.err != nil {
		return importexport.RunImportOutput{}, f.err
	}
	return f.out, nil
}

type fakeRunExport struct {
	out importexport.RunExportOutput
	err error
}

func (f *fakeRunExport) Execute(ctx context.Context, in importexport.RunExportInput) (importexport.RunExportOutput, error) {
	if f.err != nil {
		return importexport.RunExportOutput{}, f.err
	}
	return f.out, nil
}
