package echo

import (
	e "github.com/labstack/echo/v4"

	"github.com/haanhduc/mycontact/internal/application/auth"
)

type Handlers struct {
	Auth     *AuthHandler
	Contacts *ContactHandler
	Category *CategoryHandler
	Profile  *ProfileHandler
	Transfer *TransferHandler
	Admin    *AdminHandler
}

func RegisterRoutes(server *e.Echo, issuer *auth.TokenIssuer, h Handlers) {
	api := server.Group("/api/v1")

	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/external-login", h.Auth.ExternalLogin)
	api.POST("/auth/forgot-password", h.Auth.ForgotPassword)
	api.POST("/auth/reset-password", h.Auth.ResetPassword)

	authed := api.Group("", RequireSession(issuer))

	authed.GET("/dashboard", h.Contacts.Dashboard)

	authed.GET("/contacts", h.Contacts.ListContacts)
	authed.POST("/contacts", h.Contacts.CreateContact)
	authed.GET("/contacts/:id", h.Contacts.GetContact)
	authed.PUT("/contacts/:id", h.Contacts.UpdateContact)
	authed.DELETE("/contacts/:id", h.Contacts.DeleteContact)

	authed.POST("/contacts/import", h.Transfer.ImportContacts)
	authed.GET("/contacts/export", h.Transfer.ExportContacts)

	authed.GET("/categories", h.Category.ListCategories)
	authed.POST("/categories", h.Category.CreateCategory)
	authed.GET("/categories/:id", h.Category.GetCategory)
	authed.PUT("/categories/:id", h.Category.RenameCategory)

	authed.GET("/profile", h.Profile.GetProfile)
	authed.PUT("/profile", h.Profile.UpdateProfile)
	authed.POST("/profile/change-password", h.Profile.ChangePassword)

	admin := authed.Group("/admin", RequireAdmin())
	admin.GET("/dashboard", h.Admin.Dashboard)
	admin.GET("/users", h.Admin.ListUsers)
	admin.GET("/users/:id", h.Admin.GetUser)
	admin.GET("/contacts", h.Admin.ListContacts)
}
