package bootstrap

import (
	"log/slog"
	"net/http"

	"github.com/VictoriaMetrics/metrics"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"github.com/haanhduc/mycontact/internal/application/admin"
	"github.com/haanhduc/mycontact/internal/application/auth"
	"github.com/haanhduc/mycontact/internal/application/category"
	contactapp "github.com/haanhduc/mycontact/internal/application/contact"
	"github.com/haanhduc/mycontact/internal/application/importexport"
	"github.com/haanhduc/mycontact/internal/application/profile"
	"github.com/haanhduc/mycontact/internal/infrastructure/excel"
	"github.com/haanhduc/mycontact/internal/infrastructure/file"
	"github.com/haanhduc/mycontact/internal/infrastructure/mail"
	"github.com/haanhduc/mycontact/internal/infrastructure/repository"
	httpecho "github.com/haanhduc/mycontact/internal/interfaces/http/echo"
)

type Config struct {
	TokenSecret string
	AppBaseURL  string
	AvatarDir   string
	SMTP        mail.Config
}

func NewHTTPServer(db *gorm.DB, pool *pgxpool.Pool, cfg Config, logger *slog.Logger) *echo.Echo {
	server := echo.New()
	server.HideBanner = true

	server.Use(middleware.Recover())
	server.Use(middleware.RequestID())
	server.Use(middleware.BodyLimit("10M"))

	users := repository.NewUserRepository(db)
	contacts := repository.NewContactRepository(db)
	categories := repository.NewCategoryRepository(db)
	resets := repository.NewPasswordResetRepository(db)
	bulkInserter := repository.NewContactBulkInsertRepository(pool)

	issuer := auth.NewTokenIssuer(cfg.TokenSecret, 0)
	codec := excel.NewCodec()
	avatars := file.NewLocalAvatarStore(cfg.AvatarDir)
	mailer := mail.NewSender(cfg.SMTP)

	handlers := httpecho.Handlers{
		Auth: httpecho.NewAuthHandler(
			auth.NewRegister(users),
			auth.NewLogin(users, issuer),
			auth.NewCompleteExternalLogin(users, issuer),
			auth.NewForgotPassword(users, resets, mailer, cfg.AppBaseURL, logger),
			auth.NewResetPassword(users, resets, users),
		),
		Contacts: httpecho.NewContactHandler(
			contactapp.NewListContacts(contacts),
			contactapp.NewGetContact(contacts, categories),
			contactapp.NewCreateContact(contacts, categories),
			contactapp.NewUpdateContact(contacts, categories),
			contactapp.NewDeleteContact(contacts),
			contactapp.NewGetDashboard(contacts),
		),
		Category: httpecho.NewCategoryHandler(category.NewService(categories)),
		Profile:  httpecho.NewProfileHandler(profile.NewService(users, avatars)),
		Transfer: httpecho.NewTransferHandler(
			importexport.NewRunImport(contacts, bulkInserter, codec),
			importexport.NewRunExport(contacts, codec),
		),
		Admin: httpecho.NewAdminHandler(admin.NewService(users, contacts)),
	}

	httpecho.RegisterRoutes(server, issuer, handlers)

	// Uploaded avatars are referenced by the public path the store hands out.
	server.Static(avatars.PublicPath, cfg.AvatarDir)

	server.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	server.GET("/metrics", func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderContentType, "text/plain; charset=utf-8")
		metrics.WritePrometheus(c.Response(), true)
		return nil
	})

	return server
}
