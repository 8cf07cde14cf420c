package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/haanhduc/mycontact/internal/bootstrap"
	"github.com/haanhduc/mycontact/internal/infrastructure/db"
	"github.com/haanhduc/mycontact/internal/infrastructure/mail"
)

const envPrefix = "MYCONTACT"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mycontact",
		Short: "Multi-tenant contact management API",
	}

	cobra.OnInitialize(initConfig)

	cmd.PersistentFlags().String("config", "", "Config file path (optional).")
	_ = viper.BindPFlag("config", cmd.PersistentFlags().Lookup("config"))

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMigrateCmd())

	return cmd
}

func initConfig() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	cfgFile := strings.TrimSpace(viper.GetString("config"))
	if cfgFile == "" {
		return
	}

	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read config: %v\n", err)
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			slog.SetDefault(logger)

			databaseURL := viper.GetString("database_url")
			if databaseURL == "" {
				return errors.New("missing database_url (set MYCONTACT_DATABASE_URL)")
			}
			tokenSecret := viper.GetString("token_secret")
			if tokenSecret == "" {
				return errors.New("missing token_secret (set MYCONTACT_TOKEN_SECRET)")
			}

			conn, err := db.Open(databaseURL)
			if err != nil {
				return err
			}
			if err := db.Migrate(conn); err != nil {
				return err
			}

			pool, err := pgxpool.New(cmd.Context(), databaseURL)
			if err != nil {
				return fmt.Errorf("create pgx pool: %w", err)
			}
			defer pool.Close()

			cfg := bootstrap.Config{
				TokenSecret: tokenSecret,
				AppBaseURL:  stringOr("app_base_url", "http://localhost:8080"),
				AvatarDir:   stringOr("avatar_dir", "./data/avatars"),
				SMTP: mail.Config{
					Host:     viper.GetString("smtp.host"),
					Port:     viper.GetInt("smtp.port"),
					Username: viper.GetString("smtp.username"),
					Password: viper.GetString("smtp.password"),
					From:     viper.GetString("smtp.from"),
					FromName: viper.GetString("smtp.from_name"),
				},
			}

			server := bootstrap.NewHTTPServer(conn, pool, cfg, logger)
			port := stringOr("port", "8080")

			go func() {
				if err := server.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server failed", "error", err)
					os.Exit(1)
				}
			}()
			logger.Info("server started", "port", port)

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(ctx); err != nil {
				return fmt.Errorf("graceful shutdown: %w", err)
			}
			logger.Info("server stopped")
			return nil
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			databaseURL := viper.GetString("database_url")
			if databaseURL == "" {
				return errors.New("missing database_url (set MYCONTACT_DATABASE_URL)")
			}

			conn, err := db.Open(databaseURL)
			if err != nil {
				return err
			}
			return db.Migrate(conn)
		},
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if strings.EqualFold(viper.GetString("log_level"), "debug") {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(viper.GetString("log_format"), "json") {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func stringOr(key, fallback string) string {
	if value := strings.TrimSpace(viper.GetString(key)); value != "" {
		return value
	}
	return fallback
}
