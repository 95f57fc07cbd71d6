package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/terraincognita07/endotrack/internal/api"
	"github.com/terraincognita07/endotrack/internal/cli"
	"github.com/terraincognita07/endotrack/internal/db"
	"github.com/terraincognita07/endotrack/internal/services"
)

func main() {
	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location
	dbConfig := resolveDBConfig()

	if len(os.Args) > 1 {
		if err := runCommand(os.Args[1:], dbConfig); err != nil {
			log.Fatal(err)
		}
		return
	}

	secretKey, err := resolveSecretKey()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	port, err := resolvePort()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	cookieSecure := getEnvBool("COOKIE_SECURE", false)

	database, err := db.Open(dbConfig)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()

	var oidcProvider *api.OIDCProvider
	if oidcConfig := resolveOIDCConfig(); oidcConfig.Enabled() {
		oidcProvider, err = api.NewOIDCProvider(lifecycleCtx, oidcConfig)
		if err != nil {
			log.Fatalf("oidc init failed: %v", err)
		}
	}

	handler, err := api.NewHandler(database, api.Config{
		SecretKey:    secretKey,
		Location:     location,
		CookieSecure: cookieSecure,
		OIDC:         oidcProvider,
	})
	if err != nil {
		log.Fatalf("handler init failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "EndoTrack",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestIDMiddlewareConfig()))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${method} ${path} ${latency}\n",
	}))
	app.Use(compress.New())
	if corsConfig, ok := corsMiddlewareConfig(getEnv("CORS_ORIGINS", "")); ok {
		app.Use(cors.New(corsConfig))
	}
	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)

	repos := db.NewRepositories(database)
	reminders := services.NewDoseReminderService(repos.Users, repos.Medications, repos.Notifications, location, services.ReminderConfig{
		Interval:         getEnvDuration("REMINDER_INTERVAL", 5*time.Minute),
		Lead:             getEnvDuration("REMINDER_LEAD", 30*time.Minute),
		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
	})
	reminders.Start(lifecycleCtx)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("EndoTrack listening on http://0.0.0.0:%s (db: %s, tz: %s, oidc: %t, telegram: %t)",
		port, dbConfig.Driver, location.String(), oidcProvider != nil, reminders.TelegramEnabled())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func runCommand(args []string, dbConfig db.Config) error {
	switch args[0] {
	case "reset-password":
		if len(args) < 2 {
			return errors.New("usage: endotrack reset-password <email>")
		}
		return cli.RunResetPasswordCommand(context.Background(), dbConfig, args[1], os.Stdout)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func resolveSecretKey() (string, error) {
	secret := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	if secret == "" {
		return "", errors.New("SECRET_KEY is required")
	}
	switch strings.ToLower(secret) {
	case "change_me_in_production", "replace_with_at_least_32_random_characters":
		return "", errors.New("SECRET_KEY uses an insecure placeholder")
	}
	if len(secret) < 32 {
		return "", errors.New("SECRET_KEY must be at least 32 characters")
	}
	return secret, nil
}

func resolvePort() (string, error) {
	raw := strings.TrimSpace(getEnv("PORT", "8080"))
	port, err := strconv.Atoi(raw)
	if err != nil || port < 1 || port > 65535 {
		return "", fmt.Errorf("invalid PORT %q", raw)
	}
	return strconv.Itoa(port), nil
}

func resolveDBConfig() db.Config {
	driver := strings.ToLower(strings.TrimSpace(getEnv("DB_DRIVER", db.DriverSQLite)))
	if driver == db.DriverPostgres || driver == "postgresql" {
		return db.Config{Driver: db.DriverPostgres, DSN: getEnv("DATABASE_URL", "")}
	}
	return db.Config{Driver: driver, DSN: getEnv("DB_PATH", filepath.Join("data", "endotrack.db"))}
}

func resolveOIDCConfig() api.OIDCConfig {
	return api.OIDCConfig{
		Issuer:        getEnv("OIDC_ISSUER", ""),
		ClientID:      getEnv("OIDC_CLIENT_ID", ""),
		ClientSecret:  getEnv("OIDC_CLIENT_SECRET", ""),
		RedirectURL:   getEnv("OIDC_REDIRECT_URL", ""),
		PostLoginPath: getEnv("OIDC_POST_LOGIN_PATH", "/"),
	}
}

func requestIDMiddlewareConfig() requestid.Config {
	return requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: uuid.NewString,
	}
}

// corsMiddlewareConfig returns false when no origins are configured. A
// wildcard origin disables credentials, which fiber refuses to combine.
func corsMiddlewareConfig(rawOrigins string) (cors.Config, bool) {
	origins := make([]string, 0)
	for _, origin := range strings.Split(rawOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return cors.Config{}, false
	}

	joined := strings.Join(origins, ",")
	return cors.Config{
		AllowOrigins:     joined,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowCredentials: joined != "*",
	}, true
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return value
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil || value <= 0 {
		log.Printf("invalid %s %q, using %s", key, raw, fallback)
		return fallback
	}
	return value
}
