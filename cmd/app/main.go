package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"gofer/cmd"
	"gofer/internal/adapters/out/postgres/agentrepo"
	"gofer/internal/adapters/out/postgres/notificationrepo"
	"gofer/internal/adapters/out/postgres/orderrepo"
	"gofer/internal/adapters/out/postgres/paymentrepo"
	"gofer/internal/adapters/out/postgres/servicerepo"
	"gofer/internal/adapters/out/postgres/userrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("composition root failed: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("background jobs failed to start: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("no .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:             os.Getenv("HTTP_PORT"),
		DBHost:               os.Getenv("DB_HOST"),
		DBPort:               os.Getenv("DB_PORT"),
		DBUser:               os.Getenv("DB_USER"),
		DBPassword:           os.Getenv("DB_PASSWORD"),
		DBName:               os.Getenv("DB_NAME"),
		DBSslMode:            os.Getenv("DB_SSLMODE"),
		JWTSecret:            os.Getenv("JWT_SECRET"),
		PaymentAPIKey:        os.Getenv("PAYMENT_API_KEY"),
		PaymentWebhookSecret: os.Getenv("PAYMENT_WEBHOOK_SECRET"),
		PaymentBaseURL:       os.Getenv("PAYMENT_BASE_URL"),
		SMSAccountSID:        os.Getenv("SMS_ACCOUNT_SID"),
		SMSAuthToken:         os.Getenv("SMS_AUTH_TOKEN"),
		SMSFromNumber:        os.Getenv("SMS_FROM_NUMBER"),
		SMSBaseURL:           os.Getenv("SMS_BASE_URL"),
	}
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = gormDB.AutoMigrate(
		&userrepo.UserDTO{},
		&agentrepo.AgentDTO{},
		&servicerepo.ServiceDTO{},
		&orderrepo.OrderDTO{},
		&paymentrepo.PaymentDTO{},
		&notificationrepo.NotificationDTO{},
	)
	if err != nil {
		return nil, err
	}

	return gormDB, nil
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := app.CreateHTTPServer()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
