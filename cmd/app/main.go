package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"moving/cmd"
	httpadapter "moving/internal/adapters/in/http"
	"moving/internal/adapters/out/postgres/bookingrepo"
	"moving/internal/adapters/out/postgres/inventoryrepo"
	"moving/internal/adapters/out/postgres/moverrepo"
	"moving/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateRecalculateRatingsCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                  goDotEnvVariable("HTTP_PORT"),
		DBHost:                    goDotEnvVariable("DB_HOST"),
		DBPort:                    goDotEnvVariable("DB_PORT"),
		DBUser:                    goDotEnvVariable("DB_USER"),
		DBPassword:                goDotEnvVariable("DB_PASSWORD"),
		DBName:                    goDotEnvVariable("DB_NAME"),
		DBSslMode:                 goDotEnvVariable("DB_SSLMODE"),
		AllowCancelFromInProgress: goDotEnvVariable("ALLOW_CANCEL_IN_PROGRESS") == "true",
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&moverrepo.MoverDTO{},
		&bookingrepo.BookingDTO{},
		&bookingrepo.StatusUpdateDTO{},
		&bookingrepo.ReviewDTO{},
		&inventoryrepo.InventoryDTO{},
		&inventoryrepo.InventoryItemDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateBookingCommandHandler(),
		app.CreateUpdateBookingStatusCommandHandler(),
		app.CreateAttachReviewCommandHandler(),
		app.CreateCreateInventoryCommandHandler(),
		app.CreateUpdateInventoryCommandHandler(),
		app.CreateDeleteInventoryCommandHandler(),
		app.CreateEstimateQueryHandler(),
		app.CreateGetBookingQueryHandler(),
		app.CreateGetTrackingQueryHandler(),
		app.CreateGetAvailableMoversQueryHandler(),
		app.CreateGetInventoryQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
