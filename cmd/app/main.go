package main

import (
	"fmt"
	"log/slog"
	"os"

	"northwind/cmd"
	httpin "northwind/internal/adapters/in/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB, err := gorm.Open(postgres.Open(connectionString(configs)), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)
	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
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

func connectionString(configs cmd.Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	server := httpin.NewServer(
		logger,
		app.CreateCreateOrderCommandHandler(),
		app.CreateEditOrderCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateListOrdersQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetOrderDetailedInformationQueryHandler(),
		app.CreateGetNextOrderIDQueryHandler(),
		app.CreateGetCustomerOrderHistoryQueryHandler(),
		app.CreateGetCustomerOrderDetailQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
