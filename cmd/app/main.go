package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"sewrica/cmd"
	"sewrica/internal/adapters/in/http"
	"sewrica/internal/adapters/out/cardprocessor"
	"sewrica/internal/adapters/out/natspub"
	"sewrica/internal/adapters/out/postgres/orderrepo"
	"sewrica/internal/adapters/out/postgres/paymentrepo"
	"sewrica/internal/adapters/out/postgres/staffrepo"
	"sewrica/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	publisher, err := natspub.NewPublisher(configs.NatsURL, configs.OrderEventsSubject)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer publisher.Close()

	processor, err := cardprocessor.NewHTTPClient(configs.CardProcessorURL, configs.CardProcessorSecretKey)
	if err != nil {
		log.Fatalf("Failed to create card processor client: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB,
		natspub.NewLoggingPublisher(publisher, logger), processor)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	jobManager := jobs.NewJobManager(app.CreateGetDailySalesReportQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                     goDotEnvVariable("HTTP_PORT"),
		DBHost:                       goDotEnvVariable("DB_HOST"),
		DBPort:                       goDotEnvVariable("DB_PORT"),
		DBUser:                       goDotEnvVariable("DB_USER"),
		DBPassword:                   goDotEnvVariable("DB_PASSWORD"),
		DBName:                       goDotEnvVariable("DB_NAME"),
		DBSslMode:                    goDotEnvVariable("DB_SSLMODE"),
		NatsURL:                      goDotEnvVariable("NATS_URL"),
		OrderEventsSubject:           goDotEnvVariable("ORDER_EVENTS_SUBJECT"),
		CardProcessorURL:             goDotEnvVariable("CARD_PROCESSOR_URL"),
		CardProcessorSecretKey:       goDotEnvVariable("CARD_PROCESSOR_SECRET_KEY"),
		MobileMoneyRecipient:         goDotEnvVariable("MOBILE_MONEY_RECIPIENT"),
		MobileMoneyAccount:           goDotEnvVariable("MOBILE_MONEY_ACCOUNT"),
		MobileMoneyDialCode:          goDotEnvVariable("MOBILE_MONEY_DIAL_CODE"),
		RequirePaymentBeforeDelivery: goDotEnvBool("REQUIRE_PAYMENT_BEFORE_DELIVERY", true),
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

func goDotEnvBool(key string, fallback bool) bool {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		log.Fatalf("Invalid boolean for %s: %q", key, raw)
	}
	return value
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.StatusChangeDTO{},
		&staffrepo.StaffDTO{},
		&paymentrepo.PaymentDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := http.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateInitiatePaymentCommandHandler(),
		app.CreateConfirmCardPaymentCommandHandler(),
		app.CreateRecordCashPaymentCommandHandler(),
		app.CreateConfirmMobileMoneyCommandHandler(),
		app.CreateCreateStaffCommandHandler(),
		app.CreateAssignStaffCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetAvailableStaffQueryHandler(),
		app.CreateGetDailySalesReportQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
