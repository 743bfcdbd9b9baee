package main

import (
	"fmt"
	"log/slog"
	stdhttp "net/http"
	"os"
	"strconv"
	"time"

	"foodcourt/cmd"
	httpserver "foodcourt/internal/adapters/in/http"
	"foodcourt/internal/adapters/out/httpgw"
	"foodcourt/internal/adapters/out/postgres/orderrepo"
	"foodcourt/internal/adapters/out/postgres/platerepo"
	"foodcourt/internal/adapters/out/postgres/restaurantrepo"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db := connectDB(configs)
	migrateDB(db)

	app := cmd.NewCompositionRoot(configs, db, logger)

	jobManager := jobs.NewJobManager(db, staleThreshold(configs), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		UserServiceURL:          goDotEnvVariable("USER_SERVICE_URL"),
		TraceabilityServiceURL:  goDotEnvVariable("TRACEABILITY_SERVICE_URL"),
		NotificationServiceURL:  goDotEnvVariable("NOTIFICATION_SERVICE_URL"),
		StaleOrderThresholdMins: goDotEnvVariable("STALE_ORDER_THRESHOLD_MINUTES"),
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

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	return db
}

func migrateDB(db *gorm.DB) {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&platerepo.PlateDTO{},
		&restaurantrepo.RestaurantDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Backs the one-active-order rule against concurrent inserts; the
	// application check alone would race.
	activeIndex := fmt.Sprintf(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_orders_one_active_per_client "+
			"ON orders (client_id) WHERE status IN (%d, %d, %d)",
		int(order.Pending), int(order.InPreparation), int(order.Ready),
	)
	if err := db.Exec(activeIndex).Error; err != nil {
		log.Fatalf("Failed to create active order index: %v", err)
	}
}

func staleThreshold(configs cmd.Config) time.Duration {
	minutes, err := strconv.Atoi(configs.StaleOrderThresholdMins)
	if err != nil || minutes <= 0 {
		minutes = 15
	}
	return time.Duration(minutes) * time.Minute
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	// Forward the caller's Authorization header to downstream services.
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := httpgw.WithAuthorization(
				c.Request().Context(), c.Request().Header.Get("Authorization"))
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	})

	e.GET("/health", func(c echo.Context) error {
		return c.String(stdhttp.StatusOK, "Healthy")
	})

	server := httpserver.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateAssignOrderCommandHandler(),
		app.CreateMarkOrderReadyCommandHandler(),
		app.CreateDeliverOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateCreateRestaurantCommandHandler(),
		app.CreateCreatePlateCommandHandler(),
		app.CreateUpdatePlateCommandHandler(),
		app.CreateTogglePlateStatusCommandHandler(),
		app.CreateListOrdersByStatusQueryHandler(),
		app.CreateListRestaurantsQueryHandler(),
		app.CreateListPlatesByRestaurantQueryHandler(),
		app.CreateGetOrderTracesQueryHandler(),
		app.CreateGetEmployeesRankingQueryHandler(),
		app.CreateValidateOwnerRestaurantQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
