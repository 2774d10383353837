package main

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/ubermelon/shop-backend/internal/auth"
	"github.com/ubermelon/shop-backend/internal/cart"
	"github.com/ubermelon/shop-backend/internal/config"
	"github.com/ubermelon/shop-backend/internal/customer"
	"github.com/ubermelon/shop-backend/internal/melon"
	"github.com/ubermelon/shop-backend/internal/session"
	logx "github.com/ubermelon/shop-backend/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logx.Fatal().Err(err).Msg("bad configuration")
	}
	logx.Init(cfg.Environment)

	melons, customers, err := loadSnapshots(cfg)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to load catalog/customer data")
	}
	logx.Info().
		Int("melons", len(melons)).
		Int("customers", len(customers)).
		Msg("snapshots loaded")

	catalog := melon.NewInMemoryRepository(melons)
	identity := customer.NewInMemoryRepository(customers)
	store := session.NewMemoryStore(cfg.SessionTTL)

	melonHandler := melon.NewHandler(melon.NewService(catalog))
	cartHandler := cart.NewHandler(cart.NewService(catalog))
	authHandler := auth.NewHandler(auth.NewService(identity))

	app := fiber.New()
	setupCORS(app)
	app.Use(session.Middleware(store, []byte(cfg.SessionSecret)))

	melonHandler.RegisterRoutes(app)
	cartHandler.RegisterRoutes(app)
	authHandler.RegisterRoutes(app)

	logx.Info().Str("addr", cfg.Addr).Msg("starting ubermelon server")
	if err := app.Listen(cfg.Addr); err != nil {
		logx.Fatal().Err(err).Msg("server stopped")
	}
}

// loadSnapshots reads the catalog and customer tables once. Both become
// immutable in-memory snapshots; neither source is consulted again.
func loadSnapshots(cfg config.Config) ([]melon.Melon, []customer.Customer, error) {
	if cfg.DatabaseURL == "" {
		melons, err := melon.LoadFile(cfg.MelonFile)
		if err != nil {
			return nil, nil, err
		}
		customers, err := customer.LoadFile(cfg.CustomerFile)
		if err != nil {
			return nil, nil, err
		}
		return melons, customers, nil
	}

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return nil, nil, err
	}

	melons, err := melon.LoadPostgres(db)
	if err != nil {
		return nil, nil, err
	}
	customers, err := customer.LoadPostgres(db)
	if err != nil {
		return nil, nil, err
	}
	return melons, customers, nil
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}
