package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"font-catalog/core/catalog"
	"font-catalog/core/config"
	"font-catalog/core/database"
	"font-catalog/core/loader"
	"font-catalog/core/logger"
	"font-catalog/core/middleware/auth"
	"font-catalog/core/middleware/rayid"
	"font-catalog/core/provider/fontdb"
	"font-catalog/feature/fonts"
	"font-catalog/feature/verify"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the font catalog server",
	Long:  `Builds the font catalog from the configured source and starts the HTTP server.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Build the enumeration provider
		provider, db, err := newProvider(cfg, logg)
		if err != nil {
			logg.Fatal("Failed to create font provider", zap.Error(err))
		}

		// The verify feature needs a registry database even when the catalog
		// itself is fed from dirs or a bucket.
		if db == nil {
			if conn, err := database.Connect(cfg.Database); err != nil {
				logg.Warn("Optional registry database connection failed", zap.Error(err))
			} else {
				db = conn
				logg.Info("Connected to font registry database")
			}
		}
		migrateRegistry(db, logg)

		// 4. Build the catalog
		collection, err := catalog.New(cmd.Context(), provider)
		if err != nil {
			logg.Fatal("Failed to build font catalog", zap.Error(err))
		}
		logg.Info("Font catalog built",
			zap.String("source", cfg.Fonts.Source),
			zap.Int("families", collection.Len()))

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(fonts.NewFeature(collection, logg))
		mgr.Register(verify.NewFeature(provider, db, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func migrateRegistry(db *gorm.DB, logg *zap.Logger) {
	if db == nil {
		return
	}
	if err := fontdb.Migrate(db); err != nil {
		logg.Warn("Font registry migration failed", zap.Error(err))
	}
}

func init() {
	RootCmd.AddCommand(startCmd)
}
