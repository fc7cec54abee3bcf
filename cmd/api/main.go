package main

import (
	"context"
	"fmt"
	"log"
	common_api "sacred-journey/internal/common/api"
	"sacred-journey/internal/config"
	"sacred-journey/internal/database"
	"sacred-journey/internal/features/auth"
	"sacred-journey/internal/features/destination"
	"sacred-journey/internal/features/group"
	"sacred-journey/internal/features/itinerary"
	"sacred-journey/internal/features/spiritual"
	"sacred-journey/internal/features/system"
	"sacred-journey/internal/features/user"
	"sacred-journey/internal/logger"
	"sacred-journey/internal/middleware"
	"sacred-journey/internal/seed"
	"sacred-journey/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(middleware.CORSMiddleware())

	return app
}

// AsRoute is a helper function to reduce boilerplate.
// It tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

// RegisterAllRoutes takes the group "routes" (slice of interfaces)
// and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	for _, route := range routes {
		route.Setup(app)
	}
}

// RegisterAllRoutesWithAnnotation wraps RegisterAllRoutes with fx annotations
var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			// Load Config
			config.LoadConfig,

			// Initialize Logger
			logger.NewLogger,

			// Initialize Fiber Server
			NewFiberServer,

			// Initialize Database
			database.NewDatabase,

			// Initialize Repository
			user.NewUserRepository,
			group.NewGroupRepository,
			itinerary.NewItineraryRepository,
			destination.NewDestinationRepository,
			spiritual.NewContentRepository,

			auth.NewAuthService,
			user.NewUserService,
			group.NewGroupService,
			itinerary.NewItineraryService,
			destination.NewDestinationService,
			spiritual.NewContentService,

			// Initialize Controller
			auth.NewAuthController,
			user.NewUserController,
			group.NewGroupController,
			itinerary.NewItineraryController,
			destination.NewDestinationController,
			spiritual.NewContentController,

			seed.NewSeeder,
			group.NewStatusScheduler,

			// Initialize API Routes
			AsRoute(auth.NewAuthApi),
			AsRoute(user.NewUserApi),
			AsRoute(group.NewGroupApi),
			AsRoute(itinerary.NewItineraryApi),
			AsRoute(destination.NewDestinationApi),
			AsRoute(spiritual.NewContentApi),
			AsRoute(system.NewSystemApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			// Signing secret must be in place before any route runs
			func(cfg *config.Config) {
				utils.SetSecret(cfg.JWTSecret)
			},

			// Register Routes & Start
			RegisterAllRoutesWithAnnotation,
			StartServer,

			// Seed sample data on first boot
			func(lc fx.Lifecycle, seeder *seed.Seeder) {
				lc.Append(fx.Hook{
					OnStart: func(ctx context.Context) error {
						return seeder.Bootstrap(ctx)
					},
				})
			},

			// Roll group statuses daily
			func(lc fx.Lifecycle, scheduler *group.StatusScheduler) {
				lc.Append(fx.Hook{
					OnStart: scheduler.Start,
					OnStop: func(ctx context.Context) error {
						return scheduler.Stop()
					},
				})
			},
		),
	)

	app.Run()
}
