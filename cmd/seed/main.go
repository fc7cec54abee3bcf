package main

import (
	"context"
	"flag"
	"log"

	"sacred-journey/internal/config"
	"sacred-journey/internal/database"
	"sacred-journey/internal/features/destination"
	"sacred-journey/internal/features/group"
	"sacred-journey/internal/features/spiritual"
	"sacred-journey/internal/features/user"
	"sacred-journey/internal/logger"
	"sacred-journey/internal/seed"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// Seed runs the database seeding and shuts the app down when done.
// With -force the existing collections are dropped first.
func Seed(force bool) any {
	return func(lc fx.Lifecycle, seeder *seed.Seeder, logger *zap.Logger, shutdowner fx.Shutdowner) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				go func() {
					defer func() {
						if err := shutdowner.Shutdown(); err != nil {
							logger.Error("Failed to shutdown", zap.Error(err))
						}
					}()

					ctx := context.Background()

					if force {
						logger.Info("dropping existing collections")
						if err := seeder.Wipe(ctx); err != nil {
							logger.Error("Failed to wipe database", zap.Error(err))
							return
						}
					}

					if err := seeder.Bootstrap(ctx); err != nil {
						logger.Error("Failed to seed database", zap.Error(err))
						return
					}

					logger.Info("Seeding Complete")
				}()
				return nil
			},
		})
	}
}

func main() {
	force := flag.Bool("force", false, "drop existing collections before seeding")
	flag.Parse()

	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			database.NewDatabase,
			user.NewUserRepository,
			group.NewGroupRepository,
			destination.NewDestinationRepository,
			spiritual.NewContentRepository,
			seed.NewSeeder,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(Seed(*force)),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal(err)
	}

	<-app.Done()
}
