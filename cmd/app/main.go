package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ordering/cmd"
	orderhttp "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/postgres/migrations"
	"ordering/internal/pkg/logger"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	app := &cli.App{
		Name:  "ordering",
		Usage: "purchase order lifecycle service",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "env-file", Value: ".env", Usage: "dotenv file read before the environment"},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the HTTP API and the scheduled jobs",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "migrate", Usage: "apply pending migrations before serving"},
				},
				Action: serve,
			},
			{
				Name:  "migrate",
				Usage: "manage the database schema",
				Subcommands: []*cli.Command{
					{Name: "up", Usage: "apply every pending migration", Action: migrateUp},
					{
						Name:  "down",
						Usage: "roll back migrations",
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "steps", Value: 1, Usage: "number of migrations to roll back"},
						},
						Action: migrateDown,
					},
					{Name: "version", Usage: "print the applied schema version", Action: migrateVersion},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads configuration and builds the logger and the database handle.
func bootstrap(c *cli.Context) (cmd.Config, *zap.Logger, *gorm.DB, error) {
	config, err := cmd.LoadConfig(c.String("env-file"))
	if err != nil {
		return cmd.Config{}, nil, nil, err
	}

	log, err := logger.New(config.LogEnv, config.LogLevel)
	if err != nil {
		return cmd.Config{}, nil, nil, err
	}

	db, err := gorm.Open(postgres.Open(config.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return cmd.Config{}, nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	return config, log, db, nil
}

func serve(c *cli.Context) error {
	config, log, db, err := bootstrap(c)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if c.Bool("migrate") {
		if err := runMigrations(db, migrations.Up); err != nil {
			return err
		}
	}

	root, err := cmd.NewCompositionRoot(config, db, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := root.Close(); err != nil {
			log.Error("close event publisher", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	router, err := orderhttp.NewRouter(ctx, root.CreateHTTPServer(), orderhttp.NewMetrics("api"))
	if err != nil {
		return err
	}

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	serveErr := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)
		log.Info("http server listening", zap.String("addr", addr))
		if err := router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return router.Shutdown(shutdownCtx)
}

func migrateUp(c *cli.Context) error {
	_, log, db, err := bootstrap(c)
	if err != nil {
		return err
	}
	if err := runMigrations(db, migrations.Up); err != nil {
		return err
	}
	log.Info("migrations applied")
	return nil
}

func migrateDown(c *cli.Context) error {
	_, log, db, err := bootstrap(c)
	if err != nil {
		return err
	}
	steps := c.Int("steps")
	if err := runMigrations(db, func(sqlDB *sql.DB) error { return migrations.Down(sqlDB, steps) }); err != nil {
		return err
	}
	log.Info("migrations rolled back", zap.Int("steps", steps))
	return nil
}

func migrateVersion(c *cli.Context) error {
	_, _, db, err := bootstrap(c)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	version, dirty, err := migrations.Version(sqlDB)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "version %d (dirty: %t)\n", version, dirty)
	return nil
}

func runMigrations(db *gorm.DB, run func(*sql.DB) error) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("database handle: %w", err)
	}
	return run(sqlDB)
}
