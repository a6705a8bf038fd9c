package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	httpadapter "orderdesk/internal/adapters/in/http"
	"orderdesk/internal/adapters/out/memory"
	"orderdesk/internal/adapters/out/postgres"
	"orderdesk/internal/core/application/usecases"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot owns the store connection and builds every handler over it.
type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory
}

// NewCompositionRoot opens the configured store. For PostgreSQL the schema is
// migrated before the root is returned.
func NewCompositionRoot(ctx context.Context, config Config, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{config: config, logger: logger}

	switch config.Store {
	case StoreMemory:
		root.uowFactory = memory.NewUnitOfWorkFactory(memory.NewStore())
	default:
		dsn := postgres.DSN(config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode)
		db, err := postgres.Open(ctx, dsn)
		if err != nil {
			return nil, err
		}
		if err = postgres.Migrate(ctx, db); err != nil {
			_ = postgres.Close(db)
			return nil, err
		}
		root.gormDB = db
		root.uowFactory = postgres.NewGormUnitOfWorkFactory(db, logger)
	}

	logger.Info("store ready", "store", config.Store)
	return root, nil
}

// Close releases the database connection, if any.
func (c *CompositionRoot) Close() error {
	if c.gormDB == nil {
		return nil
	}
	return postgres.Close(c.gormDB)
}

// Handlers wires every use case. Queries run on repositories outside any transaction.
func (c *CompositionRoot) Handlers() usecases.Handlers {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})

	reader := c.uowFactory.Create()
	return usecases.NewHandlers(f, reader.OrderRepository(), reader.ShipmentRepository(), c.logger)
}

// Serve returns the serve command body: the HTTP API and the scheduled jobs, both
// stopped when ctx is cancelled.
func (c *CompositionRoot) Serve(handlers usecases.Handlers) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		doc, err := httpadapter.LoadOpenAPI(ctx)
		if err != nil {
			return err
		}
		e, err := httpadapter.NewEcho(httpadapter.NewServer(handlers, c.logger), doc, c.logger)
		if err != nil {
			return err
		}

		jobManager, err := jobs.NewJobManager(handlers.ListOverdueShipments, c.config.OverdueSchedule, c.logger)
		if err != nil {
			return err
		}
		if err = jobManager.StartAll(); err != nil {
			return err
		}
		defer jobManager.StopAll()

		address := net.JoinHostPort("0.0.0.0", c.config.HTTPPort)
		c.logger.InfoContext(ctx, "http server listening", "address", address)
		if err = httpadapter.Serve(ctx, e, address); err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	}
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
