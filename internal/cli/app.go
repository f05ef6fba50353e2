package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dkoroteev/streethunt/internal/artifact"
	"github.com/dkoroteev/streethunt/internal/catalog"
	"github.com/dkoroteev/streethunt/internal/config"
	"github.com/dkoroteev/streethunt/internal/geoloc"
	"github.com/dkoroteev/streethunt/internal/logging"
	"github.com/dkoroteev/streethunt/internal/mapsnap"
	"github.com/dkoroteev/streethunt/internal/report"
	"github.com/dkoroteev/streethunt/internal/repositories/progress"
	"github.com/dkoroteev/streethunt/internal/services/hunt"
	"github.com/dkoroteev/streethunt/internal/storage"
)

type App struct {
	config   *config.Config
	db       *sql.DB
	svc      *hunt.Service
	locator  geoloc.Locator
	exporter *report.Exporter
	log      logging.Logger
	out      io.Writer
}

// NewApp opens the progress database and wires the hunt controller with its
// collaborators.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewDefault()

	db, err := storage.Open(ctx, c.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	repo := progress.NewSQLiteRepository(db, log)
	svc := hunt.NewService(ctx, catalog.Default(), repo, log)

	locator := geoloc.Locator(geoloc.NewNominatimLocator(
		c.GeocoderEndpoint, c.GeocoderTimeout, c.DeviceLat, c.DeviceLon, log))

	snap := mapsnap.Snapshotter(mapsnap.NewHTTPSnapshotter(c.StaticMapEndpoint, 10*time.Second))
	if c.StaticMapEndpoint == "" {
		snap = mapsnap.NoopSnapshotter{}
	}

	store, err := artifact.NewFromConfig(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("error initializing export store: %w", err)
	}

	exporter := report.NewExporter(report.NewRenderer(snap, log), store, log)

	return &App{
		config:   c,
		db:       db,
		svc:      svc,
		locator:  locator,
		exporter: exporter,
		log:      log,
		out:      os.Stdout,
	}, nil
}

// Run starts the REPL and blocks until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.db.Close() }()
	a.Root(ctx)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
