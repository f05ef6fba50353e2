package report

import (
	"context"
	"strings"
	"time"

	"github.com/dkoroteev/streethunt/internal/artifact"
	"github.com/dkoroteev/streethunt/internal/logging"
	"github.com/dkoroteev/streethunt/internal/models"
)

// Result is the outcome of an export: the artifact location on success, the
// error otherwise. Nothing is persisted when Err is set.
type Result struct {
	Location string
	Err      error
}

// Exporter renders reports and publishes them through an artifact.Store.
// Export operations are asynchronous and deliver exactly one Result on the
// returned channel; there is deliberately no blocking variant.
type Exporter struct {
	renderer *Renderer
	store    artifact.Store
	log      logging.Logger
	now      func() time.Time
}

func NewExporter(renderer *Renderer, store artifact.Store, log logging.Logger) *Exporter {
	return &Exporter{renderer: renderer, store: store, log: log, now: time.Now}
}

// Export renders the full report for the given catalog and records and
// publishes it. The channel is buffered; the caller may abandon it.
func (e *Exporter) Export(ctx context.Context, items []models.HuntItem, records map[string]models.ProgressRecord, author string) <-chan Result {
	out := make(chan Result, 1)

	go func() {
		defer close(out)

		data, err := e.renderer.CreateReport(ctx, items, records, author)
		if err != nil {
			out <- Result{Err: err}
			return
		}
		out <- e.publish(ctx, reportName(e.now()), data)
	}()

	return out
}

// ExportItem renders and publishes the single-item report.
func (e *Exporter) ExportItem(ctx context.Context, item models.HuntItem, rec models.ProgressRecord) <-chan Result {
	out := make(chan Result, 1)

	go func() {
		defer close(out)

		data, err := e.renderer.CreateItemReport(ctx, item, rec)
		if err != nil {
			out <- Result{Err: err}
			return
		}
		out <- e.publish(ctx, "Item-"+item.ID+".pdf", data)
	}()

	return out
}

func (e *Exporter) publish(ctx context.Context, name string, data []byte) Result {
	loc, err := e.store.Put(ctx, name, data)
	if err != nil {
		return Result{Err: err}
	}
	e.log.Info(ctx, "report exported", "location", loc, "bytes", len(data))
	return Result{Location: loc}
}

// reportName stamps the artifact with an RFC 3339 timestamp, colons replaced
// so the name stays filesystem-safe.
func reportName(t time.Time) string {
	ts := strings.ReplaceAll(t.UTC().Format(time.RFC3339), ":", "-")
	return "ScavengerReport-" + ts + ".pdf"
}
