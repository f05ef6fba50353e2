// Package report renders found-item reports as PDF documents: one page per
// found item with its photo, discovery details and an optional map snapshot.
package report

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dkoroteev/streethunt/internal/logging"
	"github.com/dkoroteev/streethunt/internal/mapsnap"
	"github.com/dkoroteev/streethunt/internal/models"
	"github.com/go-pdf/fpdf"
	"golang.org/x/sync/errgroup"
)

// Letter-size page in points, matching the layout constants below.
const (
	pageW = 612.0
	pageH = 792.0

	marginX   = 24.0
	titleY    = 24.0
	detailsY  = 56.0
	photoTop  = 180.0
	photoMaxH = 360.0
	mapTop    = 560.0
	mapMaxH   = 196.0
)

const timeLayout = "Jan 2, 2006 3:04 PM"

// Renderer builds PDF reports. Map snapshots come from the Snapshotter and
// are strictly optional: a fetch failure just produces a page without a map.
type Renderer struct {
	snap mapsnap.Snapshotter
	log  logging.Logger
}

func NewRenderer(snap mapsnap.Snapshotter, log logging.Logger) *Renderer {
	return &Renderer{snap: snap, log: log}
}

type foundPage struct {
	item   models.HuntItem
	rec    models.ProgressRecord
	mapImg []byte
}

// CreateReport renders one page per found item, in catalog order. With no
// found items it renders a single placeholder page. The author string goes
// into the document metadata.
func (r *Renderer) CreateReport(ctx context.Context, items []models.HuntItem, records map[string]models.ProgressRecord, author string) ([]byte, error) {
	var pages []*foundPage
	for _, item := range items {
		rec, ok := records[item.ID]
		if !ok || !rec.Found || len(rec.Photo) == 0 {
			continue
		}
		pages = append(pages, &foundPage{item: item, rec: rec})
	}

	r.fetchSnapshots(ctx, pages)

	doc := newDoc(author)
	if len(pages) == 0 {
		doc.AddPage()
		doc.SetFont("Helvetica", "B", 22)
		doc.SetXY(32, 40)
		doc.MultiCell(pageW-64, 28, "No items found yet.\nTake some photos, then export again.", "", "L", false)
	} else {
		for _, p := range pages {
			drawItemPage(doc, p.item, p.rec, p.mapImg)
		}
	}

	return output(doc)
}

// CreateItemReport renders a one-page document for a single item. A record
// without a photo gets an italic placeholder instead.
func (r *Renderer) CreateItemReport(ctx context.Context, item models.HuntItem, rec models.ProgressRecord) ([]byte, error) {
	var mapImg []byte
	if rec.FoundLat != nil && rec.FoundLon != nil {
		img, err := r.snap.Snapshot(ctx, *rec.FoundLat, *rec.FoundLon)
		if err != nil {
			r.log.Warn(ctx, "map snapshot unavailable", "item", item.ID, "error", err)
		} else {
			mapImg = img
		}
	}

	doc := newDoc("Scavenger Hunt")
	drawItemPage(doc, item, rec, mapImg)
	return output(doc)
}

// fetchSnapshots fills in the map image of every page whose record carries
// coordinates. Fetches run concurrently and failures only cost the page its
// map.
func (r *Renderer) fetchSnapshots(ctx context.Context, pages []*foundPage) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for _, p := range pages {
		p := p
		if p.rec.FoundLat == nil || p.rec.FoundLon == nil {
			continue
		}
		g.Go(func() error {
			img, err := r.snap.Snapshot(ctx, *p.rec.FoundLat, *p.rec.FoundLon)
			if err != nil {
				r.log.Warn(ctx, "map snapshot unavailable", "item", p.item.ID, "error", err)
				return nil
			}
			p.mapImg = img
			return nil
		})
	}
	_ = g.Wait()
}

func newDoc(author string) *fpdf.Fpdf {
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetTitle("Scavenger Hunt Report", true)
	doc.SetAuthor(author, true)
	doc.SetCreator("Scavenger Hunt", true)
	doc.SetAutoPageBreak(false, 0)
	return doc
}

func drawItemPage(doc *fpdf.Fpdf, item models.HuntItem, rec models.ProgressRecord, mapImg []byte) {
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 20)
	doc.SetXY(marginX, titleY)
	doc.CellFormat(pageW-2*marginX, 26, item.Name, "", 0, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 14)
	doc.SetXY(marginX, detailsY)
	doc.MultiCell(pageW-2*marginX, 18, details(item, rec), "", "L", false)

	if len(rec.Photo) > 0 {
		placeImage(doc, item.ID+"-photo", "JPG", rec.Photo, photoTop, photoMaxH)
	} else {
		doc.SetFont("Helvetica", "I", 14)
		doc.SetXY(marginX, photoTop)
		doc.CellFormat(pageW-2*marginX, 18, "No image captured yet.", "", 0, "L", false, 0, "")
	}

	if len(mapImg) > 0 {
		placeImage(doc, item.ID+"-map", "PNG", mapImg, mapTop, mapMaxH)
	}
}

func details(item models.HuntItem, rec models.ProgressRecord) string {
	lines := []string{
		"Address: " + item.Address,
		"Clue: " + item.Clue,
	}
	when := time.Now()
	if rec.FoundAt != nil {
		when = *rec.FoundAt
	}
	lines = append(lines, "Photo Date: "+when.Format(timeLayout))
	if rec.FoundAddress != nil {
		lines = append(lines, "Found near: "+*rec.FoundAddress)
	}
	if rec.FoundLat != nil && rec.FoundLon != nil {
		lines = append(lines, fmt.Sprintf("Coordinates: %.5f, %.5f", *rec.FoundLat, *rec.FoundLon))
	}
	return strings.Join(lines, "\n")
}

// placeImage centres an image horizontally, fitted into the band starting at
// top with the given height cap, preserving aspect ratio.
func placeImage(doc *fpdf.Fpdf, name, imgType string, data []byte, top, maxH float64) {
	opts := fpdf.ImageOptions{ImageType: imgType, ReadDpi: false}
	info := doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if info == nil || info.Width() <= 0 || info.Height() <= 0 {
		return
	}

	maxW := pageW - 2*marginX
	ratio := info.Width() / info.Height()
	w := maxW
	h := w / ratio
	if h > maxH {
		h = maxH
		w = h * ratio
	}
	doc.ImageOptions(name, (pageW-w)/2, top, w, h, false, opts, 0, "")
}

func output(doc *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
