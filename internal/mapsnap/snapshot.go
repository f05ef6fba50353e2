// Package mapsnap fetches static map images for report pages.
package mapsnap

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Snapshotter renders a map image centred on a coordinate.
type Snapshotter interface {
	Snapshot(ctx context.Context, lat, lon float64) ([]byte, error)
}

// HTTPSnapshotter fetches PNG snapshots from a staticmap-style endpoint.
type HTTPSnapshotter struct {
	endpoint string
	width    int
	height   int
	zoom     int
	client   *http.Client
}

func NewHTTPSnapshotter(endpoint string, timeout time.Duration) *HTTPSnapshotter {
	return &HTTPSnapshotter{
		endpoint: endpoint,
		width:    520,
		height:   280,
		zoom:     16,
		client:   &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSnapshotter) Snapshot(ctx context.Context, lat, lon float64) ([]byte, error) {
	center := strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lon, 'f', -1, 64)

	q := url.Values{}
	q.Set("center", center)
	q.Set("zoom", strconv.Itoa(s.zoom))
	q.Set("size", fmt.Sprintf("%dx%d", s.width, s.height))
	q.Set("markers", center+",red-pushpin")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "streethunt/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch map snapshot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("map service returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read map snapshot: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("map service returned empty image")
	}
	return data, nil
}

// NoopSnapshotter always reports that no snapshot is available. Used when
// map rendering is disabled.
type NoopSnapshotter struct{}

func (NoopSnapshotter) Snapshot(ctx context.Context, lat, lon float64) ([]byte, error) {
	return nil, fmt.Errorf("map snapshots disabled")
}
