package geoloc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dkoroteev/streethunt/internal/logging"
	"github.com/sethvargo/go-retry"
)

// NominatimLocator reverse-geocodes a configured device position against a
// Nominatim-compatible endpoint. The coordinates themselves come from
// configuration; the lookup only enriches them with an address. When the
// lookup fails the fix still carries the coordinates, and with no configured
// position the fix is all-absent.
type NominatimLocator struct {
	endpoint string
	timeout  time.Duration
	lat, lon *float64
	client   *http.Client
	log      logging.Logger
}

func NewNominatimLocator(endpoint string, timeout time.Duration, lat, lon *float64, log logging.Logger) *NominatimLocator {
	return &NominatimLocator{
		endpoint: strings.TrimRight(endpoint, "/"),
		timeout:  timeout,
		lat:      lat,
		lon:      lon,
		client:   &http.Client{Timeout: timeout},
		log:      log,
	}
}

// reverseResponse is the subset of the Nominatim jsonv2 reverse payload we
// read.
type reverseResponse struct {
	Address struct {
		Road     string `json:"road"`
		City     string `json:"city"`
		Town     string `json:"town"`
		Village  string `json:"village"`
		State    string `json:"state"`
		Postcode string `json:"postcode"`
	} `json:"address"`
	DisplayName string `json:"display_name"`
}

// CurrentFix returns the configured coordinates, reverse-geocoded when the
// service answers in time. It never returns an error: lookup failures are
// logged and degrade to a coordinates-only (or empty) fix.
func (n *NominatimLocator) CurrentFix(ctx context.Context) Fix {
	if n.lat == nil || n.lon == nil {
		return Fix{}
	}

	fix := Fix{Lat: n.lat, Lon: n.lon}

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	var addr string
	backoff := retry.WithMaxRetries(2, retry.NewExponential(200*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		a, err := n.reverse(ctx, *n.lat, *n.lon)
		if err != nil {
			return retry.RetryableError(err)
		}
		addr = a
		return nil
	})
	if err != nil {
		n.log.Warn(ctx, "reverse geocoding failed, keeping coordinates only", "error", err)
		return fix
	}

	if addr != "" {
		fix.Address = &addr
	}
	return fix
}

func (n *NominatimLocator) reverse(ctx context.Context, lat, lon float64) (string, error) {
	q := url.Values{}
	q.Set("format", "jsonv2")
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.endpoint+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "streethunt/1.0")

	resp, err := n.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}

	var rr reverseResponse
	if err := json.Unmarshal(body, &rr); err != nil {
		return "", fmt.Errorf("failed to decode geocoder response: %w", err)
	}

	return formatAddress(rr), nil
}

// formatAddress joins street, locality, state and postcode, falling back to
// the display name when no structured parts are present.
func formatAddress(rr reverseResponse) string {
	city := rr.Address.City
	if city == "" {
		city = rr.Address.Town
	}
	if city == "" {
		city = rr.Address.Village
	}

	var parts []string
	for _, p := range []string{rr.Address.Road, city, rr.Address.State, rr.Address.Postcode} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return rr.DisplayName
	}
	return strings.Join(parts, ", ")
}
