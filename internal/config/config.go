package config

import "time"

// Config holds runtime settings for the StreetHunt CLI.
//
// Fields:
//   - DBPath: path of the local sqlite progress database.
//   - DeviceLat/DeviceLon: the device position used when marking items found;
//     nil when unknown (location fields then stay absent).
//   - GeocoderEndpoint/GeocoderTimeout: reverse-geocoding service settings.
//   - StaticMapEndpoint: static-map image service for report pages.
//   - ExportBackend: where report artifacts go, "fs" or "s3".
type Config struct {
	DBPath string

	DeviceLat *float64
	DeviceLon *float64

	GeocoderEndpoint string
	GeocoderTimeout  time.Duration

	StaticMapEndpoint string

	ExportBackend string
	ExportDir     string
	S3Bucket      string
	S3Region      string
	S3Endpoint    string
	S3AccessKey   string
	S3SecretKey   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DBPath = "hunt.db"
	c.GeocoderEndpoint = "https://nominatim.openstreetmap.org"
	c.GeocoderTimeout = 5 * time.Second
	c.StaticMapEndpoint = "https://staticmap.openstreetmap.de/staticmap.php"
	c.ExportBackend = "fs"
	c.ExportDir = "exports"
	c.S3Region = "us-east-1"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
