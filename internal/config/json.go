package config

import (
	"encoding/json"
	"os"

	"github.com/dkoroteev/streethunt/internal/flagx"
	"github.com/dkoroteev/streethunt/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the geocoder timeout either as a string
// like "5s" or as integer nanoseconds. Pointer fields distinguish "absent"
// from zero so the overlay touches only keys the file actually sets.
type JsonConfig struct {
	DBPath            *string         `json:"db_path"`
	DeviceLat         *float64        `json:"device_lat"`
	DeviceLon         *float64        `json:"device_lon"`
	GeocoderEndpoint  *string         `json:"geocoder_endpoint"`
	GeocoderTimeout   *timex.Duration `json:"geocoder_timeout"`
	StaticMapEndpoint *string         `json:"staticmap_endpoint"`
	ExportBackend     *string         `json:"export_backend"`
	ExportDir         *string         `json:"export_dir"`
	S3Bucket          *string         `json:"s3_bucket"`
	S3Region          *string         `json:"s3_region"`
	S3Endpoint        *string         `json:"s3_endpoint"`
	S3AccessKey       *string         `json:"s3_access_key"`
	S3SecretKey       *string         `json:"s3_secret_key"`
}

// parseJson overlays cfg with values loaded from a JSON file. The file path
// comes from the -c/-config flags; with no path set nothing is loaded.
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DBPath != nil {
		cfg.DBPath = *jc.DBPath
	}
	if jc.DeviceLat != nil {
		cfg.DeviceLat = jc.DeviceLat
	}
	if jc.DeviceLon != nil {
		cfg.DeviceLon = jc.DeviceLon
	}
	if jc.GeocoderEndpoint != nil {
		cfg.GeocoderEndpoint = *jc.GeocoderEndpoint
	}
	if jc.GeocoderTimeout != nil {
		cfg.GeocoderTimeout = jc.GeocoderTimeout.Duration
	}
	if jc.StaticMapEndpoint != nil {
		cfg.StaticMapEndpoint = *jc.StaticMapEndpoint
	}
	if jc.ExportBackend != nil {
		cfg.ExportBackend = *jc.ExportBackend
	}
	if jc.ExportDir != nil {
		cfg.ExportDir = *jc.ExportDir
	}
	if jc.S3Bucket != nil {
		cfg.S3Bucket = *jc.S3Bucket
	}
	if jc.S3Region != nil {
		cfg.S3Region = *jc.S3Region
	}
	if jc.S3Endpoint != nil {
		cfg.S3Endpoint = *jc.S3Endpoint
	}
	if jc.S3AccessKey != nil {
		cfg.S3AccessKey = *jc.S3AccessKey
	}
	if jc.S3SecretKey != nil {
		cfg.S3SecretKey = *jc.S3SecretKey
	}
}
