package config

import (
	"flag"
	"os"

	"github.com/dkoroteev/streethunt/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string     path to the progress database (default from Config)
//	-e string     export directory for generated reports
//	-lat float    device latitude used when marking items found
//	-lon float    device longitude used when marking items found
//
// Note: the function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-e", "-lat", "-lon"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path to the progress database")
	fs.StringVar(&cfg.ExportDir, "e", cfg.ExportDir, "export directory for reports")
	lat := fs.Float64("lat", floatOr(cfg.DeviceLat, 0), "device latitude")
	lon := fs.Float64("lon", floatOr(cfg.DeviceLon, 0), "device longitude")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Only treat the position as known when the caller actually passed it.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lat":
			cfg.DeviceLat = lat
		case "lon":
			cfg.DeviceLon = lon
		}
	})
}

func floatOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
