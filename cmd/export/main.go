// Command export converts a tracker database snapshot into the tab-delimited
// dwell report in one shot: load the snapshot from a local JSON file or a
// hosted JSON export URL, run the pipeline over every user, write the report.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ducktracker/reports-backend-go/internal/config"
	"github.com/ducktracker/reports-backend-go/internal/home"
	"github.com/ducktracker/reports-backend-go/internal/service"
	"github.com/ducktracker/reports-backend-go/internal/source"
)

func main() {
	in := flag.String("in", "", "path to a snapshot JSON file")
	url := flag.String("url", "", "snapshot JSON export URL (overrides SOURCE_URL)")
	out := flag.String("out", "", "output report path (default \"ducktracker <date>.txt\")")
	tsi := flag.Int("tsi", 0, "temporal sampling interval in minutes (overrides TSI_MINUTES)")
	flag.Parse()

	cfg := config.Load()
	if *tsi > 0 {
		cfg.TSIMinutes = *tsi
	}
	if *url == "" {
		*url = cfg.SourceURL
	}

	var provider service.HistoryProvider
	switch {
	case *in != "":
		provider = source.NewFileSource(*in)
	case *url != "":
		provider = source.NewHTTPSource(*url)
	default:
		fmt.Fprintln(os.Stderr, "either -in or -url (or SOURCE_URL) is required")
		flag.Usage()
		os.Exit(2)
	}

	path := *out
	if path == "" {
		path = fmt.Sprintf("ducktracker %s.txt", time.Now().Format("2006-01-02"))
	}

	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}

	exports := service.NewExportService(provider, cfg.TSIMinutes, home.NewRandDigits())
	runErr := exports.Run(f)

	if err := f.Close(); err != nil && runErr == nil {
		runErr = err
	}
	if runErr != nil {
		log.Fatalf("Export failed: %v", runErr)
	}

	log.Printf("Report written to %s", path)
}
