package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/megaagentai/pitchdeck/internal/config"
	"github.com/megaagentai/pitchdeck/internal/engine"
	"github.com/megaagentai/pitchdeck/internal/system"
)

// BuildVersion is set with -ldflags "-X main.BuildVersion=..."
var BuildVersion = "dev"

func main() {
	configPtr := flag.String("config", "", "YAML config file (flags given explicitly override it)")
	outputPtr := flag.String("output", config.DefaultOutputPath, "Path of the generated .pptx")
	layoutPtr := flag.String("layout", "", "Also write a YAML dump of the slide layout to this path (\"auto\": next to the deck)")
	qrPtr := flag.String("qr-url", "", "Add a QR code linking to this URL on the second slide")
	checkPtr := flag.String("check", "all", "Layout checks: all, bounds, overflow, none")
	statsPtr := flag.Bool("stats", false, "Print a build report and append it to benchmark.log")
	inspectPtr := flag.String("inspect", "", "Print the slides of a saved deck instead of building (\"latest\" picks the newest in output/)")
	readerPtr := flag.String("reader", "native", "Reader for -inspect: native, goppt")

	flag.Parse()

	cfg := config.Default()
	if *configPtr != "" {
		loaded, err := config.Load(*configPtr, cfg)
		if err != nil {
			log.Fatalf("[-] Config error: %v", err)
		}
		cfg = loaded
		fmt.Printf("[*] Using config: %s\n", *configPtr)
	}

	// explicit flags win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "output":
			cfg.OutputPath = *outputPtr
		case "layout":
			cfg.LayoutPath = *layoutPtr
		case "qr-url":
			cfg.QRURL = *qrPtr
		case "check":
			cfg.Check = *checkPtr
		case "stats":
			cfg.ShowStats = *statsPtr
		case "inspect":
			cfg.Inspect = *inspectPtr
		case "reader":
			cfg.Reader = *readerPtr
		}
	})
	cfg.BuildVersion = BuildVersion

	if err := cfg.Validate(); err != nil {
		log.Fatalf("[-] Invalid options: %v", err)
	}

	if cfg.Inspect != "" {
		path := cfg.Inspect
		if path == "latest" {
			latest, err := system.FindLatestDeck(filepath.Dir(cfg.OutputPath))
			if err != nil {
				log.Fatalf("[-] Error: %v", err)
			}
			path = latest
		}
		if err := engine.Inspect(os.Stdout, path, cfg.Reader); err != nil {
			log.Fatalf("[-] Inspect failed: %v", err)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	project := engine.NewProject(&cfg)
	if cfg.ShowStats {
		project.StatsLog = "benchmark.log"
	}

	out, err := project.Run(ctx)
	if err != nil {
		log.Fatalf("[-] Build failed: %v", err)
	}

	fmt.Printf("[+++] Presentation saved to: %s\n", out)
}
