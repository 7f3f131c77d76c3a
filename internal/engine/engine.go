package engine

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/megaagentai/pitchdeck/internal/analyzer"
	"github.com/megaagentai/pitchdeck/internal/config"
	"github.com/megaagentai/pitchdeck/internal/deck"
	"github.com/megaagentai/pitchdeck/internal/pitch"
	"github.com/megaagentai/pitchdeck/internal/pptx"
	"github.com/megaagentai/pitchdeck/internal/system"
)

type Project struct {
	Config *config.Config
	// StatsLog receives one line per run when ShowStats is set; empty disables it
	StatsLog string
	// Issues found by the last run's layout checks
	Issues []analyzer.Issue
}

func NewProject(cfg *config.Config) *Project {
	return &Project{
		Config: cfg,
	}
}

// Options turns the configuration into build options for the pitch
func (p *Project) Options() (pitch.Options, error) {
	opts := pitch.DefaultOptions()

	pal, err := opts.Palette.WithOverrides(p.Config.Palette)
	if err != nil {
		return opts, err
	}
	opts.Palette = pal
	opts.QRURL = p.Config.QRURL

	props := p.Config.Properties
	if props.Title != "" {
		opts.Properties.Title = props.Title
	}
	if props.Subject != "" {
		opts.Properties.Subject = props.Subject
	}
	if props.Author != "" {
		opts.Properties.Author = props.Author
	}
	if props.Company != "" {
		opts.Properties.Company = props.Company
	}
	return opts, nil
}

// Run builds the deck, checks it, saves it and returns the output path
func (p *Project) Run(ctx context.Context) (string, error) {
	startTime := time.Now()

	opts, err := p.Options()
	if err != nil {
		return "", fmt.Errorf("invalid palette: %w", err)
	}

	d, err := pitch.Build(opts)
	if err != nil {
		return "", fmt.Errorf("failed to build deck: %w", err)
	}
	buildTime := time.Since(startTime)
	fmt.Printf("[*] Built %d slides (%d shapes)\n", len(d.Slides), totalShapes(d))

	if err := ctx.Err(); err != nil {
		return "", err
	}

	p.Issues = nil
	if p.Config.Check != "none" {
		checker, err := analyzer.NewChecker(p.Config.Check)
		if err != nil {
			return "", err
		}
		p.Issues = checker.Check(d)
		for _, issue := range p.Issues {
			log.Printf("[!] %s", issue)
		}
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	out := p.Config.OutputPath
	if out == "" {
		out = config.DefaultOutputPath
	}
	if err := system.EnsureDirs(filepath.Dir(out)); err != nil {
		return "", err
	}

	writeStart := time.Now()
	if err := pptx.WriteFile(out, d); err != nil {
		return "", err
	}
	writeTime := time.Since(writeStart)

	if layout := p.Config.LayoutPath; layout != "" {
		if layout == "auto" {
			layout = deck.LayoutPathFor(out)
		}
		if err := system.EnsureDirs(filepath.Dir(layout)); err != nil {
			return "", err
		}
		if err := deck.WriteLayout(d, layout); err != nil {
			return "", err
		}
		fmt.Printf("[*] Layout saved to: %s\n", layout)
	}

	if p.Config.ShowStats {
		p.report(d, out, time.Since(startTime), buildTime, writeTime)
	}

	return out, nil
}

func (p *Project) report(d *deck.Deck, out string, total, build, write time.Duration) {
	var size int64
	if fi, err := os.Stat(out); err == nil {
		size = fi.Size()
	}
	rss, err := system.ProcessRSS()
	if err != nil {
		log.Printf("[!] Failed to read process memory: %v", err)
	}

	report := fmt.Sprintf(
		"--- [BUILD REPORT] ---\n"+
			"Build: %s\n"+
			"Total Time: %.3fs\n"+
			"Layout: %.3fs\n"+
			"Package: %.3fs\n"+
			"Slides: %d\n"+
			"Shapes: %d\n"+
			"Issues: %d\n"+
			"File Size: %d bytes\n"+
			"Memory (RSS): %.1f MB\n"+
			"----------------------\n",
		p.Config.BuildVersion, total.Seconds(), build.Seconds(), write.Seconds(),
		len(d.Slides), totalShapes(d), len(p.Issues), size, float64(rss)/(1<<20),
	)
	fmt.Print(report)

	if p.StatsLog == "" {
		return
	}
	logEntry := fmt.Sprintf("[%s] Build: %s | Output: %s | Slides: %d | Shapes: %d | Total: %.3fs | Size: %d\n",
		time.Now().Format("2006-01-02 15:04:05"),
		p.Config.BuildVersion,
		filepath.Base(out),
		len(d.Slides),
		totalShapes(d),
		total.Seconds(),
		size,
	)

	f, err := os.OpenFile(p.StatsLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Printf("[!] Failed to write %s: %v", p.StatsLog, err)
		return
	}
	defer f.Close()
	if _, err := f.WriteString(logEntry); err != nil {
		log.Printf("[!] Failed to write %s: %v", p.StatsLog, err)
	}
}

func totalShapes(d *deck.Deck) int {
	n := 0
	for i := range d.Slides {
		n += d.ShapeCount(i)
	}
	return n
}
