package pitch

import (
	"fmt"

	"github.com/skip2/go-qrcode"

	"github.com/megaagentai/pitchdeck/internal/deck"
)

// Page geometry: 16:9 widescreen
const (
	SlideWidthIn  = 13.333
	SlideHeightIn = 7.5
)

// Options controls the build. The zero value plus DefaultPalette reproduces the pitch.
type Options struct {
	Palette Palette
	// QRURL, when set, adds a QR code linking to it in the bottom-right of slide two
	QRURL      string
	Properties deck.Properties
}

// DefaultOptions returns the options of the stock pitch
func DefaultOptions() Options {
	return Options{
		Palette: DefaultPalette(),
		Properties: deck.Properties{
			Title:   "MegaAgentAI for Sama Club",
			Subject: "Pitch deck",
			Author:  "Chandra Suda",
			Company: "MegaAgentAI",
		},
	}
}

type labelValue struct {
	label, value string
}

type agent struct {
	emoji, name, desc string
}

var (
	problems = []string{
		"Feedback scattered across channels",
		"12-16 weeks to get insights",
		"Reactive—damage done first",
		"Sentiment only, no root cause",
	}

	values = []labelValue{
		{"⚡ Time to Insight", "24-72 hours"},
		{"🎯 Root-Cause", "Know WHY, not just WHAT"},
		{"📉 Reduce Churn", "Act before they leave"},
		{"🔮 Predictive", "Forecast issues early"},
	}

	diffs = []labelValue{
		{"Others: Dashboards", "Us: Decisions"},
		{"Others: Text only", "Us: Voice+Text+Images"},
		{"Others: Sentiment", "Us: Root Causes"},
		{"Others: Batch", "Us: Real-Time"},
	}

	agents = []agent{
		{"🎯", "Voice-of-Customer", "Tone & emotion"},
		{"🔄", "Normalizer", "Unify channels"},
		{"🛡️", "Authenticity", "Filter spam/bots"},
		{"🔍", "Investigator", "Find root causes"},
		{"🧠", "Learning Layer", "Gets smarter"},
		{"📊", "Orchestrator", "Coordinate all"},
	}
)

// Build lays out both slides of the pitch
func Build(opts Options) (*deck.Deck, error) {
	d := deck.New(deck.Inches(SlideWidthIn), deck.Inches(SlideHeightIn))
	d.Properties = opts.Properties

	buildFounderSlide(d, opts.Palette)
	s2 := buildValueSlide(d, opts.Palette)

	if opts.QRURL != "" {
		png, err := qrcode.Encode(opts.QRURL, qrcode.Medium, 256)
		if err != nil {
			return nil, fmt.Errorf("qr code for %q: %w", opts.QRURL, err)
		}
		s2.AddPicture(deck.Inches(11.9), deck.Inches(5.95), deck.Inches(1.0), deck.Inches(1.0), png)
	}

	return d, nil
}

// buildFounderSlide: "Meet the Founder"
func buildFounderSlide(d *deck.Deck, pal Palette) *deck.Slide {
	s := d.AddSlide()
	AddDarkBackground(d, s, pal)

	AddTextBox(s, 0.5, 0.3, 12.3, 0.8, "MegaAgentAI", Size(24), Bold(), Color(pal.AccentBlue), Centered())
	AddTextBox(s, 0.5, 1.0, 12.3, 0.8, "Meet the Founder", Size(44), Bold(), Color(pal.White), Centered())
	AddTextBox(s, 0.5, 2.0, 12.3, 0.6, "Chandra Suda", Size(48), Bold(), Color(pal.White), Centered())
	AddTextBox(s, 0.5, 2.7, 12.3, 0.5, "Founder & CEO, MegaAgentAI", Size(24), Color(pal.LightGray), Centered())

	addBox(s, deck.Rectangle, 5, 3.4, 3.3, 0.02, pal.AccentPurple).SetNoLine()

	AddTextBox(s, 0.5, 3.7, 12.3, 0.4, "🎓  EDUCATION", Size(16), Bold(), Color(pal.AccentBlue), Centered())
	AddTextBox(s, 0.5, 4.1, 12.3, 0.5, "B.S., Stanford University", Size(32), Bold(), Color(pal.White), Centered())

	AddTextBox(s, 0.5, 4.9, 12.3, 0.4, "💼  EXPERIENCE", Size(16), Bold(), Color(pal.AccentBlue), Centered())
	AddTextBox(s, 0.5, 5.3, 12.3, 0.5, "Member of Technical Staff at xAI", Size(32), Bold(), Color(pal.White), Centered())
	AddTextBox(s, 0.5, 5.9, 12.3, 0.4, "Building AI systems at the frontier of intelligence", Size(18), Color(pal.LightGray), Centered())

	stanford := addBox(s, deck.RoundedRectangle, 4, 6.5, 2.3, 0.6, pal.DarkGray).SetNoLine()
	labelBox(stanford, "Stanford", 18, pal.StanfordRed)

	xai := addBox(s, deck.RoundedRectangle, 7, 6.5, 2.3, 0.6, pal.DarkGray).SetNoLine()
	labelBox(xai, "xAI", 18, pal.White)

	return s
}

// buildValueSlide: "Problem · Value · Differentiation"
func buildValueSlide(d *deck.Deck, pal Palette) *deck.Slide {
	s := d.AddSlide()
	AddDarkBackground(d, s, pal)

	AddTextBox(s, 0.5, 0.2, 12.3, 0.5, "MegaAgentAI for Sama Club", Size(20), Bold(), Color(pal.AccentBlue), Centered())
	AddTextBox(s, 0.5, 0.6, 12.3, 0.6, "Problem · Value · Differentiation", Size(36), Bold(), Color(pal.White), Centered())

	// Left column: problem
	AddTextBox(s, 0.4, 1.4, 4, 0.4, "🚨 THE PROBLEM", Size(16), Bold(), Color(pal.Red))
	y := 1.85
	for _, problem := range problems {
		AddTextBox(s, 0.5, y, 4, 0.35, "• "+problem, Size(15), Color(pal.LightGray))
		y += 0.38
	}

	// Middle column: business value
	AddTextBox(s, 4.6, 1.4, 4, 0.4, "💰 BUSINESS VALUE", Size(16), Bold(), Color(pal.Green))
	y = 1.85
	for _, v := range values {
		AddTextBox(s, 4.7, y, 4, 0.22, v.label, Size(14), Bold(), Color(pal.White))
		AddTextBox(s, 4.7, y+0.22, 4, 0.22, v.value, Size(13), Color(pal.LightGray))
		y += 0.48
	}

	// Right column: differentiation
	AddTextBox(s, 8.8, 1.4, 4, 0.4, "🏆 WHY WE WIN", Size(16), Bold(), Color(pal.AccentPurple))
	y = 1.85
	for _, v := range diffs {
		AddTextBox(s, 8.9, y, 4, 0.22, v.label, Size(12), Color(pal.MutedGray))
		AddTextBox(s, 8.9, y+0.22, 4, 0.22, "→ "+v.value, Size(13), Bold(), Color(pal.Green))
		y += 0.48
	}

	addBox(s, deck.Rectangle, 0.5, 4.1, 12.3, 0.015, pal.DarkGray).SetNoLine()

	AddTextBox(s, 0.5, 4.3, 12.3, 0.4, "🤖 Our 6 Specialized AI Agents", Size(20), Bold(), Color(pal.White), Centered())

	x := 0.6
	for _, a := range agents {
		addBox(s, deck.RoundedRectangle, x, 4.8, 1.95, 1.1, pal.DarkGray).SetLine(pal.AccentPurple, deck.Points(1))

		AddTextBox(s, x+0.05, 4.85, 1.85, 0.35, a.emoji+" "+a.name, Size(12), Bold(), Color(pal.White), Centered())
		AddTextBox(s, x+0.05, 5.2, 1.85, 0.35, a.desc, Size(11), Color(pal.LightGray), Centered())
		x += 2.1
	}

	// Key metric callout
	addBox(s, deck.RoundedRectangle, 3.5, 6.15, 6.3, 0.7, pal.AccentPurple).SetNoLine()
	AddTextBox(s, 3.5, 6.25, 6.3, 0.5, "Time to Insight: 12-16 weeks → 24-72 hours", Size(22), Bold(), Color(pal.White), Centered())

	AddTextBox(s, 0.5, 7.0, 12.3, 0.35, "\"Most tools show what happened. We tell you why—and what to do next.\"", Size(14), Color(pal.LightGray), Centered())

	return s
}
