package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/arikatz123/SurfScout/internal/config"
	"github.com/arikatz123/SurfScout/internal/surf"
	"github.com/arikatz123/SurfScout/internal/ui"
	"github.com/arikatz123/SurfScout/internal/willyweather"
)

func main() {
	beach := flag.String("beach", "", "Beach name to search for on startup (e.g. \"Bondi Beach\")")
	flag.Parse()

	// .env is optional; already-set environment variables win over file values
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	searcher := willyweather.NewSearchClient(cfg.WillyWeather.BaseURL, cfg.WillyWeather.APIKey)
	forecasts := willyweather.NewForecastClient(cfg.WillyWeather.BaseURL, cfg.WillyWeather.APIKey)
	assessor := surf.NewAssessor(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model)

	model := ui.NewModel(searcher, forecasts, assessor)
	if *beach != "" {
		model = model.WithInitialQuery(*beach)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}
