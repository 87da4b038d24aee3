// Package main drives one page render: it fetches the record envelope,
// normalizes it, runs the listing pipeline and prints the resulting
// page summary.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"meigu/internal/client"
	"meigu/internal/config"
	"meigu/internal/listing"
	"meigu/internal/logger"
	"meigu/internal/normalizer"
	"meigu/internal/view"
)

func main() {
	// 1. Define Command-Line Flags
	// ---------------------------
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	category := flag.String("category", listing.CategoryAll, "Category filter")
	search := flag.String("search", "", "Search term")
	page := flag.Int("page", 1, "Listing page number")

	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.Logging.Level)

	variant := normalizer.Public
	if cfg.Site.IsAdmin() {
		variant = normalizer.Admin
	}

	log.Info("🚀 Starting page render")
	log.Info(fmt.Sprintf("📍 Source: %s", cfg.Client.BaseURL))

	// 2. Ingestion (Fetch)
	// --------------------
	log.Info("Phase 1: Ingestion (Fetching envelope)...")

	startTime := time.Now()

	dataClient := client.NewDataClient(cfg.Client.BaseURL, cfg.Client.TimeoutSec)
	loader := client.NewLoader(dataClient, variant, log)

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Client.TimeoutSec)*time.Second)
	defer cancel()

	activities, articles := loader.Load(ctx)

	log.Info(fmt.Sprintf("✅ Loaded %d activities, %d articles in %v",
		len(activities), len(articles), time.Since(startTime)))

	// 3. Listing Pipeline
	// -------------------
	log.Info("Phase 2: Listing (Filter, rank, paginate)...")

	controller := view.NewController(
		listing.Visibility{ShowFee: variant.ShowFee()},
		cfg.Site.PageSize,
	)
	controller.SetRecords(activities, articles)
	controller.SetCategory(*category)
	controller.SetSearch(*search)
	controller.GoToPage(*page)

	rc := view.NewRenderContext()
	activityPage := controller.ActivitiesPage(rc)
	home := controller.Home(rc)

	// 4. Final Report
	// ---------------
	log.Info("✨ Render Complete!")
	fmt.Println("\n------------------------------------------------")
	fmt.Printf("📊 Page Summary\n")
	fmt.Println("------------------------------------------------")
	fmt.Printf("Audience: %s\n", cfg.Site.Variant)
	fmt.Printf("Activities: %d total, page %d/%d\n",
		activityPage.Total, activityPage.Page, activityPage.TotalPages)

	for _, card := range activityPage.Cards {
		fmt.Printf("  - [%s] %s (%s)\n", card.Badge, card.Title, card.DateText)
	}

	if activityPage.Empty {
		fmt.Println("  (no matching records)")
	}

	fmt.Printf("Home teasers: %d activities, %d articles\n",
		len(home.Activities), len(home.Articles))
	fmt.Printf("Total Duration: %v\n", time.Since(startTime))
	fmt.Println("------------------------------------------------")
}
