package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-formbridge/pkg/bridge"
	"github.com/goliatone/go-formbridge/pkg/forms"
	"github.com/goliatone/go-formbridge/pkg/hubspot"
	"github.com/goliatone/go-formbridge/pkg/logger"
	"github.com/goliatone/go-formbridge/pkg/settings"
)

func main() {
	list := flag.Bool("list", false, "list remote forms available for mapping")
	definition := flag.String("definition", "", "form definition file (JSON or YAML)")
	entry := flag.String("entry", "", "entry values file (JSON object of id to value)")
	settingsFile := flag.String("settings", "", "settings YAML file (env vars override)")
	pageURL := flag.String("page-url", "", "page URL for the tracking context")
	pageTitle := flag.String("page-title", "", "page title for the tracking context")
	hutk := flag.String("hutk", "", "tracking cookie value")
	ip := flag.String("ip", "", "visitor IP for the tracking context")
	verbose := flag.Bool("verbose", false, "debug logging")
	flag.Parse()

	ctx := context.Background()

	level := "info"
	if *verbose {
		level = "debug"
	}
	logg := logger.New(&logger.Config{Level: level, Output: os.Stderr})

	store := settings.NewKoanfStore(settings.WithFile(*settingsFile))
	client := hubspot.New(store, hubspot.WithLogger(logg))

	if *list {
		listForms(ctx, client)
		return
	}

	if *definition == "" || *entry == "" {
		log.Fatal("either -list or both -definition and -entry are required")
	}

	form, err := forms.ReadForm(*definition)
	if err != nil {
		log.Fatalf("Failed to read form definition: %v", err)
	}

	entryData, err := os.ReadFile(*entry)
	if err != nil {
		log.Fatalf("Failed to read entry file: %v", err)
	}
	values, err := forms.ParseEntry(entryData)
	if err != nil {
		log.Fatalf("Failed to parse entry file: %v", err)
	}

	b := bridge.New(client, bridge.WithLogger(logg))
	outcome := b.OnFormSubmitted(ctx, form, bridge.Submission{
		Values:        values,
		TrackingToken: *hutk,
		IPAddress:     *ip,
		PageURL:       *pageURL,
		PageTitle:     *pageTitle,
	})

	fmt.Println(string(outcome))
	if outcome == bridge.OutcomeFailed {
		os.Exit(1)
	}
}

func listForms(ctx context.Context, client *hubspot.Client) {
	choices, err := bridge.FormSettingsChoices(ctx, client)
	if err != nil {
		log.Fatalf("Failed to list forms: %v", err)
	}
	for _, choice := range choices {
		if choice.Value == "" {
			continue
		}
		fmt.Printf("%s\t%s\n", choice.Value, choice.Label)
	}
}
