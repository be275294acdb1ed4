// Command seed inserts the default experience timeline for the portfolio owner.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/logger"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/store"
	"portfolio-backend/internal/supabase"
)

var defaultExperiences = []models.ExperienceInput{
	{Title: "Started Self Learning", Company: "Started to learn programming", Period: "2019", OrderIndex: 0},
	{Title: "Started to Learn Lua for Fivem (GTA V Mod)", Company: "Started to learn Lua for Fivem", Period: "2019-2020", OrderIndex: 1},
	{Title: "Started My Journey in React.js", Company: "Started to learn React.js", Period: "2020-2021", OrderIndex: 2},
	{Title: "Started Learning Tailwind CSS", Company: "Started to learn Tailwind CSS", Period: "2021-ongoing", OrderIndex: 3},
	{Title: "Started Learning TypeScript", Company: "Started to learn TypeScript", Period: "2021-ongoing", OrderIndex: 4},
	{Title: "Started Learning Next.js", Company: "Started to learn Next.js", Period: "2020-ongoing", OrderIndex: 5},
	{Title: "Start my journey in Freelancing", Company: "Freelancing", Period: "2025-ongoing", OrderIndex: 6},
}

type experienceFile struct {
	Title       string `yaml:"title"`
	Company     string `yaml:"company"`
	Period      string `yaml:"period"`
	Description string `yaml:"description"`
	OrderIndex  int    `yaml:"order_index"`
}

func main() {
	userFlag := flag.String("user", os.Getenv("SEED_USER_ID"), "owner user id (defaults to SEED_USER_ID)")
	file := flag.String("file", "", "YAML file with experiences to insert instead of the defaults")
	force := flag.Bool("force", false, "insert even when experiences already exist")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.New(cfg.Environment, cfg.LogLevel)

	userID, err := uuid.Parse(*userFlag)
	if err != nil {
		log.Fatal().Str("user", *userFlag).Msg("a valid -user or SEED_USER_ID is required")
	}

	items := defaultExperiences
	if *file != "" {
		if items, err = loadExperiences(*file); err != nil {
			log.Fatal().Err(err).Str("file", *file).Msg("failed to read experiences")
		}
	}

	experiences, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open store")
	}
	defer closeStore()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	inserted, err := seed(ctx, experiences, userID, items, *force)
	if err != nil {
		log.Fatal().Err(err).Int("inserted", inserted).Msg("seeding failed")
	}
	log.Info().Int("inserted", inserted).Msg("experiences seeded")
}

// seed inserts items unless the timeline already has entries and force is off.
func seed(ctx context.Context, s store.ExperienceStore, userID uuid.UUID, items []models.ExperienceInput, force bool) (int, error) {
	existing, err := s.ListExperiences(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list experiences: %w", err)
	}
	if len(existing) > 0 && !force {
		return 0, nil
	}

	for i, item := range items {
		if _, err := s.CreateExperience(ctx, userID, item); err != nil {
			return i, fmt.Errorf("failed to insert %q: %w", item.Title, err)
		}
	}
	return len(items), nil
}

func loadExperiences(path string) ([]models.ExperienceInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw []experienceFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	items := make([]models.ExperienceInput, 0, len(raw))
	for _, r := range raw {
		in := models.ExperienceInput{
			Title:      r.Title,
			Company:    r.Company,
			Period:     r.Period,
			OrderIndex: r.OrderIndex,
		}
		if r.Description != "" {
			desc := r.Description
			in.Description = &desc
		}
		items = append(items, in)
	}
	return items, nil
}

func openStore(cfg *config.Config) (store.ExperienceStore, func(), error) {
	if cfg.DatabaseURL != "" {
		db, err := supabase.NewDatabaseClient(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return db, func() { db.Close() }, nil
	}

	client, err := supabase.NewClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	return supabase.NewRestStore(client), func() {}, nil
}
