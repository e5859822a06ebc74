package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/statside/statside/internal/config"
	"github.com/statside/statside/internal/recruit"
	"github.com/statside/statside/internal/storage"
)

var (
	recruitSport  string
	recruitYear   int
	recruitPage   int
	recruitGroup  string
	recruitPos    string
	recruitState  string
	recruitSchool string
	recruitSave   bool
	recruitFormat string
	recruitOutput string
)

// recruitCmd creates the "recruit" command group.
func recruitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recruit",
		Short: "Recruiting data scraped from the rankings site",
	}

	cmd.PersistentFlags().StringVarP(&recruitSport, "sport", "s", string(recruit.Football),
		"sport: football, mens-basketball, womens-basketball")
	cmd.PersistentFlags().IntVarP(&recruitYear, "year", "y", time.Now().Year(),
		"recruiting class year")
	cmd.PersistentFlags().IntVarP(&recruitPage, "page", "p", 1, "listing page")
	cmd.PersistentFlags().BoolVar(&recruitSave, "save", false, "write records to storage instead of stdout")
	cmd.PersistentFlags().StringVar(&recruitFormat, "format", "", "storage format override (json, jsonl, csv, mongodb)")
	cmd.PersistentFlags().StringVarP(&recruitOutput, "output", "o", "", "output directory override")

	players := &cobra.Command{
		Use:   "players",
		Short: "National player rankings",
		RunE:  func(cmd *cobra.Command, args []string) error { return runRecruit(recruit.PlayerRankings) },
	}
	players.Flags().StringVar(&recruitGroup, "institution-group", string(recruit.HighSchool),
		"HighSchool, JuniorCollege, or PrepSchool")
	players.Flags().StringVar(&recruitPos, "position", "", "position filter")
	players.Flags().StringVar(&recruitState, "state", "", "state filter")

	schools := &cobra.Command{
		Use:   "schools",
		Short: "Team recruiting rankings",
		RunE:  func(cmd *cobra.Command, args []string) error { return runRecruit(recruit.SchoolRankings) },
	}

	commits := &cobra.Command{
		Use:   "commits [school]",
		Short: "A school's commit list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recruitSchool = args[0]
			return runRecruit(recruit.Commits)
		},
	}

	cmd.AddCommand(players, schools, commits)
	return cmd
}

func recruitQuery() recruit.Query {
	return recruit.Query{
		Sport:            recruit.Sport(recruitSport),
		Year:             recruitYear,
		Page:             recruitPage,
		InstitutionGroup: recruit.InstitutionGroup(recruitGroup),
		Position:         recruitPos,
		State:            recruitState,
		School:           recruitSchool,
	}
}

func runRecruit(kind recruit.Kind) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := setupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	f, err := newFetcher(cfg, logger)
	if err != nil {
		return fmt.Errorf("create fetcher: %w", err)
	}
	defer f.Close()

	svc := recruit.NewService(f, cfg.Recruit.BaseURL, logger)
	q := recruitQuery()

	if recruitSave {
		return saveRecruit(ctx, cfg, logger, svc, kind, q)
	}

	switch kind {
	case recruit.PlayerRankings:
		players, err := svc.PlayerRankings(ctx, q)
		if err != nil {
			return err
		}
		return printJSON(players)
	case recruit.SchoolRankings:
		schools, err := svc.SchoolRankings(ctx, q)
		if err != nil {
			return err
		}
		return printJSON(schools)
	default:
		commits, err := svc.Commits(ctx, q)
		if err != nil {
			return err
		}
		return printJSON(commits)
	}
}

// saveRecruit exports the raw extracted records through a storage backend.
func saveRecruit(ctx context.Context, cfg *config.Config, logger *slog.Logger, svc *recruit.Service, kind recruit.Kind, q recruit.Query) error {
	records, err := svc.Records(ctx, kind, q)
	if err != nil {
		return err
	}

	store, err := newStorage(cfg, logger)
	if err != nil {
		return fmt.Errorf("create storage: %w", err)
	}

	source, err := recruit.NewAdapter(cfg.Recruit.BaseURL).BuildURL(kind, q)
	if err != nil {
		return err
	}

	if err := store.Store(source, records); err != nil {
		store.Close()
		return err
	}
	if err := store.Close(); err != nil {
		return err
	}

	logger.Info("records saved",
		"kind", string(kind),
		"records", len(records),
		"backend", store.Name(),
	)
	return nil
}

// newStorage builds the configured storage backend, honoring CLI overrides.
func newStorage(cfg *config.Config, logger *slog.Logger) (storage.Storage, error) {
	storageType := cfg.Storage.Type
	if recruitFormat != "" {
		storageType = recruitFormat
	}
	outputPath := cfg.Storage.OutputPath
	if recruitOutput != "" {
		outputPath = recruitOutput
	}

	if storageType == "mongodb" {
		return storage.NewMongoStorage(cfg.Storage.MongoURI, cfg.Storage.MongoDatabase, cfg.Storage.MongoCollection, logger)
	}
	return storage.NewFileStorage(storageType, outputPath, logger)
}
