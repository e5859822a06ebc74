package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/statside/statside/internal/stats"
)

var (
	statsLeague string
	statsDate   string
	statsGroup  string
	statsLimit  int
	statsTeam   string
	statsSeason int
)

// statsCmd creates the "stats" command group.
func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Game and team statistics from the sports-media JSON endpoints",
	}

	cmd.PersistentFlags().StringVarP(&statsLeague, "league", "l", string(stats.CollegeFootball),
		"league: college-football, mens-college-basketball, womens-college-basketball")

	scoreboard := &cobra.Command{
		Use:   "scoreboard",
		Short: "Games for a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(func(ctx context.Context, c *stats.Client) (any, error) {
				return c.Scoreboard(ctx, league(), stats.ScoreboardParams{
					Date:  statsDate,
					Group: statsGroup,
					Limit: statsLimit,
				})
			})
		},
	}
	scoreboard.Flags().StringVarP(&statsDate, "date", "d", "", "date as YYYYMMDD (defaults to today upstream)")
	scoreboard.Flags().StringVarP(&statsGroup, "group", "g", "", "conference group filter")
	scoreboard.Flags().IntVar(&statsLimit, "limit", 0, "maximum number of games")

	teams := &cobra.Command{
		Use:   "teams",
		Short: "All teams in a league",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(func(ctx context.Context, c *stats.Client) (any, error) {
				return c.Teams(ctx, league())
			})
		},
	}

	team := &cobra.Command{
		Use:   "team [id]",
		Short: "One team's profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(func(ctx context.Context, c *stats.Client) (any, error) {
				return c.Team(ctx, league(), args[0])
			})
		},
	}

	roster := &cobra.Command{
		Use:   "roster [team-id]",
		Short: "A team's athletes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(func(ctx context.Context, c *stats.Client) (any, error) {
				return c.Roster(ctx, league(), args[0])
			})
		},
	}

	schedule := &cobra.Command{
		Use:   "schedule [team-id]",
		Short: "A team's season schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(func(ctx context.Context, c *stats.Client) (any, error) {
				return c.Schedule(ctx, league(), args[0], statsSeason)
			})
		},
	}
	schedule.Flags().IntVar(&statsSeason, "season", time.Now().Year(), "season year")

	standings := &cobra.Command{
		Use:   "standings",
		Short: "League standings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(func(ctx context.Context, c *stats.Client) (any, error) {
				return c.Standings(ctx, league(), statsSeason)
			})
		},
	}
	standings.Flags().IntVar(&statsSeason, "season", time.Now().Year(), "season year")

	rankings := &cobra.Command{
		Use:   "rankings",
		Short: "Poll rankings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(func(ctx context.Context, c *stats.Client) (any, error) {
				return c.Rankings(ctx, league())
			})
		},
	}

	boxscore := &cobra.Command{
		Use:   "boxscore [event-id]",
		Short: "Box score for a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(func(ctx context.Context, c *stats.Client) (any, error) {
				return c.BoxScore(ctx, league(), args[0])
			})
		},
	}

	playbyplay := &cobra.Command{
		Use:   "playbyplay [event-id]",
		Short: "Play-by-play for a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(func(ctx context.Context, c *stats.Client) (any, error) {
				return c.PlayByPlay(ctx, league(), args[0])
			})
		},
	}

	cmd.AddCommand(scoreboard, teams, team, roster, schedule, standings, rankings, boxscore, playbyplay)
	return cmd
}

func league() stats.League { return stats.League(statsLeague) }

// runStats wires config, fetcher, and client around a single API call.
func runStats(call func(ctx context.Context, c *stats.Client) (any, error)) error {
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

	client := stats.NewClient(f, cfg.Stats.BaseURL, logger)
	out, err := call(ctx, client)
	if err != nil {
		return err
	}
	return printJSON(out)
}
