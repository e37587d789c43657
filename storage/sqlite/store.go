// Package sqlite implements the storage interfaces over a single SQLite
// database holding season stats in the source database's per-stint shape.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/dugout/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/dugout/stats"
	"github.com/louisbranch/dugout/storage"
	"github.com/louisbranch/dugout/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists season stats and simulation records in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// BattingTotals returns one batter season with multi-team stints summed.
// The team is the one the batter finished the season with.
func (s *Store) BattingTotals(ctx context.Context, playerID string, year int) (stats.BattingTotals, error) {
	if err := ctx.Err(); err != nil {
		return stats.BattingTotals{}, err
	}
	if s == nil || s.sqlDB == nil {
		return stats.BattingTotals{}, fmt.Errorf("storage is not configured")
	}
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return stats.BattingTotals{}, fmt.Errorf("player id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(g), 0), COALESCE(SUM(ab), 0), COALESCE(SUM(r), 0),
		        COALESCE(SUM(h), 0), COALESCE(SUM("2B"), 0), COALESCE(SUM("3B"), 0),
		        COALESCE(SUM(hr), 0), COALESCE(SUM(rbi), 0), COALESCE(SUM(sb), 0),
		        COALESCE(SUM(cs), 0), COALESCE(SUM(bb), 0), COALESCE(SUM(so), 0),
		        COALESCE(SUM(hbp), 0), COALESCE(SUM(sf), 0), COALESCE(SUM(sh), 0),
		        COALESCE(SUM(gidp), 0)
		   FROM batting
		  WHERE player_id = ? AND year = ?`,
		playerID,
		year,
	)

	var stints int
	totals := stats.BattingTotals{PlayerID: playerID, Year: year}
	if err := row.Scan(
		&stints,
		&totals.Games,
		&totals.AtBats,
		&totals.Runs,
		&totals.Hits,
		&totals.Doubles,
		&totals.Triples,
		&totals.HomeRuns,
		&totals.RunsBattedIn,
		&totals.StolenBases,
		&totals.CaughtStealing,
		&totals.Walks,
		&totals.Strikeouts,
		&totals.HitByPitch,
		&totals.SacrificeFlies,
		&totals.SacrificeHits,
		&totals.DoublePlays,
	); err != nil {
		return stats.BattingTotals{}, fmt.Errorf("batting totals: %w", err)
	}
	if stints == 0 {
		return stats.BattingTotals{}, storage.ErrNotFound
	}

	teamID, err := s.finalStintTeam(ctx, "batting", playerID, year)
	if err != nil {
		return stats.BattingTotals{}, err
	}
	totals.TeamID = teamID
	return totals, nil
}

// PitchingTotals returns one pitcher season with multi-team stints
// summed. The team is the one the pitcher finished the season with.
func (s *Store) PitchingTotals(ctx context.Context, playerID string, year int) (stats.PitchingTotals, error) {
	if err := ctx.Err(); err != nil {
		return stats.PitchingTotals{}, err
	}
	if s == nil || s.sqlDB == nil {
		return stats.PitchingTotals{}, fmt.Errorf("storage is not configured")
	}
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return stats.PitchingTotals{}, fmt.Errorf("player id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(w), 0), COALESCE(SUM(l), 0), COALESCE(SUM(g), 0),
		        COALESCE(SUM(gs), 0), COALESCE(SUM(ipouts), 0), COALESCE(SUM(h), 0),
		        COALESCE(SUM(r), 0), COALESCE(SUM(er), 0), COALESCE(SUM(hr), 0),
		        COALESCE(SUM(bb), 0), COALESCE(SUM(so), 0), COALESCE(SUM(hbp), 0),
		        COALESCE(SUM(bfp), 0), COALESCE(SUM(wp), 0)
		   FROM pitching
		  WHERE player_id = ? AND year = ?`,
		playerID,
		year,
	)

	var stints int
	totals := stats.PitchingTotals{PlayerID: playerID, Year: year}
	if err := row.Scan(
		&stints,
		&totals.Wins,
		&totals.Losses,
		&totals.Games,
		&totals.GamesStarted,
		&totals.OutsPitched,
		&totals.HitsAllowed,
		&totals.RunsAllowed,
		&totals.EarnedRuns,
		&totals.HomeRunsAllowed,
		&totals.WalksAllowed,
		&totals.Strikeouts,
		&totals.HitBatters,
		&totals.BattersFaced,
		&totals.WildPitches,
	); err != nil {
		return stats.PitchingTotals{}, fmt.Errorf("pitching totals: %w", err)
	}
	if stints == 0 {
		return stats.PitchingTotals{}, storage.ErrNotFound
	}

	teamID, err := s.finalStintTeam(ctx, "pitching", playerID, year)
	if err != nil {
		return stats.PitchingTotals{}, err
	}
	totals.TeamID = teamID
	return totals, nil
}

// finalStintTeam returns the team of the highest stint for a season.
// The table name is one of the two fixed stat tables, never caller input.
func (s *Store) finalStintTeam(ctx context.Context, table, playerID string, year int) (string, error) {
	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT team_id FROM `+table+` WHERE player_id = ? AND year = ? ORDER BY stint DESC LIMIT 1`,
		playerID,
		year,
	)
	var teamID string
	if err := row.Scan(&teamID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", storage.ErrNotFound
		}
		return "", fmt.Errorf("final stint team: %w", err)
	}
	return teamID, nil
}

// PlayerInfo returns one player identity record.
func (s *Store) PlayerInfo(ctx context.Context, playerID string) (stats.PlayerInfo, error) {
	if err := ctx.Err(); err != nil {
		return stats.PlayerInfo{}, err
	}
	if s == nil || s.sqlDB == nil {
		return stats.PlayerInfo{}, fmt.Errorf("storage is not configured")
	}
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return stats.PlayerInfo{}, fmt.Errorf("player id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT player_id, first_name, last_name, bats, throws
		   FROM people
		  WHERE player_id = ?`,
		playerID,
	)

	var info stats.PlayerInfo
	if err := row.Scan(&info.PlayerID, &info.FirstName, &info.LastName, &info.Bats, &info.Throws); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return stats.PlayerInfo{}, storage.ErrNotFound
		}
		return stats.PlayerInfo{}, fmt.Errorf("player info: %w", err)
	}
	return info, nil
}

// TeamSeason returns one team season with its park factors.
func (s *Store) TeamSeason(ctx context.Context, teamID string, year int) (stats.TeamSeason, error) {
	if err := ctx.Err(); err != nil {
		return stats.TeamSeason{}, err
	}
	if s == nil || s.sqlDB == nil {
		return stats.TeamSeason{}, fmt.Errorf("storage is not configured")
	}
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return stats.TeamSeason{}, fmt.Errorf("team id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT team_id, year, league_id, name, bpf, ppf
		   FROM teams
		  WHERE team_id = ? AND year = ?`,
		teamID,
		year,
	)

	var season stats.TeamSeason
	if err := row.Scan(
		&season.TeamID,
		&season.Year,
		&season.LeagueID,
		&season.Name,
		&season.BattingParkFactor,
		&season.PitchingParkFactor,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return stats.TeamSeason{}, storage.ErrNotFound
		}
		return stats.TeamSeason{}, fmt.Errorf("team season: %w", err)
	}
	return season, nil
}

// RecordSimulation appends one completed simulation.
func (s *Store) RecordSimulation(ctx context.Context, record storage.SimulationRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	record.ID = strings.TrimSpace(record.ID)
	if record.ID == "" {
		return fmt.Errorf("simulation id is required")
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO simulations (id, batter_id, pitcher_id, year, outcome, runs_scored, seed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		strings.TrimSpace(record.BatterID),
		strings.TrimSpace(record.PitcherID),
		record.Year,
		record.Outcome,
		record.RunsScored,
		record.Seed,
		toMillis(record.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("record simulation: %w", err)
	}
	return nil
}

// UpsertPlayer writes one player identity record.
func (s *Store) UpsertPlayer(ctx context.Context, info stats.PlayerInfo) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	info.PlayerID = strings.TrimSpace(info.PlayerID)
	if info.PlayerID == "" {
		return fmt.Errorf("player id is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO people (player_id, first_name, last_name, bats, throws)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(player_id) DO UPDATE SET
		   first_name = excluded.first_name,
		   last_name = excluded.last_name,
		   bats = excluded.bats,
		   throws = excluded.throws`,
		info.PlayerID,
		info.FirstName,
		info.LastName,
		info.Bats,
		info.Throws,
	)
	if err != nil {
		return fmt.Errorf("upsert player: %w", err)
	}
	return nil
}

// UpsertBattingStint writes one batting stint row.
func (s *Store) UpsertBattingStint(ctx context.Context, stint int, totals stats.BattingTotals) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	totals.PlayerID = strings.TrimSpace(totals.PlayerID)
	if totals.PlayerID == "" {
		return fmt.Errorf("player id is required")
	}
	if stint <= 0 {
		return fmt.Errorf("stint must be greater than zero")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO batting (
		   player_id, year, stint, team_id,
		   g, ab, r, h, "2B", "3B", hr, rbi, sb, cs, bb, so, hbp, sf, sh, gidp
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(player_id, year, stint) DO UPDATE SET
		   team_id = excluded.team_id,
		   g = excluded.g, ab = excluded.ab, r = excluded.r, h = excluded.h,
		   "2B" = excluded."2B", "3B" = excluded."3B", hr = excluded.hr,
		   rbi = excluded.rbi, sb = excluded.sb, cs = excluded.cs,
		   bb = excluded.bb, so = excluded.so, hbp = excluded.hbp,
		   sf = excluded.sf, sh = excluded.sh, gidp = excluded.gidp`,
		totals.PlayerID,
		totals.Year,
		stint,
		strings.TrimSpace(totals.TeamID),
		totals.Games,
		totals.AtBats,
		totals.Runs,
		totals.Hits,
		totals.Doubles,
		totals.Triples,
		totals.HomeRuns,
		totals.RunsBattedIn,
		totals.StolenBases,
		totals.CaughtStealing,
		totals.Walks,
		totals.Strikeouts,
		totals.HitByPitch,
		totals.SacrificeFlies,
		totals.SacrificeHits,
		totals.DoublePlays,
	)
	if err != nil {
		return fmt.Errorf("upsert batting stint: %w", err)
	}
	return nil
}

// UpsertPitchingStint writes one pitching stint row.
func (s *Store) UpsertPitchingStint(ctx context.Context, stint int, totals stats.PitchingTotals) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	totals.PlayerID = strings.TrimSpace(totals.PlayerID)
	if totals.PlayerID == "" {
		return fmt.Errorf("player id is required")
	}
	if stint <= 0 {
		return fmt.Errorf("stint must be greater than zero")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO pitching (
		   player_id, year, stint, team_id,
		   w, l, g, gs, ipouts, h, r, er, hr, bb, so, hbp, bfp, wp
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(player_id, year, stint) DO UPDATE SET
		   team_id = excluded.team_id,
		   w = excluded.w, l = excluded.l, g = excluded.g, gs = excluded.gs,
		   ipouts = excluded.ipouts, h = excluded.h, r = excluded.r,
		   er = excluded.er, hr = excluded.hr, bb = excluded.bb,
		   so = excluded.so, hbp = excluded.hbp, bfp = excluded.bfp,
		   wp = excluded.wp`,
		totals.PlayerID,
		totals.Year,
		stint,
		strings.TrimSpace(totals.TeamID),
		totals.Wins,
		totals.Losses,
		totals.Games,
		totals.GamesStarted,
		totals.OutsPitched,
		totals.HitsAllowed,
		totals.RunsAllowed,
		totals.EarnedRuns,
		totals.HomeRunsAllowed,
		totals.WalksAllowed,
		totals.Strikeouts,
		totals.HitBatters,
		totals.BattersFaced,
		totals.WildPitches,
	)
	if err != nil {
		return fmt.Errorf("upsert pitching stint: %w", err)
	}
	return nil
}

// UpsertTeamSeason writes one team season record.
func (s *Store) UpsertTeamSeason(ctx context.Context, season stats.TeamSeason) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	season.TeamID = strings.TrimSpace(season.TeamID)
	if season.TeamID == "" {
		return fmt.Errorf("team id is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO teams (team_id, year, league_id, name, bpf, ppf)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(team_id, year) DO UPDATE SET
		   league_id = excluded.league_id,
		   name = excluded.name,
		   bpf = excluded.bpf,
		   ppf = excluded.ppf`,
		season.TeamID,
		season.Year,
		season.LeagueID,
		season.Name,
		season.BattingParkFactor,
		season.PitchingParkFactor,
	)
	if err != nil {
		return fmt.Errorf("upsert team season: %w", err)
	}
	return nil
}

var _ storage.StatsProvider = (*Store)(nil)
var _ storage.PlayerStore = (*Store)(nil)
var _ storage.TeamStore = (*Store)(nil)
var _ storage.SimulationLog = (*Store)(nil)
