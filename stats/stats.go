// Package stats defines season-level counting-stat records for batters,
// pitchers, players, and team seasons. The records carry raw totals as found
// in historical databases; derived quantities (plate appearances, singles,
// innings pitched) are exposed as methods so every consumer computes them the
// same way.
package stats

// BattingTotals aggregates one batter's counting stats for a single season,
// with multi-team stints already summed.
type BattingTotals struct {
	PlayerID string
	Year     int
	TeamID   string

	Games          int
	AtBats         int
	Runs           int
	Hits           int
	Doubles        int
	Triples        int
	HomeRuns       int
	RunsBattedIn   int
	StolenBases    int
	CaughtStealing int
	Walks          int
	Strikeouts     int
	HitByPitch     int
	SacrificeFlies int
	SacrificeHits  int
	DoublePlays    int
}

// Singles returns hits that were neither doubles, triples, nor home runs.
// Inconsistent source rows that would go negative are floored at zero.
func (b BattingTotals) Singles() int {
	singles := b.Hits - b.Doubles - b.Triples - b.HomeRuns
	if singles < 0 {
		return 0
	}
	return singles
}

// PlateAppearances returns the batter's opportunity count: at-bats plus
// walks, hit-by-pitches, sacrifice flies, and sacrifice hits.
func (b BattingTotals) PlateAppearances() int {
	return b.AtBats + b.Walks + b.HitByPitch + b.SacrificeFlies + b.SacrificeHits
}

// PitchingTotals aggregates one pitcher's counting stats for a single season,
// with multi-team stints already summed.
type PitchingTotals struct {
	PlayerID string
	Year     int
	TeamID   string

	Wins            int
	Losses          int
	Games           int
	GamesStarted    int
	OutsPitched     int
	HitsAllowed     int
	RunsAllowed     int
	EarnedRuns      int
	HomeRunsAllowed int
	WalksAllowed    int
	Strikeouts      int
	HitBatters      int
	BattersFaced    int
	WildPitches     int
}

// InningsPitched converts recorded outs into innings.
func (p PitchingTotals) InningsPitched() float64 {
	return float64(p.OutsPitched) / 3.0
}

// PlayerInfo identifies a player independent of any season.
type PlayerInfo struct {
	PlayerID  string
	FirstName string
	LastName  string
	Bats      string
	Throws    string
}

// TeamSeason captures one team's season identity and park factors.
// Park factors use the conventional scale where 100 is neutral.
type TeamSeason struct {
	TeamID             string
	Year               int
	LeagueID           string
	Name               string
	BattingParkFactor  int
	PitchingParkFactor int
}
