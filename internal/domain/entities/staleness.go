package entities

// StalenessRow is the "atraso" record for one grupo at a given position:
// how many days ago the grupo last showed up at that position within the
// scanned window. ElapsedDays is nil when the grupo was never observed in
// the window; such rows always sort after every observed grupo.
type StalenessRow struct {
	Grupo        int    `json:"grupo"`
	LastSeenDate string `json:"last_seen_date,omitempty"`
	LastSeenHour string `json:"last_seen_hour,omitempty"`
	ElapsedDays  *int   `json:"elapsed_days"`
	Rank         int    `json:"rank"`
}
