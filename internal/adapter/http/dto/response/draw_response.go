package response

import (
	"resultados/internal/domain/entities"
)

type PrizeResponse struct {
	Position int    `json:"position"`
	Grupo    int    `json:"grupo"`
	Numero   string `json:"numero"`
	Centena  string `json:"centena"`
	Dezena   string `json:"dezena"`
}

type DrawResponse struct {
	ID         string          `json:"id"`
	Date       string          `json:"date"`
	Hour       string          `json:"hour"`
	Partition  string          `json:"partition"`
	RunCode    string          `json:"run_code,omitempty"`
	Prizes     []PrizeResponse `json:"prizes"`
	PrizeCount int             `json:"prize_count"`
}

type BoundsResponse struct {
	Partition string `json:"partition"`
	MinDate   string `json:"min_date"`
	MaxDate   string `json:"max_date"`
}

type StalenessRowResponse struct {
	Grupo        int    `json:"grupo"`
	LastSeenDate string `json:"last_seen_date,omitempty"`
	LastSeenHour string `json:"last_seen_hour,omitempty"`
	ElapsedDays  *int   `json:"elapsed_days"`
	Rank         int    `json:"rank"`
}

func FromDraw(d entities.Draw) DrawResponse {
	prizes := make([]PrizeResponse, 0, len(d.Prizes))
	for _, p := range d.Prizes {
		prizes = append(prizes, PrizeResponse{
			Position: p.Position,
			Grupo:    p.Grupo,
			Numero:   p.Numero,
			Centena:  p.Centena,
			Dezena:   p.Dezena,
		})
	}
	return DrawResponse{
		ID:         d.ID,
		Date:       d.Date,
		Hour:       d.Hour,
		Partition:  d.Partition,
		RunCode:    d.RunCode,
		Prizes:     prizes,
		PrizeCount: d.PrizeCount,
	}
}

func FromDraws(draws []entities.Draw) []DrawResponse {
	out := make([]DrawResponse, 0, len(draws))
	for _, d := range draws {
		out = append(out, FromDraw(d))
	}
	return out
}

func FromBounds(b entities.PartitionBounds) BoundsResponse {
	return BoundsResponse{Partition: b.Partition, MinDate: b.MinDate, MaxDate: b.MaxDate}
}

func FromStalenessRows(rows []entities.StalenessRow) []StalenessRowResponse {
	out := make([]StalenessRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, StalenessRowResponse{
			Grupo:        r.Grupo,
			LastSeenDate: r.LastSeenDate,
			LastSeenHour: r.LastSeenHour,
			ElapsedDays:  r.ElapsedDays,
			Rank:         r.Rank,
		})
	}
	return out
}
