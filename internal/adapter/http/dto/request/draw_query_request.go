package request

import "strings"

// BoundsRequest selects the partition whose date bounds are wanted.
type BoundsRequest struct {
	Scope string `form:"scope" binding:"required"`
}

// DayRequest asks for the draws of a single calendar day. Date and hour
// accept any of the loose forms the normalizers understand.
type DayRequest struct {
	Scope    string `form:"scope" binding:"required"`
	Date     string `form:"date" binding:"required"`
	Hour     string `form:"hour"`
	Position int    `form:"position"`
	Mode     string `form:"mode"`
	Read     string `form:"read"`
}

// RangeRequest asks for the draws of an inclusive date range.
type RangeRequest struct {
	Scope    string `form:"scope" binding:"required"`
	From     string `form:"from" binding:"required"`
	To       string `form:"to" binding:"required"`
	Position int    `form:"position"`
	Mode     string `form:"mode"`
	Read     string `form:"read"`
}

// StalenessRequest asks for the atraso ranking over a window.
type StalenessRequest struct {
	Scope    string `form:"scope" binding:"required"`
	From     string `form:"from" binding:"required"`
	To       string `form:"to" binding:"required"`
	Position int    `form:"position"`
	Baseline string `form:"baseline"`
}

func (r BoundsRequest) ResolveScope() string    { return strings.TrimSpace(r.Scope) }
func (r DayRequest) ResolveScope() string       { return strings.TrimSpace(r.Scope) }
func (r RangeRequest) ResolveScope() string     { return strings.TrimSpace(r.Scope) }
func (r StalenessRequest) ResolveScope() string { return strings.TrimSpace(r.Scope) }
