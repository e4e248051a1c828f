package entities

import (
	"strconv"
	"strings"
)

const (
	// GrupoCount is the number of fixed outcome classes (grupos 1..25).
	GrupoCount = 25

	// MaxPosition is the highest position a stored prize may carry; only
	// positions 1..7 are meaningful in practice.
	MaxPosition = 10
)

// Prize is one ranked outcome inside a Draw.
//
// The result number is kept as a zero-padded digit string: exactly 3 digits
// at position 7, exactly 4 digits at every other valid position. Centena and
// Dezena are the right-aligned 3- and 2-digit suffixes.
type Prize struct {
	Position int    `json:"position"`
	Grupo    int    `json:"grupo"`
	Numero   string `json:"numero"`
	Centena  string `json:"centena"`
	Dezena   string `json:"dezena"`
}

// RequiredWidth returns the digit width the result must have at a position.
func RequiredWidth(position int) int {
	if position == 7 {
		return 3
	}
	return 4
}

// ParsePrize validates and normalizes a raw prize entry. It returns false
// when grupo or position fall out of range or the result does not reduce to
// a digit string of the required width. Out-of-range entries are discarded,
// never truncated or renumbered.
func ParsePrize(raw RawPrize) (Prize, bool) {
	position, ok := parseIntLoose(raw.Posicao)
	if !ok || position < 1 || position > MaxPosition {
		return Prize{}, false
	}
	grupo, ok := parseIntLoose(raw.Grupo)
	if !ok || grupo < 1 || grupo > GrupoCount {
		return Prize{}, false
	}

	digits := digitsOnly(raw.Numero)
	if digits == "" {
		return Prize{}, false
	}
	width := RequiredWidth(position)
	if len(digits) > width {
		return Prize{}, false
	}
	numero := strings.Repeat("0", width-len(digits)) + digits

	return Prize{
		Position: position,
		Grupo:    grupo,
		Numero:   numero,
		Centena:  numero[len(numero)-3:],
		Dezena:   numero[len(numero)-2:],
	}, true
}

// parseIntLoose accepts the integer shapes the store actually contains:
// numbers, numeric strings and strings with stray spacing.
func parseIntLoose(v any) (int, bool) {
	switch t := v.(type) {
	case nil:
		return 0, false
	case int:
		return t, true
	case int32:
		return int(t), true
	case int64:
		return int(t), true
	case float64:
		n := int(t)
		if float64(n) != t {
			return 0, false
		}
		return n, true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// digitsOnly reduces a loose result value to its digit characters. Non-digit
// noise (dots, dashes, spacing) is stripped; a value with no digits at all
// yields the empty string.
func digitsOnly(v any) string {
	var s string
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		s = t
	case int:
		s = strconv.Itoa(t)
	case int32:
		s = strconv.FormatInt(int64(t), 10)
	case int64:
		s = strconv.FormatInt(t, 10)
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}

	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
