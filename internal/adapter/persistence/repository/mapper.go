package repository

import (
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"resultados/internal/domain/entities"
	"resultados/internal/domain/normalize"
)

// Field-name candidates per concept, in priority order. The ingestion tooling
// changed attribute names over the years; reads must accept all of them.
var (
	dateFields  = []string{"data", "date", "dataISO", "data_ts"}
	hourFields  = []string{"hora", "horario", "hour"}
	runFields   = []string{"edicao", "extracao"}
	countFields = []string{"qtd_premios", "total_premios"}

	prizeGrupoFields  = []string{"grupo", "bicho"}
	prizePosFields    = []string{"posicao", "premio"}
	prizeNumeroFields = []string{"milhar", "numero", "resultado"}
)

// mapDrawItem turns a raw sorteios item into the canonical Draw shape. The
// embedded prize array is carried through untouched; hydration decides later
// whether it is usable.
func mapDrawItem(item map[string]types.AttributeValue, partition string) entities.Draw {
	d := entities.Draw{
		ID:        attrString(item, "id"),
		Date:      normalize.Date(attrAny(item, dateFields...)),
		Hour:      normalize.Hour(attrAny(item, hourFields...)),
		Partition: partition,
		RunCode:   attrString(item, runFields...),
	}

	if n, ok := attrInt(item, countFields...); ok {
		d.PrizeCount = n
	}

	if l, ok := item["premios"].(*types.AttributeValueMemberL); ok {
		for _, member := range l.Value {
			m, ok := member.(*types.AttributeValueMemberM)
			if !ok {
				continue
			}
			d.RawPrizes = append(d.RawPrizes, mapRawPrize(m.Value))
		}
	}
	if d.PrizeCount == 0 {
		d.PrizeCount = len(d.RawPrizes)
	}
	return d
}

func mapRawPrize(item map[string]types.AttributeValue) entities.RawPrize {
	return entities.RawPrize{
		Grupo:   attrAny(item, prizeGrupoFields...),
		Posicao: attrAny(item, prizePosFields...),
		Numero:  attrAny(item, prizeNumeroFields...),
	}
}

// attrString returns the first non-empty string-ish value among the
// candidate attribute names.
func attrString(item map[string]types.AttributeValue, names ...string) string {
	for _, n := range names {
		switch v := item[n].(type) {
		case *types.AttributeValueMemberS:
			if s := strings.TrimSpace(v.Value); s != "" {
				return s
			}
		case *types.AttributeValueMemberN:
			if v.Value != "" {
				return v.Value
			}
		}
	}
	return ""
}

// attrAny returns the first present candidate attribute decoded into plain Go
// types (string, float64, map, slice), which is what the normalizers accept.
func attrAny(item map[string]types.AttributeValue, names ...string) any {
	for _, n := range names {
		av, ok := item[n]
		if !ok {
			continue
		}
		if _, isNull := av.(*types.AttributeValueMemberNULL); isNull {
			continue
		}
		var out any
		if err := attributevalue.Unmarshal(av, &out); err == nil && out != nil {
			return out
		}
	}
	return nil
}

func attrInt(item map[string]types.AttributeValue, names ...string) (int, bool) {
	s := attrString(item, names...)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}
