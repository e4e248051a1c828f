package repository

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"

	"resultados/internal/domain/entities"
	"resultados/internal/domain/scope"
	"resultados/internal/infrastructure/logging"
	"resultados/internal/usecase/interfaces"
)

const (
	defaultDrawsTableName = "sorteios"

	dateAttr = "data"
	idAttr   = "id"

	// maxQueryPages bounds pagination fan-out on pathological ranges.
	maxQueryPages = 20
	maxScanPages  = 50
)

// partitionFields is the ordered field cascade: try the primary partition
// attribute first, then its legacy alias. Each maps to its own composite GSI.
var partitionFields = []string{"uf", "banca"}

func compositeIndex(field string) string { return field + "-" + dateAttr + "-index" }
func identityIndex(field string) string  { return field + "-" + idAttr + "-index" }

// DrawDynamoRepository reads draw documents from DynamoDB.
//
// Table requirements:
//   - Table sorteios, PK: id (string)
//   - GSI uf-data-index (PK: uf, SK: data)
//   - GSI banca-data-index (PK: banca, SK: data)
//   - GSI uf-id-index (PK: uf, SK: id) and banca-id-index alike
//
// Day queries survive a deployment with no composite GSI at all by falling
// back to a filtered Scan; range queries report *MissingIndexError instead,
// and the usecase layer degrades to day-by-day chunks.

type DrawDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	log       zerolog.Logger
}

var _ interfaces.IDrawRepository = (*DrawDynamoRepository)(nil)

func NewDrawDynamoRepository(ddb DynamoAPI) *DrawDynamoRepository {
	return &DrawDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DRAWS_TABLE", defaultDrawsTableName),
		log:       logging.For("draw-repository"),
	}
}

// drawQuery is one cascade unit: which GSI family to hit, the optional sort
// key condition, and ordering/limit.
type drawQuery struct {
	index    func(field string) string
	sortKey  string
	sortExpr string // key condition on "#sk"; empty means partition-only
	sortVals map[string]types.AttributeValue
	limit    int
	desc     bool
}

func (r *DrawDynamoRepository) QueryByDate(ctx context.Context, partition, date string) ([]entities.Draw, error) {
	draws, err := r.runCascade(ctx, partition, drawQuery{
		index:    compositeIndex,
		sortKey:  dateAttr,
		sortExpr: "#sk = :day",
		sortVals: map[string]types.AttributeValue{
			":day": &types.AttributeValueMemberS{Value: date},
		},
	})
	if err != nil {
		if _, ok := interfaces.AsMissingIndex(err); ok {
			// Equality reads do not need the composite index; a filtered
			// scan keeps single days reachable on degraded deployments.
			r.log.Warn().Str("partition", partition).Str("date", date).
				Msg("composite index unavailable, scanning for day")
			return r.scanByDate(ctx, partition, date)
		}
		return nil, err
	}
	return draws, nil
}

func (r *DrawDynamoRepository) QueryByDateRange(ctx context.Context, partition, from, to string) ([]entities.Draw, error) {
	return r.runCascade(ctx, partition, drawQuery{
		index:    compositeIndex,
		sortKey:  dateAttr,
		sortExpr: "#sk BETWEEN :from AND :to",
		sortVals: map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: from},
			":to":   &types.AttributeValueMemberS{Value: to},
		},
	})
}

func (r *DrawDynamoRepository) SampleByDate(ctx context.Context, partition string, limit int, desc bool) ([]entities.Draw, error) {
	draws, err := r.runCascade(ctx, partition, drawQuery{
		index:   compositeIndex,
		sortKey: dateAttr,
		limit:   limit,
		desc:    desc,
	})
	if err != nil {
		return nil, err
	}
	// The GSI orders by date only; settle equal-date ties by id so the
	// sample edge is stable.
	sort.SliceStable(draws, func(i, j int) bool {
		if draws[i].Date != draws[j].Date {
			if desc {
				return draws[i].Date > draws[j].Date
			}
			return draws[i].Date < draws[j].Date
		}
		if desc {
			return draws[i].ID > draws[j].ID
		}
		return draws[i].ID < draws[j].ID
	})
	return draws, nil
}

func (r *DrawDynamoRepository) SampleByID(ctx context.Context, partition string, limit int, desc bool) ([]entities.Draw, error) {
	return r.runCascade(ctx, partition, drawQuery{
		index:   identityIndex,
		sortKey: idAttr,
		limit:   limit,
		desc:    desc,
	})
}

// runCascade tries the query against each partition-field candidate in order,
// advancing on error or on an empty page. A candidate that answers with zero
// documents without erroring still counts as an authoritative empty result if
// no later candidate finds anything.
func (r *DrawDynamoRepository) runCascade(ctx context.Context, partition string, q drawQuery) ([]entities.Draw, error) {
	var firstErr error
	answered := false

	for _, field := range partitionFields {
		draws, err := r.runQuery(ctx, partition, field, q)
		if err != nil {
			err = classifyIndexError(q.index(field), err)
			if firstErr == nil {
				firstErr = err
			}
			r.log.Debug().Err(err).Str("field", field).Str("partition", partition).
				Msg("cascade candidate failed")
			continue
		}
		if len(draws) > 0 {
			return draws, nil
		}
		answered = true
	}

	if answered {
		return nil, nil // empty day/range is a first-class outcome
	}
	return nil, firstErr
}

func (r *DrawDynamoRepository) runQuery(ctx context.Context, partition, field string, q drawQuery) ([]entities.Draw, error) {
	names := map[string]string{"#pf": field}
	values := map[string]types.AttributeValue{
		":pk": &types.AttributeValueMemberS{Value: partition},
	}
	keyExpr := "#pf = :pk"
	if q.sortExpr != "" {
		names["#sk"] = q.sortKey
		keyExpr += " AND " + q.sortExpr
		for k, v := range q.sortVals {
			values[k] = v
		}
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(q.index(field)),
		KeyConditionExpression:    aws.String(keyExpr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ScanIndexForward:          aws.Bool(!q.desc),
	}
	if q.limit > 0 {
		input.Limit = aws.Int32(int32(q.limit))
	}

	// Querying the privileged partition by its primary field alone would
	// leak draws of other bancas sharing the uf attribute.
	if dField, dValue := scope.Discriminator(partition); dField != "" && dField != field {
		names["#disc"] = dField
		values[":disc"] = &types.AttributeValueMemberS{Value: dValue}
		input.FilterExpression = aws.String("#disc = :disc")
	}

	var out []entities.Draw
	for page := 0; page < maxQueryPages; page++ {
		res, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, item := range res.Items {
			out = append(out, mapDrawItem(item, partition))
		}
		if q.limit > 0 && len(out) >= q.limit {
			return out[:q.limit], nil
		}
		if len(res.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = res.LastEvaluatedKey
	}
	return out, nil
}

// scanByDate is the index-free last resort for single-day equality reads.
func (r *DrawDynamoRepository) scanByDate(ctx context.Context, partition, date string) ([]entities.Draw, error) {
	names := map[string]string{"#pf": partitionFields[0], "#dt": dateAttr}
	values := map[string]types.AttributeValue{
		":pk":  &types.AttributeValueMemberS{Value: partition},
		":day": &types.AttributeValueMemberS{Value: date},
	}
	filter := "#pf = :pk AND #dt = :day"
	if dField, dValue := scope.Discriminator(partition); dField != "" {
		names["#disc"] = dField
		values[":disc"] = &types.AttributeValueMemberS{Value: dValue}
		filter += " AND #disc = :disc"
	}

	input := &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          aws.String(filter),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}

	var out []entities.Draw
	for page := 0; page < maxScanPages; page++ {
		res, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, item := range res.Items {
			out = append(out, mapDrawItem(item, partition))
		}
		if len(res.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = res.LastEvaluatedKey
	}
	return out, nil
}
