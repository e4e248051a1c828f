package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"

	"resultados/internal/domain/entities"
	"resultados/internal/infrastructure/logging"
	"resultados/internal/usecase/interfaces"
)

const defaultPrizesTableName = "premios"

// PrizeDynamoRepository reads the premios child table.
//
// Table requirements:
//   - PK: sorteio_id (string), SK: posicao (number)
//
// Entries are returned raw and in stored order; the hydrator validates and
// enforces the digit-width rule.

type PrizeDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	log       zerolog.Logger
}

var _ interfaces.IPrizeRepository = (*PrizeDynamoRepository)(nil)

func NewPrizeDynamoRepository(ddb DynamoAPI) *PrizeDynamoRepository {
	return &PrizeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRIZES_TABLE", defaultPrizesTableName),
		log:       logging.For("prize-repository"),
	}
}

func (r *PrizeDynamoRepository) ListByDrawID(ctx context.Context, drawID string) ([]entities.RawPrize, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("sorteio_id = :id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: drawID},
		},
	}

	var out []entities.RawPrize
	for page := 0; page < maxQueryPages; page++ {
		res, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, item := range res.Items {
			out = append(out, mapRawPrize(item))
		}
		if len(res.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = res.LastEvaluatedKey
	}
	return out, nil
}
