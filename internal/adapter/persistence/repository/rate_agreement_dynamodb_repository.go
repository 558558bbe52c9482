package repository

import (
	"context"

	"fieldhours/internal/domain/entities"
	"fieldhours/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultRateAgreementsTableName = "rate_agreements"

type rateAgreementItem struct {
	TechnicianID string `dynamodbav:"technician_id"`
	HourlyRate   string `dynamodbav:"hourly_rate"`
	BillableRate string `dynamodbav:"billable_rate"`
	SaturdayRate string `dynamodbav:"saturday_rate,omitempty"`
	SundayRate   string `dynamodbav:"sunday_rate,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// RateAgreementDynamoRepository persists RateAgreement entities in DynamoDB.
//
// Table requirements:
//   - PK: technician_id (string)
//
// The technician id is the primary key, which enforces one agreement per
// technician and makes the admin upsert a plain PutItem.

type RateAgreementDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRateAgreementRepository = (*RateAgreementDynamoRepository)(nil)

func NewRateAgreementDynamoRepository(ddb *dynamodb.Client) *RateAgreementDynamoRepository {
	return &RateAgreementDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RATE_AGREEMENTS_TABLE", defaultRateAgreementsTableName),
	}
}

func (r *RateAgreementDynamoRepository) Upsert(ctx context.Context, a entities.RateAgreement) (entities.RateAgreement, error) {
	av, err := attributevalue.MarshalMap(toRateAgreementItem(a))
	if err != nil {
		return entities.RateAgreement{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.RateAgreement{}, err
	}
	return a, nil
}

func (r *RateAgreementDynamoRepository) GetByTechnicianID(ctx context.Context, technicianID string) (entities.RateAgreement, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"technician_id": &types.AttributeValueMemberS{Value: technicianID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RateAgreement{}, err
	}
	if len(out.Item) == 0 {
		return entities.RateAgreement{}, nil
	}

	var it rateAgreementItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RateAgreement{}, err
	}
	return fromRateAgreementItem(it), nil
}

func (r *RateAgreementDynamoRepository) ListAll(ctx context.Context) ([]entities.RateAgreement, error) {
	var out []entities.RateAgreement
	var startKey map[string]types.AttributeValue

	for {
		page, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, item := range page.Items {
			var it rateAgreementItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			out = append(out, fromRateAgreementItem(it))
		}

		if len(page.LastEvaluatedKey) == 0 {
			break
		}
		startKey = page.LastEvaluatedKey
	}
	return out, nil
}

func toRateAgreementItem(a entities.RateAgreement) rateAgreementItem {
	it := rateAgreementItem{
		TechnicianID: a.TechnicianID,
		HourlyRate:   floatToString(a.HourlyRate),
		BillableRate: floatToString(a.BillableRate),
		CreatedAt:    timeToString(a.CreatedAt),
		UpdatedAt:    timeToString(a.UpdatedAt),
	}
	if a.SaturdayRate != nil {
		it.SaturdayRate = floatToString(*a.SaturdayRate)
	}
	if a.SundayRate != nil {
		it.SundayRate = floatToString(*a.SundayRate)
	}
	return it
}

func fromRateAgreementItem(it rateAgreementItem) entities.RateAgreement {
	a := entities.RateAgreement{
		TechnicianID: it.TechnicianID,
		HourlyRate:   stringToFloat(it.HourlyRate),
		BillableRate: stringToFloat(it.BillableRate),
		CreatedAt:    stringToTime(it.CreatedAt),
		UpdatedAt:    stringToTime(it.UpdatedAt),
	}
	if it.SaturdayRate != "" {
		v := stringToFloat(it.SaturdayRate)
		a.SaturdayRate = &v
	}
	if it.SundayRate != "" {
		v := stringToFloat(it.SundayRate)
		a.SundayRate = &v
	}
	return a
}
