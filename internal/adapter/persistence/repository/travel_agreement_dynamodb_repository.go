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

const defaultTravelAgreementsTableName = "travel_agreements"

type travelAgreementItem struct {
	CustomerID   string `dynamodbav:"customer_id"`
	TechnicianID string `dynamodbav:"technician_id"`
	ToTechnician string `dynamodbav:"travel_expense_to_technician"`
	FromClient   string `dynamodbav:"travel_expense_from_client"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// TravelAgreementDynamoRepository persists TravelAgreement entities in
// DynamoDB.
//
// Table requirements:
//   - PK: customer_id (string), SK: technician_id (string)
//
// The composite key enforces uniqueness on the (customer, technician) pair;
// the resolver does exact-pair lookups only, so no GSI is needed.

type TravelAgreementDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITravelAgreementRepository = (*TravelAgreementDynamoRepository)(nil)

func NewTravelAgreementDynamoRepository(ddb *dynamodb.Client) *TravelAgreementDynamoRepository {
	return &TravelAgreementDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRAVEL_AGREEMENTS_TABLE", defaultTravelAgreementsTableName),
	}
}

func (r *TravelAgreementDynamoRepository) Upsert(ctx context.Context, a entities.TravelAgreement) (entities.TravelAgreement, error) {
	av, err := attributevalue.MarshalMap(toTravelAgreementItem(a))
	if err != nil {
		return entities.TravelAgreement{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.TravelAgreement{}, err
	}
	return a, nil
}

func (r *TravelAgreementDynamoRepository) GetByPair(ctx context.Context, customerID, technicianID string) (entities.TravelAgreement, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"customer_id":   &types.AttributeValueMemberS{Value: customerID},
			"technician_id": &types.AttributeValueMemberS{Value: technicianID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.TravelAgreement{}, err
	}
	if len(out.Item) == 0 {
		return entities.TravelAgreement{}, nil
	}

	var it travelAgreementItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TravelAgreement{}, err
	}
	return fromTravelAgreementItem(it), nil
}

func (r *TravelAgreementDynamoRepository) ListAll(ctx context.Context) ([]entities.TravelAgreement, error) {
	var out []entities.TravelAgreement
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
			var it travelAgreementItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			out = append(out, fromTravelAgreementItem(it))
		}

		if len(page.LastEvaluatedKey) == 0 {
			break
		}
		startKey = page.LastEvaluatedKey
	}
	return out, nil
}

func toTravelAgreementItem(a entities.TravelAgreement) travelAgreementItem {
	return travelAgreementItem{
		CustomerID:   a.CustomerID,
		TechnicianID: a.TechnicianID,
		ToTechnician: floatToString(a.ToTechnician),
		FromClient:   floatToString(a.FromClient),
		CreatedAt:    timeToString(a.CreatedAt),
		UpdatedAt:    timeToString(a.UpdatedAt),
	}
}

func fromTravelAgreementItem(it travelAgreementItem) entities.TravelAgreement {
	return entities.TravelAgreement{
		CustomerID:   it.CustomerID,
		TechnicianID: it.TechnicianID,
		ToTechnician: stringToFloat(it.ToTechnician),
		FromClient:   stringToFloat(it.FromClient),
		CreatedAt:    stringToTime(it.CreatedAt),
		UpdatedAt:    stringToTime(it.UpdatedAt),
	}
}
