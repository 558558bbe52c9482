package repository

import (
	"context"
	"time"

	"fieldhours/internal/domain/entities"
	"fieldhours/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultWorkEntriesTableName = "work_entries"
	technicianDateIndexName     = "technician_id-date-index"
)

type workEntryItem struct {
	ID           string `dynamodbav:"id"`
	TechnicianID string `dynamodbav:"technician_id"`
	CustomerID   string `dynamodbav:"customer_id,omitempty"`
	Date         string `dynamodbav:"date"`
	HoursWorked  string `dynamodbav:"hours_worked"`
	Source       string `dynamodbav:"source"`
	Verified     bool   `dynamodbav:"verified"`

	StartTime   string `dynamodbav:"start_time,omitempty"`
	EndTime     string `dynamodbav:"end_time,omitempty"`
	Description string `dynamodbav:"description,omitempty"`

	RegularHours  string `dynamodbav:"regular_hours"`
	OvertimeHours string `dynamodbav:"overtime_hours"`
	WeekendHours  string `dynamodbav:"weekend_hours"`
	SundayHours   string `dynamodbav:"sunday_hours"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// WorkEntryDynamoRepository persists WorkEntry entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI technician_id-date-index: HK technician_id, RK date
//
// Range reads are a single Query (per-technician) or Scan (all technicians)
// per pass, paginated inside the call, so a reconciliation pass stays at one
// round trip per entity type.

type WorkEntryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkEntryRepository = (*WorkEntryDynamoRepository)(nil)

func NewWorkEntryDynamoRepository(ddb *dynamodb.Client) *WorkEntryDynamoRepository {
	return &WorkEntryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORK_ENTRIES_TABLE", defaultWorkEntriesTableName),
	}
}

func (r *WorkEntryDynamoRepository) Create(ctx context.Context, e entities.WorkEntry) (entities.WorkEntry, error) {
	av, err := attributevalue.MarshalMap(toWorkEntryItem(e))
	if err != nil {
		return entities.WorkEntry{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.WorkEntry{}, err
	}
	return e, nil
}

func (r *WorkEntryDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkEntry, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkEntry{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkEntry{}, nil
	}

	var it workEntryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkEntry{}, err
	}
	return fromWorkEntryItem(it), nil
}

func (r *WorkEntryDynamoRepository) Update(ctx context.Context, e entities.WorkEntry) (entities.WorkEntry, error) {
	av, err := attributevalue.MarshalMap(toWorkEntryItem(e))
	if err != nil {
		return entities.WorkEntry{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.WorkEntry{}, err
	}
	return e, nil
}

func (r *WorkEntryDynamoRepository) ListByTechnicianAndRange(ctx context.Context, technicianID string, from, to time.Time) ([]entities.WorkEntry, error) {
	var out []entities.WorkEntry
	var startKey map[string]types.AttributeValue

	for {
		page, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(technicianDateIndexName),
			KeyConditionExpression: aws.String("#tid = :tid AND #date BETWEEN :from AND :to"),
			ExpressionAttributeNames: map[string]string{
				"#tid":  "technician_id",
				"#date": "date",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":tid":  &types.AttributeValueMemberS{Value: technicianID},
				":from": &types.AttributeValueMemberS{Value: dateToString(from)},
				":to":   &types.AttributeValueMemberS{Value: dateToString(to)},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		entriesPage, err := unmarshalWorkEntryItems(page.Items)
		if err != nil {
			return nil, err
		}
		out = append(out, entriesPage...)

		if len(page.LastEvaluatedKey) == 0 {
			break
		}
		startKey = page.LastEvaluatedKey
	}
	return out, nil
}

func (r *WorkEntryDynamoRepository) ListByRange(ctx context.Context, from, to time.Time) ([]entities.WorkEntry, error) {
	var out []entities.WorkEntry
	var startKey map[string]types.AttributeValue

	for {
		page, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#date BETWEEN :from AND :to"),
			ExpressionAttributeNames: map[string]string{
				"#date": "date",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":from": &types.AttributeValueMemberS{Value: dateToString(from)},
				":to":   &types.AttributeValueMemberS{Value: dateToString(to)},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		entriesPage, err := unmarshalWorkEntryItems(page.Items)
		if err != nil {
			return nil, err
		}
		out = append(out, entriesPage...)

		if len(page.LastEvaluatedKey) == 0 {
			break
		}
		startKey = page.LastEvaluatedKey
	}
	return out, nil
}

// MarkVerified flips the verified flag on the given entry ids. Callers only
// pass ids whose flag is still false, which keeps repeated reconciliation
// passes write-free.
func (r *WorkEntryDynamoRepository) MarkVerified(ctx context.Context, ids []string) error {
	for _, id := range ids {
		_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			},
			ConditionExpression: aws.String("attribute_exists(#id)"),
			UpdateExpression:    aws.String("SET #verified = :true, #updated_at = :updated_at"),
			ExpressionAttributeNames: mergeNames(map[string]string{
				"#verified":   "verified",
				"#updated_at": "updated_at",
			}, map[string]string{"#id": "id"}),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":true":       &types.AttributeValueMemberBOOL{Value: true},
				":updated_at": &types.AttributeValueMemberS{Value: timeToString(time.Now())},
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func unmarshalWorkEntryItems(items []map[string]types.AttributeValue) ([]entities.WorkEntry, error) {
	out := make([]entities.WorkEntry, 0, len(items))
	for _, item := range items {
		var it workEntryItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		out = append(out, fromWorkEntryItem(it))
	}
	return out, nil
}

func toWorkEntryItem(e entities.WorkEntry) workEntryItem {
	return workEntryItem{
		ID:            e.ID,
		TechnicianID:  e.TechnicianID,
		CustomerID:    e.CustomerID,
		Date:          dateToString(e.Date),
		HoursWorked:   floatToString(e.HoursWorked),
		Source:        string(e.Source),
		Verified:      e.Verified,
		StartTime:     e.StartTime,
		EndTime:       e.EndTime,
		Description:   e.Description,
		RegularHours:  floatToString(e.RegularHours),
		OvertimeHours: floatToString(e.OvertimeHours),
		WeekendHours:  floatToString(e.WeekendHours),
		SundayHours:   floatToString(e.SundayHours),
		CreatedAt:     timeToString(e.CreatedAt),
		UpdatedAt:     timeToString(e.UpdatedAt),
	}
}

func fromWorkEntryItem(it workEntryItem) entities.WorkEntry {
	return entities.WorkEntry{
		ID:            it.ID,
		TechnicianID:  it.TechnicianID,
		CustomerID:    it.CustomerID,
		Date:          stringToDate(it.Date),
		HoursWorked:   stringToFloat(it.HoursWorked),
		Source:        entities.EntrySource(it.Source),
		Verified:      it.Verified,
		StartTime:     it.StartTime,
		EndTime:       it.EndTime,
		Description:   it.Description,
		RegularHours:  stringToFloat(it.RegularHours),
		OvertimeHours: stringToFloat(it.OvertimeHours),
		WeekendHours:  stringToFloat(it.WeekendHours),
		SundayHours:   stringToFloat(it.SundayHours),
		CreatedAt:     stringToTime(it.CreatedAt),
		UpdatedAt:     stringToTime(it.UpdatedAt),
	}
}
