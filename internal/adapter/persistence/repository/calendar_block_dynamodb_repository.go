package repository

import (
	"context"
	"time"

	"venuedesk/internal/domain/entities"
	"venuedesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCalendarBlocksTableName = "calendar_blocks"

type calendarBlockItem struct {
	ID        string `dynamodbav:"id"`
	Date      string `dynamodbav:"date"`
	Reason    string `dynamodbav:"reason,omitempty"`
	Recurring bool   `dynamodbav:"recurring"`
	CreatedAt string `dynamodbav:"created_at"`
}

// CalendarBlockDynamoRepository persists CalendarBlock entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The block registry is small (holidays, maintenance days), so reads go
// through a full Scan and the duplicate-pair rule lives in the use case.

type CalendarBlockDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICalendarBlockRepository = (*CalendarBlockDynamoRepository)(nil)

func NewCalendarBlockDynamoRepository(ddb *dynamodb.Client) *CalendarBlockDynamoRepository {
	return &CalendarBlockDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CALENDAR_BLOCKS_TABLE", defaultCalendarBlocksTableName),
	}
}

func (r *CalendarBlockDynamoRepository) Create(ctx context.Context, cb entities.CalendarBlock) (entities.CalendarBlock, error) {
	it := toCalendarBlockItem(cb)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.CalendarBlock{}, err
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
		return entities.CalendarBlock{}, err
	}
	return cb, nil
}

func (r *CalendarBlockDynamoRepository) GetByID(ctx context.Context, id string) (entities.CalendarBlock, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CalendarBlock{}, err
	}
	if len(out.Item) == 0 {
		return entities.CalendarBlock{}, nil
	}

	var it calendarBlockItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CalendarBlock{}, err
	}
	return fromCalendarBlockItem(it), nil
}

func (r *CalendarBlockDynamoRepository) List(ctx context.Context) ([]entities.CalendarBlock, error) {
	items := make([]entities.CalendarBlock, 0)

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it calendarBlockItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromCalendarBlockItem(it))
		}
	}
	return items, nil
}

func (r *CalendarBlockDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toCalendarBlockItem(cb entities.CalendarBlock) calendarBlockItem {
	return calendarBlockItem{
		ID:        cb.ID,
		Date:      cb.Date.Format("2006-01-02"),
		Reason:    cb.Reason,
		Recurring: cb.Recurring,
		CreatedAt: cb.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCalendarBlockItem(it calendarBlockItem) entities.CalendarBlock {
	day, _ := time.Parse("2006-01-02", it.Date)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.CalendarBlock{
		ID:        it.ID,
		Date:      entities.DateOnly(day),
		Reason:    it.Reason,
		Recurring: it.Recurring,
		CreatedAt: createdAt,
	}
}
