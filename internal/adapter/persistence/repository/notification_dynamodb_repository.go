package repository

import (
	"context"
	"time"

	"cleaning_assignments/internal/domain/entities"
	"cleaning_assignments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultNotificationsTableName = "notifications"
	notificationsRecipientIndex   = "recipient_id-sent_at-index"
)

type notificationItem struct {
	ID            string `dynamodbav:"id"`
	RecipientID   string `dynamodbav:"recipient_id"`
	RecipientType string `dynamodbav:"recipient_type"`
	Kind          string `dynamodbav:"kind"`
	Event         string `dynamodbav:"event"`
	Title         string `dynamodbav:"title"`
	Message       string `dynamodbav:"message"`
	Data          string `dynamodbav:"data,omitempty"`
	Read          bool   `dynamodbav:"read"`
	SentAt        string `dynamodbav:"sent_at"`
	ReadAt        string `dynamodbav:"read_at,omitempty"`
}

// NotificationDynamoRepository is the in-app inbox.
//
// Table requirements:
//   - PK: id (string)
//   - GSI recipient_id-sent_at-index: recipient_id (PK), sent_at (SK)
type NotificationDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.INotificationInbox = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb DynamoDBAPI) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NOTIFICATIONS_TABLE", defaultNotificationsTableName),
	}
}

func (r *NotificationDynamoRepository) Save(ctx context.Context, n entities.InboxNotification) error {
	it := notificationItem{
		ID:            n.ID,
		RecipientID:   n.RecipientID,
		RecipientType: string(n.RecipientType),
		Kind:          string(n.Kind),
		Event:         n.Event,
		Title:         n.Title,
		Message:       n.Message,
		Data:          string(n.Data),
		Read:          n.Read,
		SentAt:        formatTime(n.SentAt),
	}
	if n.ReadAt != nil {
		it.ReadAt = formatTime(*n.ReadAt)
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if _, ok := conditionFailed(err); ok {
		return interfaces.ErrDuplicate
	}
	return err
}

func (r *NotificationDynamoRepository) ListUnread(ctx context.Context, recipientID string) ([]entities.InboxNotification, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(notificationsRecipientIndex),
		KeyConditionExpression: aws.String("#recipient_id = :recipient_id"),
		FilterExpression:       aws.String("#read = :false"),
		ExpressionAttributeNames: map[string]string{
			"#recipient_id": "recipient_id",
			"#read":         "read",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":recipient_id": str(recipientID),
			":false":        &types.AttributeValueMemberBOOL{Value: false},
		},
		ScanIndexForward: aws.Bool(false),
	})

	out := []entities.InboxNotification{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, av := range page.Items {
			n, err := unmarshalNotification(av)
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *NotificationDynamoRepository) MarkRead(ctx context.Context, id string, at time.Time) (entities.InboxNotification, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		UpdateExpression:    aws.String("SET #read = :true, #read_at = if_not_exists(#read_at, :at)"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#read":    "read",
			"#read_at": "read_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
			":at":   str(formatTime(at)),
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if _, ok := conditionFailed(err); ok {
			return entities.InboxNotification{}, interfaces.ErrNotificationNotFound
		}
		return entities.InboxNotification{}, err
	}
	return unmarshalNotification(out.Attributes)
}

func unmarshalNotification(av map[string]types.AttributeValue) (entities.InboxNotification, error) {
	var it notificationItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.InboxNotification{}, err
	}
	n := entities.InboxNotification{
		ID:            it.ID,
		RecipientID:   it.RecipientID,
		RecipientType: entities.RecipientType(it.RecipientType),
		Kind:          entities.NotificationKind(it.Kind),
		Event:         it.Event,
		Title:         it.Title,
		Message:       it.Message,
		Read:          it.Read,
		SentAt:        parseTime(it.SentAt),
	}
	if it.Data != "" {
		n.Data = []byte(it.Data)
	}
	if it.ReadAt != "" {
		readAt := parseTime(it.ReadAt)
		n.ReadAt = &readAt
	}
	return n, nil
}
