package repository

import (
	"context"
	"sort"
	"time"

	"cleaning_assignments/internal/domain/entities"
	"cleaning_assignments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAssignmentsTableName = "assignment_attempts"
	quoteIndexName              = "quote_id-index"
	statusDeadlineIndexName     = "status-deadline-index"
)

type assignmentItem struct {
	ID               string `dynamodbav:"id"`
	QuoteID          string `dynamodbav:"quote_id"`
	ProviderID       string `dynamodbav:"provider_id"`
	ScheduledDate    string `dynamodbav:"scheduled_date"`
	ScheduledTime    string `dynamodbav:"scheduled_time"`
	Status           string `dynamodbav:"status"`
	ResponseDeadline string `dynamodbav:"response_deadline"`
	RespondedLate    bool   `dynamodbav:"responded_late"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// AssignmentDynamoRepository persists assignment attempts in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI quote_id-index: quote_id (HASH), created_at (RANGE)
//   - GSI status-deadline-index: status (HASH), response_deadline (RANGE)
//
// Writes that also change the quote go through TransactWriteItems so the
// attempt and the quote commit together. Status changes are conditioned on
// the stored status.

type AssignmentDynamoRepository struct {
	ddb       DynamoDBAPI
	quotes    *QuoteDynamoRepository
	tableName string
}

var _ interfaces.IAssignmentRepository = (*AssignmentDynamoRepository)(nil)

func NewAssignmentDynamoRepository(ddb DynamoDBAPI, quotes *QuoteDynamoRepository) *AssignmentDynamoRepository {
	return &AssignmentDynamoRepository{
		ddb:       ddb,
		quotes:    quotes,
		tableName: getenvDefault("ASSIGNMENTS_TABLE", defaultAssignmentsTableName),
	}
}

func (r *AssignmentDynamoRepository) Create(ctx context.Context, a entities.AssignmentAttempt, quote entities.QuoteMutation) (entities.AssignmentAttempt, error) {
	av, err := attributevalue.MarshalMap(toAssignmentItem(a))
	if err != nil {
		return entities.AssignmentAttempt{}, err
	}

	quoteUpdate, err := r.quotes.quoteMutationUpdate(quote, a.CreatedAt)
	if err != nil {
		return entities.AssignmentAttempt{}, err
	}

	if quoteUpdate == nil {
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		})
		if err != nil {
			if _, ok := conditionFailed(err); ok {
				return entities.AssignmentAttempt{}, interfaces.ErrDuplicate
			}
			return entities.AssignmentAttempt{}, err
		}
		return a, nil
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                av,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			}},
			{Update: quoteUpdate},
		},
	})
	if err != nil {
		if _, ok := canceledAt(err, 0); ok {
			return entities.AssignmentAttempt{}, interfaces.ErrDuplicate
		}
		if old, ok := canceledAt(err, 1); ok {
			return entities.AssignmentAttempt{}, quoteConditionError(old)
		}
		return entities.AssignmentAttempt{}, err
	}
	return a, nil
}

func (r *AssignmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.AssignmentAttempt, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.AssignmentAttempt{}, err
	}
	if len(out.Item) == 0 {
		return entities.AssignmentAttempt{}, interfaces.ErrAttemptNotFound
	}
	return unmarshalAssignment(out.Item)
}

func (r *AssignmentDynamoRepository) UpdateStatus(
	ctx context.Context,
	id string,
	from, to entities.AssignmentStatus,
	opts interfaces.TransitionOptions,
) (entities.AssignmentAttempt, error) {
	at := opts.At
	if at.IsZero() {
		at = time.Now()
	}

	attemptUpdate := &types.Update{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		UpdateExpression:    aws.String("SET #status = :to, #late = :late, #updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#late":       "responded_late",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":to":   str(string(to)),
			":from": str(string(from)),
			":late": &types.AttributeValueMemberBOOL{Value: opts.Late},
			":now":  str(formatTime(at)),
		},
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	}

	quoteUpdate, err := r.quotes.quoteMutationUpdate(opts.Quote, at)
	if err != nil {
		return entities.AssignmentAttempt{}, err
	}

	if quoteUpdate == nil {
		out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName:                           attemptUpdate.TableName,
			Key:                                 attemptUpdate.Key,
			UpdateExpression:                    attemptUpdate.UpdateExpression,
			ConditionExpression:                 attemptUpdate.ConditionExpression,
			ExpressionAttributeNames:            attemptUpdate.ExpressionAttributeNames,
			ExpressionAttributeValues:           attemptUpdate.ExpressionAttributeValues,
			ReturnValues:                        types.ReturnValueAllNew,
			ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
		})
		if err != nil {
			if old, ok := conditionFailed(err); ok {
				return entities.AssignmentAttempt{}, attemptConditionError(old)
			}
			return entities.AssignmentAttempt{}, err
		}
		return unmarshalAssignment(out.Attributes)
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Update: attemptUpdate},
			{Update: quoteUpdate},
		},
	})
	if err != nil {
		if old, ok := canceledAt(err, 0); ok {
			return entities.AssignmentAttempt{}, attemptConditionError(old)
		}
		if old, ok := canceledAt(err, 1); ok {
			return entities.AssignmentAttempt{}, quoteConditionError(old)
		}
		return entities.AssignmentAttempt{}, err
	}

	// Transactions do not return new images. The attempt is terminal now, so
	// a consistent read returns exactly what was written.
	return r.GetByID(ctx, id)
}

func (r *AssignmentDynamoRepository) FindPendingExpired(ctx context.Context, now time.Time) ([]entities.AssignmentAttempt, error) {
	return r.query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(statusDeadlineIndexName),
		KeyConditionExpression: aws.String("#status = :pending AND #deadline < :now"),
		ExpressionAttributeNames: map[string]string{
			"#status":   "status",
			"#deadline": "response_deadline",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": str(string(entities.AssignmentStatusPending)),
			":now":     str(formatTime(now)),
		},
	})
}

func (r *AssignmentDynamoRepository) FindPendingByQuote(ctx context.Context, quoteID string) (entities.AssignmentAttempt, bool, error) {
	items, err := r.query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quoteIndexName),
		KeyConditionExpression: aws.String("#quote_id = :quote_id"),
		FilterExpression:       aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#quote_id": "quote_id",
			"#status":   "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":quote_id": str(quoteID),
			":pending":  str(string(entities.AssignmentStatusPending)),
		},
	})
	if err != nil {
		return entities.AssignmentAttempt{}, false, err
	}
	if len(items) == 0 {
		return entities.AssignmentAttempt{}, false, nil
	}
	return items[0], true, nil
}

func (r *AssignmentDynamoRepository) ListByQuote(ctx context.Context, quoteID string) ([]entities.AssignmentAttempt, error) {
	items, err := r.query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quoteIndexName),
		KeyConditionExpression: aws.String("#quote_id = :quote_id"),
		ExpressionAttributeNames: map[string]string{
			"#quote_id": "quote_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":quote_id": str(quoteID),
		},
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	return items, nil
}

func (r *AssignmentDynamoRepository) query(ctx context.Context, in *dynamodb.QueryInput) ([]entities.AssignmentAttempt, error) {
	out := []entities.AssignmentAttempt{}
	p := dynamodb.NewQueryPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			a, err := unmarshalAssignment(item)
			if err != nil {
				return nil, err
			}
			out = append(out, a)
		}
	}
	return out, nil
}

func attemptConditionError(old map[string]types.AttributeValue) error {
	if len(old) == 0 {
		return interfaces.ErrAttemptNotFound
	}
	return interfaces.ErrStatusMismatch
}

func unmarshalAssignment(av map[string]types.AttributeValue) (entities.AssignmentAttempt, error) {
	var it assignmentItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.AssignmentAttempt{}, err
	}
	return fromAssignmentItem(it), nil
}

func toAssignmentItem(a entities.AssignmentAttempt) assignmentItem {
	return assignmentItem{
		ID:               a.ID,
		QuoteID:          a.QuoteID,
		ProviderID:       a.ProviderID,
		ScheduledDate:    a.ScheduledDate,
		ScheduledTime:    a.ScheduledTime,
		Status:           string(a.Status),
		ResponseDeadline: formatTime(a.ResponseDeadline),
		RespondedLate:    a.RespondedLate,
		CreatedAt:        formatTime(a.CreatedAt),
		UpdatedAt:        formatTime(a.UpdatedAt),
	}
}

func fromAssignmentItem(it assignmentItem) entities.AssignmentAttempt {
	return entities.AssignmentAttempt{
		ID:               it.ID,
		QuoteID:          it.QuoteID,
		ProviderID:       it.ProviderID,
		ScheduledDate:    it.ScheduledDate,
		ScheduledTime:    it.ScheduledTime,
		Status:           entities.AssignmentStatus(it.Status),
		ResponseDeadline: parseTime(it.ResponseDeadline),
		RespondedLate:    it.RespondedLate,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
