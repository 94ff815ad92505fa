package repository

import (
	"context"
	"fmt"
	"time"

	"cleaning_assignments/internal/domain/entities"
	"cleaning_assignments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quotes"

type quoteItem struct {
	ID                string `dynamodbav:"id"`
	ClientName        string `dynamodbav:"client_name"`
	ClientEmail       string `dynamodbav:"client_email"`
	ClientPhone       string `dynamodbav:"client_phone,omitempty"`
	ServiceType       string `dynamodbav:"service_type"`
	SpaceType         string `dynamodbav:"space_type"`
	Bedrooms          int    `dynamodbav:"bedrooms"`
	Bathrooms         int    `dynamodbav:"bathrooms"`
	Floors            int    `dynamodbav:"floors"`
	CleaningLevel     string `dynamodbav:"cleaning_level"`
	ZipCode           string `dynamodbav:"zip_code"`
	EstimatedHours    string `dynamodbav:"estimated_hours"`
	Status            string `dynamodbav:"status"`
	LeadStatus        string `dynamodbav:"lead_status"`
	ScheduledDate     string `dynamodbav:"scheduled_date,omitempty"`
	AssignedCleanerID string `dynamodbav:"assigned_cleaner_id,omitempty"`
	PendingAttemptID  string `dynamodbav:"pending_attempt_id,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository reads and updates quotes in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The quote intake flow owns item creation. This service only touches the
// assignment columns (status, assigned_cleaner_id, scheduled_date,
// pending_attempt_id) and lead_status.

type QuoteDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb DynamoDBAPI) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

// Put writes a whole quote. Used to seed local tables.
func (r *QuoteDynamoRepository) Put(ctx context.Context, q entities.Quote) error {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, interfaces.ErrQuoteNotFound
	}
	return unmarshalQuote(out.Item)
}

func (r *QuoteDynamoRepository) ClearAssignment(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		UpdateExpression:    aws.String("SET #status = :pending, #updated_at = :now REMOVE #cleaner, #scheduled"),
		ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#guard) AND #status IN (:pending, :assigned)"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
			"#cleaner":    "assigned_cleaner_id",
			"#scheduled":  "scheduled_date",
			"#guard":      "pending_attempt_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":  str(string(entities.QuoteStatusPending)),
			":assigned": str(string(entities.QuoteStatusAssigned)),
			":now":      str(formatTime(time.Now())),
		},
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		if old, ok := conditionFailed(err); ok {
			return entities.Quote{}, quoteConditionError(old)
		}
		return entities.Quote{}, err
	}
	return unmarshalQuote(out.Attributes)
}

func (r *QuoteDynamoRepository) UpdateLeadStatus(ctx context.Context, id string, status entities.LeadStatus) (entities.Quote, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		UpdateExpression:    aws.String("SET #lead_status = :lead_status, #updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#lead_status": "lead_status",
			"#updated_at":  "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lead_status": str(string(status)),
			":now":         str(formatTime(time.Now())),
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if _, ok := conditionFailed(err); ok {
			return entities.Quote{}, interfaces.ErrQuoteNotFound
		}
		return entities.Quote{}, err
	}
	return unmarshalQuote(out.Attributes)
}

// quoteMutationUpdate builds the quote half of an attempt transaction.
// It returns nil for QuoteMutationNone.
func (r *QuoteDynamoRepository) quoteMutationUpdate(m entities.QuoteMutation, now time.Time) (*types.Update, error) {
	names := map[string]string{
		"#id":         "id",
		"#updated_at": "updated_at",
		"#guard":      "pending_attempt_id",
	}
	values := map[string]types.AttributeValue{
		":now": str(formatTime(now)),
	}
	var update, cond string

	switch m.Kind {
	case entities.QuoteMutationNone:
		return nil, nil
	case entities.QuoteMutationAssign:
		update = "SET #status = :assigned, #cleaner = :cleaner, #scheduled = :scheduled, #guard = :attempt, #updated_at = :now"
		cond = "attribute_exists(#id) AND attribute_not_exists(#guard) AND #status IN (:pending, :assigned)"
		names = mergeNames(names, map[string]string{"#status": "status", "#cleaner": "assigned_cleaner_id", "#scheduled": "scheduled_date"})
		values = mergeValues(values, map[string]types.AttributeValue{
			":assigned":  str(string(entities.QuoteStatusAssigned)),
			":pending":   str(string(entities.QuoteStatusPending)),
			":cleaner":   str(m.ProviderID),
			":scheduled": str(formatTime(m.ScheduledAt)),
			":attempt":   str(m.AttemptID),
		})
	case entities.QuoteMutationConfirm:
		update = "SET #updated_at = :now REMOVE #guard"
		cond = "attribute_exists(#id)"
	case entities.QuoteMutationRelease:
		update = "SET #status = :pending, #updated_at = :now REMOVE #cleaner, #scheduled, #guard"
		cond = "attribute_exists(#id)"
		names = mergeNames(names, map[string]string{"#status": "status", "#cleaner": "assigned_cleaner_id", "#scheduled": "scheduled_date"})
		values = mergeValues(values, map[string]types.AttributeValue{
			":pending": str(string(entities.QuoteStatusPending)),
		})
	default:
		return nil, fmt.Errorf("unknown quote mutation %q", m.Kind)
	}

	return &types.Update{
		TableName:                           aws.String(r.tableName),
		Key:                                 idKey(m.QuoteID),
		UpdateExpression:                    aws.String(update),
		ConditionExpression:                 aws.String(cond),
		ExpressionAttributeNames:            names,
		ExpressionAttributeValues:           values,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	}, nil
}

// quoteConditionError explains a failed quote condition from the old image.
func quoteConditionError(old map[string]types.AttributeValue) error {
	if len(old) == 0 {
		return interfaces.ErrQuoteNotFound
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(old, &it); err != nil {
		return err
	}
	if it.PendingAttemptID != "" {
		return interfaces.ErrPendingAttemptExists
	}
	return fmt.Errorf("%w: status %s", interfaces.ErrQuoteNotAssignable, it.Status)
}

func unmarshalQuote(av map[string]types.AttributeValue) (entities.Quote, error) {
	var it quoteItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	it := quoteItem{
		ID:                q.ID,
		ClientName:        q.ClientName,
		ClientEmail:       q.ClientEmail,
		ClientPhone:       q.ClientPhone,
		ServiceType:       q.ServiceType,
		SpaceType:         q.Space.Type,
		Bedrooms:          q.Space.Bedrooms,
		Bathrooms:         q.Space.Bathrooms,
		Floors:            q.Space.Floors,
		CleaningLevel:     q.CleaningLevel,
		ZipCode:           q.ZipCode,
		EstimatedHours:    floatToString(q.EstimatedHours),
		Status:            string(q.Status),
		LeadStatus:        string(q.LeadStatus),
		AssignedCleanerID: q.AssignedCleanerID,
		PendingAttemptID:  q.PendingAttemptID,
		CreatedAt:         formatTime(q.CreatedAt),
		UpdatedAt:         formatTime(q.UpdatedAt),
	}
	if q.ScheduledAt != nil {
		it.ScheduledDate = formatTime(*q.ScheduledAt)
	}
	return it
}

func fromQuoteItem(it quoteItem) entities.Quote {
	q := entities.Quote{
		ID:          it.ID,
		ClientName:  it.ClientName,
		ClientEmail: it.ClientEmail,
		ClientPhone: it.ClientPhone,
		ServiceType: it.ServiceType,
		Space: entities.SpaceDetails{
			Type:      it.SpaceType,
			Bedrooms:  it.Bedrooms,
			Bathrooms: it.Bathrooms,
			Floors:    it.Floors,
		},
		CleaningLevel:     it.CleaningLevel,
		ZipCode:           it.ZipCode,
		EstimatedHours:    stringToFloat(it.EstimatedHours),
		Status:            entities.QuoteStatus(it.Status),
		LeadStatus:        entities.LeadStatus(it.LeadStatus),
		AssignedCleanerID: it.AssignedCleanerID,
		PendingAttemptID:  it.PendingAttemptID,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
	if it.ScheduledDate != "" {
		at := parseTime(it.ScheduledDate)
		q.ScheduledAt = &at
	}
	return q
}
