package repository

import (
	"context"
	"strings"

	"cleaning_assignments/internal/domain/entities"
	"cleaning_assignments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCleanersTableName     = "cleaners"
	defaultCleanerSlotsTableName = "cleaner_slots"
)

type cleanerItem struct {
	ID           string   `dynamodbav:"id"`
	Name         string   `dynamodbav:"name"`
	Email        string   `dynamodbav:"email"`
	Phone        string   `dynamodbav:"phone"`
	Services     []string `dynamodbav:"services"`
	Rating       float64  `dynamodbav:"rating"`
	Availability []string `dynamodbav:"availability"`
	Status       string   `dynamodbav:"status"`
}

// CleanerDynamoRepository is a read-only view of the cleaners table.
type CleanerDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IProviderRepository = (*CleanerDynamoRepository)(nil)

func NewCleanerDynamoRepository(ddb DynamoDBAPI) *CleanerDynamoRepository {
	return &CleanerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLEANERS_TABLE", defaultCleanersTableName),
	}
}

func (r *CleanerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Provider, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(id),
	})
	if err != nil {
		return entities.Provider{}, err
	}
	if len(out.Item) == 0 {
		return entities.Provider{}, interfaces.ErrProviderNotFound
	}

	var it cleanerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Provider{}, err
	}
	return entities.Provider{
		ID:           it.ID,
		Name:         it.Name,
		Email:        it.Email,
		Phone:        it.Phone,
		Services:     it.Services,
		Rating:       it.Rating,
		Availability: it.Availability,
		Status:       entities.ProviderStatus(it.Status),
	}, nil
}

type slotItem struct {
	SlotKey    string  `dynamodbav:"slot_key"`
	SortKey    string  `dynamodbav:"sort_key"`
	ProviderID string  `dynamodbav:"provider_id"`
	Name       string  `dynamodbav:"name"`
	Rating     float64 `dynamodbav:"rating"`
	Distance   float64 `dynamodbav:"distance"`
	StartTime  string  `dynamodbav:"start_time"`
	EndTime    string  `dynamodbav:"end_time"`
	Status     string  `dynamodbav:"status"`
}

// CleanerSlotIndex is the availability index backed by a projection table
// of free cleaner windows.
//
// Table requirements:
//   - PK: slot_key (string) "<service>#<YYYY-MM-DD>#<zip>"
//   - SK: sort_key (string) "<HH:MM start>#<provider id>"
//
// Rating and distance are denormalized onto each slot so one Query answers
// a match. Results come back in sort key order, which is the index order
// the matching engine uses for ties.
type CleanerSlotIndex struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IAvailabilityIndex = (*CleanerSlotIndex)(nil)

func NewCleanerSlotIndex(ddb DynamoDBAPI) *CleanerSlotIndex {
	return &CleanerSlotIndex{
		ddb:       ddb,
		tableName: getenvDefault("CLEANER_SLOTS_TABLE", defaultCleanerSlotsTableName),
	}
}

func slotKey(serviceID, date, zip string) string {
	return strings.Join([]string{serviceID, date, zip}, "#")
}

func (i *CleanerSlotIndex) FindCandidates(ctx context.Context, c entities.MatchCriteria) ([]entities.Candidate, error) {
	p := dynamodb.NewQueryPaginator(i.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(i.tableName),
		KeyConditionExpression: aws.String("#slot_key = :slot_key"),
		FilterExpression:       aws.String("#start_time <= :start AND #end_time >= :end AND #status = :available"),
		ExpressionAttributeNames: map[string]string{
			"#slot_key":   "slot_key",
			"#start_time": "start_time",
			"#end_time":   "end_time",
			"#status":     "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":slot_key":  str(slotKey(c.ServiceID, c.ServiceDate, c.ZipCode)),
			":start":     str(c.StartTime),
			":end":       str(c.EndTime),
			":available": str(string(entities.ProviderStatusAvailable)),
		},
	})

	seen := map[string]bool{}
	out := []entities.Candidate{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, av := range page.Items {
			var it slotItem
			if err := attributevalue.UnmarshalMap(av, &it); err != nil {
				return nil, err
			}
			if seen[it.ProviderID] {
				continue
			}
			seen[it.ProviderID] = true
			out = append(out, entities.Candidate{
				ProviderID: it.ProviderID,
				Name:       it.Name,
				Rating:     it.Rating,
				Distance:   it.Distance,
			})
		}
	}
	return out, nil
}
