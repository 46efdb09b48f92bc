package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/voluntree/volunteer-api/internal/core/domain"
	"github.com/voluntree/volunteer-api/internal/core/ports"
)

const (
	collectionEvents        = "events"
	collectionRegistrations = "event_registrations"
)

// EventRepository implements ports.EventRepository using MongoDB.
type EventRepository struct {
	col *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{col: db.Collection(collectionEvents)}
}

type eventDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Title          string             `bson:"title"`
	Description    string             `bson:"description"`
	Date           time.Time          `bson:"date"`
	Location       string             `bson:"location"`
	OrganizationID string             `bson:"organization_id"`
}

func eventToDoc(e *domain.Event) eventDoc {
	return eventDoc{
		Title:          e.Title,
		Description:    e.Description,
		Date:           e.Date,
		Location:       e.Location,
		OrganizationID: e.OrganizationID,
	}
}

func (d eventDoc) toDomain() *domain.Event {
	return &domain.Event{
		ID:             d.ID.Hex(),
		Title:          d.Title,
		Description:    d.Description,
		Date:           d.Date,
		Location:       d.Location,
		OrganizationID: d.OrganizationID,
	}
}

func (r *EventRepository) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	doc := eventToDoc(event)
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*domain.Event, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEventNotFound
	}

	var doc eventDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *EventRepository) List(ctx context.Context, filter ports.ListEventsFilter) ([]*domain.Event, error) {
	cur, err := r.col.Find(ctx, eventListQuery(filter))
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Event
	for cur.Next(ctx) {
		var doc eventDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode event: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

// eventListQuery builds the Find filter. The exact-match location and the
// location search are distinct constraints; when both are present they are
// joined under $and so neither silently replaces the other.
func eventListQuery(filter ports.ListEventsFilter) bson.M {
	query := bson.M{}
	if filter.Location != "" {
		query["location"] = filter.Location
	}
	if filter.OrganizationID != "" {
		query["organization_id"] = filter.OrganizationID
	}
	if filter.Date != nil {
		day := filter.Date.UTC().Truncate(24 * time.Hour)
		query["date"] = bson.M{"$gte": day, "$lt": day.Add(24 * time.Hour)}
	}
	if filter.Search != "" {
		search := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		if exact, ok := query["location"]; ok {
			delete(query, "location")
			query["$and"] = []bson.M{{"location": exact}, {"location": search}}
		} else {
			query["location"] = search
		}
	}
	return query
}

func (r *EventRepository) ListByOrganization(ctx context.Context, orgID string) ([]*domain.Event, error) {
	return r.List(ctx, ports.ListEventsFilter{OrganizationID: orgID})
}

func (r *EventRepository) Update(ctx context.Context, event *domain.Event) error {
	oid, err := primitive.ObjectIDFromHex(event.ID)
	if err != nil {
		return domain.ErrEventNotFound
	}

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, eventToDoc(event))
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrEventNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

// EnsureIndexes creates the browse indexes.
func (r *EventRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "organization_id", Value: 1}}},
		{Keys: bson.D{{Key: "location", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// EventRegistrationRepository implements ports.EventRegistrationRepository
// using MongoDB. A compound unique index enforces one registration per
// profile per event.
type EventRegistrationRepository struct {
	col *mongo.Collection
}

func NewEventRegistrationRepository(db *mongo.Database) *EventRegistrationRepository {
	return &EventRegistrationRepository{col: db.Collection(collectionRegistrations)}
}

type registrationDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	ProfileID    string             `bson:"profile_id"`
	EventID      string             `bson:"event_id"`
	RegisteredAt time.Time          `bson:"registered_at"`
}

func (d registrationDoc) toDomain() *domain.EventRegistration {
	return &domain.EventRegistration{
		ID:           d.ID.Hex(),
		ProfileID:    d.ProfileID,
		EventID:      d.EventID,
		RegisteredAt: d.RegisteredAt,
	}
}

func (r *EventRegistrationRepository) Create(ctx context.Context, reg *domain.EventRegistration) (*domain.EventRegistration, error) {
	doc := registrationDoc{
		ProfileID:    reg.ProfileID,
		EventID:      reg.EventID,
		RegisteredAt: reg.RegisteredAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateRegistration
		}
		return nil, fmt.Errorf("insert registration: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *EventRegistrationRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.EventRegistration, error) {
	cur, err := r.col.Find(ctx, bson.M{"event_id": eventID})
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.EventRegistration
	for cur.Next(ctx) {
		var doc registrationDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode registration: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

// EnsureIndexes creates the compound unique index backing one registration
// per profile per event.
func (r *EventRegistrationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "profile_id", Value: 1}, {Key: "event_id", Value: 1}},
			Options: options.Index().SetName("profile_event_unique").SetUnique(true),
		},
		{Keys: bson.D{{Key: "event_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
