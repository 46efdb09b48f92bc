package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/voluntree/volunteer-api/internal/core/domain"
)

const collectionApplications = "applications"

// ApplicationRepository implements ports.ApplicationRepository using MongoDB.
// A compound unique index enforces one application per account per
// opportunity.
type ApplicationRepository struct {
	col *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{col: db.Collection(collectionApplications)}
}

type applicationDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	AccountID     string             `bson:"account_id"`
	OpportunityID string             `bson:"opportunity_id"`
	Status        string             `bson:"status"`
	CreatedAt     time.Time          `bson:"created_at"`
}

func (d applicationDoc) toDomain() *domain.Application {
	return &domain.Application{
		ID:            d.ID.Hex(),
		AccountID:     d.AccountID,
		OpportunityID: d.OpportunityID,
		Status:        d.Status,
		CreatedAt:     d.CreatedAt,
	}
}

func (r *ApplicationRepository) Create(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	doc := applicationDoc{
		AccountID:     app.AccountID,
		OpportunityID: app.OpportunityID,
		Status:        app.Status,
		CreatedAt:     app.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateApplication
		}
		return nil, fmt.Errorf("insert application: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*domain.Application, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrApplicationNotFound
	}

	var doc applicationDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("find application: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ApplicationRepository) ListByOpportunity(ctx context.Context, opportunityID string) ([]*domain.Application, error) {
	cur, err := r.col.Find(ctx, bson.M{"opportunity_id": opportunityID})
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Application
	for cur.Next(ctx) {
		var doc applicationDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode application: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id, status string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrApplicationNotFound
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("update application status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrApplicationNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete application: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}

// EnsureIndexes creates the compound unique index backing one application per
// account per opportunity.
func (r *ApplicationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "account_id", Value: 1}, {Key: "opportunity_id", Value: 1}},
			Options: options.Index().SetName("account_opportunity_unique").SetUnique(true),
		},
		{Keys: bson.D{{Key: "opportunity_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
