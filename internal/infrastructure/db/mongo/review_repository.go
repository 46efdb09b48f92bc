package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/voluntree/volunteer-api/internal/core/domain"
)

const collectionReviews = "reviews"

// ReviewRepository implements ports.ReviewRepository using MongoDB.
type ReviewRepository struct {
	col *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{col: db.Collection(collectionReviews)}
}

type reviewDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	AccountID      string             `bson:"account_id"`
	OrganizationID string             `bson:"organization_id"`
	Rating         int                `bson:"rating"`
	Message        string             `bson:"message"`
	CreatedAt      time.Time          `bson:"created_at"`
}

func (d reviewDoc) toDomain() *domain.Review {
	return &domain.Review{
		ID:             d.ID.Hex(),
		AccountID:      d.AccountID,
		OrganizationID: d.OrganizationID,
		Rating:         d.Rating,
		Message:        d.Message,
		CreatedAt:      d.CreatedAt,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	doc := reviewDoc{
		AccountID:      review.AccountID,
		OrganizationID: review.OrganizationID,
		Rating:         review.Rating,
		Message:        review.Message,
		CreatedAt:      review.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert review: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, id string) (*domain.Review, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrReviewNotFound
	}

	var doc reviewDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("find review: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ReviewRepository) ListByOrganization(ctx context.Context, organizationID string) ([]*domain.Review, error) {
	cur, err := r.col.Find(ctx, bson.M{"organization_id": organizationID})
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Review
	for cur.Next(ctx) {
		var doc reviewDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode review: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

func (r *ReviewRepository) Update(ctx context.Context, review *domain.Review) error {
	oid, err := primitive.ObjectIDFromHex(review.ID)
	if err != nil {
		return domain.ErrReviewNotFound
	}

	update := bson.M{"$set": bson.M{
		"rating":  review.Rating,
		"message": review.Message,
	}}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrReviewNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}

// EnsureIndexes creates the organization lookup index.
func (r *ReviewRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "organization_id", Value: 1}}},
		{Keys: bson.D{{Key: "account_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
