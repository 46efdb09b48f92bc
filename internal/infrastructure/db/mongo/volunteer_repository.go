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

const collectionProfiles = "profiles"

// VolunteerRepository implements ports.VolunteerRepository using MongoDB.
type VolunteerRepository struct {
	col *mongo.Collection
}

func NewVolunteerRepository(db *mongo.Database) *VolunteerRepository {
	return &VolunteerRepository{col: db.Collection(collectionProfiles)}
}

type profileDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	AccountID   string             `bson:"account_id"`
	Name        string             `bson:"name"`
	Email       string             `bson:"email"`
	PhoneNumber string             `bson:"phone_number,omitempty"`
	Address     string             `bson:"address,omitempty"`
	City        string             `bson:"city,omitempty"`
	Country     string             `bson:"country,omitempty"`
	DateOfBirth *time.Time         `bson:"date_of_birth,omitempty"`
	Bio         string             `bson:"bio,omitempty"`
}

func profileToDoc(p *domain.Profile) profileDoc {
	return profileDoc{
		AccountID:   p.AccountID,
		Name:        p.Name,
		Email:       p.Email,
		PhoneNumber: p.PhoneNumber,
		Address:     p.Address,
		City:        p.City,
		Country:     p.Country,
		DateOfBirth: p.DateOfBirth,
		Bio:         p.Bio,
	}
}

func (d profileDoc) toDomain() *domain.Profile {
	return &domain.Profile{
		ID:          d.ID.Hex(),
		AccountID:   d.AccountID,
		Name:        d.Name,
		Email:       d.Email,
		PhoneNumber: d.PhoneNumber,
		Address:     d.Address,
		City:        d.City,
		Country:     d.Country,
		DateOfBirth: d.DateOfBirth,
		Bio:         d.Bio,
	}
}

func (r *VolunteerRepository) Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	doc := profileToDoc(p)
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		switch {
		case dupOnIndex(err, "email_unique"):
			return nil, domain.ErrEmailTaken
		case dupOnIndex(err, "name_unique"):
			return nil, domain.ErrNameTaken
		}
		return nil, fmt.Errorf("insert profile: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *VolunteerRepository) FindByID(ctx context.Context, id string) (*domain.Profile, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProfileNotFound
	}

	var doc profileDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *VolunteerRepository) FindByAccountID(ctx context.Context, accountID string) (*domain.Profile, error) {
	var doc profileDoc
	if err := r.col.FindOne(ctx, bson.M{"account_id": accountID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile by account: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *VolunteerRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Profile, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}

	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("find profiles: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Profile
	for cur.Next(ctx) {
		var doc profileDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode profile: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

func (r *VolunteerRepository) Update(ctx context.Context, p *domain.Profile) error {
	oid, err := primitive.ObjectIDFromHex(p.ID)
	if err != nil {
		return domain.ErrProfileNotFound
	}

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, profileToDoc(p))
	if err != nil {
		switch {
		case dupOnIndex(err, "email_unique"):
			return domain.ErrEmailTaken
		case dupOnIndex(err, "name_unique"):
			return domain.ErrNameTaken
		}
		return fmt.Errorf("update profile: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *VolunteerRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProfileNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

// EnsureIndexes creates the unique name/email indexes and the account
// back-reference lookup index.
func (r *VolunteerRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_unique").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetName("name_unique").SetUnique(true),
		},
		{Keys: bson.D{{Key: "account_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
