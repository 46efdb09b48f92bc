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

const collectionOrganizations = "organizations"

// OrganizationRepository implements ports.OrganizationRepository using
// MongoDB.
type OrganizationRepository struct {
	col *mongo.Collection
}

func NewOrganizationRepository(db *mongo.Database) *OrganizationRepository {
	return &OrganizationRepository{col: db.Collection(collectionOrganizations)}
}

type organizationDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	AccountID   string             `bson:"account_id"`
	Name        string             `bson:"name"`
	Email       string             `bson:"email"`
	Website     string             `bson:"website,omitempty"`
	Address     string             `bson:"address"`
	City        string             `bson:"city"`
	PostalCode  string             `bson:"postal_code"`
	Country     string             `bson:"country"`
	Phone       string             `bson:"phone"`
	Mission     string             `bson:"mission"`
	Description string             `bson:"description"`
	LinkedInURL string             `bson:"linkedin_url,omitempty"`
	FacebookURL string             `bson:"facebook_url,omitempty"`
	TwitterURL  string             `bson:"twitter_url,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func organizationToDoc(o *domain.Organization) organizationDoc {
	return organizationDoc{
		AccountID:   o.AccountID,
		Name:        o.Name,
		Email:       o.Email,
		Website:     o.Website,
		Address:     o.Address,
		City:        o.City,
		PostalCode:  o.PostalCode,
		Country:     o.Country,
		Phone:       o.Phone,
		Mission:     o.Mission,
		Description: o.Description,
		LinkedInURL: o.LinkedInURL,
		FacebookURL: o.FacebookURL,
		TwitterURL:  o.TwitterURL,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func (d organizationDoc) toDomain() *domain.Organization {
	return &domain.Organization{
		ID:          d.ID.Hex(),
		AccountID:   d.AccountID,
		Name:        d.Name,
		Email:       d.Email,
		Website:     d.Website,
		Address:     d.Address,
		City:        d.City,
		PostalCode:  d.PostalCode,
		Country:     d.Country,
		Phone:       d.Phone,
		Mission:     d.Mission,
		Description: d.Description,
		LinkedInURL: d.LinkedInURL,
		FacebookURL: d.FacebookURL,
		TwitterURL:  d.TwitterURL,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *OrganizationRepository) Create(ctx context.Context, org *domain.Organization) (*domain.Organization, error) {
	now := time.Now().UTC()
	doc := organizationToDoc(org)
	doc.CreatedAt = now
	doc.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		switch {
		case dupOnIndex(err, "email_unique"):
			return nil, domain.ErrEmailTaken
		case dupOnIndex(err, "name_unique"):
			return nil, domain.ErrNameTaken
		}
		return nil, fmt.Errorf("insert organization: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *OrganizationRepository) FindByID(ctx context.Context, id string) (*domain.Organization, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrOrganizationNotFound
	}

	var doc organizationDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("find organization: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *OrganizationRepository) List(ctx context.Context, filter ports.ListOrganizationsFilter) ([]*domain.Organization, error) {
	query := bson.M{}
	if filter.City != "" {
		query["city"] = filter.City
	}
	if filter.Search != "" {
		prefix := primitive.Regex{Pattern: "^" + regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": prefix},
			bson.M{"address": prefix},
			bson.M{"city": filter.Search},
		}
	}

	opts := options.Find()
	if filter.OrderByName {
		opts.SetSort(bson.D{{Key: "name", Value: 1}})
	}

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Organization
	for cur.Next(ctx) {
		var doc organizationDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode organization: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

func (r *OrganizationRepository) Update(ctx context.Context, org *domain.Organization) error {
	oid, err := primitive.ObjectIDFromHex(org.ID)
	if err != nil {
		return domain.ErrOrganizationNotFound
	}

	doc := organizationToDoc(org)
	doc.UpdatedAt = time.Now().UTC()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		switch {
		case dupOnIndex(err, "email_unique"):
			return domain.ErrEmailTaken
		case dupOnIndex(err, "name_unique"):
			return domain.ErrNameTaken
		}
		return fmt.Errorf("update organization: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrOrganizationNotFound
	}
	return nil
}

func (r *OrganizationRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrOrganizationNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete organization: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrOrganizationNotFound
	}
	return nil
}

// EnsureIndexes creates the unique name/email indexes and the directory
// browse indexes.
func (r *OrganizationRepository) EnsureIndexes(ctx context.Context) error {
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
		{Keys: bson.D{{Key: "city", Value: 1}}},
		{Keys: bson.D{{Key: "account_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
