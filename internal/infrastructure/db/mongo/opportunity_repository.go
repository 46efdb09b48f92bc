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

	"github.com/voluntree/volunteer-api/internal/core/domain"
	"github.com/voluntree/volunteer-api/internal/core/ports"
)

const collectionOpportunities = "opportunities"

// OpportunityRepository implements ports.OpportunityRepository using MongoDB.
type OpportunityRepository struct {
	col *mongo.Collection
}

func NewOpportunityRepository(db *mongo.Database) *OpportunityRepository {
	return &OpportunityRepository{col: db.Collection(collectionOpportunities)}
}

type opportunityDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Title          string             `bson:"title"`
	OrganizationID string             `bson:"organization_id"`
	Type           string             `bson:"opportunity_type"`
	StartDate      time.Time          `bson:"start_date"`
	EndDate        time.Time          `bson:"end_date"`
	Location       string             `bson:"location"`
	CauseAreaID    string             `bson:"cause_area_id"`
	SkillIDs       []string           `bson:"skill_ids"`
	Description    string             `bson:"description"`
	Requirements   string             `bson:"requirements,omitempty"`
	Status         string             `bson:"status"`
	DatePosted     time.Time          `bson:"date_posted"`
}

func opportunityToDoc(o *domain.Opportunity) opportunityDoc {
	return opportunityDoc{
		Title:          o.Title,
		OrganizationID: o.OrganizationID,
		Type:           o.Type,
		StartDate:      o.StartDate,
		EndDate:        o.EndDate,
		Location:       o.Location,
		CauseAreaID:    o.CauseAreaID,
		SkillIDs:       o.SkillIDs,
		Description:    o.Description,
		Requirements:   o.Requirements,
		Status:         string(o.Status),
		DatePosted:     o.DatePosted,
	}
}

func (d opportunityDoc) toDomain() *domain.Opportunity {
	return &domain.Opportunity{
		ID:             d.ID.Hex(),
		Title:          d.Title,
		OrganizationID: d.OrganizationID,
		Type:           d.Type,
		StartDate:      d.StartDate,
		EndDate:        d.EndDate,
		Location:       d.Location,
		CauseAreaID:    d.CauseAreaID,
		SkillIDs:       d.SkillIDs,
		Description:    d.Description,
		Requirements:   d.Requirements,
		Status:         domain.OpportunityStatus(d.Status),
		DatePosted:     d.DatePosted,
	}
}

func (r *OpportunityRepository) Create(ctx context.Context, opp *domain.Opportunity) (*domain.Opportunity, error) {
	doc := opportunityToDoc(opp)
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert opportunity: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *OpportunityRepository) FindByID(ctx context.Context, id string) (*domain.Opportunity, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrOpportunityNotFound
	}

	var doc opportunityDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOpportunityNotFound
		}
		return nil, fmt.Errorf("find opportunity: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *OpportunityRepository) List(ctx context.Context, filter ports.ListOpportunitiesFilter) ([]*domain.Opportunity, error) {
	query := bson.M{}
	if filter.Location != "" {
		query["location"] = filter.Location
	}
	if filter.OrganizationID != "" {
		query["organization_id"] = filter.OrganizationID
	}
	if filter.CauseAreaID != "" {
		query["cause_area_id"] = filter.CauseAreaID
	}
	if filter.SkillID != "" {
		query["skill_ids"] = filter.SkillID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Search != "" {
		query["location"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
	}

	cur, err := r.col.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list opportunities: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Opportunity
	for cur.Next(ctx) {
		var doc opportunityDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode opportunity: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

func (r *OpportunityRepository) ListByOrganization(ctx context.Context, orgID string) ([]*domain.Opportunity, error) {
	return r.List(ctx, ports.ListOpportunitiesFilter{OrganizationID: orgID})
}

func (r *OpportunityRepository) Update(ctx context.Context, opp *domain.Opportunity) error {
	oid, err := primitive.ObjectIDFromHex(opp.ID)
	if err != nil {
		return domain.ErrOpportunityNotFound
	}

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, opportunityToDoc(opp))
	if err != nil {
		return fmt.Errorf("update opportunity: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrOpportunityNotFound
	}
	return nil
}

func (r *OpportunityRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrOpportunityNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete opportunity: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrOpportunityNotFound
	}
	return nil
}

// EnsureIndexes creates the browse indexes.
func (r *OpportunityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "organization_id", Value: 1}}},
		{Keys: bson.D{{Key: "location", Value: 1}}},
		{Keys: bson.D{{Key: "cause_area_id", Value: 1}}},
		{Keys: bson.D{{Key: "skill_ids", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
