package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/voluntree/volunteer-api/internal/core/domain"
)

const (
	collectionCauseAreas = "cause_areas"
	collectionSkills     = "skills"
)

// CauseAreaRepository implements ports.CauseAreaRepository using MongoDB.
type CauseAreaRepository struct {
	col *mongo.Collection
}

func NewCauseAreaRepository(db *mongo.Database) *CauseAreaRepository {
	return &CauseAreaRepository{col: db.Collection(collectionCauseAreas)}
}

type causeAreaDoc struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Title string             `bson:"title"`
}

func (r *CauseAreaRepository) FindByID(ctx context.Context, id string) (*domain.CauseArea, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUnknownCauseArea
	}

	var doc causeAreaDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUnknownCauseArea
		}
		return nil, fmt.Errorf("find cause area: %w", err)
	}
	return &domain.CauseArea{ID: doc.ID.Hex(), Title: doc.Title}, nil
}

func (r *CauseAreaRepository) List(ctx context.Context) ([]*domain.CauseArea, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list cause areas: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.CauseArea
	for cur.Next(ctx) {
		var doc causeAreaDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode cause area: %w", err)
		}
		out = append(out, &domain.CauseArea{ID: doc.ID.Hex(), Title: doc.Title})
	}
	return out, cur.Err()
}

// SkillRepository implements ports.SkillRepository using MongoDB.
type SkillRepository struct {
	col *mongo.Collection
}

func NewSkillRepository(db *mongo.Database) *SkillRepository {
	return &SkillRepository{col: db.Collection(collectionSkills)}
}

type skillDoc struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
}

// FindByIDs resolves skill IDs. Unknown or malformed IDs simply drop out of
// the result; callers compare lengths to detect them.
func (r *SkillRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Skill, error) {
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
		return nil, fmt.Errorf("find skills: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Skill
	for cur.Next(ctx) {
		var doc skillDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode skill: %w", err)
		}
		out = append(out, &domain.Skill{ID: doc.ID.Hex(), Name: doc.Name})
	}
	return out, cur.Err()
}

func (r *SkillRepository) List(ctx context.Context) ([]*domain.Skill, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Skill
	for cur.Next(ctx) {
		var doc skillDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode skill: %w", err)
		}
		out = append(out, &domain.Skill{ID: doc.ID.Hex(), Name: doc.Name})
	}
	return out, cur.Err()
}
