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

	"github.com/angelb-studio/studio-api/internal/core/domain"
	"github.com/angelb-studio/studio-api/internal/core/ports"
)

const collectionSections = "sections"

// SectionRepository persists sections and their membership lists.
type SectionRepository struct {
	col *mongo.Collection
}

func NewSectionRepository(db *mongo.Database) *SectionRepository {
	return &SectionRepository{col: db.Collection(collectionSections)}
}

type sectionDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Slug        string             `bson:"slug,omitempty"`
	Description string             `bson:"description,omitempty"`
	ImageURL    string             `bson:"image_url,omitempty"`
	MemberIDs   []string           `bson:"member_ids,omitempty"`
}

func (d *sectionDoc) toDomain() *domain.Section {
	return &domain.Section{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Slug:        d.Slug,
		Description: d.Description,
		ImageURL:    d.ImageURL,
		MemberIDs:   d.MemberIDs,
	}
}

func (r *SectionRepository) Insert(ctx context.Context, s *domain.Section) (*domain.Section, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := sectionDoc{
		Name:        s.Name,
		Slug:        s.Slug,
		Description: s.Description,
		ImageURL:    s.ImageURL,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSectionExists
		}
		return nil, fmt.Errorf("insert section: %w", err)
	}

	created := *s
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *SectionRepository) FindByID(ctx context.Context, id string) (*domain.Section, error) {
	oid, err := objectID(id, domain.ErrSectionNotFound)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *SectionRepository) FindBySlug(ctx context.Context, slug string) (*domain.Section, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *SectionRepository) findOne(ctx context.Context, filter bson.M) (*domain.Section, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc sectionDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSectionNotFound
		}
		return nil, fmt.Errorf("find section: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *SectionRepository) List(ctx context.Context) ([]*domain.Section, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	defer cur.Close(ctx)

	sections := make([]*domain.Section, 0)
	for cur.Next(ctx) {
		var doc sectionDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode section: %w", err)
		}
		sections = append(sections, doc.toDomain())
	}
	return sections, cur.Err()
}

func (r *SectionRepository) Update(ctx context.Context, id string, upd ports.UpdateSection) (*domain.Section, error) {
	oid, err := objectID(id, domain.ErrSectionNotFound)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Slug != nil {
		set["slug"] = *upd.Slug
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.ImageURL != nil {
		set["image_url"] = *upd.ImageURL
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc sectionDoc
	err = r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSectionNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSectionExists
		}
		return nil, fmt.Errorf("update section: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *SectionRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id, domain.ErrSectionNotFound)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete section: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSectionNotFound
	}
	return nil
}

func (r *SectionRepository) AddMember(ctx context.Context, sectionID, userID string) error {
	oid, err := objectID(sectionID, domain.ErrSectionNotFound)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$addToSet": bson.M{"member_ids": userID}})
	if err != nil {
		return fmt.Errorf("add member: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrSectionNotFound
	}
	return nil
}

func (r *SectionRepository) RemoveMember(ctx context.Context, sectionID, userID string) error {
	oid, err := objectID(sectionID, domain.ErrSectionNotFound)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$pull": bson.M{"member_ids": userID}})
	if err != nil {
		return fmt.Errorf("remove member: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrSectionNotFound
	}
	return nil
}

// RemoveMemberAll pulls the user out of every section's member list.
func (r *SectionRepository) RemoveMemberAll(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateMany(ctx, bson.M{"member_ids": userID}, bson.M{"$pull": bson.M{"member_ids": userID}})
	if err != nil {
		return fmt.Errorf("remove member from all sections: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique name and slug indexes. The slug index is
// sparse so sections without a slug do not collide.
func (r *SectionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true).SetSparse(true)},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
