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

const collectionArtworks = "artworks"

// ArtworkRepository persists artworks. Owner-scoped writes re-assert
// owner_id inside the statement filter, so the ownership decision and the
// mutation cannot be separated by a concurrent request.
type ArtworkRepository struct {
	col *mongo.Collection
}

func NewArtworkRepository(db *mongo.Database) *ArtworkRepository {
	return &ArtworkRepository{col: db.Collection(collectionArtworks)}
}

type artworkDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID     string             `bson:"owner_id"`
	OwnerName   string             `bson:"owner_name"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	ImageURL    string             `bson:"image_url"`
	SectionID   string             `bson:"section_id,omitempty"`
	Featured    bool               `bson:"featured"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (d *artworkDoc) toDomain() *domain.Artwork {
	return &domain.Artwork{
		ID:          d.ID.Hex(),
		OwnerID:     d.OwnerID,
		OwnerName:   d.OwnerName,
		Title:       d.Title,
		Description: d.Description,
		ImageURL:    d.ImageURL,
		SectionID:   d.SectionID,
		Featured:    d.Featured,
		CreatedAt:   d.CreatedAt,
	}
}

func (r *ArtworkRepository) Insert(ctx context.Context, a *domain.Artwork) (*domain.Artwork, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := artworkDoc{
		OwnerID:     a.OwnerID,
		OwnerName:   a.OwnerName,
		Title:       a.Title,
		Description: a.Description,
		ImageURL:    a.ImageURL,
		SectionID:   a.SectionID,
		Featured:    a.Featured,
		CreatedAt:   a.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert artwork: %w", err)
	}

	created := *a
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ArtworkRepository) FindByID(ctx context.Context, id string) (*domain.Artwork, error) {
	oid, err := objectID(id, domain.ErrArtworkNotFound)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc artworkDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrArtworkNotFound
		}
		return nil, fmt.Errorf("find artwork: %w", err)
	}
	return doc.toDomain(), nil
}

// OwnerID does a fresh projected read of the persisted owner.
func (r *ArtworkRepository) OwnerID(ctx context.Context, id string) (string, error) {
	oid, err := objectID(id, domain.ErrArtworkNotFound)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc struct {
		OwnerID string `bson:"owner_id"`
	}
	err = r.col.FindOne(ctx, bson.M{"_id": oid}, options.FindOne().SetProjection(bson.M{"owner_id": 1})).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", domain.ErrArtworkNotFound
		}
		return "", fmt.Errorf("find artwork owner: %w", err)
	}
	return doc.OwnerID, nil
}

func (r *ArtworkRepository) List(ctx context.Context) ([]*domain.Artwork, error) {
	return r.list(ctx, bson.M{})
}

func (r *ArtworkRepository) ListFeatured(ctx context.Context) ([]*domain.Artwork, error) {
	return r.list(ctx, bson.M{"featured": true})
}

func (r *ArtworkRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Artwork, error) {
	return r.list(ctx, bson.M{"owner_id": ownerID})
}

func (r *ArtworkRepository) ListBySection(ctx context.Context, sectionID string) ([]*domain.Artwork, error) {
	return r.list(ctx, bson.M{"section_id": sectionID})
}

func (r *ArtworkRepository) list(ctx context.Context, filter bson.M) ([]*domain.Artwork, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list artworks: %w", err)
	}
	defer cur.Close(ctx)

	artworks := make([]*domain.Artwork, 0)
	for cur.Next(ctx) {
		var doc artworkDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode artwork: %w", err)
		}
		artworks = append(artworks, doc.toDomain())
	}
	return artworks, cur.Err()
}

// Update applies the non-nil fields. A non-empty ownerID is re-asserted in
// the filter; when the filter matches nothing the miss is re-resolved to
// NotFound or Forbidden so a raced change never reads as success.
func (r *ArtworkRepository) Update(ctx context.Context, id, ownerID string, upd ports.UpdateArtwork) (*domain.Artwork, error) {
	oid, err := objectID(id, domain.ErrArtworkNotFound)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.ImageURL != nil {
		set["image_url"] = *upd.ImageURL
	}
	if upd.SectionID != nil {
		set["section_id"] = *upd.SectionID
	}
	if upd.Featured != nil {
		set["featured"] = *upd.Featured
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": oid}
	if ownerID != "" {
		filter["owner_id"] = ownerID
	}

	var doc artworkDoc
	err = r.col.FindOneAndUpdate(
		ctx,
		filter,
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, r.resolveMiss(ctx, oid, ownerID)
		}
		return nil, fmt.Errorf("update artwork: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ArtworkRepository) Delete(ctx context.Context, id, ownerID string) error {
	oid, err := objectID(id, domain.ErrArtworkNotFound)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": oid}
	if ownerID != "" {
		filter["owner_id"] = ownerID
	}

	res, err := r.col.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete artwork: %w", err)
	}
	if res.DeletedCount == 0 {
		return r.resolveMiss(ctx, oid, ownerID)
	}
	return nil
}

// resolveMiss distinguishes "gone" from "owned by someone else" after an
// owner-filtered statement matched nothing.
func (r *ArtworkRepository) resolveMiss(ctx context.Context, oid primitive.ObjectID, ownerID string) error {
	if ownerID == "" {
		return domain.ErrArtworkNotFound
	}
	n, err := r.col.CountDocuments(ctx, bson.M{"_id": oid})
	if err == nil && n > 0 {
		return domain.ErrForbidden
	}
	return domain.ErrArtworkNotFound
}

func (r *ArtworkRepository) DeleteByOwner(ctx context.Context, ownerID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return 0, fmt.Errorf("delete artworks by owner: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *ArtworkRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{})
}

// EnsureIndexes creates the lookup indexes on the artworks collection.
func (r *ArtworkRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{Keys: bson.D{{Key: "section_id", Value: 1}}},
		{Keys: bson.D{{Key: "featured", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
