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

const collectionPosts = "blog_posts"

// PostRepository persists blog posts with the same owner-filtered write
// semantics as ArtworkRepository.
type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection(collectionPosts)}
}

type postDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID   string             `bson:"owner_id"`
	OwnerName string             `bson:"owner_name"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	SectionID string             `bson:"section_id,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d *postDoc) toDomain() *domain.BlogPost {
	return &domain.BlogPost{
		ID:        d.ID.Hex(),
		OwnerID:   d.OwnerID,
		OwnerName: d.OwnerName,
		Title:     d.Title,
		Content:   d.Content,
		SectionID: d.SectionID,
		CreatedAt: d.CreatedAt,
	}
}

func (r *PostRepository) Insert(ctx context.Context, p *domain.BlogPost) (*domain.BlogPost, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := postDoc{
		OwnerID:   p.OwnerID,
		OwnerName: p.OwnerName,
		Title:     p.Title,
		Content:   p.Content,
		SectionID: p.SectionID,
		CreatedAt: p.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	created := *p
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	oid, err := objectID(id, domain.ErrPostNotFound)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc postDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PostRepository) OwnerID(ctx context.Context, id string) (string, error) {
	oid, err := objectID(id, domain.ErrPostNotFound)
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
			return "", domain.ErrPostNotFound
		}
		return "", fmt.Errorf("find post owner: %w", err)
	}
	return doc.OwnerID, nil
}

func (r *PostRepository) List(ctx context.Context) ([]*domain.BlogPost, error) {
	return r.list(ctx, bson.M{}, 0)
}

func (r *PostRepository) ListLatest(ctx context.Context, limit int) ([]*domain.BlogPost, error) {
	return r.list(ctx, bson.M{}, int64(limit))
}

func (r *PostRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.BlogPost, error) {
	return r.list(ctx, bson.M{"owner_id": ownerID}, 0)
}

func (r *PostRepository) ListBySection(ctx context.Context, sectionID string) ([]*domain.BlogPost, error) {
	return r.list(ctx, bson.M{"section_id": sectionID}, 0)
}

func (r *PostRepository) list(ctx context.Context, filter bson.M, limit int64) ([]*domain.BlogPost, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer cur.Close(ctx)

	posts := make([]*domain.BlogPost, 0)
	for cur.Next(ctx) {
		var doc postDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode post: %w", err)
		}
		posts = append(posts, doc.toDomain())
	}
	return posts, cur.Err()
}

func (r *PostRepository) Update(ctx context.Context, id, ownerID string, upd ports.UpdatePost) (*domain.BlogPost, error) {
	oid, err := objectID(id, domain.ErrPostNotFound)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Content != nil {
		set["content"] = *upd.Content
	}
	if upd.SectionID != nil {
		set["section_id"] = *upd.SectionID
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

	var doc postDoc
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
		return nil, fmt.Errorf("update post: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PostRepository) Delete(ctx context.Context, id, ownerID string) error {
	oid, err := objectID(id, domain.ErrPostNotFound)
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
		return fmt.Errorf("delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return r.resolveMiss(ctx, oid, ownerID)
	}
	return nil
}

func (r *PostRepository) resolveMiss(ctx context.Context, oid primitive.ObjectID, ownerID string) error {
	if ownerID == "" {
		return domain.ErrPostNotFound
	}
	n, err := r.col.CountDocuments(ctx, bson.M{"_id": oid})
	if err == nil && n > 0 {
		return domain.ErrForbidden
	}
	return domain.ErrPostNotFound
}

func (r *PostRepository) DeleteByOwner(ctx context.Context, ownerID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return 0, fmt.Errorf("delete posts by owner: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *PostRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{})
}

// EnsureIndexes creates the lookup indexes on the blog_posts collection.
func (r *PostRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{Keys: bson.D{{Key: "section_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
