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

const collectionWellness = "wellness_entries"

// WellnessRepository persists wellness entries. Every mutation requires the
// owner filter — entries have no admin mutation path.
type WellnessRepository struct {
	col *mongo.Collection
}

func NewWellnessRepository(db *mongo.Database) *WellnessRepository {
	return &WellnessRepository{col: db.Collection(collectionWellness)}
}

type wellnessDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID         string             `bson:"owner_id"`
	OwnerName       string             `bson:"owner_name"`
	SessionType     string             `bson:"session_type"`
	DurationMinutes int                `bson:"duration_minutes,omitempty"`
	FatiguePre      int                `bson:"fatigue_pre"`
	SleepQuality    int                `bson:"sleep_quality"`
	SleepHours      float64            `bson:"sleep_hours"`
	StressLevel     int                `bson:"stress_level"`
	Mood            int                `bson:"mood"`
	MuscleSoreness  int                `bson:"muscle_soreness"`
	InjuryPain      int                `bson:"injury_pain,omitempty"`
	MenstrualPeriod bool               `bson:"menstrual_period"`
	NutritionQual   int                `bson:"nutrition_quality"`
	FatiguePost     int                `bson:"fatigue_post,omitempty"`
	RPE             int                `bson:"rpe,omitempty"`
	Comments        string             `bson:"comments,omitempty"`
	CreatedAt       time.Time          `bson:"created_at"`
}

func (d *wellnessDoc) toDomain() *domain.WellnessEntry {
	return &domain.WellnessEntry{
		ID:              d.ID.Hex(),
		OwnerID:         d.OwnerID,
		OwnerName:       d.OwnerName,
		SessionType:     domain.SessionType(d.SessionType),
		DurationMinutes: d.DurationMinutes,
		FatiguePre:      d.FatiguePre,
		SleepQuality:    d.SleepQuality,
		SleepHours:      d.SleepHours,
		StressLevel:     d.StressLevel,
		Mood:            d.Mood,
		MuscleSoreness:  d.MuscleSoreness,
		InjuryPain:      d.InjuryPain,
		MenstrualPeriod: d.MenstrualPeriod,
		NutritionQual:   d.NutritionQual,
		FatiguePost:     d.FatiguePost,
		RPE:             d.RPE,
		Comments:        d.Comments,
		CreatedAt:       d.CreatedAt,
	}
}

func (r *WellnessRepository) Insert(ctx context.Context, e *domain.WellnessEntry) (*domain.WellnessEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := wellnessDoc{
		OwnerID:         e.OwnerID,
		OwnerName:       e.OwnerName,
		SessionType:     string(e.SessionType),
		DurationMinutes: e.DurationMinutes,
		FatiguePre:      e.FatiguePre,
		SleepQuality:    e.SleepQuality,
		SleepHours:      e.SleepHours,
		StressLevel:     e.StressLevel,
		Mood:            e.Mood,
		MuscleSoreness:  e.MuscleSoreness,
		InjuryPain:      e.InjuryPain,
		MenstrualPeriod: e.MenstrualPeriod,
		NutritionQual:   e.NutritionQual,
		FatiguePost:     e.FatiguePost,
		RPE:             e.RPE,
		Comments:        e.Comments,
		CreatedAt:       e.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert wellness entry: %w", err)
	}

	created := *e
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *WellnessRepository) FindByID(ctx context.Context, id string) (*domain.WellnessEntry, error) {
	oid, err := objectID(id, domain.ErrEntryNotFound)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc wellnessDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("find wellness entry: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *WellnessRepository) OwnerID(ctx context.Context, id string) (string, error) {
	oid, err := objectID(id, domain.ErrEntryNotFound)
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
			return "", domain.ErrEntryNotFound
		}
		return "", fmt.Errorf("find wellness entry owner: %w", err)
	}
	return doc.OwnerID, nil
}

func (r *WellnessRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.WellnessEntry, error) {
	return r.list(ctx, bson.M{"owner_id": ownerID})
}

func (r *WellnessRepository) ListAll(ctx context.Context) ([]*domain.WellnessEntry, error) {
	return r.list(ctx, bson.M{})
}

func (r *WellnessRepository) list(ctx context.Context, filter bson.M) ([]*domain.WellnessEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list wellness entries: %w", err)
	}
	defer cur.Close(ctx)

	entries := make([]*domain.WellnessEntry, 0)
	for cur.Next(ctx) {
		var doc wellnessDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode wellness entry: %w", err)
		}
		entries = append(entries, doc.toDomain())
	}
	return entries, cur.Err()
}

func (r *WellnessRepository) Update(ctx context.Context, id, ownerID string, upd ports.UpdateWellnessEntry) (*domain.WellnessEntry, error) {
	oid, err := objectID(id, domain.ErrEntryNotFound)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if upd.SessionType != nil {
		set["session_type"] = string(*upd.SessionType)
	}
	if upd.DurationMinutes != nil {
		set["duration_minutes"] = *upd.DurationMinutes
	}
	if upd.FatiguePre != nil {
		set["fatigue_pre"] = *upd.FatiguePre
	}
	if upd.SleepQuality != nil {
		set["sleep_quality"] = *upd.SleepQuality
	}
	if upd.SleepHours != nil {
		set["sleep_hours"] = *upd.SleepHours
	}
	if upd.StressLevel != nil {
		set["stress_level"] = *upd.StressLevel
	}
	if upd.Mood != nil {
		set["mood"] = *upd.Mood
	}
	if upd.MuscleSoreness != nil {
		set["muscle_soreness"] = *upd.MuscleSoreness
	}
	if upd.InjuryPain != nil {
		set["injury_pain"] = *upd.InjuryPain
	}
	if upd.MenstrualPeriod != nil {
		set["menstrual_period"] = *upd.MenstrualPeriod
	}
	if upd.NutritionQual != nil {
		set["nutrition_quality"] = *upd.NutritionQual
	}
	if upd.FatiguePost != nil {
		set["fatigue_post"] = *upd.FatiguePost
	}
	if upd.RPE != nil {
		set["rpe"] = *upd.RPE
	}
	if upd.Comments != nil {
		set["comments"] = *upd.Comments
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc wellnessDoc
	err = r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid, "owner_id": ownerID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, r.resolveMiss(ctx, oid)
		}
		return nil, fmt.Errorf("update wellness entry: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *WellnessRepository) Delete(ctx context.Context, id, ownerID string) error {
	oid, err := objectID(id, domain.ErrEntryNotFound)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid, "owner_id": ownerID})
	if err != nil {
		return fmt.Errorf("delete wellness entry: %w", err)
	}
	if res.DeletedCount == 0 {
		return r.resolveMiss(ctx, oid)
	}
	return nil
}

func (r *WellnessRepository) resolveMiss(ctx context.Context, oid primitive.ObjectID) error {
	n, err := r.col.CountDocuments(ctx, bson.M{"_id": oid})
	if err == nil && n > 0 {
		return domain.ErrForbidden
	}
	return domain.ErrEntryNotFound
}

func (r *WellnessRepository) DeleteByOwner(ctx context.Context, ownerID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return 0, fmt.Errorf("delete wellness entries by owner: %w", err)
	}
	return res.DeletedCount, nil
}

// EnsureIndexes creates the owner lookup index.
func (r *WellnessRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
