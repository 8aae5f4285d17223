package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Stuti0916/SymMuse/internal/models"
)

// Mongo collections
const (
	collectionPeriods       = "periods"
	collectionMoods         = "mood_tracking"
	collectionConsultations = "consultations"
	collectionUsers         = "users"
)

// ConnectMongo connects and pings within timeout
func ConnectMongo(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("MongoDB is not reachable: %w", err)
	}
	return client, nil
}

// NewMongoStore wires every repository to one database
func NewMongoStore(db *mongo.Database) *Store {
	return &Store{
		Periods:       &mongoPeriodRepository{coll: db.Collection(collectionPeriods)},
		Moods:         &mongoMoodRepository{coll: db.Collection(collectionMoods)},
		Consultations: &mongoConsultationRepository{coll: db.Collection(collectionConsultations)},
		Users:         &mongoUserRepository{coll: db.Collection(collectionUsers)},
	}
}

// userIDFilter matches userId stored either as an ObjectID or as a plain string
func userIDFilter(userID string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(userID); err == nil {
		return bson.M{"$in": bson.A{oid, userID}}
	}
	return bson.M{"$eq": userID}
}

func byUserWithin(userID, field string, since, until time.Time) bson.M {
	return bson.M{
		"userId": userIDFilter(userID),
		field:    bson.M{"$gte": since, "$lte": until},
	}
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, opts *options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

type mongoPeriodRepository struct {
	coll *mongo.Collection
}

func (r *mongoPeriodRepository) ListByUser(ctx context.Context, userID string, since, until time.Time) ([]models.PeriodRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "startDate", Value: -1}})
	periods, err := findAll[models.PeriodRecord](ctx, r.coll, byUserWithin(userID, "startDate", since, until), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}
	return periods, nil
}

func (r *mongoPeriodRepository) ListRecent(ctx context.Context, userID string, limit int) ([]models.PeriodRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "startDate", Value: -1}}).
		SetLimit(int64(limit))
	periods, err := findAll[models.PeriodRecord](ctx, r.coll, bson.M{"userId": userIDFilter(userID)}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent periods: %w", err)
	}
	return periods, nil
}

type mongoMoodRepository struct {
	coll *mongo.Collection
}

func (r *mongoMoodRepository) ListByUser(ctx context.Context, userID string, since, until time.Time) ([]models.MoodRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	moods, err := findAll[models.MoodRecord](ctx, r.coll, byUserWithin(userID, "date", since, until), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list mood entries: %w", err)
	}
	return moods, nil
}

type mongoConsultationRepository struct {
	coll *mongo.Collection
}

func (r *mongoConsultationRepository) ListByUser(ctx context.Context, userID string, since, until time.Time) ([]models.ConsultationRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	consultations, err := findAll[models.ConsultationRecord](ctx, r.coll, byUserWithin(userID, "createdAt", since, until), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list consultations: %w", err)
	}
	return consultations, nil
}

// userDocument is the stored user shape; the plan lives under subscription
type userDocument struct {
	ID           string `bson:"_id"`
	Email        string `bson:"email"`
	Subscription *struct {
		Plan string `bson:"plan"`
	} `bson:"subscription,omitempty"`
}

type mongoUserRepository struct {
	coll *mongo.Collection
}

func (r *mongoUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	filter := bson.M{"_id": id}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		filter = bson.M{"_id": oid}
	}

	var doc userDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user := &models.User{ID: doc.ID, Email: doc.Email, Plan: models.PlanFree}
	if doc.Subscription != nil && doc.Subscription.Plan != "" {
		user.Plan = models.Plan(doc.Subscription.Plan)
	}
	return user, nil
}
