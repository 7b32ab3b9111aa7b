package repositories

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sbilibin2017/portfolio-hub/internal/logger"
	"github.com/sbilibin2017/portfolio-hub/internal/models"
)

// MongoUserRepository stores one document per user in a collection with a
// unique index on username. Updates touch only the changed fields, and
// search results are sorted by updated_at descending.
type MongoUserRepository struct {
	coll *mongo.Collection
}

// NewMongoUserRepository ensures the unique username index exists and
// returns the repository. Index creation failure is a startup error.
func NewMongoUserRepository(ctx context.Context, coll *mongo.Collection) (*MongoUserRepository, error) {
	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := coll.Indexes().CreateOne(ctx, index); err != nil {
		return nil, err
	}
	return &MongoUserRepository{coll: coll}, nil
}

// Find returns the record for username, or ErrUserNotFound.
func (r *MongoUserRepository) Find(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"username": normalizeUsername(username)}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Insert adds a new document. The unique index enforces the uniqueness
// check atomically; a duplicate-key error maps to ErrUsernameTaken.
func (r *MongoUserRepository) Insert(ctx context.Context, user models.User) error {
	user.Username = normalizeUsername(user.Username)

	_, err := r.coll.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrUsernameTaken
	}

	logger.Log.Infow("mongo repository insert",
		"username", user.Username,
		"error", err,
	)
	return err
}

// Update applies the non-nil fields of upd with $set and refreshes
// updated_at. Fails with ErrUserNotFound if no document matches.
func (r *MongoUserRepository) Update(ctx context.Context, username string, upd models.UserUpdate) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.FullName != nil {
		set["full_name"] = *upd.FullName
	}
	if upd.Bio != nil {
		set["bio"] = *upd.Bio
	}
	if upd.Skills != nil {
		set["skills"] = *upd.Skills
	}
	if upd.Projects != nil {
		set["projects"] = *upd.Projects
	}
	if upd.SocialLinks != nil {
		set["social_links"] = *upd.SocialLinks
	}
	if upd.ProfilePic != nil {
		set["profile_pic"] = *upd.ProfilePic
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"username": normalizeUsername(username)},
		bson.M{"$set": set},
	)

	logger.Log.Infow("mongo repository update",
		"username", username,
		"error", err,
	)

	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Search matches a case-insensitive substring of username, full name, or
// any skill, most recently updated first. An empty term returns everything.
func (r *MongoUserRepository) Search(ctx context.Context, term string) ([]models.User, error) {
	filter := bson.M{}
	if term != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
		filter = bson.M{"$or": bson.A{
			bson.M{"username": pattern},
			bson.M{"full_name": pattern},
			bson.M{"skills": pattern},
		}}
	}

	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
