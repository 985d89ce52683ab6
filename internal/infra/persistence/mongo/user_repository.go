package mongo

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gameswap/internal/domain/entity"
	"gameswap/internal/domain/repository"
	"gameswap/internal/infra/persistence/mongo/model"
)

// userRepository implements repository.UserRepository on the users collection.
type userRepository struct {
	col *mongo.Collection
}

// NewUserRepository builds the user repository and ensures the unique
// indexes that back the username/email uniqueness invariant.
func NewUserRepository(db *mongo.Database) (repository.UserRepository, error) {
	col := db.Collection("users")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to ensure user indexes")
	}

	return &userRepository{col: col}, nil
}

// FindByIDOrUsername retrieves a user matching either key.
func (r *userRepository) FindByIDOrUsername(ctx context.Context, id, username string) (*entity.User, error) {
	keys := bson.A{bson.M{"username": username}}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		keys = append(keys, bson.M{"_id": oid})
	}

	var doc model.UserModel
	err := r.col.FindOne(ctx, bson.M{"$or": keys}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by id or username")
	}

	return doc.ToEntity(), nil
}

// FindByEmail retrieves a single user by their email address.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var doc model.UserModel
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return doc.ToEntity(), nil
}

// Create inserts a new user document. Unique-index violations surface as
// ErrDuplicateUser.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	doc := model.UserFromEntity(user)
	if doc.SavedGames == nil {
		doc.SavedGames = []model.RentalModel{}
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateUser
		}

		return errors.Wrap(err, "failed to insert user")
	}

	user.ID = doc.ID.Hex()

	return nil
}

// AddRental pushes the record in a single atomic find-and-update guarded
// by a game-id absence filter, so the set never gains a duplicate even
// under concurrent saves.
func (r *userRepository) AddRental(ctx context.Context, userID string, record entity.RentalRecord) (*entity.User, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, repository.ErrUserNotFound
	}
	gid, err := primitive.ObjectIDFromHex(record.GameID)
	if err != nil {
		return nil, errors.Errorf("invalid game id %q", record.GameID)
	}

	filter := bson.M{
		"_id":                 uid,
		"saved_games.game_id": bson.M{"$ne": gid},
	}
	update := bson.M{
		"$push": bson.M{
			"saved_games": model.RentalModel{GameID: gid, ReturnDate: record.ReturnDate},
		},
	}

	var doc model.UserModel
	err = r.col.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	if err == nil {
		return doc.ToEntity(), nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.Wrap(err, "failed to add rental")
	}

	// No match: either the user is gone or the game is already rented.
	// Re-read to tell the no-op apart from a missing account.
	err = r.col.FindOne(ctx, bson.M{"_id": uid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload user after rental no-op")
	}

	return doc.ToEntity(), nil
}

// RemoveRental pulls any record matching the game id; absent records make
// the update a no-op on an otherwise matched document.
func (r *userRepository) RemoveRental(ctx context.Context, userID, gameID string) (*entity.User, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, repository.ErrUserNotFound
	}

	var doc model.UserModel

	gid, err := primitive.ObjectIDFromHex(gameID)
	if err != nil {
		// Game ids are ObjectIDs; an unparseable id cannot match any
		// record, so the removal is a plain no-op read.
		err = r.col.FindOne(ctx, bson.M{"_id": uid}).Decode(&doc)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to load user for rental removal")
		}

		return doc.ToEntity(), nil
	}

	pull := bson.M{"$pull": bson.M{"saved_games": bson.M{"game_id": gid}}}

	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": uid}, pull,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to remove rental")
	}

	return doc.ToEntity(), nil
}
