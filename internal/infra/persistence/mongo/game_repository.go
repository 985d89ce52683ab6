package mongo

import (
	"context"
	"regexp"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"gameswap/internal/domain/entity"
	"gameswap/internal/domain/repository"
	"gameswap/internal/infra/persistence/mongo/model"
)

// gameRepository implements repository.GameRepository on the games collection.
type gameRepository struct {
	col *mongo.Collection
}

// NewGameRepository builds the read-only catalog repository.
func NewGameRepository(db *mongo.Database) repository.GameRepository {
	return &gameRepository{col: db.Collection("games")}
}

// FindAll returns the full catalog, unfiltered and unpaginated.
func (r *gameRepository) FindAll(ctx context.Context) ([]entity.Game, error) {
	return r.find(ctx, bson.M{})
}

// SearchByTitle matches titles case-insensitively. The user-supplied text
// is quoted so regex metacharacters are matched literally rather than
// interpreted.
func (r *gameRepository) SearchByTitle(ctx context.Context, title string) ([]entity.Game, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(title), Options: "i"}

	return r.find(ctx, bson.M{"title": pattern})
}

// FindByIDs returns the games matching the given ids; unknown or
// malformed ids are skipped.
func (r *gameRepository) FindByIDs(ctx context.Context, ids []string) ([]entity.Game, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return nil, nil
	}

	return r.find(ctx, bson.M{"_id": bson.M{"$in": oids}})
}

func (r *gameRepository) find(ctx context.Context, filter bson.M) ([]entity.Game, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query games")
	}
	defer cur.Close(ctx)

	var docs []model.GameModel
	if err := cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode games")
	}

	games := make([]entity.Game, 0, len(docs))
	for i := range docs {
		games = append(games, docs[i].ToEntity())
	}

	return games, nil
}
