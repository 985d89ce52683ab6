package mongo

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gameswap/internal/domain/entity"
	"gameswap/internal/domain/repository"
)

// latestDocumentID is the fixed key of the single audit document. The
// sink keeps only the most recent search result set; an out-of-core
// seeding process consumes it.
const latestDocumentID = "latest"

type searchLogDocument struct {
	ID         string           `bson:"_id"`
	Title      string           `bson:"title"`
	Results    []searchLogEntry `bson:"results"`
	RecordedAt time.Time        `bson:"recorded_at"`
}

type searchLogEntry struct {
	Slug string `bson:"slug"`
	Name string `bson:"name"`
}

// searchLogRepository implements the audit sink on the search_history collection.
type searchLogRepository struct {
	col *mongo.Collection
}

// NewSearchLogRepository builds the audit sink repository.
func NewSearchLogRepository(db *mongo.Database) repository.SearchLogRepository {
	return &searchLogRepository{col: db.Collection("search_history")}
}

// RecordSearch overwrites the stored result set with the given one.
func (r *searchLogRepository) RecordSearch(ctx context.Context, title string, results []entity.ExternalSearchResult) error {
	entries := make([]searchLogEntry, 0, len(results))
	for _, res := range results {
		entries = append(entries, searchLogEntry{Slug: res.Slug, Name: res.Name})
	}

	doc := searchLogDocument{
		ID:         latestDocumentID,
		Title:      title,
		Results:    entries,
		RecordedAt: time.Now(),
	}

	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": latestDocumentID}, doc,
		options.Replace().SetUpsert(true))

	return errors.Wrap(err, "failed to record search history")
}
