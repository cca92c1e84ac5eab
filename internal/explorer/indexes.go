package explorer

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// titleIndexName is the server's default name for {title: 1}.
const titleIndexName = "title_1"

type IndexInfo struct {
	Name string `bson:"name"`
	Keys bson.M `bson:"key"`
}

type ExplainStats struct {
	TotalDocsExamined   int64
	ExecutionTimeMillis int64
	NReturned           int64
}

func (e *Explorer) CreateTitleIndex(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	return e.Books.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "title", Value: 1}},
	})
}

func (e *Explorer) CreateAuthorYearIndex(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	return e.Books.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "author", Value: 1},
			{Key: "published_year", Value: 1},
		},
	})
}

func (e *Explorer) ListIndexes(ctx context.Context) ([]IndexInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := e.Books.Indexes().List(ctx)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var indexes []IndexInfo
	if err := cursor.All(ctx, &indexes); err != nil {
		return nil, err
	}
	return indexes, nil
}

// ExplainFindCommand wraps an exact-title find in an explain command at
// executionStats verbosity. An empty hint omits the hint field.
func ExplainFindCommand(collection, title, hint string) bson.D {
	find := bson.D{
		{Key: "find", Value: collection},
		{Key: "filter", Value: bson.D{{Key: "title", Value: title}}},
	}
	if hint != "" {
		find = append(find, bson.E{Key: "hint", Value: hint})
	}

	return bson.D{
		{Key: "explain", Value: find},
		{Key: "verbosity", Value: "executionStats"},
	}
}

// ExplainTitleFind reports how the server executed the exact-title find,
// optionally forced onto the named index.
func (e *Explorer) ExplainTitleFind(ctx context.Context, title, hint string) (ExplainStats, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cmd := ExplainFindCommand(e.Books.Name(), title, hint)

	var result struct {
		ExecutionStats struct {
			TotalDocsExamined   int64 `bson:"totalDocsExamined"`
			ExecutionTimeMillis int64 `bson:"executionTimeMillis"`
			NReturned           int64 `bson:"nReturned"`
		} `bson:"executionStats"`
	}
	if err := e.Books.Database().RunCommand(ctx, cmd).Decode(&result); err != nil {
		return ExplainStats{}, err
	}

	return ExplainStats{
		TotalDocsExamined:   result.ExecutionStats.TotalDocsExamined,
		ExecutionTimeMillis: result.ExecutionStats.ExecutionTimeMillis,
		NReturned:           result.ExecutionStats.NReturned,
	}, nil
}
