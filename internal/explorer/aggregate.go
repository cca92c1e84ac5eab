package explorer

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type GenreStats struct {
	Genre    string  `bson:"_id"`
	AvgPrice float64 `bson:"avg_price"`
	Count    int32   `bson:"count"`
}

type AuthorCount struct {
	Author string `bson:"_id"`
	Books  int32  `bson:"books"`
}

type DecadeGroup struct {
	Decade int32    `bson:"_id"`
	Count  int32    `bson:"count"`
	Titles []string `bson:"titles"`
}

// GenreStatsPipeline groups by genre with average price and count, most
// expensive genre first.
func GenreStatsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$genre"},
			{Key: "avg_price", Value: bson.D{{Key: "$avg", Value: "$price"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "avg_price", Value: -1}}}},
	}
}

// TopAuthorsPipeline groups by author with book counts, descending, capped
// at limit.
func TopAuthorsPipeline(limit int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$author"},
			{Key: "books", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "books", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
	}
}

// DecadePipeline derives decade = published_year - published_year mod 10,
// groups with a count and the accumulated titles, ascending by decade.
func DecadePipeline() mongo.Pipeline {
	decade := bson.D{{Key: "$subtract", Value: bson.A{
		"$published_year",
		bson.D{{Key: "$mod", Value: bson.A{"$published_year", 10}}},
	}}}

	return mongo.Pipeline{
		{{Key: "$project", Value: bson.D{
			{Key: "title", Value: 1},
			{Key: "decade", Value: decade},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$decade"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "titles", Value: bson.D{{Key: "$push", Value: "$title"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
}

func (e *Explorer) GenreStats(ctx context.Context) ([]GenreStats, error) {
	var stats []GenreStats
	if err := e.aggregate(ctx, GenreStatsPipeline(), &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (e *Explorer) TopAuthors(ctx context.Context, limit int) ([]AuthorCount, error) {
	var authors []AuthorCount
	if err := e.aggregate(ctx, TopAuthorsPipeline(limit), &authors); err != nil {
		return nil, err
	}
	return authors, nil
}

func (e *Explorer) BooksByDecade(ctx context.Context) ([]DecadeGroup, error) {
	var decades []DecadeGroup
	if err := e.aggregate(ctx, DecadePipeline(), &decades); err != nil {
		return nil, err
	}
	return decades, nil
}

func (e *Explorer) aggregate(ctx context.Context, pipeline mongo.Pipeline, results interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := e.Books.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	return cursor.All(ctx, results)
}
