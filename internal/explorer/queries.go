package explorer

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"book-query-explorer/internal/models"
)

// SummaryProjection includes title, author and price and excludes _id.
func SummaryProjection() bson.M {
	return bson.M{"title": 1, "author": 1, "price": 1, "_id": 0}
}

// PriceSortOptions sorts by price and caps the result. ascending false
// reverses the order.
func PriceSortOptions(ascending bool, limit int64) *options.FindOptions {
	direction := 1
	if !ascending {
		direction = -1
	}
	return options.Find().
		SetSort(bson.D{{Key: "price", Value: direction}}).
		SetLimit(limit)
}

// PageOptions builds skip/limit pagination over a stable title sort. Pages
// are 1-based.
func PageOptions(page, pageSize int64) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "title", Value: 1}}).
		SetSkip((page - 1) * pageSize).
		SetLimit(pageSize)
}

func (e *Explorer) FindSummaries(ctx context.Context) ([]models.BookSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := e.Books.Find(ctx, bson.M{}, options.Find().SetProjection(SummaryProjection()))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var summaries []models.BookSummary
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (e *Explorer) FindSortedByPrice(ctx context.Context, ascending bool, limit int64) ([]models.Book, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := e.Books.Find(ctx, bson.M{}, PriceSortOptions(ascending, limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var books []models.Book
	if err := cursor.All(ctx, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (e *Explorer) FindPage(ctx context.Context, page, pageSize int64) ([]models.Book, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := e.Books.Find(ctx, bson.M{}, PageOptions(page, pageSize))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var books []models.Book
	if err := cursor.All(ctx, &books); err != nil {
		return nil, err
	}
	return books, nil
}
