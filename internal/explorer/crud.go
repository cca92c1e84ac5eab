package explorer

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"book-query-explorer/internal/models"
)

// Census counts all documents and the in-stock subset.
func (e *Explorer) Census(ctx context.Context) (total, inStock int64, err error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	total, err = e.Books.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, 0, err
	}

	inStock, err = e.Books.CountDocuments(ctx, bson.M{"in_stock": true})
	if err != nil {
		return 0, 0, err
	}
	return total, inStock, nil
}

func (e *Explorer) FindByGenre(ctx context.Context, genre string) ([]models.Book, error) {
	return e.findBooks(ctx, bson.M{"genre": genre})
}

func (e *Explorer) FindByAuthor(ctx context.Context, author string) ([]models.Book, error) {
	return e.findBooks(ctx, bson.M{"author": author})
}

// FindPublishedAfter returns books with published_year strictly greater
// than year.
func (e *Explorer) FindPublishedAfter(ctx context.Context, year int) ([]models.Book, error) {
	return e.findBooks(ctx, bson.M{"published_year": bson.M{"$gt": year}})
}

// FindInStockPublishedAfter combines the boolean and range filters into one
// compound query.
func (e *Explorer) FindInStockPublishedAfter(ctx context.Context, year int) ([]models.Book, error) {
	return e.findBooks(ctx, bson.M{
		"in_stock":       true,
		"published_year": bson.M{"$gt": year},
	})
}

// UpdatePrice sets the price of the book with the exact title and reports
// the driver's modified count.
func (e *Explorer) UpdatePrice(ctx context.Context, title string, price float64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	result, err := e.Books.UpdateOne(
		ctx,
		bson.M{"title": title},
		bson.M{"$set": bson.M{"price": price}},
	)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

// DeleteByTitle removes the book with the exact title and reports the
// driver's deleted count.
func (e *Explorer) DeleteByTitle(ctx context.Context, title string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	result, err := e.Books.DeleteOne(ctx, bson.M{"title": title})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (e *Explorer) findBooks(ctx context.Context, filter bson.M) ([]models.Book, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := e.Books.Find(ctx, filter)
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
