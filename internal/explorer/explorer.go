// Package explorer runs a fixed sequence of reads, writes, aggregations and
// index operations against the books collection and prints each outcome.
// All query planning and aggregation happens server-side; this package only
// transcribes parameters and reports results.
package explorer

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"book-query-explorer/internal/models"
	"book-query-explorer/internal/utils"
)

const opTimeout = 5 * time.Second

const (
	fictionGenre    = "Fiction"
	orwell          = "George Orwell"
	rangeYear       = 2000
	compoundYear    = 2010
	updateTitle     = "1984"
	updatedPrice    = 12.50
	deleteTitle     = "Moby Dick"
	topAuthorsLimit = 3
	pageSize        = 5
	sortedReadLimit = 5
)

type Explorer struct {
	Books  *mongo.Collection
	RunLog utils.Logger
}

func New(books *mongo.Collection, runLog utils.Logger) *Explorer {
	return &Explorer{Books: books, RunLog: runLog}
}

// Run executes every step in order. The first failing step aborts the
// remainder; writes already committed stay committed.
func (e *Explorer) Run(ctx context.Context) error {
	steps := []struct {
		name string
		fn   func(context.Context) (string, error)
	}{
		{"census", e.stepCensus},
		{"find by genre", e.stepFindByGenre},
		{"find published after", e.stepFindPublishedAfter},
		{"find by author", e.stepFindByAuthor},
		{"update price", e.stepUpdatePrice},
		{"delete by title", e.stepDeleteByTitle},
		{"in-stock recent", e.stepInStockRecent},
		{"projection", e.stepProjection},
		{"sort by price", e.stepSortByPrice},
		{"pagination", e.stepPagination},
		{"avg price by genre", e.stepGenreStats},
		{"top authors", e.stepTopAuthors},
		{"books by decade", e.stepDecades},
		{"create indexes", e.stepCreateIndexes},
		{"explain", e.stepExplain},
		{"list indexes", e.stepListIndexes},
	}

	start := time.Now()
	for _, step := range steps {
		detail, err := step.fn(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
		_ = e.RunLog.Log(ctx, step.name, detail)
	}

	written, err := e.RunLogSummary(ctx, start)
	if err != nil {
		return fmt.Errorf("run log summary: %w", err)
	}
	fmt.Printf("== Run log: %d step records written\n", written)

	fmt.Println("\nAll steps completed.")
	return nil
}

func (e *Explorer) stepCensus(ctx context.Context) (string, error) {
	total, inStock, err := e.Census(ctx)
	if err != nil {
		return "", err
	}
	fmt.Printf("== Census: %d books, %d in stock\n", total, inStock)
	return fmt.Sprintf("%d books, %d in stock", total, inStock), nil
}

func (e *Explorer) stepFindByGenre(ctx context.Context) (string, error) {
	books, err := e.FindByGenre(ctx, fictionGenre)
	if err != nil {
		return "", err
	}
	printBooks(fmt.Sprintf("Books in genre %q", fictionGenre), books)
	return fmt.Sprintf("%d books in genre %s", len(books), fictionGenre), nil
}

func (e *Explorer) stepFindPublishedAfter(ctx context.Context) (string, error) {
	books, err := e.FindPublishedAfter(ctx, rangeYear)
	if err != nil {
		return "", err
	}
	printBooks(fmt.Sprintf("Books published after %d", rangeYear), books)
	return fmt.Sprintf("%d books published after %d", len(books), rangeYear), nil
}

func (e *Explorer) stepFindByAuthor(ctx context.Context) (string, error) {
	books, err := e.FindByAuthor(ctx, orwell)
	if err != nil {
		return "", err
	}
	printBooks(fmt.Sprintf("Books by %s", orwell), books)
	return fmt.Sprintf("%d books by %s", len(books), orwell), nil
}

func (e *Explorer) stepUpdatePrice(ctx context.Context) (string, error) {
	modified, err := e.UpdatePrice(ctx, updateTitle, updatedPrice)
	if err != nil {
		return "", err
	}
	fmt.Printf("== Updated price of %q to %.2f (modified count: %d)\n", updateTitle, updatedPrice, modified)
	return fmt.Sprintf("modified count %d", modified), nil
}

func (e *Explorer) stepDeleteByTitle(ctx context.Context) (string, error) {
	deleted, err := e.DeleteByTitle(ctx, deleteTitle)
	if err != nil {
		return "", err
	}
	fmt.Printf("== Deleted %q (deleted count: %d)\n", deleteTitle, deleted)
	return fmt.Sprintf("deleted count %d", deleted), nil
}

func (e *Explorer) stepInStockRecent(ctx context.Context) (string, error) {
	books, err := e.FindInStockPublishedAfter(ctx, compoundYear)
	if err != nil {
		return "", err
	}
	printBooks(fmt.Sprintf("In-stock books published after %d", compoundYear), books)
	return fmt.Sprintf("%d in-stock books published after %d", len(books), compoundYear), nil
}

func (e *Explorer) stepProjection(ctx context.Context) (string, error) {
	summaries, err := e.FindSummaries(ctx)
	if err != nil {
		return "", err
	}
	fmt.Println("== Title/author/price projection")
	for _, s := range summaries {
		fmt.Printf("   %-28s %-22s %6.2f\n", s.Title, s.Author, s.Price)
	}
	return fmt.Sprintf("%d projected documents", len(summaries)), nil
}

func (e *Explorer) stepSortByPrice(ctx context.Context) (string, error) {
	cheapest, err := e.FindSortedByPrice(ctx, true, sortedReadLimit)
	if err != nil {
		return "", err
	}
	printBooks("Cheapest books", cheapest)

	priciest, err := e.FindSortedByPrice(ctx, false, sortedReadLimit)
	if err != nil {
		return "", err
	}
	printBooks("Most expensive books", priciest)
	return fmt.Sprintf("sorted reads returned %d + %d books", len(cheapest), len(priciest)), nil
}

func (e *Explorer) stepPagination(ctx context.Context) (string, error) {
	var fetched int
	for page := int64(1); page <= 2; page++ {
		books, err := e.FindPage(ctx, page, pageSize)
		if err != nil {
			return "", err
		}
		printBooks(fmt.Sprintf("Page %d (size %d, sorted by title)", page, pageSize), books)
		fetched += len(books)
	}
	return fmt.Sprintf("fetched %d books over 2 pages", fetched), nil
}

func (e *Explorer) stepGenreStats(ctx context.Context) (string, error) {
	stats, err := e.GenreStats(ctx)
	if err != nil {
		return "", err
	}
	fmt.Println("== Average price by genre")
	for _, s := range stats {
		fmt.Printf("   %-18s avg %6.2f over %d books\n", s.Genre, s.AvgPrice, s.Count)
	}
	return fmt.Sprintf("%d genres", len(stats)), nil
}

func (e *Explorer) stepTopAuthors(ctx context.Context) (string, error) {
	authors, err := e.TopAuthors(ctx, topAuthorsLimit)
	if err != nil {
		return "", err
	}
	fmt.Printf("== Top %d authors by book count\n", topAuthorsLimit)
	for _, a := range authors {
		fmt.Printf("   %-22s %d\n", a.Author, a.Books)
	}
	return fmt.Sprintf("top %d of authors listed", len(authors)), nil
}

func (e *Explorer) stepDecades(ctx context.Context) (string, error) {
	decades, err := e.BooksByDecade(ctx)
	if err != nil {
		return "", err
	}
	fmt.Println("== Books by decade")
	for _, d := range decades {
		fmt.Printf("   %ds: %d %v\n", d.Decade, d.Count, d.Titles)
	}
	return fmt.Sprintf("%d decades", len(decades)), nil
}

func (e *Explorer) stepCreateIndexes(ctx context.Context) (string, error) {
	titleIdx, err := e.CreateTitleIndex(ctx)
	if err != nil {
		return "", err
	}
	fmt.Printf("== Created index %s\n", titleIdx)

	compoundIdx, err := e.CreateAuthorYearIndex(ctx)
	if err != nil {
		return "", err
	}
	fmt.Printf("== Created index %s\n", compoundIdx)
	return fmt.Sprintf("created %s, %s", titleIdx, compoundIdx), nil
}

func (e *Explorer) stepExplain(ctx context.Context) (string, error) {
	plain, err := e.ExplainTitleFind(ctx, updateTitle, "")
	if err != nil {
		return "", err
	}
	fmt.Printf("== Explain find title=%q: examined %d docs in %dms\n",
		updateTitle, plain.TotalDocsExamined, plain.ExecutionTimeMillis)

	hinted, err := e.ExplainTitleFind(ctx, updateTitle, titleIndexName)
	if err != nil {
		return "", err
	}
	fmt.Printf("== Explain with hint %s: examined %d docs in %dms\n",
		titleIndexName, hinted.TotalDocsExamined, hinted.ExecutionTimeMillis)
	return fmt.Sprintf("examined %d unhinted, %d hinted", plain.TotalDocsExamined, hinted.TotalDocsExamined), nil
}

func (e *Explorer) stepListIndexes(ctx context.Context) (string, error) {
	indexes, err := e.ListIndexes(ctx)
	if err != nil {
		return "", err
	}
	fmt.Println("== Indexes")
	for _, idx := range indexes {
		fmt.Printf("   %-28s %v\n", idx.Name, idx.Keys)
	}
	return fmt.Sprintf("%d indexes", len(indexes)), nil
}

func printBooks(header string, books []models.Book) {
	fmt.Printf("== %s (%d)\n", header, len(books))
	for _, b := range books {
		fmt.Printf("   %-28s %-22s %d  %6.2f  in_stock=%t\n",
			b.Title, b.Author, b.PublishedYear, b.Price, b.InStock)
	}
}
