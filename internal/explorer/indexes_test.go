package explorer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"book-query-explorer/internal/explorer"
	"book-query-explorer/internal/utils"
)

func TestExplainFindCommand(t *testing.T) {
	t.Run("without hint", func(t *testing.T) {
		cmd := explorer.ExplainFindCommand("books", "1984", "")

		require.Equal(t, "explain", cmd[0].Key)
		find := cmd[0].Value.(bson.D)
		assert.Equal(t, "books", find[0].Value)
		filter := find[1].Value.(bson.D)
		assert.Equal(t, "title", filter[0].Key)
		assert.Equal(t, "1984", filter[0].Value)
		assert.Len(t, find, 2, "no hint field expected")

		assert.Equal(t, "verbosity", cmd[1].Key)
		assert.Equal(t, "executionStats", cmd[1].Value)
	})

	t.Run("with hint", func(t *testing.T) {
		cmd := explorer.ExplainFindCommand("books", "1984", "title_1")

		find := cmd[0].Value.(bson.D)
		require.Len(t, find, 3)
		assert.Equal(t, "hint", find[2].Key)
		assert.Equal(t, "title_1", find[2].Value)
	})
}

func TestExplorer_CreateIndexes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("single-field index gets default name", func(mt *mtest.T) {
		e := explorer.New(mt.Coll, utils.Logger{})

		mt.AddMockResponses(mtest.CreateSuccessResponse())

		name, err := e.CreateTitleIndex(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "title_1", name)
	})

	mt.Run("compound index gets default name", func(mt *mtest.T) {
		e := explorer.New(mt.Coll, utils.Logger{})

		mt.AddMockResponses(mtest.CreateSuccessResponse())

		name, err := e.CreateAuthorYearIndex(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "author_1_published_year_1", name)
	})
}

func TestExplorer_ListIndexes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("lists created indexes", func(mt *mtest.T) {
		e := explorer.New(mt.Coll, utils.Logger{})

		first := mtest.CreateCursorResponse(1, "plp_bookstore.books", mtest.FirstBatch,
			bson.D{{Key: "name", Value: "_id_"}, {Key: "key", Value: bson.D{{Key: "_id", Value: 1}}}},
		)
		second := mtest.CreateCursorResponse(1, "plp_bookstore.books", mtest.NextBatch,
			bson.D{{Key: "name", Value: "title_1"}, {Key: "key", Value: bson.D{{Key: "title", Value: 1}}}},
		)
		killCursors := mtest.CreateCursorResponse(0, "plp_bookstore.books", mtest.NextBatch)
		mt.AddMockResponses(first, second, killCursors)

		indexes, err := e.ListIndexes(context.Background())
		require.NoError(t, err)
		require.Len(t, indexes, 2)

		names := []string{indexes[0].Name, indexes[1].Name}
		assert.Contains(t, names, "_id_")
		assert.Contains(t, names, "title_1")
	})
}

func TestExplorer_ExplainTitleFind(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("reads execution stats", func(mt *mtest.T) {
		e := explorer.New(mt.Coll, utils.Logger{})

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{
			Key: "executionStats",
			Value: bson.D{
				{Key: "nReturned", Value: int64(1)},
				{Key: "executionTimeMillis", Value: int64(3)},
				{Key: "totalDocsExamined", Value: int64(12)},
			},
		}))

		stats, err := e.ExplainTitleFind(context.Background(), "1984", "")
		require.NoError(t, err)
		assert.Equal(t, int64(12), stats.TotalDocsExamined)
		assert.Equal(t, int64(3), stats.ExecutionTimeMillis)
		assert.Equal(t, int64(1), stats.NReturned)
	})
}
