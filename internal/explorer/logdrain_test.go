package explorer_test

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"book-query-explorer/internal/explorer"
	"book-query-explorer/internal/utils"
)

func TestLogDrainer_Drain(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("nothing to export", func(mt *mtest.T) {
		d := explorer.LogDrainer{Coll: mt.Coll}

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "plp_bookstore.run_logs", mtest.FirstBatch))

		drained, err := d.Drain(context.Background())
		if err != nil {
			t.Fatalf("Drain() error = %v", err)
		}
		if drained != 0 {
			t.Errorf("drained = %d, want 0", drained)
		}
	})

	mt.Run("exports and marks records", func(mt *mtest.T) {
		d := explorer.LogDrainer{Coll: mt.Coll}

		first := mtest.CreateCursorResponse(1, "plp_bookstore.run_logs", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "timestamp", Value: primitive.NewDateTimeFromTime(time.Now())},
			{Key: "step", Value: "census"},
			{Key: "detail", Value: "12 books, 8 in stock"},
			{Key: "exported", Value: false},
		})
		killCursors := mtest.CreateCursorResponse(0, "plp_bookstore.run_logs", mtest.NextBatch)
		updateResponse := mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		)
		mt.AddMockResponses(first, killCursors, updateResponse)

		drained, err := d.Drain(context.Background())
		if err != nil {
			t.Fatalf("Drain() error = %v", err)
		}
		if drained != 1 {
			t.Errorf("drained = %d, want 1", drained)
		}
	})
}

func TestExplorer_RunLogSummary(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("counts records written since the run started", func(mt *mtest.T) {
		e := explorer.New(mt.Coll, utils.Logger{Collection: mt.Coll})

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "plp_bookstore.run_logs", mtest.FirstBatch,
			bson.D{{Key: "n", Value: 16}},
		))

		written, err := e.RunLogSummary(context.Background(), time.Now().Add(-time.Minute))
		if err != nil {
			t.Fatalf("RunLogSummary() error = %v", err)
		}
		if written != 16 {
			t.Errorf("written = %d, want 16", written)
		}
	})

	mt.Run("disabled run log reports zero", func(mt *mtest.T) {
		e := explorer.New(mt.Coll, utils.Logger{})

		written, err := e.RunLogSummary(context.Background(), time.Now())
		if err != nil {
			t.Fatalf("RunLogSummary() error = %v", err)
		}
		if written != 0 {
			t.Errorf("written = %d, want 0", written)
		}
	})
}
