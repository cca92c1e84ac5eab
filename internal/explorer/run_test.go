package explorer

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// The range step must query published_year strictly greater than 2000.
func TestStepFindPublishedAfter_Threshold(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("issues the 2000 threshold", func(mt *mtest.T) {
		e := &Explorer{Books: mt.Coll}

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "plp_bookstore.books", mtest.FirstBatch))

		if _, err := e.stepFindPublishedAfter(context.Background()); err != nil {
			t.Fatalf("stepFindPublishedAfter() error = %v", err)
		}

		evt := mt.GetStartedEvent()
		if evt == nil {
			t.Fatal("no command started event captured")
		}
		if evt.CommandName != "find" {
			t.Fatalf("command = %q, want find", evt.CommandName)
		}

		threshold, err := evt.Command.LookupErr("filter", "published_year", "$gt")
		if err != nil {
			t.Fatalf("filter missing published_year $gt: %v", err)
		}
		if got := threshold.AsInt64(); got != 2000 {
			t.Errorf("published_year threshold = %d, want 2000", got)
		}
	})
}
