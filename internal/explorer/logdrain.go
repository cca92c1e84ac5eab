package explorer

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"book-query-explorer/internal/models"
	"book-query-explorer/internal/utils"
)

// RunLogSummary counts the step records written since the run started.
// Zero when run logging is disabled.
func (e *Explorer) RunLogSummary(ctx context.Context, since time.Time) (int64, error) {
	if e.RunLog.Collection == nil {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	return e.RunLog.Collection.CountDocuments(ctx, bson.M{
		"timestamp": bson.M{"$gte": since},
	})
}

type LogDrainer struct {
	Coll *mongo.Collection
}

// Drain prints every unexported run-log record and marks it exported.
// Returns the number of records drained.
func (d *LogDrainer) Drain(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := d.Coll.Find(ctx, bson.M{"exported": false})
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var logs []models.RunLog
	if err := cursor.All(ctx, &logs); err != nil {
		return 0, err
	}
	if len(logs) == 0 {
		return 0, nil
	}

	if err := utils.ExportRunLogs(logs); err != nil {
		return 0, err
	}

	ids := make([]primitive.ObjectID, 0, len(logs))
	for _, entry := range logs {
		ids = append(ids, entry.ID)
	}

	_, err = d.Coll.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		bson.M{"$set": bson.M{"exported": true}},
	)
	if err != nil {
		return 0, err
	}
	return len(logs), nil
}
