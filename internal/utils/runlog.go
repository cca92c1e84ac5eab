package utils

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"book-query-explorer/internal/models"
)

type Logger struct {
	Collection *mongo.Collection
}

// Log records one step outcome. Best-effort: callers ignore the error so a
// failed log write never fails the step it describes.
func (l *Logger) Log(ctx context.Context, step, detail string) error {
	if l.Collection == nil {
		return nil
	}
	entry := models.RunLog{
		Timestamp: time.Now(),
		Step:      step,
		Detail:    detail,
	}
	_, err := l.Collection.InsertOne(ctx, entry)
	return err
}
