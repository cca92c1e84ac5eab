package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RunLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
	Step      string             `bson:"step" json:"step"`
	Detail    string             `bson:"detail" json:"detail"`
	Exported  bool               `bson:"exported" json:"exported"`
}
