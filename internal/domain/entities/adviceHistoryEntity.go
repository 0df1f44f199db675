package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdviceHistory is one logged query/response interaction, owned by exactly one user.
type AdviceHistory struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID    string             `json:"userId" bson:"user_id"`
	Query     string             `json:"query" bson:"query"`
	Response  string             `json:"response" bson:"response"`
	QueriedAt time.Time          `json:"queriedAt" bson:"queried_at"`
}
