package audit

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Action string

const (
	ActionCreate Action = "CREATE"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
)

type Change struct {
	Old any `bson:"old" json:"old"`
	New any `bson:"new" json:"new"`
}

// Log is one mutation of a report, schedule, template or sequence.
type Log struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Action    Action             `bson:"action" json:"action"`
	Module    string             `bson:"module" json:"module"`
	RecordID  string             `bson:"record_id" json:"record_id"`
	ActorID   string             `bson:"actor_id" json:"actor_id"`
	Changes   map[string]Change  `bson:"changes,omitempty" json:"changes,omitempty"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}

// Filter narrows ListLogs. Empty fields match everything.
type Filter struct {
	Module   string
	RecordID string
}
