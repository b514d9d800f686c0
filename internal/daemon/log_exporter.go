package daemon

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"loans-api/internal/models"
	"loans-api/internal/utils"
)

// LogExporter periodically flushes unexported audit entries.
type LogExporter struct {
	Coll     *mongo.Collection
	Interval time.Duration
}

func (l *LogExporter) Start() {
	interval := l.Interval
	if interval == 0 {
		interval = 30 * time.Second
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			l.flush(context.Background())
		}
	}()
}

func (l *LogExporter) flush(ctx context.Context) {
	cursor, err := l.Coll.Find(ctx, bson.M{"exported": false})
	if err != nil {
		return
	}

	var logs []models.AuditLog
	if err := cursor.All(ctx, &logs); err != nil || len(logs) == 0 {
		return
	}

	if err := utils.ExportData(logs); err != nil {
		return
	}

	ids := make([]primitive.ObjectID, 0, len(logs))
	for _, entry := range logs {
		ids = append(ids, entry.ID)
	}

	l.Coll.UpdateMany(ctx, bson.M{"_id": bson.M{"$in": ids}}, bson.M{"$set": bson.M{"exported": true}})
}
