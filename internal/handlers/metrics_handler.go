package handlers

import (
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MetricsHandler struct {
	LoanCol *mongo.Collection
}

// GET /admin/metrics
func (h *MetricsHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	totalLoans, _ := h.LoanCol.CountDocuments(ctx, bson.M{})

	members, _ := h.LoanCol.Distinct(ctx, "memberName", bson.M{})

	json.NewEncoder(w).Encode(map[string]interface{}{
		"total_loans":       totalLoans,
		"borrowing_members": len(members),
	})
}
