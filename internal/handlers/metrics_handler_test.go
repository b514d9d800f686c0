package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"loans-api/internal/handlers"
)

func TestMetricsHandler_GetMetrics(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	if mt.Client != nil {
		defer mt.Client.Disconnect(context.Background())
	}

	mt.Run("reports loan totals and borrowing members", func(mt *mtest.T) {
		handler := handlers.MetricsHandler{LoanCol: mt.Coll}

		router := mux.NewRouter()
		router.HandleFunc("/admin/metrics", handler.GetMetrics).Methods("GET")

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "test.loans", mtest.FirstBatch, bson.D{
				{Key: "n", Value: int32(3)},
			}),
			mtest.CreateSuccessResponse(bson.E{Key: "values", Value: bson.A{"Alice", "Carol"}}),
		)

		req := httptest.NewRequest(http.MethodGet, "/admin/metrics", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		res := w.Result()
		defer res.Body.Close()

		if res.StatusCode != http.StatusOK {
			t.Fatalf("expected status OK, got %v", res.Status)
		}

		var body map[string]float64
		if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if body["total_loans"] != 3 {
			t.Errorf("total_loans = %v, want 3", body["total_loans"])
		}
		if body["borrowing_members"] != 2 {
			t.Errorf("borrowing_members = %v, want 2", body["borrowing_members"])
		}
	})
}
