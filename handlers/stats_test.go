package handlers

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"sort"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/abuabdullah23/bistro-boss-server-6b-74m/models"
	"github.com/abuabdullah23/bistro-boss-server-6b-74m/store"
)

func TestAdminStats(t *testing.T) {
	ts := newTestServer()
	ctx := context.Background()
	ts.seedUser(t, "boss@example.com", models.RoleAdmin)
	ts.seedUser(t, "diner@example.com", "")
	ts.store.InsertMenuItem(ctx, models.MenuItem{Name: "Margherita", Category: "pizza", Price: 12.5})
	ts.store.InsertPayment(ctx, models.Payment{Email: "diner@example.com", Price: 20.5})
	ts.store.InsertPayment(ctx, models.Payment{Email: "diner@example.com", Price: 9.5})

	w := ts.do(t, http.MethodGet, "/admin-stats", nil, tokenFor(t, "boss@example.com"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["users"] != float64(2) {
		t.Errorf("users = %v, want 2", body["users"])
	}
	if body["products"] != float64(1) {
		t.Errorf("products = %v, want 1", body["products"])
	}
	if body["orders"] != float64(2) {
		t.Errorf("orders = %v, want 2", body["orders"])
	}
	if revenue, _ := body["revenue"].(float64); math.Abs(revenue-30.0) > 1e-9 {
		t.Errorf("revenue = %v, want 30.0", body["revenue"])
	}
}

func TestOrderStatsGroupsByCategory(t *testing.T) {
	ts := newTestServer()
	ctx := context.Background()

	pizzaRes, _ := ts.store.InsertMenuItem(ctx, models.MenuItem{Name: "Margherita", Category: "pizza", Price: 12.5})
	saladRes, _ := ts.store.InsertMenuItem(ctx, models.MenuItem{Name: "Caesar", Category: "salad", Price: 8})
	// A dessert exists on the menu but nobody ordered it.
	ts.store.InsertMenuItem(ctx, models.MenuItem{Name: "Tiramisu", Category: "dessert", Price: 6})

	pizzaID := pizzaRes.InsertedID.(primitive.ObjectID)
	saladID := saladRes.InsertedID.(primitive.ObjectID)

	ts.store.InsertPayment(ctx, models.Payment{
		Email:     "diner@example.com",
		Price:     20.5,
		MenuItems: []primitive.ObjectID{pizzaID, saladID},
	})
	ts.store.InsertPayment(ctx, models.Payment{
		Email:     "other@example.com",
		Price:     12.5,
		MenuItems: []primitive.ObjectID{pizzaID},
	})

	w := ts.do(t, http.MethodGet, "/order-stats", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var stats []store.CategoryStat
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decoding stats: %v", err)
	}

	// Group order is unspecified; sort before comparing.
	sort.Slice(stats, func(i, j int) bool { return stats[i].Category < stats[j].Category })

	want := []store.CategoryStat{
		{Category: "pizza", Count: 2, TotalPrice: 25.0},
		{Category: "salad", Count: 1, TotalPrice: 8.0},
	}
	if len(stats) != len(want) {
		t.Fatalf("groups = %v, want %v", stats, want)
	}
	for i := range want {
		if stats[i].Category != want[i].Category || stats[i].Count != want[i].Count ||
			math.Abs(stats[i].TotalPrice-want[i].TotalPrice) > 1e-9 {
			t.Errorf("group %d = %+v, want %+v", i, stats[i], want[i])
		}
	}
}

// orderStatsFailingStore injects an aggregation failure.
type orderStatsFailingStore struct {
	store.Store
}

func (orderStatsFailingStore) OrderStats(ctx context.Context) ([]store.CategoryStat, error) {
	return nil, context.DeadlineExceeded
}

func TestOrderStatsAggregationFailure(t *testing.T) {
	ts := newTestServerWithStore(orderStatsFailingStore{store.NewMemoryStore()})

	w := ts.do(t, http.MethodGet, "/order-stats", nil, "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if body := decodeBody(t, w); body["message"] == nil {
		t.Errorf("body = %v, want generic message", body)
	}
}
