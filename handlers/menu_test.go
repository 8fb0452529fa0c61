package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/abuabdullah23/bistro-boss-server-6b-74m/models"
)

func TestListMenuIsPublic(t *testing.T) {
	ts := newTestServer()
	ts.store.InsertMenuItem(context.Background(), models.MenuItem{Name: "Margherita", Category: "pizza", Price: 12.5})
	ts.store.InsertMenuItem(context.Background(), models.MenuItem{Name: "Caesar", Category: "salad", Price: 8})

	w := ts.do(t, http.MethodGet, "/menu", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var items []models.MenuItem
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("decoding menu: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("items = %d, want 2", len(items))
	}
}

func TestCreateMenuItemAsAdmin(t *testing.T) {
	ts := newTestServer()
	ts.seedUser(t, "boss@example.com", models.RoleAdmin)

	item := models.MenuItem{Name: "Margherita", Recipe: "tomato, mozzarella", Category: "pizza", Price: 12.5}
	w := ts.do(t, http.MethodPost, "/menu", item, tokenFor(t, "boss@example.com"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if body := decodeBody(t, w); body["insertedId"] == nil {
		t.Errorf("body = %v, want insertedId", body)
	}

	items, _ := ts.store.ListMenu(context.Background())
	if len(items) != 1 {
		t.Fatalf("stored items = %d, want 1", len(items))
	}
}

func TestUpdateMenuItemUpserts(t *testing.T) {
	ts := newTestServer()
	ts.seedUser(t, "boss@example.com", models.RoleAdmin)
	token := tokenFor(t, "boss@example.com")
	id := primitive.NewObjectID()

	body := gin.H{"name": "Margherita", "price": 12.5, "category": "pizza", "recipe": "tomato, mozzarella"}

	// No document with this id yet: the update must create one under it.
	w := ts.do(t, http.MethodPut, "/dashboard/update-menu/"+id.Hex(), body, token)
	if w.Code != http.StatusOK {
		t.Fatalf("upsert-insert: status = %d, body %s", w.Code, w.Body.String())
	}
	if res := decodeBody(t, w); res["upsertedId"] == nil {
		t.Errorf("upsert-insert: body = %v, want upsertedId", res)
	}
	item, err := ts.store.GetMenuItem(context.Background(), id)
	if err != nil || item == nil {
		t.Fatalf("item not created under given id: %v", err)
	}

	// Second update hits the existing document.
	body["price"] = 14.0
	w = ts.do(t, http.MethodPut, "/dashboard/update-menu/"+id.Hex(), body, token)
	if w.Code != http.StatusOK {
		t.Fatalf("upsert-update: status = %d", w.Code)
	}
	if res := decodeBody(t, w); res["matchedCount"] != float64(1) {
		t.Errorf("upsert-update: matchedCount = %v, want 1", res["matchedCount"])
	}
	item, _ = ts.store.GetMenuItem(context.Background(), id)
	if item.Price != 14.0 {
		t.Errorf("price after update = %v, want 14.0", item.Price)
	}
}

func TestGetMenuItemMissingReturnsNull(t *testing.T) {
	ts := newTestServer()

	w := ts.do(t, http.MethodGet, "/dashboard/update-menu/"+primitive.NewObjectID().Hex(), nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Body.String() != "null" {
		t.Errorf("body = %q, want null", w.Body.String())
	}
}

func TestMenuItemMalformedID(t *testing.T) {
	ts := newTestServer()
	ts.seedUser(t, "boss@example.com", models.RoleAdmin)
	token := tokenFor(t, "boss@example.com")

	w := ts.do(t, http.MethodGet, "/dashboard/update-menu/xyz", nil, "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("get: status = %d, want 400", w.Code)
	}
	w = ts.do(t, http.MethodDelete, "/menu/xyz", nil, token)
	if w.Code != http.StatusBadRequest {
		t.Errorf("delete: status = %d, want 400", w.Code)
	}
}

func TestDeleteMenuItem(t *testing.T) {
	ts := newTestServer()
	ts.seedUser(t, "boss@example.com", models.RoleAdmin)
	res, _ := ts.store.InsertMenuItem(context.Background(), models.MenuItem{Name: "Caesar", Category: "salad", Price: 8})
	id := res.InsertedID.(primitive.ObjectID)

	w := ts.do(t, http.MethodDelete, "/menu/"+id.Hex(), nil, tokenFor(t, "boss@example.com"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if body := decodeBody(t, w); body["deletedCount"] != float64(1) {
		t.Errorf("deletedCount = %v, want 1", body["deletedCount"])
	}
}
