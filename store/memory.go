package store

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/abuabdullah23/bistro-boss-server-6b-74m/models"
)

// MemoryStore is a map-backed Store with the same observable semantics as
// MongoStore, including the order-statistics aggregation. Used in tests and
// handy for running the server without a database.
type MemoryStore struct {
	mu       sync.RWMutex
	users    map[primitive.ObjectID]models.User
	menu     map[primitive.ObjectID]models.MenuItem
	reviews  map[primitive.ObjectID]models.Review
	carts    map[primitive.ObjectID]models.CartItem
	payments map[primitive.ObjectID]models.Payment
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[primitive.ObjectID]models.User),
		menu:     make(map[primitive.ObjectID]models.MenuItem),
		reviews:  make(map[primitive.ObjectID]models.Review),
		carts:    make(map[primitive.ObjectID]models.CartItem),
		payments: make(map[primitive.ObjectID]models.Payment),
	}
}

func (s *MemoryStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) InsertUser(ctx context.Context, user models.User) (*InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	s.users[user.ID] = user
	return &InsertResult{InsertedID: user.ID}, nil
}

func (s *MemoryStore) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := []models.User{}
	for _, user := range s.users {
		users = append(users, user)
	}
	return users, nil
}

func (s *MemoryStore) DeleteUser(ctx context.Context, id primitive.ObjectID) (*DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return &DeleteResult{}, nil
	}
	delete(s.users, id)
	return &DeleteResult{DeletedCount: 1}, nil
}

func (s *MemoryStore) PromoteUser(ctx context.Context, id primitive.ObjectID) (*UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return &UpdateResult{}, nil
	}
	res := &UpdateResult{MatchedCount: 1}
	if user.Role != models.RoleAdmin {
		user.Role = models.RoleAdmin
		s.users[id] = user
		res.ModifiedCount = 1
	}
	return res, nil
}

func (s *MemoryStore) ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := []models.MenuItem{}
	for _, item := range s.menu {
		items = append(items, item)
	}
	return items, nil
}

func (s *MemoryStore) GetMenuItem(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.menu[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (s *MemoryStore) InsertMenuItem(ctx context.Context, item models.MenuItem) (*InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	s.menu[item.ID] = item
	return &InsertResult{InsertedID: item.ID}, nil
}

func (s *MemoryStore) UpsertMenuItem(ctx context.Context, id primitive.ObjectID, item models.MenuItem) (*UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.menu[id]
	if !ok {
		item.ID = id
		s.menu[id] = item
		return &UpdateResult{UpsertedID: id}, nil
	}
	existing.Name = item.Name
	existing.Price = item.Price
	existing.Category = item.Category
	existing.Recipe = item.Recipe
	s.menu[id] = existing
	return &UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (s *MemoryStore) DeleteMenuItem(ctx context.Context, id primitive.ObjectID) (*DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.menu[id]; !ok {
		return &DeleteResult{}, nil
	}
	delete(s.menu, id)
	return &DeleteResult{DeletedCount: 1}, nil
}

func (s *MemoryStore) ListReviews(ctx context.Context) ([]models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	reviews := []models.Review{}
	for _, review := range s.reviews {
		reviews = append(reviews, review)
	}
	return reviews, nil
}

// InsertReview seeds review fixtures; the HTTP surface is read-only for
// reviews, so this is not part of the Store interface.
func (s *MemoryStore) InsertReview(review models.Review) primitive.ObjectID {
	s.mu.Lock()
	defer s.mu.Unlock()
	if review.ID.IsZero() {
		review.ID = primitive.NewObjectID()
	}
	s.reviews[review.ID] = review
	return review.ID
}

func (s *MemoryStore) ListCartItems(ctx context.Context, email string) ([]models.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := []models.CartItem{}
	for _, item := range s.carts {
		if item.Email == email {
			items = append(items, item)
		}
	}
	return items, nil
}

func (s *MemoryStore) InsertCartItem(ctx context.Context, item models.CartItem) (*InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	s.carts[item.ID] = item
	return &InsertResult{InsertedID: item.ID}, nil
}

func (s *MemoryStore) DeleteCartItem(ctx context.Context, id primitive.ObjectID) (*DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.carts[id]; !ok {
		return &DeleteResult{}, nil
	}
	delete(s.carts, id)
	return &DeleteResult{DeletedCount: 1}, nil
}

func (s *MemoryStore) DeleteCartItems(ctx context.Context, ids []primitive.ObjectID) (*DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	deleted := int64(0)
	for _, id := range ids {
		if _, ok := s.carts[id]; ok {
			delete(s.carts, id)
			deleted++
		}
	}
	return &DeleteResult{DeletedCount: deleted}, nil
}

func (s *MemoryStore) InsertPayment(ctx context.Context, payment models.Payment) (*InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	s.payments[payment.ID] = payment
	return &InsertResult{InsertedID: payment.ID}, nil
}

func (s *MemoryStore) ListPayments(ctx context.Context) ([]models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	payments := []models.Payment{}
	for _, payment := range s.payments {
		payments = append(payments, payment)
	}
	return payments, nil
}

func (s *MemoryStore) CountUsers(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.users)), nil
}

func (s *MemoryStore) CountMenuItems(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.menu)), nil
}

func (s *MemoryStore) CountPayments(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.payments)), nil
}

func (s *MemoryStore) OrderStats(ctx context.Context) ([]CategoryStat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	groups := make(map[string]*CategoryStat)
	for _, payment := range s.payments {
		for _, itemID := range payment.MenuItems {
			item, ok := s.menu[itemID]
			if !ok {
				continue
			}
			group, ok := groups[item.Category]
			if !ok {
				group = &CategoryStat{Category: item.Category}
				groups[item.Category] = group
			}
			group.Count++
			group.TotalPrice += item.Price
		}
	}
	stats := []CategoryStat{}
	for _, group := range groups {
		stats = append(stats, *group)
	}
	return stats, nil
}
