// Package catalog provides the mutable in-memory product store backing the
// product management screens. All reads return copies; historical
// transactions referencing a deleted product are never rewritten.
package catalog

import (
	"errors"
	"strconv"
	"sync"

	"topup-admin/internal/model"
)

// Validation errors returned by Create and Update.
var (
	ErrMissingGame         = errors.New("product game id is required")
	ErrMissingName         = errors.New("product name is required")
	ErrMissingDenomination = errors.New("product denomination is required")
	ErrInvalidPrice        = errors.New("product price must be positive")
	ErrInvalidCost         = errors.New("product cost must be positive")
)

// ProductInput holds the fields required to create a product.
type ProductInput struct {
	GameID       string
	Name         string
	Denomination string
	Price        int64
	Cost         int64
	IsActive     bool
}

// ProductUpdate patches an existing product. Nil fields are left unchanged.
type ProductUpdate struct {
	GameID       *string
	Name         *string
	Denomination *string
	Price        *int64
	Cost         *int64
	IsActive     *bool
}

// Store is an in-memory product list with CRUD semantics. It is safe for
// concurrent readers; mutations are expected to be serialized by the caller
// but are guarded anyway.
type Store struct {
	mu       sync.RWMutex
	products []model.Product
}

// NewStore seeds a store with the given products. The slice is copied.
func NewStore(seed []model.Product) *Store {
	s := &Store{products: make([]model.Product, len(seed))}
	copy(s.products, seed)
	return s
}

// List returns a copy of the current product list.
func (s *Store) List() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get returns the product with the given id, or false.
func (s *Store) Get(id string) (model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

// Create validates the input, assigns the next numeric id and computes
// profit. The store is left unchanged on validation failure.
func (s *Store) Create(in ProductInput) (model.Product, error) {
	if err := validate(in); err != nil {
		return model.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := model.Product{
		ID:           strconv.Itoa(s.maxIDLocked() + 1),
		GameID:       in.GameID,
		Name:         in.Name,
		Denomination: in.Denomination,
		Price:        in.Price,
		Cost:         in.Cost,
		Profit:       in.Price - in.Cost,
		IsActive:     in.IsActive,
	}
	s.products = append(s.products, p)
	return p, nil
}

// Update patches the product and recomputes profit when price or cost
// changed. Returns false if the id is unknown.
func (s *Store) Update(id string, upd ProductUpdate) (model.Product, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		p := s.products[i]
		if upd.GameID != nil {
			p.GameID = *upd.GameID
		}
		if upd.Name != nil {
			p.Name = *upd.Name
		}
		if upd.Denomination != nil {
			p.Denomination = *upd.Denomination
		}
		if upd.Price != nil {
			if *upd.Price <= 0 {
				return model.Product{}, false, ErrInvalidPrice
			}
			p.Price = *upd.Price
		}
		if upd.Cost != nil {
			if *upd.Cost <= 0 {
				return model.Product{}, false, ErrInvalidCost
			}
			p.Cost = *upd.Cost
		}
		if upd.Price != nil || upd.Cost != nil {
			p.Profit = p.Price - p.Cost
		}
		if upd.IsActive != nil {
			p.IsActive = *upd.IsActive
		}
		s.products[i] = p
		return p, true, nil
	}
	return model.Product{}, false, nil
}

// Delete removes the product by id. Historical transactions keep their
// reference; aggregation tolerates the dangling id.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return true
		}
	}
	return false
}

func validate(in ProductInput) error {
	switch {
	case in.GameID == "":
		return ErrMissingGame
	case in.Name == "":
		return ErrMissingName
	case in.Denomination == "":
		return ErrMissingDenomination
	case in.Price <= 0:
		return ErrInvalidPrice
	case in.Cost <= 0:
		return ErrInvalidCost
	}
	return nil
}

// maxIDLocked scans for the highest numeric id. Non-numeric ids are ignored.
func (s *Store) maxIDLocked() int {
	max := 0
	for _, p := range s.products {
		if n, err := strconv.Atoi(p.ID); err == nil && n > max {
			max = n
		}
	}
	return max
}
