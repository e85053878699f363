package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"topup-admin/internal/model"
)

func seedProducts() []model.Product {
	return []model.Product{
		{ID: "1", GameID: "1", Name: "FF 100", Denomination: "100 Diamonds", Price: 15_000, Cost: 13_000, Profit: 2_000, IsActive: true},
		{ID: "2", GameID: "2", Name: "ML 86", Denomination: "86 Diamonds", Price: 20_000, Cost: 17_000, Profit: 3_000, IsActive: true},
		{ID: "7", GameID: "2", Name: "ML 172", Denomination: "172 Diamonds", Price: 38_000, Cost: 33_000, Profit: 5_000, IsActive: true},
	}
}

func TestStoreCreate(t *testing.T) {
	s := NewStore(seedProducts())

	p, err := s.Create(ProductInput{
		GameID:       "1",
		Name:         "FF 310",
		Denomination: "310 Diamonds",
		Price:        45_000,
		Cost:         40_000,
		IsActive:     true,
	})
	require.NoError(t, err)

	assert.Equal(t, "8", p.ID, "id continues after the highest numeric id")
	assert.Equal(t, int64(5_000), p.Profit, "profit derives from price and cost")

	got, ok := s.Get("8")
	require.True(t, ok)
	assert.Equal(t, p, got)
	assert.Len(t, s.List(), 4)
}

func TestStoreCreateValidation(t *testing.T) {
	valid := ProductInput{
		GameID:       "1",
		Name:         "FF 310",
		Denomination: "310 Diamonds",
		Price:        45_000,
		Cost:         40_000,
	}

	tests := []struct {
		name    string
		mutate  func(*ProductInput)
		wantErr error
	}{
		{"missing game", func(in *ProductInput) { in.GameID = "" }, ErrMissingGame},
		{"missing name", func(in *ProductInput) { in.Name = "" }, ErrMissingName},
		{"missing denomination", func(in *ProductInput) { in.Denomination = "" }, ErrMissingDenomination},
		{"zero price", func(in *ProductInput) { in.Price = 0 }, ErrInvalidPrice},
		{"negative price", func(in *ProductInput) { in.Price = -100 }, ErrInvalidPrice},
		{"zero cost", func(in *ProductInput) { in.Cost = 0 }, ErrInvalidCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(seedProducts())
			in := valid
			tt.mutate(&in)

			_, err := s.Create(in)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Len(t, s.List(), 3, "failed create must not change the store")
		})
	}
}

func TestStoreUpdate(t *testing.T) {
	price := int64(25_000)
	name := "FF 100 Promo"

	s := NewStore(seedProducts())
	p, ok, err := s.Update("1", ProductUpdate{Price: &price, Name: &name})
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, "FF 100 Promo", p.Name)
	assert.Equal(t, int64(25_000), p.Price)
	assert.Equal(t, int64(13_000), p.Cost, "untouched fields stay")
	assert.Equal(t, int64(12_000), p.Profit, "profit recomputed on price change")

	got, _ := s.Get("1")
	assert.Equal(t, p, got)
}

func TestStoreUpdateInvalid(t *testing.T) {
	zero := int64(0)

	s := NewStore(seedProducts())

	_, _, err := s.Update("1", ProductUpdate{Price: &zero})
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, _, err = s.Update("1", ProductUpdate{Cost: &zero})
	assert.ErrorIs(t, err, ErrInvalidCost)

	got, _ := s.Get("1")
	assert.Equal(t, int64(15_000), got.Price, "failed update must not change the product")

	_, ok, err := s.Update("999", ProductUpdate{Price: &zero})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreDelete(t *testing.T) {
	s := NewStore(seedProducts())

	assert.True(t, s.Delete("2"))
	_, ok := s.Get("2")
	assert.False(t, ok)
	assert.Len(t, s.List(), 2)

	assert.False(t, s.Delete("2"), "second delete reports missing")
}

func TestStoreCopies(t *testing.T) {
	seed := seedProducts()
	s := NewStore(seed)

	// Mutating the seed or a listed copy must not reach the store.
	seed[0].Price = 1
	list := s.List()
	list[0].Price = 2

	got, _ := s.Get("1")
	assert.Equal(t, int64(15_000), got.Price)
}
