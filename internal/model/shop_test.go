package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVertical_Valid(t *testing.T) {
	for _, v := range Verticals() {
		assert.True(t, v.Valid(), "vertical %s", v)
	}

	assert.False(t, Vertical("bakery").Valid())
	assert.False(t, Vertical("").Valid())
	assert.False(t, Vertical("Brewery").Valid(), "vertical labels are case-sensitive")
}

func TestStockStatus_Valid(t *testing.T) {
	assert.True(t, StockStatusIn.Valid())
	assert.True(t, StockStatusLow.Valid())
	assert.True(t, StockStatusOut.Valid())

	assert.False(t, StockStatus("plenty").Valid())
	assert.False(t, StockStatus("").Valid())
}

func TestShop_CategoryName(t *testing.T) {
	shop := Shop{
		ID: "SHOP1",
		Categories: []Category{
			{ID: "CAT1", Name: "IPA", ShopID: "SHOP1"},
			{ID: "CAT2", Name: "Blondes", ShopID: "SHOP1"},
		},
	}

	assert.Equal(t, "IPA", shop.CategoryName("CAT1"))
	assert.Equal(t, "Blondes", shop.CategoryName("CAT2"))
	assert.Equal(t, "", shop.CategoryName("CAT3"))
	assert.Equal(t, "", shop.CategoryName(""))
}
