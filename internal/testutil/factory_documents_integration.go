//go:build integration

package testutil

import (
	"fmt"
	"time"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/pkg/validate"
	"github.com/shopspring/decimal"
)

// UniqSuffix — уникальный суффикс для id в интеграционных тестах.
func UniqSuffix() string {
	return fmt.Sprintf("%d", time.Now().UnixNano())
}

// MakeProduct — валидный товар каталога с заданными id и категорией.
func MakeProduct(id, category string) domain.Product {
	return domain.Product{
		ID:       id,
		Name:     "Product " + id,
		Price:    decimal.RequireFromString("100.00"),
		Discount: 10,
		Brand:    "Acme",
		ImageURL: "https://example.com/" + id + ".png",
		Category: category,
		Sizes:    []string{"S", "M"},
		Colors:   []string{"Black"},
		Stock:    5,
		Gender:   "Unisex",
	}
}

// MakeProductDoc — документ товара в формате удалённого хранилища.
func MakeProductDoc(id, category string) domain.Document {
	p := MakeProduct(id, category)
	return validate.EncodeProduct(&p)
}

// MakeCartDoc — документ строки корзины пользователя.
func MakeCartDoc(id, userID, productID string, qty int) domain.Document {
	item := domain.CartItem{
		ID:          id,
		ProductID:   productID,
		ProductName: "Product " + productID,
		Price:       decimal.RequireFromString("50.00"),
		Quantity:    qty,
		UserID:      userID,
	}
	return validate.EncodeCartItem(&item)
}
