package domain

import "github.com/shopspring/decimal"

// CartItem — строка корзины. Price фиксируется в момент добавления
// и не следует за текущей ценой товара.
type CartItem struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"productId"`
	ProductName   string          `json:"productName"`
	ProductImage  string          `json:"productImage"`
	Price         decimal.Decimal `json:"price"`
	SelectedSize  string          `json:"selectedSize"`
	SelectedColor string          `json:"selectedColor"`
	Quantity      int             `json:"quantity"`
	UserID        string          `json:"userId"`
}

// MergeKey — ключ логической строки корзины в пределах одного пользователя.
type MergeKey struct {
	ProductID     string
	SelectedSize  string
	SelectedColor string
}

// Key — ключ слияния для строки.
func (c *CartItem) Key() MergeKey {
	return MergeKey{ProductID: c.ProductID, SelectedSize: c.SelectedSize, SelectedColor: c.SelectedColor}
}

// TotalPrice — price * quantity.
func (c *CartItem) TotalPrice() decimal.Decimal {
	return c.Price.Mul(decimal.NewFromInt(int64(c.Quantity)))
}
