package domain

import "github.com/shopspring/decimal"

// Коллекции удалённого хранилища документов.
const (
	CollectionProducts = "Products"
	CollectionCart     = "Cart"
	CollectionWishlist = "Wishlist"
	CollectionOrders   = "CompletedOrders"
	CollectionUsers    = "Users"
)

var hundred = decimal.NewFromInt(100)

// Product — товар каталога. После создания не изменяется:
// кэш меняет только набор товаров, но не сами значения.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Rating      float64         `json:"rating,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Discount    int             `json:"discount"` // процент скидки 0..100
	Brand       string          `json:"brand"`
	ImageURL    string          `json:"imageUrl"`
	Category    string          `json:"category"`
	Sizes       []string        `json:"sizes"`
	Colors      []string        `json:"colors"`
	Stock       int             `json:"stock"`
	Gender      string          `json:"gender"`
}

// PriceAfterDiscount — цена с учётом скидки.
func (p *Product) PriceAfterDiscount() decimal.Decimal {
	if p.Discount <= 0 {
		return p.Price
	}
	factor := hundred.Sub(decimal.NewFromInt(int64(p.Discount))).Div(hundred)
	return p.Price.Mul(factor)
}

// InStock — есть ли товар на складе.
func (p *Product) InStock() bool { return p.Stock > 0 }

// Clone — копия товара, не разделяющая срезы с оригиналом.
func (p *Product) Clone() Product {
	c := *p
	if p.Sizes != nil {
		c.Sizes = append([]string(nil), p.Sizes...)
	}
	if p.Colors != nil {
		c.Colors = append([]string(nil), p.Colors...)
	}
	return c
}
