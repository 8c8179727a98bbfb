package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus — статус заказа.
type OrderStatus string

const (
	OrderPending    OrderStatus = "Pending"
	OrderProcessing OrderStatus = "Processing"
	OrderShipped    OrderStatus = "Shipped"
	OrderDelivered  OrderStatus = "Delivered"
	OrderCancelled  OrderStatus = "Cancelled"
)

// Valid — допустимое ли значение статуса.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Address — адрес доставки.
type Address struct {
	FullName     string `json:"fullName"`
	PhoneNumber  string `json:"phoneNumber"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	ZipCode      string `json:"zipCode"`
}

// FullAddress — адрес одной строкой.
func (a *Address) FullAddress() string {
	var b strings.Builder
	b.WriteString(a.AddressLine1)
	if a.AddressLine2 != "" {
		b.WriteString(", ")
		b.WriteString(a.AddressLine2)
	}
	b.WriteString(", ")
	b.WriteString(a.City)
	b.WriteString(" ")
	b.WriteString(a.ZipCode)
	return b.String()
}

// OrderItem — замороженный снимок коммерческих полей строки корзины.
// Живой ссылки на товар нет: заказ остаётся валидным после изменения каталога.
type OrderItem struct {
	ProductID     string          `json:"productId"`
	ProductName   string          `json:"productName"`
	ProductImage  string          `json:"productImage"`
	Price         decimal.Decimal `json:"price"`
	SelectedSize  string          `json:"selectedSize"`
	SelectedColor string          `json:"selectedColor"`
	Quantity      int             `json:"quantity"`
}

// TotalPrice — price * quantity.
func (i *OrderItem) TotalPrice() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// SnapshotOf — снимок строки корзины для заказа.
func SnapshotOf(c *CartItem) OrderItem {
	return OrderItem{
		ProductID:     c.ProductID,
		ProductName:   c.ProductName,
		ProductImage:  c.ProductImage,
		Price:         c.Price,
		SelectedSize:  c.SelectedSize,
		SelectedColor: c.SelectedColor,
		Quantity:      c.Quantity,
	}
}

// Order — оформленный заказ.
type Order struct {
	ID                 string          `json:"id"`
	UserID             string          `json:"userId"`
	Items              []OrderItem     `json:"items"`
	ShippingAddress    Address         `json:"shippingAddress"`
	PaymentMethod      string          `json:"paymentMethod"`
	CardLastFourDigits string          `json:"cardLastFourDigits"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	ShippingCost       decimal.Decimal `json:"shippingCost"`
	Total              decimal.Decimal `json:"total"`
	OrderDate          time.Time       `json:"orderDate"`
	Status             OrderStatus     `json:"status"`
}

// OrderID — id заказа "{userId}_{unixMillis}".
func OrderID(userID string, at time.Time) string {
	return userID + "_" + strconv.FormatInt(at.UnixMilli(), 10)
}
