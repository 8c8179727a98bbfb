package validate

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrMalformedDocument — документ нельзя привести к сущности; такие документы пропускаются.
var ErrMalformedDocument = errors.New("malformed document")

func malformed(doc domain.Document, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrMalformedDocument, doc.ID, fmt.Sprintf(format, args...))
}

// ---- Product ----

type productDoc struct {
	Name        string          `mapstructure:"name"`
	Description string          `mapstructure:"description"`
	Rating      float64         `mapstructure:"rating"`
	Price       decimal.Decimal `mapstructure:"price"`
	Discount    int             `mapstructure:"discount"`
	Brand       string          `mapstructure:"brand"`
	ImageURL    string          `mapstructure:"imageUrl"`
	Category    string          `mapstructure:"category"`
	Size        []string        `mapstructure:"size"`
	Sizes       []string        `mapstructure:"sizes"`
	Colors      []string        `mapstructure:"colors"`
	Stock       int             `mapstructure:"stock"`
	Gender      string          `mapstructure:"gender"`
}

// DecodeProduct — товар из документа. Id документа авторитетен.
func DecodeProduct(doc domain.Document) (domain.Product, error) {
	if doc.ID == "" {
		return domain.Product{}, malformed(doc, "empty document id")
	}
	var raw productDoc
	if err := decodeInto(doc.Data, &raw); err != nil {
		return domain.Product{}, malformed(doc, "decode: %v", err)
	}
	if strings.TrimSpace(raw.Name) == "" {
		return domain.Product{}, malformed(doc, "name is required")
	}
	if raw.Price.IsNegative() {
		return domain.Product{}, malformed(doc, "negative price %s", raw.Price)
	}
	if raw.Discount < 0 || raw.Discount > 100 {
		return domain.Product{}, malformed(doc, "discount %d out of [0,100]", raw.Discount)
	}
	if raw.Stock < 0 {
		return domain.Product{}, malformed(doc, "negative stock %d", raw.Stock)
	}

	sizes := raw.Size
	if len(sizes) == 0 {
		sizes = raw.Sizes
	}
	return domain.Product{
		ID:          doc.ID,
		Name:        raw.Name,
		Description: raw.Description,
		Rating:      raw.Rating,
		Price:       raw.Price,
		Discount:    raw.Discount,
		Brand:       raw.Brand,
		ImageURL:    raw.ImageURL,
		Category:    raw.Category,
		Sizes:       orderedSet(sizes),
		Colors:      orderedSet(raw.Colors),
		Stock:       raw.Stock,
		Gender:      raw.Gender,
	}, nil
}

// EncodeProduct — документ товара (цены хранятся числом с плавающей точкой, как в исходной базе).
func EncodeProduct(p *domain.Product) domain.Document {
	return domain.Document{ID: p.ID, Data: map[string]any{
		"name":        p.Name,
		"description": p.Description,
		"rating":      p.Rating,
		"price":       p.Price.InexactFloat64(),
		"discount":    p.Discount,
		"brand":       p.Brand,
		"imageUrl":    p.ImageURL,
		"category":    p.Category,
		"size":        stringsOrEmpty(p.Sizes),
		"colors":      stringsOrEmpty(p.Colors),
		"stock":       p.Stock,
		"gender":      p.Gender,
	}}
}

// ---- CartItem ----

type cartItemDoc struct {
	ProductID     string          `mapstructure:"productId"`
	ProductName   string          `mapstructure:"productName"`
	ProductImage  string          `mapstructure:"productImage"`
	Price         decimal.Decimal `mapstructure:"price"`
	SelectedSize  string          `mapstructure:"selectedSize"`
	SelectedColor string          `mapstructure:"selectedColor"`
	Quantity      int             `mapstructure:"quantity"`
	UserID        string          `mapstructure:"userId"`
}

// DecodeCartItem — строка корзины из документа.
func DecodeCartItem(doc domain.Document) (domain.CartItem, error) {
	if doc.ID == "" {
		return domain.CartItem{}, malformed(doc, "empty document id")
	}
	var raw cartItemDoc
	if err := decodeInto(doc.Data, &raw); err != nil {
		return domain.CartItem{}, malformed(doc, "decode: %v", err)
	}
	if raw.ProductID == "" {
		return domain.CartItem{}, malformed(doc, "productId is required")
	}
	if raw.UserID == "" {
		return domain.CartItem{}, malformed(doc, "userId is required")
	}
	if raw.Quantity < 1 {
		return domain.CartItem{}, malformed(doc, "quantity %d < 1", raw.Quantity)
	}
	if raw.Price.IsNegative() {
		return domain.CartItem{}, malformed(doc, "negative price %s", raw.Price)
	}
	return domain.CartItem{
		ID:            doc.ID,
		ProductID:     raw.ProductID,
		ProductName:   raw.ProductName,
		ProductImage:  raw.ProductImage,
		Price:         raw.Price,
		SelectedSize:  raw.SelectedSize,
		SelectedColor: raw.SelectedColor,
		Quantity:      raw.Quantity,
		UserID:        raw.UserID,
	}, nil
}

// EncodeCartItem — документ строки корзины.
func EncodeCartItem(c *domain.CartItem) domain.Document {
	return domain.Document{ID: c.ID, Data: map[string]any{
		"id":            c.ID,
		"productId":     c.ProductID,
		"productName":   c.ProductName,
		"productImage":  c.ProductImage,
		"price":         c.Price.InexactFloat64(),
		"selectedSize":  c.SelectedSize,
		"selectedColor": c.SelectedColor,
		"quantity":      c.Quantity,
		"userId":        c.UserID,
	}}
}

// ---- WishlistItem ----

type wishlistItemDoc struct {
	ProductID string    `mapstructure:"productId"`
	UserID    string    `mapstructure:"userId"`
	AddedAt   time.Time `mapstructure:"addedAt"`
}

// DecodeWishlistItem — членство в избранном из документа.
func DecodeWishlistItem(doc domain.Document) (domain.WishlistItem, error) {
	var raw wishlistItemDoc
	if err := decodeInto(doc.Data, &raw); err != nil {
		return domain.WishlistItem{}, malformed(doc, "decode: %v", err)
	}
	if raw.ProductID == "" {
		return domain.WishlistItem{}, malformed(doc, "productId is required")
	}
	id := doc.ID
	if id == "" {
		id = domain.WishlistItemID(raw.UserID, raw.ProductID)
	}
	return domain.WishlistItem{
		ID:        id,
		ProductID: raw.ProductID,
		UserID:    raw.UserID,
		AddedAt:   raw.AddedAt,
	}, nil
}

// EncodeWishlistItem — документ избранного; addedAt в unix millis.
func EncodeWishlistItem(w *domain.WishlistItem) domain.Document {
	return domain.Document{ID: w.ID, Data: map[string]any{
		"id":        w.ID,
		"productId": w.ProductID,
		"userId":    w.UserID,
		"addedAt":   w.AddedAt.UnixMilli(),
	}}
}

// ---- User ----

type userDoc struct {
	FullName    string    `mapstructure:"fullName"`
	Name        string    `mapstructure:"name"`
	Username    string    `mapstructure:"username"`
	Email       string    `mapstructure:"email"`
	PhotoURL    string    `mapstructure:"photoUrl"`
	PhoneNumber string    `mapstructure:"phoneNumber"`
	CreatedAt   time.Time `mapstructure:"createdAt"`
}

// DecodeUser — профиль из документа Users. Имя берётся из fullName,
// затем из name и username (старые документы).
func DecodeUser(doc domain.Document) (domain.User, error) {
	if doc.ID == "" {
		return domain.User{}, malformed(doc, "empty document id")
	}
	var raw userDoc
	if err := decodeInto(doc.Data, &raw); err != nil {
		return domain.User{}, malformed(doc, "decode: %v", err)
	}
	name := raw.FullName
	for _, alt := range []string{raw.Name, raw.Username} {
		if strings.TrimSpace(name) != "" {
			break
		}
		name = alt
	}
	return domain.User{
		UserID:      doc.ID,
		FullName:    strings.TrimSpace(name),
		Email:       raw.Email,
		PhotoURL:    raw.PhotoURL,
		PhoneNumber: raw.PhoneNumber,
		CreatedAt:   raw.CreatedAt,
	}, nil
}

// EncodeUser — документ профиля; createdAt в unix millis.
func EncodeUser(u *domain.User) domain.Document {
	return domain.Document{ID: u.UserID, Data: map[string]any{
		"userId":      u.UserID,
		"fullName":    u.FullName,
		"email":       u.Email,
		"photoUrl":    u.PhotoURL,
		"phoneNumber": u.PhoneNumber,
		"createdAt":   u.CreatedAt.UnixMilli(),
	}}
}

// ---- Order ----

type orderItemDoc struct {
	ProductID     string          `mapstructure:"productId"`
	ProductName   string          `mapstructure:"productName"`
	ProductImage  string          `mapstructure:"productImage"`
	Price         decimal.Decimal `mapstructure:"price"`
	SelectedSize  string          `mapstructure:"selectedSize"`
	SelectedColor string          `mapstructure:"selectedColor"`
	Quantity      int             `mapstructure:"quantity"`
}

type orderDoc struct {
	UserID             string          `mapstructure:"userId"`
	Items              []orderItemDoc  `mapstructure:"items"`
	ShippingAddress    domain.Address  `mapstructure:"shippingAddress"`
	PaymentMethod      string          `mapstructure:"paymentMethod"`
	CardLastFourDigits string          `mapstructure:"cardLastFourDigits"`
	Subtotal           decimal.Decimal `mapstructure:"subtotal"`
	ShippingCost       decimal.Decimal `mapstructure:"shippingCost"`
	Total              decimal.Decimal `mapstructure:"total"`
	OrderDate          time.Time       `mapstructure:"orderDate"`
	Status             string          `mapstructure:"status"`
}

// DecodeOrder — заказ из документа.
func DecodeOrder(doc domain.Document) (domain.Order, error) {
	if doc.ID == "" {
		return domain.Order{}, malformed(doc, "empty document id")
	}
	var raw orderDoc
	if err := decodeInto(doc.Data, &raw); err != nil {
		return domain.Order{}, malformed(doc, "decode: %v", err)
	}
	if raw.UserID == "" {
		return domain.Order{}, malformed(doc, "userId is required")
	}
	status := domain.OrderStatus(raw.Status)
	if status == "" {
		status = domain.OrderPending
	}
	if !status.Valid() {
		return domain.Order{}, malformed(doc, "unknown status %q", raw.Status)
	}

	items := make([]domain.OrderItem, 0, len(raw.Items))
	for i, it := range raw.Items {
		if it.Quantity < 1 {
			return domain.Order{}, malformed(doc, "items[%d]: quantity %d < 1", i, it.Quantity)
		}
		items = append(items, domain.OrderItem(it))
	}

	return domain.Order{
		ID:                 doc.ID,
		UserID:             raw.UserID,
		Items:              items,
		ShippingAddress:    raw.ShippingAddress,
		PaymentMethod:      raw.PaymentMethod,
		CardLastFourDigits: raw.CardLastFourDigits,
		Subtotal:           raw.Subtotal,
		ShippingCost:       raw.ShippingCost,
		Total:              raw.Total,
		OrderDate:          raw.OrderDate,
		Status:             status,
	}, nil
}

// EncodeOrder — документ заказа; orderDate в unix millis.
func EncodeOrder(o *domain.Order) domain.Document {
	items := make([]any, 0, len(o.Items))
	for i := range o.Items {
		it := &o.Items[i]
		items = append(items, map[string]any{
			"productId":     it.ProductID,
			"productName":   it.ProductName,
			"productImage":  it.ProductImage,
			"price":         it.Price.InexactFloat64(),
			"selectedSize":  it.SelectedSize,
			"selectedColor": it.SelectedColor,
			"quantity":      it.Quantity,
		})
	}
	addr := o.ShippingAddress
	return domain.Document{ID: o.ID, Data: map[string]any{
		"id":     o.ID,
		"userId": o.UserID,
		"items":  items,
		"shippingAddress": map[string]any{
			"fullName":     addr.FullName,
			"phoneNumber":  addr.PhoneNumber,
			"addressLine1": addr.AddressLine1,
			"addressLine2": addr.AddressLine2,
			"city":         addr.City,
			"zipCode":      addr.ZipCode,
		},
		"paymentMethod":      o.PaymentMethod,
		"cardLastFourDigits": o.CardLastFourDigits,
		"subtotal":           o.Subtotal.InexactFloat64(),
		"shippingCost":       o.ShippingCost.InexactFloat64(),
		"total":              o.Total.InexactFloat64(),
		"orderDate":          o.OrderDate.UnixMilli(),
		"status":             string(o.Status),
	}}
}

// orderedSet — уникальные непустые значения в исходном порядке.
func orderedSet(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func stringsOrEmpty(in []string) []any {
	out := make([]any, 0, len(in))
	for _, s := range in {
		out = append(out, s)
	}
	return out
}
