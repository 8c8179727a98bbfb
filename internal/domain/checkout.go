package domain

// PaymentCreditCard — единственный поддерживаемый способ оплаты.
const PaymentCreditCard = "Credit Card"

// CheckoutRequest — данные оформления заказа от покупателя.
type CheckoutRequest struct {
	Address       Address `json:"address"`
	PaymentMethod string  `json:"paymentMethod"`
	CardNumber    string  `json:"cardNumber"`
}

// ProfileSummary — данные профиля и счётчики пользователя.
type ProfileSummary struct {
	UserID        string `json:"userId"`
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	PhotoURL      string `json:"photoUrl,omitempty"`
	OrderCount    int    `json:"orderCount"`
	CartItemCount int    `json:"cartItemCount"`
	WishlistCount int    `json:"wishlistCount"`
}
