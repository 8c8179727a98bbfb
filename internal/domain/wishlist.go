package domain

import "time"

// WishlistItem — членство товара в избранном пользователя.
type WishlistItem struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	UserID    string    `json:"userId"`
	AddedAt   time.Time `json:"addedAt"`
}

// WishlistItemID — детерминированный id документа "{userId}_{productId}":
// повторное добавление перезаписывает тот же документ.
func WishlistItemID(userID, productID string) string {
	return userID + "_" + productID
}
