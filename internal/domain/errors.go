package domain

import "errors"

var (
	// ErrUnauthenticated — операция требует пользователя, а его нет.
	ErrUnauthenticated = errors.New("user is not authenticated")
	// ErrNotFound — цель операции отсутствует.
	ErrNotFound = errors.New("not found")
	// ErrEmptyCart — оформление заказа из пустой корзины.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidInput — некорректные входные данные вызывающего.
	ErrInvalidInput = errors.New("invalid input")
)
