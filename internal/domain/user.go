package domain

import (
	"strings"
	"time"
)

// DefaultUserName — имя, когда ни профиль, ни email его не дают.
const DefaultUserName = "User"

// Identity — то, что известно о пользователе из токена входа.
type Identity struct {
	UserID   string
	Email    string
	Name     string
	PhotoURL string
}

// User — документ профиля в коллекции Users, id документа — uid.
type User struct {
	UserID      string    `json:"userId"`
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	PhotoURL    string    `json:"photoUrl"`
	PhoneNumber string    `json:"phoneNumber"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewUser — профиль по данным токена.
func NewUser(id Identity, now time.Time) User {
	return User{
		UserID:    id.UserID,
		FullName:  strings.TrimSpace(id.Name),
		Email:     strings.TrimSpace(id.Email),
		PhotoURL:  id.PhotoURL,
		CreatedAt: now.UTC(),
	}
}

// DisplayName — fullName, иначе часть email до "@", иначе DefaultUserName.
func (u *User) DisplayName() string {
	if name := strings.TrimSpace(u.FullName); name != "" {
		return name
	}
	if local, _, ok := strings.Cut(u.Email, "@"); ok && local != "" {
		return local
	}
	return DefaultUserName
}
