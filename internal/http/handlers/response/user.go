package response

import (
	"accountd/internal/core/domain/user"
	"time"
)

type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) FromDomainUser(du user.User) {
	u.ID = int64(du.ID)
	u.Email = string(du.Email)
	u.Name = du.Name
	u.CreatedAt = du.CreatedAt
}

func UsersFromDomain(domainUsers []user.User) []User {
	users := make([]User, len(domainUsers))
	for ix, du := range domainUsers {
		users[ix].FromDomainUser(du)
	}
	return users
}
