package user

import (
	"time"

	"github.com/google/uuid"
)

const defaultDisplayName = "Coffee Lover"

type User struct {
	id        uuid.UUID
	name      string
	phone     Phone
	email     string
	role      Role
	createdAt time.Time
}

func NewUser(phone Phone, name string, role Role, now time.Time) *User {
	if name == "" {
		name = defaultDisplayName
	}
	if !role.IsValid() {
		role = RoleCustomer
	}

	return &User{
		id:        uuid.New(),
		name:      name,
		phone:     phone,
		role:      role,
		createdAt: now,
	}
}

func ReconstructUser(id uuid.UUID, name string, phone Phone, email string, role Role, createdAt time.Time) *User {
	return &User{
		id:        id,
		name:      name,
		phone:     phone,
		email:     email,
		role:      role,
		createdAt: createdAt,
	}
}

func (u *User) IsStaff() bool {
	return u.role == RoleStaff
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Phone() Phone         { return u.phone }
func (u *User) Email() string        { return u.email }
func (u *User) Role() Role           { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }
