package memstore

import (
	"coasters/internal/domain/user"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// Users is the ephemeral account registry for the OTP demo flow. Accounts
// are created on first successful verification and do not expire while
// the process lives.
type Users struct {
	byID    *gocache.Cache
	byPhone *gocache.Cache
}

func NewUsers() *Users {
	return &Users{
		byID:    gocache.New(gocache.NoExpiration, 0),
		byPhone: gocache.New(gocache.NoExpiration, 0),
	}
}

func (u *Users) Save(usr *user.User) {
	u.byID.Set(usr.ID().String(), usr, gocache.NoExpiration)
	u.byPhone.Set(usr.Phone().Value(), usr, gocache.NoExpiration)
}

func (u *Users) FindByID(id uuid.UUID) (*user.User, bool) {
	if v, ok := u.byID.Get(id.String()); ok {
		return v.(*user.User), true
	}
	return nil, false
}

func (u *Users) FindByPhone(phone user.Phone) (*user.User, bool) {
	if v, ok := u.byPhone.Get(phone.Value()); ok {
		return v.(*user.User), true
	}
	return nil, false
}
