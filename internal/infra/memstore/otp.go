package memstore

import (
	"time"

	"coasters/internal/pkg/config"

	gocache "github.com/patrickmn/go-cache"
)

// OTPStore keeps bcrypt hashes of pending one-time codes keyed by phone
// number until they expire or are consumed.
type OTPStore struct {
	ttl   time.Duration
	codes *gocache.Cache
}

func NewOTPStore(cfg config.AuthConfig) *OTPStore {
	return &OTPStore{
		ttl:   cfg.OTPTTL,
		codes: gocache.New(cfg.OTPTTL, time.Minute),
	}
}

func (o *OTPStore) Put(phone, hash string) {
	o.codes.Set(phone, hash, o.ttl)
}

func (o *OTPStore) Get(phone string) (string, bool) {
	if v, ok := o.codes.Get(phone); ok {
		return v.(string), true
	}
	return "", false
}

func (o *OTPStore) Delete(phone string) {
	o.codes.Delete(phone)
}
