package commands

import (
	"context"
	"log/slog"
	"time"

	"coasters/internal/domain/user"
	reqdto "coasters/internal/handler/dto/request"
	"coasters/internal/pkg/clock"
	"coasters/internal/pkg/config"
	"coasters/internal/pkg/errs"
	"coasters/internal/pkg/jwt"
	"coasters/internal/pkg/otp"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

var (
	ErrInvalidPhone    = errs.New("invalid phone number")
	ErrInvalidOTP      = errs.New("invalid otp code")
	ErrOTPExpired      = errs.New("otp expired or not requested")
	ErrOTPIssueFailed  = errs.New("failed to issue otp")
	ErrUserNotFound    = errs.New("user not found")
	ErrTokenGeneration = errs.New("token generation failed")
	ErrTokenValidation = errs.New("token validation failed")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type RequestOTPResult struct {
	Phone     string
	ExpiresIn time.Duration
}

type VerifyOTPResult struct {
	UserID    uuid.UUID
	Name      string
	Role      user.Role
	TokenPair *TokenPair
	IsNewUser bool
}

type AuthCommands interface {
	RequestOTP(ctx context.Context, req reqdto.RequestOTPRequest) (*RequestOTPResult, error)
	VerifyOTP(ctx context.Context, req reqdto.VerifyOTPRequest) (*VerifyOTPResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	users      UserStore
	otps       OTPStore
	jwtService *jwt.Service
	cfg        config.AuthConfig
	clock      clock.Clock
}

func NewAuthCommands(users UserStore, otps OTPStore, jwtService *jwt.Service, cfg config.AuthConfig, clock clock.Clock) AuthCommands {
	return &authCommandsImpl{
		users:      users,
		otps:       otps,
		jwtService: jwtService,
		cfg:        cfg,
		clock:      clock,
	}
}

// RequestOTP issues a one-time code for the phone number. The SMS leg is
// simulated: the code is written to the application log and a bcrypt hash
// is held until it expires or is consumed.
func (a *authCommandsImpl) RequestOTP(_ context.Context, req reqdto.RequestOTPRequest) (*RequestOTPResult, error) {
	phone, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPhone)
	}

	code, err := otp.GenerateCode()
	if err != nil {
		return nil, errs.Mark(err, ErrOTPIssueFailed)
	}

	hash, err := otp.HashCode(code)
	if err != nil {
		return nil, errs.Mark(err, ErrOTPIssueFailed)
	}

	a.otps.Put(phone.Value(), hash)
	slog.Info("otp issued", "phone", phone.Value(), "code", code)

	return &RequestOTPResult{
		Phone:     phone.Value(),
		ExpiresIn: a.cfg.OTPTTL,
	}, nil
}

// VerifyOTP checks the code and signs the caller in, creating an account
// on first verification. With AllowAnyOTP set (the demo default) any well
// formed code passes.
func (a *authCommandsImpl) VerifyOTP(_ context.Context, req reqdto.VerifyOTPRequest) (*VerifyOTPResult, error) {
	phone, code, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidOTP)
	}

	if !a.cfg.AllowAnyOTP {
		hash, ok := a.otps.Get(phone.Value())
		if !ok {
			return nil, ErrOTPExpired
		}
		if err := otp.CompareCode(hash, code.Value()); err != nil {
			return nil, errs.Mark(err, ErrInvalidOTP)
		}
	}
	a.otps.Delete(phone.Value())

	usr, isNew := a.findOrCreateUser(phone, req.DisplayName())

	tokenPair, err := a.generateTokenPair(usr.ID(), usr.Role())
	if err != nil {
		return nil, err
	}

	return &VerifyOTPResult{
		UserID:    usr.ID(),
		Name:      usr.Name(),
		Role:      usr.Role(),
		TokenPair: tokenPair,
		IsNewUser: isNew,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(_ context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if _, ok := a.users.FindByID(claims.UserID); !ok {
		return nil, ErrUserNotFound
	}

	return a.generateTokenPair(claims.UserID, role)
}

func (a *authCommandsImpl) findOrCreateUser(phone user.Phone, name string) (*user.User, bool) {
	if usr, ok := a.users.FindByPhone(phone); ok {
		return usr, false
	}

	role := user.RoleCustomer
	if lo.Contains(a.cfg.StaffPhones, phone.Value()) {
		role = user.RoleStaff
	}

	usr := user.NewUser(phone, name, role, a.clock.Now())
	a.users.Save(usr)
	return usr, true
}

func (a *authCommandsImpl) generateTokenPair(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
