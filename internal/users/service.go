package users

import (
	"context"
	"strings"
	"time"

	"github.com/MohamedSultan7/davinci-bakers/pkg/auth"
	"github.com/MohamedSultan7/davinci-bakers/pkg/config"
	"github.com/MohamedSultan7/davinci-bakers/pkg/enums"
	pkgerrors "github.com/MohamedSultan7/davinci-bakers/pkg/errors"
	"github.com/MohamedSultan7/davinci-bakers/pkg/logger"
	"github.com/MohamedSultan7/davinci-bakers/pkg/security"
	"github.com/google/uuid"
)

// Service is the account and session store.
type Service interface {
	Register(ctx context.Context, input RegisterInput) (*User, *auth.TokenPair, error)
	Login(ctx context.Context, email, password string) (*User, *auth.TokenPair, error)
	SendOtp(ctx context.Context, email string) error
	VerifyOtp(ctx context.Context, email, code string) (*User, error)
	Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error)
	Get(ctx context.Context, id uuid.UUID) (*User, error)
}

type service struct {
	repo *Repository
	cfg  *config.Config
	logg *logger.Logger
	now  func() time.Time
}

func NewService(repo *Repository, cfg *config.Config, logg *logger.Logger) Service {
	if repo == nil {
		panic("users: repo is required")
	}
	if cfg == nil {
		panic("users: config is required")
	}
	if logg == nil {
		panic("users: logger is required")
	}
	return &service{
		repo: repo,
		cfg:  cfg,
		logg: logg,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) Register(ctx context.Context, input RegisterInput) (*User, *auth.TokenPair, error) {
	hash, err := security.HashPassword(input.Password, s.cfg.Password)
	if err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hashing password")
	}

	user := User{
		ID:           uuid.New(),
		Email:        normalizeEmail(input.Email),
		PasswordHash: hash,
		BusinessName: strings.TrimSpace(input.BusinessName),
		ContactName:  strings.TrimSpace(input.ContactName),
		Phone:        strings.TrimSpace(input.Phone),
		Role:         enums.UserRoleUser,
		CreatedAt:    s.now(),
	}
	if err := s.repo.Insert(ctx, user); err != nil {
		return nil, nil, err
	}

	pair, err := s.mintPair(user)
	if err != nil {
		return nil, nil, err
	}

	s.logg.Info(s.logg.WithUserID(ctx, user.ID.String()), "account registered")
	return &user, pair, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*User, *auth.TokenPair, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		// Same rejection whether the account or the password is wrong.
		return nil, nil, pkgerrors.New(pkgerrors.CodeInvalidCredentials, "invalid email or password")
	}

	ok, err := security.VerifyPassword(password, user.PasswordHash)
	if err != nil || !ok {
		return nil, nil, pkgerrors.New(pkgerrors.CodeInvalidCredentials, "invalid email or password")
	}

	pair, err := s.mintPair(*user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// SendOtp pretends to deliver a verification code. Outside production the
// accepted code is fixed and logged so the storefront can be driven end to
// end without a mail provider.
func (s *service) SendOtp(ctx context.Context, email string) error {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	ctx = s.logg.WithUserID(ctx, user.ID.String())
	if !s.cfg.App.IsProd() {
		ctx = s.logg.WithField(ctx, "otp_code", s.cfg.Otp.DevCode)
	}
	s.logg.Info(ctx, "verification code issued")
	return nil
}

func (s *service) VerifyOtp(ctx context.Context, email, code string) (*User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if code == "" || code != s.cfg.Otp.DevCode {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidOtp, "verification code is incorrect")
	}
	if !user.IsEmailVerified {
		user.IsEmailVerified = true
		if err := s.repo.Update(ctx, *user); err != nil {
			return nil, err
		}
	}
	return user, nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	claims, err := auth.ParseAccessToken(s.cfg.JWT, refreshToken)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInvalidToken, err, "refresh token rejected")
	}

	user, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidToken, "refresh token references an unknown account")
	}
	return s.mintPair(*user)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) mintPair(user User) (*auth.TokenPair, error) {
	pair, err := auth.MintTokenPair(s.cfg.JWT, s.now(), auth.AccessTokenPayload{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "minting tokens")
	}
	return &pair, nil
}
