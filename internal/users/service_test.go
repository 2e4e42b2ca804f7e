package users

import (
	"context"
	"testing"

	"github.com/MohamedSultan7/davinci-bakers/pkg/config"
	pkgerrors "github.com/MohamedSultan7/davinci-bakers/pkg/errors"
	"github.com/MohamedSultan7/davinci-bakers/pkg/logger"
	"github.com/google/uuid"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: config.AppEnvDev, Port: "8080"},
		JWT: config.JWTConfig{
			Secret:                 "unit-test-secret",
			Issuer:                 "davinci-bakers-test",
			ExpirationMinutes:      15,
			RefreshTokenTTLMinutes: 60,
		},
		Password: config.PasswordConfig{
			ArgonMemoryKB:    32768,
			ArgonTime:        1,
			ArgonParallelism: 1,
			ArgonSaltLen:     16,
			ArgonKeyLen:      32,
		},
		Otp: config.OtpConfig{DevCode: "123456"},
	}
}

func newTestService(t *testing.T) Service {
	t.Helper()
	cfg := testConfig()
	seed, err := SeedUsers(cfg.Password)
	if err != nil {
		t.Fatalf("seed users: %v", err)
	}
	logg := logger.New(logger.Options{Level: logger.ParseLevel("error")})
	return NewService(NewRepository(seed), cfg, logg)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	user, pair, err := svc.Register(ctx, RegisterInput{
		Email:        "kitchen@alderhotel.test",
		Password:     "a-long-enough-password",
		BusinessName: "The Alder Hotel",
		ContactName:  "Sam Okafor",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.IsEmailVerified {
		t.Fatal("new accounts must start unverified")
	}
	if pair == nil || pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected a full token pair, got %+v", pair)
	}

	got, pair, err := svc.Login(ctx, "Kitchen@AlderHotel.test", "a-long-enough-password")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("login returned wrong account: %s", got.ID)
	}
	if pair.AccessToken == "" {
		t.Fatal("login must mint a fresh token pair")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService(t)

	_, _, err := svc.Register(context.Background(), RegisterInput{
		Email:        DemoUserEmail,
		Password:     "whatever-password",
		BusinessName: "Copycat Cafe",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUserExists {
		t.Fatalf("expected USER_EXISTS, got %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Login(ctx, DemoUserEmail, "wrong-password")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeInvalidCredentials {
		t.Fatalf("expected INVALID_CREDENTIALS for wrong password, got %v", err)
	}

	_, _, err = svc.Login(ctx, "nobody@nowhere.test", DemoUserPassword)
	typed = pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeInvalidCredentials {
		t.Fatalf("expected INVALID_CREDENTIALS for unknown email, got %v", err)
	}
}

func TestOtpFlow(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	user, _, err := svc.Register(ctx, RegisterInput{
		Email:        "bar@riverside.test",
		Password:     "a-long-enough-password",
		BusinessName: "Riverside Bar",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.SendOtp(ctx, user.Email); err != nil {
		t.Fatalf("send otp: %v", err)
	}

	_, err = svc.VerifyOtp(ctx, user.Email, "000000")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeInvalidOtp {
		t.Fatalf("expected INVALID_OTP, got %v", err)
	}

	verified, err := svc.VerifyOtp(ctx, user.Email, "123456")
	if err != nil {
		t.Fatalf("verify otp: %v", err)
	}
	if !verified.IsEmailVerified {
		t.Fatal("expected account to be verified")
	}

	// Re-verifying stays verified and does not error.
	again, err := svc.VerifyOtp(ctx, user.Email, "123456")
	if err != nil {
		t.Fatalf("second verify: %v", err)
	}
	if !again.IsEmailVerified {
		t.Fatal("verification flag must be sticky")
	}
}

func TestSendOtpUnknownEmail(t *testing.T) {
	svc := newTestService(t)

	err := svc.SendOtp(context.Background(), "ghost@nowhere.test")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUserNotFound {
		t.Fatalf("expected USER_NOT_FOUND, got %v", err)
	}
}

func TestRefresh(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, pair, err := svc.Login(ctx, DemoUserEmail, DemoUserPassword)
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	fresh, err := svc.Refresh(ctx, pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if fresh.AccessToken == "" || fresh.RefreshToken == "" {
		t.Fatalf("expected a full token pair, got %+v", fresh)
	}

	_, err = svc.Refresh(ctx, "not-a-jwt")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeInvalidToken {
		t.Fatalf("expected INVALID_TOKEN, got %v", err)
	}
}

func TestGetUnknownUser(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Get(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUserNotFound {
		t.Fatalf("expected USER_NOT_FOUND, got %v", err)
	}
}
