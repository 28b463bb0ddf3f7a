// Package servicetest wires a complete auth service over a throwaway SQLite
// store for tests.
package servicetest

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/vibast-solutions/ms-go-authn/app/entity"
	"github.com/vibast-solutions/ms-go-authn/app/notifier"
	"github.com/vibast-solutions/ms-go-authn/app/password"
	"github.com/vibast-solutions/ms-go-authn/app/repository"
	"github.com/vibast-solutions/ms-go-authn/app/repository/repositorytest"
	"github.com/vibast-solutions/ms-go-authn/app/service"
	"github.com/vibast-solutions/ms-go-authn/config"
)

const (
	Secret     = "0123456789abcdef0123456789abcdef"
	Issuer     = "authn-test"
	AccessTTL  = 15 * time.Minute
	RefreshTTL = 24 * time.Hour
	VerifyTTL  = 24 * time.Hour
	ResetTTL   = time.Hour
)

// Base is the instant every Clock starts at.
var Base = time.Unix(1_700_000_000, 0).UTC()

type Clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Notifier records deliveries instead of sending them.
type Notifier struct {
	mu       sync.Mutex
	messages []notifier.Message
}

func (n *Notifier) Deliver(_ context.Context, msg notifier.Message) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, msg)
	return nil
}

func (n *Notifier) Count(purpose entity.Purpose) int {
	n.mu.Lock()
	defer n.mu.Unlock()

	total := 0
	for _, msg := range n.messages {
		if msg.Purpose == purpose {
			total++
		}
	}
	return total
}

// LastToken returns the token carried by the most recent link for purpose.
func (n *Notifier) LastToken(t testing.TB, purpose entity.Purpose) string {
	t.Helper()

	n.mu.Lock()
	var link string
	for i := len(n.messages) - 1; i >= 0; i-- {
		if n.messages[i].Purpose == purpose {
			link = n.messages[i].Link
			break
		}
	}
	n.mu.Unlock()

	if link == "" {
		t.Fatalf("no %s message delivered", purpose)
	}
	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("failed to parse link %q: %v", link, err)
	}
	return parsed.Query().Get("token")
}

type Stack struct {
	DB            *sql.DB
	Transactor    *repository.Transactor
	Clock         *Clock
	Accounts      *repository.AccountRepository
	RefreshTokens *repository.RefreshTokenRepository
	Tokens        *service.TokenService
	Verifications *service.VerificationManager
	Hasher        *password.Hasher
	Notifier      *Notifier
	Auth          *service.AuthService
}

// Hasher returns an argon2id hasher at the cheapest accepted parameters.
func Hasher(t testing.TB) *password.Hasher {
	t.Helper()

	hasher, err := password.NewHasher(password.Config{
		MemoryKB:    8 * 1024,
		Time:        1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   16,
	})
	if err != nil {
		t.Fatalf("failed to build hasher: %v", err)
	}
	return hasher
}

// New builds the stack with synchronous background tasks, a capturing
// notifier and a fake clock shared by every component.
func New(t testing.TB, opts ...service.AuthServiceOption) *Stack {
	t.Helper()

	db := repositorytest.NewSQLite(t)
	clock := &Clock{now: Base}

	accounts := repository.NewAccountRepository(db, repository.DialectSQLite)
	refreshTokens := repository.NewRefreshTokenRepository(db, repository.DialectSQLite)
	verificationTokens := repository.NewVerificationTokenRepository(db, repository.DialectSQLite)
	transactor := repository.NewTransactor(db, repository.DialectSQLite)

	tokens, err := service.NewTokenService(service.TokenConfig{
		Secret:     []byte(Secret),
		Issuer:     Issuer,
		AccessTTL:  AccessTTL,
		RefreshTTL: RefreshTTL,
	}, refreshTokens, transactor, service.WithClock(clock.Now))
	if err != nil {
		t.Fatalf("failed to build token service: %v", err)
	}

	verifications, err := service.NewVerificationManager(service.VerificationConfig{
		VerifyEmailTTL:   VerifyTTL,
		ResetPasswordTTL: ResetTTL,
	}, verificationTokens, service.WithClock(clock.Now))
	if err != nil {
		t.Fatalf("failed to build verification manager: %v", err)
	}

	hasher := Hasher(t)
	capture := &Notifier{}

	base := []service.AuthServiceOption{
		service.WithAsyncRunner(func(task func()) { task() }),
		service.WithNotifier(capture),
		service.WithLinks("https://authn.test/verify-email", "https://authn.test/reset-password"),
		service.WithServiceClock(clock.Now),
	}
	auth := service.NewAuthService(
		accounts,
		transactor,
		tokens,
		verifications,
		hasher,
		config.PasswordPolicy{MinLength: 6},
		append(base, opts...)...,
	)

	return &Stack{
		DB:            db,
		Transactor:    transactor,
		Clock:         clock,
		Accounts:      accounts,
		RefreshTokens: refreshTokens,
		Tokens:        tokens,
		Verifications: verifications,
		Hasher:        hasher,
		Notifier:      capture,
		Auth:          auth,
	}
}

// ActiveAccount signs up and verifies an account, returning its id.
func (s *Stack) ActiveAccount(t testing.TB, username, email, pass string) string {
	t.Helper()
	ctx := context.Background()

	res, err := s.Auth.SignUp(ctx, username, email, pass)
	if err != nil {
		t.Fatalf("sign-up failed: %v", err)
	}
	if err = s.Auth.VerifyEmail(ctx, s.Notifier.LastToken(t, entity.PurposeVerifyEmail)); err != nil {
		t.Fatalf("verify email failed: %v", err)
	}
	return res.AccountID
}

// FailWrites makes every op ("INSERT" or "UPDATE") on table fail until the
// returned func is called.
func (s *Stack) FailWrites(t testing.TB, op, table string) func() {
	t.Helper()

	name := "fail_" + strings.ToLower(op) + "_" + table
	stmt := fmt.Sprintf("CREATE TRIGGER %s BEFORE %s ON %s BEGIN SELECT RAISE(ABORT, 'write disabled'); END", name, op, table)
	if _, err := s.DB.Exec(stmt); err != nil {
		t.Fatalf("failed to install %s trigger: %v", name, err)
	}
	return func() {
		if _, err := s.DB.Exec("DROP TRIGGER IF EXISTS " + name); err != nil {
			t.Fatalf("failed to drop %s trigger: %v", name, err)
		}
	}
}
