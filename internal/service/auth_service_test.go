package service

import (
	"context"
	"testing"
	"time"

	"zhanyixia/config"
	"zhanyixia/internal/auth"
	"zhanyixia/internal/domain"
	"zhanyixia/internal/models"

	"gorm.io/gorm"
)

// fakeUserStore is an in-memory UserStore.
type fakeUserStore struct {
	users  []*models.UserProfile
	nextID uint
}

func (f *fakeUserStore) Create(_ context.Context, u *models.UserProfile) error {
	f.nextID++
	u.ID = f.nextID
	f.users = append(f.users, u)
	return nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id uint) (*models.UserProfile, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.UserProfile, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserStore) Update(_ context.Context, u *models.UserProfile) error {
	for i, existing := range f.users {
		if existing.ID == u.ID {
			f.users[i] = u
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeUserStore) Count(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func testAuthConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			AccessSecret:  "svc-test-secret",
			RefreshSecret: "svc-test-refresh",
			AccessExpiry:  time.Minute,
			RefreshExpiry: time.Hour,
			Issuer:        "zhanyixia-test",
		},
	}
}

func testAuthService() (*AuthService, *fakeUserStore) {
	store := &fakeUserStore{}
	return NewAuthService(testAuthConfig(), store), store
}

func TestRegister_FirstAccountIsAdmin(t *testing.T) {
	svc, _ := testAuthService()
	ctx := context.Background()

	first, access, refresh, err := svc.Register(ctx, "boss@club.cn", "password123", "老板")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if first.Role != domain.RoleAdmin {
		t.Errorf("first role = %q, want admin", first.Role)
	}
	if access == "" || refresh == "" {
		t.Error("tokens missing")
	}

	second, _, _, err := svc.Register(ctx, "staff@club.cn", "password123", "员工")
	if err != nil {
		t.Fatalf("register second: %v", err)
	}
	if second.Role != domain.RoleOther {
		t.Errorf("second role = %q, want other", second.Role)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := testAuthService()
	ctx := context.Background()
	if _, _, _, err := svc.Register(ctx, "a@b.cn", "password123", ""); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, _, _, err := svc.Register(ctx, "a@b.cn", "password456", ""); err != ErrEmailExists {
		t.Errorf("err = %v, want ErrEmailExists", err)
	}
}

func TestLogin(t *testing.T) {
	svc, _ := testAuthService()
	ctx := context.Background()
	if _, _, _, err := svc.Register(ctx, "a@b.cn", "password123", ""); err != nil {
		t.Fatalf("register: %v", err)
	}

	u, access, _, err := svc.Login(ctx, "a@b.cn", "password123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if u.Email != "a@b.cn" || access == "" {
		t.Errorf("login result user=%v token=%q", u, access)
	}

	if _, _, _, err := svc.Login(ctx, "a@b.cn", "wrong-password"); err != ErrInvalidCreds {
		t.Errorf("wrong password err = %v, want ErrInvalidCreds", err)
	}
	if _, _, _, err := svc.Login(ctx, "nobody@b.cn", "password123"); err != ErrInvalidCreds {
		t.Errorf("unknown email err = %v, want ErrInvalidCreds", err)
	}
}

func TestChangePassword(t *testing.T) {
	svc, _ := testAuthService()
	ctx := context.Background()
	u, _, _, err := svc.Register(ctx, "a@b.cn", "password123", "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.ChangePassword(ctx, u.ID, "wrong", "newpassword1"); err != ErrInvalidCreds {
		t.Errorf("err = %v, want ErrInvalidCreds", err)
	}
	if err := svc.ChangePassword(ctx, u.ID, "password123", "newpassword1"); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if _, _, _, err := svc.Login(ctx, "a@b.cn", "newpassword1"); err != nil {
		t.Errorf("login with new password: %v", err)
	}
	if _, _, _, err := svc.Login(ctx, "a@b.cn", "password123"); err != ErrInvalidCreds {
		t.Errorf("old password still accepted: %v", err)
	}
}

// Login must hand back signed, parseable tokens; a signing problem is an
// error, never a 200 with empty strings.
func TestLogin_TokensVerify(t *testing.T) {
	svc, _ := testAuthService()
	ctx := context.Background()
	u, _, _, err := svc.Register(ctx, "a@b.cn", "password123", "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	_, access, refresh, err := svc.Login(ctx, "a@b.cn", "password123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	jwtCfg := &testAuthConfig().JWT
	claims, err := auth.ParseAccessToken(jwtCfg, access)
	if err != nil {
		t.Fatalf("access token does not verify: %v", err)
	}
	if claims.UserID != u.ID || claims.Email != u.Email {
		t.Errorf("claims = %+v, want id %d email %s", claims, u.ID, u.Email)
	}
	id, err := auth.ParseRefreshToken(jwtCfg, refresh)
	if err != nil {
		t.Fatalf("refresh token does not verify: %v", err)
	}
	if id != u.ID {
		t.Errorf("refresh subject = %d, want %d", id, u.ID)
	}
}

func TestRefreshToken(t *testing.T) {
	svc, _ := testAuthService()
	ctx := context.Background()
	_, _, refresh, err := svc.Register(ctx, "a@b.cn", "password123", "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	access2, refresh2, err := svc.RefreshToken(ctx, refresh)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if access2 == "" || refresh2 == "" {
		t.Error("refreshed tokens missing")
	}
	if _, _, err := svc.RefreshToken(ctx, "garbage"); err == nil {
		t.Error("garbage refresh token accepted")
	}
}
