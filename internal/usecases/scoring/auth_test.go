package scoring

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"
	"time"

	"github.com/Erebuz/3-api-validator/internal/domain"
	"github.com/stretchr/testify/assert"
)

func userToken(account, login, salt string) string {
	digest := sha512.Sum512([]byte(account + login + salt))
	return hex.EncodeToString(digest[:])
}

func adminToken(adminSalt string) string {
	digest := sha512.Sum512([]byte(time.Now().Format("2006010215") + adminSalt))
	return hex.EncodeToString(digest[:])
}

func TestCheckAuth_User(t *testing.T) {
	svc := newTestService(t, newFakeStore())

	req := &domain.MethodRequest{
		Account: "horns&hoofs",
		Login:   "h&f",
		Token:   userToken("horns&hoofs", "h&f", DefaultSalt),
	}
	assert.True(t, svc.CheckAuth(req))
}

func TestCheckAuth_UserBadToken(t *testing.T) {
	svc := newTestService(t, newFakeStore())

	req := &domain.MethodRequest{
		Account: "horns&hoofs",
		Login:   "h&f",
		Token:   "sdd",
	}
	assert.False(t, svc.CheckAuth(req))
}

func TestCheckAuth_MissingAccountFallsBackToEmpty(t *testing.T) {
	svc := newTestService(t, newFakeStore())

	req := &domain.MethodRequest{
		Login: "h&f",
		Token: userToken("", "h&f", DefaultSalt),
	}
	assert.True(t, svc.CheckAuth(req))
}

func TestCheckAuth_Admin(t *testing.T) {
	svc := newTestService(t, newFakeStore())

	req := &domain.MethodRequest{
		Login: domain.AdminLogin,
		Token: adminToken(DefaultAdminSalt),
	}
	assert.True(t, svc.CheckAuth(req))
}

func TestCheckAuth_AdminStaleToken(t *testing.T) {
	svc := newTestService(t, newFakeStore())

	// Токен от другого часового окна
	digest := sha512.Sum512([]byte(time.Now().Add(-2*time.Hour).Format("2006010215") + DefaultAdminSalt))

	req := &domain.MethodRequest{
		Login: domain.AdminLogin,
		Token: hex.EncodeToString(digest[:]),
	}
	assert.False(t, svc.CheckAuth(req))
}

func TestCheckAuth_InjectedSalts(t *testing.T) {
	svc := newTestService(t, newFakeStore())
	svc.Auth = &AuthConfig{Salt: "other", AdminSalt: "x"}

	req := &domain.MethodRequest{
		Account: "acc",
		Login:   "h&f",
		Token:   userToken("acc", "h&f", "other"),
	}
	assert.True(t, svc.CheckAuth(req))

	req.Token = userToken("acc", "h&f", DefaultSalt)
	assert.False(t, svc.CheckAuth(req))
}
