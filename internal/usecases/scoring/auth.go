package scoring

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"time"

	"github.com/Erebuz/3-api-validator/internal/domain"
)

const (
	DefaultSalt      = "Otus"
	DefaultAdminSalt = "42"
)

// AuthConfig соли для проверки токена. Передаются явно,
// чтобы были подменяемыми в тестах.
type AuthConfig struct {
	Salt      string `envconfig:"SALT" default:"Otus"`
	AdminSalt string `envconfig:"ADMIN_SALT" default:"42"`
}

// CheckAuth сверяет токен запроса с ожидаемым.
//
// Для администратора ожидаемый токен зависит от текущего часа
// (YYYYMMDDHH + админская соль), то есть действует в пределах
// скользящего часового окна. Для остальных — от account+login+соль.
func (s *Service) CheckAuth(req *domain.MethodRequest) bool {
	var payload string
	if req.IsAdmin() {
		payload = time.Now().Format("2006010215") + s.Auth.AdminSalt
	} else {
		payload = req.AccountString() + req.LoginString() + s.Auth.Salt
	}

	digest := sha512.Sum512([]byte(payload))
	expected := hex.EncodeToString(digest[:])

	return subtle.ConstantTimeCompare([]byte(expected), []byte(req.TokenString())) == 1
}
