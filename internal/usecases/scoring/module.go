package scoring

import (
	"log/slog"

	"github.com/Erebuz/3-api-validator/internal/ports/store"
)

// Service обрабатывает API-методы: аутентификация, валидация аргументов,
// скоринг и выдача интересов.
type Service struct {
	Store store.Store
	Auth  *AuthConfig
	Log   *slog.Logger
}

func New(st store.Store, auth *AuthConfig, log *slog.Logger) *Service {
	if auth == nil {
		auth = &AuthConfig{Salt: DefaultSalt, AdminSalt: DefaultAdminSalt}
	}
	return &Service{
		Store: st,
		Auth:  auth,
		Log:   log,
	}
}
