package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Erebuz/3-api-validator/internal/domain"
)

const interestsKeyPrefix = "i:"

// GetInterests возвращает список интересов клиента из хранилища.
//
// Отсутствие ключа — пустой список. Битый payload не проглатывается:
// ошибка декодирования отдаётся вызывающему и отличима от недоступности
// хранилища через errors.Is(err, domain.ErrStoreUnavailable).
func (s *Service) GetInterests(ctx context.Context, clientID int64) ([]string, error) {
	key := interestsKeyPrefix + strconv.FormatInt(clientID, 10)

	raw, found, err := s.Store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	if !found {
		return []string{}, nil
	}

	var interests []string
	if err := json.Unmarshal([]byte(raw), &interests); err != nil {
		return nil, fmt.Errorf("malformed interests payload at %q: %w", key, err)
	}

	return interests, nil
}
