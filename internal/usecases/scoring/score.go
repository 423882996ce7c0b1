package scoring

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/Erebuz/3-api-validator/internal/domain"
)

const (
	scoreCachePrefix = "uid:"
	scoreCacheTTL    = time.Hour
)

// AdminScore фиксированный балл административного запроса,
// скоринг при этом не выполняется.
const AdminScore = 42

// GetScore считает балл по валидированной схеме через кэш.
//
// Попадание в кэш возвращается как есть, без пересчёта и без обновления
// TTL. Ошибка чтения кэша деградирует до промаха, ошибка записи
// логируется и не влияет на результат.
func (s *Service) GetScore(ctx context.Context, req *domain.OnlineScoreRequest) float64 {
	key := ScoreCacheKey(req)

	if cached, ok := s.Store.CacheGet(ctx, key); ok {
		if score, err := strconv.ParseFloat(cached, 64); err == nil {
			return score
		}
		s.Log.Warn("malformed cached score, recomputing", "key", key)
	}

	score := 0.0
	if req.PhoneString() != "" {
		score += 1.5
	}
	if req.EmailString() != "" {
		score += 1.5
	}
	if _, ok := req.GenderValue(); ok && req.BirthdayString() != "" {
		score += 1.5
	}
	if req.FirstNameString() != "" && req.LastNameString() != "" {
		score += 0.5
	}

	value := strconv.FormatFloat(score, 'f', -1, 64)
	if err := s.Store.CacheSet(ctx, key, value, scoreCacheTTL); err != nil {
		s.Log.Warn("failed to cache score", "key", key, "error", err)
	}

	return score
}

// ScoreCacheKey ключ кэша балла: "uid:" + md5 от конкатенации
// first_name, last_name, phone, birthday в этом порядке без разделителей.
// Непереданные поля дают пустую строку; email и gender в ключ не входят.
func ScoreCacheKey(req *domain.OnlineScoreRequest) string {
	digest := md5.Sum([]byte(req.FirstNameString() + req.LastNameString() + req.PhoneString() + req.BirthdayString()))
	return scoreCachePrefix + hex.EncodeToString(digest[:])
}
