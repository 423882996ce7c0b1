package scoring

import (
	"context"
	"testing"

	"github.com/Erebuz/3-api-validator/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestGetScore_Weights(t *testing.T) {
	tests := []struct {
		name string
		req  *domain.OnlineScoreRequest
		want float64
	}{
		{"phone and email", &domain.OnlineScoreRequest{
			Phone: "79175002040", Email: "x@y.com",
		}, 3.0},
		{"plus birthday and gender", &domain.OnlineScoreRequest{
			Phone: "79175002040", Email: "x@y.com",
			Birthday: "01.01.2000", Gender: float64(1),
		}, 4.5},
		{"all fields", &domain.OnlineScoreRequest{
			Phone: "79175002040", Email: "x@y.com",
			Birthday: "01.01.2000", Gender: float64(1),
			FirstName: "a", LastName: "b",
		}, 5.0},
		{"gender unknown with birthday", &domain.OnlineScoreRequest{
			Birthday: "01.01.2000", Gender: float64(0),
		}, 1.5},
		{"birthday without gender", &domain.OnlineScoreRequest{
			Birthday: "01.01.2000",
		}, 0.0},
		{"names only", &domain.OnlineScoreRequest{
			FirstName: "a", LastName: "b",
		}, 0.5},
		{"nothing", &domain.OnlineScoreRequest{}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, newFakeStore())
			assert.Equal(t, tt.want, svc.GetScore(context.Background(), tt.req))
		})
	}
}

func TestGetScore_NumericPhoneCountsToo(t *testing.T) {
	svc := newTestService(t, newFakeStore())

	req := &domain.OnlineScoreRequest{Phone: float64(79175002040), Email: "x@y.com"}
	assert.Equal(t, 3.0, svc.GetScore(context.Background(), req))
}

func TestScoreCacheKey_Deterministic(t *testing.T) {
	base := &domain.OnlineScoreRequest{
		FirstName: "a", LastName: "b",
		Phone: "79175002040", Birthday: "01.01.2000",
	}
	same := &domain.OnlineScoreRequest{
		FirstName: "a", LastName: "b",
		Phone: "79175002040", Birthday: "01.01.2000",
		Email: "x@y.com", Gender: float64(1),
	}

	// email и gender в ключ не входят
	assert.Equal(t, ScoreCacheKey(base), ScoreCacheKey(same))

	other := &domain.OnlineScoreRequest{
		FirstName: "a", LastName: "b",
		Phone: "79175002041", Birthday: "01.01.2000",
	}
	assert.NotEqual(t, ScoreCacheKey(base), ScoreCacheKey(other))
}

func TestScoreCacheKey_SameForStringAndNumericPhone(t *testing.T) {
	asString := &domain.OnlineScoreRequest{Phone: "79175002040"}
	asNumber := &domain.OnlineScoreRequest{Phone: float64(79175002040)}

	assert.Equal(t, ScoreCacheKey(asString), ScoreCacheKey(asNumber))
}

func TestGetScore_CacheFirst(t *testing.T) {
	st := newFakeStore()
	svc := newTestService(t, st)

	req := &domain.OnlineScoreRequest{Phone: "79175002040", Email: "x@y.com"}
	st.cache[ScoreCacheKey(req)] = "4"

	// Закэшированное значение возвращается без пересчёта и перезаписи
	assert.Equal(t, 4.0, svc.GetScore(context.Background(), req))
	assert.Equal(t, 0, st.cacheSets)
}

func TestGetScore_WritesBackOnMiss(t *testing.T) {
	st := newFakeStore()
	svc := newTestService(t, st)

	req := &domain.OnlineScoreRequest{Phone: "79175002040", Email: "x@y.com"}
	assert.Equal(t, 3.0, svc.GetScore(context.Background(), req))
	assert.Equal(t, 1, st.cacheSets)
	assert.Equal(t, "3", st.cache[ScoreCacheKey(req)])

	// Второй вызов обслуживается из кэша
	assert.Equal(t, 3.0, svc.GetScore(context.Background(), req))
	assert.Equal(t, 1, st.cacheSets)
}

func TestGetScore_StoreFailureDegrades(t *testing.T) {
	st := newFakeStore()
	st.getErr = errStoreDown
	st.setErr = errStoreDown
	svc := newTestService(t, st)

	// Недоступность кэша не роняет запрос: счёт считается заново
	req := &domain.OnlineScoreRequest{Phone: "79175002040", Email: "x@y.com"}
	assert.Equal(t, 3.0, svc.GetScore(context.Background(), req))
}
