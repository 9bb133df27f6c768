package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
)

type contextKey string

const partnerIDKey contextKey = "partnerID"

// HeaderPartnerID заголовок с ID партнера, проставляется API gateway
const HeaderPartnerID = "X-Partner-ID"

const msgMissingPartnerID = "отсутствует или некорректен заголовок X-Partner-ID"

// Auth проверяет наличие заголовка X-Partner-ID и кладет ID партнера в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderPartnerID)
		partnerID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || partnerID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingPartnerID)
			return
		}

		ctx := context.WithValue(r.Context(), partnerIDKey, partnerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetPartnerID извлекает ID партнера из контекста запроса
func GetPartnerID(ctx context.Context) (int64, bool) {
	partnerID, ok := ctx.Value(partnerIDKey).(int64)
	return partnerID, ok
}
