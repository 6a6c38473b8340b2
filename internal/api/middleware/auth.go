package middleware

import (
	"context"
	"net/http"
	"strconv"
)

type contextKey string

const userIDKey contextKey = "userID"

// HeaderUserID заголовок, в котором API-gateway передаёт ID пользователя
const HeaderUserID = "X-User-ID"

// Auth извлекает ID пользователя из заголовка X-User-ID и кладёт его в контекст.
// Запросы без заголовка пропускаются дальше: обработчики, которым нужен
// пользователь, сами отвечают 401 через GetUserID
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if raw := r.Header.Get(HeaderUserID); raw != "" {
			if userID, err := strconv.ParseInt(raw, 10, 64); err == nil {
				r = r.WithContext(context.WithValue(r.Context(), userIDKey, userID))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserID возвращает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
