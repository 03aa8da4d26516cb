package sessionmw

import (
	"context"
	"net/http"
	"strings"

	"github.com/linemk/storefront/internal/domain/models"
)

type contextKey string

const UserEmailKey contextKey = "userEmail"

// SessionSource — источник текущей сессии.
// Реализуется service.SessionService
type SessionSource interface {
	Current() *models.User
}

// New создаёт middleware, пропускающее запрос только с токеном активной
// сессии. Токен непрозрачный: он не разбирается, а сравнивается со значением,
// выданным при входе (формат: "Bearer <token>")
func New(sessions SessionSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "missing token", http.StatusUnauthorized)
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "invalid token format", http.StatusUnauthorized)
				return
			}
			tokenStr := parts[1]

			user := sessions.Current()
			if user == nil || user.Token != tokenStr {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			// Кладём email пользователя в контекст запроса
			ctx := context.WithValue(r.Context(), UserEmailKey, user.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromContext извлекает email пользователя из контекста.
func FromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserEmailKey).(string)
	return email, ok
}
