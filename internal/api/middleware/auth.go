package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/Parish-BookingService/internal/api/handlers"
	"github.com/m04kA/Parish-BookingService/internal/domain"
)

const (
	headerUserID    = "X-User-ID"
	headerUserName  = "X-User-Name"
	headerUserEmail = "X-User-Email"
	headerUserRole  = "X-User-Role"

	msgMissingUserID = "отсутствует или некорректен заголовок X-User-ID"
)

type contextKey string

const principalKey contextKey = "principal"

// Auth извлекает личность пользователя из заголовков X-User-*
// Проверку подписи выполняет вышестоящий шлюз; сервис доверяет заголовкам
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(r.Header.Get(headerUserID), 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		role := domain.RoleMember
		if r.Header.Get(headerUserRole) == string(domain.RoleAdmin) {
			role = domain.RoleAdmin
		}

		principal := domain.Principal{
			ID:    userID,
			Name:  r.Header.Get(headerUserName),
			Email: r.Header.Get(headerUserEmail),
			Role:  role,
		}

		ctx := context.WithValue(r.Context(), principalKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// PrincipalFromContext возвращает личность пользователя из контекста запроса
func PrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	principal, ok := ctx.Value(principalKey).(domain.Principal)
	return principal, ok
}
