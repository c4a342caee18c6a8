package middleware

import (
	"context"
	"net/http"

	"github.com/houseofbeauty/appointment-service/internal/api/handlers"
)

const msgMissingStaffID = "отсутствует заголовок X-Staff-ID"

type staffIDKey struct{}

// Auth middleware защищенных маршрутов панели: запрос обязан нести
// идентификатор сотрудника, выданный сервисом идентификации.
// Подпись заголовка проверяет внешний шлюз, здесь только наличие.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		staffID := r.Header.Get("X-Staff-ID")
		if staffID == "" {
			handlers.RespondUnauthorized(w, msgMissingStaffID)
			return
		}

		ctx := context.WithValue(r.Context(), staffIDKey{}, staffID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// StaffIDFromContext возвращает идентификатор сотрудника, положенный Auth
func StaffIDFromContext(ctx context.Context) (string, bool) {
	staffID, ok := ctx.Value(staffIDKey{}).(string)
	return staffID, ok
}
