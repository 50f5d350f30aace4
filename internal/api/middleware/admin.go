package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/essenza-booking/internal/api/handlers"
)

// AdminPasswordHeader заголовок с паролем администратора
const AdminPasswordHeader = "X-Admin-Password"

const (
	msgMissingAdminPassword = "требуется пароль администратора"
	msgWrongAdminPassword   = "неверный пароль администратора"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AdminAuth пропускает запрос, если пароль из заголовка совпадает с bcrypt-хешем
// Пустой passwordHash отключает проверку
func AdminAuth(passwordHash string, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		if passwordHash == "" {
			return next
		}

		hash := []byte(passwordHash)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			password := r.Header.Get(AdminPasswordHeader)
			if password == "" {
				logger.Warn("%s %s - Missing admin password", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingAdminPassword)
				return
			}

			if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
				logger.Warn("%s %s - Wrong admin password", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgWrongAdminPassword)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
