package rest

import (
	"net/http"

	"catalog-service/internal/contextkeys"
)

// Заголовок с админским токеном (shared-secret модель, без аккаунтов)
const adminTokenHeader = "X-Admin-Token"

// AuthMiddleware сверяет X-Admin-Token со списком валидных токенов.
// Прошедший проверку токен кладется в контекст — use cases используют его
// для записи и проверки владения.
type AuthMiddleware struct {
	tokens map[string]struct{}
}

func NewAuthMiddleware(tokens []string) *AuthMiddleware {
	allowed := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		allowed[t] = struct{}{}
	}
	return &AuthMiddleware{tokens: allowed}
}

// RequireAdmin пропускает только запросы с валидным админским токеном
func (am *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(adminTokenHeader)
		if token == "" {
			WriteJSONError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if _, ok := am.tokens[token]; !ok {
			WriteJSONError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := contextkeys.ContextWithAdminToken(r.Context(), token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
