package contextkeys

import "context"

type adminTokenKeyType struct{}

var adminTokenKey = adminTokenKeyType{}

// ContextWithAdminToken помещает аутентифицированный админский токен
// в контекст. Кладет его только auth middleware после сверки со списком.
func ContextWithAdminToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, adminTokenKey, token)
}

// AdminTokenFromContext извлекает токен из контекста.
// Пустая строка — запрос не проходил аутентификацию.
func AdminTokenFromContext(ctx context.Context) string {
	if token, ok := ctx.Value(adminTokenKey).(string); ok {
		return token
	}
	return ""
}
