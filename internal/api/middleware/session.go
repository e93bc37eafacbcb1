package middleware

import "context"

type contextKey int

const (
	sessionKey contextKey = iota
	clientIPKey
	requestIDKey
)

// Session данные сессии администратора, извлеченные из токена
type Session struct {
	AdminID   int64
	Username  string
	SessionID string
}

// WithSession кладет сессию в контекст
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// GetSession возвращает сессию администратора из контекста
func GetSession(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey).(*Session)
	return s, ok && s != nil
}

// GetClientIP возвращает адрес клиента, определенный middleware ClientIP
func GetClientIP(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey).(string)
	return ip
}

// GetRequestID возвращает ID запроса
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
