package dbmetrics

import "context"

type ctxKey struct{}

// txKey ключ, под которым активная транзакция хранится в контексте
var txKey = ctxKey{}

// ContextWithExecutor кладет активную транзакцию в контекст
// Репозитории, получившие такой контекст, будут выполнять запросы внутри неё
func ContextWithExecutor(ctx context.Context, tx DBExecutor) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetExecutor возвращает транзакцию из контекста, если она там есть,
// иначе возвращает переданный executor по умолчанию
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txKey).(DBExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction сообщает, выполняется ли контекст внутри транзакции
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txKey).(DBExecutor)
	return ok
}
