package txmanager

import (
	"context"
	"sync"
)

// TransactionManager сериализует критические секции над in-memory хранилищами.
// Аналог сериализуемой транзакции БД для единственного процесса: проверка
// доступности слота и вставка бронирования выполняются в одной секции,
// что закрывает гонку check-then-act между конкурентными запросами.
type TransactionManager struct {
	mu sync.Mutex
}

// NewTransactionManager создает новый менеджер
func NewTransactionManager() *TransactionManager {
	return &TransactionManager{}
}

// Do выполняет fn в критической секции
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return fn(ctx)
}

// DoSerializable выполняет fn в критической секции.
// Для in-memory хранилища совпадает с Do: глобальная блокировка и есть
// единственный доступный уровень изоляции.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}
