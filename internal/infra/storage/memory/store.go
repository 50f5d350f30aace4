// Package memory хранилище в памяти процесса: используется для локального запуска
// (storage.driver = "memory") и в тестах сервисов.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/essenza-booking/internal/domain"
	"github.com/m04kA/essenza-booking/pkg/types"
)

// Store общее состояние расписаний и бронирований
type Store struct {
	mu        sync.RWMutex
	schedules map[types.DayKey][]types.TimeLabel
	bookings  map[string]*domain.Booking
	now       func() time.Time

	// txMu сериализует пишущие транзакции
	txMu sync.RWMutex
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		schedules: make(map[types.DayKey][]types.TimeLabel),
		bookings:  make(map[string]*domain.Booking),
		now:       time.Now,
	}
}

// TxManager менеджер "транзакций" поверх Store
// Do и DoSerializable выполняются строго по одной, DoReadOnly параллельно друг с другом
type TxManager struct {
	store *Store
}

// NewTxManager создает менеджер транзакций для хранилища
func NewTxManager(store *Store) *TxManager {
	return &TxManager{store: store}
}

type txKey struct{}

func inTx(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(struct{})
	return ok
}

// Do выполняет fn эксклюзивно
func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if inTx(ctx) {
		return fn(ctx)
	}

	m.store.txMu.Lock()
	defer m.store.txMu.Unlock()

	return fn(context.WithValue(ctx, txKey{}, struct{}{}))
}

// DoSerializable выполняет fn эксклюзивно
func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

// DoReadOnly выполняет fn, не пересекаясь с пишущими транзакциями
func (m *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	if inTx(ctx) {
		return fn(ctx)
	}

	m.store.txMu.RLock()
	defer m.store.txMu.RUnlock()

	return fn(context.WithValue(ctx, txKey{}, struct{}{}))
}

func cloneBooking(b *domain.Booking) *domain.Booking {
	c := *b
	if b.ClientEmail != nil {
		email := *b.ClientEmail
		c.ClientEmail = &email
	}
	if b.Note != nil {
		note := *b.Note
		c.Note = &note
	}
	return &c
}
