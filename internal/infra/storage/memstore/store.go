package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-EquipmentBooking/internal/domain"
)

// Store in-memory хранилище оборудования и бронирований
// Реализует те же контракты, что и PostgreSQL репозитории, и менеджер транзакций.
// Транзакции выполняются строго последовательно (эквивалент SERIALIZABLE),
// при ошибке состояние откатывается к снимку, сделанному в начале транзакции.
type Store struct {
	txMu   sync.Mutex   // сериализует транзакции и одиночные записи
	dataMu sync.RWMutex // защищает данные

	equipment map[int64]domain.Equipment
	bookings  map[int64]domain.Booking

	nextEquipmentID int64
	nextBookingID   int64

	now func() time.Time
}

// New создает пустое хранилище
func New() *Store {
	return &Store{
		equipment: make(map[int64]domain.Equipment),
		bookings:  make(map[int64]domain.Booking),
		now:       time.Now,
	}
}

type txKey struct{}

func (s *Store) inTx(ctx context.Context) bool {
	owner, ok := ctx.Value(txKey{}).(*Store)
	return ok && owner == s
}

// DoSerializable выполняет fn атомарно: либо все изменения fn применяются, либо ни одно
func (s *Store) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	snapshot := s.snapshot()

	defer func() {
		if p := recover(); p != nil {
			s.restore(snapshot)
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		s.restore(snapshot)
		return err
	}

	return nil
}

// write выполняет изменение данных; вне транзакции ждёт завершения текущей транзакции
func (s *Store) write(ctx context.Context, fn func() error) error {
	if !s.inTx(ctx) {
		s.txMu.Lock()
		defer s.txMu.Unlock()
	}

	s.dataMu.Lock()
	defer s.dataMu.Unlock()

	return fn()
}

func (s *Store) read(fn func()) {
	s.dataMu.RLock()
	defer s.dataMu.RUnlock()
	fn()
}

type state struct {
	equipment       map[int64]domain.Equipment
	bookings        map[int64]domain.Booking
	nextEquipmentID int64
	nextBookingID   int64
}

func (s *Store) snapshot() state {
	s.dataMu.RLock()
	defer s.dataMu.RUnlock()

	st := state{
		equipment:       make(map[int64]domain.Equipment, len(s.equipment)),
		bookings:        make(map[int64]domain.Booking, len(s.bookings)),
		nextEquipmentID: s.nextEquipmentID,
		nextBookingID:   s.nextBookingID,
	}
	for id, eq := range s.equipment {
		st.equipment[id] = eq
	}
	for id, b := range s.bookings {
		st.bookings[id] = b
	}
	return st
}

func (s *Store) restore(st state) {
	s.dataMu.Lock()
	defer s.dataMu.Unlock()

	s.equipment = st.equipment
	s.bookings = st.bookings
	s.nextEquipmentID = st.nextEquipmentID
	s.nextBookingID = st.nextBookingID
}

// Bookings возвращает репозиторий бронирований поверх хранилища
func (s *Store) Bookings() *BookingRepository {
	return &BookingRepository{store: s}
}

// Equipment возвращает репозиторий оборудования поверх хранилища
func (s *Store) Equipment() *EquipmentRepository {
	return &EquipmentRepository{store: s}
}
