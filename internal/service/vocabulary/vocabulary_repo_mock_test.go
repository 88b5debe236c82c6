package vocabulary

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/clicktionary-backend/internal/domain"
)

var _ vocabularyRepo = &vocabularyRepoMock{}

type vocabularyRepoMock struct {
	CreateFunc       func(ctx context.Context, e *domain.VocabularyEntry) error
	GetByIDFunc      func(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.VocabularyEntry, error)
	ListFunc         func(ctx context.Context, userID uuid.UUID, filter domain.VocabularyFilter) ([]domain.VocabularyEntry, int, error)
	UpdateNoteFunc   func(ctx context.Context, userID uuid.UUID, id uuid.UUID, note string, at time.Time) (*domain.VocabularyEntry, error)
	DeleteFunc       func(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
	ExistingKeysFunc func(ctx context.Context, userID uuid.UUID, keys []string) (map[string]bool, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			E   *domain.VocabularyEntry
		}
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Id     uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Filter domain.VocabularyFilter
		}
		UpdateNote []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Id     uuid.UUID
			Note   string
			At     time.Time
		}
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Id     uuid.UUID
		}
		ExistingKeys []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Keys   []string
		}
	}
	lockCreate       sync.RWMutex
	lockGetByID      sync.RWMutex
	lockList         sync.RWMutex
	lockUpdateNote   sync.RWMutex
	lockDelete       sync.RWMutex
	lockExistingKeys sync.RWMutex
}

func (mock *vocabularyRepoMock) Create(ctx context.Context, e *domain.VocabularyEntry) error {
	if mock.CreateFunc == nil {
		panic("vocabularyRepoMock.CreateFunc: method is nil but vocabularyRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.VocabularyEntry
	}{Ctx: ctx, E: e}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *vocabularyRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   *domain.VocabularyEntry
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *vocabularyRepoMock) GetByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.VocabularyEntry, error) {
	if mock.GetByIDFunc == nil {
		panic("vocabularyRepoMock.GetByIDFunc: method is nil but vocabularyRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Id     uuid.UUID
	}{Ctx: ctx, UserID: userID, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, id)
}

func (mock *vocabularyRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Id     uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *vocabularyRepoMock) List(ctx context.Context, userID uuid.UUID, filter domain.VocabularyFilter) ([]domain.VocabularyEntry, int, error) {
	if mock.ListFunc == nil {
		panic("vocabularyRepoMock.ListFunc: method is nil but vocabularyRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Filter domain.VocabularyFilter
	}{Ctx: ctx, UserID: userID, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, filter)
}

func (mock *vocabularyRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Filter domain.VocabularyFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *vocabularyRepoMock) UpdateNote(ctx context.Context, userID uuid.UUID, id uuid.UUID, note string, at time.Time) (*domain.VocabularyEntry, error) {
	if mock.UpdateNoteFunc == nil {
		panic("vocabularyRepoMock.UpdateNoteFunc: method is nil but vocabularyRepo.UpdateNote was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Id     uuid.UUID
		Note   string
		At     time.Time
	}{Ctx: ctx, UserID: userID, Id: id, Note: note, At: at}
	mock.lockUpdateNote.Lock()
	mock.calls.UpdateNote = append(mock.calls.UpdateNote, callInfo)
	mock.lockUpdateNote.Unlock()
	return mock.UpdateNoteFunc(ctx, userID, id, note, at)
}

func (mock *vocabularyRepoMock) UpdateNoteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Id     uuid.UUID
	Note   string
	At     time.Time
} {
	mock.lockUpdateNote.RLock()
	calls := mock.calls.UpdateNote
	mock.lockUpdateNote.RUnlock()
	return calls
}

func (mock *vocabularyRepoMock) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("vocabularyRepoMock.DeleteFunc: method is nil but vocabularyRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Id     uuid.UUID
	}{Ctx: ctx, UserID: userID, Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, id)
}

func (mock *vocabularyRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Id     uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *vocabularyRepoMock) ExistingKeys(ctx context.Context, userID uuid.UUID, keys []string) (map[string]bool, error) {
	if mock.ExistingKeysFunc == nil {
		panic("vocabularyRepoMock.ExistingKeysFunc: method is nil but vocabularyRepo.ExistingKeys was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Keys   []string
	}{Ctx: ctx, UserID: userID, Keys: keys}
	mock.lockExistingKeys.Lock()
	mock.calls.ExistingKeys = append(mock.calls.ExistingKeys, callInfo)
	mock.lockExistingKeys.Unlock()
	return mock.ExistingKeysFunc(ctx, userID, keys)
}

func (mock *vocabularyRepoMock) ExistingKeysCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Keys   []string
} {
	mock.lockExistingKeys.RLock()
	calls := mock.calls.ExistingKeys
	mock.lockExistingKeys.RUnlock()
	return calls
}
