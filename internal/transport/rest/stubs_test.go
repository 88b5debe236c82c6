package rest

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/clicktionary-backend/internal/domain"
	"github.com/heartmarshall/clicktionary-backend/internal/service/lookup"
	"github.com/heartmarshall/clicktionary-backend/internal/service/reader"
	"github.com/heartmarshall/clicktionary-backend/internal/service/vocabulary"
)

type readerServiceStub struct {
	AnalyzeFunc       func(ctx context.Context, input reader.AnalyzeInput) (*reader.AnalyzeResult, error)
	ImportURLFunc     func(ctx context.Context, input reader.ImportInput) (*reader.ImportResult, error)
	TranslateTextFunc func(ctx context.Context, input reader.TranslateInput) (*reader.TranslateResult, error)
}

func (s *readerServiceStub) Analyze(ctx context.Context, input reader.AnalyzeInput) (*reader.AnalyzeResult, error) {
	return s.AnalyzeFunc(ctx, input)
}

func (s *readerServiceStub) ImportURL(ctx context.Context, input reader.ImportInput) (*reader.ImportResult, error) {
	return s.ImportURLFunc(ctx, input)
}

func (s *readerServiceStub) TranslateText(ctx context.Context, input reader.TranslateInput) (*reader.TranslateResult, error) {
	return s.TranslateTextFunc(ctx, input)
}

type lookupServiceStub struct {
	LookupFunc func(ctx context.Context, input lookup.LookupInput) (*lookup.LookupResult, error)
}

func (s *lookupServiceStub) Lookup(ctx context.Context, input lookup.LookupInput) (*lookup.LookupResult, error) {
	return s.LookupFunc(ctx, input)
}

type vocabularyServiceStub struct {
	SaveFunc       func(ctx context.Context, input vocabulary.SaveInput) (*domain.VocabularyEntry, error)
	GetFunc        func(ctx context.Context, id uuid.UUID) (*domain.VocabularyEntry, error)
	UpdateNoteFunc func(ctx context.Context, input vocabulary.UpdateNoteInput) (*domain.VocabularyEntry, error)
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error
	ListFunc       func(ctx context.Context, input vocabulary.ListInput) (*vocabulary.ListResult, error)
	ExportFunc     func(ctx context.Context) ([]domain.VocabularyEntry, error)
	ImportFunc     func(ctx context.Context, input vocabulary.ImportInput) (*vocabulary.ImportResult, error)
}

func (s *vocabularyServiceStub) Save(ctx context.Context, input vocabulary.SaveInput) (*domain.VocabularyEntry, error) {
	return s.SaveFunc(ctx, input)
}

func (s *vocabularyServiceStub) Get(ctx context.Context, id uuid.UUID) (*domain.VocabularyEntry, error) {
	return s.GetFunc(ctx, id)
}

func (s *vocabularyServiceStub) UpdateNote(ctx context.Context, input vocabulary.UpdateNoteInput) (*domain.VocabularyEntry, error) {
	return s.UpdateNoteFunc(ctx, input)
}

func (s *vocabularyServiceStub) Delete(ctx context.Context, id uuid.UUID) error {
	return s.DeleteFunc(ctx, id)
}

func (s *vocabularyServiceStub) List(ctx context.Context, input vocabulary.ListInput) (*vocabulary.ListResult, error) {
	return s.ListFunc(ctx, input)
}

func (s *vocabularyServiceStub) Export(ctx context.Context) ([]domain.VocabularyEntry, error) {
	return s.ExportFunc(ctx)
}

func (s *vocabularyServiceStub) Import(ctx context.Context, input vocabulary.ImportInput) (*vocabulary.ImportResult, error) {
	return s.ImportFunc(ctx, input)
}

type staticValidator struct {
	token  string
	userID uuid.UUID
}

func (v staticValidator) ValidateToken(_ context.Context, token string) (uuid.UUID, error) {
	if token != v.token {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return v.userID, nil
}
