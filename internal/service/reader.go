package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/bookhavenapp/bookhaven-server/internal/domain"
)

// ReaderService tracks per-user, per-book reading state.
//
// State is deliberately transient: it lives in memory only and every
// reader starts back at page 1 with default preferences after a restart.
type ReaderService struct {
	catalog *CatalogService
	logger  *slog.Logger

	mu     sync.Mutex
	states map[string]*domain.ReaderState
}

// NewReaderService creates a new reader service.
func NewReaderService(catalog *CatalogService, logger *slog.Logger) *ReaderService {
	return &ReaderService{
		catalog: catalog,
		logger:  logger,
		states:  make(map[string]*domain.ReaderState),
	}
}

// ReaderView is the reader state as returned to clients.
type ReaderView struct {
	BookID     string               `json:"book_id"`
	Page       int                  `json:"page"`
	PageCount  int                  `json:"page_count"`
	FontSize   int                  `json:"font_size"`
	LineHeight float64              `json:"line_height"`
	Theme      domain.Theme         `json:"theme"`
	Flip       domain.FlipDirection `json:"flip,omitempty"`
}

func stateKey(userID, bookID string) string {
	return userID + "|" + bookID
}

// getState returns the state for a user and book, creating defaults on
// first access. Caller must hold s.mu.
func (s *ReaderService) getState(userID, bookID string) *domain.ReaderState {
	key := stateKey(userID, bookID)
	state, ok := s.states[key]
	if !ok {
		state = domain.NewReaderState(userID, bookID)
		s.states[key] = state
	}
	return state
}

func (s *ReaderService) view(state *domain.ReaderState, pageCount int) *ReaderView {
	return &ReaderView{
		BookID:     state.BookID,
		Page:       state.Page,
		PageCount:  pageCount,
		FontSize:   state.FontSize,
		LineHeight: state.LineHeight,
		Theme:      state.Theme,
		Flip:       state.CurrentFlip(time.Now()),
	}
}

// Get returns the current reader state for a book, creating defaults on
// first open. The book must exist.
func (s *ReaderService) Get(ctx context.Context, userID, bookID string) (*ReaderView, error) {
	book, err := s.catalog.GetBook(ctx, bookID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.getState(userID, bookID)
	return s.view(state, book.PageCount), nil
}

// NextPage turns one page forward, clamped at the last page.
func (s *ReaderService) NextPage(ctx context.Context, userID, bookID string) (*ReaderView, error) {
	book, err := s.catalog.GetBook(ctx, bookID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.getState(userID, bookID)
	state.NextPage(book.PageCount, time.Now())
	return s.view(state, book.PageCount), nil
}

// PrevPage turns one page back, clamped at page 1.
func (s *ReaderService) PrevPage(ctx context.Context, userID, bookID string) (*ReaderView, error) {
	book, err := s.catalog.GetBook(ctx, bookID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.getState(userID, bookID)
	state.PrevPage(book.PageCount, time.Now())
	return s.view(state, book.PageCount), nil
}

// SetPage jumps to a page, clamped to the book's range.
func (s *ReaderService) SetPage(ctx context.Context, userID, bookID string, page int) (*ReaderView, error) {
	book, err := s.catalog.GetBook(ctx, bookID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.getState(userID, bookID)
	state.SetPage(page, book.PageCount)
	return s.view(state, book.PageCount), nil
}

// UpdatePrefs applies display preference changes.
// Out-of-range values are rejected and nothing is changed.
func (s *ReaderService) UpdatePrefs(ctx context.Context, userID, bookID string, prefs domain.ReaderPrefs) (*ReaderView, error) {
	book, err := s.catalog.GetBook(ctx, bookID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.getState(userID, bookID)
	if err := state.ApplyPrefs(prefs); err != nil {
		return nil, err
	}
	return s.view(state, book.PageCount), nil
}
