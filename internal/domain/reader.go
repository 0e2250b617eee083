package domain

import (
	"time"

	"github.com/bookhavenapp/bookhaven-server/internal/errors"
)

// Theme is the reader color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeSepia Theme = "sepia"
)

// Valid reports whether the theme is one of the known values.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark || t == ThemeSepia
}

// Reader preference bounds and defaults.
const (
	MinFontSize     = 12
	MaxFontSize     = 24
	DefaultFontSize = 16

	MinLineHeight     = 1.0
	MaxLineHeight     = 2.5
	DefaultLineHeight = 1.5

	// FlipDuration is how long a page-flip direction stays visible
	// before reads report it as cleared.
	FlipDuration = 300 * time.Millisecond
)

// FlipDirection marks which way the last page turn went.
type FlipDirection string

const (
	FlipNext FlipDirection = "next"
	FlipPrev FlipDirection = "prev"
)

// ReaderState holds a user's in-progress reading position and display
// preferences for one book. It is transient: kept in memory only and
// rebuilt with defaults on restart.
type ReaderState struct {
	UserID     string        `json:"user_id"`
	BookID     string        `json:"book_id"`
	Page       int           `json:"page"` // 1-based
	FontSize   int           `json:"font_size"`
	LineHeight float64       `json:"line_height"`
	Theme      Theme         `json:"theme"`
	Flip       FlipDirection `json:"flip,omitempty"`
	flipSetAt  time.Time
}

// NewReaderState returns reader state at page 1 with default preferences.
func NewReaderState(userID, bookID string) *ReaderState {
	return &ReaderState{
		UserID:     userID,
		BookID:     bookID,
		Page:       1,
		FontSize:   DefaultFontSize,
		LineHeight: DefaultLineHeight,
		Theme:      ThemeLight,
	}
}

// clampPage keeps page within [1, pageCount]. A book with no pages
// still has a single page 1 so the reader has somewhere to stand.
func clampPage(page, pageCount int) int {
	if pageCount < 1 {
		pageCount = 1
	}
	if page < 1 {
		return 1
	}
	if page > pageCount {
		return pageCount
	}
	return page
}

// SetPage moves to the given page, clamped to the book's page count.
func (r *ReaderState) SetPage(page, pageCount int) {
	r.Page = clampPage(page, pageCount)
}

// NextPage advances one page, clamped at the last page.
// The flip direction is recorded even when already at the end.
func (r *ReaderState) NextPage(pageCount int, now time.Time) {
	r.Page = clampPage(r.Page+1, pageCount)
	r.Flip = FlipNext
	r.flipSetAt = now
}

// PrevPage goes back one page, clamped at page 1.
func (r *ReaderState) PrevPage(pageCount int, now time.Time) {
	r.Page = clampPage(r.Page-1, pageCount)
	r.Flip = FlipPrev
	r.flipSetAt = now
}

// CurrentFlip returns the active flip direction, or empty once
// FlipDuration has elapsed since the last page turn.
func (r *ReaderState) CurrentFlip(now time.Time) FlipDirection {
	if r.Flip == "" || now.Sub(r.flipSetAt) >= FlipDuration {
		return ""
	}
	return r.Flip
}

// ReaderPrefs carries a partial preferences update. Nil fields are left unchanged.
type ReaderPrefs struct {
	FontSize   *int     `json:"font_size,omitempty"`
	LineHeight *float64 `json:"line_height,omitempty"`
	Theme      *Theme   `json:"theme,omitempty"`
}

// ApplyPrefs validates and applies a preferences update.
// Out-of-range values are rejected, not clamped.
func (r *ReaderState) ApplyPrefs(prefs ReaderPrefs) error {
	if prefs.FontSize != nil {
		if *prefs.FontSize < MinFontSize || *prefs.FontSize > MaxFontSize {
			return errors.Validationf("font size must be between %d and %d", MinFontSize, MaxFontSize)
		}
	}
	if prefs.LineHeight != nil {
		if *prefs.LineHeight < MinLineHeight || *prefs.LineHeight > MaxLineHeight {
			return errors.Validationf("line height must be between %.1f and %.1f", MinLineHeight, MaxLineHeight)
		}
	}
	if prefs.Theme != nil && !prefs.Theme.Valid() {
		return errors.Validation("theme must be light, dark, or sepia")
	}

	if prefs.FontSize != nil {
		r.FontSize = *prefs.FontSize
	}
	if prefs.LineHeight != nil {
		r.LineHeight = *prefs.LineHeight
	}
	if prefs.Theme != nil {
		r.Theme = *prefs.Theme
	}
	return nil
}
