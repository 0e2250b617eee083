package domain

import "time"

// Favorite records a single book a user has favorited.
type Favorite struct {
	BookID  string    `json:"book_id"`
	AddedAt time.Time `json:"added_at"`
}

// Favorites is a user's set of favorited books.
// Set semantics: adding an existing book is a no-op, as is removing an absent one.
type Favorites struct {
	UserID    string     `json:"user_id"`
	Items     []Favorite `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Contains reports whether bookID is in the set.
func (f *Favorites) Contains(bookID string) bool {
	for _, item := range f.Items {
		if item.BookID == bookID {
			return true
		}
	}
	return false
}

// Add inserts bookID into the set. Returns true if the set changed.
func (f *Favorites) Add(bookID string, now time.Time) bool {
	if f.Contains(bookID) {
		return false
	}
	f.Items = append(f.Items, Favorite{BookID: bookID, AddedAt: now})
	f.UpdatedAt = now
	return true
}

// Remove deletes bookID from the set. Returns true if the set changed.
func (f *Favorites) Remove(bookID string, now time.Time) bool {
	for i, item := range f.Items {
		if item.BookID == bookID {
			f.Items = append(f.Items[:i], f.Items[i+1:]...)
			f.UpdatedAt = now
			return true
		}
	}
	return false
}

// Toggle flips the membership of bookID and reports the new state:
// true when the book ends up favorited, false when it ends up removed.
func (f *Favorites) Toggle(bookID string, now time.Time) bool {
	if f.Remove(bookID, now) {
		return false
	}
	f.Add(bookID, now)
	return true
}

// BookIDs returns the favorited book IDs in insertion order.
func (f *Favorites) BookIDs() []string {
	ids := make([]string, len(f.Items))
	for i, item := range f.Items {
		ids[i] = item.BookID
	}
	return ids
}
