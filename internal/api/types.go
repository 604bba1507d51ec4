package api

import (
	"time"

	"github.com/google/uuid"
)

// EbookStatus is the backend lifecycle state of a book.
type EbookStatus string

const (
	StatusDraft     EbookStatus = "draft"
	StatusPublished EbookStatus = "published"
	StatusArchived  EbookStatus = "archived"
)

// Visibility controls who can see a user's profile.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
	VisibilityFriends Visibility = "friends"
)

// GenerationStatus is the lifecycle state of a generation job.
type GenerationStatus string

const (
	GenerationPending    GenerationStatus = "pending"
	GenerationProcessing GenerationStatus = "processing"
	GenerationCompleted  GenerationStatus = "completed"
	GenerationFailed     GenerationStatus = "failed"
	GenerationCancelled  GenerationStatus = "cancelled"
)

// Terminal reports whether the job will make no further progress.
func (s GenerationStatus) Terminal() bool {
	switch s {
	case GenerationCompleted, GenerationFailed, GenerationCancelled:
		return true
	}
	return false
}

// User is the authenticated account profile.
type User struct {
	ID                uuid.UUID  `json:"id"`
	Email             string     `json:"email"`
	Username          string     `json:"username,omitempty"`
	FullName          string     `json:"full_name,omitempty"`
	AvatarURL         string     `json:"avatar_url,omitempty"`
	Bio               string     `json:"bio,omitempty"`
	ProfileVisibility Visibility `json:"profile_visibility"`
	IsActive          bool       `json:"is_active"`
	IsVerified        bool       `json:"is_verified"`
	CreatedAt         time.Time  `json:"created_at"`
	LastLogin         *time.Time `json:"last_login,omitempty"`
}

// DisplayName returns the best human-readable name for the user.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.Username != "" {
		return u.Username
	}
	if u.FullName != "" {
		return u.FullName
	}
	return u.Email
}

// Author is the public profile embedded in ebook responses.
type Author struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username,omitempty"`
	FullName  string    `json:"full_name,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
}

// DisplayName returns the author's username, falling back to full name.
func (a *Author) DisplayName() string {
	if a == nil {
		return ""
	}
	if a.Username != "" {
		return a.Username
	}
	return a.FullName
}

// Ebook is one book record. The client holds read-only copies; every
// mutation goes through an API call.
type Ebook struct {
	ID            uuid.UUID   `json:"id"`
	AuthorID      uuid.UUID   `json:"author_id"`
	Title         string      `json:"title"`
	Description   string      `json:"description,omitempty"`
	CoverImageURL string      `json:"cover_image_url,omitempty"`
	Status        EbookStatus `json:"status"`
	Genre         string      `json:"genre,omitempty"`
	Tags          []string    `json:"tags"`
	Version       int         `json:"version"`
	ViewCount     int         `json:"view_count"`
	RatingAverage float64     `json:"rating_average"`
	RatingCount   int         `json:"rating_count"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
	PublishedAt   *time.Time  `json:"published_at,omitempty"`
	Author        *Author     `json:"author,omitempty"`
}

// AuthorName returns the embedded author's display name, if present.
func (e *Ebook) AuthorName() string {
	return e.Author.DisplayName()
}

// EbookList is a paginated list of ebooks.
type EbookList struct {
	Items []Ebook `json:"items"`
	Total int     `json:"total"`
	Skip  int     `json:"skip"`
	Limit int     `json:"limit"`
}

// ChapterSummary is a chapter without its body, used for tables of contents.
// chapter_number ordering defines the reading sequence.
type ChapterSummary struct {
	ID            uuid.UUID `json:"id"`
	EbookID       uuid.UUID `json:"ebook_id"`
	ChapterNumber int       `json:"chapter_number"`
	Title         string    `json:"title"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Chapter is a full chapter including content.
type Chapter struct {
	ID            uuid.UUID `json:"id"`
	EbookID       uuid.UUID `json:"ebook_id"`
	ChapterNumber int       `json:"chapter_number"`
	Title         string    `json:"title"`
	Content       string    `json:"content,omitempty"`
	Version       int       `json:"version"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ChapterList is the response of the chapter list endpoint.
type ChapterList struct {
	Items []ChapterSummary `json:"items"`
	Total int              `json:"total"`
}

// TokenResponse is the access/refresh pair returned by login and refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// Message is the generic {"message": ...} response body.
type Message struct {
	Message string `json:"message"`
}

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username,omitempty"`
	FullName string `json:"full_name,omitempty"`
}

// EbookCreate is the create-ebook request body.
type EbookCreate struct {
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	CoverImageURL string   `json:"cover_image_url,omitempty"`
	Genre         string   `json:"genre,omitempty"`
	Tags          []string `json:"tags"`
	Content       string   `json:"content,omitempty"`
}

// EbookUpdate is the partial-update request body. Nil fields are omitted.
type EbookUpdate struct {
	Title         *string      `json:"title,omitempty"`
	Description   *string      `json:"description,omitempty"`
	CoverImageURL *string      `json:"cover_image_url,omitempty"`
	Genre         *string      `json:"genre,omitempty"`
	Tags          *[]string    `json:"tags,omitempty"`
	Status        *EbookStatus `json:"status,omitempty"`
}

// ChapterCreate is the create-chapter request body.
type ChapterCreate struct {
	ChapterNumber int    `json:"chapter_number"`
	Title         string `json:"title"`
	Content       string `json:"content,omitempty"`
}

// ChapterUpdate is the partial chapter update body.
type ChapterUpdate struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// GenerationRequest starts or retries a generation job.
type GenerationRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description,omitempty"`
	Genre           string   `json:"genre,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	ChapterCount    int      `json:"chapter_count,omitempty"`
	TargetWordCount int      `json:"target_word_count,omitempty"`
}

// GenerationStart is the response of the start and retry endpoints.
type GenerationStart struct {
	GenerationID uuid.UUID        `json:"generation_id"`
	BookID       uuid.UUID        `json:"book_id"`
	Status       GenerationStatus `json:"status"`
	Message      string           `json:"message"`
}

// GenerationProgress reports a job's state, keyed by the book it fills.
type GenerationProgress struct {
	ID              uuid.UUID        `json:"id"`
	BookID          uuid.UUID        `json:"book_id"`
	Status          GenerationStatus `json:"status"`
	ProgressPercent int              `json:"progress_percent"`
	CurrentChapter  *int             `json:"current_chapter,omitempty"`
	TotalChapters   *int             `json:"total_chapters,omitempty"`
	ErrorMessage    string           `json:"error_message,omitempty"`
	StartedAt       *time.Time       `json:"started_at,omitempty"`
	CompletedAt     *time.Time       `json:"completed_at,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

// GenerationCancel is the cancel endpoint response.
type GenerationCancel struct {
	Message string           `json:"message"`
	Status  GenerationStatus `json:"status"`
}

// ReadingProgress is the per-user position in one book.
type ReadingProgress struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	EbookID         uuid.UUID  `json:"ebook_id"`
	ChapterID       *uuid.UUID `json:"chapter_id,omitempty"`
	ProgressPercent float64    `json:"progress_percent"`
	LastPosition    int        `json:"last_position"`
	LastReadAt      time.Time  `json:"last_read_at"`
}

// ReadingProgressUpdate creates or replaces the caller's progress in a book.
type ReadingProgressUpdate struct {
	ProgressPercent float64    `json:"progress_percent"`
	LastPosition    int        `json:"last_position"`
	ChapterID       *uuid.UUID `json:"chapter_id,omitempty"`
}

// Bookmark is a server-side saved position.
type Bookmark struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	EbookID   uuid.UUID  `json:"ebook_id"`
	ChapterID *uuid.UUID `json:"chapter_id,omitempty"`
	Position  int        `json:"position"`
	Title     string     `json:"title,omitempty"`
	Note      string     `json:"note,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// BookmarkList is the per-book bookmark listing envelope.
type BookmarkList struct {
	Items []Bookmark `json:"items"`
	Total int        `json:"total"`
}

// BookmarkCreate is the create-bookmark request body.
type BookmarkCreate struct {
	Position  int        `json:"position"`
	Title     string     `json:"title,omitempty"`
	Note      string     `json:"note,omitempty"`
	ChapterID *uuid.UUID `json:"chapter_id,omitempty"`
}
