package usecase

import (
	"testing"
	"time"

	"bookmarks-backend/internal/bookmark/domain"
	bookmarkdto "bookmarks-backend/internal/bookmark/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookmarkRepo is an in-memory BookmarkRepository with the same
// ownership-scoping contract as the gorm implementation.
type fakeBookmarkRepo struct {
	bookmarks map[string]*domain.Bookmark // by id
}

func newFakeBookmarkRepo() *fakeBookmarkRepo {
	return &fakeBookmarkRepo{bookmarks: make(map[string]*domain.Bookmark)}
}

func (r *fakeBookmarkRepo) Create(bookmark *domain.Bookmark) error {
	if bookmark.ID == "" {
		bookmark.ID = uuid.New().String()
	}
	bookmark.CreatedAt = time.Now()
	bookmark.UpdatedAt = time.Now()
	copied := *bookmark
	r.bookmarks[bookmark.ID] = &copied
	return nil
}

func (r *fakeBookmarkRepo) FindByUserID(userID string) ([]domain.Bookmark, error) {
	result := make([]domain.Bookmark, 0)
	for _, b := range r.bookmarks {
		if b.UserID == userID {
			result = append(result, *b)
		}
	}
	return result, nil
}

func (r *fakeBookmarkRepo) FindByID(userID, id string) (*domain.Bookmark, error) {
	b, ok := r.bookmarks[id]
	if !ok || b.UserID != userID {
		return nil, nil
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookmarkRepo) Update(bookmark *domain.Bookmark) error {
	bookmark.UpdatedAt = time.Now()
	copied := *bookmark
	r.bookmarks[bookmark.ID] = &copied
	return nil
}

func (r *fakeBookmarkRepo) Delete(userID, id string) (bool, error) {
	b, ok := r.bookmarks[id]
	if !ok || b.UserID != userID {
		return false, nil
	}
	delete(r.bookmarks, id)
	return true, nil
}

func createRequest() *bookmarkdto.CreateBookmarkRequest {
	return &bookmarkdto.CreateBookmarkRequest{
		Title:       "Google",
		Link:        "https://google.com",
		Description: "search engine",
	}
}

func TestCreateAndGetBookmark(t *testing.T) {
	t.Parallel()

	uc := NewBookmarkUsecase(newFakeBookmarkRepo())

	created, err := uc.CreateBookmark("user-a", createRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "user-a", created.UserID)

	got, err := uc.GetBookmarkByID("user-a", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Google", got.Title)
	assert.Equal(t, "https://google.com", got.Link)
	assert.Equal(t, "search engine", got.Description)
}

func TestGetBookmarks_EmptyList(t *testing.T) {
	t.Parallel()

	uc := NewBookmarkUsecase(newFakeBookmarkRepo())

	bookmarks, err := uc.GetBookmarks("user-a")
	require.NoError(t, err)
	assert.NotNil(t, bookmarks)
	assert.Empty(t, bookmarks)
}

func TestForeignBookmarkBehavesAsMissing(t *testing.T) {
	t.Parallel()

	repo := newFakeBookmarkRepo()
	uc := NewBookmarkUsecase(repo)

	created, err := uc.CreateBookmark("user-b", createRequest())
	require.NoError(t, err)

	// user-a probing user-b's bookmark must look exactly like probing a
	// nonexistent id.
	_, errForeign := uc.GetBookmarkByID("user-a", created.ID)
	_, errMissing := uc.GetBookmarkByID("user-a", "no-such-id")
	assert.ErrorIs(t, errForeign, ErrBookmarkNotFound)
	assert.Equal(t, errMissing, errForeign)

	title := "stolen"
	_, err = uc.EditBookmark("user-a", created.ID, &bookmarkdto.EditBookmarkRequest{Title: &title})
	assert.ErrorIs(t, err, ErrBookmarkNotFound)

	err = uc.DeleteBookmark("user-a", created.ID)
	assert.ErrorIs(t, err, ErrBookmarkNotFound)

	// The row itself is untouched.
	got, err := uc.GetBookmarkByID("user-b", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Google", got.Title)
}

func TestEditBookmark_PartialUpdate(t *testing.T) {
	t.Parallel()

	uc := NewBookmarkUsecase(newFakeBookmarkRepo())

	created, err := uc.CreateBookmark("user-a", createRequest())
	require.NoError(t, err)

	description := "my favorite search engine"
	updated, err := uc.EditBookmark("user-a", created.ID, &bookmarkdto.EditBookmarkRequest{
		Description: &description,
	})
	require.NoError(t, err)

	assert.Equal(t, "my favorite search engine", updated.Description)
	assert.Equal(t, "Google", updated.Title)
	assert.Equal(t, "https://google.com", updated.Link)
}

func TestDeleteBookmark(t *testing.T) {
	t.Parallel()

	uc := NewBookmarkUsecase(newFakeBookmarkRepo())

	created, err := uc.CreateBookmark("user-a", createRequest())
	require.NoError(t, err)

	require.NoError(t, uc.DeleteBookmark("user-a", created.ID))

	_, err = uc.GetBookmarkByID("user-a", created.ID)
	assert.ErrorIs(t, err, ErrBookmarkNotFound)

	bookmarks, err := uc.GetBookmarks("user-a")
	require.NoError(t, err)
	assert.Empty(t, bookmarks)
}
