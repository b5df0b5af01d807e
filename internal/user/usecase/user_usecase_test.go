package usecase

import (
	"testing"
	"time"

	authdomain "bookmarks-backend/internal/auth/domain"
	"bookmarks-backend/internal/auth/repository"
	userdto "bookmarks-backend/internal/user/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[string]*authdomain.User // by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*authdomain.User)}
}

func (r *fakeUserRepo) Create(user *authdomain.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*authdomain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(id string) (*authdomain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) Update(user *authdomain.User) error {
	for id, u := range r.users {
		if id != user.ID && u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	user.UpdatedAt = time.Now()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func seedUser(t *testing.T, repo *fakeUserRepo, email string) *authdomain.User {
	t.Helper()
	user := &authdomain.User{Email: email, Hash: "$argon2id$..."}
	require.NoError(t, repo.Create(user))
	return user
}

func TestGetMe(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	uc := NewUserUsecase(repo)
	seeded := seedUser(t, repo, "essa@bessa.com")

	user, err := uc.GetMe(seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "essa@bessa.com", user.Email)
}

func TestGetMe_DeletedAccount(t *testing.T) {
	t.Parallel()

	uc := NewUserUsecase(newFakeUserRepo())

	_, err := uc.GetMe("gone")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestEditUser_PartialUpdate(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	uc := NewUserUsecase(repo)
	seeded := seedUser(t, repo, "essa@bessa.com")

	firstName := "Essa"
	updated, err := uc.EditUser(seeded.ID, &userdto.EditUserRequest{FirstName: &firstName})
	require.NoError(t, err)

	assert.Equal(t, "Essa", updated.FirstName)
	assert.Equal(t, "essa@bessa.com", updated.Email)
	assert.Empty(t, updated.LastName)
}

func TestEditUser_EmailCollision(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	uc := NewUserUsecase(repo)
	seedUser(t, repo, "taken@bessa.com")
	seeded := seedUser(t, repo, "essa@bessa.com")

	taken := "taken@bessa.com"
	_, err := uc.EditUser(seeded.ID, &userdto.EditUserRequest{Email: &taken})
	assert.ErrorIs(t, err, ErrEmailTaken)
}
