package impl

import (
	"context"
	"strings"

	"gameswap/internal/domain/entity"
	"gameswap/internal/domain/rental"
	"gameswap/internal/domain/repository"
	"gameswap/internal/domain/service"
)

// fakeUserRepo is an in-memory UserRepository. Rental mutations reuse the
// same set semantics the Mongo implementation enforces atomically.
type fakeUserRepo struct {
	users   []*entity.User
	failAll error
}

func (f *fakeUserRepo) findByID(id string) *entity.User {
	for _, u := range f.users {
		if u.ID == id {
			return u
		}
	}

	return nil
}

func (f *fakeUserRepo) FindByIDOrUsername(_ context.Context, id, username string) (*entity.User, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	for _, u := range f.users {
		if u.ID == id || u.Username == username {
			return cloneUser(u), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	for _, u := range f.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if f.failAll != nil {
		return f.failAll
	}
	for _, u := range f.users {
		if u.Username == user.Username || u.Email == user.Email {
			return repository.ErrDuplicateUser
		}
	}
	if user.ID == "" {
		user.ID = "user-" + user.Username
	}
	f.users = append(f.users, cloneUser(user))

	return nil
}

func (f *fakeUserRepo) AddRental(_ context.Context, userID string, record entity.RentalRecord) (*entity.User, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	user := f.findByID(userID)
	if user == nil {
		return nil, repository.ErrUserNotFound
	}
	user.SavedGames = rental.Upsert(user.SavedGames, record)

	return cloneUser(user), nil
}

func (f *fakeUserRepo) RemoveRental(_ context.Context, userID, gameID string) (*entity.User, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	user := f.findByID(userID)
	if user == nil {
		return nil, repository.ErrUserNotFound
	}
	user.SavedGames = rental.Remove(user.SavedGames, gameID)

	return cloneUser(user), nil
}

func cloneUser(u *entity.User) *entity.User {
	clone := *u
	clone.SavedGames = append([]entity.RentalRecord(nil), u.SavedGames...)

	return &clone
}

// fakeGameRepo serves a fixed catalog.
type fakeGameRepo struct {
	games     []entity.Game
	lastQuery string
	failAll   error
}

func (f *fakeGameRepo) FindAll(context.Context) ([]entity.Game, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}

	return f.games, nil
}

func (f *fakeGameRepo) SearchByTitle(_ context.Context, title string) ([]entity.Game, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	f.lastQuery = title

	var matched []entity.Game
	for _, g := range f.games {
		if strings.Contains(strings.ToLower(g.Title), strings.ToLower(title)) {
			matched = append(matched, g)
		}
	}

	return matched, nil
}

func (f *fakeGameRepo) FindByIDs(_ context.Context, ids []string) ([]entity.Game, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}

	var matched []entity.Game
	for _, g := range f.games {
		for _, id := range ids {
			if g.ID == id {
				matched = append(matched, g)
				break
			}
		}
	}

	return matched, nil
}

// fakeHasher marks hashes recognizably without real key stretching.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// fakeTokenService issues predictable tokens.
type fakeTokenService struct{}

func (fakeTokenService) SignToken(username, _, _ string) (string, error) {
	return "token-" + username, nil
}

func (fakeTokenService) ValidateToken(string) (*service.Principal, error) {
	panic("not used in these tests")
}

// fakeExternalCatalog returns canned results or a canned error.
type fakeExternalCatalog struct {
	results []entity.ExternalSearchResult
	detail  *entity.ExternalGameDetail
	err     error
}

func (f *fakeExternalCatalog) SearchByTitle(context.Context, string) ([]entity.ExternalSearchResult, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.results, nil
}

func (f *fakeExternalCatalog) FetchBySlug(context.Context, string) (*entity.ExternalGameDetail, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.detail, nil
}

// fakeSearchLog records audit writes.
type fakeSearchLog struct {
	recordedTitle string
	recorded      []entity.ExternalSearchResult
	calls         int
	err           error
}

func (f *fakeSearchLog) RecordSearch(_ context.Context, title string, results []entity.ExternalSearchResult) error {
	f.calls++
	f.recordedTitle = title
	f.recorded = results

	return f.err
}
