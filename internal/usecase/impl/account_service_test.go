package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameswap/internal/domain/entity"
	domainerrors "gameswap/internal/domain/errors"
	"gameswap/internal/domain/service"
	"gameswap/internal/usecase"
)

func newTestAccountService(userRepo *fakeUserRepo, gameRepo *fakeGameRepo) *accountService {
	srv := NewAccountService(AccountServiceParams{
		UserRepo:     userRepo,
		GameRepo:     gameRepo,
		Hasher:       fakeHasher{},
		TokenService: fakeTokenService{},
		Logger:       slog.New(slog.DiscardHandler),
	}).(*accountService)
	srv.now = func() time.Time {
		return time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	}

	return srv
}

func TestAccountService_Register(t *testing.T) {
	t.Run("creates account and issues token", func(t *testing.T) {
		userRepo := &fakeUserRepo{}
		srv := newTestAccountService(userRepo, &fakeGameRepo{})

		out, err := srv.Register(context.Background(), &usecase.RegisterInput{
			Username: "frodo",
			Email:    "frodo@shire.me",
			Password: "secret-password",
		})
		require.NoError(t, err)

		assert.Equal(t, "token-frodo", out.Token)
		assert.Equal(t, "frodo", out.User.Username)
		assert.NotEmpty(t, out.User.ID)

		stored, err := userRepo.FindByEmail(context.Background(), "frodo@shire.me")
		require.NoError(t, err)
		assert.Equal(t, "hashed:secret-password", stored.PasswordHash, "password must be stored hashed")
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		srv := newTestAccountService(&fakeUserRepo{}, &fakeGameRepo{})

		_, err := srv.Register(context.Background(), &usecase.RegisterInput{
			Username: "frodo",
			Email:    "not-an-email",
			Password: "secret-password",
		})
		assert.ErrorIs(t, err, domainerrors.ErrValidation)
	})

	t.Run("rejects duplicate account", func(t *testing.T) {
		userRepo := &fakeUserRepo{users: []*entity.User{
			{ID: "u1", Username: "frodo", Email: "frodo@shire.me"},
		}}
		srv := newTestAccountService(userRepo, &fakeGameRepo{})

		_, err := srv.Register(context.Background(), &usecase.RegisterInput{
			Username: "frodo",
			Email:    "other@shire.me",
			Password: "secret-password",
		})
		assert.ErrorIs(t, err, domainerrors.ErrValidation)
	})
}

func TestAccountService_Login(t *testing.T) {
	userRepo := &fakeUserRepo{users: []*entity.User{
		{ID: "u1", Username: "frodo", Email: "frodo@shire.me", PasswordHash: "hashed:secret-password"},
	}}

	t.Run("issues token for valid credentials", func(t *testing.T) {
		srv := newTestAccountService(userRepo, &fakeGameRepo{})

		out, err := srv.Login(context.Background(), &usecase.LoginInput{
			Email:    "frodo@shire.me",
			Password: "secret-password",
		})
		require.NoError(t, err)
		assert.Equal(t, "token-frodo", out.Token)
		assert.Equal(t, "u1", out.User.ID)
	})

	t.Run("unknown email and wrong password fail identically", func(t *testing.T) {
		srv := newTestAccountService(userRepo, &fakeGameRepo{})

		_, unknownErr := srv.Login(context.Background(), &usecase.LoginInput{
			Email:    "nobody@shire.me",
			Password: "secret-password",
		})
		_, wrongErr := srv.Login(context.Background(), &usecase.LoginInput{
			Email:    "frodo@shire.me",
			Password: "wrong-password",
		})

		require.ErrorIs(t, unknownErr, domainerrors.ErrAuthentication)
		require.ErrorIs(t, wrongErr, domainerrors.ErrAuthentication)
		assert.Equal(t, unknownErr.Error(), wrongErr.Error(), "responses must not reveal which emails exist")
	})
}

func TestAccountService_Me(t *testing.T) {
	t.Run("requires a principal", func(t *testing.T) {
		srv := newTestAccountService(&fakeUserRepo{}, &fakeGameRepo{})

		_, err := srv.Me(context.Background(), nil)
		assert.ErrorIs(t, err, domainerrors.ErrAuthentication)
	})

	t.Run("missing user yields no user and no error", func(t *testing.T) {
		srv := newTestAccountService(&fakeUserRepo{}, &fakeGameRepo{})

		user, err := srv.Me(context.Background(), &service.Principal{ID: "gone", Username: "gone"})
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("resolves rented games", func(t *testing.T) {
		userRepo := &fakeUserRepo{users: []*entity.User{
			{ID: "u1", Username: "frodo", Email: "frodo@shire.me", SavedGames: []entity.RentalRecord{
				{GameID: "g1", ReturnDate: "Mar-15-2026"},
				{GameID: "missing", ReturnDate: "Mar-15-2026"},
			}},
		}}
		gameRepo := &fakeGameRepo{games: []entity.Game{
			{ID: "g1", Title: "Hollow Knight"},
		}}
		srv := newTestAccountService(userRepo, gameRepo)

		user, err := srv.Me(context.Background(), &service.Principal{ID: "u1", Username: "frodo"})
		require.NoError(t, err)
		require.Len(t, user.SavedGames, 2)

		require.NotNil(t, user.SavedGames[0].Game)
		assert.Equal(t, "Hollow Knight", user.SavedGames[0].Game.Title)
		assert.Nil(t, user.SavedGames[1].Game, "games gone from the catalog stay unresolved")
		assert.Equal(t, 2, user.GameCount())
	})
}

func TestAccountService_SaveGame(t *testing.T) {
	games := []entity.Game{{ID: "g1", Title: "Hollow Knight"}}

	t.Run("adds rental with computed return date", func(t *testing.T) {
		userRepo := &fakeUserRepo{users: []*entity.User{
			{ID: "u1", Username: "frodo", Email: "frodo@shire.me"},
		}}
		srv := newTestAccountService(userRepo, &fakeGameRepo{games: games})

		set, err := srv.SaveGame(context.Background(), &service.Principal{ID: "u1"}, "g1")
		require.NoError(t, err)
		require.Len(t, set, 1)
		assert.Equal(t, "g1", set[0].GameID)
		assert.Equal(t, "Mar-15-2026", set[0].ReturnDate, "return date is two weeks out")
		require.NotNil(t, set[0].Game)
		assert.Equal(t, "Hollow Knight", set[0].Game.Title)
	})

	t.Run("saving the same game twice keeps one record", func(t *testing.T) {
		userRepo := &fakeUserRepo{users: []*entity.User{
			{ID: "u1", Username: "frodo", Email: "frodo@shire.me"},
		}}
		srv := newTestAccountService(userRepo, &fakeGameRepo{games: games})

		_, err := srv.SaveGame(context.Background(), &service.Principal{ID: "u1"}, "g1")
		require.NoError(t, err)

		// Second save happens later; the original return date must survive.
		srv.now = func() time.Time {
			return time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
		}
		set, err := srv.SaveGame(context.Background(), &service.Principal{ID: "u1"}, "g1")
		require.NoError(t, err)
		require.Len(t, set, 1)
		assert.Equal(t, "Mar-15-2026", set[0].ReturnDate)
	})

	t.Run("requires a principal", func(t *testing.T) {
		srv := newTestAccountService(&fakeUserRepo{}, &fakeGameRepo{})

		_, err := srv.SaveGame(context.Background(), nil, "g1")
		assert.ErrorIs(t, err, domainerrors.ErrAuthentication)
	})

	t.Run("unknown account fails as authentication", func(t *testing.T) {
		srv := newTestAccountService(&fakeUserRepo{}, &fakeGameRepo{})

		_, err := srv.SaveGame(context.Background(), &service.Principal{ID: "gone"}, "g1")
		assert.ErrorIs(t, err, domainerrors.ErrAuthentication)
	})

	t.Run("propagates repository failures", func(t *testing.T) {
		srv := newTestAccountService(&fakeUserRepo{failAll: errors.New("connection reset")}, &fakeGameRepo{})

		_, err := srv.SaveGame(context.Background(), &service.Principal{ID: "u1"}, "g1")
		require.Error(t, err)
		assert.NotErrorIs(t, err, domainerrors.ErrAuthentication)
	})
}

func TestAccountService_RemoveGame(t *testing.T) {
	t.Run("removes the rental", func(t *testing.T) {
		userRepo := &fakeUserRepo{users: []*entity.User{
			{ID: "u1", Username: "frodo", Email: "frodo@shire.me", SavedGames: []entity.RentalRecord{
				{GameID: "g1", ReturnDate: "Mar-15-2026"},
				{GameID: "g2", ReturnDate: "Mar-20-2026"},
			}},
		}}
		srv := newTestAccountService(userRepo, &fakeGameRepo{})

		set, err := srv.RemoveGame(context.Background(), &service.Principal{ID: "u1"}, "g1")
		require.NoError(t, err)
		require.Len(t, set, 1)
		assert.Equal(t, "g2", set[0].GameID)
	})

	t.Run("removing an absent game is a no-op", func(t *testing.T) {
		userRepo := &fakeUserRepo{users: []*entity.User{
			{ID: "u1", Username: "frodo", Email: "frodo@shire.me", SavedGames: []entity.RentalRecord{
				{GameID: "g1", ReturnDate: "Mar-15-2026"},
			}},
		}}
		srv := newTestAccountService(userRepo, &fakeGameRepo{})

		set, err := srv.RemoveGame(context.Background(), &service.Principal{ID: "u1"}, "never-rented")
		require.NoError(t, err)
		require.Len(t, set, 1)
		assert.Equal(t, "g1", set[0].GameID)
	})

	t.Run("unknown account fails as authentication", func(t *testing.T) {
		srv := newTestAccountService(&fakeUserRepo{}, &fakeGameRepo{})

		_, err := srv.RemoveGame(context.Background(), &service.Principal{ID: "gone"}, "g1")
		assert.ErrorIs(t, err, domainerrors.ErrAuthentication)
	})
}
