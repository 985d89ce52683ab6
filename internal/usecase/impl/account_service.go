// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"gameswap/internal/domain/entity"
	domainerrors "gameswap/internal/domain/errors"
	"gameswap/internal/domain/rental"
	"gameswap/internal/domain/repository"
	"gameswap/internal/domain/service"
	"gameswap/internal/usecase"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo     repository.UserRepository
	gameRepo     repository.GameRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	validate     *validator.Validate
	logger       *slog.Logger
	now          func() time.Time
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	GameRepo     repository.GameRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo:     params.UserRepo,
		gameRepo:     params.GameRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		logger:       params.Logger,
		now:          time.Now,
	}
}

// Register creates a new account and issues a signed token.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.logger.Debug("Starting registration", slog.String("email", input.Email))

	if err := srv.validate.Struct(input); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidation, err.Error())
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			srv.logger.Warn("Registration rejected, duplicate account", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrValidation, "username or email already taken")
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	token, err := srv.tokenService.SignToken(newUser.Username, newUser.Email, newUser.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign token during registration")
	}

	srv.logger.Debug("Registration completed", slog.String("userID", newUser.ID))

	return &usecase.AuthOutput{Token: token, User: newUser}, nil
}

// Login verifies credentials and issues a signed token. Unknown email and
// wrong password both fail with the uniform authentication error so the
// response never leaks which emails are registered.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.logger.Debug("Starting login", slog.String("email", input.Email))

	if err := srv.validate.Struct(input); err != nil {
		return nil, errors.Wrap(domainerrors.ErrAuthentication, "malformed credentials")
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.logger.Warn("Login failed", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrAuthentication, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrAuthentication, "login failed")
	}

	token, err := srv.tokenService.SignToken(user.Username, user.Email, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign token during login")
	}

	srv.logger.Debug("User logged in", slog.String("userID", user.ID))

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// Me loads the caller's account by id or username and resolves the games
// referenced by the rental set. A missing record is not an error; the
// caller simply gets no user back.
func (srv *accountService) Me(ctx context.Context, principal *service.Principal) (*entity.User, error) {
	if principal == nil {
		return nil, errors.WithStack(domainerrors.ErrAuthentication)
	}

	user, err := srv.userRepo.FindByIDOrUsername(ctx, principal.ID, principal.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to load account")
	}

	if err := srv.resolveRentals(ctx, user.SavedGames); err != nil {
		return nil, err
	}

	return user, nil
}

// SaveGame computes the rental record and adds it to the caller's set
// with set semantics, then returns the resolved set.
func (srv *accountService) SaveGame(ctx context.Context, principal *service.Principal, gameID string) ([]entity.RentalRecord, error) {
	if principal == nil {
		return nil, errors.WithStack(domainerrors.ErrAuthentication)
	}

	record := entity.RentalRecord{
		GameID:     gameID,
		ReturnDate: rental.ReturnDate(srv.now()),
	}

	user, err := srv.userRepo.AddRental(ctx, principal.ID, record)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.logger.Warn("Save rejected, account not found", slog.String("userID", principal.ID))

			return nil, errors.Wrapf(domainerrors.ErrAuthentication, "cannot add %s", gameID)
		}

		return nil, errors.Wrap(err, "failed to save game")
	}

	if err := srv.resolveRentals(ctx, user.SavedGames); err != nil {
		return nil, err
	}

	return user.SavedGames, nil
}

// RemoveGame deletes any rental matching the game id and returns the
// resolved set. Removing an absent game is a no-op.
func (srv *accountService) RemoveGame(ctx context.Context, principal *service.Principal, gameID string) ([]entity.RentalRecord, error) {
	if principal == nil {
		return nil, errors.WithStack(domainerrors.ErrAuthentication)
	}

	user, err := srv.userRepo.RemoveRental(ctx, principal.ID, gameID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.logger.Warn("Remove rejected, account not found", slog.String("userID", principal.ID))

			return nil, errors.Wrap(domainerrors.ErrAuthentication, "cannot find account")
		}

		return nil, errors.Wrap(err, "failed to remove game")
	}

	if err := srv.resolveRentals(ctx, user.SavedGames); err != nil {
		return nil, err
	}

	return user.SavedGames, nil
}

// resolveRentals attaches the referenced Game to each record in place.
// Records pointing at games that have left the catalog keep a nil Game.
func (srv *accountService) resolveRentals(ctx context.Context, records []entity.RentalRecord) error {
	if len(records) == 0 {
		return nil
	}

	ids := make([]string, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.GameID)
	}

	games, err := srv.gameRepo.FindByIDs(ctx, ids)
	if err != nil {
		return errors.Wrap(err, "failed to resolve rented games")
	}

	byID := make(map[string]*entity.Game, len(games))
	for i := range games {
		byID[games[i].ID] = &games[i]
	}

	for i := range records {
		records[i].Game = byID[records[i].GameID]
	}

	return nil
}
