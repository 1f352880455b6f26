package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// RegisterUserCommandHandler signs up a new user.
//
// A taken email is reported as errs.AlreadyExistsError both when the pre-check sees it
// and when a concurrent sign-up wins the race to the unique index.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

func NewRegisterUserCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle returns the id of the new user.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	email := user.NormalizeEmail(cmd.Email())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	exists, err := userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return kernel.UUID{}, err
	}
	if exists {
		return kernel.UUID{}, errs.NewAlreadyExistsError("email", email)
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return kernel.UUID{}, err
	}

	u, err := user.NewUser(cmd.Name(), email, hash)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = userRepo.Add(ctx, u); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return u.ID(), nil
}
