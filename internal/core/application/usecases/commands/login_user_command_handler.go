package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// ErrInvalidCredentials covers both an unknown email and a wrong password so callers
// cannot probe which accounts exist.
var ErrInvalidCredentials = errs.NewUnauthorizedError("invalid email or password")

type LoginUserResult struct {
	UserID kernel.UUID
	Name   string
	Email  string
	Token  string
}

// LoginUserCommandHandler verifies credentials and issues a session token. It only
// reads, so the unit of work is never begun.
type LoginUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	tokens     ports.TokenIssuer
}

func NewLoginUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
) LoginUserCommandHandler {
	return LoginUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		tokens:     tokens,
	}
}

func (h *LoginUserCommandHandler) Handle(ctx context.Context, cmd LoginUserCommand) (LoginUserResult, error) {
	if err := cmd.Validate(); err != nil {
		return LoginUserResult{}, err
	}

	uow := h.uowFactory.Create()
	u, err := uow.UserRepository().GetByEmail(ctx, user.NormalizeEmail(cmd.Email()))
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return LoginUserResult{}, ErrInvalidCredentials
		}
		return LoginUserResult{}, err
	}

	if !h.hasher.Verify(u.PasswordHash(), cmd.Password()) {
		return LoginUserResult{}, ErrInvalidCredentials
	}

	token, err := h.tokens.Issue(u)
	if err != nil {
		return LoginUserResult{}, err
	}

	return LoginUserResult{
		UserID: u.ID(),
		Name:   u.Name(),
		Email:  u.Email(),
		Token:  token.Token,
	}, nil
}
