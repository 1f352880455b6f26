package commands

import (
	"errors"
	"strings"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrLoginUserCommandIsNotConstructed = errors.New(
	"LoginUserCommand must be created via NewLoginUserCommand constructor",
)

type LoginUserCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

func NewLoginUserCommand(email, password string) (LoginUserCommand, error) {
	cmd := LoginUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(cmd.setEmail(email), cmd.setPassword(password)); err != nil {
		return LoginUserCommand{}, err
	}

	return cmd, nil
}

func (c LoginUserCommand) Validate() error {
	return c.guard.Validate(ErrLoginUserCommandIsNotConstructed)
}

func (c LoginUserCommand) Email() string {
	return c.email
}

func (c LoginUserCommand) Password() string {
	return c.password
}

func (c *LoginUserCommand) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *LoginUserCommand) setPassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return errs.NewValueIsRequiredError("password")
	}
	c.password = password
	return nil
}
