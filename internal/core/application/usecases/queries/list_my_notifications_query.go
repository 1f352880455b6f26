package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrListMyNotificationsQueryIsNotConstructed = errors.New(
	"ListMyNotificationsQuery must be created via NewListMyNotificationsQuery constructor",
)

// ListMyNotificationsQuery returns the feed of one user, newest first.
type ListMyNotificationsQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListMyNotificationsQuery(userID kernel.UUID) (ListMyNotificationsQuery, error) {
	if err := userID.Validate(); err != nil {
		return ListMyNotificationsQuery{}, errs.NewValueIsRequiredErrorWithCause("userId", err)
	}

	return ListMyNotificationsQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListMyNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListMyNotificationsQueryIsNotConstructed)
}

func (q ListMyNotificationsQuery) UserID() kernel.UUID {
	return q.userID
}

type NotificationView struct {
	ID        string
	Message   string
	IsRead    bool
	CreatedAt time.Time
}
