package role

import (
	"errors"

	"seomarket/internal/core/domain/model/kernel"
	"seomarket/internal/pkg/errs"
	"seomarket/internal/pkg/guard"
)

var ErrRequesterIsNotConstructed = errors.New("Requester must be created via NewRequester")

// Requester is the authenticated user on whose behalf a use case runs.
type Requester struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	role   Role

	guard guard.ConstructorGuard
}

func NewRequester(userID kernel.UUID, r Role) (Requester, error) {
	var userErr error
	if err := userID.Validate(); err != nil {
		userErr = errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	if err := errors.Join(userErr, r.Validate()); err != nil {
		return Requester{}, err
	}

	return Requester{userID: userID, role: r, guard: guard.NewConstructorGuard()}, nil
}

func (r Requester) Validate() error {
	return r.guard.Validate(ErrRequesterIsNotConstructed)
}

func (r Requester) UserID() kernel.UUID {
	return r.userID
}

func (r Requester) Role() Role {
	return r.role
}
