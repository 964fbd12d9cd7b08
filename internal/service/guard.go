package service

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotOwner is returned when the acting user is not the owner of
// the resource being mutated. Handlers map it to 403, never 404:
// existence is always checked before ownership so the two failures
// stay distinguishable.
var ErrNotOwner = errors.New("you are not the owner of this resource")

// Owned is any resource carrying an owner reference.
type Owned interface {
	OwnerRef() primitive.ObjectID
}

// requireOwner rejects mutation by anyone but the resource owner.
// There is no admin override.
func requireOwner(resource Owned, actorID primitive.ObjectID) error {
	if resource.OwnerRef() != actorID {
		return ErrNotOwner
	}
	return nil
}
