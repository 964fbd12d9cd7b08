package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tweet document, a short text post owned by a user.
type Tweet struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Owner     primitive.ObjectID `bson:"owner" json:"owner"`
	Content   string             `bson:"content" json:"content"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (Tweet) CollectionName() string {
	return "tweets"
}

// OwnerRef returns the authoring user reference.
func (t *Tweet) OwnerRef() primitive.ObjectID {
	return t.Owner
}
