package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment document. Belongs to exactly one video and one author.
type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Video     primitive.ObjectID `bson:"video" json:"video"`
	Owner     primitive.ObjectID `bson:"owner" json:"owner"`
	Content   string             `bson:"content" json:"content"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (Comment) CollectionName() string {
	return "comments"
}

// OwnerRef returns the authoring user reference.
func (c *Comment) OwnerRef() primitive.ObjectID {
	return c.Owner
}

// CommentWithAuthor is the comment read model with the author joined
// in and trimmed to the public projection.
type CommentWithAuthor struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Content   string             `bson:"content" json:"content"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	CreatedBy UserSummary        `bson:"createdBy" json:"createdBy"`
}
