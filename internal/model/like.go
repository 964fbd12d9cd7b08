package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TargetKind tags the resource a like points at. A like carries
// exactly one (kind, id) pair; a unique index on
// (likedBy, targetKind, targetId) keeps the pair single per actor.
type TargetKind string

const (
	TargetVideo   TargetKind = "video"
	TargetComment TargetKind = "comment"
	TargetTweet   TargetKind = "tweet"
)

// Valid reports whether k is one of the three known kinds.
func (k TargetKind) Valid() bool {
	switch k {
	case TargetVideo, TargetComment, TargetTweet:
		return true
	}
	return false
}

// Like is the marker document whose existence means "liked".
type Like struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	LikedBy    primitive.ObjectID `bson:"likedBy" json:"likedBy"`
	TargetKind TargetKind         `bson:"targetKind" json:"targetKind"`
	TargetID   primitive.ObjectID `bson:"targetId" json:"targetId"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

func (Like) CollectionName() string {
	return "likes"
}

// LikedVideo is the read model for a user's liked-videos listing.
type LikedVideo struct {
	LikeID  primitive.ObjectID `bson:"_id" json:"likeId"`
	LikedAt time.Time          `bson:"createdAt" json:"likedAt"`
	Video   Video              `bson:"video" json:"video"`
}
