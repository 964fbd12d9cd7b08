package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Playlist document. Videos is an ordered set, duplicates disallowed.
type Playlist struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Owner       primitive.ObjectID   `bson:"owner" json:"owner"`
	Name        string               `bson:"name" json:"name"`
	Description string               `bson:"description" json:"description"`
	Videos      []primitive.ObjectID `bson:"videos" json:"videos"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`
}

func (Playlist) CollectionName() string {
	return "playlists"
}

// OwnerRef returns the owning user reference.
func (p *Playlist) OwnerRef() primitive.ObjectID {
	return p.Owner
}
