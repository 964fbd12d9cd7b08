package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Video document. Videos are created and deleted by the video
// management service; this API only reads them.
type Video struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Owner       primitive.ObjectID `bson:"owner" json:"owner"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	VideoFile   string             `bson:"videoFile" json:"videoFile"`
	Thumbnail   string             `bson:"thumbnail" json:"thumbnail"`
	Duration    float64            `bson:"duration" json:"duration"`
	Views       int64              `bson:"views" json:"views"`
	IsPublished bool               `bson:"isPublished" json:"isPublished"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (Video) CollectionName() string {
	return "videos"
}

// VideoWithChannel is a video read model with the owner joined in.
type VideoWithChannel struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Thumbnail string             `bson:"thumbnail" json:"thumbnail"`
	Duration  float64            `bson:"duration" json:"duration"`
	Views     int64              `bson:"views" json:"views"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	Channel   UserSummary        `bson:"channel" json:"channel"`
}
