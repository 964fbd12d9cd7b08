package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User document. Identity fields are immutable once created.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username   string             `bson:"username" json:"username"`
	FullName   string             `bson:"fullName" json:"fullName"`
	Email      string             `bson:"email" json:"email"`
	Avatar     string             `bson:"avatar" json:"avatar"`
	CoverImage string             `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	Password   string             `bson:"password" json:"-"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (User) CollectionName() string {
	return "users"
}

// UserSummary is the public projection of a joined user document.
// Nothing beyond these three fields may be embedded in read models.
type UserSummary struct {
	Username string `bson:"username" json:"username"`
	FullName string `bson:"fullName" json:"fullName"`
	Avatar   string `bson:"avatar" json:"avatar"`
}

// SummaryFields is the lookup projection whitelist for UserSummary.
func SummaryFields() []string {
	return []string{"username", "fullName", "avatar"}
}
