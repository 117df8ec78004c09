package entity

import (
	"fmt"
	"math/rand"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PersonalInfo is the embedded profile subdocument of a User.
// Password holds a bcrypt hash and is empty for federation-only accounts.
type PersonalInfo struct {
	Fullname   string `bson:"fullname" json:"fullname"`
	Email      string `bson:"email" json:"email"`
	Password   string `bson:"password,omitempty" json:"-"`
	Username   string `bson:"username" json:"username"`
	Bio        string `bson:"bio,omitempty" json:"bio,omitempty"`
	ProfileImg string `bson:"profile_img" json:"profile_img"`
}

// User is the aggregate root for the auth domain, stored as one document
// in the users collection. Email and username carry unique indexes.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PersonalInfo PersonalInfo       `bson:"personal_info" json:"personal_info"`
	GoogleAuth   bool               `bson:"google_auth" json:"google_auth"`
	JoinedAt     time.Time          `bson:"joinedAt" json:"joinedAt"`
}

var avatarSeeds = []string{
	"Garfield", "Tinkerbell", "Annie", "Loki", "Cleo", "Angel", "Bob", "Mia",
	"Coco", "Gracie", "Bear", "Bella", "Abby", "Harley", "Cali", "Leo",
	"Luna", "Jack", "Felix", "Kiki",
}

var avatarCollections = []string{"notionists-neutral", "adventurer-neutral", "fun-emoji"}

// DefaultProfileImg picks a random dicebear avatar URL for new accounts.
func DefaultProfileImg() string {
	collection := avatarCollections[rand.Intn(len(avatarCollections))]
	seed := avatarSeeds[rand.Intn(len(avatarSeeds))]
	return fmt.Sprintf("https://api.dicebear.com/6.x/%s/svg?seed=%s", collection, seed)
}

// NewUser builds a password-backed account. The password must already be hashed.
func NewUser(fullname, email, hashedPassword, username string) *User {
	return &User{
		PersonalInfo: PersonalInfo{
			Fullname:   fullname,
			Email:      email,
			Password:   hashedPassword,
			Username:   username,
			ProfileImg: DefaultProfileImg(),
		},
		JoinedAt: time.Now().UTC(),
	}
}

// NewGoogleUser builds a federation-only account with no local password.
func NewGoogleUser(fullname, email, username, profileImg string) *User {
	if profileImg == "" {
		profileImg = DefaultProfileImg()
	}
	return &User{
		PersonalInfo: PersonalInfo{
			Fullname:   fullname,
			Email:      email,
			Username:   username,
			ProfileImg: profileImg,
		},
		GoogleAuth: true,
		JoinedAt:   time.Now().UTC(),
	}
}
