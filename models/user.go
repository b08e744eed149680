package models

import "time"

// User is the slice of the account model the likes engine needs: identity
// plus the login that gets snapshotted into reactions and comments.
// Collection: users
type User struct {
	ID        string    `bson:"id" json:"id" db:"id"`
	Login     string    `bson:"login" json:"login" db:"login"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt" db:"created_at"`
}
