package entities

import (
	"time"

	"github.com/google/uuid"
)

// Follower is a directed edge recording that one member follows another.
// The pair (FollowerID, FollowedID) is unique and self-edges are rejected.
type Follower struct {
	ID         uuid.UUID `json:"id"`
	FollowerID uuid.UUID `json:"followerId"`
	FollowedID uuid.UUID `json:"followedId"`
	CreatedAt  time.Time `json:"createdAt"`
}
