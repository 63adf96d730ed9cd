package domain

import (
	"time"

	"github.com/google/uuid"
)

// AnonymousActorID is the reporter id recorded for submissions made
// without a signed-in actor.
const AnonymousActorID = "anonymous"

// DemoDisplayName is given to actors fabricated on sign-in.
const DemoDisplayName = "Demo User"

// Actor is a registered or ad-hoc identity: a citizen reporter or
// department staff. Actors are immutable after creation.
type Actor struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewActorID returns a fresh unique actor id.
func NewActorID() string {
	return "user-" + uuid.NewString()
}
