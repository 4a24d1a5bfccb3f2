package authz

import (
	"fmt"
	"scribe/internal/models"
)

// Decision is the outcome of an ownership check. A denied action is never
// surfaced as an error: it carries the safe read-only view to send the actor
// to instead, and every handler consumes it the same way.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(target string) Decision {
	return Decision{RedirectTo: target}
}

// CanEditPost permits edit and delete only for the post's author. Anyone else
// is navigated to the read-only detail view.
func CanEditPost(user *models.User, post *models.Post) Decision {
	if user != nil && user.ID == post.UserID {
		return Allow()
	}
	return Deny(fmt.Sprintf("/posts/%d", post.ID))
}

// CanFollow denies following yourself; the denied path is a silent no-op that
// lands back on the target profile.
func CanFollow(user *models.User, author *models.User) Decision {
	if user != nil && user.ID != author.ID {
		return Allow()
	}
	return Deny("/profile/" + author.Username)
}

// CanRate denies rating your own post.
func CanRate(user *models.User, post *models.Post) Decision {
	if user != nil && user.ID != post.UserID {
		return Allow()
	}
	return Deny(fmt.Sprintf("/posts/%d", post.ID))
}
