package handlers

import (
	"log"
	"net/http"
	"strconv"

	"scribe/internal/authz"
	"scribe/internal/db"
	"scribe/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

type RatingHandler struct{}

func NewRatingHandler() *RatingHandler {
	return &RatingHandler{}
}

// RateUp adds the (post, user) rating edge if absent. Idempotency comes from
// the uniqueness constraint via the upsert, not from a pre-check; rating your
// own post is silently denied.
func (h *RatingHandler) RateUp(c *gin.Context) {
	user := currentUser(c)
	post, ok := findPost(c)
	if !ok {
		return
	}

	if d := authz.CanRate(user, post); !d.Allowed {
		c.Redirect(http.StatusFound, d.RedirectTo)
		return
	}

	db.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.PostRating{
		PostID: post.ID,
		UserID: user.ID,
	})

	c.Redirect(http.StatusFound, "/posts/"+strconv.Itoa(int(post.ID)))
}

// RateDown removes the rating edge if present. Removing a rating that was
// never there succeeds the same way; the log keeps the two cases apart.
func (h *RatingHandler) RateDown(c *gin.Context) {
	user := currentUser(c)
	post, ok := findPost(c)
	if !ok {
		return
	}

	if d := authz.CanRate(user, post); !d.Allowed {
		c.Redirect(http.StatusFound, d.RedirectTo)
		return
	}

	res := db.DB.Where("post_id = ? AND user_id = ?", post.ID, user.ID).
		Delete(&models.PostRating{})
	if res.Error == nil && res.RowsAffected == 0 {
		log.Printf("rating down on post %d by user %d removed nothing", post.ID, user.ID)
	}

	c.Redirect(http.StatusFound, "/posts/"+strconv.Itoa(int(post.ID)))
}
