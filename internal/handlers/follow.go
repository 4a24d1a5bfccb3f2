package handlers

import (
	"net/http"

	"scribe/internal/authz"
	"scribe/internal/db"
	"scribe/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

type FollowHandler struct{}

func NewFollowHandler() *FollowHandler {
	return &FollowHandler{}
}

// Follow creates the (user, author) edge if absent. The uniqueness constraint
// makes a repeated follow a no-op instead of an error; self-follow is silently
// denied by the gate.
func (h *FollowHandler) Follow(c *gin.Context) {
	user := currentUser(c)
	username := c.Param("username")

	var author models.User
	if err := db.DB.Where("username = ?", username).First(&author).Error; err != nil {
		RenderError(c, http.StatusNotFound, "User not found")
		return
	}

	if d := authz.CanFollow(user, &author); !d.Allowed {
		c.Redirect(http.StatusFound, d.RedirectTo)
		return
	}

	db.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.Follow{
		UserID:   user.ID,
		AuthorID: author.ID,
	})

	c.Redirect(http.StatusFound, "/profile/"+author.Username)
}

// Unfollow removes the edge if present. Removing a missing edge is a no-op.
func (h *FollowHandler) Unfollow(c *gin.Context) {
	user := currentUser(c)
	username := c.Param("username")

	var author models.User
	if err := db.DB.Where("username = ?", username).First(&author).Error; err != nil {
		RenderError(c, http.StatusNotFound, "User not found")
		return
	}

	db.DB.Where("user_id = ? AND author_id = ?", user.ID, author.ID).
		Delete(&models.Follow{})

	c.Redirect(http.StatusFound, "/profile/"+author.Username)
}
