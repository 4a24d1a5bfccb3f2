package handlers

import (
	"net/http"
	"strconv"

	"scribe/internal/authz"
	"scribe/internal/config"
	"scribe/internal/db"
	"scribe/internal/forms"
	"scribe/internal/models"
	"scribe/internal/utils"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	perPage int
}

func NewPostHandler(cfg *config.Config) *PostHandler {
	return &PostHandler{perPage: cfg.PostsPerPage}
}

// fillCommentCounts batch-fills the comment count of each listed post.
func fillCommentCounts(posts []models.Post) {
	if len(posts) == 0 {
		return
	}

	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	type countResult struct {
		PostID uint
		Count  int
	}
	var results []countResult
	db.DB.Model(&models.Comment{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&results)

	countMap := make(map[uint]int)
	for _, r := range results {
		countMap[r.PostID] = r.Count
	}

	for i := range posts {
		posts[i].CommentCount = countMap[posts[i].ID]
	}
}

func loadGroups() []models.Group {
	var groups []models.Group
	db.DB.Order("title ASC").Find(&groups)
	return groups
}

// findPost looks a post up by the :id route param.
func findPost(c *gin.Context) (*models.Post, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return nil, false
	}

	var post models.Post
	if err := db.DB.Preload("User").Preload("Group").First(&post, id).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Post not found")
		return nil, false
	}
	return &post, true
}

// Index is the home listing: every post, newest first. The route is wrapped in
// the page cache middleware, so this only runs when the cached copy expired.
func (h *PostHandler) Index(c *gin.Context) {
	var total int64
	db.DB.Model(&models.Post{}).Count(&total)
	page := utils.Paginate(total, h.perPage, c.Query("page"))

	var posts []models.Post
	db.DB.Preload("User").Preload("Group").
		Order("created_at DESC, id DESC").
		Limit(page.PerPage).
		Offset(page.Offset).
		Find(&posts)

	fillCommentCounts(posts)

	Render(c, http.StatusOK, "posts/index.html", gin.H{
		"Title": "Latest posts",
		"Posts": posts,
		"Page":  page,
		"Index": true,
	})
}

// GroupPosts lists the posts of one group, newest first. Uncached.
func (h *PostHandler) GroupPosts(c *gin.Context) {
	slug := c.Param("slug")

	var group models.Group
	if err := db.DB.Where("slug = ?", slug).First(&group).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Group not found")
		return
	}

	var total int64
	db.DB.Model(&models.Post{}).Where("group_id = ?", group.ID).Count(&total)
	page := utils.Paginate(total, h.perPage, c.Query("page"))

	var posts []models.Post
	db.DB.Preload("User").Preload("Group").
		Where("group_id = ?", group.ID).
		Order("created_at DESC, id DESC").
		Limit(page.PerPage).
		Offset(page.Offset).
		Find(&posts)

	fillCommentCounts(posts)

	Render(c, http.StatusOK, "posts/group_list.html", gin.H{
		"Title": group.Title,
		"Group": group,
		"Posts": posts,
		"Page":  page,
	})
}

// Profile shows an author and their posts, with the Following flag for the
// current visitor.
func (h *PostHandler) Profile(c *gin.Context) {
	username := c.Param("username")

	var author models.User
	if err := db.DB.Where("username = ?", username).First(&author).Error; err != nil {
		RenderError(c, http.StatusNotFound, "User not found")
		return
	}

	var total int64
	db.DB.Model(&models.Post{}).Where("user_id = ?", author.ID).Count(&total)
	page := utils.Paginate(total, h.perPage, c.Query("page"))

	var posts []models.Post
	db.DB.Preload("User").Preload("Group").
		Where("user_id = ?", author.ID).
		Order("created_at DESC, id DESC").
		Limit(page.PerPage).
		Offset(page.Offset).
		Find(&posts)

	fillCommentCounts(posts)

	following := false
	if user := currentUser(c); user != nil {
		var count int64
		db.DB.Model(&models.Follow{}).
			Where("user_id = ? AND author_id = ?", user.ID, author.ID).
			Count(&count)
		following = count > 0
	}

	Render(c, http.StatusOK, "posts/profile.html", gin.H{
		"Title":     author.Username,
		"Author":    author,
		"Posts":     posts,
		"Page":      page,
		"PostCount": total,
		"Following": following,
	})
}

// detailData assembles everything the post detail view needs. AddComment
// reuses it to re-render the page with form errors.
func (h *PostHandler) detailData(c *gin.Context, post *models.Post, form *forms.CommentForm) gin.H {
	var comments []models.Comment
	db.DB.Preload("User").
		Where("post_id = ?", post.ID).
		Order("created_at DESC, id DESC").
		Find(&comments)

	var rating int64
	db.DB.Model(&models.PostRating{}).Where("post_id = ?", post.ID).Count(&rating)

	isRating := false
	if user := currentUser(c); user != nil {
		var count int64
		db.DB.Model(&models.PostRating{}).
			Where("post_id = ? AND user_id = ?", post.ID, user.ID).
			Count(&count)
		isRating = count > 0
	}

	return gin.H{
		"Title":    "Post by " + post.User.Username,
		"Post":     post,
		"PostHTML": utils.RenderMarkdown(post.Text),
		"Comments": comments,
		"Rating":   rating,
		"IsRating": isRating,
		"Form":     form,
	}
}

func (h *PostHandler) Detail(c *gin.Context) {
	post, ok := findPost(c)
	if !ok {
		return
	}
	Render(c, http.StatusOK, "posts/post_detail.html", h.detailData(c, post, &forms.CommentForm{}))
}

func (h *PostHandler) ShowCreate(c *gin.Context) {
	Render(c, http.StatusOK, "posts/create_post.html", gin.H{
		"Title":  "New post",
		"Form":   &forms.PostForm{},
		"Groups": loadGroups(),
	})
}

// resolveGroup turns the submitted group id into a reference, recording a
// field error on the form when the group does not exist.
func resolveGroup(form *forms.PostForm) *uint {
	if form.GroupID == "" {
		return nil
	}
	id, err := strconv.Atoi(form.GroupID)
	if err != nil {
		form.Errors["group_id"] = "Must be a number."
		return nil
	}
	var group models.Group
	if err := db.DB.First(&group, id).Error; err != nil {
		form.Errors["group_id"] = "Unknown group."
		return nil
	}
	return &group.ID
}

func (h *PostHandler) Create(c *gin.Context) {
	user := currentUser(c)

	var form forms.PostForm
	form.Bind(c)

	valid := form.Valid()
	groupID := resolveGroup(&form)
	if !valid || len(form.Errors) > 0 {
		Render(c, http.StatusBadRequest, "posts/create_post.html", gin.H{
			"Title":  "New post",
			"Form":   &form,
			"Groups": loadGroups(),
		})
		return
	}

	post := models.Post{
		Text:    form.Text,
		UserID:  user.ID,
		GroupID: groupID,
		Image:   form.Image,
	}
	if err := db.DB.Create(&post).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not save the post")
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+user.Username)
}

func (h *PostHandler) ShowEdit(c *gin.Context) {
	user := currentUser(c)
	post, ok := findPost(c)
	if !ok {
		return
	}

	if d := authz.CanEditPost(user, post); !d.Allowed {
		c.Redirect(http.StatusFound, d.RedirectTo)
		return
	}

	form := forms.PostForm{Text: post.Text, Image: post.Image}
	if post.GroupID != nil {
		form.GroupID = strconv.Itoa(int(*post.GroupID))
	}

	Render(c, http.StatusOK, "posts/create_post.html", gin.H{
		"Title":  "Edit post",
		"Form":   &form,
		"Groups": loadGroups(),
		"IsEdit": true,
		"Post":   post,
	})
}

func (h *PostHandler) Update(c *gin.Context) {
	user := currentUser(c)
	post, ok := findPost(c)
	if !ok {
		return
	}

	// Non-authors are navigated to the read-only view, never shown an error.
	if d := authz.CanEditPost(user, post); !d.Allowed {
		c.Redirect(http.StatusFound, d.RedirectTo)
		return
	}

	var form forms.PostForm
	form.Bind(c)

	valid := form.Valid()
	groupID := resolveGroup(&form)
	if !valid || len(form.Errors) > 0 {
		Render(c, http.StatusBadRequest, "posts/create_post.html", gin.H{
			"Title":  "Edit post",
			"Form":   &form,
			"Groups": loadGroups(),
			"IsEdit": true,
			"Post":   post,
		})
		return
	}

	post.Text = form.Text
	post.GroupID = groupID
	post.Image = form.Image
	if err := db.DB.Save(post).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not save the post")
		return
	}

	c.Redirect(http.StatusFound, "/posts/"+strconv.Itoa(int(post.ID)))
}

func (h *PostHandler) AddComment(c *gin.Context) {
	user := currentUser(c)
	post, ok := findPost(c)
	if !ok {
		return
	}

	var form forms.CommentForm
	form.Bind(c)

	if !form.Valid() {
		// Re-render the detail view with the field errors and the entered text.
		Render(c, http.StatusBadRequest, "posts/post_detail.html", h.detailData(c, post, &form))
		return
	}

	comment := models.Comment{
		PostID: post.ID,
		UserID: user.ID,
		Text:   form.Text,
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not save the comment")
		return
	}

	c.Redirect(http.StatusFound, "/posts/"+strconv.Itoa(int(post.ID)))
}

// FollowIndex lists the posts of every author the current user follows.
func (h *PostHandler) FollowIndex(c *gin.Context) {
	user := currentUser(c)

	var followCount int64
	db.DB.Model(&models.Follow{}).Where("user_id = ?", user.ID).Count(&followCount)

	followed := db.DB.Model(&models.Post{}).
		Joins("JOIN follows ON follows.author_id = posts.user_id").
		Where("follows.user_id = ?", user.ID)

	var total int64
	followed.Count(&total)
	page := utils.Paginate(total, h.perPage, c.Query("page"))

	var posts []models.Post
	db.DB.Preload("User").Preload("Group").
		Joins("JOIN follows ON follows.author_id = posts.user_id").
		Where("follows.user_id = ?", user.ID).
		Order("posts.created_at DESC, posts.id DESC").
		Limit(page.PerPage).
		Offset(page.Offset).
		Find(&posts)

	fillCommentCounts(posts)

	Render(c, http.StatusOK, "posts/follow.html", gin.H{
		"Title":       "Followed authors",
		"Posts":       posts,
		"Page":        page,
		"FollowCount": followCount,
		"Follow":      true,
	})
}
