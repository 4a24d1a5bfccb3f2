package router

import (
	"scribe/internal/cache"
	"scribe/internal/config"
	"scribe/internal/handlers"
	"scribe/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *config.Config, pages *cache.Cache) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	postHandler := handlers.NewPostHandler(cfg)
	followHandler := handlers.NewFollowHandler()
	ratingHandler := handlers.NewRatingHandler()

	// Public Routes. Only the home listing is cached; group and profile
	// listings always hit the store.
	r.GET("/", middleware.CachePage(pages, cache.IndexPageKey, cfg.IndexCacheTTL), postHandler.Index)
	r.GET("/group/:slug", postHandler.GroupPosts)
	r.GET("/profile/:username", postHandler.Profile)
	r.GET("/posts/:id", postHandler.Detail)

	r.GET("/signup", authHandler.ShowSignup)
	r.POST("/signup", authHandler.Signup)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/create", postHandler.ShowCreate)
		authorized.POST("/create", postHandler.Create)
		authorized.GET("/posts/:id/edit", postHandler.ShowEdit)
		authorized.POST("/posts/:id/edit", postHandler.Update)
		authorized.POST("/posts/:id/comment", postHandler.AddComment)

		authorized.GET("/follow", postHandler.FollowIndex)
		authorized.POST("/profile/:username/follow", followHandler.Follow)
		authorized.POST("/profile/:username/unfollow", followHandler.Unfollow)

		authorized.POST("/posts/:id/rating/up", ratingHandler.RateUp)
		authorized.POST("/posts/:id/rating/down", ratingHandler.RateDown)
	}
}
