package router

import (
	"grove/internal/cache"
	"grove/internal/config"
	"grove/internal/db"
	"grove/internal/handlers"
	"grove/internal/middleware"
	"grove/internal/services"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires services and handlers onto the engine. The feed cache
// is shared between the feed reads and the write paths that invalidate it.
func RegisterRoutes(r *gin.Engine, cfg config.AppConfig, feedCache *cache.Cache) {
	// Services
	feeds := services.NewFeedService(db.DB, feedCache, cfg.CacheTTL())
	posts := services.NewPostService(db.DB, feedCache)
	comments := services.NewCommentService(db.DB, feedCache)
	follows := services.NewFollowService(db.DB)
	accounts := services.NewAccountService(db.DB)
	images := services.NewImageStore(cfg.MediaRoot)

	// Handlers
	feedHandler := handlers.NewFeedHandler(feeds)
	postHandler := handlers.NewPostHandler(posts, comments, images)
	profileHandler := handlers.NewProfileHandler(feeds, follows)
	authHandler := handlers.NewAuthHandler(accounts)

	// Public routes
	r.GET("/", feedHandler.Index)                          // global feed
	r.GET("/group/:slug/", feedHandler.GroupPosts)         // one group's feed
	r.GET("/profile/:username/", profileHandler.Profile)   // author feed + follow state
	r.GET("/posts/:id/", postHandler.Detail)               // post detail + comments

	r.GET("/auth/login/", authHandler.ShowLogin)
	r.POST("/auth/login/", authHandler.Login)
	r.GET("/auth/signup/", authHandler.ShowSignup)
	r.POST("/auth/signup/", authHandler.Signup)
	r.GET("/auth/logout/", authHandler.Logout)

	// Protected routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/create/", postHandler.ShowCreate)
		authorized.POST("/create/", postHandler.Create)
		authorized.GET("/posts/:id/edit/", postHandler.ShowEdit)
		authorized.POST("/posts/:id/edit/", postHandler.Edit)
		authorized.POST("/posts/:id/comment/", postHandler.AddComment)
		authorized.GET("/follow/", feedHandler.Followed)
		authorized.POST("/profile/:username/follow/", profileHandler.Follow)
		authorized.POST("/profile/:username/unfollow/", profileHandler.Unfollow)
	}

	// Any unmatched route gets the custom not-found page
	r.NoRoute(handlers.NotFound)
}
