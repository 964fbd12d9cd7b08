package router

import (
	"vidtube/internal/api/handler"
	"vidtube/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// Setup registers all business routes.
func Setup(
	r *gin.Engine,
	authHandler *handler.AuthHandler,
	commentHandler *handler.CommentHandler,
	tweetHandler *handler.TweetHandler,
	likeHandler *handler.LikeHandler,
	playlistHandler *handler.PlaylistHandler,
	dashboardHandler *handler.DashboardHandler,
) {
	v1 := r.Group("/api/v1")

	users := v1.Group("/users")
	{
		users.POST("/register", authHandler.Register)
		users.POST("/login", authHandler.Login)

		usersAuth := users.Group("", middleware.AuthRequired())
		{
			usersAuth.GET("/me", authHandler.Me)
		}
	}

	videos := v1.Group("/videos", middleware.AuthRequired())
	{
		videos.GET("/:video_id/comments", commentHandler.List)
		videos.POST("/:video_id/comments", commentHandler.Create)
	}

	comments := v1.Group("/comments", middleware.AuthRequired())
	{
		comments.PATCH("/:id", commentHandler.Update)
		comments.DELETE("/:id", commentHandler.Delete)
	}

	tweets := v1.Group("/tweets", middleware.AuthRequired())
	{
		tweets.POST("", tweetHandler.Create)
		tweets.GET("/user/:user_id", tweetHandler.ListByUser)
		tweets.PATCH("/:id", tweetHandler.Update)
		tweets.DELETE("/:id", tweetHandler.Delete)
	}

	likes := v1.Group("/likes", middleware.AuthRequired())
	{
		likes.POST("/video/:id", likeHandler.ToggleVideo)
		likes.POST("/comment/:id", likeHandler.ToggleComment)
		likes.POST("/tweet/:id", likeHandler.ToggleTweet)
		likes.GET("/videos", likeHandler.ListLikedVideos)
	}

	playlists := v1.Group("/playlists", middleware.AuthRequired())
	{
		playlists.POST("", playlistHandler.Create)
		playlists.GET("/user/:user_id", playlistHandler.ListByUser)
		playlists.GET("/:id", playlistHandler.Get)
		playlists.PATCH("/:id", playlistHandler.Update)
		playlists.DELETE("/:id", playlistHandler.Delete)
		playlists.PATCH("/:id/videos/:video_id", playlistHandler.AddVideo)
		playlists.DELETE("/:id/videos/:video_id", playlistHandler.RemoveVideo)
	}

	dashboard := v1.Group("/dashboard", middleware.AuthRequired())
	{
		dashboard.GET("/stats", dashboardHandler.Stats)
		dashboard.GET("/videos", dashboardHandler.Videos)
	}
}
