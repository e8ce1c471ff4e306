package v1

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	gql "blogger/internal/handlers/http/v1/graphql"
	"blogger/internal/service"
)

type Handler struct {
	auth    *service.Auth
	content *service.Content
}

func New(auth *service.Auth, content *service.Content) (*gin.Engine, error) {
	var (
		router  = gin.New()
		handler = &Handler{auth: auth, content: content}
	)

	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300 * time.Second,
	}))

	gqlHandler, err := gql.New(content)
	if err != nil {
		return nil, err
	}

	apiGroup := router.Group("/api/v1")
	{
		apiGroup.Use(gin.Logger())

		apiGroup.GET("/ping", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		apiGroup.POST("/graphql", gin.WrapH(gqlHandler))

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/register", handler.register)
			authGroup.POST("/login", handler.login)
			authGroup.POST("/logout", handler.logout)
		}

		posts := apiGroup.Group("/posts")
		{
			posts.GET("", handler.listPosts)
			posts.GET("/:id", handler.getPost)
			posts.GET("/:id/comments", handler.listComments)
			posts.GET("/:id/comments/:cid", handler.getComment)

			authed := posts.Group("")
			authed.Use(handler.requireAuth())
			{
				authed.POST("", handler.createPost)
				authed.PUT("/:id", handler.updatePost)
				authed.DELETE("/:id", handler.deletePost)
				authed.POST("/:id/comments", handler.createComment)
				authed.PUT("/:id/comments/:cid", handler.updateComment)
				authed.DELETE("/:id/comments/:cid", handler.deleteComment)
			}
		}
	}

	return router, nil
}
