package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"unison/middleware"
	"unison/store"
)

// NewRouter wires the REST surface. ws is optional; when non-nil it is
// mounted at GET /ws.
func NewRouter(h *Handler, tokens *store.TokenIssuer, ws gin.HandlerFunc, log *zap.Logger, corsOrigins string) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(log))
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(corsOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.Refresh)
	}

	fr := r.Group("/friends")
	fr.Use(middleware.RequireAuth(tokens))
	{
		fr.GET("/list", h.ListFriends)
		fr.POST("/request", h.RequestFriend)
		fr.POST("/approve", h.ApproveFriend)
		fr.POST("/refuse", h.RefuseFriend)
	}

	users := r.Group("/users")
	users.Use(middleware.RequireAuth(tokens))
	{
		users.GET("/me", h.Me)
	}

	todos := r.Group("/todos")
	todos.Use(middleware.RequireAuth(tokens))
	{
		todos.GET("", h.ListTodos)
		todos.POST("", h.CreateTodo)
		todos.PUT("/:id", h.UpdateTodo)
	}

	focus := r.Group("/focus")
	focus.Use(middleware.RequireAuth(tokens))
	{
		focus.GET("", h.ListFocusSessions)
		focus.POST("", h.CreateFocusSession)
	}

	usage := r.Group("/usage")
	usage.Use(middleware.RequireAuth(tokens))
	{
		usage.GET("", h.ListAppUsage)
		usage.POST("", h.CreateAppUsage)
	}

	if ws != nil {
		r.GET("/ws", ws)
	}

	return r
}
