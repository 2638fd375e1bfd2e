// Package router builds the gin route table for the API server.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskplanner_backend/internal/api"
	authhandler "taskplanner_backend/internal/feature/auth/transport/handler"
	taskhandler "taskplanner_backend/internal/feature/task/transport/handler"
	"taskplanner_backend/internal/platform/http/handler"
	jwtmw "taskplanner_backend/internal/platform/jwt"
	"taskplanner_backend/internal/shared/ratelimiter"
)

// rateLimit returns a middleware rejecting callers that exceed the limiter's
// per-IP budget.
func rateLimit(l *ratelimiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, api.Error("too many requests"))
			return
		}
		c.Next()
	}
}

// NewRouter wires every route of the API. Routes carrying user-scoped data
// require a bearer token; delete, share and task detail are deliberately
// left open, matching the documented surface.
func NewRouter(authH *authhandler.AuthHandler, taskH *taskhandler.TaskHandler,
	authLimiter *ratelimiter.Limiter) *gin.Engine {
	r := gin.Default()

	r.GET("/", handler.Welcome)
	// Health probe
	r.GET("/healthz", handler.Health)

	auth := r.Group("/api/auth")
	{
		auth.POST("/signup", rateLimit(authLimiter), authH.Signup)
		auth.POST("/login", rateLimit(authLimiter), authH.Login)
		auth.POST("/logout", authH.Logout)
		auth.PUT("/update", jwtmw.AuthRequired(), authH.Update)
		auth.GET("/user", jwtmw.AuthRequired(), authH.GetUser)
	}

	task := r.Group("/api/task")
	{
		task.POST("", jwtmw.AuthRequired(), taskH.Create)
		task.GET("", jwtmw.AuthRequired(), taskH.List)
		task.GET("/analytics", jwtmw.AuthRequired(), taskH.Analytics)
		task.POST("/add", jwtmw.AuthRequired(), taskH.AddAssignee)
		task.GET("/sort", jwtmw.AuthRequired(), taskH.Sort)
		task.PUT("/:taskId", jwtmw.AuthRequired(), taskH.Edit)
		task.DELETE("/:taskId", taskH.Delete)
		task.POST("/share/:taskId", taskH.Share)
		task.GET("/:taskId", taskH.GetByID)
	}

	return r
}
