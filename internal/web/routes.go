package web

import "github.com/gin-gonic/gin"

// RegisterRoutes attaches the grid API under /api.
func RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.GET("/sample", sampleHandler)
		api.POST("/grid", gridHandler)
		api.POST("/guides", guidesHandler)
	}
}
