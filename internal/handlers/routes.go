package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/medconnect/medconnect-api/internal/middleware"
)

// NewRouter binds every route. Only blog creation sits behind the session
// middleware; the payment callbacks must stay open for the gateway.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     h.Cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Online Medical server is running..")
	})

	r.POST("/jwt", h.IssueToken)
	r.GET("/logout", h.Logout)

	r.POST("/signup", h.Signup)
	r.GET("/signup", h.ListUsers)

	r.POST("/doctors", h.CreateDoctor)
	r.GET("/doctors", h.ListDoctors)
	r.GET("/doctors/:id", h.GetDoctor)
	r.PUT("/doctors/:id", h.ApproveDoctor)

	r.POST("/blog", middleware.AuthMiddleware([]byte(h.Cfg.JWTSecret)), h.CreateBlog)
	r.GET("/blog", h.ListBlogs)
	r.GET("/blog/:id", h.GetBlog)
	r.DELETE("/blogs/:id", h.DeleteBlog)

	r.POST("/order", h.CreateOrder)
	r.GET("/order", h.ListOrders)
	r.POST("/payment/success/:tranId", h.PaymentSuccess)
	r.POST("/payment/fail/:tranId", h.PaymentFail)

	return r
}
