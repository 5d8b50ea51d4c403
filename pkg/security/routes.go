package security

import (
	"net/http"
	"strconv"
	"time"

	"assetdesk/internal/rate_limiter"
	"assetdesk/internal/repository"

	"github.com/gin-gonic/gin"
)

type LoginHandler struct {
	repo        *repository.Repository
	rateLimiter *rate_limiter.RateLimiter
}

func NewLoginHandler(r *repository.Repository) *LoginHandler {
	return &LoginHandler{
		repo:        r,
		rateLimiter: rate_limiter.NewRateLimiter(10, 5*time.Minute),
	}
}

func (l *LoginHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/login", l.Login())
}

func (l *LoginHandler) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		if !l.rateLimiter.IsAllowed(clientIP) {
			remaining := l.rateLimiter.GetRemainingRequests(clientIP)
			c.Header("X-RateLimit-Limit", "10")
			c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"message":   "Too many login attempts. Try again later.",
				"remaining": remaining,
			})
			return
		}

		var req struct {
			EmpID    string `json:"emp_id" binding:"required"`
			Password string `json:"password" binding:"required"`
		}

		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload"})
			return
		}

		user, err := AuthenticateUser(req.EmpID, req.Password, l.repo)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid employee id or password"})
			return
		}

		token, err := GenerateJWT(user.EmpID, user.Role, user.Name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token": token,
			"user": gin.H{
				"emp_id": user.EmpID,
				"name":   user.Name,
				"role":   user.Role,
			},
		})
	}
}
