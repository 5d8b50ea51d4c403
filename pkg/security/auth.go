package security

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"assetdesk/internal/repository"
	"assetdesk/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

var (
	jwtSecret     []byte
	jwtSecretOnce sync.Once
)

// secretKey loads JWT_SECRET on first use so importing the package has no
// side effects.
func secretKey() []byte {
	jwtSecretOnce.Do(func() {
		secret := os.Getenv("JWT_SECRET")

		if secret == "" {
			if err := godotenv.Load(); err != nil {
				log.Printf("failed to load .env: %v", err)
			}
			secret = os.Getenv("JWT_SECRET")
		}

		if secret == "" {
			log.Fatal("JWT_SECRET environment variable is not set")
		}

		jwtSecret = []byte(secret)
	})

	return jwtSecret
}

// AuthenticateUser verifies an employee id and password against the users
// table.
func AuthenticateUser(empID, password string, repo *repository.Repository) (*models.User, error) {
	var user models.User

	query := repo.GoquDBWrapper.
		Select("id", "emp_id", "name", "email", "dept", "password_hash", "role").
		From("users").
		Where(goqu.Ex{"emp_id": empID})

	found, err := query.ScanStruct(&user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("unknown employee id")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, err
	}

	return &user, nil
}

func GenerateJWT(empID string, role string, name string) (string, error) {
	claims := jwt.MapClaims{
		"emp_id": empID,
		"role":   role,
		"name":   name,
		"exp":    time.Now().Add(time.Hour * 24).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// GetEmpIDFromContext returns the employee id set by the JWT middleware.
func GetEmpIDFromContext(c *gin.Context) (string, error) {
	value, exists := c.Get("emp_id")
	if !exists {
		return "", fmt.Errorf("no authenticated employee in context")
	}

	empID, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("emp_id is not a string")
	}

	return empID, nil
}
