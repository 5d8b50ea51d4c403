package users

import (
	"net/http"

	custom_error "assetdesk/pkg/errors"
	"assetdesk/pkg/models"
	"assetdesk/pkg/roles"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type UsersHandler struct {
	repository UserRepository
}

func NewHandler(repository UserRepository) *UsersHandler {
	return &UsersHandler{repository: repository}
}

func (h *UsersHandler) RegisterUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields", "error_kind": "validation_error"})
		return
	}

	if !roles.Role(req.Role).IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid role", "error_kind": "validation_error"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to hash password", "error_kind": "internal"})
		return
	}

	if err := h.repository.PersistUser(req, hashedPassword); err != nil {
		c.JSON(custom_error.HTTPStatus(err), gin.H{"message": err.Error(), "error_kind": string(custom_error.KindOf(err))})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully", "emp_id": req.EmpID})
}

func (h *UsersHandler) GetUsers(c *gin.Context) {
	users, err := h.repository.GetUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load users", "error_kind": "internal"})
		return
	}

	if users == nil {
		users = []models.User{}
	}
	c.JSON(http.StatusOK, users)
}

func (h *UsersHandler) GetUser(c *gin.Context) {
	empID := c.Param("emp_id")

	user, err := h.repository.GetUser(empID)
	if err != nil {
		c.JSON(custom_error.HTTPStatus(err), gin.H{"message": err.Error(), "error_kind": string(custom_error.KindOf(err))})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UsersHandler) UpdateUser(c *gin.Context) {
	empID := c.Param("emp_id")

	var changes models.UserChanges
	if err := c.ShouldBindJSON(&changes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error_kind": "validation_error"})
		return
	}

	if changes.Role != nil && !roles.Role(*changes.Role).IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid role", "error_kind": "validation_error"})
		return
	}

	var hashedPassword []byte
	if changes.Password != nil {
		var err error
		hashedPassword, err = bcrypt.GenerateFromPassword([]byte(*changes.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to hash password", "error_kind": "internal"})
			return
		}
	}

	if err := h.repository.UpdateUser(empID, &changes, hashedPassword); err != nil {
		c.JSON(custom_error.HTTPStatus(err), gin.H{"message": err.Error(), "error_kind": string(custom_error.KindOf(err))})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully"})
}

func (h *UsersHandler) DeleteUser(c *gin.Context) {
	empID := c.Param("emp_id")

	if err := h.repository.DeleteUser(empID); err != nil {
		c.JSON(custom_error.HTTPStatus(err), gin.H{"message": err.Error(), "error_kind": string(custom_error.KindOf(err))})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
