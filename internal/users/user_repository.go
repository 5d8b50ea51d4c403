package users

import (
	"fmt"

	"assetdesk/internal/repository"
	custom_error "assetdesk/pkg/errors"
	"assetdesk/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"
)

type UserRepository interface {
	PersistUser(req models.CreateUserRequest, hashedPassword []byte) error
	GetUser(empID string) (*models.User, error)
	GetUsers() ([]models.User, error)
	UpdateUser(empID string, changes *models.UserChanges, hashedPassword []byte) error
	DeleteUser(empID string) error
}

type userRepositoryImpl struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) UserRepository {
	return &userRepositoryImpl{repository: r}
}

func (r *userRepositoryImpl) PersistUser(req models.CreateUserRequest, hashedPassword []byte) error {
	query := r.repository.GoquDBWrapper.Insert("users").
		Rows(goqu.Record{
			"emp_id":        req.EmpID,
			"name":          req.Name,
			"email":         req.Email,
			"dept":          req.Dept,
			"password_hash": string(hashedPassword),
			"role":          req.Role,
		})

	if _, err := query.Executor().Exec(); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return custom_error.WrapDBError("Duplicate employee id", string(pqErr.Code))
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

func (r *userRepositoryImpl) GetUser(empID string) (*models.User, error) {
	var user models.User
	found, err := r.repository.GoquDBWrapper.
		Select("id", "emp_id", "name", "email", "dept", "role").
		From("users").
		Where(goqu.Ex{"emp_id": empID}).
		ScanStruct(&user)
	if err != nil {
		return nil, fmt.Errorf("error executing SQL statement: %w", err)
	}
	if !found {
		return nil, custom_error.NewNotFound("User not found")
	}

	return &user, nil
}

func (r *userRepositoryImpl) GetUsers() ([]models.User, error) {
	var users []models.User
	query := r.repository.GoquDBWrapper.
		Select("id", "emp_id", "name", "email", "dept", "role").
		From("users").
		Order(goqu.C("emp_id").Asc())

	if err := query.ScanStructs(&users); err != nil {
		return nil, fmt.Errorf("error executing SQL statement: %w", err)
	}

	return users, nil
}

func (r *userRepositoryImpl) UpdateUser(empID string, changes *models.UserChanges, hashedPassword []byte) error {
	record := goqu.Record{}
	if changes.Name != nil {
		record["name"] = *changes.Name
	}
	if changes.Email != nil {
		record["email"] = *changes.Email
	}
	if changes.Dept != nil {
		record["dept"] = *changes.Dept
	}
	if changes.Role != nil {
		record["role"] = *changes.Role
	}
	if hashedPassword != nil {
		record["password_hash"] = string(hashedPassword)
	}
	if len(record) == 0 {
		return custom_error.NewValidation("No changes provided")
	}

	result, err := r.repository.GoquDBWrapper.Update("users").
		Set(record).
		Where(goqu.Ex{"emp_id": empID}).
		Executor().Exec()
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return custom_error.NewNotFound("User not found")
	}

	return nil
}

func (r *userRepositoryImpl) DeleteUser(empID string) error {
	result, err := r.repository.GoquDBWrapper.Delete("users").
		Where(goqu.Ex{"emp_id": empID}).
		Executor().Exec()
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return custom_error.NewNotFound("User not found")
	}

	return nil
}
