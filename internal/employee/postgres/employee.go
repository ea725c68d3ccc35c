package postgres

import (
	"context"
	"errors"

	employeeDatamodel "github.com/Jaychaware/hrms-lite/internal/core/datamodel/employee"
	"github.com/Jaychaware/hrms-lite/internal/database"
	"github.com/Jaychaware/hrms-lite/internal/employee"
	"gorm.io/gorm"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.RepositoryAPI {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(ctx context.Context, emp *employeeDatamodel.Employee) error {
	return database.Conn(ctx, r.db).Create(emp).Error
}

func (r *EmployeeRepository) GetAll(ctx context.Context) ([]*employeeDatamodel.Employee, error) {
	employees := make([]*employeeDatamodel.Employee, 0)
	err := database.Conn(ctx, r.db).Order("id ASC").Find(&employees).Error
	return employees, err
}

func (r *EmployeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*employeeDatamodel.Employee, error) {
	return r.first(ctx, "employee_id = ?", employeeID)
}

func (r *EmployeeRepository) GetByEmail(ctx context.Context, email string) (*employeeDatamodel.Employee, error) {
	return r.first(ctx, "LOWER(email) = LOWER(?)", email)
}

func (r *EmployeeRepository) Delete(ctx context.Context, employeeID string) error {
	return database.Conn(ctx, r.db).Where("employee_id = ?", employeeID).Delete(&employeeDatamodel.Employee{}).Error
}

// Transaction runs fn so that the delete and its event subscribers share
// one transaction.
func (r *EmployeeRepository) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return database.Transaction(ctx, r.db, fn)
}

func (r *EmployeeRepository) first(ctx context.Context, query string, args ...interface{}) (*employeeDatamodel.Employee, error) {
	var emp employeeDatamodel.Employee
	err := database.Conn(ctx, r.db).Where(query, args...).First(&emp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &emp, nil
}
