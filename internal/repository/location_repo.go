package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"inventory_mgmt_v1_202608/internal/model"
)

// ==================== LocationRepository 位置仓库 ====================

// LocationRepository 位置仓库
// 在通用 CRUD 之外补充详情视图需要的子记录查询（该位置的员工与库存）
type LocationRepository struct {
	*CrudRepository[model.Location]
	db *gorm.DB
}

// NewLocationRepository 创建位置仓库
func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{
		CrudRepository: NewCrudRepository[model.Location](db, []string{"LocationID"}),
		db:             db,
	}
}

// EmployeesAt 某位置下的全部员工
func (r *LocationRepository) EmployeesAt(ctx context.Context, locationID int) ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.WithContext(ctx).
		Where(map[string]interface{}{"LocationID": locationID}).
		Find(&employees).Error
	if err != nil {
		return nil, fmt.Errorf("查询位置员工失败: %w", translateError(err))
	}
	return employees, nil
}

// InventoryAt 某位置下的全部库存行
func (r *LocationRepository) InventoryAt(ctx context.Context, locationID int) ([]model.Inventory, error) {
	var inventory []model.Inventory
	err := r.db.WithContext(ctx).
		Preload("Item").
		Where(map[string]interface{}{"LocationID": locationID}).
		Find(&inventory).Error
	if err != nil {
		return nil, fmt.Errorf("查询位置库存失败: %w", translateError(err))
	}
	return inventory, nil
}
