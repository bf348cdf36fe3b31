package service

import (
	"context"

	"inventory_mgmt_v1_202608/internal/model"
	"inventory_mgmt_v1_202608/internal/repository"
)

// ==================== LocationService 位置服务 ====================

// LocationDetail 位置详情视图：位置本身 + 该位置的员工与库存
type LocationDetail struct {
	Location  *model.Location   `json:"Location"`
	Employees []model.Employee  `json:"Employees"`
	Inventory []model.Inventory `json:"Inventory"`
}

// LocationService 位置服务
// 通用 CRUD 之外，详情视图聚合该位置的员工与库存子记录
type LocationService struct {
	*RecordService[model.Location]
	repo *repository.LocationRepository
}

// NewLocationService 创建位置服务
func NewLocationService(repo *repository.LocationRepository) *LocationService {
	return &LocationService{
		RecordService: NewRecordService(repo.CrudRepository),
		repo:          repo,
	}
}

// Detail 位置详情聚合
func (s *LocationService) Detail(ctx context.Context, locationID int) (*LocationDetail, error) {
	location, err := s.repo.Get(ctx, locationID)
	if err != nil {
		return nil, err
	}
	employees, err := s.repo.EmployeesAt(ctx, locationID)
	if err != nil {
		return nil, err
	}
	inventory, err := s.repo.InventoryAt(ctx, locationID)
	if err != nil {
		return nil, err
	}
	return &LocationDetail{
		Location:  location,
		Employees: employees,
		Inventory: inventory,
	}, nil
}
