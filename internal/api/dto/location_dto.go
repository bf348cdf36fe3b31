package dto

import "inventory_mgmt_v1_202608/internal/model"

// ==================== Location ====================

// LocationRequest 位置创建/编辑请求
// 白名单：LocationID, Name, Address
type LocationRequest struct {
	LocationID int    `json:"LocationID"`
	Name       string `json:"Name" binding:"required"`
	Address    string `json:"Address"`
}

func (r LocationRequest) ToModel() (model.Location, error) {
	return model.Location{
		LocationID: r.LocationID,
		Name:       r.Name,
		Address:    r.Address,
	}, nil
}

// ==================== Employee ====================

// EmployeeRequest 员工创建/编辑请求
// 白名单：EmployeeID, LocationID, FullName, Position, Email, PhoneNumber
type EmployeeRequest struct {
	EmployeeID  int    `json:"EmployeeID"`
	LocationID  int    `json:"LocationID"`
	FullName    string `json:"FullName" binding:"required"`
	Position    string `json:"Position" binding:"required"`
	Email       string `json:"Email" binding:"required,email"`
	PhoneNumber string `json:"PhoneNumber" binding:"required"`
}

func (r EmployeeRequest) ToModel() (model.Employee, error) {
	return model.Employee{
		EmployeeID:  r.EmployeeID,
		LocationID:  r.LocationID,
		FullName:    r.FullName,
		Position:    r.Position,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
	}, nil
}
