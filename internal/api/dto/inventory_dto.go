package dto

import "inventory_mgmt_v1_202608/internal/model"

// ==================== Inventory ====================

// InventoryRequest 库存创建/编辑请求
// 白名单：LocationID, ItemID, ReorderQuantity, ReorderLevel
type InventoryRequest struct {
	LocationID      int `json:"LocationID" binding:"required"`
	ItemID          int `json:"ItemID" binding:"required"`
	ReorderQuantity int `json:"ReorderQuantity" binding:"required"`
	ReorderLevel    int `json:"ReorderLevel" binding:"required"`
}

func (r InventoryRequest) ToModel() (model.Inventory, error) {
	return model.Inventory{
		LocationID:      r.LocationID,
		ItemID:          r.ItemID,
		ReorderQuantity: r.ReorderQuantity,
		ReorderLevel:    r.ReorderLevel,
	}, nil
}

// ==================== Expense ====================

// ExpenseRequest 支出创建/编辑请求
// 白名单：ExpenseID, LocationID, ItemID, Date, Quantity, Method, Completed
type ExpenseRequest struct {
	ExpenseID  int    `json:"ExpenseID"`
	LocationID int    `json:"LocationID"`
	ItemID     int    `json:"ItemID"`
	Date       string `json:"Date" binding:"required"`
	Quantity   int    `json:"Quantity" binding:"required"`
	Method     string `json:"Method" binding:"required"`
	Completed  bool   `json:"Completed"`
}

func (r ExpenseRequest) ToModel() (model.Expense, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return model.Expense{}, err
	}
	return model.Expense{
		ExpenseID:  r.ExpenseID,
		LocationID: r.LocationID,
		ItemID:     r.ItemID,
		Date:       date,
		Quantity:   r.Quantity,
		Method:     r.Method,
		Completed:  r.Completed,
	}, nil
}
