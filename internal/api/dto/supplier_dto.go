package dto

import "inventory_mgmt_v1_202608/internal/model"

// ==================== Supplier ====================

// SupplierRequest 供应商创建/编辑请求
// 白名单：SupplierID, Name, Email, PhoneNumber, Address, DateOfCreation
type SupplierRequest struct {
	SupplierID     int    `json:"SupplierID"`
	Name           string `json:"Name" binding:"required"`
	Email          string `json:"Email" binding:"required,email"`
	PhoneNumber    string `json:"PhoneNumber" binding:"required"`
	Address        string `json:"Address" binding:"required"`
	DateOfCreation string `json:"DateOfCreation" binding:"required"`
}

func (r SupplierRequest) ToModel() (model.Supplier, error) {
	created, err := parseDate(r.DateOfCreation)
	if err != nil {
		return model.Supplier{}, err
	}
	return model.Supplier{
		SupplierID:     r.SupplierID,
		Name:           r.Name,
		Email:          r.Email,
		PhoneNumber:    r.PhoneNumber,
		Address:        r.Address,
		DateOfCreation: created,
	}, nil
}

// ==================== Item ====================

// ItemRequest 商品创建/编辑请求
// 白名单：ItemID, Name, Category, Description, Price, SupplierID
type ItemRequest struct {
	ItemID      int     `json:"ItemID"`
	Name        string  `json:"Name" binding:"required"`
	Category    string  `json:"Category" binding:"required"`
	Description string  `json:"Description"`
	Price       float64 `json:"Price"`
	SupplierID  int     `json:"SupplierID"`
}

func (r ItemRequest) ToModel() (model.Item, error) {
	return model.Item{
		ItemID:      r.ItemID,
		Name:        r.Name,
		Category:    r.Category,
		Description: r.Description,
		Price:       r.Price,
		SupplierID:  r.SupplierID,
	}, nil
}

// ==================== Discount ====================

// DiscountRequest 折扣创建/编辑请求
// 白名单：ItemID, Percentage, StartDate, EndDate, QuantityUsed, UsageLimit
type DiscountRequest struct {
	ItemID       int     `json:"ItemID" binding:"required"`
	Percentage   float64 `json:"Percentage" binding:"required"`
	StartDate    string  `json:"StartDate" binding:"required"`
	EndDate      string  `json:"EndDate" binding:"required"`
	QuantityUsed int     `json:"QuantityUsed"`
	UsageLimit   int     `json:"UsageLimit" binding:"required"`
}

func (r DiscountRequest) ToModel() (model.Discount, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return model.Discount{}, err
	}
	end, err := parseDate(r.EndDate)
	if err != nil {
		return model.Discount{}, err
	}
	return model.Discount{
		ItemID:       r.ItemID,
		Percentage:   r.Percentage,
		StartDate:    start,
		EndDate:      end,
		QuantityUsed: r.QuantityUsed,
		UsageLimit:   r.UsageLimit,
	}, nil
}
