package dto

import "inventory_mgmt_v1_202608/internal/model"

// ==================== Customer ====================

// CustomerRequest 顾客创建/编辑请求
// 白名单：CustomerID, FullName, Email, PhoneNumber, Address, DateOfCreation
type CustomerRequest struct {
	CustomerID     int    `json:"CustomerID"`
	FullName       string `json:"FullName" binding:"required"`
	Email          string `json:"Email" binding:"required,email"`
	PhoneNumber    string `json:"PhoneNumber" binding:"required"`
	Address        string `json:"Address" binding:"required"`
	DateOfCreation string `json:"DateOfCreation" binding:"required"`
}

func (r CustomerRequest) ToModel() (model.Customer, error) {
	created, err := parseDate(r.DateOfCreation)
	if err != nil {
		return model.Customer{}, err
	}
	return model.Customer{
		CustomerID:     r.CustomerID,
		FullName:       r.FullName,
		Email:          r.Email,
		PhoneNumber:    r.PhoneNumber,
		Address:        r.Address,
		DateOfCreation: created,
	}, nil
}

// ==================== Membership ====================

// MembershipRequest 会员资格创建/编辑请求
// 白名单：CustomerID, MembershipType, StartDate, EndDate
type MembershipRequest struct {
	CustomerID     int    `json:"CustomerID" binding:"required"`
	MembershipType string `json:"MembershipType" binding:"required"`
	StartDate      string `json:"StartDate"`
	EndDate        string `json:"EndDate"`
}

func (r MembershipRequest) ToModel() (model.Membership, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return model.Membership{}, err
	}
	end, err := parseDate(r.EndDate)
	if err != nil {
		return model.Membership{}, err
	}
	return model.Membership{
		CustomerID:     r.CustomerID,
		MembershipType: r.MembershipType,
		StartDate:      start,
		EndDate:        end,
	}, nil
}

// ==================== Cart ====================

// CartRequest 购物车创建/编辑请求
// 白名单：CustomerID, ItemID, Quantity
type CartRequest struct {
	CustomerID int `json:"CustomerID" binding:"required"`
	ItemID     int `json:"ItemID" binding:"required"`
	Quantity   int `json:"Quantity" binding:"required,gt=0"`
}

func (r CartRequest) ToModel() (model.Cart, error) {
	return model.Cart{
		CustomerID: r.CustomerID,
		ItemID:     r.ItemID,
		Quantity:   r.Quantity,
	}, nil
}

// ==================== Review ====================

// ReviewRequest 评价创建/编辑请求
// 白名单：CustomerID, ItemID, Rating, Description
type ReviewRequest struct {
	CustomerID  int    `json:"CustomerID" binding:"required"`
	ItemID      int    `json:"ItemID" binding:"required"`
	Rating      int    `json:"Rating" binding:"required"`
	Description string `json:"Description"`
}

func (r ReviewRequest) ToModel() (model.Review, error) {
	return model.Review{
		CustomerID:  r.CustomerID,
		ItemID:      r.ItemID,
		Rating:      r.Rating,
		Description: r.Description,
	}, nil
}
