package dto

import "inventory_mgmt_v1_202608/internal/model"

// ==================== Order ====================

// OrderRequest 订单创建/编辑请求
// 白名单：OrderID, CustomerID, OrderDate
type OrderRequest struct {
	OrderID    int    `json:"OrderID"`
	CustomerID int    `json:"CustomerID"`
	OrderDate  string `json:"OrderDate"`
}

func (r OrderRequest) ToModel() (model.Order, error) {
	date, err := parseDate(r.OrderDate)
	if err != nil {
		return model.Order{}, err
	}
	return model.Order{
		OrderID:    r.OrderID,
		CustomerID: r.CustomerID,
		OrderDate:  date,
	}, nil
}

// ==================== OrderItem ====================

// OrderItemRequest 订单明细创建/编辑请求
// 白名单：OrderID, ItemID, Quantity
type OrderItemRequest struct {
	OrderID  int `json:"OrderID" binding:"required"`
	ItemID   int `json:"ItemID" binding:"required"`
	Quantity int `json:"Quantity" binding:"required"`
}

func (r OrderItemRequest) ToModel() (model.OrderItem, error) {
	return model.OrderItem{
		OrderID:  r.OrderID,
		ItemID:   r.ItemID,
		Quantity: r.Quantity,
	}, nil
}

// ==================== Feedback ====================

// FeedbackRequest 订单反馈创建/编辑请求
// 白名单：OrderID, Rating, Title, Description
type FeedbackRequest struct {
	OrderID     int    `json:"OrderID" binding:"required"`
	Rating      int    `json:"Rating" binding:"required"`
	Title       string `json:"Title" binding:"required"`
	Description string `json:"Description" binding:"required"`
}

func (r FeedbackRequest) ToModel() (model.Feedback, error) {
	return model.Feedback{
		OrderID:     r.OrderID,
		Rating:      r.Rating,
		Title:       r.Title,
		Description: r.Description,
	}, nil
}

// ==================== Shipment ====================

// ShipmentRequest 发货创建/编辑请求
// 白名单：OrderID, Date, Status, ShippingNumber
type ShipmentRequest struct {
	OrderID        int    `json:"OrderID" binding:"required"`
	Date           string `json:"Date" binding:"required"`
	Status         string `json:"Status" binding:"required"`
	ShippingNumber string `json:"ShippingNumber" binding:"required"`
}

func (r ShipmentRequest) ToModel() (model.Shipment, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return model.Shipment{}, err
	}
	return model.Shipment{
		OrderID:        r.OrderID,
		Date:           date,
		Status:         r.Status,
		ShippingNumber: r.ShippingNumber,
	}, nil
}

// ==================== Payment ====================

// PaymentRequest 支付创建/编辑请求
// 白名单：OrderID, Date, Amount, Method, Completed
type PaymentRequest struct {
	OrderID   int     `json:"OrderID" binding:"required"`
	Date      string  `json:"Date" binding:"required"`
	Amount    float64 `json:"Amount" binding:"required"`
	Method    string  `json:"Method" binding:"required"`
	Completed bool    `json:"Completed"`
}

func (r PaymentRequest) ToModel() (model.Payment, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return model.Payment{}, err
	}
	return model.Payment{
		OrderID:   r.OrderID,
		Date:      date,
		Amount:    r.Amount,
		Method:    r.Method,
		Completed: r.Completed,
	}, nil
}

// ==================== Return ====================

// ReturnRequest 退货创建/编辑请求
// 白名单：OrderID, ReturnDate, ReturnReason
type ReturnRequest struct {
	OrderID      int    `json:"OrderID" binding:"required"`
	ReturnDate   string `json:"ReturnDate"`
	ReturnReason string `json:"ReturnReason"`
}

func (r ReturnRequest) ToModel() (model.Return, error) {
	date, err := parseDate(r.ReturnDate)
	if err != nil {
		return model.Return{}, err
	}
	return model.Return{
		OrderID:      r.OrderID,
		ReturnDate:   date,
		ReturnReason: r.ReturnReason,
	}, nil
}
