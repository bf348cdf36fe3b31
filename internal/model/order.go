package model

import "time"

// ==================== Order 订单 ====================

// Order 订单
type Order struct {
	OrderID    int       `gorm:"column:OrderID;primaryKey;autoIncrement"`
	CustomerID int       `gorm:"column:CustomerID"`
	OrderDate  time.Time `gorm:"column:OrderDate;type:date"`

	// 关联
	Customer *Customer `gorm:"foreignKey:CustomerID;references:CustomerID;constraint:OnDelete:RESTRICT" json:",omitempty"`
}

func (Order) TableName() string {
	return "Order"
}

func (o Order) RecordKey() []any {
	return []any{o.OrderID}
}

// ==================== OrderItem 订单明细 ====================

// OrderItem 订单明细，复合主键 (OrderID, ItemID)
type OrderItem struct {
	OrderID  int `gorm:"column:OrderID;primaryKey;autoIncrement:false"`
	ItemID   int `gorm:"column:ItemID;primaryKey;autoIncrement:false"`
	Quantity int `gorm:"column:Quantity"`

	// 关联
	Order *Order `gorm:"foreignKey:OrderID;references:OrderID;constraint:OnDelete:RESTRICT" json:",omitempty"`
	Item  *Item  `gorm:"foreignKey:ItemID;references:ItemID;constraint:OnDelete:RESTRICT" json:",omitempty"`
}

func (OrderItem) TableName() string {
	return "OrderItem"
}

func (oi OrderItem) RecordKey() []any {
	return []any{oi.OrderID, oi.ItemID}
}

// ==================== Feedback 订单反馈 ====================

// Feedback 订单反馈，主键即 OrderID，每单至多一条
type Feedback struct {
	OrderID     int    `gorm:"column:OrderID;primaryKey;autoIncrement:false"`
	Rating      int    `gorm:"column:Rating"`
	Title       string `gorm:"column:Title;size:100"`
	Description string `gorm:"column:Description;type:text"`

	// 关联
	Order *Order `gorm:"foreignKey:OrderID;references:OrderID;constraint:OnDelete:RESTRICT" json:",omitempty"`
}

func (Feedback) TableName() string {
	return "Feedback"
}

func (f Feedback) RecordKey() []any {
	return []any{f.OrderID}
}

// ==================== Shipment 发货 ====================

// Shipment 发货记录，主键即 OrderID，每单至多一条
type Shipment struct {
	OrderID        int       `gorm:"column:OrderID;primaryKey;autoIncrement:false"`
	Date           time.Time `gorm:"column:Date;type:date"`
	Status         string    `gorm:"column:Status;size:50"`
	ShippingNumber string    `gorm:"column:ShippingNumber;size:20"`

	// 关联
	Order *Order `gorm:"foreignKey:OrderID;references:OrderID;constraint:OnDelete:RESTRICT" json:",omitempty"`
}

func (Shipment) TableName() string {
	return "Shipment"
}

func (s Shipment) RecordKey() []any {
	return []any{s.OrderID}
}

// ==================== Payment 支付 ====================

// Payment 支付记录，主键即 OrderID，每单至多一条
type Payment struct {
	OrderID   int       `gorm:"column:OrderID;primaryKey;autoIncrement:false"`
	Date      time.Time `gorm:"column:Date;type:date"`
	Amount    float64   `gorm:"column:Amount;type:decimal(10,2)"`
	Method    string    `gorm:"column:Method;size:50"`
	Completed bool      `gorm:"column:Completed"`

	// 关联
	Order *Order `gorm:"foreignKey:OrderID;references:OrderID;constraint:OnDelete:RESTRICT" json:",omitempty"`
}

func (Payment) TableName() string {
	return "Payment"
}

func (p Payment) RecordKey() []any {
	return []any{p.OrderID}
}

// ==================== Return 退货 ====================

// Return 退货记录，主键即 OrderID，结构上保证每单只能退一次
type Return struct {
	OrderID      int       `gorm:"column:OrderID;primaryKey;autoIncrement:false"`
	ReturnDate   time.Time `gorm:"column:ReturnDate;type:date"`
	ReturnReason string    `gorm:"column:ReturnReason;size:255"`

	// 关联
	Order *Order `gorm:"foreignKey:OrderID;references:OrderID;constraint:OnDelete:RESTRICT" json:",omitempty"`
}

func (Return) TableName() string {
	return "Return"
}

func (r Return) RecordKey() []any {
	return []any{r.OrderID}
}
