package model

import "time"

// ==================== Customer 顾客 ====================

// Customer 顾客
type Customer struct {
	CustomerID     int       `gorm:"column:CustomerID;primaryKey;autoIncrement"`
	FullName       string    `gorm:"column:FullName;size:100"`
	Email          string    `gorm:"column:Email;size:100"`
	PhoneNumber    string    `gorm:"column:PhoneNumber;size:20"`
	Address        string    `gorm:"column:Address;size:255"`
	DateOfCreation time.Time `gorm:"column:DateOfCreation;type:date"`
}

func (Customer) TableName() string {
	return "Customer"
}

func (c Customer) RecordKey() []any {
	return []any{c.CustomerID}
}

// ==================== Membership 会员资格 ====================

// Membership 会员资格，主键即 CustomerID，每名顾客至多一条
type Membership struct {
	CustomerID     int       `gorm:"column:CustomerID;primaryKey;autoIncrement:false"`
	MembershipType string    `gorm:"column:MembershipType;size:50"`
	StartDate      time.Time `gorm:"column:StartDate;type:date"`
	EndDate        time.Time `gorm:"column:EndDate;type:date"`

	// 关联
	Customer *Customer `gorm:"foreignKey:CustomerID;references:CustomerID;constraint:OnDelete:RESTRICT" json:",omitempty"`
}

func (Membership) TableName() string {
	return "Membership"
}

func (m Membership) RecordKey() []any {
	return []any{m.CustomerID}
}

// ==================== Cart 购物车 ====================

// Cart 购物车行，复合主键 (CustomerID, ItemID)，每人每件商品一行
// 重复加购同一商品由主键约束拒绝，不做数量合并
type Cart struct {
	CustomerID int `gorm:"column:CustomerID;primaryKey;autoIncrement:false"`
	ItemID     int `gorm:"column:ItemID;primaryKey;autoIncrement:false"`
	Quantity   int `gorm:"column:Quantity"`

	// 关联
	Customer *Customer `gorm:"foreignKey:CustomerID;references:CustomerID;constraint:OnDelete:RESTRICT" json:",omitempty"`
	Item     *Item     `gorm:"foreignKey:ItemID;references:ItemID;constraint:OnDelete:RESTRICT" json:",omitempty"`
}

func (Cart) TableName() string {
	return "Cart"
}

func (c Cart) RecordKey() []any {
	return []any{c.CustomerID, c.ItemID}
}

// ==================== Review 评价 ====================

// Review 商品评价，复合主键 (CustomerID, ItemID)，每人每件商品至多一条
type Review struct {
	CustomerID  int    `gorm:"column:CustomerID;primaryKey;autoIncrement:false"`
	ItemID      int    `gorm:"column:ItemID;primaryKey;autoIncrement:false"`
	Rating      int    `gorm:"column:Rating"`
	Description string `gorm:"column:Description;type:text"`

	// 关联
	Customer *Customer `gorm:"foreignKey:CustomerID;references:CustomerID;constraint:OnDelete:RESTRICT" json:",omitempty"`
	Item     *Item     `gorm:"foreignKey:ItemID;references:ItemID;constraint:OnDelete:RESTRICT" json:",omitempty"`
}

func (Review) TableName() string {
	return "Review"
}

func (r Review) RecordKey() []any {
	return []any{r.CustomerID, r.ItemID}
}
