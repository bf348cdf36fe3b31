package model

import "time"

// ==================== Supplier 供应商 ====================

// Supplier 供应商
type Supplier struct {
	SupplierID     int       `gorm:"column:SupplierID;primaryKey;autoIncrement"`
	Name           string    `gorm:"column:Name;size:100"`
	Email          string    `gorm:"column:Email;size:100"`
	PhoneNumber    string    `gorm:"column:PhoneNumber;size:20"`
	Address        string    `gorm:"column:Address;size:255"`
	DateOfCreation time.Time `gorm:"column:DateOfCreation;type:date"`
}

func (Supplier) TableName() string {
	return "Supplier"
}

func (s Supplier) RecordKey() []any {
	return []any{s.SupplierID}
}

// ==================== Item 商品 ====================

// Item 商品，由某个供应商供货
type Item struct {
	ItemID      int     `gorm:"column:ItemID;primaryKey;autoIncrement"`
	Name        string  `gorm:"column:Name;size:100"`
	Category    string  `gorm:"column:Category;size:50"`
	Description string  `gorm:"column:Description;type:text"`
	Price       float64 `gorm:"column:Price;type:decimal(10,2)"`
	SupplierID  int     `gorm:"column:SupplierID"`

	// 关联
	Supplier *Supplier `gorm:"foreignKey:SupplierID;references:SupplierID;constraint:OnDelete:RESTRICT" json:",omitempty"`
}

func (Item) TableName() string {
	return "Item"
}

func (i Item) RecordKey() []any {
	return []any{i.ItemID}
}

// ==================== Discount 折扣 ====================

// Discount 商品折扣，主键即 ItemID，每件商品至多一条
type Discount struct {
	ItemID       int       `gorm:"column:ItemID;primaryKey;autoIncrement:false"`
	Percentage   float64   `gorm:"column:Percentage;type:decimal(5,2)"`
	StartDate    time.Time `gorm:"column:StartDate;type:date"`
	EndDate      time.Time `gorm:"column:EndDate;type:date"`
	QuantityUsed int       `gorm:"column:QuantityUsed"`
	UsageLimit   int       `gorm:"column:UsageLimit"`

	// 关联
	Item *Item `gorm:"foreignKey:ItemID;references:ItemID;constraint:OnDelete:RESTRICT" json:",omitempty"`
}

func (Discount) TableName() string {
	return "Discount"
}

func (d Discount) RecordKey() []any {
	return []any{d.ItemID}
}
