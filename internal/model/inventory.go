package model

import "time"

// ==================== Inventory 库存 ====================

// Inventory 库存行，复合主键 (LocationID, ItemID)，每个位置每件商品一行
type Inventory struct {
	LocationID      int `gorm:"column:LocationID;primaryKey;autoIncrement:false"`
	ItemID          int `gorm:"column:ItemID;primaryKey;autoIncrement:false"`
	ReorderQuantity int `gorm:"column:ReorderQuantity"`
	ReorderLevel    int `gorm:"column:ReorderLevel"`

	// 关联
	Location *Location `gorm:"foreignKey:LocationID;references:LocationID;constraint:OnDelete:RESTRICT" json:",omitempty"`
	Item     *Item     `gorm:"foreignKey:ItemID;references:ItemID;constraint:OnDelete:RESTRICT" json:",omitempty"`
}

func (Inventory) TableName() string {
	return "Inventory"
}

func (i Inventory) RecordKey() []any {
	return []any{i.LocationID, i.ItemID}
}

// ==================== Expense 支出 ====================

// Expense 支出记录
type Expense struct {
	ExpenseID  int       `gorm:"column:ExpenseID;primaryKey;autoIncrement"`
	LocationID int       `gorm:"column:LocationID"`
	ItemID     int       `gorm:"column:ItemID"`
	Date       time.Time `gorm:"column:Date;type:date"`
	Quantity   int       `gorm:"column:Quantity"`
	Method     string    `gorm:"column:Method;size:50"`
	Completed  bool      `gorm:"column:Completed"`

	// 关联
	Location *Location `gorm:"foreignKey:LocationID;references:LocationID;constraint:OnDelete:RESTRICT" json:",omitempty"`
	Item     *Item     `gorm:"foreignKey:ItemID;references:ItemID;constraint:OnDelete:RESTRICT" json:",omitempty"`
}

func (Expense) TableName() string {
	return "Expense"
}

func (e Expense) RecordKey() []any {
	return []any{e.ExpenseID}
}
