package model

// ==================== Location 位置 ====================

// Location 门店/仓库位置
type Location struct {
	LocationID int    `gorm:"column:LocationID;primaryKey;autoIncrement"`
	Name       string `gorm:"column:Name;size:100"`
	Address    string `gorm:"column:Address;size:255"`
}

func (Location) TableName() string {
	return "Location"
}

func (l Location) RecordKey() []any {
	return []any{l.LocationID}
}

// ==================== Employee 员工 ====================

// Employee 员工，隶属于某个位置
type Employee struct {
	EmployeeID  int    `gorm:"column:EmployeeID;primaryKey;autoIncrement"`
	LocationID  int    `gorm:"column:LocationID"`
	FullName    string `gorm:"column:FullName;size:100"`
	Position    string `gorm:"column:Position;size:50"`
	Email       string `gorm:"column:Email;size:100"`
	PhoneNumber string `gorm:"column:PhoneNumber;size:20"`

	// 关联
	Location *Location `gorm:"foreignKey:LocationID;references:LocationID;constraint:OnDelete:RESTRICT" json:",omitempty"`
}

func (Employee) TableName() string {
	return "Employee"
}

func (e Employee) RecordKey() []any {
	return []any{e.EmployeeID}
}
