package model

// Keyed 可按主键定位的记录
// 标量主键返回单元素切片，复合主键按列声明顺序返回
type Keyed interface {
	RecordKey() []any
}

// AllModels 返回全部模型指针，用于 AutoMigrate
// 注意顺序：被引用的父表必须先于子表建表
func AllModels() []interface{} {
	return []interface{}{
		// 1. 无外键的独立表
		&Location{},
		&Supplier{},
		&Customer{},

		// 2. 单外键表
		&Employee{},   // -> Location
		&Item{},       // -> Supplier
		&Discount{},   // -> Item（主键即 ItemID）
		&Membership{}, // -> Customer（主键即 CustomerID）
		&Order{},      // -> Customer

		// 3. 双外键/复合主键表
		&Expense{},   // -> Location, Item
		&Inventory{}, // -> Location, Item
		&Review{},    // -> Customer, Item
		&Cart{},      // -> Customer, Item
		&OrderItem{}, // -> Order, Item

		// 4. Order 的 1:1 子表
		&Feedback{},
		&Shipment{},
		&Payment{},
		&Return{},
	}
}
