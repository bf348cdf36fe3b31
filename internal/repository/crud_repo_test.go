package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"inventory_mgmt_v1_202608/internal/model"
)

// ==================== 测试辅助 ====================

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	// sqlite 默认不启用外键约束
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("启用外键约束失败: %v", err)
	}

	if err := db.AutoMigrate(model.AllModels()...); err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}

	return db
}

func mustCreate[T any](t *testing.T, repo *CrudRepository[T], rec *T) {
	t.Helper()
	if err := repo.Create(context.Background(), rec); err != nil {
		t.Fatalf("准备测试数据失败: %v", err)
	}
}

// seedSupplierAndItem 建一个供应商和一件商品，返回 ItemID
func seedSupplierAndItem(t *testing.T, db *gorm.DB) int {
	t.Helper()
	supplierRepo := NewCrudRepository[model.Supplier](db, []string{"SupplierID"})
	itemRepo := NewCrudRepository[model.Item](db, []string{"ItemID"})

	supplier := model.Supplier{
		Name:           "Acme Wholesale",
		Email:          "contact@acme.example",
		PhoneNumber:    "555-0100",
		Address:        "1 Depot Rd",
		DateOfCreation: time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	mustCreate(t, supplierRepo, &supplier)

	item := model.Item{
		Name:       "Canned Beans",
		Category:   "Grocery",
		Price:      2.49,
		SupplierID: supplier.SupplierID,
	}
	mustCreate(t, itemRepo, &item)
	return item.ItemID
}

func seedCustomer(t *testing.T, db *gorm.DB, name string) int {
	t.Helper()
	repo := NewCrudRepository[model.Customer](db, []string{"CustomerID"})
	customer := model.Customer{
		FullName:       name,
		Email:          "alice@example.com",
		PhoneNumber:    "555-0101",
		Address:        "2 Main St",
		DateOfCreation: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	mustCreate(t, repo, &customer)
	return customer.CustomerID
}

// ==================== 基础 CRUD ====================

func TestCrudRepo_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCrudRepository[model.Location](db, []string{"LocationID"})
	ctx := context.Background()

	loc := model.Location{Name: "Downtown Store", Address: "100 King St"}
	if err := repo.Create(ctx, &loc); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if loc.LocationID == 0 {
		t.Error("LocationID 应该被自动分配")
	}

	found, err := repo.Get(ctx, loc.LocationID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if found.Name != "Downtown Store" || found.Address != "100 King St" {
		t.Errorf("读回记录不等于写入值: %+v", found)
	}
}

func TestCrudRepo_GetMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCrudRepository[model.Location](db, []string{"LocationID"})

	_, err := repo.Get(context.Background(), 999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(缺失键) error = %v, want ErrNotFound", err)
	}
}

// 键分量数量不符按记录不存在处理
func TestCrudRepo_KeyArityMismatch(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCrudRepository[model.Cart](db, []string{"CustomerID", "ItemID"})

	_, err := repo.Get(context.Background(), 1)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(单分量) error = %v, want ErrNotFound", err)
	}
}

// ==================== 约束违反 ====================

// 复合主键重复插入必须失败而不是合并数量
// （记录原系统文档化但未实现的购物车合并规则缺口）
func TestCrudRepo_CartDuplicateKey(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	itemID := seedSupplierAndItem(t, db)
	customerID := seedCustomer(t, db, "Alice Chen")

	cartRepo := NewCrudRepository[model.Cart](db, []string{"CustomerID", "ItemID"})
	first := model.Cart{CustomerID: customerID, ItemID: itemID, Quantity: 1}
	if err := cartRepo.Create(ctx, &first); err != nil {
		t.Fatalf("第一次插入失败: %v", err)
	}

	second := model.Cart{CustomerID: customerID, ItemID: itemID, Quantity: 3}
	err := cartRepo.Create(ctx, &second)
	if !errors.Is(err, ErrConstraintViolation) {
		t.Errorf("重复插入 error = %v, want ErrConstraintViolation", err)
	}
}

// 外键指向不存在的父记录时插入失败
// 场景：顾客 → 订单 → 订单明细引用不存在的商品
func TestCrudRepo_OrderItemMissingItem(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	customerID := seedCustomer(t, db, "Alice Chen")

	orderRepo := NewCrudRepository[model.Order](db, []string{"OrderID"})
	order := model.Order{
		CustomerID: customerID,
		OrderDate:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := orderRepo.Create(ctx, &order); err != nil {
		t.Fatalf("创建订单失败: %v", err)
	}

	orderItemRepo := NewCrudRepository[model.OrderItem](db, []string{"OrderID", "ItemID"})
	orderItem := model.OrderItem{OrderID: order.OrderID, ItemID: 5, Quantity: 2}
	err := orderItemRepo.Create(ctx, &orderItem)
	if !errors.Is(err, ErrConstraintViolation) {
		t.Errorf("引用缺失商品 error = %v, want ErrConstraintViolation", err)
	}
}

// RESTRICT：仍被引用的父记录不可删除
func TestCrudRepo_DeleteReferencedSupplier(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	seedSupplierAndItem(t, db)

	supplierRepo := NewCrudRepository[model.Supplier](db, []string{"SupplierID"})
	err := supplierRepo.Delete(ctx, 1)
	if !errors.Is(err, ErrConstraintViolation) {
		t.Errorf("删除被引用供应商 error = %v, want ErrConstraintViolation", err)
	}
}

// ==================== 删除语义 ====================

func TestCrudRepo_DeleteMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCrudRepository[model.Location](db, []string{"LocationID"})

	err := repo.Delete(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete(缺失键) error = %v, want ErrNotFound", err)
	}
}

func TestCrudRepo_DeleteThenGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCrudRepository[model.Location](db, []string{"LocationID"})
	ctx := context.Background()

	loc := model.Location{Name: "Pop-up Store"}
	mustCreate(t, repo, &loc)

	if err := repo.Delete(ctx, loc.LocationID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := repo.Get(ctx, loc.LocationID); !errors.Is(err, ErrNotFound) {
		t.Errorf("删除后 Get() error = %v, want ErrNotFound", err)
	}
}

// ==================== 更新语义 ====================

func TestCrudRepo_UpdateMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCrudRepository[model.Location](db, []string{"LocationID"})

	rec := model.Location{LocationID: 7, Name: "Ghost Store"}
	err := repo.Update(context.Background(), &rec, 7)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Update(缺失键) error = %v, want ErrNotFound", err)
	}
}

// 整行替换：未提供的字段被清空而不是保留
func TestCrudRepo_UpdateFullReplacement(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCrudRepository[model.Location](db, []string{"LocationID"})
	ctx := context.Background()

	loc := model.Location{Name: "Downtown Store", Address: "100 King St"}
	mustCreate(t, repo, &loc)

	replacement := model.Location{LocationID: loc.LocationID, Name: "Uptown Store"}
	if err := repo.Update(ctx, &replacement, loc.LocationID); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	found, err := repo.Get(ctx, loc.LocationID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if found.Name != "Uptown Store" {
		t.Errorf("Name = %q, want Uptown Store", found.Name)
	}
	if found.Address != "" {
		t.Errorf("Address = %q, 整行替换应清空未提供字段", found.Address)
	}
}

// ==================== 预加载 ====================

func TestCrudRepo_ListPreloadsRelations(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	itemID := seedSupplierAndItem(t, db)
	customerID := seedCustomer(t, db, "Alice Chen")

	cartRepo := NewCrudRepository[model.Cart](db, []string{"CustomerID", "ItemID"}, "Customer", "Item")
	cart := model.Cart{CustomerID: customerID, ItemID: itemID, Quantity: 2}
	mustCreate(t, cartRepo, &cart)

	rows, err := cartRepo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
	if rows[0].Customer == nil || rows[0].Customer.FullName != "Alice Chen" {
		t.Errorf("Customer 关联未加载: %+v", rows[0].Customer)
	}
	if rows[0].Item == nil || rows[0].Item.Name != "Canned Beans" {
		t.Errorf("Item 关联未加载: %+v", rows[0].Item)
	}
}

// 未配置预加载时关联保持 nil，不崩溃
func TestCrudRepo_ListWithoutPreloads(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	locRepo := NewCrudRepository[model.Location](db, []string{"LocationID"})
	loc := model.Location{Name: "Downtown Store"}
	mustCreate(t, locRepo, &loc)

	empRepo := NewCrudRepository[model.Employee](db, []string{"EmployeeID"})
	emp := model.Employee{
		LocationID:  loc.LocationID,
		FullName:    "Bob Smith",
		Position:    "Clerk",
		Email:       "bob@example.com",
		PhoneNumber: "555-0102",
	}
	mustCreate(t, empRepo, &emp)

	rows, err := empRepo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
	if rows[0].Location != nil {
		t.Errorf("未配置预加载的关联应为 nil: %+v", rows[0].Location)
	}
}

func TestCrudRepo_GetDetailPreloadsRelations(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	itemID := seedSupplierAndItem(t, db)

	discountRepo := NewCrudRepository[model.Discount](db, []string{"ItemID"}, "Item")
	discount := model.Discount{
		ItemID:     itemID,
		Percentage: 10,
		StartDate:  time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC),
		UsageLimit: 100,
	}
	mustCreate(t, discountRepo, &discount)

	found, err := discountRepo.GetDetail(ctx, itemID)
	if err != nil {
		t.Fatalf("GetDetail() error = %v", err)
	}
	if found.Item == nil || found.Item.Name != "Canned Beans" {
		t.Errorf("Item 关联未加载: %+v", found.Item)
	}
}
