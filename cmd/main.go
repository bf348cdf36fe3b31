package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"inventory_mgmt_v1_202608/internal/api/dto"
	"inventory_mgmt_v1_202608/internal/config"
	"inventory_mgmt_v1_202608/internal/controller"
	"inventory_mgmt_v1_202608/internal/model"
	"inventory_mgmt_v1_202608/internal/repository"
	"inventory_mgmt_v1_202608/internal/router"
	"inventory_mgmt_v1_202608/internal/service"
	"inventory_mgmt_v1_202608/pkg/database"
)

func main() {
	// 1. 加载配置
	cfg := config.Load()

	// 2. 初始化数据库
	db := database.InitDB(cfg.Database.GetDSN(), model.AllModels()...)

	// 3. 初始化依赖
	deps := initDependencies(db)

	// 4. 初始化路由
	r := router.SetupRouter(deps.Controllers)

	// 5. 启动服务
	startServer(r, cfg.Server.Port)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Repos       *Repositories
	Services    *Services
	Controllers *router.Controllers
}

// Repositories 仓库集合，每种实体一份，绑定键列与预加载关系
type Repositories struct {
	Location  *repository.LocationRepository
	Employee  *repository.CrudRepository[model.Employee]
	Supplier  *repository.CrudRepository[model.Supplier]
	Item      *repository.CrudRepository[model.Item]
	Discount  *repository.CrudRepository[model.Discount]
	Customer  *repository.CrudRepository[model.Customer]
	Member    *repository.CrudRepository[model.Membership]
	Cart      *repository.CrudRepository[model.Cart]
	Review    *repository.CrudRepository[model.Review]
	Order     *repository.CrudRepository[model.Order]
	OrderItem *repository.CrudRepository[model.OrderItem]
	Feedback  *repository.CrudRepository[model.Feedback]
	Shipment  *repository.CrudRepository[model.Shipment]
	Payment   *repository.CrudRepository[model.Payment]
	Return    *repository.CrudRepository[model.Return]
	Inventory *repository.CrudRepository[model.Inventory]
	Expense   *repository.CrudRepository[model.Expense]
}

// Services 服务集合
type Services struct {
	Location  *service.LocationService
	Employee  *service.RecordService[model.Employee]
	Supplier  *service.RecordService[model.Supplier]
	Item      *service.RecordService[model.Item]
	Discount  *service.RecordService[model.Discount]
	Customer  *service.RecordService[model.Customer]
	Member    *service.RecordService[model.Membership]
	Cart      *service.RecordService[model.Cart]
	Review    *service.RecordService[model.Review]
	Order     *service.RecordService[model.Order]
	OrderItem *service.RecordService[model.OrderItem]
	Feedback  *service.RecordService[model.Feedback]
	Shipment  *service.RecordService[model.Shipment]
	Payment   *service.RecordService[model.Payment]
	Return    *service.RecordService[model.Return]
	Inventory *service.RecordService[model.Inventory]
	Expense   *service.RecordService[model.Expense]
}

// ==================== 初始化函数 ====================

// initDependencies 初始化所有依赖
func initDependencies(db *gorm.DB) *Dependencies {
	repos := initRepositories(db)
	services := initServices(repos)
	controllers := initControllers(services)

	return &Dependencies{
		DB:          db,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
	}
}

// initRepositories 初始化所有仓库
// 预加载关系与原系统各列表/详情视图的关联加载一致
func initRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Location:  repository.NewLocationRepository(db),
		Employee:  repository.NewCrudRepository[model.Employee](db, []string{"EmployeeID"}),
		Supplier:  repository.NewCrudRepository[model.Supplier](db, []string{"SupplierID"}),
		Item:      repository.NewCrudRepository[model.Item](db, []string{"ItemID"}, "Supplier"),
		Discount:  repository.NewCrudRepository[model.Discount](db, []string{"ItemID"}, "Item"),
		Customer:  repository.NewCrudRepository[model.Customer](db, []string{"CustomerID"}),
		Member:    repository.NewCrudRepository[model.Membership](db, []string{"CustomerID"}, "Customer"),
		Cart:      repository.NewCrudRepository[model.Cart](db, []string{"CustomerID", "ItemID"}, "Customer", "Item"),
		Review:    repository.NewCrudRepository[model.Review](db, []string{"CustomerID", "ItemID"}, "Customer", "Item"),
		Order:     repository.NewCrudRepository[model.Order](db, []string{"OrderID"}, "Customer"),
		OrderItem: repository.NewCrudRepository[model.OrderItem](db, []string{"OrderID", "ItemID"}, "Order", "Item"),
		Feedback:  repository.NewCrudRepository[model.Feedback](db, []string{"OrderID"}, "Order"),
		Shipment:  repository.NewCrudRepository[model.Shipment](db, []string{"OrderID"}, "Order"),
		Payment:   repository.NewCrudRepository[model.Payment](db, []string{"OrderID"}, "Order"),
		Return:    repository.NewCrudRepository[model.Return](db, []string{"OrderID"}),
		Inventory: repository.NewCrudRepository[model.Inventory](db, []string{"LocationID", "ItemID"}, "Location", "Item"),
		Expense:   repository.NewCrudRepository[model.Expense](db, []string{"ExpenseID"}),
	}
}

// initServices 初始化所有服务
func initServices(repos *Repositories) *Services {
	return &Services{
		Location:  service.NewLocationService(repos.Location),
		Employee:  service.NewRecordService(repos.Employee),
		Supplier:  service.NewRecordService(repos.Supplier),
		Item:      service.NewRecordService(repos.Item),
		Discount:  service.NewRecordService(repos.Discount),
		Customer:  service.NewRecordService(repos.Customer),
		Member:    service.NewRecordService(repos.Member),
		Cart:      service.NewRecordService(repos.Cart),
		Review:    service.NewRecordService(repos.Review),
		Order:     service.NewRecordService(repos.Order),
		OrderItem: service.NewRecordService(repos.OrderItem),
		Feedback:  service.NewRecordService(repos.Feedback),
		Shipment:  service.NewRecordService(repos.Shipment),
		Payment:   service.NewRecordService(repos.Payment),
		Return:    service.NewRecordService(repos.Return),
		Inventory: service.NewRecordService(repos.Inventory),
		Expense:   service.NewRecordService(repos.Expense),
	}
}

// initControllers 初始化所有控制器
// 复合主键实体的路由键参数为两段
func initControllers(svc *Services) *router.Controllers {
	return &router.Controllers{
		Location:  controller.NewLocationController(svc.Location),
		Employee:  controller.NewCrudController[model.Employee, dto.EmployeeRequest](svc.Employee, "id"),
		Supplier:  controller.NewCrudController[model.Supplier, dto.SupplierRequest](svc.Supplier, "id"),
		Item:      controller.NewCrudController[model.Item, dto.ItemRequest](svc.Item, "id"),
		Discount:  controller.NewCrudController[model.Discount, dto.DiscountRequest](svc.Discount, "itemId"),
		Customer:  controller.NewCrudController[model.Customer, dto.CustomerRequest](svc.Customer, "id"),
		Member:    controller.NewCrudController[model.Membership, dto.MembershipRequest](svc.Member, "customerId"),
		Cart:      controller.NewCrudController[model.Cart, dto.CartRequest](svc.Cart, "customerId", "itemId"),
		Review:    controller.NewCrudController[model.Review, dto.ReviewRequest](svc.Review, "customerId", "itemId"),
		Order:     controller.NewCrudController[model.Order, dto.OrderRequest](svc.Order, "id"),
		OrderItem: controller.NewCrudController[model.OrderItem, dto.OrderItemRequest](svc.OrderItem, "orderId", "itemId"),
		Feedback:  controller.NewCrudController[model.Feedback, dto.FeedbackRequest](svc.Feedback, "orderId"),
		Shipment:  controller.NewCrudController[model.Shipment, dto.ShipmentRequest](svc.Shipment, "orderId"),
		Payment:   controller.NewCrudController[model.Payment, dto.PaymentRequest](svc.Payment, "orderId"),
		Return:    controller.NewCrudController[model.Return, dto.ReturnRequest](svc.Return, "orderId"),
		Inventory: controller.NewCrudController[model.Inventory, dto.InventoryRequest](svc.Inventory, "locationId", "itemId"),
		Expense:   controller.NewCrudController[model.Expense, dto.ExpenseRequest](svc.Expense, "id"),
	}
}

// ==================== 服务启动 ====================

// startServer 启动服务并等待退出信号
func startServer(r *gin.Engine, port string) {
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// 异步启动服务
	go func() {
		log.Printf("服务启动在 :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在关闭服务...")

	// 优雅关闭，最多等待 30 秒
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务强制关闭: %v", err)
	}

	log.Println("服务已退出")
}
