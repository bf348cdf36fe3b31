package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inventory_mgmt_v1_202608/internal/api/dto"
	"inventory_mgmt_v1_202608/internal/controller"
	"inventory_mgmt_v1_202608/internal/middleware"
	"inventory_mgmt_v1_202608/internal/model"
)

// ==================== 控制器集合 ====================

// Controllers 全部控制器
type Controllers struct {
	Location  *controller.LocationController
	Employee  *controller.CrudController[model.Employee, dto.EmployeeRequest]
	Supplier  *controller.CrudController[model.Supplier, dto.SupplierRequest]
	Item      *controller.CrudController[model.Item, dto.ItemRequest]
	Discount  *controller.CrudController[model.Discount, dto.DiscountRequest]
	Customer  *controller.CrudController[model.Customer, dto.CustomerRequest]
	Member    *controller.CrudController[model.Membership, dto.MembershipRequest]
	Cart      *controller.CrudController[model.Cart, dto.CartRequest]
	Review    *controller.CrudController[model.Review, dto.ReviewRequest]
	Order     *controller.CrudController[model.Order, dto.OrderRequest]
	OrderItem *controller.CrudController[model.OrderItem, dto.OrderItemRequest]
	Feedback  *controller.CrudController[model.Feedback, dto.FeedbackRequest]
	Shipment  *controller.CrudController[model.Shipment, dto.ShipmentRequest]
	Payment   *controller.CrudController[model.Payment, dto.PaymentRequest]
	Return    *controller.CrudController[model.Return, dto.ReturnRequest]
	Inventory *controller.CrudController[model.Inventory, dto.InventoryRequest]
	Expense   *controller.CrudController[model.Expense, dto.ExpenseRequest]
}

// ==================== 路由注册 ====================

// SetupRouter 创建引擎并注册全部路由
// 复合主键实体的路由带两个键参数，如 /api/carts/:customerId/:itemId
func SetupRouter(ctls *Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		ctls.Location.Register(api.Group("/locations"))
		ctls.Employee.Register(api.Group("/employees"))
		ctls.Supplier.Register(api.Group("/suppliers"))
		ctls.Item.Register(api.Group("/items"))
		ctls.Discount.Register(api.Group("/discounts"))
		ctls.Customer.Register(api.Group("/customers"))
		ctls.Member.Register(api.Group("/memberships"))
		ctls.Cart.Register(api.Group("/carts"))
		ctls.Review.Register(api.Group("/reviews"))
		ctls.Order.Register(api.Group("/orders"))
		ctls.OrderItem.Register(api.Group("/order-items"))
		ctls.Feedback.Register(api.Group("/feedback"))
		ctls.Shipment.Register(api.Group("/shipments"))
		ctls.Payment.Register(api.Group("/payments"))
		ctls.Return.Register(api.Group("/returns"))
		ctls.Inventory.Register(api.Group("/inventory"))
		ctls.Expense.Register(api.Group("/expenses"))
	}

	return r
}
