package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"inventory_mgmt_v1_202608/internal/api/dto"
	"inventory_mgmt_v1_202608/internal/model"
	"inventory_mgmt_v1_202608/internal/service"
)

// ==================== LocationController 位置控制器 ====================

// LocationController 位置控制器
// 详情接口返回聚合视图（位置 + 员工 + 库存），其余沿用通用 CRUD
type LocationController struct {
	*CrudController[model.Location, dto.LocationRequest]
	svc *service.LocationService
}

// NewLocationController 创建位置控制器
func NewLocationController(svc *service.LocationService) *LocationController {
	return &LocationController{
		CrudController: NewCrudController[model.Location, dto.LocationRequest](svc.RecordService, "id"),
		svc:            svc,
	}
}

// Register 注册路由，详情路由指向聚合视图
func (c *LocationController) Register(rg *gin.RouterGroup) {
	rg.GET("", c.List)
	rg.GET("/:id", c.Detail)
	rg.POST("", c.Create)
	rg.PUT("/:id", c.Update)
	rg.DELETE("/:id", c.Delete)
}

// Detail 位置详情聚合
// GET /api/locations/:id
func (c *LocationController) Detail(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "记录不存在"})
		return
	}
	detail, err := c.svc.Detail(ctx, id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": detail})
}
