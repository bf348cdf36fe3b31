package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"inventory_mgmt_v1_202608/internal/model"
	"inventory_mgmt_v1_202608/internal/repository"
	"inventory_mgmt_v1_202608/internal/service"
)

// ==================== 请求绑定 ====================

// Binder 请求结构 → 模型的转换约束
// 转换失败（如日期格式错误）按参数错误处理
type Binder[T any] interface {
	ToModel() (T, error)
}

// ==================== CrudController 通用控制器 ====================

// CrudController 泛型 CRUD 控制器，每种实体各实例化一份
// T 为实体模型，R 为该实体的请求结构（字段白名单）
type CrudController[T model.Keyed, R Binder[T]] struct {
	svc       *service.RecordService[T]
	keyParams []string
}

// NewCrudController 创建控制器
// keyParams: 路由键参数名，复合主键传两个，如 "customerId", "itemId"
func NewCrudController[T model.Keyed, R Binder[T]](svc *service.RecordService[T], keyParams ...string) *CrudController[T, R] {
	return &CrudController[T, R]{svc: svc, keyParams: keyParams}
}

// Register 注册五个标准路由
func (c *CrudController[T, R]) Register(rg *gin.RouterGroup) {
	keyPath := c.keyPath()
	rg.GET("", c.List)
	rg.GET(keyPath, c.Detail)
	rg.POST("", c.Create)
	rg.PUT(keyPath, c.Update)
	rg.DELETE(keyPath, c.Delete)
}

func (c *CrudController[T, R]) keyPath() string {
	path := ""
	for _, p := range c.keyParams {
		path += "/:" + p
	}
	return path
}

// parseKey 解析路由键
// 键分量缺失或非数字时按记录不存在返回 404，与原系统行为一致
func (c *CrudController[T, R]) parseKey(ctx *gin.Context) ([]any, bool) {
	key := make([]any, 0, len(c.keyParams))
	for _, p := range c.keyParams {
		v, err := strconv.Atoi(ctx.Param(p))
		if err != nil {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "记录不存在"})
			return nil, false
		}
		key = append(key, v)
	}
	return key, true
}

// List 列表
// GET /api/<entity>
func (c *CrudController[T, R]) List(ctx *gin.Context) {
	rows, err := c.svc.List(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": rows})
}

// Detail 详情
// GET /api/<entity>/:key...
func (c *CrudController[T, R]) Detail(ctx *gin.Context) {
	key, ok := c.parseKey(ctx)
	if !ok {
		return
	}
	row, err := c.svc.Get(ctx, key...)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": row})
}

// Create 创建
// POST /api/<entity>
func (c *CrudController[T, R]) Create(ctx *gin.Context) {
	var req R
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rec, err := req.ToModel()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := c.svc.Create(ctx, &rec); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"data": rec})
}

// Update 整行替换
// PUT /api/<entity>/:key...
func (c *CrudController[T, R]) Update(ctx *gin.Context) {
	key, ok := c.parseKey(ctx)
	if !ok {
		return
	}
	var req R
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rec, err := req.ToModel()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := c.svc.Update(ctx, &rec, key...); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": rec})
}

// Delete 删除
// DELETE /api/<entity>/:key...
func (c *CrudController[T, R]) Delete(ctx *gin.Context) {
	key, ok := c.parseKey(ctx)
	if !ok {
		return
	}
	if err := c.svc.Delete(ctx, key...); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "记录已删除"})
}

// ==================== 错误响应 ====================

// respondError 存储层错误 → HTTP 状态码
// 错误直接上抛给调用方，不重试也不吞掉
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "记录不存在"})
	case errors.Is(err, repository.ErrConstraintViolation):
		ctx.JSON(http.StatusConflict, gin.H{"error": "违反主键或外键约束"})
	case errors.Is(err, repository.ErrConflict):
		ctx.JSON(http.StatusConflict, gin.H{"error": "记录已被并发修改"})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
