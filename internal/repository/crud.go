package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// ==================== CrudRepository 通用仓库 ====================

// CrudRepository 泛型 CRUD 仓库，绑定一种实体及其键形状
// 十七张表共用同一份实现，键列与预加载关系在构造时给定
type CrudRepository[T any] struct {
	db       *gorm.DB
	keyCols  []string
	preloads []string
}

// NewCrudRepository 创建仓库
// keyCols: 主键列名，复合主键按声明顺序
// preloads: 列表/详情需要同时加载的关联字段名
func NewCrudRepository[T any](db *gorm.DB, keyCols []string, preloads ...string) *CrudRepository[T] {
	return &CrudRepository[T]{db: db, keyCols: keyCols, preloads: preloads}
}

// keyCondition 将路由键组装为按列匹配的查询条件
// 键分量数量不符（缺失分量）按记录不存在处理
func (r *CrudRepository[T]) keyCondition(key []any) (map[string]interface{}, error) {
	if len(key) != len(r.keyCols) {
		return nil, ErrNotFound
	}
	cond := make(map[string]interface{}, len(r.keyCols))
	for i, col := range r.keyCols {
		cond[col] = key[i]
	}
	return cond, nil
}

// withPreloads 附加全部预加载关系
func (r *CrudRepository[T]) withPreloads(tx *gorm.DB) *gorm.DB {
	for _, p := range r.preloads {
		tx = tx.Preload(p)
	}
	return tx
}

// List 返回全部记录，关联实体一并加载
func (r *CrudRepository[T]) List(ctx context.Context) ([]T, error) {
	var rows []T
	if err := r.withPreloads(r.db.WithContext(ctx)).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("查询列表失败: %w", translateError(err))
	}
	return rows, nil
}

// Get 按主键取单条记录，不加载关联
func (r *CrudRepository[T]) Get(ctx context.Context, key ...any) (*T, error) {
	cond, err := r.keyCondition(key)
	if err != nil {
		return nil, err
	}
	var row T
	if err := r.db.WithContext(ctx).Where(cond).First(&row).Error; err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}

// GetDetail 按主键取单条记录，关联实体一并加载
func (r *CrudRepository[T]) GetDetail(ctx context.Context, key ...any) (*T, error) {
	cond, err := r.keyCondition(key)
	if err != nil {
		return nil, err
	}
	var row T
	if err := r.withPreloads(r.db.WithContext(ctx)).Where(cond).First(&row).Error; err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}

// Create 插入一条记录
// 外键指向不存在的父记录或主键重复时返回 ErrConstraintViolation
func (r *CrudRepository[T]) Create(ctx context.Context, rec *T) error {
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// Update 按主键整行替换（非局部补丁），键列本身不更新
// 没有行受影响时重查存在性：行已消失返回 ErrNotFound，仍在则按并发冲突上抛
func (r *CrudRepository[T]) Update(ctx context.Context, rec *T, key ...any) error {
	cond, err := r.keyCondition(key)
	if err != nil {
		return err
	}
	res := r.db.WithContext(ctx).
		Model(new(T)).
		Where(cond).
		Select("*").
		Omit(r.keyCols...).
		Updates(rec)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		if _, err := r.Get(ctx, key...); err != nil {
			return err
		}
		return ErrConflict
	}
	return nil
}

// Delete 按主键删除
// 记录不存在返回 ErrNotFound，绝不静默跳过；
// 仍被引用的记录因 RESTRICT 约束返回 ErrConstraintViolation
func (r *CrudRepository[T]) Delete(ctx context.Context, key ...any) error {
	cond, err := r.keyCondition(key)
	if err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Where(cond).Delete(new(T))
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
