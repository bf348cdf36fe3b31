package service

import (
	"context"

	"inventory_mgmt_v1_202608/internal/model"
	"inventory_mgmt_v1_202608/internal/repository"
)

// ==================== RecordService 通用记录管理 ====================

// RecordService 泛型记录管理服务，每种实体各实例化一份
// 在仓库之上补充与存储无关的键校验语义
type RecordService[T model.Keyed] struct {
	repo *repository.CrudRepository[T]
}

// NewRecordService 创建记录管理服务
func NewRecordService[T model.Keyed](repo *repository.CrudRepository[T]) *RecordService[T] {
	return &RecordService[T]{repo: repo}
}

// List 全部记录，关联实体一并加载
func (s *RecordService[T]) List(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx)
}

// Get 按键取详情，关联实体一并加载
func (s *RecordService[T]) Get(ctx context.Context, key ...any) (*T, error) {
	return s.repo.GetDetail(ctx, key...)
}

// Create 插入新记录，字段已由请求绑定层按白名单裁剪
func (s *RecordService[T]) Create(ctx context.Context, rec *T) error {
	return s.repo.Create(ctx, rec)
}

// Update 整行替换
// 路由键与记录内嵌键不一致时直接返回 ErrNotFound，不触碰存储；
// 与原系统一致，无论路由键是否真实存在
func (s *RecordService[T]) Update(ctx context.Context, rec *T, key ...any) error {
	if !keysEqual(key, (*rec).RecordKey()) {
		return repository.ErrNotFound
	}
	return s.repo.Update(ctx, rec, key...)
}

// Delete 先取后删
// 记录不存在返回 ErrNotFound，删除缺失键永远不是静默无操作
func (s *RecordService[T]) Delete(ctx context.Context, key ...any) error {
	if _, err := s.repo.Get(ctx, key...); err != nil {
		return err
	}
	return s.repo.Delete(ctx, key...)
}

// keysEqual 逐分量比较路由键与记录键
func keysEqual(routeKey, recordKey []any) bool {
	if len(routeKey) != len(recordKey) {
		return false
	}
	for i := range routeKey {
		if routeKey[i] != recordKey[i] {
			return false
		}
	}
	return true
}
