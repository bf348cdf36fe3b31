package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ==================== 错误分类 ====================

// 存储层统一错误，上层只依赖这三类
var (
	// ErrNotFound 按键读取/更新/删除时记录不存在
	ErrNotFound = errors.New("record not found")
	// ErrConstraintViolation 写入违反主键或外键约束
	ErrConstraintViolation = errors.New("constraint violation")
	// ErrConflict 乐观并发冲突，行在本次写之前被并发修改
	ErrConflict = errors.New("concurrency conflict")
)

// PostgreSQL SQLSTATE 错误码
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgSerializationFail   = "40001"
)

// translateError 将 GORM / 驱动错误翻译为统一错误分类
// 未识别的错误原样返回，由调用方包装后上抛
func translateError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrConstraintViolation
	}

	// 驱动层错误码兜底（需要 TranslateError 未覆盖的场景）
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation, pgUniqueViolation:
			return ErrConstraintViolation
		case pgSerializationFail:
			return ErrConflict
		}
	}
	return err
}
