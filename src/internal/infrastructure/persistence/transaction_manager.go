package persistence

import (
	"github.com/jackyeh168/mahjong_ledger/src/internal/domain/shared"
	"gorm.io/gorm"
)

// GORMTransactionManager 以 gorm.DB.Transaction 實作 shared.TransactionManager
//
// - fn 返回錯誤：回滾，原樣返回該錯誤
// - fn panic：回滾後重新 panic
// - 其餘情況提交
type GORMTransactionManager struct {
	db *gorm.DB
}

// NewGORMTransactionManager 建構函數
func NewGORMTransactionManager(db *gorm.DB) *GORMTransactionManager {
	return &GORMTransactionManager{db: db}
}

// InTransaction 實現 shared.TransactionManager 介面
func (m *GORMTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewGORMTransactionContext(tx))
	})
}
