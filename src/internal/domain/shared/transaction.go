package shared

// TransactionContext 事務上下文介面
//
// 行為約定：
// - ctx != nil: 在調用者的事務中執行（事務傳播）
// - ctx == nil: 使用 auto-commit 模式（適用於單一讀操作）
//
// Repository 方法約束：
//
// ✅ ctx 必須為 non-nil（先讀後寫的操作需要事務保證）：
//    - DeleteMostRecent() - 查詢最大 ID 後刪除
//    - ClearAll()         - 刪除並重建資料表
//
// ✅ ctx 可為 nil：
//    - Append()  - 單筆插入
//    - ListAll() - 全量查詢
//
// 範例：
//   txManager.InTransaction(func(ctx TransactionContext) error {
//       _, err := repo.DeleteMostRecent(ctx)
//       return err
//   })
//
// 這是一個標記介面（Marker Interface），不暴露任何方法。
// Infrastructure Layer 負責實作具體的事務封裝（GORM）。
type TransactionContext interface {
	// 標記介面：僅用於傳遞上下文，不暴露方法
}

// TransactionManager 事務管理器介面
type TransactionManager interface {
	InTransaction(fn func(ctx TransactionContext) error) error
}
