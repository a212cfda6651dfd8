package db

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// IsDuplicateKey はユニークインデックス違反によるエラーかどうかを判定します。
// GORMの翻訳済みエラー（MySQL/SQLite共通）と、翻訳を通らなかった
// MySQLエラー1062（重複エントリ）の両方を扱います。
func IsDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
