package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	authentity "donation_backend/internal/feature/auth/domain/entity"
	commententity "donation_backend/internal/feature/comments/domain/entity"
	donationentity "donation_backend/internal/feature/donations/domain/entity"
	donorentity "donation_backend/internal/feature/donors/domain/entity"
	testimonialentity "donation_backend/internal/feature/testimonials/domain/entity"
	volunteerentity "donation_backend/internal/feature/volunteers/domain/entity"
)

// OpenDB は環境変数からDSNを組み立ててMySQLに接続します。
// 起動直後はDBコンテナが未準備の場合があるため、60秒までリトライします。
func OpenDB() *gorm.DB {
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		user, pass, host, port, name)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gmysql.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		// マイグレーション（User と全コレクションのテーブル）
		if err := db.AutoMigrate(
			&authentity.User{},
			&donationentity.Donation{},
			&donorentity.Donor{},
			&donorentity.DonationPost{},
			&testimonialentity.Testimonial{},
			&volunteerentity.Volunteer{},
			&commententity.Comment{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

// Close は基盤となる*sql.DBを閉じます。接続はmainで一度だけ開き、
// 終了時に明示的に閉じます。
func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("failed to get sql.DB for close: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("failed to close DB: %v", err)
	}
}
