package main

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"donation_backend/internal/app/di"
	"donation_backend/internal/app/router"
	authadapters "donation_backend/internal/feature/auth/adapters"
	authhandler "donation_backend/internal/feature/auth/transport/handler"
	authusecase "donation_backend/internal/feature/auth/usecase"
	commentadapters "donation_backend/internal/feature/comments/adapters"
	commenthandler "donation_backend/internal/feature/comments/transport/handler"
	commentusecase "donation_backend/internal/feature/comments/usecase"
	donationhandler "donation_backend/internal/feature/donations/transport/handler"
	donationusecase "donation_backend/internal/feature/donations/usecase"
	donoradapters "donation_backend/internal/feature/donors/adapters"
	donorhandler "donation_backend/internal/feature/donors/transport/handler"
	donorusecase "donation_backend/internal/feature/donors/usecase"
	testimonialadapters "donation_backend/internal/feature/testimonials/adapters"
	testimonialhandler "donation_backend/internal/feature/testimonials/transport/handler"
	testimonialusecase "donation_backend/internal/feature/testimonials/usecase"
	volunteeradapters "donation_backend/internal/feature/volunteers/adapters"
	volunteerhandler "donation_backend/internal/feature/volunteers/transport/handler"
	volunteerusecase "donation_backend/internal/feature/volunteers/usecase"
	platformdb "donation_backend/internal/platform/db"
	jwtmw "donation_backend/internal/platform/jwt"
	platformredis "donation_backend/internal/platform/redis"
)

func main() {
	// .env は開発環境向け。本番は環境変数を直接渡す
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found. Using process environment.")
	}

	// db
	db := platformdb.OpenDB()
	defer platformdb.Close(db)

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// JWT_SECRETチェック（開発中の注意喚起）
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	expiry := tokenExpiry()

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	donationRepo := di.NewDonationRepository(rdb, db, 5*time.Minute)
	donorRepo := donoradapters.NewDonorRepository(db)
	testimonialRepo := testimonialadapters.NewTestimonialRepository(db)
	volunteerRepo := volunteeradapters.NewVolunteerRepository(db)
	commentRepo := commentadapters.NewCommentRepository(db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, jwtmw.NewGenerator(secret, expiry))
	donationUC := donationusecase.NewDonationUsecase(donationRepo)
	donorUC := donorusecase.NewDonorUsecase(donorRepo)
	testimonialUC := testimonialusecase.NewTestimonialUsecase(testimonialRepo)
	volunteerUC := volunteerusecase.NewVolunteerUsecase(volunteerRepo)
	commentUC := commentusecase.NewCommentUsecase(commentRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	donationH := donationhandler.NewDonationHandler(donationUC)
	donorH := donorhandler.NewDonorHandler(donorUC)
	testimonialH := testimonialhandler.NewTestimonialHandler(testimonialUC)
	volunteerH := volunteerhandler.NewVolunteerHandler(volunteerUC)
	commentH := commenthandler.NewCommentHandler(commentUC)

	// ルータ生成
	r := router.NewRouter(authH, donationH, donorH, testimonialH, volunteerH, commentH, corsOrigins())

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

// tokenExpiry はEXPIRES_INをGoのduration表記として解釈します。
// 未設定または不正な場合は24時間にフォールバックします。
func tokenExpiry() time.Duration {
	raw := os.Getenv("EXPIRES_IN")
	if raw == "" {
		return 24 * time.Hour
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("[WARN] invalid EXPIRES_IN %q, falling back to 24h", raw)
		return 24 * time.Hour
	}
	return d
}

// corsOrigins はCORS_ORIGINS（カンマ区切り）から許可オリジンを組み立てます。
func corsOrigins() []string {
	raw := os.Getenv("CORS_ORIGINS")
	if raw == "" {
		return []string{"http://localhost:5173"}
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
