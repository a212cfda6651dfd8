package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "donation_backend/internal/feature/auth/transport/handler"
	commenthandler "donation_backend/internal/feature/comments/transport/handler"
	donationhandler "donation_backend/internal/feature/donations/transport/handler"
	donorhandler "donation_backend/internal/feature/donors/transport/handler"
	testimonialhandler "donation_backend/internal/feature/testimonials/transport/handler"
	volunteerhandler "donation_backend/internal/feature/volunteers/transport/handler"
	jwtmw "donation_backend/internal/platform/jwt"
	platformhandler "donation_backend/internal/platform/http/handler"
)

// NewRouter builds the gin engine with CORS and the versioned API surface.
// allowedOrigins comes from configuration (CORS_ORIGINS).
func NewRouter(
	auth *authhandler.AuthHandler,
	donation *donationhandler.DonationHandler,
	donor *donorhandler.DonorHandler,
	testimonial *testimonialhandler.TestimonialHandler,
	volunteer *volunteerhandler.VolunteerHandler,
	comment *commenthandler.CommentHandler,
	allowedOrigins []string,
) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 認証不要
	// 導通確認用
	r.GET("/", platformhandler.Root)
	r.GET("/healthz", platformhandler.Health)

	v1 := r.Group("/api/v1")
	{
		// 新規ユーザー登録
		v1.POST("/register", auth.Register)
		// ログイン（JWT 発行）
		v1.POST("/login", auth.Login)

		v1.POST("/donation", donation.Create)
		v1.GET("/donation", donation.List)
		v1.GET("/donation/:id", donation.Get)

		v1.POST("/donor", donor.Contribute)
		v1.GET("/donor", donor.List)
		v1.GET("/donor/:email", donor.Get)

		v1.POST("/testimonial", testimonial.Post)
		v1.GET("/testimonial", testimonial.List)

		v1.POST("/volunteer", volunteer.Create)
		v1.GET("/volunteer", volunteer.List)

		v1.POST("/comment", comment.Post)
		v1.GET("/comment", comment.List)
	}

	// 認証必須のルート
	// 破壊的操作のみJWTを要求する
	protected := v1.Group("")
	protected.Use(jwtmw.AuthRequired())
	{
		protected.DELETE("/donation/:id", donation.Delete)
	}

	return r
}
