package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"luvera_back_end/internal/handlers/admin"
	"luvera_back_end/internal/handlers/analytics"
	"luvera_back_end/internal/handlers/content"
	"luvera_back_end/internal/handlers/product"
	"luvera_back_end/internal/handlers/user"
	"luvera_back_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Authentification
	api.POST("/auth/signup", middleware.SignupRateLimit(), user.Signup)
	api.POST("/auth/login", middleware.LoginRateLimit(), user.Login)
	api.GET("/auth/:provider", user.BeginAuth)
	api.GET("/auth/:provider/callback", user.CallbackAuth)

	// Profil
	profile := api.Group("/users/profile", middleware.AuthRequired())
	{
		profile.GET("", user.GetProfile)
		profile.PUT("", user.UpdateProfile)
	}

	// Produits
	api.GET("/products", product.GetAllProducts)
	api.GET("/products/search", middleware.SearchRateLimit(), product.SearchProducts)
	api.GET("/products/:id", product.GetProductByID)
	api.GET("/products/:id/reviews", product.GetProductReviews)
	api.POST("/products/:id/reviews", middleware.AuthRequired(), product.CreateReview)

	// Blog, offres, ingrédients
	api.GET("/blogs", content.GetAllBlogs)
	api.GET("/offers", content.GetAllOffers)
	api.GET("/offers/active", content.GetActiveOffers)
	api.GET("/ingredients", content.GetAllIngredients)

	// Panier
	cart := api.Group("/cart", middleware.AuthRequired(), middleware.CartRateLimit())
	{
		cart.GET("", user.GetCart)
		cart.POST("/items", user.AddToCart)
		cart.PUT("/items/:id", user.UpdateCartItem)
		cart.DELETE("/items/:id", user.RemoveFromCart)
		cart.DELETE("", user.ClearCart)
	}

	// Quiz peau
	quiz := api.Group("/quiz")
	{
		quiz.GET("/questions", user.GetQuizQuestions)
		quiz.POST("/session", user.StartQuizSession)
		quiz.GET("/session/:id", user.GetQuizSession)
		quiz.POST("/session/:id/answer", user.AnswerQuizQuestion)
		quiz.POST("/session/:id/advance", user.AdvanceQuizSession)
		quiz.POST("/session/:id/previous", user.PreviousQuizQuestion)
		quiz.POST("/session/:id/restart", user.RestartQuizSession)
		quiz.POST("/recommendations", user.GetRecommendations)
		quiz.POST("/add-all", middleware.AuthRequired(), middleware.CartRateLimit(), user.AddRecommendationsToCart)
	}

	// Analytics
	api.POST("/analytics/page-view", analytics.TrackPageView)
	api.GET("/analytics/dashboard", middleware.AuthRequired(), middleware.RequireAdmin, analytics.Dashboard)

	// Système
	api.GET("/system/status", admin.GetSystemStatus)

	// Administration
	adm := api.Group("/admin", middleware.AuthRequired(), middleware.RequireAdmin)
	{
		adm.POST("/system/init", admin.InitSampleData)

		adm.POST("/products", product.CreateProduct)
		adm.PUT("/products/:id", product.UpdateProduct)
		adm.DELETE("/products/:id", product.DeleteProduct)
		adm.POST("/products/:id/images", product.UploadProductImage)

		adm.POST("/blogs", content.CreateBlog)
		adm.PUT("/blogs/:id", content.UpdateBlog)
		adm.DELETE("/blogs/:id", content.DeleteBlog)

		adm.POST("/offers", content.CreateOffer)
		adm.PUT("/offers/:id", content.UpdateOffer)
		adm.DELETE("/offers/:id", content.DeleteOffer)

		adm.POST("/ingredients", content.CreateIngredient)
		adm.PUT("/ingredients/:id", content.UpdateIngredient)
		adm.DELETE("/ingredients/:id", content.DeleteIngredient)

		adm.GET("/reviews", admin.GetAllReviews)
		adm.PUT("/reviews/:id/approve", admin.ApproveReview)
		adm.DELETE("/reviews/:id", admin.DeleteReview)
	}
}
