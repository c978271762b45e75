package routes

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopmitra/shopmitra/app/configs"
	"github.com/shopmitra/shopmitra/app/handlers"
	"github.com/shopmitra/shopmitra/app/middlewares"
	"github.com/shopmitra/shopmitra/app/repositories"
	"github.com/shopmitra/shopmitra/app/services"
	"github.com/unrolled/render"
	"gorm.io/gorm"
)

// NewRouter wires repositories, services and handlers onto the HTTP
// surface. Public routes come first, then authenticated routes, then the
// admin back office.
func NewRouter(db *gorm.DB) *mux.Router {
	env := configs.LoadENV
	rnd := render.New()
	validate := validator.New()
	lowStockThreshold, _ := strconv.Atoi(env.LowStockThreshold)

	userRepo := repositories.NewUserRepository(db)
	tokenRepo := repositories.NewTokenRepository(db)
	addressRepo := repositories.NewAddressRepository(db)
	cartRepo := repositories.NewCartRepository(db)
	cartItemRepo := repositories.NewCartItemRepository(db)
	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	orderItemRepo := repositories.NewOrderItemRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	ratingRepo := repositories.NewRatingRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	carouselRepo := repositories.NewCarouselRepository(db)

	mailer := services.NewMailer(services.MailerConfig{
		Host:     env.EmailHost,
		Port:     env.EmailPort,
		Username: env.EmailUsername,
		Password: env.EmailPassword,
		From:     env.EmailFrom,
	})
	notifier := services.NewNotificationService(notificationRepo, userRepo, configs.NewKafkaWriter(env.NotificationTopic))
	authService := services.NewAuthService(userRepo, tokenRepo, mailer, env.JWTSecret, env.AppBaseURL)
	cartService := services.NewCartService(cartRepo, cartItemRepo, productRepo)
	orderService := services.NewOrderService(db, cartRepo, orderRepo, orderItemRepo, addressRepo)
	gateway := services.NewRazorpayGateway(configs.GetRazorpayClient())
	paymentService := services.NewPaymentService(db, orderRepo, paymentRepo, gateway, env.RazorpayKeyID, notifier)
	productService := services.NewProductService(db, productRepo, categoryRepo, notifier, lowStockThreshold)
	reviewService := services.NewReviewService(reviewRepo, ratingRepo, productRepo, notifier)

	authHandler := handlers.NewAuthHandler(authService, rnd, validate)
	cartHandler := handlers.NewCartHandler(cartService, rnd, validate)
	orderHandler := handlers.NewOrderHandler(orderService, rnd, validate)
	paymentHandler := handlers.NewPaymentHandler(paymentService, orderService, rnd)
	productHandler := handlers.NewProductHandler(productService, rnd)
	categoryHandler := handlers.NewCategoryHandler(categoryRepo, rnd)
	reviewHandler := handlers.NewReviewHandler(reviewService, rnd, validate)
	notificationHandler := handlers.NewNotificationHandler(notifier, rnd)
	carouselHandler := handlers.NewCarouselHandler(carouselRepo, rnd)

	adminOrderHandler := handlers.NewAdminOrderHandler(orderService, rnd)
	adminProductHandler := handlers.NewAdminProductHandler(productService, rnd, validate)
	adminCategoryHandler := handlers.NewAdminCategoryHandler(categoryRepo, rnd, validate)
	adminCarouselHandler := handlers.NewAdminCarouselHandler(carouselRepo, rnd, validate)
	adminDashboardHandler := handlers.NewAdminDashboardHandler(orderService, productRepo, rnd, lowStockThreshold)

	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()

	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", authHandler.Register).Methods("POST")
	auth.HandleFunc("/login", authHandler.Login).Methods("POST")
	auth.HandleFunc("/verify", authHandler.VerifyEmail).Methods("GET")
	auth.HandleFunc("/password-reset/request", authHandler.ForgotPassword).Methods("POST")
	auth.HandleFunc("/password-reset/confirm", authHandler.ResetPassword).Methods("POST")

	api.HandleFunc("/products", productHandler.ListProducts).Methods("GET")
	api.HandleFunc("/products/{id}", productHandler.GetProduct).Methods("GET")
	api.HandleFunc("/products/{productId}/reviews", reviewHandler.ListReviews).Methods("GET")
	api.HandleFunc("/products/{productId}/ratings", reviewHandler.ListRatings).Methods("GET")
	api.HandleFunc("/categories", categoryHandler.ListCategories).Methods("GET")
	api.HandleFunc("/categories/{id}", categoryHandler.GetCategory).Methods("GET")
	api.HandleFunc("/carousel", carouselHandler.ListCarousels).Methods("GET")

	authed := api.NewRoute().Subrouter()
	authed.Use(middlewares.AuthMiddleware(env.JWTSecret, rnd))

	authed.HandleFunc("/cart/", cartHandler.GetCart).Methods("GET")
	authed.HandleFunc("/cart/add", cartHandler.AddItem).Methods("POST")
	authed.HandleFunc("/cart/item", cartHandler.UpdateItem).Methods("PUT")
	authed.HandleFunc("/cart/item", cartHandler.RemoveItem).Methods("DELETE")
	authed.HandleFunc("/cart/", cartHandler.ClearCart).Methods("DELETE")

	authed.HandleFunc("/orders/", orderHandler.CreateOrder).Methods("POST")
	authed.HandleFunc("/orders/user", orderHandler.OrderHistory).Methods("GET")
	authed.HandleFunc("/orders/{id}", orderHandler.GetOrder).Methods("GET")
	authed.HandleFunc("/orders/{id}/cancel", orderHandler.CancelOrder).Methods("PUT")

	authed.HandleFunc("/payments/verify", paymentHandler.VerifyPayment).Methods("GET")
	authed.HandleFunc("/payments/{orderId}", paymentHandler.CreatePaymentOrder).Methods("POST")

	authed.HandleFunc("/products/{productId}/reviews", reviewHandler.SubmitReview).Methods("POST")
	authed.HandleFunc("/products/{productId}/ratings", reviewHandler.SubmitRating).Methods("POST")

	authed.HandleFunc("/notifications", notificationHandler.ListNotifications).Methods("GET")
	authed.HandleFunc("/notifications/{id}/read", notificationHandler.MarkRead).Methods("PUT")

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middlewares.AuthMiddleware(env.JWTSecret, rnd))
	admin.Use(middlewares.AdminMiddleware(rnd))

	admin.HandleFunc("/dashboard", adminDashboardHandler.Dashboard).Methods("GET")

	admin.HandleFunc("/orders", adminOrderHandler.ListOrders).Methods("GET")
	admin.HandleFunc("/orders/{id}/place", adminOrderHandler.PlaceOrder).Methods("PUT")
	admin.HandleFunc("/orders/{id}/ship", adminOrderHandler.ShipOrder).Methods("PUT")
	admin.HandleFunc("/orders/{id}/deliver", adminOrderHandler.DeliverOrder).Methods("PUT")
	admin.HandleFunc("/orders/{id}/cancel", adminOrderHandler.CancelOrder).Methods("PUT")
	admin.HandleFunc("/orders/{id}", adminOrderHandler.DeleteOrder).Methods("DELETE")

	admin.HandleFunc("/products", adminProductHandler.CreateProduct).Methods("POST")
	admin.HandleFunc("/products/{id}", adminProductHandler.UpdateProduct).Methods("PUT")
	admin.HandleFunc("/products/{id}", adminProductHandler.DeleteProduct).Methods("DELETE")

	admin.HandleFunc("/categories", adminCategoryHandler.CreateCategory).Methods("POST")
	admin.HandleFunc("/categories/{id}", adminCategoryHandler.UpdateCategory).Methods("PUT")
	admin.HandleFunc("/categories/{id}", adminCategoryHandler.DeleteCategory).Methods("DELETE")

	admin.HandleFunc("/carousel", adminCarouselHandler.ListCarousels).Methods("GET")
	admin.HandleFunc("/carousel", adminCarouselHandler.CreateCarousel).Methods("POST")
	admin.HandleFunc("/carousel/{id}", adminCarouselHandler.UpdateCarousel).Methods("PUT")
	admin.HandleFunc("/carousel/{id}", adminCarouselHandler.DeleteCarousel).Methods("DELETE")

	return router
}
