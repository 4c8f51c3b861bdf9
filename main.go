package main

import (
	"context"
	"ecommerce-backend/constants"
	"ecommerce-backend/controllers"
	"ecommerce-backend/infra"
	"ecommerce-backend/middlewares"
	"ecommerce-backend/models"
	"ecommerce-backend/repositories"
	"ecommerce-backend/services"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func setupRouter(cfg *infra.Config, userRepository repositories.IUserRepository, productRepository repositories.IProductRepository) (*gin.Engine, error) {
	authService := services.NewAuthService(userRepository, cfg.JWTSecret, cfg.PasswordHashing)
	authController := controllers.NewAuthController(authService)

	productService := services.NewProductService(productRepository)
	productController := controllers.NewProductController(productService)

	cartService := services.NewCartService(userRepository)
	cartController := controllers.NewCartController(cartService)

	uploadService, err := services.NewUploadService(cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		return nil, err
	}
	uploadController := controllers.NewUploadController(uploadService)

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AddAllowHeaders(constants.AuthTokenHeader)

	r := gin.Default()
	r.Use(cors.New(corsConfig))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Backend is running")
	})

	r.POST("/upload", uploadController.Upload)
	r.Static(constants.ImagesPath, cfg.UploadDir)

	r.POST("/login", authController.Login)
	r.POST("/signup", authController.Signup)

	r.GET("/allproducts", productController.FindAll)
	r.GET("/newcollections", productController.NewCollections)
	r.GET("/popularinwomen", productController.PopularInWomen)
	r.POST("/relatedproducts", productController.Related)

	cartRouter := r.Group("", middlewares.AuthMiddleware(authService))
	cartRouter.POST("/addtocart", cartController.Add)
	cartRouter.POST("/removefromcart", cartController.Remove)
	cartRouter.POST("/getcart", cartController.Get)

	// 管理者用だが認証なし（既存のフロントエンドに合わせている）
	r.POST("/addproduct", productController.Create)
	r.POST("/removeproduct", productController.Remove)

	return r, nil
}

// openRepositories selects MongoDB when MONGO_URI is set and GORM otherwise.
// The returned function releases the connection.
func openRepositories(ctx context.Context, cfg *infra.Config) (repositories.IUserRepository, repositories.IProductRepository, func()) {
	if cfg.UsesMongo() {
		client, db, err := infra.SetupMongo(ctx, cfg.MongoURI)
		if err != nil {
			zap.S().Fatalf("Failed to create MongoDB client: %v", err)
		}
		if err := repositories.EnsureUserIndexes(ctx, db); err != nil {
			zap.S().Errorf("Failed to ensure indexes: %v", err)
		}
		return repositories.NewMongoUserRepository(db),
			repositories.NewMongoProductRepository(db),
			func() { infra.CloseMongo(client) }
	}

	db := infra.SetupDB(cfg)
	// インメモリSQLiteは毎回空なので常にマイグレーションする
	if cfg.AutoMigrate || cfg.DBName == "" {
		if err := db.AutoMigrate(&models.User{}, &models.Product{}); err != nil {
			zap.S().Fatalf("Failed to migrate database: %v", err)
		}
	}
	return repositories.NewUserRepository(db),
		repositories.NewProductRepository(db),
		func() { infra.CloseDB(db) }
}

func main() {
	envErr := infra.Initialize()
	cfg := infra.LoadConfig()
	logger := infra.SetupLogger(cfg.Logger)
	defer logger.Sync()
	if envErr != nil {
		zap.S().Info("No .env file found; using environment variables")
	}

	userRepository, productRepository, closeDB := openRepositories(context.Background(), cfg)
	defer closeDB()

	r, err := setupRouter(cfg, userRepository, productRepository)
	if err != nil {
		zap.S().Fatalf("Failed to set up router: %v", err)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zap.S().Infof("Server running on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.S().Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.S().Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.S().Errorf("Server forced to shutdown: %v", err)
	}
	zap.S().Info("Server exited")
}
