package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	documentapp "github.com/docflow/backend/internal/application/document"
	identityapp "github.com/docflow/backend/internal/application/identity"
	partnerapp "github.com/docflow/backend/internal/application/partner"
	"github.com/docflow/backend/internal/domain/identity"
	"github.com/docflow/backend/internal/infrastructure/auth"
	"github.com/docflow/backend/internal/infrastructure/config"
	"github.com/docflow/backend/internal/infrastructure/logger"
	"github.com/docflow/backend/internal/infrastructure/persistence"
	"github.com/docflow/backend/internal/interfaces/http/handler"
	"github.com/docflow/backend/internal/interfaces/http/middleware"
	"github.com/docflow/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting document service",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
	log.Info("Database ready")

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	contactRepo := persistence.NewGormContactRepository(db.DB)
	purchaseOrderRepo := persistence.NewGormPurchaseOrderRepository(db.DB)
	vendorBillRepo := persistence.NewGormVendorBillRepository(db.DB)
	saleOrderRepo := persistence.NewGormSaleOrderRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	sequenceRepo := persistence.NewGormSequenceRepository(db.DB)
	conversionRepo := persistence.NewGormConversionRepository(db.DB)

	// Services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, log)
	linkageService := documentapp.NewLinkageService(contactRepo, userRepo, purchaseOrderRepo, log)
	contactService := partnerapp.NewContactService(contactRepo, linkageService, log)
	purchaseOrderService := documentapp.NewPurchaseOrderService(
		purchaseOrderRepo, sequenceRepo, conversionRepo, linkageService, log)
	vendorBillService := documentapp.NewVendorBillService(
		vendorBillRepo, sequenceRepo, linkageService, log)
	saleOrderService := documentapp.NewSaleOrderService(
		saleOrderRepo, sequenceRepo, conversionRepo, log)
	invoiceService := documentapp.NewInvoiceService(invoiceRepo, log)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	contactHandler := handler.NewContactHandler(contactService)
	purchaseOrderHandler := handler.NewPurchaseOrderHandler(purchaseOrderService)
	vendorBillHandler := handler.NewVendorBillHandler(vendorBillService)
	saleOrderHandler := handler.NewSaleOrderHandler(saleOrderService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	portalHandler := handler.NewPortalHandler(
		purchaseOrderService, vendorBillService, saleOrderService, invoiceService)
	systemHandler := handler.NewSystemHandler(cfg.App.Name, "1.0.0")

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(logger.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORSWithOrigins(cfg.HTTP.CORSAllowOrigins))

	engine.GET("/health", healthHandler(db))

	jwtAuth := middleware.JWTAuthMiddleware(jwtService)
	adminOnly := middleware.RequireRole(string(identity.RoleAdmin))
	portalOnly := middleware.RequireRole(string(identity.RolePortal))
	anyRole := middleware.RequireRole(string(identity.RoleAdmin), string(identity.RolePortal))

	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/signup", authHandler.Signup)
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/refresh", authHandler.Refresh)
	authRoutes.GET("/me", jwtAuth, authHandler.Me)

	partnerRoutes := router.NewDomainGroup("partner", "/partner")
	partnerRoutes.Use(jwtAuth, adminOnly)
	partnerRoutes.POST("/contacts", contactHandler.Create)
	partnerRoutes.GET("/contacts", contactHandler.List)
	partnerRoutes.GET("/contacts/:id", contactHandler.GetByID)
	partnerRoutes.PUT("/contacts/:id", contactHandler.Update)
	partnerRoutes.DELETE("/contacts/:id", contactHandler.Archive)

	documentRoutes := router.NewDomainGroup("documents", "/documents")
	documentRoutes.Use(jwtAuth, adminOnly)
	documentRoutes.POST("/purchase-orders", purchaseOrderHandler.Create)
	documentRoutes.GET("/purchase-orders", purchaseOrderHandler.List)
	documentRoutes.GET("/purchase-orders/stats/count", purchaseOrderHandler.CountByStatus)
	documentRoutes.GET("/purchase-orders/:id", purchaseOrderHandler.GetByID)
	documentRoutes.PUT("/purchase-orders/:id", purchaseOrderHandler.Update)
	documentRoutes.POST("/purchase-orders/:id/transition", purchaseOrderHandler.Transition)
	documentRoutes.POST("/purchase-orders/:id/accept", purchaseOrderHandler.Accept)
	documentRoutes.GET("/purchase-orders/:id/bills", vendorBillHandler.ListForOrder)
	documentRoutes.POST("/purchase-orders/:id/bills", purchaseOrderHandler.CreateBill)
	documentRoutes.DELETE("/purchase-orders/:id", purchaseOrderHandler.Archive)
	documentRoutes.POST("/vendor-bills", vendorBillHandler.Create)
	documentRoutes.GET("/vendor-bills", vendorBillHandler.List)
	documentRoutes.GET("/vendor-bills/:id", vendorBillHandler.GetByID)
	documentRoutes.PUT("/vendor-bills/:id", vendorBillHandler.Update)
	documentRoutes.POST("/vendor-bills/:id/confirm", vendorBillHandler.Confirm)
	documentRoutes.POST("/vendor-bills/:id/payments", vendorBillHandler.RegisterPayment)
	documentRoutes.DELETE("/vendor-bills/:id", vendorBillHandler.Archive)
	documentRoutes.POST("/sale-orders", saleOrderHandler.Create)
	documentRoutes.GET("/sale-orders", saleOrderHandler.List)
	documentRoutes.GET("/sale-orders/:id", saleOrderHandler.GetByID)
	documentRoutes.PUT("/sale-orders/:id", saleOrderHandler.Update)
	documentRoutes.POST("/sale-orders/:id/send", saleOrderHandler.Send)
	documentRoutes.GET("/sale-orders/:id/invoices", invoiceHandler.ListForOrder)
	documentRoutes.DELETE("/sale-orders/:id", saleOrderHandler.Archive)
	documentRoutes.GET("/invoices", invoiceHandler.List)
	documentRoutes.GET("/invoices/:id", invoiceHandler.GetByID)
	documentRoutes.POST("/invoices/:id/payments", invoiceHandler.RegisterPayment)
	documentRoutes.DELETE("/invoices/:id", invoiceHandler.Archive)

	portalRoutes := router.NewDomainGroup("portal", "/portal")
	portalRoutes.Use(jwtAuth, portalOnly)
	portalRoutes.POST("/purchase-orders", purchaseOrderHandler.Create)
	portalRoutes.GET("/purchase-orders", portalHandler.ListPurchaseOrders)
	portalRoutes.POST("/purchase-orders/:id/accept", purchaseOrderHandler.Accept)
	portalRoutes.GET("/vendor-bills", portalHandler.ListVendorBills)
	portalRoutes.POST("/sale-orders", saleOrderHandler.Create)
	portalRoutes.GET("/sale-orders", portalHandler.ListSaleOrders)
	portalRoutes.GET("/invoices", portalHandler.ListInvoices)

	sharedRoutes := router.NewDomainGroup("shared", "/shared")
	sharedRoutes.Use(jwtAuth, anyRole)
	sharedRoutes.GET("/invoices/:id", invoiceHandler.GetByID)

	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/ping", systemHandler.Ping)
	systemRoutes.GET("/info", systemHandler.Info)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(authRoutes).
		Register(partnerRoutes).
		Register(documentRoutes).
		Register(portalRoutes).
		Register(sharedRoutes).
		Register(systemRoutes)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
