package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"backend/configs"
	"backend/controllers"
	"backend/middlewares"
	"backend/policy"
	"backend/repository"
	"backend/services"
	"backend/ws"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.Hub) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	tableRepo := repository.NewTableRepository(db)
	billRepo := repository.NewBillRepository(db)
	stockRepo := repository.NewStockRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	staffRepo := repository.NewStaffRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo)
	userSvc := services.NewUserService(userRepo)
	menuSvc := services.NewMenuService(menuRepo)
	billingSvc := services.NewBillingService(db, billRepo, menuRepo)
	stockSvc := services.NewStockService(db, stockRepo)
	expenseSvc := services.NewExpenseService(expenseRepo)
	staffSvc := services.NewStaffService(staffRepo)
	reportSvc := services.NewReportService(billRepo, expenseRepo, staffRepo)

	// Controllers
	authCtl := controllers.NewAuthController(authSvc, cfg.JWTSecret, cfg.JWTTTL)
	userCtl := controllers.NewUserController(userSvc)
	menuCtl := controllers.NewMenuController(menuSvc)
	tableCtl := controllers.NewTableController(tableRepo)
	billingCtl := controllers.NewBillingController(billingSvc, hub)
	stockCtl := controllers.NewStockController(stockSvc, hub)
	expenseCtl := controllers.NewExpenseController(expenseSvc)
	staffCtl := controllers.NewStaffController(staffSvc)
	reportCtl := controllers.NewReportController(reportSvc)

	// Middleware groups; authed means any logged-in role, manage means
	// an effective manager role, admin means the admin role alone.
	authed := middlewares.AuthMiddleware(cfg.JWTSecret)
	manage := middlewares.AuthMiddleware(cfg.JWTSecret, policy.RoleAdmin, policy.RoleManager)
	admin := middlewares.AuthMiddleware(cfg.JWTSecret, policy.RoleAdmin)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/login", authCtl.Login)
		a.POST("/logout", authCtl.Logout)

		aAuth := a.Group("", authed)
		aAuth.GET("/me", authCtl.Me)
		aAuth.POST("/change-password", authCtl.ChangePassword)
	}

	// Users (admin only)
	users := r.Group("/users", admin)
	{
		users.GET("", userCtl.List)
		users.POST("", userCtl.Create)
		users.PATCH("/:id", userCtl.Update)
		users.DELETE("/:id", userCtl.Delete)
		users.POST("/:id/reset-password", userCtl.ResetPassword)
	}

	// Menu: anyone logged in reads, managers write.
	menu := r.Group("/menu", authed)
	{
		menu.GET("/items", menuCtl.ListItems)
		menu.GET("/items/:id", menuCtl.GetItem)
		menu.GET("/categories", menuCtl.ListCategories)
	}
	menuManage := r.Group("/menu", manage)
	{
		menuManage.POST("/items", menuCtl.CreateItem)
		menuManage.PATCH("/items/:id", menuCtl.UpdateItem)
		menuManage.DELETE("/items/:id", menuCtl.DeleteItem)
		menuManage.POST("/categories", menuCtl.CreateCategory)
	}

	// Tables
	tables := r.Group("/tables", authed)
	{
		tables.GET("", tableCtl.List)
		tables.PATCH("/:id/status", tableCtl.UpdateStatus)
	}
	r.POST("/tables", manage, tableCtl.Create)

	// Bills: any logged-in role rings up sales; history is open to all roles.
	bills := r.Group("/bills", authed)
	{
		bills.POST("", billingCtl.Create)
		bills.GET("", billingCtl.List)
		bills.GET("/:id", billingCtl.Detail)
	}

	// Stock: reads for everyone, writes and adjustments for managers.
	stock := r.Group("/stock", authed)
	{
		stock.GET("", stockCtl.List)
		stock.GET("/low", stockCtl.Low)
		stock.GET("/categories", stockCtl.Categories)
		stock.GET("/:id", stockCtl.Get)
		stock.GET("/:id/history", stockCtl.History)
	}
	stockManage := r.Group("/stock", manage)
	{
		stockManage.POST("", stockCtl.Create)
		stockManage.PATCH("/:id", stockCtl.Update)
		stockManage.DELETE("/:id", stockCtl.Delete)
		stockManage.POST("/:id/adjust", stockCtl.Adjust)
	}

	// Expenses (managers)
	expenses := r.Group("/expenses", manage)
	{
		expenses.GET("", expenseCtl.List)
		expenses.GET("/categories", expenseCtl.Categories)
		expenses.GET("/summary", expenseCtl.Summary)
		expenses.GET("/:id", expenseCtl.Get)
		expenses.POST("", expenseCtl.Create)
		expenses.PATCH("/:id", expenseCtl.Update)
		expenses.DELETE("/:id", expenseCtl.Delete)
	}

	// Staff: managers run payroll and attendance; deleting an employee
	// stays with the admin.
	employees := r.Group("/employees", manage)
	{
		employees.GET("", staffCtl.ListEmployees)
		employees.GET("/:id", staffCtl.GetEmployee)
		employees.POST("", staffCtl.CreateEmployee)
		employees.PATCH("/:id", staffCtl.UpdateEmployee)
		employees.GET("/:id/salary", staffCtl.SalaryHistory)
	}
	r.DELETE("/employees/:id", admin, staffCtl.DeleteEmployee)
	r.POST("/salary-records", manage, staffCtl.AddSalaryRecord)
	attendance := r.Group("/attendance", manage)
	{
		attendance.POST("", staffCtl.MarkAttendance)
		attendance.GET("", staffCtl.GetAttendance)
	}

	// Reports (managers)
	reports := r.Group("/reports", manage)
	{
		reports.GET("/dashboard", reportCtl.Dashboard)
		reports.GET("/sales", reportCtl.Sales)
		reports.GET("/expenses", reportCtl.Expenses)
		reports.GET("/profit-loss", reportCtl.ProfitLoss)
		reports.GET("/staff", reportCtl.Staff)
	}

	// Event stream
	r.GET("/ws/events", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.Serve)
}
