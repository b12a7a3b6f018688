package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retailpilot-api/internal/application/analytics"
	"github.com/jhoicas/retailpilot-api/internal/application/inventory"
	"github.com/jhoicas/retailpilot-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	ValuationUC *inventory.ValuationUseCase
	SupplierUC  *usecase.SupplierUseCase
	FinanceUC   *usecase.FinanceUseCase
	AIUC        *usecase.AIUseCase
	DashboardUC *analytics.DashboardUseCase
	CustomerUC  *usecase.CustomerUseCase
	CRMUC       *usecase.CRMUseCase
	DocumentUC  *usecase.DocumentUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.LowStock)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/batches", productHandler.AddBatch)

	// Inventory valuation
	inv := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.ValuationUC)
	inv.Get("/valuation", inventoryHandler.Valuation)
	inv.Get("/valuation/pdf", inventoryHandler.ValuationPDF)

	// Suppliers (las rutas fijas van antes de /:id)
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/reminders", supplierHandler.Reminders)
	suppliers.Post("/reminders/send", supplierHandler.SendReminders)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)
	suppliers.Post("/:id/bills", supplierHandler.AddBill)
	suppliers.Post("/:id/payments", supplierHandler.RecordPayment)

	// Finance
	finance := api.Group("/finance")
	financeHandler := NewFinanceHandler(deps.FinanceUC, deps.AIUC)
	finance.Get("/transactions", financeHandler.Transactions)
	finance.Post("/expenses", financeHandler.AddExpense)
	finance.Get("/summary", financeHandler.Summary)
	finance.Post("/receipts/scan", financeHandler.ScanReceipt)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.AIUC)
	dashboard.Get("/stats", dashboardHandler.Stats)
	dashboard.Get("/insight", dashboardHandler.Insight)

	// CRM: clientes, leads y tareas
	crmHandler := NewCRMHandler(deps.CustomerUC, deps.CRMUC)
	customers := api.Group("/customers")
	customers.Get("/", crmHandler.ListCustomers)
	customers.Post("/", crmHandler.CreateCustomer)
	customers.Put("/:id", crmHandler.UpdateCustomer)
	customers.Delete("/:id", crmHandler.DeleteCustomer)

	crm := api.Group("/crm")
	crm.Get("/leads", crmHandler.ListLeads)
	crm.Post("/leads", crmHandler.CreateLead)
	crm.Put("/leads/:id/stage", crmHandler.MoveLeadStage)
	crm.Delete("/leads/:id", crmHandler.DeleteLead)
	crm.Get("/tasks", crmHandler.ListTasks)
	crm.Post("/tasks", crmHandler.CreateTask)
	crm.Put("/tasks/:id/status", crmHandler.SetTaskStatus)

	// Documents
	documents := api.Group("/documents")
	documentHandler := NewDocumentHandler(deps.DocumentUC)
	documents.Get("/", documentHandler.List)
	documents.Post("/", documentHandler.Create)
	documents.Post("/:id/versions", documentHandler.AddVersion)
	documents.Delete("/:id", documentHandler.Delete)
}
