package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/retailpilot-api/internal/domain/entity"
	"github.com/jhoicas/retailpilot-api/internal/domain/repository"
)

// Seed arma la instantánea inicial de la tienda demo. Las fechas relativas se
// anclan a now para que los recordatorios y la serie de ventas tengan datos
// vivos desde el arranque.
func Seed(now time.Time) repository.Dataset {
	day := func(offset int) time.Time { return now.AddDate(0, 0, offset) }
	ptr := func(t time.Time) *time.Time { return &t }
	money := decimal.NewFromFloat

	return repository.Dataset{
		Products: []entity.Product{
			{
				ID: "1", Name: "Premium Wireless Headset", SKU: "WH-001",
				Category: "Electronics", Price: money(149.99), Cost: money(80),
				Stock: 45, MinStockLevel: 10, Supplier: "TechDistro Inc",
				Batches: []entity.StockBatch{
					{ID: "b1", Date: day(-180), Quantity: 15, UnitCost: money(70)},
					{ID: "b2", Date: day(-135), Quantity: 20, UnitCost: money(75)},
					{ID: "b3", Date: day(-100), Quantity: 30, UnitCost: money(82)},
				},
			},
			{
				ID: "2", Name: "Ergonomic Office Chair", SKU: "FUR-022",
				Category: "Furniture", Price: money(299.99), Cost: money(150),
				Stock: 5, MinStockLevel: 8, Supplier: "OfficeSupplies Co",
				Batches: []entity.StockBatch{
					{ID: "b4", Date: day(-210), Quantity: 10, UnitCost: money(140)},
					{ID: "b5", Date: day(-150), Quantity: 10, UnitCost: money(155)},
				},
			},
			{
				ID: "3", Name: "Mechanical Keyboard RGB", SKU: "KB-104",
				Category: "Electronics", Price: money(129.50), Cost: money(75),
				Stock: 12, MinStockLevel: 15, Supplier: "KeyMasters",
				Batches: []entity.StockBatch{
					{ID: "b6", Date: day(-120), Quantity: 50, UnitCost: money(75)},
				},
			},
			{
				ID: "4", Name: "USB-C Docking Station", SKU: "ACC-055",
				Category: "Accessories", Price: money(89.99), Cost: money(45),
				Stock: 2, MinStockLevel: 5, Supplier: "TechDistro Inc",
			},
			{
				ID: "5", Name: "27-inch 4K Monitor", SKU: "MON-4K",
				Category: "Electronics", Price: money(450), Cost: money(300),
				Stock: 20, MinStockLevel: 5, Supplier: "ViewMax",
				Batches: []entity.StockBatch{
					{ID: "b7", Date: day(-260), Quantity: 10, UnitCost: money(280)},
					{ID: "b8", Date: day(-160), Quantity: 15, UnitCost: money(310)},
				},
			},
			{
				ID: "6", Name: "Bluetooth Speaker", SKU: "SPK-BT",
				Category: "Electronics", Price: money(59.99), Cost: money(30),
				Stock: 25, MinStockLevel: 8, Supplier: "TechDistro Inc",
			},
		},
		Suppliers: []entity.Supplier{
			{
				ID: "1", Name: "TechDistro Inc", Contact: "+1 555-0201",
				Email: "accounts@techdistro.com", BalanceDue: money(1500),
				LastPaymentDate: ptr(day(-15)), DueDate: ptr(day(15)),
			},
			{
				ID: "2", Name: "OfficeSupplies Co", Contact: "+1 555-0202",
				Email: "billing@officesupplies.com", BalanceDue: decimal.Zero,
				LastPaymentDate: ptr(day(-45)),
			},
			{
				ID: "3", Name: "KeyMasters", Contact: "+1 555-0203",
				Email: "sales@keymasters.com", BalanceDue: money(450.50),
				DueDate: ptr(day(5)),
			},
		},
		// Más reciente primero, igual que las inserciones posteriores.
		Transactions: []entity.Transaction{
			{ID: "104", Date: now, Type: entity.TransactionSale, Amount: money(450), Description: "Sale: 4K Monitor", PaymentMode: entity.PaymentModeCash, Status: entity.StatusCompleted, PartyName: "John Doe"},
			{ID: "103", Date: now, Type: entity.TransactionExpense, Amount: money(1200), Description: "Monthly Shop Rent", PaymentMode: entity.PaymentModeCredit, Status: entity.StatusCompleted, Category: entity.CategoryOperational},
			{ID: "102", Date: day(-1), Type: entity.TransactionSale, Amount: money(299.99), Description: "Sale: Office Chair", PaymentMode: entity.PaymentModeUPI, Status: entity.StatusCompleted, PartyName: "Jane Smith"},
			{ID: "101", Date: day(-2), Type: entity.TransactionSale, Amount: money(149.99), Description: "Sale: Wireless Headset", PaymentMode: entity.PaymentModeCard, Status: entity.StatusCompleted, PartyName: "John Doe"},
		},
		Customers: []entity.Customer{
			{ID: "1", Name: "John Doe", Email: "john@example.com", Phone: "+1 555-0101", TotalSpent: money(1250.50), LoyaltyPoints: 450, CreditBalance: decimal.Zero, Segment: entity.SegmentVIP},
			{ID: "2", Name: "Jane Smith", Email: "jane@example.com", Phone: "+1 555-0102", TotalSpent: money(350), LoyaltyPoints: 120, CreditBalance: money(50), Segment: entity.SegmentRegular},
			{ID: "3", Name: "Robert Brown", Email: "robert@example.com", Phone: "+1 555-0103", TotalSpent: money(89.99), LoyaltyPoints: 25, CreditBalance: decimal.Zero, Segment: entity.SegmentNew},
		},
		Leads: []entity.Lead{
			{ID: "l1", Name: "Alice Corp", Company: "Alice Industries", Email: "alice@corp.com", Phone: "+1 555-1001", Value: money(5000), Stage: entity.StageQualified, Source: "Website", CreatedAt: day(-5)},
			{ID: "l2", Name: "Bob Enterprise", Company: "Bob Global", Email: "contact@bob.com", Phone: "+1 555-1002", Value: money(12000), Stage: entity.StageProposal, Source: "Referral", CreatedAt: day(-10)},
			{ID: "l3", Name: "Charlie Ltd", Company: "Charlie Co", Email: "info@charlie.com", Phone: "+1 555-1003", Value: money(2500), Stage: entity.StageNew, Source: "LinkedIn", CreatedAt: now},
		},
		Tasks: []entity.CRMTask{
			{ID: "t1", Title: "Follow up with Alice Corp", DueDate: day(1), Priority: entity.PriorityHigh, Status: entity.TaskPending, RelatedTo: "Alice Corp"},
			{ID: "t2", Title: "Send proposal to Bob", DueDate: day(2), Priority: entity.PriorityMedium, Status: entity.TaskPending, RelatedTo: "Bob Enterprise"},
		},
		Documents: []entity.Document{
			{
				ID: "1", Name: "Store Lease Agreement 2024", Type: entity.DocumentContract,
				DateUploaded: day(-30), Size: "2.4 MB", URL: "#",
				Versions: []entity.DocumentVersion{
					{ID: "v1", Version: 1, DateUploaded: day(-30), Size: "2.4 MB", URL: "#", Note: "Initial upload"},
				},
			},
			{
				ID: "2", Name: "Q3 Supplier Invoices", Type: entity.DocumentInvoice,
				DateUploaded: day(-5), Size: "850 KB", URL: "#",
				Versions: []entity.DocumentVersion{
					{ID: "v1", Version: 1, DateUploaded: day(-5), Size: "850 KB", URL: "#", Note: "Consolidated PDF"},
				},
			},
			{
				ID: "3", Name: "Employee Handbook", Type: entity.DocumentManual,
				DateUploaded: day(-60), Size: "1.2 MB", URL: "#",
				Versions: []entity.DocumentVersion{
					{ID: "v1", Version: 1, DateUploaded: day(-120), Size: "1.0 MB", URL: "#", Note: "Draft"},
					{ID: "v2", Version: 2, DateUploaded: day(-60), Size: "1.2 MB", URL: "#", Note: "Final Version"},
				},
			},
		},
	}
}
