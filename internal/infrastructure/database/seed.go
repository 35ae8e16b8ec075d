package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/ownerdesk-api/internal/domain/entity"
	"github.com/sangkips/ownerdesk-api/internal/domain/enum"
	"github.com/sangkips/ownerdesk-api/pkg/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	demoOrderCount    = 60
	demoOrderSpacing  = 3 // days between consecutive demo orders
	demoCustomerCount = 6
)

type demoData struct {
	Categories   []entity.Category
	Suppliers    []entity.Supplier
	Products     []entity.Product
	Users        []entity.User
	Orders       []entity.Order
	OrderItems   []entity.OrderItem
	Expenses     []entity.Expense
	Transactions []entity.Transaction
}

type demoProduct struct {
	name     string
	category int
	supplier int
	price    string
	stock    int
}

var demoProducts = []demoProduct{
	{"Cola (500ml)", 0, 1, "1.50", 100},
	{"Orange Juice (1L)", 0, 1, "3.00", 50},
	{"Potato Chips", 1, 1, "2.00", 200},
	{"Chicken Breast", 2, 2, "8.50", 30},
	{"Rice (5kg)", 2, 0, "5.00", 8},
	{"Chocolate Cake", 3, 0, "4.50", 0},
	{"Mixed Spices", 4, 3, "7.00", 15},
}

var demoStatuses = []enum.OrderStatus{
	enum.OrderStatusCompleted,
	enum.OrderStatusCompleted,
	enum.OrderStatusProcessing,
	enum.OrderStatusCompleted,
	enum.OrderStatusPending,
	enum.OrderStatusCancelled,
}

// SeedDemoData fills an empty database with a small restaurant dataset so the
// owner dashboard has something to show. It is a no-op once any product or
// order exists.
func SeedDemoData(ctx context.Context, db *gorm.DB, now time.Time) error {
	var products, orders int64
	if err := db.WithContext(ctx).Model(&entity.Product{}).Count(&products).Error; err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if err := db.WithContext(ctx).Model(&entity.Order{}).Count(&orders).Error; err != nil {
		return fmt.Errorf("failed to count orders: %w", err)
	}
	if products > 0 || orders > 0 {
		slog.Info("skipping demo data, database is not empty",
			slog.Int64("products", products),
			slog.Int64("orders", orders),
		)
		return nil
	}

	data := buildDemoData(now)

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		steps := []struct {
			name  string
			value interface{}
		}{
			{"categories", &data.Categories},
			{"suppliers", &data.Suppliers},
			{"products", &data.Products},
			{"users", &data.Users},
			{"orders", &data.Orders},
			{"order items", &data.OrderItems},
			{"expenses", &data.Expenses},
			{"transactions", &data.Transactions},
		}
		for _, step := range steps {
			if err := tx.Omit("Category", "Supplier", "Items").Create(step.value).Error; err != nil {
				return fmt.Errorf("failed to seed %s: %w", step.name, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("demo data seeded",
		slog.Int("products", len(data.Products)),
		slog.Int("orders", len(data.Orders)),
		slog.Int("users", len(data.Users)),
	)
	return nil
}

func buildDemoData(now time.Time) demoData {
	now = now.UTC()
	var d demoData

	for _, c := range []struct{ name, description string }{
		{"Beverages", "Soft drinks, juices, and other drinks"},
		{"Snacks", "Quick bites and finger foods"},
		{"Main Course", "Lunch and dinner items"},
		{"Desserts", "Sweet treats and desserts"},
		{"Raw Materials", "Cooking ingredients"},
	} {
		d.Categories = append(d.Categories, entity.Category{
			ID:          uuid.New(),
			Name:        c.name,
			Description: c.description,
			IsActive:    true,
		})
	}

	for i, s := range []struct{ name, email, address string }{
		{"Fresh Farms Inc.", "contact@freshfarms.com", "123 Farm Road, Agricultural District"},
		{"Beverage Distributors Ltd.", "orders@beveragedist.com", "456 Industrial Ave, City Center"},
		{"Quality Meats Co.", "sales@qualitymeats.com", "789 Butcher Street, Meat District"},
		{"Global Spices", "info@globalspices.com", "321 Spice Market, Downtown"},
	} {
		email, address := s.email, s.address
		phone := fmt.Sprintf("+123456789%d", i)
		d.Suppliers = append(d.Suppliers, entity.Supplier{
			ID:       uuid.New(),
			Name:     s.name,
			Email:    &email,
			Phone:    &phone,
			Address:  &address,
			IsActive: true,
		})
	}

	for i, p := range demoProducts {
		categoryID := d.Categories[p.category].ID
		supplierID := d.Suppliers[p.supplier].ID
		d.Products = append(d.Products, entity.Product{
			ID:         uuid.New(),
			CategoryID: &categoryID,
			SupplierID: &supplierID,
			Name:       p.name,
			SKU:        utils.GenerateSKU(d.Categories[p.category].Name, p.name, i+1),
			Price:      decimal.RequireFromString(p.price),
			Stock:      p.stock,
			CreatedAt:  now.AddDate(0, 0, -demoOrderCount*demoOrderSpacing),
			UpdatedAt:  now,
		})
	}

	d.Users = append(d.Users,
		entity.User{ID: uuid.New(), FullName: "John Owner", Email: "owner@restaurant.com", Role: enum.UserRoleOwner, CreatedAt: now.AddDate(-1, 0, 0)},
		entity.User{ID: uuid.New(), FullName: "Mike Staff", Email: "staff@restaurant.com", Role: enum.UserRoleStaff, CreatedAt: now.AddDate(-1, 0, 0)},
	)
	for i := 0; i < demoCustomerCount; i++ {
		d.Users = append(d.Users, entity.User{
			ID:        uuid.New(),
			FullName:  fmt.Sprintf("Customer %d", i+1),
			Email:     fmt.Sprintf("customer%d@example.com", i+1),
			Role:      enum.UserRoleUser,
			CreatedAt: now.AddDate(0, 0, -(i*20 + 1)),
		})
	}

	// Orders walk back from today so every period window has data in it.
	for i := 0; i < demoOrderCount; i++ {
		createdAt := now.AddDate(0, 0, -i*demoOrderSpacing).Add(-time.Duration(i%8) * time.Hour)
		order := entity.Order{
			ID:        uuid.New(),
			Status:    demoStatuses[i%len(demoStatuses)],
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		}
		// Every fifth order is a walk-in without number or customer name.
		if i%5 != 4 {
			order.OrderNumber = utils.GenerateOrderNumber(demoOrderCount - i)
			order.CustomerName = d.Users[2+i%demoCustomerCount].FullName
		}

		total := decimal.Zero
		for j := 0; j <= i%3; j++ {
			product := d.Products[(i+j*2)%len(d.Products)]
			item := entity.OrderItem{
				ID:        uuid.New(),
				OrderID:   order.ID,
				ProductID: product.ID,
				Quantity:  1 + (i+j)%4,
				Price:     product.Price,
				CreatedAt: createdAt,
			}
			total = total.Add(item.LineTotal())
			d.OrderItems = append(d.OrderItems, item)
		}
		order.TotalAmount = total
		d.Orders = append(d.Orders, order)

		if order.Status == enum.OrderStatusCompleted {
			orderID := order.ID
			d.Transactions = append(d.Transactions, entity.Transaction{
				ID:              uuid.New(),
				ReferenceNo:     utils.GenerateReferenceNo("TXN"),
				TransactionType: enum.TransactionTypeSale,
				Amount:          total,
				PaymentMode:     []enum.PaymentMode{enum.PaymentModeCash, enum.PaymentModeCard, enum.PaymentModeUPI}[i%3],
				PaymentStatus:   enum.PaymentStatusPaid,
				ReferenceID:     &orderID,
				TransactionDate: createdAt,
			})
		}
	}

	for month := 0; month < 6; month++ {
		date := now.AddDate(0, -month, 0)
		d.Expenses = append(d.Expenses,
			entity.Expense{
				ID:          uuid.New(),
				ReferenceNo: utils.GenerateReferenceNo("EXP"),
				ExpenseType: "Rent",
				Category:    enum.ExpenseCategoryFixed,
				Amount:      decimal.NewFromInt(1200),
				PaymentMode: enum.PaymentModeBankTransfer,
				ExpenseDate: date,
			},
			entity.Expense{
				ID:          uuid.New(),
				ReferenceNo: utils.GenerateReferenceNo("EXP"),
				ExpenseType: "Utilities",
				Category:    enum.ExpenseCategoryOperational,
				Amount:      decimal.NewFromInt(int64(180 + month*15)),
				PaymentMode: enum.PaymentModeCard,
				ExpenseDate: date,
			},
		)
		d.Transactions = append(d.Transactions, entity.Transaction{
			ID:              uuid.New(),
			ReferenceNo:     utils.GenerateReferenceNo("TXN"),
			TransactionType: enum.TransactionTypePurchase,
			Amount:          decimal.NewFromInt(int64(250 + month*40)),
			PaymentMode:     enum.PaymentModeBankTransfer,
			PaymentStatus:   enum.PaymentStatusPaid,
			TransactionDate: date,
		})
	}

	return d
}
