package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"retail_inventory/internal/application/analytics"
	"retail_inventory/internal/application/inventory"
	"retail_inventory/internal/domain/order"
	"retail_inventory/internal/domain/repository"
	"retail_inventory/internal/infrastructure/persistence/memory"
	"retail_inventory/pkg/logger"
)

// Demo chạy trọn một kịch bản mẫu: seed catalog và customer, tạo order,
// confirm, rồi in inventory report + top sellers + customer analytics.
func main() {
	zapLog, err := logger.NewZapLogger("production")
	if err != nil {
		log.Fatalf("create logger failed: %v", err)
	}
	defer zapLog.Sync()

	ctx := context.Background()
	store := memory.NewStore(nil)
	inv := inventory.NewService(store, inventory.NopPublisher{}, zapLog, nil, 0)
	stats := analytics.NewService(store)

	products := []inventory.AddProductCommand{
		{ProductID: "LAPTOP001", Name: "Gaming Laptop", Price: 1299.99, Category: "Electronics", StockQuantity: 15},
		{ProductID: "MOUSE001", Name: "Wireless Mouse", Price: 29.99, Category: "Electronics", StockQuantity: 50},
		{ProductID: "BOOK001", Name: "Go Programming", Price: 49.99, Category: "Books", StockQuantity: 25},
	}
	for _, cmd := range products {
		if _, err := inv.AddProduct(ctx, cmd); err != nil {
			zapLog.Fatal("add product failed", logger.Error(err))
		}
	}

	customers := []inventory.AddCustomerCommand{
		{CustomerID: "CUST001", Name: "Alice Johnson", Email: "alice@example.com", Phone: "+1234567890"},
		{CustomerID: "CUST002", Name: "Bob Smith", Email: "bob@example.com"},
	}
	for _, cmd := range customers {
		if _, err := inv.AddCustomer(ctx, cmd); err != nil {
			zapLog.Fatal("add customer failed", logger.Error(err))
		}
	}

	o, err := inv.CreateOrder(ctx, inventory.CreateOrderCommand{
		CustomerID: "CUST001",
		Items: []repository.OrderLine{
			{ProductID: "LAPTOP001", Quantity: 1},
			{ProductID: "MOUSE001", Quantity: 2},
		},
	})
	if err != nil {
		zapLog.Fatal("create order failed", logger.Error(err))
	}

	if _, err := inv.UpdateOrderStatus(ctx, o.ID, order.StatusConfirmed); err != nil {
		zapLog.Fatal("confirm order failed", logger.Error(err))
	}

	report, err := inv.GenerateReport(ctx)
	if err != nil {
		zapLog.Fatal("generate report failed", logger.Error(err))
	}
	printJSON("Inventory Report", report)

	top, err := stats.TopSellingProducts(ctx, 5)
	if err != nil {
		zapLog.Fatal("top selling products failed", logger.Error(err))
	}
	printJSON("Top Selling Products", top)

	customerStats, err := stats.CustomerAnalytics(ctx, "CUST001")
	if err != nil {
		zapLog.Fatal("customer analytics failed", logger.Error(err))
	}
	printJSON("Customer Analytics", customerStats)
}

func printJSON(title string, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("marshal %s failed: %v", title, err)
	}
	fmt.Printf("%s:\n%s\n", title, data)
}
