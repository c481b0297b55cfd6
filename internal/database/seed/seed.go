package seed

import (
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"go.uber.org/zap"
)

var sampleItems = []goqu.Record{
	{
		"name": "Wireless Mouse", "description": "Ergonomic wireless mouse with USB receiver",
		"sku": "MOUSE-001", "quantity": 45, "unit": "pieces", "category": "Electronics",
		"min_threshold": 15, "max_threshold": 100, "unit_price": 24.99,
		"supplier": "Tech Supplies Inc.", "location": "Warehouse A - Shelf 12",
	},
	{
		"name": "Office Paper A4", "description": "Premium white office paper, 500 sheets per ream",
		"sku": "PAPER-A4-001", "quantity": 8, "unit": "reams", "category": "Office Supplies",
		"min_threshold": 10, "max_threshold": 200, "unit_price": 5.99,
		"supplier": "Paper World Ltd.", "location": "Warehouse B - Shelf 5",
	},
	{
		"name": "USB-C Cable", "description": "High-speed USB-C charging and data cable, 6ft",
		"sku": "CABLE-USBC-001", "quantity": 120, "unit": "pieces", "category": "Electronics",
		"min_threshold": 20, "max_threshold": 150, "unit_price": 12.99,
		"supplier": "Cable Connect Corp.", "location": "Warehouse A - Shelf 8",
	},
	{
		"name": "Ballpoint Pens (Blue)", "description": "Box of 50 blue ballpoint pens",
		"sku": "PEN-BLUE-001", "quantity": 5, "unit": "boxes", "category": "Office Supplies",
		"min_threshold": 8, "max_threshold": 50, "unit_price": 15.99,
		"supplier": "Pen & Paper Co.", "location": "Warehouse B - Shelf 3",
	},
	{
		"name": "Laptop Stand", "description": "Adjustable aluminum laptop stand",
		"sku": "STAND-001", "quantity": 32, "unit": "pieces", "category": "Electronics",
		"min_threshold": 10, "max_threshold": 50, "unit_price": 39.99,
		"supplier": "Tech Supplies Inc.", "location": "Warehouse A - Shelf 15",
	},
	{
		"name": "Sticky Notes (3x3)", "description": "Yellow sticky notes, pack of 12 pads",
		"sku": "STICKY-001", "quantity": 3, "unit": "packs", "category": "Office Supplies",
		"min_threshold": 5, "max_threshold": 30, "unit_price": 8.99,
		"supplier": "Paper World Ltd.", "location": "Warehouse B - Shelf 2",
	},
	{
		"name": "HDMI Cable 2.0", "description": "4K HDMI cable, 10ft length",
		"sku": "HDMI-001", "quantity": 67, "unit": "pieces", "category": "Electronics",
		"min_threshold": 15, "max_threshold": 80, "unit_price": 18.99,
		"supplier": "Cable Connect Corp.", "location": "Warehouse A - Shelf 9",
	},
	{
		"name": "Desk Organizer", "description": "Multi-compartment desk organizer",
		"sku": "ORG-001", "quantity": 18, "unit": "pieces", "category": "Office Supplies",
		"min_threshold": 10, "max_threshold": 40, "unit_price": 22.99,
		"supplier": "Office Essentials Ltd.", "location": "Warehouse B - Shelf 7",
	},
}

// Seed inserts the sample inventory when the table is empty. A non-empty
// table is left untouched.
func Seed(db *goqu.Database, log *zap.Logger) error {
	var count int
	if _, err := db.From("inventory_items").
		Select(goqu.COUNT("*")).
		Executor().ScanVal(&count); err != nil {
		return fmt.Errorf("failed to count inventory items: %w", err)
	}

	if count > 0 {
		log.Info("Database already contains data, skipping seed")
		return nil
	}

	query := db.Insert("inventory_items").Rows(sampleItems)
	if _, err := query.Executor().Exec(); err != nil {
		return fmt.Errorf("failed to seed inventory items: %w", err)
	}

	log.Info("Database seeded with sample inventory", zap.Int("items", len(sampleItems)))
	return nil
}
