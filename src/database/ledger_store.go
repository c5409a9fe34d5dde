package database

import (
	"database/sql"
	"fmt"

	"github.com/username/barcontrol/backend/src/models"
	"github.com/username/barcontrol/backend/src/processors"
)

// Store loads the snapshot collections the report engine consumes. The
// engine itself owns no persistence; this is the read side of the ledger
// collaborator.
type Store struct {
	db *sql.DB
}

// NewStore returns a Store backed by the package-level connection.
func NewStore() *Store {
	return &Store{db: DB}
}

// LoadSnapshot reads the full ledger and reference collections in one go.
// The returned snapshot is self-contained; subsequent writes to the database
// never mutate it.
func (s *Store) LoadSnapshot() (processors.Snapshot, error) {
	var snap processors.Snapshot

	transactions, err := s.fetchTransactions()
	if err != nil {
		return snap, fmt.Errorf("loading transactions: %w", err)
	}
	products, err := s.fetchProducts()
	if err != nil {
		return snap, fmt.Errorf("loading products: %w", err)
	}
	modalities, err := s.fetchGameModalities()
	if err != nil {
		return snap, fmt.Errorf("loading game modalities: %w", err)
	}
	customers, err := s.fetchCustomers()
	if err != nil {
		return snap, fmt.Errorf("loading customers: %w", err)
	}

	snap.Transactions = transactions
	snap.Products = products
	snap.GameModalities = modalities
	snap.Customers = customers
	return snap, nil
}

func (s *Store) fetchTransactions() ([]models.Transaction, error) {
	itemsByTx, err := s.fetchItems()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`
		SELECT id, type, timestamp, total, payment_method, expense_category,
		       customer_id, tab_name, description, order_created_at
		FROM transactions
		ORDER BY timestamp DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		var paymentMethod, expenseCategory, customerID, tabName, description sql.NullString
		if err := rows.Scan(
			&tx.ID, &tx.Type, &tx.Timestamp, &tx.Total,
			&paymentMethod, &expenseCategory, &customerID,
			&tabName, &description, &tx.OrderCreatedAt,
		); err != nil {
			return nil, err
		}
		tx.PaymentMethod = paymentMethod.String
		tx.ExpenseCategory = expenseCategory.String
		tx.CustomerID = customerID.String
		tx.TabName = tabName.String
		tx.Description = description.String
		tx.Items = itemsByTx[tx.ID]
		transactions = append(transactions, tx)
	}
	return transactions, rows.Err()
}

func (s *Store) fetchItems() (map[string][]models.OrderItem, error) {
	rows, err := s.db.Query(`
		SELECT transaction_id, product_id, name, quantity, unit_price, size, identifier
		FROM transaction_items
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	itemsByTx := make(map[string][]models.OrderItem)
	for rows.Next() {
		var txID string
		var item models.OrderItem
		var productID, name, identifier sql.NullString
		var size sql.NullFloat64
		if err := rows.Scan(&txID, &productID, &name, &item.Quantity, &item.UnitPrice, &size, &identifier); err != nil {
			return nil, err
		}
		item.ProductID = productID.String
		item.Name = name.String
		item.Size = size.Float64
		item.Identifier = identifier.String
		itemsByTx[txID] = append(itemsByTx[txID], item)
	}
	return itemsByTx, rows.Err()
}

func (s *Store) fetchProducts() ([]models.Product, error) {
	rows, err := s.db.Query(`SELECT id, name, cost_price, base_unit_size, sale_type FROM products`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		var baseUnitSize sql.NullFloat64
		var saleType sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &p.CostPrice, &baseUnitSize, &saleType); err != nil {
			return nil, err
		}
		p.BaseUnitSize = baseUnitSize.Float64
		p.SaleType = saleType.String
		products = append(products, p)
	}
	return products, rows.Err()
}

func (s *Store) fetchGameModalities() ([]models.GameModality, error) {
	rows, err := s.db.Query(`SELECT id, name, product_id FROM game_modalities`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var modalities []models.GameModality
	for rows.Next() {
		var m models.GameModality
		var name sql.NullString
		if err := rows.Scan(&m.ID, &name, &m.ProductID); err != nil {
			return nil, err
		}
		m.Name = name.String
		modalities = append(modalities, m)
	}
	return modalities, rows.Err()
}

func (s *Store) fetchCustomers() ([]models.Customer, error) {
	rows, err := s.db.Query(`SELECT id, name, balance FROM customers`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []models.Customer
	for rows.Next() {
		var c models.Customer
		var name sql.NullString
		if err := rows.Scan(&c.ID, &name, &c.Balance); err != nil {
			return nil, err
		}
		c.Name = name.String
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

// SaveDailySnapshot upserts the headline KPIs of one closed business day.
// Re-running the snapshot job for the same day overwrites the previous row.
func (s *Store) SaveDailySnapshot(day string, report *models.DashboardReport) error {
	_, err := s.db.Exec(`
		INSERT INTO daily_snapshots (day, revenue, cash_inflow, expenses, net_profit, sales_count, goal, goal_progress)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(day) DO UPDATE SET
			revenue = excluded.revenue,
			cash_inflow = excluded.cash_inflow,
			expenses = excluded.expenses,
			net_profit = excluded.net_profit,
			sales_count = excluded.sales_count,
			goal = excluded.goal,
			goal_progress = excluded.goal_progress`,
		day, report.Metrics.Revenue, report.Metrics.CashInflow, report.Metrics.Expenses,
		report.Metrics.NetProfit, report.Metrics.SalesCount, report.Goal, report.GoalProgress)
	if err != nil {
		return fmt.Errorf("saving daily snapshot for %s: %w", day, err)
	}
	return nil
}
