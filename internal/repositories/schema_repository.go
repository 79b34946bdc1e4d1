package repositories

import (
	"errors"
	"sort"

	"sampledata/internal/models"
)

var ErrTableNotFound = errors.New("table not found")

// defaultTables is the fixed sample catalog served by the API.
var defaultTables = []models.Table{
	{Name: "Customers", Columns: []string{"CustomerID", "FirstName", "LastName", "Email", "Phone", "Age", "Address", "City", "Country", "JoinDate"}},
	{Name: "Products", Columns: []string{"ProductID", "ProductName", "Category", "Price", "StockQuantity", "SupplierID", "Manufacturer", "Weight", "ExpiryDate", "IsActive"}},
	{Name: "Orders", Columns: []string{"OrderID", "CustomerID", "OrderDate", "TotalAmount", "ShippingAddress", "City", "PostalCode", "Status", "PaymentMethod", "DeliveryDate"}},
	{Name: "Employees", Columns: []string{"EmployeeID", "FirstName", "LastName", "Position", "Department", "Salary", "HireDate", "Email", "Phone", "ManagerID"}},
	{Name: "Suppliers", Columns: []string{"SupplierID", "CompanyName", "ContactName", "Address", "City", "Country", "Phone", "Email", "ProductCategory", "Rating"}},
	{Name: "Categories", Columns: []string{"CategoryID", "CategoryName", "Description", "ParentCategoryID", "CreatedDate", "UpdatedDate", "ImageURL", "SortOrder", "IsActive", "ProductCount"}},
	{Name: "Payments", Columns: []string{"PaymentID", "OrderID", "PaymentDate", "Amount", "PaymentMethod", "TransactionID", "Status", "CardLastFour", "Currency", "RefundAmount"}},
	{Name: "Inventory", Columns: []string{"InventoryID", "ProductID", "WarehouseID", "Quantity", "MinStockLevel", "ReorderPoint", "LastUpdated", "Location", "BatchNumber", "ExpiryDate"}},
	{Name: "Reviews", Columns: []string{"ReviewID", "ProductID", "CustomerID", "Rating", "Comment", "ReviewDate", "HelpfulCount", "VerifiedPurchase", "Title", "Response"}},
	{Name: "Shipments", Columns: []string{"ShipmentID", "OrderID", "Carrier", "TrackingNumber", "ShipDate", "EstimatedDelivery", "ActualDelivery", "ShippingCost", "Status", "DeliveryAddress"}},
}

// SchemaRepository is the read-only table catalog. It is built once at
// startup and never mutated, so it is safe to share between requests.
type SchemaRepository struct {
	tables map[string][]string
	names  []string
}

// NewSchemaRepository returns a catalog holding the built-in sample tables.
func NewSchemaRepository() *SchemaRepository {
	return NewSchemaRepositoryFrom(defaultTables)
}

// NewSchemaRepositoryFrom builds a catalog from the given tables. Later
// duplicates of a table name replace earlier ones.
func NewSchemaRepositoryFrom(tables []models.Table) *SchemaRepository {
	r := &SchemaRepository{tables: make(map[string][]string, len(tables))}
	for _, t := range tables {
		if _, exists := r.tables[t.Name]; !exists {
			r.names = append(r.names, t.Name)
		}
		r.tables[t.Name] = append([]string(nil), t.Columns...)
	}
	sort.Strings(r.names)
	return r
}

// ListTables returns the whole catalog as table name -> ordered columns.
// The result is a copy.
func (r *SchemaRepository) ListTables() map[string][]string {
	out := make(map[string][]string, len(r.tables))
	for name, cols := range r.tables {
		out[name] = append([]string(nil), cols...)
	}
	return out
}

// GetColumns returns the ordered columns of a table. Names are matched
// exactly, including case.
func (r *SchemaRepository) GetColumns(table string) ([]string, error) {
	cols, ok := r.tables[table]
	if !ok {
		return nil, ErrTableNotFound
	}
	return append([]string(nil), cols...), nil
}

// TableNames returns the catalog's table names in sorted order.
func (r *SchemaRepository) TableNames() []string {
	return append([]string(nil), r.names...)
}
