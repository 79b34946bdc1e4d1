package repositories

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sampledata/internal/models"
)

func TestSchemaRepository_ListTables(t *testing.T) {
	repo := NewSchemaRepository()

	tables := repo.ListTables()
	require.Len(t, tables, 10)

	for _, name := range []string{"Customers", "Products", "Orders", "Employees", "Suppliers", "Categories", "Payments", "Inventory", "Reviews", "Shipments"} {
		cols, ok := tables[name]
		require.True(t, ok, "missing table %s", name)
		assert.Len(t, cols, 10, "table %s", name)
	}

	assert.Equal(t,
		[]string{"CustomerID", "FirstName", "LastName", "Email", "Phone", "Age", "Address", "City", "Country", "JoinDate"},
		tables["Customers"],
	)
}

func TestSchemaRepository_GetColumns(t *testing.T) {
	repo := NewSchemaRepository()

	cols, err := repo.GetColumns("Orders")
	require.NoError(t, err)
	assert.Equal(t, "OrderID", cols[0])
	assert.Equal(t, "DeliveryDate", cols[len(cols)-1])

	for _, name := range []string{"Foo", "customers", "CUSTOMERS", ""} {
		cols, err := repo.GetColumns(name)
		assert.ErrorIs(t, err, ErrTableNotFound, "table %q", name)
		assert.Nil(t, cols)
	}
}

func TestSchemaRepository_ReturnsCopies(t *testing.T) {
	repo := NewSchemaRepository()

	cols, err := repo.GetColumns("Customers")
	require.NoError(t, err)
	cols[0] = "Mutated"

	all := repo.ListTables()
	all["Customers"][1] = "Mutated"
	delete(all, "Orders")

	fresh, err := repo.GetColumns("Customers")
	require.NoError(t, err)
	assert.Equal(t, "CustomerID", fresh[0])
	assert.Equal(t, "FirstName", fresh[1])
	assert.Len(t, repo.ListTables(), 10)
}

func TestSchemaRepository_TableNames(t *testing.T) {
	names := NewSchemaRepository().TableNames()
	require.Len(t, names, 10)
	assert.True(t, sort.StringsAreSorted(names))
	assert.Equal(t, "Categories", names[0])
}

func TestSchemaRepository_PrimaryKeysAreIdentifiers(t *testing.T) {
	for _, table := range defaultTables {
		assert.Equal(t, table.Columns[0], table.PrimaryKey())
		assert.Contains(t, table.PrimaryKey(), "ID", "table %s", table.Name)
	}
}

func TestNewSchemaRepositoryFrom(t *testing.T) {
	repo := NewSchemaRepositoryFrom([]models.Table{
		{Name: "B", Columns: []string{"BID"}},
		{Name: "A", Columns: []string{"AID", "Name"}},
		{Name: "B", Columns: []string{"BID", "Status"}},
		{Name: "Empty"},
	})

	assert.Equal(t, []string{"A", "B", "Empty"}, repo.TableNames())

	cols, err := repo.GetColumns("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"BID", "Status"}, cols)

	cols, err = repo.GetColumns("Empty")
	require.NoError(t, err)
	assert.Empty(t, cols)
	assert.Equal(t, "", models.Table{Name: "Empty"}.PrimaryKey())
}
