package query

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type contactRow struct {
	ID        uint `gorm:"primarykey"`
	FirstName string
	LastName  string
	Phone     string
}

func setupSearchDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&contactRow{}))

	rows := []contactRow{
		{FirstName: "John", LastName: "Smith", Phone: "500100200"},
		{FirstName: "John", LastName: "Doe", Phone: "500300400"},
		{FirstName: "Anna", LastName: "Smith", Phone: "600100200"},
		{FirstName: "Maria", LastName: "Kowalska", Phone: "700_800"},
	}
	require.NoError(t, db.Create(&rows).Error)

	return db
}

func searchNames(t *testing.T, db *gorm.DB, phrase string) []string {
	t.Helper()

	tx := db.Model(&contactRow{})
	tx = ApplySearch(tx, phrase, "first_name", "last_name", "phone")

	var found []contactRow
	require.NoError(t, tx.Order("id").Find(&found).Error)

	names := make([]string, 0, len(found))
	for _, row := range found {
		names = append(names, row.FirstName+" "+row.LastName)
	}
	return names
}

func TestApplySearch(t *testing.T) {
	db := setupSearchDB(t)

	t.Run("single term matches any column", func(t *testing.T) {
		assert.Equal(t, []string{"John Smith", "Anna Smith"}, searchNames(t, db, "smith"))
	})

	t.Run("every term must match somewhere", func(t *testing.T) {
		assert.Equal(t, []string{"John Smith"}, searchNames(t, db, "john smith"))
	})

	t.Run("terms may hit different columns", func(t *testing.T) {
		assert.Equal(t, []string{"Anna Smith"}, searchNames(t, db, "anna 600"))
	})

	t.Run("match is case-insensitive", func(t *testing.T) {
		assert.Equal(t, []string{"John Smith"}, searchNames(t, db, "JOHN SMITH"))
	})

	t.Run("substring match", func(t *testing.T) {
		assert.Equal(t, []string{"Maria Kowalska"}, searchNames(t, db, "owal"))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, searchNames(t, db, "nobody"))
	})

	t.Run("empty phrase returns everything", func(t *testing.T) {
		assert.Len(t, searchNames(t, db, ""), 4)
	})

	t.Run("whitespace-only phrase returns everything", func(t *testing.T) {
		assert.Len(t, searchNames(t, db, "   "), 4)
	})

	t.Run("like metacharacters are literal", func(t *testing.T) {
		assert.Empty(t, searchNames(t, db, "%"))
		assert.Equal(t, []string{"Maria Kowalska"}, searchNames(t, db, "0_8"))
	})

	t.Run("base conditions are preserved", func(t *testing.T) {
		tx := db.Model(&contactRow{}).Where("last_name = ?", "Smith")
		tx = ApplySearch(tx, "john", "first_name", "last_name", "phone")

		var found []contactRow
		require.NoError(t, tx.Find(&found).Error)
		require.Len(t, found, 1)
		assert.Equal(t, "John", found[0].FirstName)
	})
}

func TestApplySearchNoColumns(t *testing.T) {
	db := setupSearchDB(t)

	tx := ApplySearch(db.Model(&contactRow{}), "john")

	var found []contactRow
	require.NoError(t, tx.Find(&found).Error)
	assert.Len(t, found, 4)
}
