package schema

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "bank-dashboard/pkg/errors"
)

func TestCatalog_AllowList(t *testing.T) {
	names := Names()
	require.Len(t, names, 26)
	assert.Equal(t, "access", names[0])
	assert.Equal(t, "variablerateinvestment", names[len(names)-1])

	assert.True(t, IsAllowed("transaction"))
	assert.False(t, IsAllowed("pg_user"))
	assert.False(t, IsAllowed("branch; DROP TABLE branch"))
}

func TestCatalog_PrimaryKeysAreColumns(t *testing.T) {
	for _, table := range Catalog() {
		require.NotEmpty(t, table.PrimaryKey, table.Name)
		for _, k := range table.PrimaryKey {
			col, ok := table.Column(k)
			require.True(t, ok, "%s.%s", table.Name, k)
			assert.False(t, col.Nullable, "ключевая колонка %s.%s не может быть NULL", table.Name, k)
		}
		assert.Len(t, table.KeyColumns(), len(table.PrimaryKey))
	}
}

func TestCatalog_CompositeKeys(t *testing.T) {
	addr := MustLookup("branchaddress")
	assert.Equal(t, []string{"Street", "City", "State", "ZipCode", "Country"}, addr.PrimaryKey)
	assert.False(t, addr.IsKey("BranchID"))

	assist := MustLookup("assist")
	assert.Equal(t, []string{"CustomerID", "EmpID", "Date", "Time"}, assist.PrimaryKey)
}

func TestColumn_Parse(t *testing.T) {
	customer := MustLookup("customer")
	dob, _ := customer.Column("DateOfBirth")
	gender, _ := customer.Column("Gender")
	id, _ := customer.Column("CustomerID")
	name, _ := customer.Column("Name")

	v, err := dob.Parse("1990-05-17")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC), v)

	_, err = dob.Parse("17/05/1990")
	var inputErr *apperrors.InvalidInputError
	require.True(t, errors.As(err, &inputErr))
	assert.Contains(t, inputErr.Message, "YYYY-MM-DD")

	_, err = dob.Parse("")
	assert.ErrorIs(t, err, apperrors.ErrRequiredField)

	v, err = gender.Parse("")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = gender.Parse("X")
	assert.Error(t, err)

	v, err = id.Parse("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	_, err = id.Parse("4x2")
	assert.Error(t, err)

	v, err = id.Parse("2147483647")
	require.NoError(t, err)
	assert.Equal(t, int64(2147483647), v)

	_, err = id.Parse("99999999999")
	require.True(t, errors.As(err, &inputErr))
	assert.Contains(t, inputErr.Message, "INTEGER")

	_, err = name.Parse(strings.Repeat("а", 101))
	assert.Error(t, err)
}

func TestColumn_ParseDecimalAndTime(t *testing.T) {
	inv := MustLookup("fixedrateinvestment")
	amount, _ := inv.Column("Amount")
	v, err := amount.Parse("1500.50")
	require.NoError(t, err)
	assert.Equal(t, "1500.5", v)

	_, err = amount.Parse("lots")
	assert.Error(t, err)

	kind, _ := inv.Column("Type")
	v, err = kind.Parse("government bond")
	require.NoError(t, err)
	assert.Equal(t, "government bond", v)

	tm, _ := MustLookup("assist").Column("Time")
	v, err = tm.Parse("09:15")
	require.NoError(t, err)
	assert.Equal(t, "09:15:00", v)

	_, err = tm.Parse("25:00")
	assert.Error(t, err)
}
