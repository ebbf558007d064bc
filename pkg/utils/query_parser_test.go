package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilterFromQuery_Defaults(t *testing.T) {
	f := ParseFilterFromQuery(url.Values{})

	assert.False(t, f.WithPagination)
	assert.Equal(t, DefaultLimit, f.Limit)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 0, f.Offset)
	assert.Empty(t, f.Filter)
	assert.Empty(t, f.Sort)
}

func TestParseFilterFromQuery_Full(t *testing.T) {
	values, err := url.ParseQuery("filter[Status]=Approved&filter[Type]=&sort=-Amount&limit=20&page=3&withPagination=true")
	assert.NoError(t, err)

	f := ParseFilterFromQuery(values)

	assert.True(t, f.WithPagination)
	assert.Equal(t, map[string]interface{}{"Status": "Approved"}, f.Filter)
	assert.Equal(t, map[string]string{"Amount": "desc"}, f.Sort)
	assert.Equal(t, 20, f.Limit)
	assert.Equal(t, 3, f.Page)
	assert.Equal(t, 40, f.Offset)
}

func TestParseFilterFromQuery_LimitIsCapped(t *testing.T) {
	f := ParseFilterFromQuery(url.Values{"limit": {"5000"}, "sort[Name]": {"ASC"}, "sort[City]": {"sideways"}})

	assert.Equal(t, MaxLimit, f.Limit)
	assert.Equal(t, map[string]string{"Name": "asc"}, f.Sort)
}

func TestKeyFromQuery(t *testing.T) {
	values := url.Values{"RoleID": {"2"}, "Permission": {"7"}, "withPagination": {"true"}}

	key := KeyFromQuery(values, []string{"RoleID", "Permission"})

	assert.Equal(t, map[string]string{"RoleID": "2", "Permission": "7"}, key)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 3, TotalPages(21, 10))
	assert.Equal(t, 0, TotalPages(5, 0))
}
