package integrations_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bank-dashboard/internal/integrations"
	"bank-dashboard/internal/integrations/mock"
)

func TestRegistry_Active(t *testing.T) {
	r := integrations.NewRegistry()

	_, err := r.GetActive()
	assert.Error(t, err)

	require.NoError(t, r.Register(mock.NewMockProvider()))
	assert.Error(t, r.Register(mock.NewMockProvider()), "повторная регистрация")
	assert.Error(t, r.SetActive("nominatim"))

	require.NoError(t, r.SetActive(mock.Name))
	g, err := r.GetActive()
	require.NoError(t, err)
	assert.Equal(t, mock.Name, g.Name())
}

func TestMockProvider_Synthetic(t *testing.T) {
	m := mock.NewMockProvider()
	_, ok, err := m.Geocode(context.Background(), "1 Main St")
	require.NoError(t, err)
	assert.False(t, ok)

	m.Synthetic = true
	a, ok, err := m.Geocode(context.Background(), "1 Main St")
	require.NoError(t, err)
	require.True(t, ok)
	b, _, _ := m.Geocode(context.Background(), "1 Main St")
	assert.Equal(t, a, b)
	assert.True(t, a.Lat >= 25 && a.Lat < 49)
	assert.True(t, a.Lon >= -124 && a.Lon < -67)
}
