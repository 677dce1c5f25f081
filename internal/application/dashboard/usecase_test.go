package dashboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scges/scges-api/internal/application/apptest"
	"github.com/scges/scges-api/internal/application/catalog"
	"github.com/scges/scges-api/internal/application/dashboard"
	"github.com/scges/scges-api/internal/application/dto"
	"github.com/scges/scges-api/internal/application/ledger"
)

func newDashboard(t *testing.T) (*dashboard.UseCase, *ledger.UseCase) {
	t.Helper()
	products := apptest.NewMemProductRepo()
	movements := apptest.NewMemMovementRepo()
	cat := catalog.NewUseCase(products, movements, apptest.NewMemFileRepo(), 0)
	led := ledger.NewUseCase(movements, products, cat, ledger.Config{})
	return dashboard.NewUseCase(cat, led), led
}

func TestGetStats_ConsolidaCatalogoELedger(t *testing.T) {
	uc, led := newDashboard(t)
	entry, err := led.RecordEntry(dto.RecordEntryRequest{
		Product: "Caneta Azul", Quantity: 100, Staff: "João",
	})
	require.NoError(t, err)
	_, err = led.RecordExit(dto.RecordExitRequest{
		ProductID: entry.Product.ID, Quantity: 80, Staff: "Maria",
	})
	require.NoError(t, err)

	stats, err := uc.GetStats()

	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalProducts)
	assert.Equal(t, int64(100), stats.TotalEntries)
	assert.Equal(t, int64(80), stats.TotalExits)
	assert.Equal(t, 1, stats.LowStockProducts)
	assert.Equal(t, 2, stats.TotalMovements)
}

func TestGetRecentMovements_LimitePadrao(t *testing.T) {
	uc, led := newDashboard(t)
	for i := 0; i < 7; i++ {
		_, err := led.RecordEntry(dto.RecordEntryRequest{
			Product: "Caneta Azul", Quantity: 1, Staff: "João",
		})
		require.NoError(t, err)
	}

	out, err := uc.GetRecentMovements(0)

	require.NoError(t, err)
	assert.Len(t, out, 5, "limite padrão de 5")

	out, err = uc.GetRecentMovements(2)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestGetLowStock_Dashboard(t *testing.T) {
	uc, led := newDashboard(t)
	entry, err := led.RecordEntry(dto.RecordEntryRequest{
		Product: "Caneta Azul", Quantity: 100, Staff: "João",
	})
	require.NoError(t, err)
	_, err = led.RecordExit(dto.RecordExitRequest{
		ProductID: entry.Product.ID, Quantity: 90, Staff: "Maria",
	})
	require.NoError(t, err)

	out, err := uc.GetLowStock(0)

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Caneta Azul", out[0].Description)
	assert.Equal(t, int64(10), out[0].Quantity)
}
