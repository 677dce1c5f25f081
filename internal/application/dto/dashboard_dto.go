package dto

// DashboardStatsResponse estatísticas consolidadas do dashboard:
// catálogo + ledger numa única resposta.
type DashboardStatsResponse struct {
	TotalProducts    int   `json:"totalProducts"`
	TotalEntries     int64 `json:"totalEntries"`
	TotalExits       int64 `json:"totalExits"`
	LowStockProducts int   `json:"lowStockProducts"`
	TotalMovements   int   `json:"totalMovements"`
}
