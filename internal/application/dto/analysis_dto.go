package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AnalyzeRequest cuerpo de POST /api/analysis y /api/analysis/report.pdf.
// Debe venir al menos uno de los dos textos.
type AnalyzeRequest struct {
	Style         string `json:"style" validate:"max=120"`
	ReportText    string `json:"report_text" validate:"required_without=InventoryFeed,max=2000000"`
	InventoryFeed string `json:"inventory_feed" validate:"max=2000000"`
	TrendWindow   int    `json:"trend_window" validate:"min=0,max=365"` // 0 = primera ventana configurada
	Persist       bool   `json:"persist"`
}

// ParseReportRequest cuerpo de POST /api/analysis/parse.
// Los filtros son opcionales y solo recortan Records y TotalQty.
type ParseReportRequest struct {
	ReportText string `json:"report_text" validate:"required,max=2000000"`
	Channel    string `json:"channel,omitempty" validate:"max=100"`
	Shop       string `json:"shop,omitempty" validate:"max=100"`
	Color      string `json:"color,omitempty" validate:"max=100"`
	Size       string `json:"size,omitempty" validate:"max=20"`
	Q          string `json:"q,omitempty" validate:"max=200"` // búsqueda libre
}

// ParseInventoryRequest cuerpo de POST /api/inventory/snapshot.
type ParseInventoryRequest struct {
	InventoryFeed string `json:"inventory_feed" validate:"required,max=2000000"`
}

// SaleRecordDTO línea de venta normalizada.
type SaleRecordDTO struct {
	Date    string `json:"date"` // 2006-01-02
	Channel string `json:"channel,omitempty"`
	Shop    string `json:"shop,omitempty"`
	Name    string `json:"name"`
	Size    string `json:"size"`
	Color   string `json:"color"`
	Qty     int    `json:"qty"`
}

// ParsedReportDTO resultado del parser de reportes.
type ParsedReportDTO struct {
	Title     string          `json:"title"`
	Yesterday string          `json:"yesterday"`
	Sum7d     *int            `json:"sum_7d"`
	TotalQty  int             `json:"total_qty"`
	Skipped   int             `json:"skipped"`
	Records   []SaleRecordDTO `json:"records"`
}

// InventoryRowDTO fila del feed de inventario.
type InventoryRowDTO struct {
	Name      string `json:"name"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	Warehouse string `json:"warehouse"`
	Available int    `json:"available"`
	OnHand    int    `json:"on_hand"`
}

// InventorySnapshotDTO foto de inventario con sus vistas derivadas.
type InventorySnapshotDTO struct {
	TotalAvailable int               `json:"total_available"`
	TotalOnHand    int               `json:"total_on_hand"`
	Colors         []string          `json:"colors"` // con disponible > 0, de mayor a menor
	Sizes          []string          `json:"sizes"`  // con disponible > 0, en orden de tallas
	ByWarehouse    map[string]int    `json:"by_warehouse"`
	Skipped        int               `json:"skipped"`
	Rows           []InventoryRowDTO `json:"rows"`
}

// DailyPointDTO punto de la serie diaria.
type DailyPointDTO struct {
	Date  string `json:"date"`
	Qty   int    `json:"qty"`
	Label string `json:"label"`
}

// NamedTotalDTO total de ventas por una dimensión (canal, tienda, color o talla).
type NamedTotalDTO struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// TurnoverCellDTO rotación de un SKU. DaysOfCover es null cuando no hay ventas.
type TurnoverCellDTO struct {
	Color         string           `json:"color"`
	Size          string           `json:"size"`
	SalesLast7d   int              `json:"sales_last_7d"`
	AvailableNow  int              `json:"available_now"`
	AvgDailySales decimal.Decimal  `json:"avg_daily_sales"`
	DaysOfCover   *decimal.Decimal `json:"days_of_cover"`
	Shortage      bool             `json:"shortage"`
}

// TurnoverGridDTO matriz colores × tallas; Cells[i][j] = Colors[i], Sizes[j].
type TurnoverGridDTO struct {
	Colors []string            `json:"colors"`
	Sizes  []string            `json:"sizes"`
	Cells  [][]TurnoverCellDTO `json:"cells"`
}

// ShortageDTO SKU en quiebre con su prioridad (1 = más urgente).
type ShortageDTO struct {
	TurnoverCellDTO
	Priority int `json:"priority"`
}

// StyleKPIDTO indicadores globales del estilo.
type StyleKPIDTO struct {
	RecentSales    int              `json:"recent_sales"`
	WindowDays     int              `json:"window_days"`
	TotalAvailable int              `json:"total_available"`
	TotalOnHand    int              `json:"total_on_hand"`
	DaysOfCover    *decimal.Decimal `json:"days_of_cover"`
	Level          string           `json:"level"` // red | yellow | green | none
}

// WarehouseShareDTO porción del disponible por bodega.
type WarehouseShareDTO struct {
	Warehouse string          `json:"warehouse"`
	Available int             `json:"available"`
	Percent   decimal.Decimal `json:"percent"`
}

// StockHeatmapDTO disponible por color × talla.
type StockHeatmapDTO struct {
	Colors []string `json:"colors"`
	Sizes  []string `json:"sizes"`
	Data   [][]int  `json:"data"`
}

// StyleAnalysisDTO respuesta de POST /api/analysis.
type StyleAnalysisDTO struct {
	RunID                  string               `json:"run_id,omitempty"`
	Style                  string               `json:"style"`
	Persisted              bool                 `json:"persisted"`
	TrendWindow            int                  `json:"trend_window"`
	Report                 ParsedReportDTO      `json:"report"`
	Inventory              InventorySnapshotDTO `json:"inventory"`
	Series                 []DailyPointDTO      `json:"series"`
	KPI                    StyleKPIDTO          `json:"kpi"`
	Turnover               TurnoverGridDTO      `json:"turnover"`
	Shortages              []ShortageDTO        `json:"shortages"`
	MissingSizes           []string             `json:"missing_sizes"`
	MissingSizesWithDemand []string             `json:"missing_sizes_with_demand"`
	Warehouses             []WarehouseShareDTO  `json:"warehouses"`
	Heatmap                StockHeatmapDTO      `json:"heatmap"`
	ByChannel              []NamedTotalDTO      `json:"by_channel"`
	ByShop                 []NamedTotalDTO      `json:"by_shop"`
	ByColor                []NamedTotalDTO      `json:"by_color"`
	BySize                 []NamedTotalDTO      `json:"by_size"`
	GeneratedAt            time.Time            `json:"generated_at"`
}

// StyleHistoryDTO respuesta de GET /api/styles/:name/history.
type StyleHistoryDTO struct {
	Style       string           `json:"style"`
	WindowDays  int              `json:"window_days"`
	RecordCount int              `json:"record_count"`
	SnapshotAt  *time.Time       `json:"snapshot_at"`
	Series      []DailyPointDTO  `json:"series"`
	KPI         StyleKPIDTO      `json:"kpi"`
	Turnover    TurnoverGridDTO  `json:"turnover"`
	Shortages   []ShortageDTO    `json:"shortages"`
	Runs        []AnalysisRunDTO `json:"runs"`
}

// AnalysisRunDTO corrida persistida en la bitácora.
type AnalysisRunDTO struct {
	ID          string           `json:"id"`
	Records     int              `json:"records"`
	Rows        int              `json:"rows"`
	Shortages   int              `json:"shortages"`
	DaysOfCover *decimal.Decimal `json:"days_of_cover"`
	Level       string           `json:"level"`
	CreatedAt   time.Time        `json:"created_at"`
}
