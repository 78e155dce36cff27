package analysis

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/StyleWatch-api/internal/application/dto"
	"github.com/jhoicas/StyleWatch-api/internal/domain/entity"
	"github.com/jhoicas/StyleWatch-api/internal/domain/inventory"
	"github.com/jhoicas/StyleWatch-api/internal/domain/salesreport"
)

const dateLayout = "2006-01-02"

func toParsedReportDTO(p entity.ParsedPayload) dto.ParsedReportDTO {
	out := dto.ParsedReportDTO{
		Title:     p.Title,
		Yesterday: p.Yesterday,
		Sum7d:     p.Sum7d,
		Skipped:   p.Skipped,
		Records:   make([]dto.SaleRecordDTO, 0, len(p.Records)),
	}
	for _, r := range salesreport.SortForGrid(p.Records) {
		out.TotalQty += r.Qty
		out.Records = append(out.Records, dto.SaleRecordDTO{
			Date:    r.Date.Format(dateLayout),
			Channel: r.Channel,
			Shop:    r.Shop,
			Name:    r.Name,
			Size:    r.Size,
			Color:   r.Color,
			Qty:     r.Qty,
		})
	}
	return out
}

func toSnapshotDTO(s entity.InventorySnapshot) dto.InventorySnapshotDTO {
	out := dto.InventorySnapshotDTO{
		TotalAvailable: s.TotalAvailable(),
		TotalOnHand:    s.TotalOnHand(),
		Colors:         s.ColorsNonZero(),
		Sizes:          s.SizesNonZero(),
		ByWarehouse:    s.ByWarehouse(),
		Skipped:        s.Skipped,
		Rows:           make([]dto.InventoryRowDTO, 0, len(s.Rows)),
	}
	for _, r := range s.Rows {
		out.Rows = append(out.Rows, dto.InventoryRowDTO{
			Name:      r.Name,
			Color:     r.Color,
			Size:      r.Size,
			Warehouse: r.Warehouse,
			Available: r.Available,
			OnHand:    r.OnHand,
		})
	}
	return out
}

func toSeriesDTO(buckets []entity.DailyBucket) []dto.DailyPointDTO {
	out := make([]dto.DailyPointDTO, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, dto.DailyPointDTO{
			Date:  b.Day.Format(dateLayout),
			Qty:   b.Qty,
			Label: salesreport.FormatNumber(float64(b.Qty)),
		})
	}
	return out
}

func toTotalsDTO(totals []salesreport.NamedTotal) []dto.NamedTotalDTO {
	out := make([]dto.NamedTotalDTO, 0, len(totals))
	for _, t := range totals {
		out = append(out, dto.NamedTotalDTO{Name: t.Name, Qty: t.Qty})
	}
	return out
}

func nullable(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

func toCellDTO(r entity.TurnoverResult) dto.TurnoverCellDTO {
	return dto.TurnoverCellDTO{
		Color:         r.Key.Color,
		Size:          r.Key.Size,
		SalesLast7d:   r.SalesLast7d,
		AvailableNow:  r.AvailableNow,
		AvgDailySales: r.AvgDailySales.Round(2),
		DaysOfCover:   nullable(decimal.NullDecimal{Decimal: r.DaysOfCover.Decimal.Round(1), Valid: r.DaysOfCover.Valid}),
		Shortage:      r.Shortage,
	}
}

func toGridDTO(g inventory.TurnoverGrid) dto.TurnoverGridDTO {
	out := dto.TurnoverGridDTO{
		Colors: g.Colors,
		Sizes:  g.Sizes,
		Cells:  make([][]dto.TurnoverCellDTO, len(g.Cells)),
	}
	for i, row := range g.Cells {
		out.Cells[i] = make([]dto.TurnoverCellDTO, len(row))
		for j, c := range row {
			out.Cells[i][j] = toCellDTO(c)
		}
	}
	return out
}

func toShortagesDTO(ranked []inventory.RankedShortage) []dto.ShortageDTO {
	out := make([]dto.ShortageDTO, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, dto.ShortageDTO{TurnoverCellDTO: toCellDTO(r.TurnoverResult), Priority: r.Priority})
	}
	return out
}

func toKPIDTO(k inventory.StyleKPI, windowDays int) dto.StyleKPIDTO {
	return dto.StyleKPIDTO{
		RecentSales:    k.RecentSales,
		WindowDays:     windowDays,
		TotalAvailable: k.TotalAvailable,
		TotalOnHand:    k.TotalOnHand,
		DaysOfCover:    nullable(k.DaysOfCover),
		Level:          string(k.Level),
	}
}

func toWarehousesDTO(shares []inventory.WarehouseShare) []dto.WarehouseShareDTO {
	out := make([]dto.WarehouseShareDTO, 0, len(shares))
	for _, s := range shares {
		out = append(out, dto.WarehouseShareDTO{Warehouse: s.Warehouse, Available: s.Available, Percent: s.Percent})
	}
	return out
}

func toHeatmapDTO(h inventory.StockHeatmap) dto.StockHeatmapDTO {
	return dto.StockHeatmapDTO{Colors: h.Colors, Sizes: h.Sizes, Data: h.Data}
}

func toRunsDTO(runs []entity.AnalysisRun) []dto.AnalysisRunDTO {
	out := make([]dto.AnalysisRunDTO, 0, len(runs))
	for _, r := range runs {
		out = append(out, dto.AnalysisRunDTO{
			ID:          r.ID,
			Records:     r.Records,
			Rows:        r.Rows,
			Shortages:   r.Shortages,
			DaysOfCover: nullable(r.DaysOfCover),
			Level:       r.Level,
			CreatedAt:   r.CreatedAt,
		})
	}
	return out
}
