package salesreport

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/StyleWatch-api/internal/domain/entity"
)

var (
	thousand = decimal.NewFromInt(1_000)
	million  = decimal.NewFromInt(1_000_000)
)

// DayRange devuelve el primer y último día presentes en records.
// Si windowDays > 0, el primer día se recorta a windowDays días contados hacia atrás
// desde el último día con datos (no desde hoy). ok es false si records está vacío.
func DayRange(records []entity.SaleRecord, windowDays int) (minDay, maxDay time.Time, ok bool) {
	if len(records) == 0 {
		return time.Time{}, time.Time{}, false
	}
	minDay, maxDay = records[0].Day(), records[0].Day()
	for _, r := range records[1:] {
		d := r.Day()
		if d.Before(minDay) {
			minDay = d
		}
		if d.After(maxDay) {
			maxDay = d
		}
	}
	if windowDays > 0 {
		if from := maxDay.AddDate(0, 0, 1-windowDays); from.After(minDay) {
			minDay = from
		}
	}
	return minDay, maxDay, true
}

// InWindow filtra los registros cuyo día cae dentro de los últimos windowDays días con datos.
func InWindow(records []entity.SaleRecord, windowDays int) []entity.SaleRecord {
	minDay, _, ok := DayRange(records, windowDays)
	if !ok {
		return nil
	}
	out := make([]entity.SaleRecord, 0, len(records))
	for _, r := range records {
		if !r.Day().Before(minDay) {
			out = append(out, r)
		}
	}
	return out
}

// BuildDateSeries agrupa las cantidades por día y devuelve un bucket por cada día
// entre el primero y el último del rango, con cero en los días sin ventas.
func BuildDateSeries(records []entity.SaleRecord, windowDays int) []entity.DailyBucket {
	minDay, maxDay, ok := DayRange(records, windowDays)
	if !ok {
		return []entity.DailyBucket{}
	}

	byDay := make(map[time.Time]int)
	for _, r := range records {
		byDay[r.Day()] += r.Qty
	}

	series := make([]entity.DailyBucket, 0, int(maxDay.Sub(minDay).Hours()/24)+1)
	for day := minDay; !day.After(maxDay); day = day.AddDate(0, 0, 1) {
		series = append(series, entity.DailyBucket{Day: day, Qty: byDay[day]})
	}
	return series
}

// FormatNumber representa una magnitud con sufijo K (≥1.000) o M (≥1.000.000)
// y hasta dos decimales; por debajo de mil, entero redondeado.
func FormatNumber(v float64) string {
	d := decimal.NewFromFloat(v)
	switch {
	case d.Abs().GreaterThanOrEqual(million):
		return d.Div(million).Round(2).String() + "M"
	case d.Abs().GreaterThanOrEqual(thousand):
		return d.Div(thousand).Round(2).String() + "K"
	default:
		return d.Round(0).String()
	}
}
