// Package salesreport convierte el texto semiestructurado del reporte de ventas
// en registros normalizados y series diarias.
//
// Formatos reconocidos (los dos puntos pueden ser ASCII o de ancho completo):
//
//	Estilo: 昨日售出120件                          (título + resumen de ayer)
//	Estilo 近7天销量汇总：593                      (total de 7 días)
//	2024-01-05 Estilo M 红: 12件                   (detalle, formato antiguo)
//	天猫 旗舰店A 2024-01-05 Estilo M 红: 12件      (detalle con canal y tienda)
//
// El parser es de mejor esfuerzo: nunca devuelve error y descarta en silencio
// las líneas que no reconoce.
package salesreport

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/StyleWatch-api/internal/domain/entity"
	"github.com/jhoicas/StyleWatch-api/pkg/textnorm"
)

const dateLayout = "2006-01-02"

var (
	titleRe = regexp.MustCompile(`^(?P<title>.+?)[:：]\s*(?P<yest>昨日.*)$`)
	sumRe   = regexp.MustCompile(`(?P<title>.+?)\s+近7天销量汇总\s*[:：]\s*(?P<sum>\d+)`)
)

// recordPattern formato de línea de detalle. Los grupos channel y shop son opcionales.
type recordPattern struct {
	name string
	re   *regexp.Regexp
}

// recordPatterns se evalúan en orden; gana el primero que coincide.
// Para un formato nuevo basta con añadir una entrada con los grupos date, rest y qty.
var recordPatterns = []recordPattern{
	{
		name: "channel",
		re: regexp.MustCompile(
			`^(?P<channel>\S+)\s+(?P<shop>.+?)\s+(?P<date>20\d{2}-\d{2}-\d{2})\s+(?P<rest>.+?)\s*[:：]\s*(?P<qty>\d+)\s*件$`),
	},
	{
		name: "legacy",
		re: regexp.MustCompile(
			`^(?P<date>20\d{2}-\d{2}-\d{2})\s+(?P<rest>.+?)\s*[:：]\s*(?P<qty>\d+)\s*件$`),
	},
}

// group devuelve el grupo nombrado recortado, o "" si el patrón no lo define.
func (p recordPattern) group(m []string, name string) string {
	i := p.re.SubexpIndex(name)
	if i < 0 || i >= len(m) {
		return ""
	}
	return strings.TrimSpace(m[i])
}

// Parse convierte el texto crudo en un ParsedPayload. Con entrada vacía devuelve un payload vacío.
func Parse(raw string) entity.ParsedPayload {
	var out entity.ParsedPayload
	rawLines := textnorm.Lines(raw)
	if len(rawLines) == 0 {
		return out
	}
	// Se compara sobre la versión plegada; el título conserva el texto original.
	lines := make([]string, len(rawLines))
	for i, l := range rawLines {
		lines[i] = strings.TrimSpace(textnorm.FoldWidth(l))
	}

	// La primera línea es título salvo que sea ya una línea de detalle.
	rest := lines[1:]
	if m := titleRe.FindStringSubmatch(rawLines[0]); m != nil {
		out.Title = strings.TrimSpace(m[titleRe.SubexpIndex("title")])
		out.Yesterday = strings.TrimSpace(m[titleRe.SubexpIndex("yest")])
	} else if _, matched := matchRecord(lines[0]); matched {
		rest = lines
	} else {
		out.Title = rawLines[0]
	}

	for _, line := range rest {
		m := sumRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[sumRe.SubexpIndex("sum")]); err == nil {
			out.Sum7d = &n
		}
		if out.Title == "" {
			out.Title = strings.TrimSpace(m[sumRe.SubexpIndex("title")])
		}
		break
	}

	for _, line := range rest {
		if sumRe.MatchString(line) {
			continue
		}
		rec, _ := matchRecord(line)
		if rec == nil {
			out.Skipped++
			continue
		}
		out.Records = append(out.Records, *rec)
	}
	return out
}

// matchRecord aplica los patrones de detalle en orden. matched indica si algún patrón
// reconoció la forma de la línea; rec es nil si la fecha, la cantidad o los tokens no son válidos.
func matchRecord(line string) (rec *entity.SaleRecord, matched bool) {
	for _, p := range recordPatterns {
		m := p.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		return buildRecord(p, m), true
	}
	return nil, false
}

func buildRecord(p recordPattern, m []string) *entity.SaleRecord {
	date, err := time.Parse(dateLayout, p.group(m, "date"))
	if err != nil {
		return nil
	}
	qty, err := strconv.Atoi(p.group(m, "qty"))
	if err != nil || qty < 0 {
		return nil
	}
	name, size, color, ok := splitNameSizeColor(p.group(m, "rest"))
	if !ok {
		return nil
	}
	return &entity.SaleRecord{
		Date:    entity.DayOf(date),
		Channel: p.group(m, "channel"),
		Shop:    p.group(m, "shop"),
		Name:    name,
		Size:    size,
		Color:   color,
		Qty:     qty,
	}
}

// splitNameSizeColor toma siempre los dos últimos tokens como talla y color;
// el resto, unido con un espacio, es el nombre (puede quedar vacío).
// El marcador "null" se normaliza a vacío después de separar.
func splitNameSizeColor(rest string) (name, size, color string, ok bool) {
	tokens := strings.Fields(rest)
	if len(tokens) < 2 {
		return "", "", "", false
	}
	n := len(tokens)
	return strings.Join(tokens[:n-2], " "), dropNull(tokens[n-2]), dropNull(tokens[n-1]), true
}

func dropNull(s string) string {
	if strings.EqualFold(s, "null") {
		return ""
	}
	return s
}
