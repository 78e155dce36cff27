// Package textnorm normaliza el texto copiado de pantalla antes de parsearlo:
// ancho de caracteres y saltos de línea.
package textnorm

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/width"
)

var folder = cases.Fold()

// FoldWidth convierte variantes de ancho completo (：，０-９, espacio ideográfico)
// a su forma ASCII. Los caracteres CJK no cambian.
func FoldWidth(s string) string {
	return width.Fold.String(s)
}

// Lines normaliza CRLF/CR a LF y devuelve las líneas recortadas, sin las vacías.
func Lines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	raw := strings.Split(s, "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

// FoldCase clave para comparar cadenas sin distinguir mayúsculas.
func FoldCase(s string) string {
	return folder.String(strings.TrimSpace(s))
}
