package textnorm

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

// Decode convierte un archivo exportado en codificación heredada a UTF-8.
// Codificaciones: "" o utf-8 (quita el BOM), gb18030, gbk, latin1.
func Decode(raw []byte, enc string) (string, error) {
	var dec *encoding.Decoder
	switch strings.ToLower(strings.TrimSpace(enc)) {
	case "", "utf-8", "utf8":
		dec = unicode.UTF8BOM.NewDecoder()
	case "gb18030":
		dec = simplifiedchinese.GB18030.NewDecoder()
	case "gbk", "gb2312":
		dec = simplifiedchinese.GBK.NewDecoder()
	case "latin1", "iso-8859-1", "iso8859-1":
		dec = charmap.ISO8859_1.NewDecoder()
	default:
		return "", fmt.Errorf("textnorm: codificación no soportada: %q", enc)
	}
	out, err := dec.Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("textnorm: decodificar %s: %w", enc, err)
	}
	return string(out), nil
}
