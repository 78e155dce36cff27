package salesreport

import (
	"encoding/json"
	"regexp"
	"strings"
)

var blankRunRe = regexp.MustCompile(`\n{3,}`)

// backendReply forma JSON de la respuesta del servicio de reportes: {"msg":"...","code":200}.
type backendReply struct {
	Msg *string `json:"msg"`
}

// Prettify limpia la respuesta cruda del servicio de reportes antes de parsearla.
// Si es un objeto JSON con "msg" de tipo string se usa ese texto; si no, el crudo.
func Prettify(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	payload := raw
	var reply backendReply
	if err := json.Unmarshal([]byte(raw), &reply); err == nil && reply.Msg != nil {
		payload = *reply.Msg
	}

	s := strings.ReplaceAll(payload, `\n`, "\n")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	s = strings.Join(lines, "\n")
	s = blankRunRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
