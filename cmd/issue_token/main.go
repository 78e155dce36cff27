// issue_token emite un JWT para un operador. Los operadores no tienen contraseña en el
// servicio: el token se entrega por fuera.
//
// Uso: JWT_SECRET=... go run ./cmd/issue_token -operator ana -role operator [-store 旗舰店A] [-minutes 480]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/StyleWatch-api/pkg/config"
	"github.com/jhoicas/StyleWatch-api/pkg/jwt"
)

func main() {
	operator := flag.String("operator", "", "identificador del operador")
	role := flag.String("role", jwt.RoleViewer, "admin | operator | viewer")
	store := flag.String("store", "", "tienda asociada (opcional)")
	minutes := flag.Int("minutes", 0, "vigencia en minutos (0 = JWT_EXPIRATION_MINUTES)")
	flag.Parse()

	if *operator == "" {
		fmt.Fprintln(os.Stderr, "se requiere -operator")
		os.Exit(2)
	}
	switch *role {
	case jwt.RoleAdmin, jwt.RoleOperator, jwt.RoleViewer:
	default:
		fmt.Fprintf(os.Stderr, "rol desconocido: %q\n", *role)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	exp := cfg.JWT.Expiration
	if *minutes > 0 {
		exp = *minutes
	}

	tok, err := jwt.Generate(cfg.JWT.Secret, *operator, *store, *role, cfg.JWT.Issuer, exp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
