package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/StyleWatch-api/pkg/jwt"
)

const secret = "stylewatch-secreto-de-pruebas"

func TestGenerateParse(t *testing.T) {
	tok, err := jwt.Generate(secret, "op-0002", "", jwt.RoleViewer, "stylewatch", 5)
	require.NoError(t, err)

	op, store, role, err := jwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, "op-0002", op)
	assert.Empty(t, store)
	assert.Equal(t, jwt.RoleViewer, role)
}

func TestParse_Rechaza(t *testing.T) {
	vencido, err := jwt.Generate(secret, "op-0002", "", jwt.RoleAdmin, "stylewatch", -1)
	require.NoError(t, err)
	ajeno, err := jwt.Generate("otro", "op-0002", "", jwt.RoleAdmin, "stylewatch", 5)
	require.NoError(t, err)

	for name, tok := range map[string]string{"vencido": vencido, "otra firma": ajeno, "basura": "x.y.z"} {
		_, _, _, err := jwt.Parse(secret, tok)
		assert.Error(t, err, name)
	}
}

func TestSecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "op", "", jwt.RoleAdmin, "stylewatch", 5)
	assert.Error(t, err)

	_, _, _, err = jwt.Parse("", "x.y.z")
	assert.Error(t, err)
}
