package textnorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"

	"github.com/jhoicas/StyleWatch-api/pkg/textnorm"
)

func TestFoldWidth_ConvierteSignosDeAnchoCompleto(t *testing.T) {
	assert.Equal(t, "Tee M 红: 12件", textnorm.FoldWidth("Tee M 红： １２件"))
	assert.Equal(t, "a,b,c", textnorm.FoldWidth("a，b，c"))
	assert.Equal(t, "红色", textnorm.FoldWidth("红色"), "los caracteres CJK no cambian")
}

func TestLines_NormalizaSaltosYDescartaVacias(t *testing.T) {
	got := textnorm.Lines("  uno \r\n\r\n dos\rtres\n   \n")
	assert.Equal(t, []string{"uno", "dos", "tres"}, got)
	assert.Empty(t, textnorm.Lines(" \n\t\n"))
}

func TestFoldCase(t *testing.T) {
	assert.Equal(t, textnorm.FoldCase("xl"), textnorm.FoldCase(" XL "))
}

func TestDecode(t *testing.T) {
	gb, err := simplifiedchinese.GB18030.NewEncoder().String("Tee M 红: 7件")
	require.NoError(t, err)

	got, err := textnorm.Decode([]byte(gb), "GB18030")
	require.NoError(t, err)
	assert.Equal(t, "Tee M 红: 7件", got)

	got, err = textnorm.Decode([]byte("\xef\xbb\xbfTee,红"), "")
	require.NoError(t, err)
	assert.Equal(t, "Tee,红", got, "se quita el BOM")

	_, err = textnorm.Decode([]byte("x"), "ebcdic")
	assert.Error(t, err)
}
