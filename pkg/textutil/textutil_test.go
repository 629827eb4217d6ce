package textutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stocktrack-api/pkg/textutil"
)

func TestFold_QuitaTildesYMayusculas(t *testing.T) {
	assert.Equal(t, "cafe nunoa", textutil.Fold("Café Ñuñoa"))
	assert.Equal(t, "bodega perez", textutil.Fold("  Bodega PÉREZ "))
}

func TestFold_CadenaSinDiacriticosQuedaIgual(t *testing.T) {
	assert.Equal(t, "sku-001", textutil.Fold("SKU-001"))
}

func TestFold_CadenaVacia(t *testing.T) {
	assert.Equal(t, "", textutil.Fold(""))
	assert.Equal(t, "", textutil.Fold("   "))
}
