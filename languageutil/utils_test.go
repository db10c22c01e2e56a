package languageutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	assert.Equal(t, Fold("acessórios"), Fold("  ACESSÓRIOS "))
	// "o" followed by a combining acute accent
	assert.Equal(t, Fold("acessórios"), Fold("acesso\u0301rios"))
	assert.NotEqual(t, Fold("calças"), Fold("calcas"))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Acessórios", Title("acessórios"))
	assert.Equal(t, "Tops", Title("tops"))
}
