package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

func TestCenter_PublicarYListar(t *testing.T) {
	c := NewCenter(time.Minute)
	defer c.Close()

	id1 := c.Success("Lead creado", "")
	id2 := c.Error("Error al guardar", "intenta de nuevo")

	pending := c.Pending()
	if assert.Len(t, pending, 2, "los avisos salen en orden de llegada") {
		assert.Equal(t, id1, pending[0].ID)
		assert.Equal(t, entity.SeveritySuccess, pending[0].Severity)
		assert.Equal(t, id2, pending[1].ID)
		assert.Equal(t, entity.SeverityError, pending[1].Severity)
	}
}

func TestCenter_DescarteManual(t *testing.T) {
	c := NewCenter(time.Minute)
	defer c.Close()

	id := c.Success("Lead creado", "")
	c.Dismiss(id)

	assert.Empty(t, c.Pending())
}

func TestCenter_DescarteIdempotente(t *testing.T) {
	c := NewCenter(time.Minute)
	defer c.Close()

	id := c.Success("Lead creado", "")
	c.Dismiss(id)
	c.Dismiss(id)
	c.Dismiss("no-existe")

	assert.Empty(t, c.Pending())
}

func TestCenter_AutoDescartePorTTL(t *testing.T) {
	c := NewCenter(20 * time.Millisecond)
	defer c.Close()

	c.Success("Lead creado", "")

	assert.Eventually(t, func() bool {
		return len(c.Pending()) == 0
	}, time.Second, 5*time.Millisecond, "el aviso desaparece solo al vencer la ventana")
}
