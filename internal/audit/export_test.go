package audit

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"github.com/markdias/hair.studio9381-sub000/internal/models"
)

func TestWriteClients(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	clients := []models.Client{
		{Email: "jess@example.com", Name: "Jess Webb", Phone: "+1 555 0101", Visits: 3, CreatedAt: now, UpdatedAt: now},
		{Email: "sam@example.com", Name: "Sam Ortiz", Visits: 1, CreatedAt: now, UpdatedAt: now},
	}

	var buf bytes.Buffer
	assert.NoError(t, WriteClients(&buf, clients))

	f, err := excelize.OpenReader(&buf)
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Clients")
	assert.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, clientColumns, rows[0])
	assert.Equal(t, "jess@example.com", rows[1][0])
	assert.Equal(t, "3", rows[1][3])
	assert.Equal(t, "Sam Ortiz", rows[2][1])
}

func TestWriteClients_Empty(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, WriteClients(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Clients")
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
}
