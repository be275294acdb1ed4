package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"portfolio-backend/internal/database"
)

func TestPending_SortedAndEmbedded(t *testing.T) {
	names, err := database.Pending()
	require.NoError(t, err)

	assert.Equal(t, []string{"001_portfolio_schema.sql", "002_row_level_security.sql"}, names)
}
