package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"portfolio-twin/internal/ai"
	"portfolio-twin/internal/model"
	"portfolio-twin/internal/persona"
	"portfolio-twin/internal/platform/sqlite"
	"portfolio-twin/internal/repository"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := sqlite.New(context.Background(), filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func testPersona() *persona.Persona {
	return &persona.Persona{
		Version:        "test-v1",
		Instruction:    "You are the digital twin. NEVER use bold markdown.",
		Acknowledgment: "Understood.",
	}
}

type fakeGenerator struct {
	reply    string
	err      error
	calls    int
	captured []ai.ChatMessage
	onCall   func()
}

func (f *fakeGenerator) Complete(_ context.Context, messages []ai.ChatMessage) (string, error) {
	f.calls++
	f.captured = messages
	if f.onCall != nil {
		f.onCall()
	}
	return f.reply, f.err
}

func storedTurns(t *testing.T, db *gorm.DB) []model.ChatTurn {
	t.Helper()
	var turns []model.ChatTurn
	require.NoError(t, db.Order("id ASC").Find(&turns).Error)
	return turns
}
