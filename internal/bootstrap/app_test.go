package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"portfolio-twin/internal/config"
	"portfolio-twin/internal/notify"
)

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	personaPath := filepath.Join(dir, "persona.toml")
	require.NoError(t, os.WriteFile(personaPath, []byte(`
version = "boot-v1"
instruction = "You are the twin."
acknowledgment = "Understood."
`), 0o600))

	return &config.Config{
		App:      config.AppConfig{Name: "test", Env: "test"},
		Database: config.DatabaseConfig{Driver: config.DatabaseDriverSQLite, SQLitePath: filepath.Join(dir, "data", "boot.db")},
		LLM:      config.LLMConfig{BaseURL: "http://127.0.0.1:1/v1", Model: "m", TimeoutSeconds: 1},
		Persona:  config.PersonaConfig{Source: config.PersonaSourceFile, Path: personaPath},
		Mail:     config.MailConfig{Mode: config.MailModeDisabled},
	}
}

func TestNew_SQLiteWithFilePersona(t *testing.T) {
	cfg := sqliteConfig(t)

	app, err := New(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, app.Close()) })

	require.Equal(t, "boot-v1", app.Persona.Version)
	require.NotNil(t, app.ChatService)
	require.NotNil(t, app.ContactService)
	require.Nil(t, app.Redis)
	require.Nil(t, app.MQConn)
	require.Nil(t, app.NotificationWorker)

	for _, table := range []string{"chat_messages", "contact_messages", "projects", "skills"} {
		require.True(t, app.DB.Migrator().HasTable(table), table)
	}
}

func TestNew_MissingPersonaFails(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.Persona.Path = filepath.Join(t.TempDir(), "absent.toml")

	app, err := New(context.Background(), cfg, zap.NewNop())
	require.Error(t, err)
	require.Nil(t, app)
	require.Contains(t, err.Error(), "load persona failed")
}

func TestNotifier_SMTPModeIsDirect(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.Mail.Mode = config.MailModeSMTP
	app := &App{Config: cfg, Logger: zap.NewNop()}

	n, err := app.notifier(context.Background(), notify.NewSMTPMailer(cfg.Mail))
	require.NoError(t, err)
	require.IsType(t, &notify.DirectNotifier{}, n)
}
