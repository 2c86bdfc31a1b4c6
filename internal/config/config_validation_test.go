package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validServerConfig() *StructuredConfig {
	cfg := defaults()
	cfg.Storage.DB.DSN = "postgres://localhost/notes"
	cfg.App.TokenSignKey = "secret"
	return cfg
}

func TestValidateServer(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "empty dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "no timeout", mutate: func(c *StructuredConfig) { c.Server.RequestTimeout = 0 }, wantErr: ErrInvalidServerConfigs},
		{
			name: "worker without window",
			mutate: func(c *StructuredConfig) {
				c.Workers.ReminderInterval = time.Minute
				c.Reminders.Window = 0
			},
			wantErr: ErrInvalidReminderConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validServerConfig()
			tt.mutate(cfg)
			err := cfg.validateServer()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_SharedRules(t *testing.T) {
	assert.NoError(t, defaults().validate())

	cfg := defaults()
	cfg.Workers.ReminderInterval = -time.Second
	cfg.Storage.DB.Driver = "oracle"
	err := cfg.validate()
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestClientConfig_Validate(t *testing.T) {
	assert.NoError(t, newClientConfig(defaults()).validate())

	cfg := newClientConfig(defaults())
	cfg.Adapter.HTTPAddress = "localhost:8080"
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)

	cfg = newClientConfig(defaults())
	cfg.Adapter.RequestTimeout = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)

	cfg = newClientConfig(defaults())
	cfg.Speech.Language = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidSpeechConfigs)
}
