package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	LoadConfig()

	assert.Equal(t, "localhost", AppConfig.DBHost)
	assert.Equal(t, "5432", AppConfig.DBPort)
	assert.Equal(t, "https://www.google.com/recaptcha/api/siteverify", AppConfig.CaptchaVerifyURL)
	assert.Equal(t, "lead-intake", AppConfig.TokenIssuer)
	assert.Equal(t, "leads.created", AppConfig.KafkaLeadEventsTopic)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("TOKEN_SECRET", "s3cret")
	t.Setenv("CAPTCHA_SECRET", "captcha-secret")

	LoadConfig()

	assert.Equal(t, "db.internal", AppConfig.DBHost)
	assert.Equal(t, "s3cret", AppConfig.TokenSecret)
	assert.Equal(t, "captcha-secret", AppConfig.CaptchaSecret)
}

func TestGetDBConnString(t *testing.T) {
	t.Setenv("DB_HOST", "h")
	t.Setenv("DB_PORT", "1234")
	t.Setenv("DB_USER", "u")
	t.Setenv("DB_PASSWORD", "p")
	t.Setenv("DB_NAME", "n")

	LoadConfig()

	assert.Equal(t, "host=h port=1234 user=u password=p dbname=n sslmode=disable", GetDBConnString())
}

func TestNotifyList(t *testing.T) {
	t.Setenv("NOTIFY_RECIPIENTS", "ops@example.com, sales@example.com ,")

	LoadConfig()

	assert.Equal(t, []string{"ops@example.com", "sales@example.com"}, NotifyList())
}

func TestNotifyList_Empty(t *testing.T) {
	t.Setenv("NOTIFY_RECIPIENTS", "")

	LoadConfig()

	assert.Empty(t, NotifyList())
}
