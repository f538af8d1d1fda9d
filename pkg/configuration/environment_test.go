package configuration

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestConnectionString(t *testing.T) {
	t.Parallel()

	opts := DatabaseOptions{
		Name:     "schedule",
		Host:     "db.internal",
		Port:     "5433",
		User:     "app",
		Password: "secret",
	}
	require.Equal(t,
		"host=db.internal port=5433 user=app dbname=schedule password=secret sslmode=disable",
		opts.ConnectionString(),
	)
}

func TestOrigins(t *testing.T) {
	t.Parallel()

	c := &Configuration{AllowedOrigins: " https://a.example , https://b.example ,"}
	require.Equal(t, []string{"https://a.example", "https://b.example"}, c.Origins())

	c = &Configuration{AllowedOrigins: "  "}
	require.Nil(t, c.Origins())
}

func TestLogrusLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]logrus.Level{
		"silent":  logrus.PanicLevel,
		"error":   logrus.ErrorLevel,
		"warn":    logrus.WarnLevel,
		"info":    logrus.InfoLevel,
		"debug":   logrus.DebugLevel,
		"unknown": logrus.ErrorLevel,
	}
	for input, expected := range cases {
		c := &Configuration{LogLevel: input}
		require.Equal(t, expected, c.LogrusLogLevel(), input)
	}
}
