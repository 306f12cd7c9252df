package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := DBConnectError("connecting to database", cause)

	assert.Equal(t, "connecting to database: dial tcp: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "bad flag", (&ExitError{Code: ExitConfig, Message: "bad flag"}).Error())
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain", errors.New("boom"), ExitGeneral},
		{"general", GeneralError("doctor found errors", nil), ExitGeneral},
		{"config", ConfigError("loading config", errors.New("bad yaml")), ExitConfig},
		{"db connect", DBConnectError("connecting", errors.New("refused")), ExitDBConnect},
		{"wrapped", fmt.Errorf("doctor: %w", ConfigError("dsn", nil)), ExitConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
