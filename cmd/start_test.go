package cmd

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stocksmcp/stocks-mcp/internal/config"
	"github.com/stocksmcp/stocks-mcp/pkg/testhelpers"
)

func resetStartFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		startServerCmdConfigFile = ""
		startServerCmdTransport = ""
		startServerCmdBindPort = ""
		startServerCmdHistory = false
	})
}

func TestLoadServerConfigFlagsOverrideEnv(t *testing.T) {
	resetStartFlags(t)
	t.Setenv(config.TransportEnvVar, "stdio")
	t.Setenv(config.PortEnvVar, "9000")
	t.Setenv(config.HistoryEnabledEnvVar, "false")
	t.Setenv(config.ConfigFileEnvVar, "")

	startServerCmdTransport = "http"
	startServerCmdBindPort = "9100"
	startServerCmdHistory = true

	c, err := loadServerConfig(afero.NewMemMapFs())
	testhelpers.AssertNoError(t, err)
	testhelpers.AssertEqual(t, config.TransportHTTP, c.Transport)
	testhelpers.AssertEqual(t, "9100", c.Port)
	testhelpers.AssertTrue(t, c.HistoryEnabled, "history flag should enable history")
}

func TestLoadServerConfigFromFile(t *testing.T) {
	resetStartFlags(t)
	t.Setenv(config.TransportEnvVar, "")
	t.Setenv(config.PortEnvVar, "")
	t.Setenv(config.ConfigFileEnvVar, "")

	fs := afero.NewMemMapFs()
	testhelpers.AssertNoError(t, afero.WriteFile(fs, "/etc/stocks-mcp.yaml", []byte("transport: http\nport: \"7000\"\n"), 0o644))

	startServerCmdConfigFile = "/etc/stocks-mcp.yaml"
	c, err := loadServerConfig(fs)
	testhelpers.AssertNoError(t, err)
	testhelpers.AssertEqual(t, config.TransportHTTP, c.Transport)
	testhelpers.AssertEqual(t, "7000", c.Port)
}

func TestLoadServerConfigInvalidTransportFlag(t *testing.T) {
	resetStartFlags(t)
	t.Setenv(config.TransportEnvVar, "")
	t.Setenv(config.ConfigFileEnvVar, "")

	startServerCmdTransport = "websocket"
	_, err := loadServerConfig(afero.NewMemMapFs())
	testhelpers.AssertError(t, err)
}
