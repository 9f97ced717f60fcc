package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stocksmcp/stocks-mcp/client"
	"github.com/stocksmcp/stocks-mcp/internal"
	"github.com/stocksmcp/stocks-mcp/pkg/testhelpers"
	"github.com/stocksmcp/stocks-mcp/pkg/types"
)

func TestCommandStructure(t *testing.T) {
	tests := []struct {
		cmd   *cobra.Command
		use   string
		group subCommandGroup
		order string
	}{
		{startServerCmd, "start", subCommandGroupBasic, "1"},
		{listToolsCmd, "list", subCommandGroupBasic, "2"},
		{usageCmd, "usage <name>", subCommandGroupBasic, "3"},
		{invokeCmd, "invoke <name>", subCommandGroupBasic, "4"},
		{historyCmd, "history", subCommandGroupAdvanced, "5"},
		{genTokenCmd, "gen-token", subCommandGroupAdvanced, "6"},
		{versionCmd, "version", subCommandGroupAdvanced, "7"},
	}
	for _, tt := range tests {
		t.Run(tt.use, func(t *testing.T) {
			testhelpers.AssertEqual(t, tt.use, tt.cmd.Use)
			testhelpers.AssertTrue(t, len(tt.cmd.Short) > 0, "Short description should not be empty")
			testhelpers.TestCommandAnnotations(t, tt.cmd.Annotations, []testhelpers.CommandAnnotationTest{
				{Key: "group", Expected: string(tt.group)},
				{Key: "order", Expected: tt.order},
			})
		})
	}
}

func TestStartCommandFlags(t *testing.T) {
	for _, name := range []string{"config", "transport", "port", "history"} {
		f := startServerCmd.Flags().Lookup(name)
		testhelpers.AssertNotNil(t, f)
		testhelpers.AssertTrue(t, len(f.Usage) > 0, "flag "+name+" should have usage description")
	}
}

func TestRegistryFlagDefault(t *testing.T) {
	f := rootCmd.PersistentFlags().Lookup("registry")
	testhelpers.AssertNotNil(t, f)
	testhelpers.AssertEqual(t, "http://127.0.0.1:8080", f.DefValue)
}

func TestParseToolInput(t *testing.T) {
	input, err := parseToolInput(`{"name": "Tata Steel", "count": 2}`)
	testhelpers.AssertNoError(t, err)
	testhelpers.AssertEqual(t, "Tata Steel", input["name"])

	_, err = parseToolInput(`not json`)
	testhelpers.AssertError(t, err)

	_, err = parseToolInput(`["a"]`)
	testhelpers.AssertError(t, err)
}

// withAPIClient points the package level apiClient at a fake server for the duration of a test.
func withAPIClient(t *testing.T, h http.HandlerFunc) {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)

	prev := apiClient
	apiClient = client.NewClient(server.URL, "", &http.Client{})
	t.Cleanup(func() { apiClient = prev })
}

func captureOutput(t *testing.T, c *cobra.Command) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	c.SetOut(&buf)
	t.Cleanup(func() { c.SetOut(nil) })
	return &buf
}

func TestRunListTools(t *testing.T) {
	withAPIClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]types.Tool{{Name: "get_ipo_data", Description: "Get IPO data"}})
	})
	out := captureOutput(t, listToolsCmd)

	testhelpers.AssertNoError(t, runListTools(listToolsCmd, nil))
	testhelpers.AssertTrue(t, strings.Contains(out.String(), "1. get_ipo_data"), "output should list the tool")
}

func TestRunGetToolUsage(t *testing.T) {
	withAPIClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(types.Tool{
			Name: "get_stock_details",
			Path: "/stock",
			InputSchema: types.ToolInputSchema{
				Type:       "object",
				Properties: map[string]any{"name": map[string]any{"type": "string"}},
				Required:   []string{"name"},
			},
		})
	})
	out := captureOutput(t, usageCmd)

	testhelpers.AssertNoError(t, runGetToolUsage(usageCmd, []string{"get_stock_details"}))
	testhelpers.AssertTrue(t, strings.Contains(out.String(), "name (required)"), "output should show the required parameter")
	testhelpers.AssertTrue(t, strings.Contains(out.String(), "GET /stock"), "output should show the API path")
}

func TestRunInvokeTool(t *testing.T) {
	withAPIClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req types.ToolInvokeRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Arguments["name"] != "TCS" {
			t.Errorf("Expected argument name=TCS, got %v", req.Arguments)
		}
		_, _ = w.Write([]byte(`{"status":"error","error_type":"HttpError","message":"404 Client Error: Not Found for url: x"}`))
	})

	invokeCmdInput = `{"name":"TCS"}`
	t.Cleanup(func() { invokeCmdInput = "{}" })

	stdout, stderr := captureStdio(t)
	testhelpers.AssertNoError(t, runInvokeTool(invokeCmd, []string{"get_stock_details"}))
	out, errOut := stdout(), stderr()

	// stdout must hold nothing but the envelope, so that it can be piped to other tools
	var env types.Envelope
	testhelpers.AssertNoError(t, json.Unmarshal([]byte(out), &env))
	testhelpers.AssertEqual(t, types.ErrorTypeHTTP, env.ErrorType)
	testhelpers.AssertTrue(t, strings.Contains(errOut, "Tool call failed with HttpError"), "stderr should flag the failure")
}

func TestRunListHistory(t *testing.T) {
	withAPIClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"tool":"get_news_data","path":"/news","status":"success","duration_ms":120,"called_at":"2024-01-01T10:00:00Z"}]`))
	})
	out := captureOutput(t, historyCmd)

	testhelpers.AssertNoError(t, runListHistory(historyCmd, nil))
	testhelpers.AssertTrue(t, strings.Contains(out.String(), "get_news_data"), "output should list the call")
	testhelpers.AssertTrue(t, strings.Contains(out.String(), "120ms"), "output should show the duration")
}

func TestGenTokenWritesToStdout(t *testing.T) {
	stdout, stderr := captureStdio(t)
	testhelpers.AssertNoError(t, genTokenCmd.RunE(genTokenCmd, nil))
	out, errOut := stdout(), stderr()

	token := strings.TrimSpace(out)
	testhelpers.AssertEqual(t, 43, len(token))
	testhelpers.AssertNoError(t, internal.ValidateAccessToken(token))
	testhelpers.AssertEqual(t, "", errOut)
}

func TestVersionWritesToStdout(t *testing.T) {
	stdout, _ := captureStdio(t)
	versionCmd.Run(versionCmd, nil)
	testhelpers.AssertTrue(t, strings.TrimSpace(stdout()) != "", "version should be printed on stdout")
}

// captureStdio points os.Stdout and os.Stderr at pipes for the rest of the test.
// The returned functions restore the original file and return what was written to it.
func captureStdio(t *testing.T) (stdout, stderr func() string) {
	t.Helper()
	return redirectFile(t, &os.Stdout), redirectFile(t, &os.Stderr)
}

func redirectFile(t *testing.T, f **os.File) func() string {
	t.Helper()
	r, w, err := os.Pipe()
	testhelpers.AssertNoError(t, err)

	orig := *f
	*f = w
	var (
		once sync.Once
		out  string
	)
	restore := func() string {
		once.Do(func() {
			*f = orig
			_ = w.Close()
			b, _ := io.ReadAll(r)
			_ = r.Close()
			out = string(b)
		})
		return out
	}
	t.Cleanup(func() { restore() })
	return restore
}
