package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stocksmcp/stocks-mcp/pkg/types"
)

func TestListTools(t *testing.T) {
	t.Parallel()

	t.Run("successful list", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				t.Errorf("Expected GET method, got %s", r.Method)
			}
			if r.URL.Path != "/api/v0/tools" {
				t.Errorf("Expected path /api/v0/tools, got %s", r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode([]types.Tool{
				{Name: "get_ipo_data", Path: "/ipo"},
				{Name: "get_news_data", Path: "/news"},
			})
		}))
		defer server.Close()

		client := NewClient(server.URL, "", &http.Client{})
		tools, err := client.ListTools()
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(tools) != 2 {
			t.Fatalf("Expected 2 tools, got %d", len(tools))
		}
		if tools[1].Path != "/news" {
			t.Errorf("Expected path /news, got %s", tools[1].Path)
		}
	})

	t.Run("unauthorized", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "", &http.Client{})
		_, err := client.ListTools()
		if err == nil || !strings.Contains(err.Error(), "unauthorized") {
			t.Errorf("Expected unauthorized error, got %v", err)
		}
	})
}

func TestGetTool(t *testing.T) {
	t.Parallel()

	t.Run("successful get", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("name"); got != "get_stock_details" {
				t.Errorf("Expected name query parameter get_stock_details, got %s", got)
			}
			_ = json.NewEncoder(w).Encode(types.Tool{
				Name: "get_stock_details",
				Path: "/stock",
				InputSchema: types.ToolInputSchema{
					Type:     "object",
					Required: []string{"name"},
				},
			})
		}))
		defer server.Close()

		client := NewClient(server.URL, "", &http.Client{})
		tool, err := client.GetTool("get_stock_details")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(tool.InputSchema.Required) != 1 || tool.InputSchema.Required[0] != "name" {
			t.Errorf("Unexpected required arguments %v", tool.InputSchema.Required)
		}
	})

	t.Run("not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"unknown tool: get_weather"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "", &http.Client{})
		tool, err := client.GetTool("get_weather")
		if err == nil {
			t.Fatal("Expected error for unknown tool")
		}
		if tool != nil {
			t.Errorf("Expected nil tool, got %+v", tool)
		}
	})
}

func TestInvokeTool(t *testing.T) {
	t.Parallel()

	t.Run("success envelope", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("Expected POST method, got %s", r.Method)
			}
			if ct := r.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("Expected Content-Type application/json, got %s", ct)
			}

			var input types.ToolInvokeRequest
			if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
				t.Fatalf("Failed to decode request body: %v", err)
			}
			if input.Name != "get_stock_details" || input.Arguments["name"] != "Tata Steel" {
				t.Errorf("Unexpected request %+v", input)
			}

			_, _ = w.Write([]byte(`{"status":"success","response":{"companyName":"Tata Steel"}}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "", &http.Client{})
		env, err := client.InvokeTool("get_stock_details", map[string]any{"name": "Tata Steel"})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if env.Status != types.StatusSuccess {
			t.Errorf("Expected success status, got %s", env.Status)
		}
		if string(env.Response) != `{"companyName":"Tata Steel"}` {
			t.Errorf("Unexpected response %s", env.Response)
		}
	})

	t.Run("error envelope is not a client error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"error","error_type":"ConfigurationError","message":"API key 'INDIANAPI_KEY' is not configured in the environment."}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "", &http.Client{})
		env, err := client.InvokeTool("get_ipo_data", nil)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !env.IsError() || env.ErrorType != types.ErrorTypeConfiguration {
			t.Errorf("Expected ConfigurationError envelope, got %+v", env)
		}
	})

	t.Run("missing argument", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"missing required argument: name"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "", &http.Client{})
		_, err := client.InvokeTool("get_stock_details", nil)
		if err == nil || !strings.Contains(err.Error(), "missing required argument") {
			t.Errorf("Expected missing argument error, got %v", err)
		}
	})
}
