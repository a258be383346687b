package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/pkg/adapters/args"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// CatalogURI is the resource listing available automata.
const CatalogURI = "automata://catalog"

// DeterminizeResponse describes the DFA produced for an automaton.
type DeterminizeResponse struct {
	Name       string            `json:"name" jsonschema_description:"The automaton name"`
	States     int               `json:"states" jsonschema_description:"Number of composite states"`
	Definition domain.Definition `json:"definition" jsonschema_description:"The determinized definition"`
}

// CatalogResponse lists available automata.
type CatalogResponse struct {
	Automata []string `json:"automata" jsonschema_description:"Names of the available automata"`
}

// Server wraps the engine and exposes it as an MCP Server.
type Server struct {
	engine    ports.Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine ports.Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("automata-mcp", strings.TrimSpace(automata.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: evaluate_words
	evaluateTool := mcp.NewTool("evaluate_words",
		mcp.WithDescription("Classify words as ACCEPTED, REJECTED or INVALID against an automaton."),
		mcp.WithString(domain.KeyName, mcp.Required(), mcp.Description("Automaton name")),
		mcp.WithString(domain.KeyWords, mcp.Required(), mcp.Description(`Words as a JSON array (["ab","&"]) or a comma separated list. "&" is the empty word.`)),
		mcp.WithBoolean(domain.KeyDeterministic, mcp.Description("Evaluate against the determinized automaton")),
		mcp.WithOutputSchema[domain.Report](),
	)
	s.mcpServer.AddTool(evaluateTool, mcp.NewStructuredToolHandler(s.handleEvaluate))

	// TOOL: determinize
	determinizeTool := mcp.NewTool("determinize",
		mcp.WithDescription("Convert an automaton with epsilon transitions into an equivalent deterministic automaton."),
		mcp.WithString(domain.KeyName, mcp.Required(), mcp.Description("Automaton name")),
		mcp.WithOutputSchema[DeterminizeResponse](),
	)
	s.mcpServer.AddTool(determinizeTool, mcp.NewStructuredToolHandler(s.handleDeterminize))

	// TOOL: list_automata
	s.mcpServer.AddTool(mcp.NewTool("list_automata",
		mcp.WithDescription("List the names of available automata."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		catalog, err := s.catalog(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("list failed: %v", err)), nil
		}
		return mcp.NewToolResultText(catalog), nil
	})
}

func (s *Server) handleEvaluate(ctx context.Context, request mcp.CallToolRequest, raw map[string]interface{}) (domain.Report, error) {
	var req args.Evaluate
	if err := args.Decode(raw, &req); err != nil {
		return domain.Report{}, err
	}
	if req.Name == "" {
		return domain.Report{}, fmt.Errorf("%s is required", domain.KeyName)
	}

	report, err := s.engine.Run(ctx, req.Name, req.Words, req.Deterministic)
	if err != nil {
		return domain.Report{}, fmt.Errorf("evaluate failed: %w", err)
	}
	return *report, nil
}

func (s *Server) handleDeterminize(ctx context.Context, request mcp.CallToolRequest, raw map[string]interface{}) (DeterminizeResponse, error) {
	var req args.Automaton
	if err := args.Decode(raw, &req); err != nil {
		return DeterminizeResponse{}, err
	}

	dfa, err := s.engine.Compile(ctx, req.Name, true)
	if err != nil {
		return DeterminizeResponse{}, fmt.Errorf("determinize failed: %w", err)
	}
	return DeterminizeResponse{
		Name:       req.Name,
		States:     len(dfa.States()),
		Definition: dfa.Definition(),
	}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: automata://catalog
	s.mcpServer.AddResource(mcp.NewResource(CatalogURI, "Available Automata",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		catalog, err := s.catalog(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list automata: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      CatalogURI,
				MIMEType: "application/json",
				Text:     catalog,
			},
		}, nil
	})
}

func (s *Server) catalog(ctx context.Context) (string, error) {
	names, err := s.engine.List(ctx)
	if err != nil {
		return "", err
	}
	jsonBytes, err := json.Marshal(CatalogResponse{Automata: names})
	if err != nil {
		return "", err
	}
	return string(jsonBytes), nil
}
