package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/tasks/pkg/logging"
	"tableflip.dev/tasks/pkg/store"
	"tableflip.dev/tasks/pkg/tasklist"
)

// Transport selects the mechanism used to expose the MCP server.
type Transport string

const (
	// TransportHTTP serves MCP via the streamable HTTP transport.
	TransportHTTP Transport = "http"
	// TransportStdio serves MCP over stdio.
	TransportStdio Transport = "stdio"
)

const (
	defaultListenAddr = "127.0.0.1:8080"
	defaultPath       = "/mcp"
)

// Runner coordinates MCP server startup.
type Runner struct {
	Tasks *tasklist.List
	// Store, when set, is watched so writes from other processes are
	// reloaded before the next tool call mutates the list.
	Store   store.Persistence
	Logger  *slog.Logger
	Name    string
	Version string

	Transport        Transport
	HTTPListenAddr   string
	HTTPEndpointPath string
	OnHTTPListening  func(net.Addr)
	HTTPServerCert   string
	HTTPServerKey    string
}

// NewServer builds the MCP server with the task tools and resources
// registered.
func NewServer(name, version string, svc *Service) *server.MCPServer {
	if name == "" {
		name = "tasks"
	}
	if version == "" {
		version = "dev"
	}
	srv := server.NewMCPServer(
		fmt.Sprintf("%s MCP", name),
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("List, add, toggle and delete tasks in the shared task list via MCP."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)
	registerResources(srv, svc)
	registerTools(srv, svc)
	return srv
}

// Do executes the runner.
func (r Runner) Do(ctx context.Context) error {
	if r.Tasks == nil {
		return errors.New("mcp runner requires a task list")
	}
	logger := r.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	logger = logging.WithOperation(logger, "mcp")

	unsubscribe := r.Tasks.Subscribe(func(s tasklist.Snapshot) {
		if s.Err != nil {
			logger.Warn("task change not saved", logging.Count(len(s.Tasks)), logging.Err(s.Err))
			return
		}
		logger.Debug("tasks changed", logging.Count(len(s.Tasks)))
	})
	defer unsubscribe()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if r.Store != nil {
		if err := followStore(ctx, r.Store, r.Tasks, logger); err != nil {
			logger.Warn("not watching the task store", logging.Err(err))
		}
	}

	srv := NewServer(r.Name, r.Version, NewService(r.Tasks))

	switch t := r.Transport; t {
	case "", TransportHTTP:
		return r.serveHTTP(ctx, srv, logger)
	case TransportStdio:
		logger.Info("serving over stdio")
		return server.ServeStdio(srv)
	default:
		return fmt.Errorf("unknown MCP transport %q", t)
	}
}

// followStore reloads l whenever p reports a change, until ctx is done.
func followStore(ctx context.Context, p store.Persistence, l *tasklist.List, logger *slog.Logger) error {
	ch, err := p.Watch(ctx)
	if err != nil {
		return err
	}
	go func() {
		for ev := range ch {
			logger.Debug("store changed", slog.String("event", ev.Type.String()))
			if err := l.Reload(ctx); err != nil {
				logger.Warn("reload failed", logging.Err(err))
			}
		}
	}()
	return nil
}

// EndpointPath normalizes p to an absolute path, defaulting to /mcp.
func EndpointPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return defaultPath
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

func (r Runner) serveHTTP(ctx context.Context, srv *server.MCPServer, logger *slog.Logger) error {
	if (r.HTTPServerCert != "" && r.HTTPServerKey == "") || (r.HTTPServerCert == "" && r.HTTPServerKey != "") {
		return errors.New("both http tls cert and key must be provided")
	}

	handler := server.NewStreamableHTTPServer(srv)
	path := EndpointPath(r.HTTPEndpointPath)

	listenAddr := r.HTTPListenAddr
	if listenAddr == "" {
		listenAddr = defaultListenAddr
	}

	mux := http.NewServeMux()
	mux.Handle(path, handler)

	httpSrv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	logger.Info("serving over http", slog.String("addr", ln.Addr().String()), slog.String("path", path))

	if r.OnHTTPListening != nil {
		r.OnHTTPListening(ln.Addr())
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	if r.HTTPServerCert != "" && r.HTTPServerKey != "" {
		err = httpSrv.ServeTLS(ln, r.HTTPServerCert, r.HTTPServerKey)
	} else {
		err = httpSrv.Serve(ln)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
