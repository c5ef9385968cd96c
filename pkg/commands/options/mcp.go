package options

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// MCPOptions configures how the MCP server is exposed.
type MCPOptions struct {
	Transport string
	Host      string
	Port      int
	Path      string
	TLSCert   string
	TLSKey    string
}

func AddMCPArgs(cmd *cobra.Command, o *MCPOptions) {
	cmd.Flags().StringVar(&o.Transport, "transport", "http",
		"Transport to use: http or stdio.")
	cmd.Flags().StringVar(&o.Host, "http-host", "127.0.0.1",
		"Interface the HTTP transport listens on.")
	cmd.Flags().IntVar(&o.Port, "http-port", 8080,
		"Port for the HTTP transport, 0 picks a free one.")
	cmd.Flags().StringVar(&o.Path, "http-path", "/mcp",
		"HTTP endpoint path.")
	cmd.Flags().StringVar(&o.TLSCert, "http-tls-cert", "",
		"TLS certificate file for HTTPS.")
	cmd.Flags().StringVar(&o.TLSKey, "http-tls-key", "",
		"TLS private key file for HTTPS.")
}

// GetTransport returns the normalized transport name.
func (o *MCPOptions) GetTransport() (string, error) {
	switch t := strings.ToLower(strings.TrimSpace(o.Transport)); t {
	case "", "http":
		return "http", nil
	case "stdio":
		return t, nil
	default:
		return "", fmt.Errorf("unsupported transport %q (expected http or stdio)", o.Transport)
	}
}

// ListenAddr joins the host and port, rejecting ports out of range.
func (o *MCPOptions) ListenAddr() (string, error) {
	if o.Port < 0 || o.Port > 65535 {
		return "", fmt.Errorf("invalid http-port %d", o.Port)
	}
	host := strings.TrimSpace(o.Host)
	if host == "" {
		host = "127.0.0.1"
	}
	return net.JoinHostPort(host, strconv.Itoa(o.Port)), nil
}

// TLS reports whether both a certificate and key were given.
func (o *MCPOptions) TLS() bool {
	return strings.TrimSpace(o.TLSCert) != "" && strings.TrimSpace(o.TLSKey) != ""
}

// URL renders the address the server ended up bound to, replacing an
// unspecified host with loopback.
func (o *MCPOptions) URL(addr net.Addr, path string) string {
	scheme := "http"
	if o.TLS() {
		scheme = "https"
	}
	tcp, ok := addr.(*net.TCPAddr)
	if !ok {
		return fmt.Sprintf("%s://%s%s", scheme, addr.String(), path)
	}
	host := strings.TrimSpace(o.Host)
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
		if tcp.IP != nil && !tcp.IP.IsUnspecified() {
			host = tcp.IP.String()
		}
	}
	return fmt.Sprintf("%s://%s%s", scheme, net.JoinHostPort(host, strconv.Itoa(tcp.Port)), path)
}
