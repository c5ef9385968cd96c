package commands

import (
	"fmt"
	"net"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tasks/pkg/commands/options"
	"tableflip.dev/tasks/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	mo := &options.MCPOptions{}

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start the Model Context Protocol server.",
		Long: options.Wrap80("Serve the task list over the Model Context Protocol. " +
			"Tools list, add, toggle and delete tasks; the tasks://list resource " +
			"returns the whole collection."),
		Example: `
tasks mcp
tasks mcp --transport stdio
tasks mcp --http-port 0 --http-path /tasks
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			transport, err := mo.GetTransport()
			if err != nil {
				return err
			}

			runner := mcp.Runner{
				Name:             "tasks",
				Version:          version,
				Transport:        mcp.Transport(transport),
				HTTPEndpointPath: mcp.EndpointPath(mo.Path),
				HTTPServerCert:   strings.TrimSpace(mo.TLSCert),
				HTTPServerKey:    strings.TrimSpace(mo.TLSKey),
			}
			if runner.Transport == mcp.TransportHTTP {
				if runner.HTTPListenAddr, err = mo.ListenAddr(); err != nil {
					return err
				}
				runner.OnHTTPListening = func(a net.Addr) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "MCP HTTP server listening on %s\n",
						mo.URL(a, runner.HTTPEndpointPath))
				}
			}

			s, err := openSession(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer s.Close()
			runner.Tasks = s.Tasks
			runner.Store = s.Persistence
			runner.Logger = s.Logger

			return runner.Do(cmd.Context())
		},
	}

	options.AddMCPArgs(cmd, mo)
	topLevel.AddCommand(cmd)
}
