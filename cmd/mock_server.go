package cmd

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/zhubert/replywriter/internal/logger"
	"github.com/zhubert/replywriter/internal/mockserver"
)

var mockCfg mockserver.Config

var mockServerCmd = &cobra.Command{
	Use:   "mock-server",
	Short: "Run a local stand-in for the generation service",
	Long: `Serves POST /api/email/generate with canned replies so replywriter can be
used and demoed offline. Point the TUI at it with --endpoint.`,
	Example: `  replywriter mock-server --addr :8080 --latency 1s
  replywriter --endpoint http://localhost:8080/api/email/generate`,
	Args: cobra.NoArgs,
	RunE: runMockServer,
}

func init() {
	f := mockServerCmd.Flags()
	f.StringVar(&mockCfg.Addr, "addr", "127.0.0.1:8080", "Listen address")
	f.DurationVar(&mockCfg.Latency, "latency", 500*time.Millisecond, "Simulated service latency")
	f.Float64Var(&mockCfg.FailRate, "fail-rate", 0, "Fraction of requests answered with 500 (0.0-1.0)")
	f.BoolVar(&mockCfg.JSON, "json", false, "Reply with a JSON object instead of plain text")
	rootCmd.AddCommand(mockServerCmd)
}

func runMockServer(cmd *cobra.Command, args []string) error {
	if mockCfg.FailRate < 0 || mockCfg.FailRate > 1 {
		return fmt.Errorf("--fail-rate must be between 0 and 1, got %v", mockCfg.FailRate)
	}
	logger.SetupConsole(debugMode && !quietMode)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := mockserver.New(mockCfg, logger.ComponentLogger("MockServer"))
	return srv.ListenAndServe(ctx, func(addr net.Addr) {
		fmt.Fprintf(cmd.OutOrStdout(), "Endpoint: http://%s%s\n", addr, mockserver.GeneratePath)
	})
}
