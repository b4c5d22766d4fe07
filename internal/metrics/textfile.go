package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/osse101/skyrim-alchemy/internal/logger"
)

// WriteTextfile dumps every registered metric in the node_exporter textfile
// format. One-shot binaries use it instead of serving /metrics.
func WriteTextfile(ctx context.Context, path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf(ErrMsgWriteTextfileFailed, err)
	}
	logger.FromContext(ctx).Info(LogMsgMetricsWritten, "path", path)
	return nil
}
