package keeper

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	governanceVAAsExecuted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wormchain_governance_vaas_executed_total",
			Help: "Total number of governance VAAs applied, by action",
		}, []string{"action"})
	governanceVAAsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wormchain_governance_vaas_rejected_total",
			Help: "Total number of governance VAAs rejected, by error codespace and code",
		}, []string{"cause"})
)

// rejectionCause labels err by its registered codespace and code, e.g. "wormhole:1113".
func rejectionCause(err error) string {
	codespace, code, _ := errorsmod.ABCIInfo(err, false)
	return fmt.Sprintf("%s:%d", codespace, code)
}
