package utils

import (
	"context"
	"log"

	"github.com/shirou/gopsutil/v4/cpu"
)

// GetCPUUsage returns host CPU usage as a percentage since the previous call.
// A zero interval keeps health checks from blocking.
func GetCPUUsage(ctx context.Context) float64 {
	percentage, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		log.Printf("Error getting CPU usage: %v", err)
		return 0
	}
	if len(percentage) > 0 {
		return percentage[0]
	}
	return 0
}
