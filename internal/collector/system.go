package collector

import (
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/net"
)

// CPUPercent samples the host-wide CPU usage since the previous call.
// The first call establishes the baseline and reports zero.
func CPUPercent() (float64, error) {
	percents, err := cpu.Percent(0, false)
	if err != nil {
		return 0, err
	}
	if len(percents) == 0 {
		return 0, nil
	}
	return percents[0], nil
}

// NetCounters returns cumulative received and sent byte counts summed
// across all interfaces.
func NetCounters() (rx, tx uint64, err error) {
	counters, err := net.IOCounters(false)
	if err != nil {
		return 0, 0, err
	}
	for _, c := range counters {
		rx += c.BytesRecv
		tx += c.BytesSent
	}
	return rx, tx, nil
}
