package app

import (
	"time"

	"github.com/Gaurav-Gosain/tabgrid/internal/config"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// UpdateCPUHistory samples CPU usage for the status bar graph. Samples are
// throttled to CPUUpdateInterval so ticks stay cheap.
func (d *Deck) UpdateCPUHistory() {
	if time.Since(d.LastCPUUpdate) < config.CPUUpdateInterval {
		return
	}
	d.LastCPUUpdate = time.Now()

	percents, err := cpu.Percent(0, false)
	if err != nil || len(percents) == 0 {
		return
	}
	d.CPUHistory = append(d.CPUHistory, percents[0])
	if len(d.CPUHistory) > config.CPUHistoryLen {
		d.CPUHistory = d.CPUHistory[len(d.CPUHistory)-config.CPUHistoryLen:]
	}
}

// UpdateRAMUsage refreshes the cached RAM percentage for the status bar.
func (d *Deck) UpdateRAMUsage() {
	if time.Since(d.LastRAMUpdate) < config.RAMUpdateInterval {
		return
	}
	d.LastRAMUpdate = time.Now()

	vm, err := mem.VirtualMemory()
	if err != nil {
		return
	}
	d.RAMUsage = vm.UsedPercent
}

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// CPUGraph renders the CPU history as a small sparkline.
func (d *Deck) CPUGraph() string {
	if len(d.CPUHistory) == 0 {
		return ""
	}
	if config.UseASCIIOnly {
		out := make([]rune, len(d.CPUHistory))
		for i, v := range d.CPUHistory {
			switch {
			case v >= 66:
				out[i] = '#'
			case v >= 33:
				out[i] = '='
			default:
				out[i] = '-'
			}
		}
		return string(out)
	}
	out := make([]rune, len(d.CPUHistory))
	for i, v := range d.CPUHistory {
		idx := int(v / 100 * float64(len(sparkRunes)-1))
		idx = max(0, min(idx, len(sparkRunes)-1))
		out[i] = sparkRunes[idx]
	}
	return string(out)
}
