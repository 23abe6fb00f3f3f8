package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// DebugEnv turns on debug tracing when set to "1".
const DebugEnv = "CALCGRID_DEBUG"

var (
	DebugEnabled bool
	DebugLog     *log.Logger
	debugLogFile *os.File
)

var debugLogFileName = filepath.Join(os.TempDir(), "calcgrid-debug.log")

// InitDebug opens the debug log if CALCGRID_DEBUG=1. Call it after Initialize.
func InitDebug() {
	if os.Getenv(DebugEnv) != "1" {
		DebugLog = log.New(io.Discard, "", 0)
		return
	}

	f, err := os.OpenFile(debugLogFileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		ErrorLog.Printf("could not open debug log file: %s", err)
		DebugLog = log.New(io.Discard, "", 0)
		return
	}

	DebugEnabled = true
	DebugLog = log.New(f, "DEBUG:", log.Ldate|log.Ltime|log.Lmicroseconds)
	debugLogFile = f
	DebugLog.Printf("debug log: %s", debugLogFileName)
}

// CloseDebug writes the render profile and closes the debug log.
func CloseDebug() {
	if debugLogFile == nil {
		return
	}
	profiler.LogStats()
	_ = debugLogFile.Close()
	debugLogFile = nil
	fmt.Fprintln(os.Stderr, "wrote debug logs to "+debugLogFileName)
}

func tracef(tag, format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("["+tag+"] "+format, v...)
	}
}

// Debug logs a message when debug mode is on.
func Debug(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf(format, v...)
	}
}

// LayoutTrace logs grid layout computations.
func LayoutTrace(format string, v ...interface{}) {
	tracef("LAYOUT", format, v...)
}

// InputTrace logs key and mouse handling.
func InputTrace(format string, v ...interface{}) {
	tracef("INPUT", format, v...)
}

// EngineTrace logs calculator state transitions.
func EngineTrace(format string, v ...interface{}) {
	tracef("ENGINE", format, v...)
}

// frameWindow is the number of recent frames kept for the rolling average.
const frameWindow = 100

// slowFrame is the frame time above which a frame is reported.
const slowFrame = 16 * time.Millisecond

// RenderProfiler collects per-view render timings.
type RenderProfiler struct {
	mu           sync.Mutex
	views        map[string]*ViewMetrics
	frameCount   int64
	totalTime    time.Duration
	frameTimings []time.Duration
}

// ViewMetrics are the accumulated timings of one view.
type ViewMetrics struct {
	Name        string
	RenderCount int64
	TotalTime   time.Duration
	MaxTime     time.Duration
}

var profiler = &RenderProfiler{
	views:        make(map[string]*ViewMetrics),
	frameTimings: make([]time.Duration, 0, frameWindow),
}

// GetProfiler returns the process-wide profiler.
func GetProfiler() *RenderProfiler {
	return profiler
}

// StartRender begins timing view. Call the returned func when the render ends.
func (p *RenderProfiler) StartRender(view string) func() {
	if !DebugEnabled {
		return func() {}
	}
	start := time.Now()
	return func() {
		p.record(view, time.Since(start))
	}
}

func (p *RenderProfiler) record(view string, elapsed time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	m, ok := p.views[view]
	if !ok {
		m = &ViewMetrics{Name: view}
		p.views[view] = m
	}
	m.RenderCount++
	m.TotalTime += elapsed
	m.MaxTime = max(m.MaxTime, elapsed)
}

// RecordFrame records the time taken by one full View call.
func (p *RenderProfiler) RecordFrame(elapsed time.Duration) {
	if !DebugEnabled {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.frameCount++
	p.totalTime += elapsed
	if len(p.frameTimings) >= frameWindow {
		p.frameTimings = p.frameTimings[1:]
	}
	p.frameTimings = append(p.frameTimings, elapsed)

	if elapsed > slowFrame && DebugLog != nil {
		DebugLog.Printf("SLOW FRAME: %v", elapsed)
	}
}

// GetStats summarises the collected timings.
func (p *RenderProfiler) GetStats() string {
	if !DebugEnabled {
		return ""
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	var sb strings.Builder
	sb.WriteString("\n=== Render Profile ===\n")
	sb.WriteString(fmt.Sprintf("Total frames: %d\n", p.frameCount))
	if p.frameCount > 0 {
		sb.WriteString(fmt.Sprintf("Avg frame time: %v\n", p.totalTime/time.Duration(p.frameCount)))
	}
	if n := len(p.frameTimings); n > 0 {
		var sum, worst time.Duration
		for _, t := range p.frameTimings {
			sum += t
			worst = max(worst, t)
		}
		sb.WriteString(fmt.Sprintf("Recent %d frames: avg=%v max=%v\n", n, sum/time.Duration(n), worst))
	}

	sb.WriteString("\n--- Views ---\n")
	sorted := make([]*ViewMetrics, 0, len(p.views))
	for _, m := range p.views {
		sorted = append(sorted, m)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].TotalTime > sorted[j].TotalTime
	})
	for _, m := range sorted {
		sb.WriteString(fmt.Sprintf("  %s: count=%d total=%v avg=%v max=%v\n",
			m.Name, m.RenderCount, m.TotalTime, m.TotalTime/time.Duration(m.RenderCount), m.MaxTime))
	}

	return sb.String()
}

// LogStats writes GetStats to the debug log.
func (p *RenderProfiler) LogStats() {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Print(p.GetStats())
	}
}

// Reset clears all collected timings.
func (p *RenderProfiler) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.views = make(map[string]*ViewMetrics)
	p.frameCount = 0
	p.totalTime = 0
	p.frameTimings = make([]time.Duration, 0, frameWindow)
}
