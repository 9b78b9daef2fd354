package runner

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// ErrToolNotFound marks a discovery tool missing from PATH.
var ErrToolNotFound = errors.New("tool not found in PATH")

// Tool describes one external URL-discovery command.
type Tool struct {
	Name string
	Bin  string
	Args []string
}

// SourceResult is one tool's batch of raw URL lines. Partial marks a
// batch cut short by timeout or interrupt; whatever lines the tool
// produced before cancellation are kept.
type SourceResult struct {
	Tool    string
	URLs    []string
	Partial bool
	Err     error
}

// Report collects the per-tool results of a discovery run.
type Report struct {
	Sources []SourceResult
}

// URLTotal returns the number of raw URL lines across all sources.
func (r Report) URLTotal() int {
	total := 0
	for _, src := range r.Sources {
		total += len(src.URLs)
	}
	return total
}

// Failed returns the number of sources that errored.
func (r Report) Failed() int {
	failed := 0
	for _, src := range r.Sources {
		if src.Err != nil {
			failed++
		}
	}
	return failed
}

// Runner executes the configured discovery tools, by default
// concurrently with each tool's output buffered independently.
type Runner struct {
	tools      []Tool
	sequential bool
}

// New returns a Runner over tools. With sequential set, tools run one
// after another in the given order instead of concurrently; the final
// report is the same either way.
func New(tools []Tool, sequential bool) *Runner {
	return &Runner{tools: tools, sequential: sequential}
}

// Run invokes every tool under ctx and returns their batches. Run only
// returns once every tool has exited; cancellation produces partial
// batches, not errors.
func (r *Runner) Run(ctx context.Context) Report {
	results := make([]SourceResult, len(r.tools))

	if r.sequential {
		for i, tool := range r.tools {
			results[i] = runTool(ctx, tool)
		}
		return Report{Sources: results}
	}

	var wg sync.WaitGroup
	for i, tool := range r.tools {
		wg.Add(1)
		go func(i int, tool Tool) {
			defer wg.Done()
			results[i] = runTool(ctx, tool)
		}(i, tool)
	}
	wg.Wait()

	return Report{Sources: results}
}

// runTool executes a single tool, streaming its stdout line by line so
// that output collected before a kill survives as a partial batch.
func runTool(ctx context.Context, tool Tool) SourceResult {
	result := SourceResult{Tool: tool.Name}

	if _, err := exec.LookPath(tool.Bin); err != nil {
		result.Err = fmt.Errorf("%s: %w", tool.Bin, ErrToolNotFound)
		return result
	}

	log.Debug("starting discovery tool", "tool", tool.Name, "args", strings.Join(tool.Args, " "))

	cmd := exec.CommandContext(ctx, tool.Bin, tool.Args...)
	// Forcibly release the stdout pipe if a killed tool leaves
	// children behind that keep it open.
	cmd.WaitDelay = 5 * time.Second

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		result.Err = fmt.Errorf("failed to attach to %s stdout: %w", tool.Name, err)
		return result
	}

	if err := cmd.Start(); err != nil {
		result.Err = fmt.Errorf("failed to start %s: %w", tool.Name, err)
		return result
	}

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		result.URLs = append(result.URLs, line)
	}
	scanErr := scanner.Err()
	if scanErr != nil {
		// The tool may still be writing into a pipe nobody reads;
		// kill it so Wait cannot block on it.
		cmd.Process.Kill()
	}

	waitErr := cmd.Wait()

	if ctx.Err() != nil {
		// Timeout or interrupt fired; keep what we have.
		log.Warn("discovery tool cancelled", "tool", tool.Name, "urls", len(result.URLs))
		result.Partial = true
		return result
	}
	if scanErr != nil {
		result.Err = fmt.Errorf("failed reading %s output: %w", tool.Name, scanErr)
		return result
	}
	if waitErr != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			result.Err = fmt.Errorf("%s failed: %w: %s", tool.Name, waitErr, msg)
		} else {
			result.Err = fmt.Errorf("%s failed: %w", tool.Name, waitErr)
		}
		return result
	}

	log.Debug("discovery tool finished", "tool", tool.Name, "urls", len(result.URLs))
	return result
}
