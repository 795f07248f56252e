package anvil

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/vesting-cli/internal/domain"
	"github.com/trebuchet-org/vesting-cli/internal/usecase"
)

// Manager runs anvil as a detached background process tracked by a PID file
type Manager struct {
	binary       string
	log          *slog.Logger
	startTimeout time.Duration
}

var _ usecase.AnvilManager = (*Manager)(nil)

// NewManager creates a new anvil manager
func NewManager(log *slog.Logger) *Manager {
	return &Manager{binary: "anvil", log: log, startTimeout: 10 * time.Second}
}

// Start launches anvil and waits until its RPC answers.
func (m *Manager) Start(ctx context.Context, inst *domain.AnvilInstance) error {
	setFilePaths(inst)
	if pid, running := isRunning(inst); running {
		return fmt.Errorf("anvil '%s' is already running (PID %d, PID file %s)", inst.Name, pid, inst.PidFile)
	}

	logFile, err := os.Create(inst.LogFile)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	defer logFile.Close()

	// not tied to ctx: the node outlives this command
	cmd := exec.Command(m.binary, buildArgs(inst)...) //nolint:gosec // fixed binary, validated args
	cmd.Stdout = logFile
	cmd.Stderr = logFile

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start anvil: %w", err)
	}
	if err := os.WriteFile(inst.PidFile, []byte(strconv.Itoa(cmd.Process.Pid)), 0644); err != nil {
		_ = cmd.Process.Kill()
		return fmt.Errorf("failed to write PID file: %w", err)
	}
	m.log.Debug("anvil started", "name", inst.Name, "pid", cmd.Process.Pid, "log", inst.LogFile)

	waitCtx, cancel := context.WithTimeout(ctx, m.startTimeout)
	defer cancel()
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()
	for {
		if _, err := checkRPC(waitCtx, inst.RPCURL()); err == nil {
			return nil
		}
		select {
		case <-waitCtx.Done():
			return fmt.Errorf("anvil '%s' did not answer on %s (see %s)", inst.Name, inst.RPCURL(), inst.LogFile)
		case <-ticker.C:
		}
	}
}

// Stop terminates the instance and removes its PID file.
func (m *Manager) Stop(ctx context.Context, inst *domain.AnvilInstance) error {
	setFilePaths(inst)
	pid, running := isRunning(inst)
	if !running {
		_ = os.Remove(inst.PidFile)
		return fmt.Errorf("anvil '%s' is not running", inst.Name)
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("failed to find process: %w", err)
	}
	if err := process.Signal(syscall.SIGTERM); err != nil {
		if err := process.Kill(); err != nil {
			return fmt.Errorf("failed to kill process: %w", err)
		}
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if process.Signal(syscall.Signal(0)) != nil {
			break
		}
		time.Sleep(100 * time.Millisecond)
	}
	if process.Signal(syscall.Signal(0)) == nil {
		_ = process.Kill()
	}

	if err := os.Remove(inst.PidFile); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove PID file: %w", err)
	}
	m.log.Debug("anvil stopped", "name", inst.Name, "pid", pid)
	return nil
}

// GetStatus reports whether the instance runs and whether its RPC answers.
func (m *Manager) GetStatus(ctx context.Context, inst *domain.AnvilInstance) (*domain.AnvilStatus, error) {
	setFilePaths(inst)
	status := &domain.AnvilStatus{LogFile: inst.LogFile}

	pid, running := isRunning(inst)
	if !running {
		return status, nil
	}
	status.Running = true
	status.PID = pid
	status.RPCURL = inst.RPCURL()

	head, err := checkRPC(ctx, status.RPCURL)
	if err != nil {
		status.Error = err.Error()
		return status, nil
	}
	status.RPCHealthy = true
	status.ChainID = head.chainID
	status.BlockNumber = head.block
	return status, nil
}

// StreamLogs follows the instance log until ctx is cancelled.
func (m *Manager) StreamLogs(ctx context.Context, inst *domain.AnvilInstance, writer io.Writer) error {
	setFilePaths(inst)
	if _, err := os.Stat(inst.LogFile); os.IsNotExist(err) {
		return fmt.Errorf("log file does not exist: %s", inst.LogFile)
	}
	cmd := exec.CommandContext(ctx, "tail", "-f", inst.LogFile) //nolint:gosec // our own log file
	cmd.Stdout = writer
	cmd.Stderr = writer
	if err := cmd.Run(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func buildArgs(inst *domain.AnvilInstance) []string {
	args := []string{"--port", inst.Port, "--host", "0.0.0.0"}
	if inst.ChainID != 0 {
		args = append(args, "--chain-id", strconv.FormatUint(inst.ChainID, 10))
	}
	return args
}

// setFilePaths assigns PID and log files under the temp dir unless already set.
func setFilePaths(inst *domain.AnvilInstance) {
	if inst.PidFile == "" {
		inst.PidFile = filepath.Join(os.TempDir(), fmt.Sprintf("vest-%s.pid", inst.Name))
	}
	if inst.LogFile == "" {
		inst.LogFile = filepath.Join(os.TempDir(), fmt.Sprintf("vest-%s.log", inst.Name))
	}
}

func isRunning(inst *domain.AnvilInstance) (int, bool) {
	data, err := os.ReadFile(inst.PidFile)
	if err != nil {
		return 0, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return 0, false
	}
	process, err := os.FindProcess(pid)
	if err != nil {
		return 0, false
	}
	return pid, process.Signal(syscall.Signal(0)) == nil
}

type chainHead struct {
	chainID uint64
	block   uint64
}

func checkRPC(ctx context.Context, url string) (chainHead, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	client, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return chainHead{}, err
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return chainHead{}, err
	}
	block, err := client.BlockNumber(ctx)
	if err != nil {
		return chainHead{}, err
	}
	return chainHead{chainID: chainID.Uint64(), block: block}, nil
}
