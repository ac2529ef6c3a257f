package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giufus/workout-streak-bot/internal/api"
	"github.com/giufus/workout-streak-bot/internal/factory"
)

const adminToken = "e2e-admin-token"

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "wsb-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/wsb")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func (r *cliRunner) runWithToken(token string, args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token", token,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// Create application with in-memory storage
	app, err := factory.New(factory.Config{Logger: logger})
	require.NoError(t, err)
	require.NoError(t, app.Storage.EnsureSeeded(context.Background(), app.Catalog))

	router := api.NewRouter(api.RouterConfig{
		Logger:           logger,
		Catalog:          app.Catalog,
		Storage:          app.Storage,
		LedgerService:    app.LedgerService,
		AggregateService: app.AggregateService,
		AdminToken:       adminToken,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		addr: serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type progressResponse struct {
	ExerciseID   string `json:"exercise_id"`
	ExerciseName string `json:"exercise_name"`
	NewTotal     int64  `json:"new_total"`
	Goal         int    `json:"goal"`
	GoalCrossed  bool   `json:"goal_crossed"`
}

type summaryResponse struct {
	PlayerID int64 `json:"player_id"`
	Rows     []struct {
		ExerciseID string `json:"exercise_id"`
		Name       string `json:"name"`
		Total      int64  `json:"total"`
		Goal       int    `json:"goal"`
	} `json:"rows"`
}

type leaderboardResponse struct {
	PlayerIDs    []int64   `json:"player_ids"`
	PlayerLabels []string  `json:"player_labels"`
	ExerciseIDs  []string  `json:"exercise_ids"`
	Cells        [][]int64 `json:"cells"`
}

type healthResponse struct {
	Status string `json:"status"`
}

func TestCLIEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	server := startTestServer(t)
	defer server.shutdown()

	cli := newCLIRunner(t, server.addr)

	// Health check
	out, err := cli.run("health")
	require.NoError(t, err, out)
	var health healthResponse
	require.NoError(t, json.Unmarshal([]byte(out), &health))
	assert.Equal(t, "ok", health.Status)

	// List exercises
	out, err = cli.run("exercises")
	require.NoError(t, err, out)
	var exercises []struct {
		ID    string `json:"id"`
		Alias string `json:"alias"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &exercises))
	assert.Len(t, exercises, 8)

	// Log progress for two players
	out, err = cli.run("log", "plk", "250", "--player", "1", "--name", "Alice", "--user", "alice")
	require.NoError(t, err, out)
	var progress progressResponse
	require.NoError(t, json.Unmarshal([]byte(out), &progress))
	assert.Equal(t, "plank", progress.ExerciseID)
	assert.Equal(t, int64(250), progress.NewTotal)
	assert.False(t, progress.GoalCrossed)

	out, err = cli.run("log", "plk", "100", "--player", "1", "--name", "Alice", "--user", "alice")
	require.NoError(t, err, out)
	require.NoError(t, json.Unmarshal([]byte(out), &progress))
	assert.True(t, progress.GoalCrossed)

	out, err = cli.run("log", "sqt", "40", "--player", "2", "--name", "Bob")
	require.NoError(t, err, out)

	// Summary for player 1
	out, err = cli.run("summary", "--player", "1")
	require.NoError(t, err, out)
	var summary summaryResponse
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, int64(1), summary.PlayerID)
	assert.Len(t, summary.Rows, 8)

	// Leaderboard covers both players
	out, err = cli.run("leaderboard")
	require.NoError(t, err, out)
	var lb leaderboardResponse
	require.NoError(t, json.Unmarshal([]byte(out), &lb))
	assert.Equal(t, []int64{1, 2}, lb.PlayerIDs)

	// Reset player 2's squats
	out, err = cli.run("reset", "sqt", "--player", "2")
	require.NoError(t, err, out)

	// Unknown alias fails
	out, err = cli.run("log", "nope", "10", "--player", "1")
	require.Error(t, err)
	assert.Contains(t, out, "UNKNOWN_ALIAS")

	// Admin reset requires the token
	_, err = cli.run("admin", "reset", "--yes")
	require.Error(t, err)

	out, err = cli.runWithToken(adminToken, "admin", "reset", "--yes")
	require.NoError(t, err, out)

	out, err = cli.run("leaderboard")
	require.NoError(t, err, out)
	require.NoError(t, json.Unmarshal([]byte(out), &lb))
	assert.Empty(t, lb.PlayerIDs)
}
