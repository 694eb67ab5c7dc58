//go:build integration
// +build integration

package test

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

const (
	orgID  = "549236"
	apiKey = "integration-key"
)

// binaryPath is the CLI built once by TestMain.
var binaryPath string

// TestMain builds the CLI from the module root so every test runs the real
// binary and sees its real exit code.
func TestMain(m *testing.M) {
	os.Exit(buildAndRun(m))
}

func buildAndRun(m *testing.M) int {
	binDir, err := os.MkdirTemp("", "appliance-portcfg-it")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create build dir: %v\n", err)
		return 1
	}
	defer os.RemoveAll(binDir)

	root, err := filepath.Abs("..")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to resolve module root: %v\n", err)
		return 1
	}

	binaryPath = filepath.Join(binDir, "appliance-portcfg")
	build := exec.Command("go", "build", "-o", binaryPath, ".")
	build.Dir = root
	if out, err := build.CombinedOutput(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build binary: %v\n%s", err, out)
		return 1
	}

	return m.Run()
}

// fakeDashboard records port updates and serves a two page network listing.
type fakeDashboard struct {
	mu      sync.Mutex
	updates []string
	bodies  []map[string]string
}

func (f *fakeDashboard) handler(t *testing.T, serverURL *string) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/organizations/"+orgID+"/networks", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+apiKey {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"errors":["Invalid API key"]}`)
			return
		}
		if r.URL.Query().Get("startingAfter") == "" {
			w.Header().Set("Link", fmt.Sprintf("<%s/api/v1/organizations/%s/networks?startingAfter=N_1>; rel=next", *serverURL, orgID))
			fmt.Fprint(w, `[{"id":"N_1","name":"HQ","productTypes":["appliance"]}]`)
			return
		}
		fmt.Fprint(w, `[{"id":"N_2","name":"Branch","productTypes":["appliance","switch"]}]`)
	})

	mux.HandleFunc("/api/v1/networks/", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var payload map[string]string
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Errorf("payload is not a JSON object of strings: %s", body)
		}

		f.mu.Lock()
		f.updates = append(f.updates, r.Method+" "+r.URL.Path)
		f.bodies = append(f.bodies, payload)
		f.mu.Unlock()

		if strings.HasSuffix(r.URL.Path, "/ports/99") {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"errors":["Port 99 does not exist"]}`)
			return
		}
		fmt.Fprint(w, `{"number":3,"enabled":true}`)
	})

	return mux
}

// TestApplyAgainstFakeDashboard runs the real binary end to end.
func TestApplyAgainstFakeDashboard(t *testing.T) {
	dashboard := &fakeDashboard{}
	var serverURL string
	server := httptest.NewServer(dashboard.handler(t, &serverURL))
	defer server.Close()
	serverURL = server.URL

	workDir := t.TempDir()
	input := filepath.Join(workDir, "ports.csv")
	csv := strings.Join([]string{
		"Network Name,portId,enabled,type,vlan",
		"Nonexistent,3,true,access,10",
		"HQ,,true,access,10",
		"Branch,3,true,access,10",
		"HQ,99,true,access,10",
	}, "\n")
	if err := os.WriteFile(input, []byte(csv), 0644); err != nil {
		t.Fatalf("Failed to write input: %v", err)
	}

	output, code := runBinary(t, workDir, []string{
		"ORG_ID=" + orgID,
		"MERAKI_API_KEY=" + apiKey,
		"MERAKI_BASE_URL=" + server.URL + "/api/v1",
		"MERAKI_MAX_RETRIES=0",
		"ROW_DELAY=0s",
		"LOG_FORMAT=simple",
	}, "apply", "-i", input)

	t.Logf("apply output:\n%s", output)

	if code != 0 {
		t.Fatalf("apply exited with %d", code)
	}

	if len(dashboard.updates) != 2 {
		t.Fatalf("expected 2 port updates, got %d: %v", len(dashboard.updates), dashboard.updates)
	}
	if dashboard.updates[0] != "PUT /api/v1/networks/N_2/appliance/ports/3" {
		t.Errorf("unexpected first update %q", dashboard.updates[0])
	}
	if _, leaked := dashboard.bodies[0]["Network Name"]; leaked {
		t.Errorf("network name column was forwarded in the payload")
	}
	if !strings.Contains(output, "1 succeeded, 1 failed, 2 skipped") {
		t.Errorf("summary line missing from output")
	}
}

// TestApplyInputMissing checks the dedicated exit code for a missing input file.
func TestApplyInputMissing(t *testing.T) {
	workDir := t.TempDir()

	_, code := runBinary(t, workDir, []string{
		"ORG_ID=" + orgID,
		"MERAKI_API_KEY=" + apiKey,
	}, "apply", "-i", filepath.Join(workDir, "missing.csv"))

	if code != 2 {
		t.Errorf("expected exit code 2, got %d", code)
	}
}

// TestApplyInputUnreadable checks that an input without a header row exits
// with its own code, distinct from a missing file.
func TestApplyInputUnreadable(t *testing.T) {
	workDir := t.TempDir()
	input := filepath.Join(workDir, "empty.csv")
	if err := os.WriteFile(input, nil, 0644); err != nil {
		t.Fatalf("Failed to write input: %v", err)
	}

	_, code := runBinary(t, workDir, []string{
		"ORG_ID=" + orgID,
		"MERAKI_API_KEY=" + apiKey,
	}, "apply", "-i", input)

	if code != 5 {
		t.Errorf("expected exit code 5, got %d", code)
	}
}

// runBinary runs the built CLI from workDir with the given environment.
func runBinary(t *testing.T, workDir string, env []string, args ...string) (string, int) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = workDir
	cmd.Env = append(os.Environ(), env...)

	out, err := cmd.CombinedOutput()
	if err == nil {
		return string(out), 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return string(out), exitErr.ExitCode()
	}
	t.Fatalf("Failed to run binary: %v", err)
	return "", -1
}
