package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// resetCLI clears global flag state and test-relevant environment between runs.
func resetCLI(t *testing.T) {
	t.Helper()

	t.Setenv("PYHSS_API", "")
	t.Setenv("PYHSS_APIKEY", "")
	t.Setenv("HSSCTL_TIMEOUT", "")
	t.Setenv("HSSCTL_DEBUG", "")
	t.Setenv("HSSCTL_DEBUG_LOG", "")

	// Cobra's auto-generated help/version flags persist on the shared
	// rootCmd between Execute calls; clear them like the rest.
	if f := rootCmd.Flags().Lookup("help"); f != nil {
		_ = f.Value.Set("false")
	}
	if f := rootCmd.Flags().Lookup("version"); f != nil {
		_ = f.Value.Set("false")
	}

	cfgAPIURL = ""
	cfgAPIKey = ""
	cfgTimeout = 0
	cfgDebug = false
	cfgDebugLog = ""
	outputJSON = false
	outputYAML = false

	listSubIMSI = ""
	listSubSize = 100
	listSubPage = 0
	addSubKi = ""
	addSubOPc = ""
	addSubMSISDN = ""
	addSubDefaultAPN = ""
	addSubAPNs = nil

	listAPNName = ""
	addAPNDownlink = "150mbit"
	addAPNUplink = "50mbit"
	addAPNQCI = 9
	addAPNARP = 9
	addAPNPreemptionCap = false
	addAPNPreemptionVuln = true

	listIMSSize = 100
	listIMSPage = 0
	addIMSMSISDNs = nil
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCLI_Help_ListsAllCommands(t *testing.T) {
	resetCLI(t)

	stdout, _, err := execute(t, "--help")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{
		"list-subscribers", "add-subscriber", "remove-subscriber",
		"list-apns", "add-apn", "remove-apn",
		"list-ims-subscribers", "add-ims-subscriber", "remove-ims-subscriber",
	}
	for _, cmd := range expected {
		if !strings.Contains(stdout, cmd) {
			t.Errorf("--help output should contain %q command", cmd)
		}
	}
}

func TestCLI_Version_NoNetworkCall(t *testing.T) {
	resetCLI(t)

	// An unreachable API must not matter for --version.
	stdout, _, err := execute(t, "--api", "http://127.0.0.1:1", "--version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, version) {
		t.Errorf("version output should contain %q, got: %s", version, stdout)
	}
}

func TestCLI_UnknownCommand(t *testing.T) {
	resetCLI(t)

	_, _, err := execute(t, "frobnicate")
	if err == nil {
		t.Fatal("expected error for unknown subcommand")
	}
}

func TestCLI_AddSubscriber_MissingRequiredFlag(t *testing.T) {
	resetCLI(t)

	_, _, err := execute(t, "add-subscriber", "999420000000012", "--ki", "465b5ce8b199b49faa5f0a2ee238a6bc")
	if err == nil {
		t.Fatal("expected error for missing required flags")
	}
	if !strings.Contains(err.Error(), "opc") && !strings.Contains(err.Error(), "default-apn") {
		t.Errorf("error should name the missing flag, got: %v", err)
	}
}

func TestCLI_AddAPN_Success(t *testing.T) {
	resetCLI(t)

	var gotPath, gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"name":"internet","apn_ambr_dl":150000000,"apn_ambr_ul":50000000,"qci":9,"arp_priority":9,"arp_preemption_capability":false,"arp_preemption_vulnerability":true}`))
	}))
	defer server.Close()

	stdout, _, err := execute(t, "add-apn", "internet", "--api", server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotMethod != http.MethodPost || gotPath != "/apn" {
		t.Errorf("got %s %s, want POST /apn", gotMethod, gotPath)
	}
	if !strings.Contains(stdout, "internet") {
		t.Errorf("output should confirm the APN, got: %s", stdout)
	}
}

func TestCLI_AddAPN_Conflict(t *testing.T) {
	resetCLI(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"APN internet already exists"}`))
	}))
	defer server.Close()

	_, _, err := execute(t, "add-apn", "internet", "--api", server.URL)
	if err == nil {
		t.Fatal("expected error for conflicting APN")
	}
	if !strings.Contains(err.Error(), "409") {
		t.Errorf("error should surface the remote status, got: %v", err)
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("error should surface the remote body, got: %v", err)
	}
}

func TestCLI_ListAPNs_Empty(t *testing.T) {
	resetCLI(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	stdout, _, err := execute(t, "list-apns", "--api", server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "No APNs found.") {
		t.Errorf("empty list should say so explicitly, got: %s", stdout)
	}
}

func TestCLI_ListSubscribers_Empty(t *testing.T) {
	resetCLI(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/subscriber" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	stdout, _, err := execute(t, "list-subscribers", "--api", server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "No subscribers found.") {
		t.Errorf("empty list should say so explicitly, got: %s", stdout)
	}
}

func TestCLI_AddSubscriber_RepeatedAPNFlags(t *testing.T) {
	resetCLI(t)

	var rawBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(r.Body)
		rawBody = buf.Bytes()
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write(rawBody)
	}))
	defer server.Close()

	_, _, err := execute(t, "add-subscriber", "999420000000012",
		"--ki", "465b5ce8b199b49faa5f0a2ee238a6bc",
		"--opc", "e8ed289deba952e4283b54e88e6183ca",
		"--default-apn", "internet",
		"--apn", "ims", "--apn", "sos",
		"--api", server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := string(rawBody)
	if !strings.Contains(body, `"apn":["ims","sos"]`) {
		t.Errorf("body should carry APNs in order, got: %s", body)
	}
	if strings.Contains(body, `"msisdn"`) {
		t.Errorf("msisdn should be omitted when not given, got: %s", body)
	}
}

func TestCLI_AddSubscriber_InvalidIMSI_NoRequest(t *testing.T) {
	resetCLI(t)

	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	_, _, err := execute(t, "add-subscriber", "123",
		"--ki", "465b5ce8b199b49faa5f0a2ee238a6bc",
		"--opc", "e8ed289deba952e4283b54e88e6183ca",
		"--default-apn", "internet",
		"--api", server.URL)
	if err == nil {
		t.Fatal("expected error for invalid IMSI")
	}
	if requests != 0 {
		t.Errorf("no request should be issued, got %d", requests)
	}
}

func TestCLI_RemoveSubscriber_Path(t *testing.T) {
	resetCLI(t)

	var gotPath, gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		_, _ = w.Write([]byte(`{"Result":"OK"}`))
	}))
	defer server.Close()

	stdout, _, err := execute(t, "remove-subscriber", "999420000000012", "--api", server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/subscriber/999420000000012" {
		t.Errorf("got %s %s, want DELETE /subscriber/999420000000012", gotMethod, gotPath)
	}
	if !strings.Contains(stdout, "removed") {
		t.Errorf("output should confirm removal, got: %s", stdout)
	}
}

func TestCLI_RemoveAPN_Path(t *testing.T) {
	resetCLI(t)

	var gotPath, gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		_, _ = w.Write([]byte(`{"Result":"OK"}`))
	}))
	defer server.Close()

	_, _, err := execute(t, "remove-apn", "internet", "--api", server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/apn/internet" {
		t.Errorf("got %s %s, want DELETE /apn/internet", gotMethod, gotPath)
	}
}

func TestCLI_TransportError(t *testing.T) {
	resetCLI(t)

	stdout, _, err := execute(t, "list-apns", "--api", "http://127.0.0.1:1", "--timeout", "500ms")
	if err == nil {
		t.Fatal("expected error for unreachable host")
	}
	if stdout != "" {
		t.Errorf("no partial output expected, got: %s", stdout)
	}
}

func TestCLI_ListAPNs_JSON(t *testing.T) {
	resetCLI(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"name":"internet","apn_ambr_dl":150000000,"apn_ambr_ul":50000000,"qci":9,"arp_priority":9,"arp_preemption_capability":false,"arp_preemption_vulnerability":true}]`))
	}))
	defer server.Close()

	stdout, _, err := execute(t, "list-apns", "--api", server.URL, "--json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, `"name": "internet"`) {
		t.Errorf("JSON output expected, got: %s", stdout)
	}
}

func TestCLI_ListAPNs_YAML(t *testing.T) {
	resetCLI(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"name":"internet","apn_ambr_dl":150000000,"apn_ambr_ul":50000000,"qci":9,"arp_priority":9,"arp_preemption_capability":false,"arp_preemption_vulnerability":true}]`))
	}))
	defer server.Close()

	stdout, _, err := execute(t, "list-apns", "--api", server.URL, "--yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "name: internet") {
		t.Errorf("YAML output expected, got: %s", stdout)
	}
}

func TestCLI_APIKey_FlagOverridesEnv(t *testing.T) {
	resetCLI(t)
	t.Setenv("PYHSS_APIKEY", "env-key")
	cfgAPIKey = "flag-key"

	cfg := loadConfig()
	if cfg.APIKey != "flag-key" {
		t.Errorf("APIKey = %q, flag should win over env", cfg.APIKey)
	}
}

func TestCLI_APIKey_EnvFallback(t *testing.T) {
	resetCLI(t)
	t.Setenv("PYHSS_APIKEY", "env-key")

	cfg := loadConfig()
	if cfg.APIKey != "env-key" {
		t.Errorf("APIKey = %q, want env value", cfg.APIKey)
	}
}

func TestCLI_API_EnvFallbackAndDefault(t *testing.T) {
	resetCLI(t)

	cfg := loadConfig()
	if cfg.APIURL != "http://127.0.0.1:8080" {
		t.Errorf("APIURL = %q, want default", cfg.APIURL)
	}

	t.Setenv("PYHSS_API", "http://hss.example.com:8080")
	cfg = loadConfig()
	if cfg.APIURL != "http://hss.example.com:8080" {
		t.Errorf("APIURL = %q, want env value", cfg.APIURL)
	}

	cfgAPIURL = "http://flag.example.com"
	cfg = loadConfig()
	if cfg.APIURL != "http://flag.example.com" {
		t.Errorf("APIURL = %q, flag should win", cfg.APIURL)
	}
}

func TestCLI_APIKey_SentToServer(t *testing.T) {
	resetCLI(t)

	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("Provisioning-Key")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	_, _, err := execute(t, "list-apns", "--api", server.URL, "--api-key", "changeThisInProduction")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotKey != "changeThisInProduction" {
		t.Errorf("Provisioning-Key = %q", gotKey)
	}
}

func TestCLI_Timeout_Flag(t *testing.T) {
	resetCLI(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	_, _, err := execute(t, "list-apns", "--api", server.URL, "--timeout", "50ms")
	if err == nil {
		t.Fatal("expected timeout error")
	}
}
