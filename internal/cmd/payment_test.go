package cmd

import (
	"net/http"
	"strings"
	"testing"

	"github.com/halcyonpay/payctl/internal/errors"
	"github.com/halcyonpay/payctl/internal/exitcode"
)

func TestPaymentSubcommands(t *testing.T) {
	subcommands := map[string]bool{
		"create": false,
		"get":    false,
		"list":   false,
		"void":   false,
	}

	for _, cmd := range paymentCmd.Commands() {
		if _, exists := subcommands[cmd.Name()]; exists {
			subcommands[cmd.Name()] = true
		}
	}

	for name, found := range subcommands {
		if !found {
			t.Errorf("subcommand '%s' not found in payment command", name)
		}
	}
}

func TestPaymentCreateFlags(t *testing.T) {
	for _, name := range []string{"order-id", "amount", "currency", "card-token", "description", "idempotency-key"} {
		if paymentCreateCmd.Flags().Lookup(name) == nil {
			t.Errorf("flag '%s' not found on payment create command", name)
		}
	}
}

func TestPaymentListFlags(t *testing.T) {
	for _, name := range []string{"status", "page", "page-size", "all"} {
		if paymentListCmd.Flags().Lookup(name) == nil {
			t.Errorf("flag '%s' not found on payment list command", name)
		}
	}
}

func TestPaymentCommandsHaltWithoutSession(t *testing.T) {
	setTestConfigDir(t)

	argSets := [][]string{
		{"payment", "get", "pay-1"},
		{"payment", "void", "pay-1"},
		{"payment", "list"},
		{"payment", "create", "--order-id", "o-1", "--amount", "1.00"},
	}

	for _, args := range argSets {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			_, err := executeCommand(t, append(args, "--api-url", "http://example.invalid")...)
			if err == nil {
				t.Fatal("command should halt without a session")
			}
			if errors.CodeOf(err) != errors.ErrCodeNotAuthenticated {
				t.Errorf("expected not-authenticated error, got: %v", err)
			}
			if !strings.Contains(err.Error(), "payctl auth login") {
				t.Errorf("error should instruct the user to login, got: %v", err)
			}
			if code := exitcode.DetermineExitCode(err); code != exitcode.AuthError {
				t.Errorf("expected auth exit code %d, got %d", exitcode.AuthError, code)
			}
		})
	}
}

func loginForTest(t *testing.T, serverURL string) {
	t.Helper()

	_, err := executeCommand(t, "auth", "login",
		"--api-url", serverURL,
		"--client-id", "merchant-123",
		"--client-secret", "s3cret")
	if err != nil {
		t.Fatalf("test login failed: %v", err)
	}
}

func newGatewayStub(t *testing.T) string {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-test","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/v1/payments/pay-1", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-test" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pay-1","order_id":"order-42","amount":1999,"currency":"CAD","status":"approved"}`))
	})
	mux.HandleFunc("/v1/payments", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodPost:
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"pay-2","order_id":"order-43","amount":500,"currency":"CAD","status":"pending"}`))
		default:
			_, _ = w.Write([]byte(`{"payments":[{"id":"pay-1","order_id":"order-42","amount":1999,"currency":"CAD","status":"approved"}],"total_count":1,"page":1,"page_size":20}`))
		}
	})

	return newTestServer(t, mux).URL
}

func TestPaymentGetWithSession(t *testing.T) {
	setTestConfigDir(t)
	serverURL := newGatewayStub(t)
	loginForTest(t, serverURL)

	out, err := executeCommand(t, "payment", "get", "pay-1", "--api-url", serverURL)
	if err != nil {
		t.Fatalf("payment get failed: %v", err)
	}

	for _, want := range []string{"pay-1", "order-42", "19.99 CAD", "approved"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got: %s", want, out)
		}
	}
}

func TestPaymentCreateWithSession(t *testing.T) {
	setTestConfigDir(t)
	serverURL := newGatewayStub(t)
	loginForTest(t, serverURL)

	out, err := executeCommand(t, "payment", "create",
		"--api-url", serverURL,
		"--order-id", "order-43",
		"--amount", "5.00",
		"--currency", "CAD")
	if err != nil {
		t.Fatalf("payment create failed: %v", err)
	}

	if !strings.Contains(out, "pay-2") || !strings.Contains(out, "pending") {
		t.Errorf("expected created payment in output, got: %s", out)
	}
}

func TestPaymentCreateRejectsBadAmount(t *testing.T) {
	setTestConfigDir(t)
	serverURL := newGatewayStub(t)
	loginForTest(t, serverURL)

	_, err := executeCommand(t, "payment", "create",
		"--api-url", serverURL,
		"--order-id", "order-43",
		"--amount", "five dollars")
	if err == nil {
		t.Fatal("expected bad amount to be rejected")
	}
	if errors.CodeOf(err) != errors.ErrCodePaymentAmount {
		t.Errorf("expected amount error, got: %v", err)
	}
}

func TestPaymentListWithSession(t *testing.T) {
	setTestConfigDir(t)
	serverURL := newGatewayStub(t)
	loginForTest(t, serverURL)

	out, err := executeCommand(t, "payment", "list", "--api-url", serverURL)
	if err != nil {
		t.Fatalf("payment list failed: %v", err)
	}
	if !strings.Contains(out, "pay-1") {
		t.Errorf("expected payment row in output, got: %s", out)
	}
}

func TestPaymentListJSONFormat(t *testing.T) {
	setTestConfigDir(t)
	serverURL := newGatewayStub(t)
	loginForTest(t, serverURL)

	out, err := executeCommand(t, "payment", "list", "--api-url", serverURL, "--format", "json")
	if err != nil {
		t.Fatalf("payment list --format json failed: %v", err)
	}
	if !strings.Contains(out, `"id": "pay-1"`) {
		t.Errorf("expected JSON output, got: %s", out)
	}

	// Reset the persistent flag for subsequent tests.
	if err := rootCmd.PersistentFlags().Set("format", "text"); err != nil {
		t.Fatal(err)
	}
}
