package secrets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/zatekoja/sehatsaathi/backend/pkg/retry"
)

// ManagedKeys are the environment variables the service reads secrets from.
// Anything else stored at the Vault path is ignored.
var ManagedKeys = []string{
	"OPENAI_API_KEY",
	"GOOGLE_MAPS_API_KEY",
	"HUGGINGFACE_TOKEN",
	"DB_PASSWORD",
	"REDIS_PASSWORD",
	"TYPESENSE_API_KEY",
}

type VaultConfig struct {
	Enabled   bool
	Addr      string
	Token     string
	Namespace string
	Mount     string
	Path      string
	KVVersion int
	Timeout   time.Duration
	Overwrite bool
}

type VaultResult struct {
	Enabled bool
	Path    string
	Loaded  int
	Skipped int
}

func LoadVaultConfigFromEnv() VaultConfig {
	cfg := VaultConfig{
		Enabled:   strings.EqualFold(os.Getenv("VAULT_ENABLED"), "true"),
		Addr:      os.Getenv("VAULT_ADDR"),
		Token:     os.Getenv("VAULT_TOKEN"),
		Namespace: os.Getenv("VAULT_NAMESPACE"),
		Mount:     os.Getenv("VAULT_MOUNT"),
		Path:      os.Getenv("VAULT_PATH"),
		KVVersion: 2,
		Timeout:   5 * time.Second,
		Overwrite: strings.EqualFold(os.Getenv("VAULT_OVERWRITE"), "true"),
	}
	if cfg.Mount == "" {
		cfg.Mount = "secret"
	}
	if cfg.Path == "" {
		cfg.Path = "sehat-saathi/backend"
	}
	if v, err := strconv.Atoi(os.Getenv("VAULT_KV_VERSION")); err == nil {
		cfg.KVVersion = v
	}
	if v, err := strconv.Atoi(os.Getenv("VAULT_TIMEOUT_MS")); err == nil {
		cfg.Timeout = time.Duration(v) * time.Millisecond
	}
	return cfg
}

// ApplyVaultSecrets copies the managed keys found at the configured path into
// the process environment. Keys already set are kept unless Overwrite is true.
func ApplyVaultSecrets(ctx context.Context, cfg VaultConfig) (VaultResult, error) {
	result := VaultResult{Enabled: cfg.Enabled, Path: cfg.Path}
	if !cfg.Enabled {
		return result, nil
	}
	if cfg.Addr == "" || cfg.Token == "" {
		return result, errors.New("vault configuration incomplete (VAULT_ADDR, VAULT_TOKEN)")
	}

	url, err := buildVaultURL(cfg.Addr, cfg.Mount, cfg.Path, cfg.KVVersion)
	if err != nil {
		return result, err
	}

	var data map[string]interface{}
	client := &http.Client{Timeout: cfg.Timeout}
	err = retry.Do(ctx, retry.OracleConfig(3), func() error {
		var fetchErr error
		data, fetchErr = fetchVaultData(ctx, client, url, cfg)
		return fetchErr
	})
	if err != nil {
		return result, err
	}

	for _, key := range ManagedKeys {
		value, ok := data[key]
		if !ok {
			continue
		}
		if !cfg.Overwrite && os.Getenv(key) != "" {
			result.Skipped++
			continue
		}
		if err := os.Setenv(key, stringifyVaultValue(value)); err != nil {
			return result, err
		}
		result.Loaded++
	}
	return result, nil
}

func fetchVaultData(ctx context.Context, client *http.Client, url string, cfg VaultConfig) (map[string]interface{}, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, retry.Permanent(err)
	}
	req.Header.Set("X-Vault-Token", cfg.Token)
	if cfg.Namespace != "" {
		req.Header.Set("X-Vault-Namespace", cfg.Namespace)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 500 {
		return nil, fmt.Errorf("vault fetch failed: %s", resp.Status)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, retry.Permanent(fmt.Errorf("vault fetch failed: %s %s", resp.Status, strings.TrimSpace(string(body))))
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, retry.Permanent(err)
	}
	data, err := extractVaultData(payload, cfg.KVVersion)
	if err != nil {
		return nil, retry.Permanent(err)
	}
	return data, nil
}

func buildVaultURL(addr, mount, path string, kvVersion int) (string, error) {
	addr = strings.TrimRight(addr, "/")
	mount = strings.Trim(mount, "/")
	path = strings.TrimLeft(path, "/")
	if addr == "" || mount == "" || path == "" {
		return "", errors.New("vault address, mount, and path must be set")
	}
	if kvVersion == 1 {
		return fmt.Sprintf("%s/v1/%s/%s", addr, mount, path), nil
	}
	return fmt.Sprintf("%s/v1/%s/data/%s", addr, mount, path), nil
}

func extractVaultData(payload map[string]interface{}, kvVersion int) (map[string]interface{}, error) {
	data, ok := payload["data"].(map[string]interface{})
	if !ok {
		return nil, errors.New("vault response missing data")
	}
	if kvVersion == 1 {
		return data, nil
	}
	inner, ok := data["data"].(map[string]interface{})
	if !ok {
		return nil, errors.New("vault response missing data for KV v2")
	}
	return inner, nil
}

func stringifyVaultValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(encoded)
	}
}
