package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the suite configuration loaded from YAML with
// environment overrides applied on top.
type Config struct {
	Gateway   GatewayConfig   `yaml:"gateway"`
	Workspace WorkspaceConfig `yaml:"workspace"`
	Simulator SimulatorConfig `yaml:"simulator"`
}

// GatewayConfig describes how to reach the MCP gateway.
type GatewayConfig struct {
	URL            string `yaml:"url"`
	Token          string `yaml:"token"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the request timeout as a duration.
func (g GatewayConfig) Timeout() time.Duration {
	if g.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(g.TimeoutSeconds) * time.Second
}

// WorkspaceConfig names the repositories the demos operate on.
type WorkspaceConfig struct {
	// RepoPath is the working tree submitted for analysis.
	RepoPath string `yaml:"repo_path"`
	// Repositories is the fleet scanned by the insights dashboard.
	Repositories []string `yaml:"repositories"`
	// GitHubRepo is the owner/name slug used for branch, PR and
	// notification operations.
	GitHubRepo string `yaml:"github_repo"`
}

// SimulatorConfig controls the bundled gateway simulator.
type SimulatorConfig struct {
	Listen  string          `yaml:"listen"`
	Auth    SimAuthConfig   `yaml:"auth"`
	Rate    SimRateConfig   `yaml:"rate"`
	Memory  SimMemoryConfig `yaml:"memory"`
	LogFile string          `yaml:"log_file"`
}

// SimAuthConfig selects how the simulator validates bearer tokens. Mode
// "static" compares against Token, mode "jwt" verifies an HS256 signature
// with JWTSecret. An empty token in static mode disables auth entirely.
type SimAuthConfig struct {
	Mode      string `yaml:"mode"`
	Token     string `yaml:"token"`
	JWTSecret string `yaml:"jwt_secret"`
}

// SimRateConfig bounds the request rate per bearer on the RPC endpoint.
type SimRateConfig struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// SimMemoryConfig sizes the memory tool's value store.
type SimMemoryConfig struct {
	MaxEntries int64         `yaml:"max_entries"`
	TTL        time.Duration `yaml:"ttl"`
}

// Load reads configuration from the supplied path or returns defaults.
// MCP_GATEWAY_URL, MCP_GATEWAY_TOKEN and MCPFLOW_REPO_PATH override the
// file in that order so tokens never need to live on disk.
func Load(path string) (Config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("unmarshal config: %w", err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func defaultConfig() Config {
	return Config{
		Gateway: GatewayConfig{
			URL:            "http://localhost:4444",
			TimeoutSeconds: 30,
		},
		Workspace: WorkspaceConfig{
			RepoPath: ".",
			Repositories: []string{
				"mcp-gateway-demo",
				"mcp-context-forge",
				"mcp_auto_pr",
			},
			GitHubRepo: "mcpflow/demo-repo",
		},
		Simulator: SimulatorConfig{
			Listen: ":4444",
			Auth:   SimAuthConfig{Mode: "static"},
			Rate:   SimRateConfig{PerSecond: 20, Burst: 40},
			Memory: SimMemoryConfig{MaxEntries: 4096, TTL: time.Hour},
		},
	}
}

func applyEnv(cfg *Config) {
	cfg.Gateway.URL = getenv("MCP_GATEWAY_URL", cfg.Gateway.URL)
	cfg.Gateway.Token = getenv("MCP_GATEWAY_TOKEN", cfg.Gateway.Token)
	cfg.Workspace.RepoPath = getenv("MCPFLOW_REPO_PATH", cfg.Workspace.RepoPath)
	if repos := os.Getenv("MCPFLOW_REPOSITORIES"); repos != "" {
		cfg.Workspace.Repositories = splitList(repos)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
