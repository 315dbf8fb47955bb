package benchplot

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwiater/benchplot/internal/appconfig"
	"github.com/mwiater/benchplot/internal/logging"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func resetFlags() {
	reset := func(flag *pflag.Flag) {
		_ = flag.Value.Set(flag.DefValue)
		flag.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	reportCmd.PersistentFlags().VisitAll(reset)
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func tempLog(t *testing.T) string {
	t.Helper()
	t.Cleanup(func() { _ = logging.Close() })
	return filepath.Join(t.TempDir(), "benchplot.log")
}

func useConfig(t *testing.T, path string) {
	t.Helper()
	resetFlags()
	prevCfgFile := cfgFile
	cfgFile = path
	viper.SetConfigFile(path)
	t.Cleanup(func() {
		cfgFile = prevCfgFile
		viper.SetConfigFile(prevCfgFile)
		resetFlags()
	})
}

func TestPersistentPreRunEUsesFlagValues(t *testing.T) {
	configPath := writeTempConfig(t, `{"workers": 2}`)
	useConfig(t, configPath)
	logPath := tempLog(t)

	_ = rootCmd.PersistentFlags().Set("debug", "true")
	_ = rootCmd.PersistentFlags().Set("logFile", logPath)

	if err := rootCmd.PersistentPreRunE(rootCmd, []string{}); err != nil {
		t.Fatalf("PersistentPreRunE error: %v", err)
	}

	if currentConfig == nil || currentConfig.ConfigPath != configPath {
		t.Fatalf("expected config loaded with path %s", configPath)
	}
	if !currentConfig.Debug {
		t.Fatalf("expected flag values to flow into config: %+v", currentConfig)
	}
	if currentConfig.Workers != 2 {
		t.Fatalf("expected workers from config file, got %d", currentConfig.Workers)
	}
	if currentConfig.LogFile != logPath {
		t.Fatalf("expected logFile %s, got %s", logPath, currentConfig.LogFile)
	}
	if _, err := os.Stat(logPath); err != nil {
		t.Fatalf("expected log file created: %v", err)
	}
}

func TestPersistentPreRunERejectsInvalidConfig(t *testing.T) {
	useConfig(t, writeTempConfig(t, `{"workers": "many"}`))

	err := rootCmd.PersistentPreRunE(rootCmd, []string{})
	if err == nil || !strings.Contains(err.Error(), "workers") {
		t.Fatalf("expected schema error for workers, got %v", err)
	}
}

func TestPersistentPreRunEMissingConfigFile(t *testing.T) {
	useConfig(t, filepath.Join(t.TempDir(), "absent.json"))
	_ = rootCmd.PersistentFlags().Set("logFile", tempLog(t))

	if err := rootCmd.PersistentPreRunE(rootCmd, []string{}); err != nil {
		t.Fatalf("expected defaults when config file is missing, got %v", err)
	}
}

func TestShowConfigCommandOutput(t *testing.T) {
	configPath := writeTempConfig(t, `{"groupBy": "size"}`)
	useConfig(t, configPath)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"--config", configPath, "--logFile", tempLog(t), "--debug", "show", "config"})
	t.Cleanup(func() { rootCmd.SetArgs([]string{}) })
	_, err := rootCmd.ExecuteC()
	if err != nil {
		t.Fatalf("ExecuteC error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Config file: "+configPath) {
		t.Fatalf("expected config file path in output, got %s", out)
	}
	if !strings.Contains(out, "Debug:           true") {
		t.Fatalf("expected debug in output, got %s", out)
	}
	if !strings.Contains(out, "Group By:        size") {
		t.Fatalf("expected groupBy in output, got %s", out)
	}
}

func TestReportAllCommand(t *testing.T) {
	root := t.TempDir()
	dataDir := filepath.Join(root, "data")
	imgDir := filepath.Join(root, "img")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		t.Fatal(err)
	}
	csv := "method,nb_proc,time\nsequential,1,100\nmpi,2,60\nmpi,4,30\n"
	if err := os.WriteFile(filepath.Join(dataDir, "ex1_mpi.csv"), []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	configPath := writeTempConfig(t, "{}")
	useConfig(t, configPath)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{
		"--config", configPath, "--logFile", tempLog(t),
		"report", "all", "--data-dir", dataDir, "--img-dir", imgDir, "--format", "svg",
	})
	t.Cleanup(func() { rootCmd.SetArgs([]string{}) })
	if _, err := rootCmd.ExecuteC(); err != nil {
		t.Fatalf("ExecuteC error: %v\n%s", err, buf.String())
	}

	for _, name := range []string{"ex1_mpi.svg", "ex1_mpi_speedup.svg"} {
		if _, err := os.Stat(filepath.Join(imgDir, name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
	out := buf.String()
	if !strings.Contains(out, "Processing ex1_mpi.csv...") {
		t.Fatalf("expected processing line, got %s", out)
	}
	if !strings.Contains(out, "2 saved, 0 skipped, 0 failed") {
		t.Fatalf("expected summary totals, got %s", out)
	}
}

func TestReportOptionsRejectsUnknownFormat(t *testing.T) {
	if _, err := reportOptions(&appconfig.Config{Format: "gif"}, nil); err == nil {
		t.Fatal("expected error for gif format")
	}
	opts, err := reportOptions(nil, []string{"speedup"})
	if err != nil {
		t.Fatalf("reportOptions error: %v", err)
	}
	if opts.DataDir != "data" || opts.ImgDir != "img" || opts.Chart.Format != "png" {
		t.Fatalf("unexpected defaults: %+v", opts)
	}
}
