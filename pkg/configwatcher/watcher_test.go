package configwatcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"pfe_service/internal/config"

	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, path, model string) {
	t.Helper()
	content := `server:
  port: "8080"
  mode: debug
storage:
  type: minio
ai:
  base_url: http://localhost:9999
  api_key: test-key
  model: ` + model + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func waitForReload(t *testing.T, ch <-chan *config.Config, wantModel string) {
	t.Helper()
	deadline := time.After(3 * time.Second)
	for {
		select {
		case cfg := <-ch:
			if cfg.AI.Model == wantModel {
				return
			}
		case <-deadline:
			t.Fatalf("config reload with model %q never arrived", wantModel)
		}
	}
}

func TestWatchConfigReloadsOnWrite(t *testing.T) {
	debounceInterval = 50 * time.Millisecond

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeConfigFile(t, path, "model-v1")

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	reloaded := make(chan *config.Config, 4)
	go WatchConfig(path, cfg, func(newCfg interface{}) {
		if c, ok := newCfg.(*config.Config); ok {
			reloaded <- c
		}
	})

	// 等待watcher注册完成
	time.Sleep(200 * time.Millisecond)

	writeConfigFile(t, path, "model-v2")
	waitForReload(t, reloaded, "model-v2")

	// 再次写入验证watcher未卡死，防抖计时器可重复使用
	writeConfigFile(t, path, "model-v3")
	waitForReload(t, reloaded, "model-v3")
}
