package log

import (
	"os"
	"path"
	"strings"
	"testing"
	"time"

	"nutriplan/structs"

	"github.com/sirupsen/logrus"
)

func TestLoggerInitWritesDatedFile(t *testing.T) {
	dir := t.TempDir()
	logService := LogService{Config: structs.LogConfig{Level: "debug", Dir: dir}}
	logger := logService.LoggerInit("plan")

	if logger.GetLevel() != logrus.DebugLevel {
		t.Fatalf("level: want=debug got=%s", logger.GetLevel())
	}
	logger.WithFields(logrus.Fields{"task": "plan"}).Info("generated")

	raw, err := os.ReadFile(path.Join(dir, time.Now().Format("2006-01-02"), "plan.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(raw), "generated") || !strings.Contains(string(raw), "task=plan") {
		t.Fatalf("log file content: got=%q", raw)
	}
}

func TestLoggerInitUnknownLevelFallsBackToInfo(t *testing.T) {
	logService := LogService{Config: structs.LogConfig{Level: "chatty"}}
	if got := logService.LoggerInit("main").GetLevel(); got != logrus.InfoLevel {
		t.Fatalf("level: want=info got=%s", got)
	}
}
