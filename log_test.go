package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestNewLoggerFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "log")
	l := newLogger(dir, false, "debug")
	if l.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v", l.GetLevel())
	}
	l.Errorf("Failed %d/%d/%d: %s", 10, 539, 318, "boom")

	data, err := os.ReadFile(filepath.Join(dir, time.Now().Format("2006-01-02.log")))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "Failed 10/539/318: boom") {
		t.Errorf("log = %q", data)
	}

	if l := newLogger("", false, "nonsense"); l.GetLevel() != logrus.InfoLevel {
		t.Errorf("fallback level = %v", l.GetLevel())
	}
}

func TestNewLoggerBadDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	defer func() {
		r := recover()
		msg, _ := r.(string)
		if !strings.Contains(msg, "日志目录创建失败") || !strings.Contains(msg, file) {
			t.Fatalf("panic = %v", r)
		}
	}()
	newLogger(filepath.Join(file, "log"), false, "info")
}
