package logger

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestParseLevel 测试日志级别解析
func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected slog.Level
	}{
		{"debug", "debug", slog.LevelDebug},
		{"info", "info", slog.LevelInfo},
		{"warn", "warn", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"未知级别默认info", "unknown", slog.LevelInfo},
		{"空字符串默认info", "", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseLevel(tt.input)
			if got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, 期望 %v", tt.input, got, tt.expected)
			}
		})
	}
}

// TestLevelTag 测试日志级别标签
func TestLevelTag(t *testing.T) {
	tests := []struct {
		name     string
		level    slog.Level
		expected string
	}{
		{"error", slog.LevelError, "ERROR"},
		{"warn", slog.LevelWarn, "WARN "},
		{"info", slog.LevelInfo, "INFO "},
		{"debug", slog.LevelDebug, "DEBUG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := levelTag(tt.level)
			if got != tt.expected {
				t.Errorf("levelTag(%v) = %q, 期望 %q", tt.level, got, tt.expected)
			}
		})
	}
}

// TestFormatAttr 测试属性格式化
func TestFormatAttr(t *testing.T) {
	tests := []struct {
		name     string
		group    string
		attr     slog.Attr
		expected string
	}{
		{
			name:     "无分组",
			group:    "",
			attr:     slog.String("key", "value"),
			expected: "  key=value",
		},
		{
			name:     "有分组",
			group:    "group",
			attr:     slog.String("key", "value"),
			expected: "  group.key=value",
		},
		{
			name:     "整数值",
			group:    "",
			attr:     slog.Int("ammo", 30),
			expected: "  ammo=30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatAttr(tt.group, tt.attr)
			if got != tt.expected {
				t.Errorf("formatAttr(%q, %v) = %q, 期望 %q", tt.group, tt.attr, got, tt.expected)
			}
		})
	}
}

// TestConsoleHandlerEnabled 测试 consoleHandler 的级别过滤
func TestConsoleHandlerEnabled(t *testing.T) {
	h := &consoleHandler{level: slog.LevelInfo}

	if !h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Info 级别应该被启用")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("Error 级别应该被启用")
	}
	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Debug 级别不应该被启用")
	}
}

// TestConsoleHandlerHandle 测试 consoleHandler 的日志输出
func TestConsoleHandlerHandle(t *testing.T) {
	var buf bytes.Buffer
	h := &consoleHandler{w: &buf, level: slog.LevelDebug}

	record := slog.NewRecord(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), slog.LevelInfo, "magazine filled", 0)
	record.AddAttrs(slog.String("key", "value"))

	err := h.Handle(context.Background(), record)
	if err != nil {
		t.Fatalf("Handle() 返回错误: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "12:00:00") {
		t.Errorf("输出应包含时间戳, 实际: %q", output)
	}
	if !strings.Contains(output, "INFO") {
		t.Errorf("输出应包含级别标签, 实际: %q", output)
	}
	if !strings.Contains(output, "magazine filled") {
		t.Errorf("输出应包含消息, 实际: %q", output)
	}
	if !strings.Contains(output, "key=value") {
		t.Errorf("输出应包含属性, 实际: %q", output)
	}
	if !strings.HasSuffix(output, "\n") {
		t.Errorf("输出应以换行符结尾, 实际: %q", output)
	}
}

// TestConsoleHandlerWithAttrs 测试 WithAttrs 创建新 handler
func TestConsoleHandlerWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := &consoleHandler{w: &buf, level: slog.LevelDebug}

	h2 := h.WithAttrs([]slog.Attr{slog.String("component", "weapon")})

	// 原始 handler 不应该受影响
	if len(h.attrs) != 0 {
		t.Error("原始 handler 的 attrs 不应该被修改")
	}

	// 新 handler 应该有预设属性
	record := slog.NewRecord(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), slog.LevelInfo, "test", 0)
	err := h2.Handle(context.Background(), record)
	if err != nil {
		t.Fatalf("Handle() 返回错误: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "component=weapon") {
		t.Errorf("输出应包含预设属性, 实际: %q", output)
	}
}

// TestConsoleHandlerWithGroup 测试 WithGroup 创建新 handler
func TestConsoleHandlerWithGroup(t *testing.T) {
	var buf bytes.Buffer
	h := &consoleHandler{w: &buf, level: slog.LevelDebug}

	h2 := h.WithGroup("weapon")

	record := slog.NewRecord(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), slog.LevelInfo, "test", 0)
	record.AddAttrs(slog.String("name", "rifle"))
	err := h2.Handle(context.Background(), record)
	if err != nil {
		t.Fatalf("Handle() 返回错误: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "weapon.name=rifle") {
		t.Errorf("输出应包含分组前缀, 实际: %q", output)
	}
}

// TestConsoleHandlerWithNestedGroup 测试嵌套分组
func TestConsoleHandlerWithNestedGroup(t *testing.T) {
	var buf bytes.Buffer
	h := &consoleHandler{w: &buf, level: slog.LevelDebug}

	h2 := h.WithGroup("scene").WithGroup("npc")

	record := slog.NewRecord(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), slog.LevelInfo, "test", 0)
	record.AddAttrs(slog.String("prompt", "Talk"))
	err := h2.Handle(context.Background(), record)
	if err != nil {
		t.Fatalf("Handle() 返回错误: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "scene.npc.prompt=Talk") {
		t.Errorf("输出应包含嵌套分组前缀, 实际: %q", output)
	}
}

// TestNewHandlerFormats 测试不同格式的 handler 选择
func TestNewHandlerFormats(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"json", `"msg":"fired"`},
		{"text", "msg=fired"},
		{"console", "DEBUG fired"},
		{"", "DEBUG fired"},
	}

	for _, tt := range tests {
		t.Run("format_"+tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			l := slog.New(newHandler(tt.format, slog.LevelDebug, &buf))
			l.Debug("fired", "ammo", 29)

			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("输出 %q 应包含 %q", buf.String(), tt.want)
			}
			if !strings.Contains(buf.String(), "29") {
				t.Errorf("输出应包含属性, 实际: %q", buf.String())
			}
		})
	}
}

func TestOpenOutputTeesToFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "lowpoly.log")

	w, closer, err := openOutput(Config{Output: &buf, File: path})
	if err != nil {
		t.Fatalf("openOutput() error: %v", err)
	}
	if closer == nil {
		t.Fatal("openOutput() returned no closer for a log file")
	}
	l := slog.New(newHandler("console", slog.LevelInfo, w))
	l.Info("wave started", "wave", 3)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if _, err := w.Write([]byte("late\n")); err == nil {
		t.Fatal("write after Close reached the log file")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "wave started") || !strings.Contains(buf.String(), "wave started") {
		t.Fatalf("record missing: file=%q output=%q", data, buf.String())
	}
}

func TestOpenOutputWithoutFile(t *testing.T) {
	var buf bytes.Buffer
	w, closer, err := openOutput(Config{Output: &buf})
	if err != nil {
		t.Fatalf("openOutput() error: %v", err)
	}
	if w != &buf || closer != nil {
		t.Fatalf("writer = %T closer = %v, want the configured output and no closer", w, closer)
	}
}

func TestCloseWithoutFile(t *testing.T) {
	saved := logFile
	logFile = nil
	defer func() { logFile = saved }()

	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v, want nil without a log file", err)
	}
}

func TestCloseReleasesFile(t *testing.T) {
	saved := logFile
	defer func() { logFile = saved }()

	f, err := os.Create(filepath.Join(t.TempDir(), "lowpoly.log"))
	if err != nil {
		t.Fatalf("create log file: %v", err)
	}
	logFile = f
	if err := Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if logFile != nil {
		t.Fatal("Close() kept the file handle")
	}
	if _, err := f.WriteString("x"); err == nil {
		t.Fatal("file still open after Close")
	}
	if err := Close(); err != nil {
		t.Fatalf("second Close() error = %v, want nil", err)
	}
}

func TestComponentTagsRecords(t *testing.T) {
	var buf bytes.Buffer
	h := &consoleHandler{w: &buf, level: slog.LevelDebug}
	l := slog.New(h).With("component", "weapon")
	l.Info("reload")

	if !strings.Contains(buf.String(), "component=weapon") {
		t.Fatalf("输出应包含组件标签, 实际: %q", buf.String())
	}
	if Component("sim") == nil {
		t.Fatal("Component() returned nil")
	}
}
