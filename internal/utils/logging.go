package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

const logPrefix = "[turret] "

// SetupLogging направляет стандартный логгер в файл (дописывая) или в stderr,
// если путь пуст. Возвращает функцию закрытия файла.
func SetupLogging(path string) (func() error, error) {
	if path == "" {
		configureLogger(os.Stderr)
		return func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	configureLogger(f)
	return f.Close, nil
}

func configureLogger(w io.Writer) {
	log.SetOutput(w)
	log.SetPrefix(logPrefix)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
