package logging

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// levelOverride - уровни, заданные компоненту поверх общих Options
type levelOverride struct {
	console LogLevel
	file    LogLevel
}

// LoggerManager хранит логгеры компонентов ("world", "game", "eventbus", ...)
// и переопределения их уровней. Переопределение действует и на уже созданные,
// и на будущие логгеры компонента.
type LoggerManager struct {
	mu        sync.RWMutex
	loggers   map[string]*Logger
	overrides map[string]levelOverride
}

var (
	globalManager *LoggerManager
	managerOnce   sync.Once
)

// NewLoggerManager создаёт пустой менеджер
func NewLoggerManager() *LoggerManager {
	return &LoggerManager{
		loggers:   make(map[string]*Logger),
		overrides: make(map[string]levelOverride),
	}
}

// GetLoggerManager возвращает глобальный менеджер логгеров
func GetLoggerManager() *LoggerManager {
	managerOnce.Do(func() {
		globalManager = NewLoggerManager()
	})
	return globalManager
}

// GetLogger возвращает логгер компонента, создавая его при необходимости
func (lm *LoggerManager) GetLogger(component string) (*Logger, error) {
	lm.mu.RLock()
	logger, ok := lm.loggers[component]
	lm.mu.RUnlock()
	if ok {
		return logger, nil
	}

	lm.mu.Lock()
	defer lm.mu.Unlock()
	if logger, ok := lm.loggers[component]; ok {
		return logger, nil
	}

	logger, err := NewLogger(component)
	if err != nil {
		return nil, fmt.Errorf("logger %s: %w", component, err)
	}
	if o, ok := lm.overrides[component]; ok {
		logger.setLevels(o.console, o.file)
	}
	lm.loggers[component] = logger
	return logger, nil
}

// MustGetLogger возвращает логгер компонента; если файл логов открыть
// не удалось, возвращает логгер только с консольным выводом
func (lm *LoggerManager) MustGetLogger(component string) *Logger {
	logger, err := lm.GetLogger(component)
	if err == nil {
		return logger
	}

	fallback := newConsoleLogger(component, currentOptions())
	fallback.Warn("Файл логов недоступен: %v", err)
	return fallback
}

// Override задаёт уровни компонента
func (lm *LoggerManager) Override(component string, console, file LogLevel) {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	lm.overrides[component] = levelOverride{console: console, file: file}
	if logger, ok := lm.loggers[component]; ok {
		logger.setLevels(console, file)
	}
}

// SetLogLevel меняет уровни уже созданного логгера компонента
func (lm *LoggerManager) SetLogLevel(component string, console, file LogLevel) error {
	lm.mu.RLock()
	_, ok := lm.loggers[component]
	lm.mu.RUnlock()
	if !ok {
		return fmt.Errorf("logger for component %s not found", component)
	}

	lm.Override(component, console, file)
	return nil
}

// ListComponents возвращает отсортированный список компонентов с логгерами
func (lm *LoggerManager) ListComponents() []string {
	lm.mu.RLock()
	defer lm.mu.RUnlock()

	components := make([]string, 0, len(lm.loggers))
	for component := range lm.loggers {
		components = append(components, component)
	}
	sort.Strings(components)
	return components
}

// CloseAll закрывает файлы всех логгеров и забывает их; переопределения остаются
func (lm *LoggerManager) CloseAll() error {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	var errs []error
	for component, logger := range lm.loggers {
		if err := logger.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close logger %s: %w", component, err))
		}
	}
	lm.loggers = make(map[string]*Logger)
	return errors.Join(errs...)
}

// GetComponentLogger возвращает логгер компонента из глобального менеджера
func GetComponentLogger(component string) *Logger {
	return GetLoggerManager().MustGetLogger(component)
}
