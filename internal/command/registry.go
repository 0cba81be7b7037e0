package command

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"sync"
)

// Ошибки регистрации.
var (
	ErrNilHandler       = errors.New("command: nil handler")
	ErrInvalidName      = errors.New("command: invalid handler name format (must be kebab-case)")
	ErrDuplicateHandler = errors.New("command: duplicate handler registration")
)

var (
	// registry хранит зарегистрированные обработчики по имени команды.
	registry = make(map[string]Handler)
	mu       sync.RWMutex
	// commandNamePattern: a-z, 0-9 и одиночные дефисы, начинается с буквы.
	commandNamePattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)
)

// Register регистрирует обработчик команды в глобальном реестре.
//
// Пример использования:
//
//	func RegisterCmd(rt *shared.Runtime) error {
//	    return command.Register(&Handler{rt: rt})
//	}
func Register(h Handler) error {
	if h == nil {
		return ErrNilHandler
	}
	name := h.Name()
	if !commandNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := registry[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateHandler, name)
	}
	registry[name] = h
	return nil
}

// Get возвращает обработчик команды по имени.
// Возвращает (nil, false) если команда не зарегистрирована.
func Get(name string) (Handler, bool) {
	mu.RLock()
	defer mu.RUnlock()
	h, ok := registry[name]
	return h, ok
}

// All возвращает копию всех зарегистрированных обработчиков.
func All() map[string]Handler {
	mu.RLock()
	defer mu.RUnlock()
	result := make(map[string]Handler, len(registry))
	for k, v := range registry {
		result[k] = v
	}
	return result
}

// Names возвращает отсортированный список имён всех зарегистрированных команд.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reset очищает реестр. Используется в тестах пакетов-обработчиков
// и перед повторной регистрацией.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Handler)
}
