// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/hazadus/go-tagger/internal/tagstore"
	"github.com/hazadus/go-tagger/internal/track"
)

// AppName используется для каталога конфигурации
const AppName = "tagger"

// Config структура для хранения конфигурации приложения
type Config struct {
	// Extensions задает поддерживаемые расширения и порядок их групп при сканировании
	Extensions   []string `yaml:"extensions"`
	DefaultValue string   `yaml:"default_value"`
	// Confirm включает вопросы (y/n) перед rename, clean и reload
	Confirm  *bool  `yaml:"confirm"`
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
	Color    *bool  `yaml:"color"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	yes := true
	return &Config{
		Extensions:   tagstore.DefaultExtensions(),
		DefaultValue: track.DefaultValue,
		Confirm:      &yes,
		LogLevel:     logrus.WarnLevel.String(),
		Color:        &yes,
	}
}

// DefaultPath возвращает путь к файлу конфигурации в каталоге XDG
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}

// LoadConfig загружает конфигурацию приложения из указанного файла.
// Отсутствующий файл не является ошибкой: используются значения по умолчанию.
func LoadConfig(filePath string) (*Config, error) {
	path, err := expandHome(filePath)
	if err != nil {
		return nil, err
	}

	config := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения конфигурации: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("ошибка разбора конфигурации: %w", err)
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}
	return config, nil
}

// normalize заполняет пропущенные значения и проверяет заданные
func (c *Config) normalize() error {
	defaults := Default()

	if len(c.Extensions) == 0 {
		c.Extensions = defaults.Extensions
	}
	for i, ext := range c.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if !tagstore.IsSupported(ext) {
			return fmt.Errorf("неподдерживаемое расширение в конфигурации: %s", c.Extensions[i])
		}
		if slices.Contains(c.Extensions[:i], ext) {
			return fmt.Errorf("расширение указано в конфигурации повторно: %s", c.Extensions[i])
		}
		c.Extensions[i] = ext
	}

	if strings.TrimSpace(c.DefaultValue) == "" {
		c.DefaultValue = defaults.DefaultValue
	}
	if c.Confirm == nil {
		c.Confirm = defaults.Confirm
	}
	if c.Color == nil {
		c.Color = defaults.Color
	}

	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("некорректный уровень логирования: %w", err)
	}

	if c.LogFile != "" {
		path, err := expandHome(c.LogFile)
		if err != nil {
			return err
		}
		c.LogFile = path
	}
	return nil
}

// ConfirmEnabled сообщает, нужно ли спрашивать подтверждение
func (c *Config) ConfirmEnabled() bool {
	return c.Confirm == nil || *c.Confirm
}

// ColorEnabled сообщает, нужно ли раскрашивать вывод
func (c *Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}

// Level возвращает уровень логирования
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}

// expandHome раскрывает тильду в начале пути
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return strings.Replace(path, "~", home, 1), nil
}
