package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/hazadus/go-tagger/internal/config"
	"github.com/hazadus/go-tagger/internal/rename"
	"github.com/hazadus/go-tagger/internal/tagstore"
	"github.com/hazadus/go-tagger/internal/track"
	"github.com/hazadus/go-tagger/internal/view"
)

// Application хранит общее состояние команд
type Application struct {
	Config *config.Config
	Logger *logrus.Logger

	// In и Out по умолчанию os.Stdin и os.Stdout
	In  io.Reader
	Out io.Writer

	// Opener и Mover подменяются в тестах
	Opener tagstore.Opener
	Mover  rename.Mover

	configPath string
	logFile    *os.File
}

// NewApplication создает приложение; конфигурация загружается перед выполнением команды
func NewApplication() *Application {
	return &Application{}
}

// setup загружает конфигурацию и настраивает логгер, если они еще не заданы
func (app *Application) setup() error {
	if app.Config == nil {
		path := app.configPath
		if path == "" {
			path = config.DefaultPath()
		}
		cfg, err := config.LoadConfig(path)
		if err != nil {
			return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
		}
		app.Config = cfg
	}

	if app.Logger == nil {
		logger := logrus.New()
		logger.SetLevel(app.Config.Level())
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		logger.SetOutput(os.Stderr)
		if app.Config.LogFile != "" {
			file, err := os.OpenFile(app.Config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				return fmt.Errorf("ошибка открытия файла журнала: %w", err)
			}
			app.logFile = file
			logger.SetOutput(file)
		}
		app.Logger = logger
	}
	return nil
}

// Close закрывает файл журнала
func (app *Application) Close() {
	if app.logFile != nil {
		app.logFile.Close()
		app.logFile = nil
	}
}

func (app *Application) input() io.Reader {
	if app.In != nil {
		return app.In
	}
	return os.Stdin
}

func (app *Application) output() io.Writer {
	if app.Out != nil {
		return app.Out
	}
	return os.Stdout
}

func (app *Application) newPrinter() *view.Printer {
	return view.NewPrinter(app.output(), app.Config.ColorEnabled())
}

// openCollection загружает и подготавливает коллекцию по пути.
// Если printer не nil, каждая запись тега сообщается оператору.
func (app *Application) openCollection(path string, printer *view.Printer) (*track.Collection, error) {
	opts := track.Options{
		Opener:       app.Opener,
		Extensions:   app.Config.Extensions,
		DefaultValue: app.Config.DefaultValue,
		Logger:       app.Logger,
	}
	if printer != nil {
		opts.OnUpdate = printer.Update
	}

	coll := track.NewCollection(opts)
	if err := coll.Prepare(path); err != nil {
		return nil, err
	}
	return coll, nil
}

// newRenamer создает Renamer; при заданном printer сообщает о каждом переименовании
func (app *Application) newRenamer(printer *view.Printer) *rename.Renamer {
	var onRename func(rename.Result)
	if printer != nil {
		onRename = printer.Rename
	}
	return rename.NewRenamer(app.Mover, app.Logger, onRename)
}

// pathArg возвращает путь из аргументов или текущий каталог
func pathArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
