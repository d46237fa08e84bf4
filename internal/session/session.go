package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/hazadus/go-tagger/internal/metadata"
	"github.com/hazadus/go-tagger/internal/rename"
	"github.com/hazadus/go-tagger/internal/selector"
	"github.com/hazadus/go-tagger/internal/track"
	"github.com/hazadus/go-tagger/internal/view"
)

// Options задает зависимости сессии
type Options struct {
	Collection *track.Collection
	Renamer    *rename.Renamer
	Printer    *view.Printer
	Input      io.Reader
	// Confirm включает вопросы (y/n) перед rename, clean и reload
	Confirm bool
	Logger  logrus.FieldLogger
}

// Session обрабатывает команды оператора над одной коллекцией.
// Каждая команда выполняется полностью до чтения следующей строки.
type Session struct {
	coll      *track.Collection
	renamer   *rename.Renamer
	extractor *metadata.Extractor
	printer   *view.Printer
	prompt    *prompter
	confirm   bool
	logger    logrus.FieldLogger
}

// New создает сессию
func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	renamer := opts.Renamer
	if renamer == nil {
		renamer = rename.NewRenamer(nil, logger, opts.Printer.Rename)
	}
	return &Session{
		coll:      opts.Collection,
		renamer:   renamer,
		extractor: metadata.NewExtractor(),
		printer:   opts.Printer,
		prompt:    newPrompter(opts.Input, opts.Printer),
		confirm:   opts.Confirm,
		logger:    logger,
	}
}

// Run выполняет цикл команд до exit, конца ввода или отмены контекста.
// Записанные до отмены изменения остаются на диске.
func (s *Session) Run(ctx context.Context) error {
	defer s.Close()

	for {
		s.printer.Tracks(s.coll.Tracks())
		s.printer.Menu(Menu, false)
		s.printer.Space()

		line, err := s.prompt.ask(ctx, "> ")
		if err != nil {
			return s.finish(err)
		}
		cmd, ok := ParseCommand(line)
		if !ok {
			continue
		}
		s.printer.Space()

		if _, exit := cmd.(ExitCommand); exit {
			return nil
		}
		if err := s.Execute(ctx, cmd); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				return s.finish(err)
			}
			s.printer.Error(err)
		}
	}
}

// Close останавливает чтение ввода. После Close сессия не задает вопросов.
func (s *Session) Close() {
	s.prompt.stop()
}

// finish превращает штатное завершение ввода в nil
func (s *Session) finish(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		s.logger.WithError(err).Debug("сессия завершена")
		return nil
	}
	return err
}

// Execute выполняет одну команду
func (s *Session) Execute(ctx context.Context, cmd Command) error {
	switch c := cmd.(type) {
	case EditCommand:
		return s.edit(ctx, c)
	case MoveCommand:
		return s.move(ctx, c)
	case InfoCommand:
		return s.info(ctx, c)
	case RenameCommand:
		return s.rename(ctx)
	case CleanCommand:
		return s.clean(ctx)
	case ReloadCommand:
		return s.reload(ctx)
	case HelpCommand:
		s.printer.Menu(Menu, true)
		return nil
	case ExitCommand:
		return nil
	case UnknownCommand:
		return fmt.Errorf("неизвестная команда: %s", c.Name)
	}
	return nil
}

// targets возвращает позиции для выражения выбора, запрашивая его при пустом аргументе
func (s *Session) targets(ctx context.Context, expr string) ([]int, error) {
	if s.coll.Len() == 1 {
		return selector.Parse(expr, 1), nil
	}
	if expr == "" {
		var err error
		if expr, err = s.prompt.ask(ctx, "Target (#, all): "); err != nil {
			return nil, err
		}
	}
	return selector.Parse(expr, s.coll.Len()), nil
}

func (s *Session) edit(ctx context.Context, c EditCommand) error {
	positions, err := s.targets(ctx, c.Target)
	if err != nil || len(positions) == 0 {
		return err
	}

	value, err := s.prompt.ask(ctx, fmt.Sprintf("New %s: ", view.FieldLabel(c.Field)))
	if err != nil {
		return err
	}

	if c.Target == selector.All && s.coll.Len() > 1 {
		return s.coll.SetFieldForAll(c.Field, value)
	}
	var errs []error
	for _, pos := range positions {
		if err := s.coll.SetField(pos, c.Field, value); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Session) move(ctx context.Context, c MoveCommand) error {
	if s.coll.Len() == 1 {
		value, err := s.prompt.ask(ctx, "New Track Number: ")
		if err != nil {
			return err
		}
		return s.coll.SetTrackNumber(value)
	}

	from := c.From
	if from == "" {
		var err error
		if from, err = s.prompt.ask(ctx, "Track Number: "); err != nil {
			return err
		}
	}
	to, err := s.prompt.ask(ctx, "New Track Number: ")
	if err != nil {
		return err
	}

	oldPos, err := strconv.Atoi(from)
	if err != nil {
		return nil
	}
	newPos, err := strconv.Atoi(to)
	if err != nil {
		return nil
	}
	if !s.coll.Move(oldPos, newPos) {
		return nil
	}
	return s.coll.Renumber()
}

func (s *Session) info(ctx context.Context, c InfoCommand) error {
	positions, err := s.targets(ctx, c.Target)
	if err != nil || len(positions) == 0 {
		return err
	}

	probes := make([]metadata.TrackMetadata, 0, len(positions))
	for _, pos := range positions {
		t, _ := s.coll.At(pos)
		probe, err := s.extractor.ExtractFromFile(t.Path())
		if err != nil {
			return err
		}
		probes = append(probes, probe)
	}
	s.printer.Probes(probes)
	return nil
}

func (s *Session) ask(ctx context.Context, question string) (bool, error) {
	if !s.confirm {
		return true, nil
	}
	return s.prompt.confirm(ctx, question)
}

func (s *Session) rename(ctx context.Context) error {
	ok, err := s.ask(ctx, "Rename files?")
	if err != nil || !ok {
		return err
	}

	results, err := s.renamer.RenameAll(ctx, s.coll)
	if err != nil && len(results) > 0 {
		s.printer.Action(fmt.Sprintf("Renamed %d file(s) before the error.", len(results)))
	}
	return err
}

func (s *Session) clean(ctx context.Context) error {
	ok, err := s.ask(ctx, "Clean titles?")
	if err != nil || !ok {
		return err
	}
	return rename.CleanTitles(s.coll)
}

func (s *Session) reload(ctx context.Context) error {
	ok, err := s.ask(ctx, "Reload files?")
	if err != nil || !ok {
		return err
	}
	if err := s.coll.Reload(); err != nil {
		return err
	}
	s.printer.Action("Files were reloaded.")
	return nil
}
