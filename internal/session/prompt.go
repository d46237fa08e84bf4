package session

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"

	"github.com/hazadus/go-tagger/internal/view"
)

// prompter читает строки ввода в отдельной горутине,
// чтобы ожидание ввода прерывалось отменой контекста.
// Горутина запускается при первом вопросе и завершается после stop.
type prompter struct {
	in      io.Reader
	printer *view.Printer
	lines   chan string
	done    chan struct{}

	startOnce sync.Once
	stopOnce  sync.Once
}

func newPrompter(in io.Reader, printer *view.Printer) *prompter {
	return &prompter{
		in:      in,
		printer: printer,
		lines:   make(chan string),
		done:    make(chan struct{}),
	}
}

func (p *prompter) start() {
	p.startOnce.Do(func() {
		go p.read()
	})
}

func (p *prompter) read() {
	defer close(p.lines)
	scanner := bufio.NewScanner(p.in)
	for scanner.Scan() {
		select {
		case p.lines <- scanner.Text():
		case <-p.done:
			return
		}
	}
}

// stop освобождает горутину чтения, если она ждет передачи строки
func (p *prompter) stop() {
	p.stopOnce.Do(func() {
		close(p.done)
	})
}

// ask выводит приглашение и ждет строку. Конец ввода возвращает io.EOF.
func (p *prompter) ask(ctx context.Context, text string) (string, error) {
	p.start()
	p.printer.Prompt(text)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		return strings.TrimSpace(line), nil
	}
}

// confirm задает вопрос (y/n) и возвращает true только для ответа "y"
func (p *prompter) confirm(ctx context.Context, question string) (bool, error) {
	ans, err := p.ask(ctx, question+" (y/n): ")
	if err != nil {
		return false, err
	}
	return ans == "y", nil
}
