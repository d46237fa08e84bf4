package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// Ctrl+C и SIGTERM отменяют контекст: сессия завершается между командами
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := NewApplication()
	defer app.Close()

	if err := app.createRootCommand(ctx).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Ошибка: %v\n", err)
		stop()
		app.Close()
		os.Exit(1)
	}
}
