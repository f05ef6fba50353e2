package cli

import (
	"bufio"
	"context"
	"os"
	"strings"
)

func (a *App) Root(ctx context.Context) {
	a.printf("Welcome to StreetHunt (type 'help' for commands)\n")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		a.printf("hunt [%d/%d]> ", a.svc.FoundCount(), len(a.svc.Items()))
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.printf("Available commands: (l)ist [query], show <n>, find <n> <photo>, clear <n>, reset, status, export [n], exit\n")
		case "list", "l":
			a.list(args)
		case "show":
			a.show(args)
		case "find":
			a.find(ctx, args)
		case "clear":
			a.clear(ctx, args)
		case "reset":
			a.reset(ctx)
		case "status":
			a.status()
		case "export":
			a.export(ctx, args)
		case "exit", "quit":
			a.printf("Bye!\n")
			return
		default:
			a.printf("Unknown command %q, try 'help'\n", cmd)
		}

		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}
