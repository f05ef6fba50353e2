package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dkoroteev/streethunt/internal/models"
)

// itemByIndex resolves a 1-based list position as printed by `list`.
func (a *App) itemByIndex(arg string) (models.HuntItem, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return models.HuntItem{}, fmt.Errorf("not an item number: %q", arg)
	}
	items := a.svc.Items()
	if n < 1 || n > len(items) {
		return models.HuntItem{}, fmt.Errorf("item number out of range: %d", n)
	}
	return items[n-1], nil
}

func (a *App) list(args []string) {
	query := strings.Join(args, " ")
	matches := a.svc.Filter(query)
	if len(matches) == 0 {
		a.printf("No items match %q\n", query)
		return
	}

	numbers := make(map[string]int, len(a.svc.Items()))
	for i, item := range a.svc.Items() {
		numbers[item.ID] = i + 1
	}

	for _, item := range matches {
		mark := " "
		if a.svc.IsFound(item.ID) {
			mark = "x"
		}
		a.printf("%2d. [%s] %-18s %s\n", numbers[item.ID], mark, item.Name, item.Address)
	}
}

func (a *App) show(args []string) {
	if len(args) != 1 {
		a.printf("Usage: show <n>\n")
		return
	}
	item, err := a.itemByIndex(args[0])
	if err != nil {
		a.printf("%v\n", err)
		return
	}

	a.printf("%s — %s\n", item.Name, item.Address)
	a.printf("  %s\n", item.Description)
	a.printf("  Clue: %s\n", item.Clue)

	rec, _ := a.svc.Record(item.ID)
	if !rec.Found {
		a.printf("  Not found yet.\n")
		return
	}
	a.printf("  Found")
	if rec.FoundAt != nil {
		a.printf(" at %s", rec.FoundAt.Local().Format("Jan 2, 2006 3:04 PM"))
	}
	if rec.FoundAddress != nil {
		a.printf(" near %s", *rec.FoundAddress)
	}
	a.printf(" (photo: %d bytes)\n", len(rec.Photo))
}

func (a *App) find(ctx context.Context, args []string) {
	if len(args) != 2 {
		a.printf("Usage: find <n> <photo-file>\n")
		return
	}
	item, err := a.itemByIndex(args[0])
	if err != nil {
		a.printf("%v\n", err)
		return
	}

	photo, err := os.ReadFile(args[1])
	if err != nil {
		a.printf("Cannot read photo: %v\n", err)
		return
	}

	// location is best-effort and must never block the find
	fix := a.locator.CurrentFix(ctx)

	if err := a.svc.MarkFound(ctx, item.ID, photo, fix); err != nil {
		a.printf("Cannot mark %s found: %v\n", item.Name, err)
		return
	}
	a.printf("Found %s! (%d/%d)\n", item.Name, a.svc.FoundCount(), len(a.svc.Items()))
}

func (a *App) clear(ctx context.Context, args []string) {
	if len(args) != 1 {
		a.printf("Usage: clear <n>\n")
		return
	}
	item, err := a.itemByIndex(args[0])
	if err != nil {
		a.printf("%v\n", err)
		return
	}
	if err := a.svc.ClearFound(ctx, item.ID); err != nil {
		a.printf("Cannot clear %s: %v\n", item.Name, err)
		return
	}
	a.printf("Cleared %s.\n", item.Name)
}

func (a *App) reset(ctx context.Context) {
	a.svc.ResetAll(ctx)
	a.printf("All progress reset.\n")
}

func (a *App) status() {
	s := a.svc.Summary()
	a.printf("%s\n%s\n", s.Title, s.Message)
}

func (a *App) export(ctx context.Context, args []string) {
	switch len(args) {
	case 0:
		records := make(map[string]models.ProgressRecord, len(a.svc.Items()))
		for _, item := range a.svc.Items() {
			if rec, ok := a.svc.Record(item.ID); ok {
				records[item.ID] = rec
			}
		}
		a.printf("Exporting report...\n")
		result := <-a.exporter.Export(ctx, a.svc.Items(), records, "Scavenger Hunt")
		if result.Err != nil {
			a.printf("Export failed: %v\n", result.Err)
			return
		}
		a.printf("Report written to %s\n", result.Location)

	case 1:
		item, err := a.itemByIndex(args[0])
		if err != nil {
			a.printf("%v\n", err)
			return
		}
		rec, _ := a.svc.Record(item.ID)
		a.printf("Exporting %s...\n", item.Name)
		result := <-a.exporter.ExportItem(ctx, item, rec)
		if result.Err != nil {
			a.printf("Export failed: %v\n", result.Err)
			return
		}
		a.printf("Report written to %s\n", result.Location)

	default:
		a.printf("Usage: export [n]\n")
	}
}
