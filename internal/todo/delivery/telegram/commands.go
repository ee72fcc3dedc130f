package telegram

import (
	"context"
	"fmt"
	"strings"

	"voice-todo/internal/model"
	"voice-todo/internal/todo"
	pkgTelegram "voice-todo/pkg/telegram"
)

const shortIDLen = 8

const helpText = "*Voice To-Do*\n\n" +
	"Dictate a task with your keyboard's microphone and send it.\n" +
	"Add a due date and category with `|`:\n" +
	"`buy milk | tomorrow at 9:00 | Shopping`\n\n" +
	"/list [all|pinned|completed|incomplete] [category]\n" +
	"/done <id>  /pin <id>  /delete <id>\n" +
	"/stats"

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}
	chatID := msg.Chat.ID

	if !strings.HasPrefix(text, "/") {
		return h.reply(ctx, chatID, h.add(ctx, text))
	}

	fields := strings.Fields(text)
	// Commands may arrive as /list@bot_name in groups.
	cmd, _, _ := strings.Cut(strings.ToLower(fields[0]), "@")
	args := fields[1:]

	switch cmd {
	case "/start", "/help":
		return h.bot.SendMessageWithMode(ctx, chatID, helpText, "Markdown")
	case "/list":
		return h.reply(ctx, chatID, h.list(ctx, args))
	case "/stats":
		return h.reply(ctx, chatID, h.stats(ctx))
	case "/done":
		return h.reply(ctx, chatID, h.mutate(ctx, args, h.uc.ToggleDone, func(t model.Task) string {
			if t.Done {
				return "Done"
			}
			return "Reopened"
		}))
	case "/pin":
		return h.reply(ctx, chatID, h.mutate(ctx, args, h.uc.TogglePinned, func(t model.Task) string {
			if t.Pinned {
				return "Pinned"
			}
			return "Unpinned"
		}))
	case "/delete":
		return h.reply(ctx, chatID, h.mutate(ctx, args, h.uc.DeleteTask, func(model.Task) string {
			return "Deleted"
		}))
	default:
		return h.reply(ctx, chatID, "Unknown command. Send /help for usage.")
	}
}

func (h *handler) reply(ctx context.Context, chatID int64, text string) error {
	return h.bot.SendMessage(ctx, chatID, text)
}

// add parses "text | due | category" and adds the task.
func (h *handler) add(ctx context.Context, text string) string {
	parts := strings.SplitN(text, "|", 3)
	input := todo.AddTaskInput{Text: parts[0]}
	if len(parts) > 1 {
		due, err := h.dates.ParseDueDate(parts[1], h.now())
		if err != nil {
			return errorMessage(fmt.Errorf("could not read due date %q", strings.TrimSpace(parts[1])))
		}
		input.DueDate = due
	}
	if len(parts) > 2 {
		input.Category = parts[2]
	}

	out, err := h.uc.AddTask(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: uc.AddTask: %v", err)
		return errorMessage(err)
	}
	if !out.Created {
		return "Nothing to add."
	}
	return "✅ Added: " + h.formatTask(out.Task)
}

// list renders the derived view. The first argument is a status filter when
// it names one, otherwise the arguments are the category.
func (h *handler) list(ctx context.Context, args []string) string {
	input := todo.ListInput{Filter: todo.FilterAll}
	if len(args) > 0 {
		if f, err := todo.ParseFilter(args[0]); err == nil {
			input.Filter = f
			args = args[1:]
		}
	}
	input.Category = strings.Join(args, " ")

	out, err := h.uc.List(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: uc.List: %v", err)
		return errorMessage(err)
	}
	if len(out.Tasks) == 0 {
		return "No tasks."
	}

	var b strings.Builder
	for i, t := range out.Tasks {
		fmt.Fprintf(&b, "%d. %s\n", i+1, h.formatTask(t))
	}
	b.WriteString(formatStats(out.Stats))
	return b.String()
}

func (h *handler) stats(ctx context.Context) string {
	s, err := h.uc.Stats(ctx)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: uc.Stats: %v", err)
		return errorMessage(err)
	}
	return formatStats(s)
}

type mutation func(ctx context.Context, id string) (todo.MutateOutput, error)

// mutate resolves an id prefix and applies fn. label names the outcome.
func (h *handler) mutate(ctx context.Context, args []string, fn mutation, label func(model.Task) string) string {
	if len(args) == 0 {
		return "Which task? Send the id shown by /list."
	}

	id, err := h.resolveID(ctx, args[0])
	if err != nil {
		return errorMessage(err)
	}

	out, err := fn(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: mutate %s: %v", id, err)
		return errorMessage(err)
	}
	if !out.Found {
		return errorMessage(errNoMatch)
	}

	return fmt.Sprintf("%s: %s", label(out.Task), out.Task.Text)
}

func (h *handler) resolveID(ctx context.Context, prefix string) (string, error) {
	prefix = strings.ToLower(strings.TrimPrefix(prefix, "#"))
	if prefix == "" {
		return "", errNoMatch
	}
	out, err := h.uc.List(ctx, todo.ListInput{Filter: todo.FilterAll})
	if err != nil {
		return "", err
	}

	var match string
	for _, t := range out.Tasks {
		if !strings.HasPrefix(t.ID, prefix) {
			continue
		}
		if t.ID == prefix {
			return t.ID, nil
		}
		if match != "" {
			return "", errAmbiguous
		}
		match = t.ID
	}
	if match == "" {
		return "", errNoMatch
	}
	return match, nil
}

func (h *handler) formatTask(t model.Task) string {
	var b strings.Builder
	if t.Pinned {
		b.WriteString("📌 ")
	}
	if t.Done {
		b.WriteString("✔️ ")
	}
	b.WriteString(t.Text)
	if t.DueDate != nil {
		fmt.Fprintf(&b, " (due %s)", t.DueDate.In(h.dates.Location()).Format("2006-01-02 15:04"))
	}
	fmt.Fprintf(&b, " [%s] #%s", t.Category, shortID(t.ID))
	return b.String()
}

func formatStats(s todo.Stats) string {
	return fmt.Sprintf("Completed %d/%d (%.0f%%)", s.Done, s.Total, s.Progress)
}

func shortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}
	return id[:shortIDLen]
}
