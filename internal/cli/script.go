package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"tasktrack/internal/input"
	"tasktrack/internal/manager"
	"tasktrack/internal/task"
)

// Output formats accepted by the script runner.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArgCount       = errors.New("wrong number of arguments")
	ErrUnknownFormat  = errors.New("unknown output format")
)

type taskRecord struct {
	ID          int    `json:"id" yaml:"id"`
	Description string `json:"description" yaml:"description"`
	Priority    int    `json:"priority" yaml:"priority"`
	Completed   bool   `json:"completed" yaml:"completed"`
}

type result struct {
	Command string       `json:"command" yaml:"command"`
	Task    *taskRecord  `json:"task,omitempty" yaml:"task,omitempty"`
	Tasks   []taskRecord `json:"tasks,omitempty" yaml:"tasks,omitempty"`
	Message string       `json:"message,omitempty" yaml:"message,omitempty"`

	listed []task.Task
}

func toRecord(t task.Task) taskRecord {
	return taskRecord{
		ID:          t.ID(),
		Description: t.Description(),
		Priority:    t.Priority(),
		Completed:   t.Completed(),
	}
}

// ScriptRunner executes line-oriented commands against one manager:
//
//	add <priority> <description...>
//	get <id>
//	done
//	list
//	incomplete
//	last
//
// Blank lines and lines starting with '#' are skipped.
type ScriptRunner struct {
	mgr    *manager.Manager
	out    io.Writer
	format string
	yamlEn *yaml.Encoder
}

func NewScriptRunner(mgr *manager.Manager, out io.Writer, format string) (*ScriptRunner, error) {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return &ScriptRunner{mgr: mgr, out: out, format: format}, nil
}

// Run stops at the first invalid line and reports its number.
func (r *ScriptRunner) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		res, err := r.exec(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err := r.write(res); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	if r.yamlEn != nil {
		return r.yamlEn.Close()
	}
	return nil
}

func (r *ScriptRunner) exec(line string) (result, error) {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]
	res := result{Command: cmd}

	switch cmd {
	case "add":
		if len(args) < 2 {
			return res, fmt.Errorf("%w: add <priority> <description>", ErrArgCount)
		}
		prio, err := input.Priority(args[0])
		if err != nil {
			return res, err
		}
		desc, err := input.Description(strings.Join(args[1:], " "))
		if err != nil {
			return res, err
		}
		rec := toRecord(r.mgr.Create(desc, prio))
		res.Task = &rec
		res.Message = fmt.Sprintf("Added task #%d", rec.ID)
	case "get":
		if len(args) != 1 {
			return res, fmt.Errorf("%w: get <id>", ErrArgCount)
		}
		id, err := input.ID(args[0])
		if err != nil {
			return res, err
		}
		t, ok := r.mgr.FindByID(id)
		if !ok {
			res.Message = "Task with the provided ID not found."
			return res, nil
		}
		rec := toRecord(t)
		res.Task = &rec
		res.Message = fmt.Sprintf("Task: %s, Priority: %d, Completed: %t", t.Description(), t.Priority(), t.Completed())
	case "done":
		t, ok := r.mgr.CompleteHighestPriority()
		if !ok {
			res.Message = "No task to mark as completed."
			return res, nil
		}
		rec := toRecord(t)
		res.Task = &rec
		res.Message = fmt.Sprintf("Task '%s' marked as completed.", t.Description())
	case "list", "incomplete":
		tasks := r.mgr.ListAll()
		if cmd == "incomplete" {
			tasks = r.mgr.ListIncomplete()
		}
		res.listed = tasks
		res.Tasks = make([]taskRecord, 0, len(tasks))
		for _, t := range tasks {
			res.Tasks = append(res.Tasks, toRecord(t))
		}
		if len(tasks) == 0 {
			res.Message = "No tasks."
		}
	case "last":
		t, ok := r.mgr.LastCompleted()
		if !ok {
			res.Message = "No task has been completed yet."
			return res, nil
		}
		rec := toRecord(t)
		res.Task = &rec
		res.Message = fmt.Sprintf("Last completed: %s, Priority: %d", t.Description(), t.Priority())
	default:
		return res, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
	return res, nil
}

func (r *ScriptRunner) write(res result) error {
	switch r.format {
	case FormatJSON:
		return json.NewEncoder(r.out).Encode(res)
	case FormatYAML:
		if r.yamlEn == nil {
			r.yamlEn = yaml.NewEncoder(r.out)
			r.yamlEn.SetIndent(2)
		}
		return r.yamlEn.Encode(res)
	}

	if len(res.listed) > 0 {
		for _, t := range res.listed {
			if _, err := fmt.Fprintln(r.out, t.String()); err != nil {
				return err
			}
		}
		return nil
	}
	_, err := fmt.Fprintln(r.out, res.Message)
	return err
}
