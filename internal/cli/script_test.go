package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"tasktrack/internal/input"
	"tasktrack/internal/manager"
)

const scenario = `# report, bug, meeting
add 3 Write report
add 5 Fix bug
add 3 Plan meeting
list

done
list
last
get 2
get 1
`

func runScript(t *testing.T, format, script string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	r, err := NewScriptRunner(manager.New(), &out, format)
	require.NoError(t, err)
	err = r.Run(strings.NewReader(script))
	return out.String(), err
}

func TestScriptRunner_Text(t *testing.T) {
	got, err := runScript(t, FormatText, scenario)
	require.NoError(t, err)

	want := `Added task #1
Added task #2
Added task #3
ID: 2, Description: Fix bug, Priority: 5, Completed: false
ID: 1, Description: Write report, Priority: 3, Completed: false
ID: 3, Description: Plan meeting, Priority: 3, Completed: false
Task 'Fix bug' marked as completed.
ID: 1, Description: Write report, Priority: 3, Completed: false
ID: 3, Description: Plan meeting, Priority: 3, Completed: false
Last completed: Fix bug, Priority: 5
Task with the provided ID not found.
Task: Write report, Priority: 3, Completed: false
`
	assert.Equal(t, want, got)
}

func TestScriptRunner_EmptyManager(t *testing.T) {
	got, err := runScript(t, FormatText, "done\nlast\nget 1\nlist\nincomplete\n")
	require.NoError(t, err)

	assert.Equal(t, `No task to mark as completed.
No task has been completed yet.
Task with the provided ID not found.
No tasks.
No tasks.
`, got)
}

func TestScriptRunner_JSON(t *testing.T) {
	got, err := runScript(t, FormatJSON, "add 3 Write report\nadd 5 Fix bug\ndone\nincomplete\nlast\n")
	require.NoError(t, err)

	dec := json.NewDecoder(strings.NewReader(got))
	var results []result
	for {
		var res result
		if err := dec.Decode(&res); errors.Is(err, io.EOF) {
			break
		} else {
			require.NoError(t, err)
		}
		results = append(results, res)
	}

	require.Len(t, results, 5)
	assert.Equal(t, "add", results[0].Command)
	assert.Equal(t, &taskRecord{ID: 1, Description: "Write report", Priority: 3}, results[0].Task)
	assert.Equal(t, &taskRecord{ID: 2, Description: "Fix bug", Priority: 5, Completed: true}, results[2].Task)
	assert.Equal(t, []taskRecord{{ID: 1, Description: "Write report", Priority: 3}}, results[3].Tasks)
	assert.Equal(t, 2, results[4].Task.ID)
}

func TestScriptRunner_YAML(t *testing.T) {
	got, err := runScript(t, FormatYAML, "add 5 Fix bug\ndone\n")
	require.NoError(t, err)
	assert.Contains(t, got, "---")

	dec := yaml.NewDecoder(strings.NewReader(got))
	var first, second result
	require.NoError(t, dec.Decode(&first))
	require.NoError(t, dec.Decode(&second))

	assert.Equal(t, "add", first.Command)
	assert.Equal(t, "Fix bug", first.Task.Description)
	assert.Equal(t, "done", second.Command)
	assert.True(t, second.Task.Completed)
}

func TestScriptRunner_Errors(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		wantErr error
		wantMsg string
	}{
		{name: "unknown command", script: "add 1 a\nfrobnicate\n", wantErr: ErrUnknownCommand, wantMsg: "line 2"},
		{name: "bad priority", script: "add high Write report\n", wantErr: input.ErrInvalidPriority, wantMsg: "line 1"},
		{name: "missing description", script: "\n\nadd 3\n", wantErr: ErrArgCount, wantMsg: "line 3"},
		{name: "bad id", script: "get zero\n", wantErr: input.ErrInvalidID, wantMsg: "line 1"},
		{name: "get without id", script: "get\n", wantErr: ErrArgCount, wantMsg: "line 1"},
		{name: "get with extra args", script: "add 1 a\nget 1 2\n", wantErr: ErrArgCount, wantMsg: "line 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runScript(t, FormatText, tt.script)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestScriptRunner_StopsAtFirstError(t *testing.T) {
	got, err := runScript(t, FormatText, "add 1 first\nbogus\nadd 2 second\n")

	require.ErrorIs(t, err, ErrUnknownCommand)
	assert.Equal(t, "Added task #1\n", got)
}

func TestNewScriptRunner_UnknownFormat(t *testing.T) {
	_, err := NewScriptRunner(manager.New(), io.Discard, "xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
