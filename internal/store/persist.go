package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/twiced-technology-gmbh/taskwatch/internal/filelock"
	"github.com/twiced-technology-gmbh/taskwatch/internal/task"
)

const fileMode = 0o600

// ReadFile loads the persisted task records from path. A missing file is an
// empty collection, not an error. Record fields are trusted as-is: no schema
// validation is performed, and malformed date or time strings simply produce
// missing reminders or conflicts downstream.
func ReadFile(path string) ([]task.Task, error) {
	data, err := os.ReadFile(path) //nolint:gosec // data path from trusted config
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading task file: %w", err)
	}

	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return tasks, nil
}

// WriteFile persists the task records to path, holding the sibling lock file
// so concurrent CLI invocations do not interleave writes.
func WriteFile(path string, tasks []task.Task) error {
	unlock, err := filelock.Lock(path + ".lock")
	if err != nil {
		return fmt.Errorf("acquiring lock: %w", err)
	}
	defer unlock() //nolint:errcheck // best-effort unlock on exit

	if tasks == nil {
		tasks = []task.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling tasks: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), fileMode)
}
