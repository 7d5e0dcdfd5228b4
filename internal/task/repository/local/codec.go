package local

import (
	"encoding/json"

	"task-master/internal/model"
)

// encode serializes the collection. A nil slice is stored as [].
func encode(tasks []model.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []model.Task{}
	}
	return json.Marshal(tasks)
}

// decode parses a stored collection. Records missing newer fields are
// defaulted by model.Task's decoder.
func decode(data []byte) ([]model.Task, error) {
	var tasks []model.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}
