package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPlaceholder = "Write a task..."

func TestTaskList_AddIncrementsTotal(t *testing.T) {
	list := NewTaskList(testPlaceholder)

	task, err := list.Add("  Buy milk  ")
	require.NoError(t, err)

	assert.Equal(t, "Buy milk", task.Text)
	assert.False(t, task.Completed)
	assert.NotEqual(t, uuid.Nil, task.ID)
	assert.Equal(t, Status{Total: 1, Completed: 0}, list.Status())
}

func TestTaskList_AddRejectsEmptyAndPlaceholder(t *testing.T) {
	list := NewTaskList(testPlaceholder)

	for _, text := range []string{"", "   ", "\t\n", testPlaceholder, "  " + testPlaceholder + " "} {
		_, err := list.Add(text)
		assert.ErrorIs(t, err, ErrEmptyTask, "input %q", text)
	}
	assert.Equal(t, Status{}, list.Status())
	assert.Equal(t, 0, list.Len())
}

func TestTaskList_AddAllowsDuplicates(t *testing.T) {
	list := NewTaskList(testPlaceholder)

	first, err := list.Add("Walk dog")
	require.NoError(t, err)
	second, err := list.Add("Walk dog")
	require.NoError(t, err)

	assert.Equal(t, 2, list.Len())
	assert.NotEqual(t, first.ID, second.ID)
}

func TestTaskList_DeleteWithoutSelection(t *testing.T) {
	list := NewTaskList(testPlaceholder)
	_, err := list.Add("A")
	require.NoError(t, err)

	_, err = list.Delete(NoSelection)
	assert.ErrorIs(t, err, ErrNoSelection)
	assert.Equal(t, 1, list.Len())
}

func TestTaskList_DeleteOutOfRange(t *testing.T) {
	list := NewTaskList(testPlaceholder)
	_, err := list.Add("A")
	require.NoError(t, err)

	_, err = list.Delete(3)
	assert.ErrorIs(t, err, ErrTaskNotFound)
	_, err = list.Delete(-2)
	assert.ErrorIs(t, err, ErrTaskNotFound)
	assert.Equal(t, 1, list.Len())
}

func TestTaskList_DeleteOnlyTask(t *testing.T) {
	list := NewTaskList(testPlaceholder)
	_, err := list.Add("A")
	require.NoError(t, err)

	removed, err := list.Delete(0)
	require.NoError(t, err)

	assert.Equal(t, "A", removed.Text)
	assert.Equal(t, Status{Total: 0, Completed: 0}, list.Status())
	assert.Empty(t, list.Tasks())
}

func TestTaskList_DeleteShiftsLaterTasks(t *testing.T) {
	list := NewTaskList(testPlaceholder)
	for _, text := range []string{"A", "B", "C"} {
		_, err := list.Add(text)
		require.NoError(t, err)
	}

	_, err := list.Delete(1)
	require.NoError(t, err)

	tasks := list.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, "A", tasks[0].Text)
	assert.Equal(t, "C", tasks[1].Text)
}

func TestTaskList_CompleteIsIdempotent(t *testing.T) {
	list := NewTaskList(testPlaceholder)
	_, err := list.Add("A")
	require.NoError(t, err)

	changed, err := list.Complete(0)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 1, list.Status().Completed)

	changed, err = list.Complete(0)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 1, list.Status().Completed)
}

func TestTaskList_CompleteWithoutSelection(t *testing.T) {
	list := NewTaskList(testPlaceholder)

	_, err := list.Complete(NoSelection)
	assert.ErrorIs(t, err, ErrNoSelection)
}

func TestTaskList_CompleteOutOfRange(t *testing.T) {
	list := NewTaskList(testPlaceholder)
	_, err := list.Add("Buy milk")
	require.NoError(t, err)
	_, err = list.Add("Walk dog")
	require.NoError(t, err)
	_, err = list.Complete(0)
	require.NoError(t, err)

	for _, index := range []int{list.Len(), 5, -2, -7} {
		changed, err := list.Complete(index)
		assert.ErrorIs(t, err, ErrTaskNotFound, "index %d", index)
		assert.False(t, changed)
	}
	assert.Equal(t, Status{Total: 2, Completed: 1}, list.Status())
}

func TestTaskList_StatusAfterMixedOperations(t *testing.T) {
	list := NewTaskList(testPlaceholder)
	_, err := list.Add("Buy milk")
	require.NoError(t, err)
	_, err = list.Add("Walk dog")
	require.NoError(t, err)

	_, err = list.Complete(0)
	require.NoError(t, err)

	assert.Equal(t, Status{Total: 2, Completed: 1}, list.Status())
	assert.Equal(t, "Tasks: 2 | Completed: 1", list.Status().String())
}

func TestTaskList_IDOperationsSurviveIndexShift(t *testing.T) {
	list := NewTaskList(testPlaceholder)
	_, err := list.Add("A")
	require.NoError(t, err)
	b, err := list.Add("B")
	require.NoError(t, err)

	_, err = list.Delete(0)
	require.NoError(t, err)

	changed, err := list.CompleteByID(b.ID)
	require.NoError(t, err)
	assert.True(t, changed)

	task, err := list.At(0)
	require.NoError(t, err)
	assert.Equal(t, "B", task.Text)
	assert.True(t, task.Completed)

	_, err = list.DeleteByID(b.ID)
	require.NoError(t, err)
	_, err = list.DeleteByID(b.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTask_DisplayText(t *testing.T) {
	task := Task{Text: "Walk dog"}
	assert.Equal(t, "Walk dog", task.DisplayText())

	task.Completed = true
	assert.Equal(t, "✓ Walk dog", task.DisplayText())
}

func TestTaskList_TasksReturnsCopy(t *testing.T) {
	list := NewTaskList(testPlaceholder)
	_, err := list.Add("A")
	require.NoError(t, err)

	tasks := list.Tasks()
	tasks[0].Completed = true

	assert.Equal(t, 0, list.Status().Completed)
}
