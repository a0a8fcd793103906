package taskstore

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/boolean-maybe/todos/config"
	"github.com/boolean-maybe/todos/store"
	"github.com/boolean-maybe/todos/store/kv"
	taskpkg "github.com/boolean-maybe/todos/task"
)

const testKey = "todos"

// newTestStore returns a store over memory storage seeded with value (if non-empty)
func newTestStore(t *testing.T, value string, opts ...Option) (*TaskStore, *kv.MemoryStorage) {
	t.Helper()
	storage := kv.NewMemoryStorage()
	if value != "" {
		if err := storage.SetItem(testKey, value); err != nil {
			t.Fatalf("seed storage: %v", err)
		}
	}
	s, err := NewTaskStore(storage, testKey, opts...)
	if err != nil {
		t.Fatalf("NewTaskStore() error = %v", err)
	}
	return s, storage
}

// sequentialIDs returns a generator producing id-1, id-2, ...
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func storedTasks(t *testing.T, storage kv.Storage) []*taskpkg.Task {
	t.Helper()
	value, ok, err := storage.GetItem(testKey)
	if err != nil || !ok {
		t.Fatalf("stored value missing: ok=%v err=%v", ok, err)
	}
	tasks, err := DecodeTasks(value)
	if err != nil {
		t.Fatalf("DecodeTasks() error = %v", err)
	}
	return tasks
}

func TestAdd_ScenarioA(t *testing.T) {
	s, storage := newTestStore(t, "")

	created, err := s.Add("Buy milk")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if created.Text != "Buy milk" || created.Completed || created.ID == "" {
		t.Errorf("Add() = %+v, want incomplete task with text and ID", created)
	}

	_, err = s.Add("hi")
	if !errors.Is(err, store.ErrTextTooShort) {
		t.Errorf("Add(short) error = %v, want ErrTextTooShort", err)
	}

	all := s.GetAllTasks()
	if len(all) != 1 || all[0].Text != "Buy milk" {
		t.Fatalf("tasks = %+v, want only Buy milk", all)
	}
	if got := storedTasks(t, storage); !reflect.DeepEqual(got, all) {
		t.Errorf("stored = %+v, want %+v", got, all)
	}
}

func TestAdd_LengthGuard(t *testing.T) {
	tests := []struct {
		name string
		text string
		ok   bool
	}{
		{"empty", "", false},
		{"three chars", "abc", false},
		{"padded three chars", "   abc   ", false},
		{"whitespace", "        ", false},
		{"four chars", "abcd", true},
		{"padded four chars", "  abcd ", true},
		{"one emoji", " 😀 ", false},
		{"two emoji", "😀😀", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, storage := newTestStore(t, "")

			_, err := s.Add(tt.text)
			if tt.ok != (err == nil) {
				t.Fatalf("Add(%q) error = %v, want ok=%v", tt.text, err, tt.ok)
			}

			wantLen, wantWrites := 0, 0
			if tt.ok {
				wantLen, wantWrites = 1, 1
			}
			if got := len(s.GetAllTasks()); got != wantLen {
				t.Errorf("len = %d, want %d", got, wantLen)
			}
			if storage.Writes() != wantWrites {
				t.Errorf("writes = %d, want %d", storage.Writes(), wantWrites)
			}
		})
	}
}

func TestAdd_KeepsUntrimmedText(t *testing.T) {
	s, _ := newTestStore(t, "")
	created, err := s.Add("  Buy milk  ")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if created.Text != "  Buy milk  " {
		t.Errorf("Text = %q, want untrimmed input", created.Text)
	}
}

func TestAdd_UniqueIDs(t *testing.T) {
	for _, style := range []string{config.IDStyleUUID, config.IDStyleNanoID} {
		t.Run(style, func(t *testing.T) {
			s, _ := newTestStore(t, "", WithIDStyle(style))

			seen := make(map[string]bool)
			for i := 0; i < 200; i++ {
				created, err := s.Add(fmt.Sprintf("task number %d", i))
				if err != nil {
					t.Fatalf("Add() error = %v", err)
				}
				if seen[created.ID] {
					t.Fatalf("duplicate ID %q", created.ID)
				}
				seen[created.ID] = true
			}
		})
	}
}

func TestAdd_RegeneratesOnCollision(t *testing.T) {
	ids := []string{"same", "same", "", "other"}
	gen := func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}
	s, _ := newTestStore(t, "", WithIDGenerator(gen))

	first, _ := s.Add("first task")
	second, _ := s.Add("second task")

	if first.ID != "same" || second.ID != "other" {
		t.Errorf("IDs = %q, %q; want same, other", first.ID, second.ID)
	}
}

func TestAdd_StorageFailureKeepsTask(t *testing.T) {
	s, storage := newTestStore(t, "")
	boom := errors.New("quota exceeded")
	storage.SetWriteError(boom)

	created, err := s.Add("Buy milk")
	if !errors.Is(err, boom) {
		t.Fatalf("Add() error = %v, want %v", err, boom)
	}
	if created == nil {
		t.Fatal("Add() should return the appended task on storage failure")
	}
	if len(s.GetAllTasks()) != 1 {
		t.Error("in-memory task should be kept after a failed write")
	}
}

func TestDelete_ScenarioD(t *testing.T) {
	s, storage := newTestStore(t, `[{"id":"a","todo":"Write report","isCompleted":false}]`)

	if err := s.Delete("a"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(s.GetAllTasks()) != 0 {
		t.Error("task not removed")
	}
	value, _, _ := storage.GetItem(testKey)
	if value != "[]" {
		t.Errorf("stored value = %q, want []", value)
	}
}

func TestDelete_RemovesOnlyMatch(t *testing.T) {
	s, _ := newTestStore(t, "", WithIDGenerator(sequentialIDs()))
	for _, text := range []string{"first task", "second task", "third task"} {
		if _, err := s.Add(text); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	if err := s.Delete("id-2"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	var ids []string
	for _, tk := range s.GetAllTasks() {
		ids = append(ids, tk.ID)
	}
	if want := []string{"id-1", "id-3"}; !reflect.DeepEqual(ids, want) {
		t.Errorf("ids = %v, want %v", ids, want)
	}
}

func TestDelete_UnknownIDStillPersists(t *testing.T) {
	s, storage := newTestStore(t, `[{"id":"a","todo":"Write report","isCompleted":false}]`)
	before := storage.Writes()

	if err := s.Delete("missing"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if storage.Writes() != before+1 {
		t.Errorf("writes = %d, want %d", storage.Writes(), before+1)
	}
	if len(s.GetAllTasks()) != 1 {
		t.Error("unknown delete changed the list")
	}
}

func TestToggleCompleted_ScenarioB(t *testing.T) {
	s, storage := newTestStore(t, `[{"id":"A","todo":"Write report","isCompleted":false},{"id":"B","todo":"Clean desk","isCompleted":false}]`)

	if err := s.ToggleCompleted("A"); err != nil {
		t.Fatalf("ToggleCompleted() error = %v", err)
	}

	want := []*taskpkg.Task{
		{ID: "A", Text: "Write report", Completed: true},
		{ID: "B", Text: "Clean desk", Completed: false},
	}
	if got := s.GetAllTasks(); !reflect.DeepEqual(got, want) {
		t.Errorf("tasks = %+v, want %+v", got, want)
	}
	if got := storedTasks(t, storage); !reflect.DeepEqual(got, want) {
		t.Errorf("stored = %+v, want %+v", got, want)
	}

	// toggling again restores
	_ = s.ToggleCompleted("A")
	if s.GetTask("A").Completed {
		t.Error("second toggle should clear completed")
	}
}

func TestToggleCompleted_UnknownIDStillPersists(t *testing.T) {
	s, storage := newTestStore(t, `[{"id":"A","todo":"Write report","isCompleted":false}]`)
	before := storage.Writes()

	if err := s.ToggleCompleted("missing"); err != nil {
		t.Fatalf("ToggleCompleted() error = %v", err)
	}
	if storage.Writes() != before+1 {
		t.Errorf("writes = %d, want %d", storage.Writes(), before+1)
	}
	if s.GetTask("A").Completed {
		t.Error("unknown toggle changed another task")
	}
}

func TestFilter(t *testing.T) {
	s, storage := newTestStore(t, `[{"id":"A","todo":"Write report","isCompleted":false},{"id":"B","todo":"Clean desk","isCompleted":true},{"id":"C","todo":"Clean CAR","isCompleted":false}]`)
	before := storage.Writes()

	tests := []struct {
		name string
		term string
		want []string
	}{
		{"scenario C", "clean", []string{"B", "C"}},
		{"upper case term", "DESK", []string{"B"}},
		{"empty term", "", []string{"A", "B", "C"}},
		{"no match", "groceries", []string{}},
		{"inner space", "n c", []string{"C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids := []string{}
			for _, tk := range s.Filter(tt.term) {
				ids = append(ids, tk.ID)
			}
			if !reflect.DeepEqual(ids, tt.want) {
				t.Errorf("Filter(%q) = %v, want %v", tt.term, ids, tt.want)
			}
		})
	}

	if storage.Writes() != before {
		t.Error("Filter must not persist")
	}
}

func TestReturnedTasksAreCopies(t *testing.T) {
	s, _ := newTestStore(t, `[{"id":"A","todo":"Write report","isCompleted":false}]`)

	s.GetAllTasks()[0].Completed = true
	s.Filter("")[0].Text = "changed"

	if got := s.GetTask("A"); got.Completed || got.Text != "Write report" {
		t.Errorf("store state mutated through returned task: %+v", got)
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		tasks []*taskpkg.Task
	}{
		{"empty", []*taskpkg.Task{}},
		{"single", []*taskpkg.Task{{ID: "a", Text: "Buy milk"}}},
		{"mixed", []*taskpkg.Task{
			{ID: "b", Text: "Zebra first", Completed: true},
			{ID: "a", Text: "quotes \" and unicode ✓"},
			{ID: "c", Text: "  spaced  "},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := EncodeTasks(tt.tasks)
			if err != nil {
				t.Fatalf("EncodeTasks() error = %v", err)
			}
			s, _ := newTestStore(t, value)
			if got := s.GetAllTasks(); !reflect.DeepEqual(got, tt.tasks) {
				t.Errorf("loaded = %+v, want %+v", got, tt.tasks)
			}
		})
	}
}

func TestEncodeTasks_WireFormat(t *testing.T) {
	value, err := EncodeTasks([]*taskpkg.Task{{ID: "x1", Text: "Buy milk", Completed: true}})
	if err != nil {
		t.Fatalf("EncodeTasks() error = %v", err)
	}
	want := `[{"id":"x1","todo":"Buy milk","isCompleted":true}]`
	if value != want {
		t.Errorf("EncodeTasks() = %s, want %s", value, want)
	}

	empty, _ := EncodeTasks(nil)
	if empty != "[]" {
		t.Errorf("EncodeTasks(nil) = %s, want []", empty)
	}
}

func TestLoad_AbsentAndNull(t *testing.T) {
	s, storage := newTestStore(t, "")
	if len(s.GetAllTasks()) != 0 {
		t.Error("absent value should load as empty list")
	}
	if storage.Writes() != 0 {
		t.Error("loading must not write")
	}

	s, _ = newTestStore(t, "null")
	if len(s.GetAllTasks()) != 0 {
		t.Error("null should load as empty list")
	}
}

func TestLoad_Corrupt(t *testing.T) {
	for _, value := range []string{"{not json", `{"id":"a"}`, `[null]`, `[{"id":1}]`} {
		t.Run(value, func(t *testing.T) {
			storage := kv.NewMemoryStorage()
			_ = storage.SetItem(testKey, value)

			_, err := NewTaskStore(storage, testKey)
			if !errors.Is(err, ErrCorruptSnapshot) {
				t.Fatalf("NewTaskStore() error = %v, want ErrCorruptSnapshot", err)
			}
			if !strings.Contains(err.Error(), testKey) {
				t.Errorf("error %q should name the key", err)
			}
		})
	}
}

func TestRecoverCorrupt(t *testing.T) {
	storage := kv.NewMemoryStorage()
	_ = storage.SetItem(testKey, "{broken")
	now := time.Unix(1700000000, 0)

	backup, err := RecoverCorrupt(storage, testKey, now)
	if err != nil {
		t.Fatalf("RecoverCorrupt() error = %v", err)
	}
	if backup != "todos.corrupt-1700000000" {
		t.Errorf("backup key = %q", backup)
	}
	if v, ok, _ := storage.GetItem(backup); !ok || v != "{broken" {
		t.Errorf("backup value = %q, %v", v, ok)
	}
	if _, ok, _ := storage.GetItem(testKey); ok {
		t.Error("original key should be removed")
	}

	s, err := NewTaskStore(storage, testKey)
	if err != nil {
		t.Fatalf("NewTaskStore() after recovery error = %v", err)
	}
	if len(s.GetAllTasks()) != 0 {
		t.Error("store after recovery should be empty")
	}
}

func TestRecoverCorrupt_Absent(t *testing.T) {
	backup, err := RecoverCorrupt(kv.NewMemoryStorage(), testKey, time.Now())
	if err != nil || backup != "" {
		t.Errorf("RecoverCorrupt() on absent key = %q, %v", backup, err)
	}
}

func TestListeners(t *testing.T) {
	s, _ := newTestStore(t, "", WithIDGenerator(sequentialIDs()))

	calls := 0
	id := s.AddListener(func() {
		calls++
		// listeners may read back into the store
		_ = s.GetAllTasks()
	})

	_, _ = s.Add("Buy milk")
	_, _ = s.Add("no") // rejected, no notification
	_ = s.ToggleCompleted("id-1")
	_ = s.Delete("id-1")
	_ = s.Filter("milk")

	if calls != 3 {
		t.Errorf("listener calls = %d, want 3", calls)
	}

	s.RemoveListener(id)
	_, _ = s.Add("Another task")
	if calls != 3 {
		t.Errorf("listener called after removal")
	}
}

func TestGetStats(t *testing.T) {
	s, _ := newTestStore(t, `[{"id":"A","todo":"Write report","isCompleted":true},{"id":"B","todo":"Clean desk","isCompleted":false}]`)

	want := []store.Stat{
		{Name: "Total", Value: "2", Order: 1},
		{Name: "Done", Value: "1", Order: 2},
	}
	if got := s.GetStats(); !reflect.DeepEqual(got, want) {
		t.Errorf("GetStats() = %+v, want %+v", got, want)
	}
}
