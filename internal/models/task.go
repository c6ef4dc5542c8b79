package models

// Task is a single entry on the shared board. Tasks carry no owner:
// any logged-in user may edit or delete any task.
type Task struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
