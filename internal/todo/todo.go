// Package todo declares the to-do records the front-end displays.
package todo

import "time"

// Priority ranks a to-do.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Tag is a colored label attached to to-dos by id.
type Tag struct {
	ID    int
	Name  string
	Color string
}

// Todo is a single to-do item.
type Todo struct {
	ID          int
	Title       string
	Completed   bool
	CreatedAt   time.Time
	CompletedAt *time.Time
	DueDate     *time.Time
	Description string
	Priority    Priority
	Tags        []int
	Category    string
}

// Category groups to-dos in the sidebar.
type Category struct {
	ID   string
	Name string
	Icon string
}

// DefaultCategories are shown before the user creates any.
var DefaultCategories = []Category{
	{ID: "all", Name: "All", Icon: "list"},
	{ID: "work", Name: "Work", Icon: "briefcase"},
	{ID: "personal", Name: "Personal", Icon: "user"},
	{ID: "shopping", Name: "Shopping", Icon: "shopping-bag"},
	{ID: "study", Name: "Study", Icon: "book"},
	{ID: "health", Name: "Health", Icon: "heart"},
}

// TagColors is the palette offered when creating a tag.
var TagColors = []string{
	"#8774e1", // purple
	"#3498db", // blue
	"#2ecc71", // green
	"#e74c3c", // red
	"#f39c12", // orange
	"#9b59b6", // deep purple
	"#1abc9c", // teal
	"#34495e", // slate
	"#e67e22", // carrot
	"#d35400", // pumpkin
	"#27ae60", // deep green
	"#16a085", // sea green
	"#f1c40f", // yellow
}

// Sample returns a small fixed list used to preview themes.
func Sample(now time.Time) ([]Todo, []Tag) {
	tags := []Tag{
		{ID: 1, Name: "urgent", Color: TagColors[3]},
		{ID: 2, Name: "home", Color: TagColors[2]},
		{ID: 3, Name: "reading", Color: TagColors[1]},
	}
	done := now.Add(-2 * time.Hour)
	due := now.Add(24 * time.Hour)
	overdue := now.Add(-24 * time.Hour)
	todos := []Todo{
		{ID: 1, Title: "Ship the quarterly report", CreatedAt: now.Add(-72 * time.Hour), DueDate: &overdue, Priority: PriorityHigh, Tags: []int{1}, Category: "work"},
		{ID: 2, Title: "Water the plants", Completed: true, CreatedAt: now.Add(-5 * time.Hour), CompletedAt: &done, Priority: PriorityLow, Tags: []int{2}, Category: "personal"},
		{ID: 3, Title: "Buy oat milk", CreatedAt: now.Add(-1 * time.Hour), Priority: PriorityMedium, Category: "shopping"},
		{ID: 4, Title: "Finish chapter 7", CreatedAt: now.Add(-30 * time.Hour), DueDate: &due, Priority: PriorityMedium, Tags: []int{3}, Category: "study"},
	}
	return todos, tags
}

// Overdue reports whether t is open and past its due date.
func (t Todo) Overdue(now time.Time) bool {
	return !t.Completed && t.DueDate != nil && t.DueDate.Before(now)
}
