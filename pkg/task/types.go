package task

// Status values the backend uses for todos. Interim milestones and
// project date markers are surfaced with StatusMilestone.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusMilestone  Status = "milestone"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Todo is a backend todo, either personal (owned by a user) or belonging
// to a project. DueDate is the backend's date string; only the first ten
// characters carry the calendar day.
type Todo struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Status      Status   `json:"status"`
	Priority    Priority `json:"priority"`
	DueDate     string   `json:"due_date,omitempty"`
	AssignedTo  int64    `json:"assigned_to,omitempty"`
}

// Project as returned by GET /projects. Todos is filled in by the
// aggregate loader with the session user's assigned project todos; the
// backend does not inline them.
type Project struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Status       string   `json:"status,omitempty"`
	Progress     int      `json:"progress,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	InterimDates []string `json:"interim_dates,omitempty"`

	Todos []Todo `json:"-"`
}

// Change is a partial todo update. Nil fields are left untouched by the
// backend.
type Change struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Status      *Status   `json:"status,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
	DueDate     *string   `json:"due_date,omitempty"`
}

// Empty reports whether the change would be a no-op request.
func (c Change) Empty() bool {
	return c.Title == nil && c.Description == nil && c.Status == nil &&
		c.Priority == nil && c.DueDate == nil
}

// ValidPriority reports whether p is one of the backend's priorities.
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
