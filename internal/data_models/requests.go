package data_models

type CreateAccountRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateTaskRequest struct {
	Title     string `json:"title"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Pomodoros int    `json:"pomodoros"`
	UserID    string `json:"userId"`
}

// UpdateTaskRequest carries a partial update. Pointer fields
// distinguish "absent" from a zero value; absent fields keep their
// stored values.
type UpdateTaskRequest struct {
	Title     *string `json:"title"`
	Date      *string `json:"date"`
	Time      *string `json:"time"`
	Pomodoros *int    `json:"pomodoros"`
	Completed *bool   `json:"completed"`
}

// Fields returns the present fields keyed by their stored names.
func (r *UpdateTaskRequest) Fields() map[string]any {
	fields := make(map[string]any)
	if r.Title != nil {
		fields["title"] = *r.Title
	}
	if r.Date != nil {
		fields["date"] = *r.Date
	}
	if r.Time != nil {
		fields["time"] = *r.Time
	}
	if r.Pomodoros != nil {
		fields["pomodoros"] = *r.Pomodoros
	}
	if r.Completed != nil {
		fields["completed"] = *r.Completed
	}
	return fields
}

type ChatRequest struct {
	UserID  string `json:"userId"`
	Message string `json:"message"`
}
