package entity

// TaskStatus estado compartido por tareas y tareas de recobro.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskCancelled  TaskStatus = "cancelled"
)

// TaskStatuses orden de las opciones del select.
var TaskStatuses = []TaskStatus{TaskPending, TaskInProgress, TaskCompleted, TaskCancelled}

// TaskTypes tipos de tarea que acepta el backend.
var TaskTypes = []string{"installation", "maintenance", "complaint", "recovery"}

// Priorities prioridades en orden ascendente.
var Priorities = []ComplaintPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

// Label "in_progress" -> "In Progress".
func (s TaskStatus) Label() string { return HumanizeEnum(string(s)) }

// IsOpen la tarea todavía puede completarse.
func (s TaskStatus) IsOpen() bool {
	return s == TaskPending || s == TaskInProgress
}

// Task tarea de campo (instalación, mantenimiento...).
type Task struct {
	ID              string            `json:"id"`
	TaskType        string            `json:"task_type"`
	CustomerID      string            `json:"customer_id,omitempty"`
	CustomerName    string            `json:"customer_name,omitempty"`
	AssignedTo      []string          `json:"assigned_to"`
	AssignedNames   []string          `json:"assigned_to_names,omitempty"`
	Priority        ComplaintPriority `json:"priority"`
	DueDate         string            `json:"due_date"`
	Status          TaskStatus        `json:"status"`
	Notes           string            `json:"notes"`
	CompletionNotes string            `json:"completion_notes,omitempty"`
	CompletionProof string            `json:"completion_proof,omitempty"`
	CreatedAt       string            `json:"created_at,omitempty"`
	IsActive        bool              `json:"is_active"`
}

// RecoveryTask tarea de cobranza sobre una factura impaga.
type RecoveryTask struct {
	ID              string     `json:"id"`
	InvoiceID       string     `json:"invoice_id"`
	InvoiceNumber   string     `json:"invoice_number,omitempty"`
	CustomerName    string     `json:"customer_name,omitempty"`
	AssignedTo      string     `json:"assigned_to"`
	AssignedToName  string     `json:"assigned_to_name,omitempty"`
	Status          TaskStatus `json:"status"`
	Notes           string     `json:"notes"`
	CompletionNotes string     `json:"completion_notes,omitempty"`
	CreatedAt       string     `json:"created_at,omitempty"`
	IsActive        bool       `json:"is_active"`
}
