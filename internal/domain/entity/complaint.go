package entity

// ComplaintStatus estado del ticket de queja.
type ComplaintStatus string

const (
	ComplaintOpen       ComplaintStatus = "open"
	ComplaintInProgress ComplaintStatus = "in_progress"
	ComplaintResolved   ComplaintStatus = "resolved"
	ComplaintClosed     ComplaintStatus = "closed"
)

// ComplaintPriority prioridad del ticket.
type ComplaintPriority string

const (
	PriorityLow      ComplaintPriority = "low"
	PriorityMedium   ComplaintPriority = "medium"
	PriorityHigh     ComplaintPriority = "high"
	PriorityCritical ComplaintPriority = "critical"
)

// ComplaintAction siguiente transición que ofrece el botón de estado.
type ComplaintAction string

const (
	ComplaintActionNone    ComplaintAction = ""
	ComplaintActionProcess ComplaintAction = "process" // open -> in_progress
	ComplaintActionResolve ComplaintAction = "resolve" // in_progress -> resolved
)

// Complaint ticket de soporte.
type Complaint struct {
	ID                 string            `json:"id"`
	TicketNumber       string            `json:"ticket_number"`
	CustomerID         string            `json:"customer_id"`
	CustomerName       string            `json:"customer_name"`
	Title              string            `json:"title"`
	Description        string            `json:"description"`
	Category           string            `json:"category"`
	Status             ComplaintStatus   `json:"status"`
	Priority           ComplaintPriority `json:"priority"`
	AssignedTo         string            `json:"assigned_to"`
	AssignedToName     string            `json:"assigned_to_name"`
	CreatedAt          string            `json:"created_at"`
	UpdatedAt          string            `json:"updated_at"`
	ResolvedAt         *string           `json:"resolved_at"`
	ResponseDueDate    *string           `json:"response_due_date"`
	SatisfactionRating *int              `json:"satisfaction_rating"`
	ResolutionAttempts int               `json:"resolution_attempts"`
	AttachmentPath     *string           `json:"attachment_path"`
	ResolutionProof    *string           `json:"resolution_proof"`
	FeedbackComments   *string           `json:"feedback_comments"`
	IsActive           bool              `json:"is_active"`
}

// IsFinal resolved y closed no admiten más transiciones desde la UI.
func (s ComplaintStatus) IsFinal() bool {
	return s == ComplaintResolved || s == ComplaintClosed
}

// Label "in_progress" -> "In Progress".
func (s ComplaintStatus) Label() string {
	return HumanizeEnum(string(s))
}

// StatusActionDisabled el botón de estado se deshabilita si y solo si el ticket es final.
func (c Complaint) StatusActionDisabled() bool {
	return c.Status.IsFinal()
}

// NextAction modal que abre el botón de estado.
func (c Complaint) NextAction() ComplaintAction {
	switch c.Status {
	case ComplaintOpen:
		return ComplaintActionProcess
	case ComplaintInProgress:
		return ComplaintActionResolve
	default:
		return ComplaintActionNone
	}
}
