package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/isp-backoffice/internal/application/billing"
	"github.com/jhoicas/isp-backoffice/internal/application/dto"
	"github.com/jhoicas/isp-backoffice/internal/application/usecase"
	"github.com/jhoicas/isp-backoffice/internal/domain"
	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
)

// WorkflowHandler diálogos de transición de estado: procesar y resolver quejas,
// completar tareas y verificar pagos.
type WorkflowHandler struct {
	base
	complaints *usecase.ComplaintUseCase
	tasks      *usecase.TaskUseCase
	recovery   *usecase.RecoveryTaskUseCase
	payments   *billing.PaymentUseCase
}

// NewWorkflowHandler construye el handler.
func NewWorkflowHandler(
	b base,
	complaints *usecase.ComplaintUseCase,
	tasks *usecase.TaskUseCase,
	recovery *usecase.RecoveryTaskUseCase,
	payments *billing.PaymentUseCase,
) *WorkflowHandler {
	return &WorkflowHandler{base: b, complaints: complaints, tasks: tasks, recovery: recovery, payments: payments}
}

func (h *WorkflowHandler) dialog(c *fiber.Ctx, active string, view dto.DialogView, status int) error {
	c.Status(status)
	return render(c, "dialog", fiber.Map{"Page": h.page(c, view.Title, active), "Dialog": view})
}

// rejectTransition vuelve al listado con un toast de error cuando el estado ya no admite la acción.
func rejectTransition(c *fiber.Ctx, back, message string) error {
	setFlash(c, "error", message)
	return c.Redirect(back, fiber.StatusSeeOther)
}

// dialogError re-renderiza el diálogo ante errores de validación; el resto sube al ErrorHandler.
func (h *WorkflowHandler) dialogError(c *fiber.Ctx, active string, view dto.DialogView, err error) error {
	if !isFormError(err) {
		return err
	}
	view.Error = userMessage(err)
	return h.dialog(c, active, view, fiber.StatusUnprocessableEntity)
}

// ── Quejas ────────────────────────────────────────────────────────────────────

func processDialog(id string) dto.DialogView {
	return dto.DialogView{
		Title:        "Process Complaint",
		Message:      "Mark this complaint as in progress?",
		Action:       "/complaints/" + id + "/process",
		CancelHref:   "/complaints",
		ConfirmLabel: "Process",
	}
}

func resolveDialog(id string) dto.DialogView {
	return dto.DialogView{
		Title:         "Resolve Complaint",
		Message:       "Describe how the complaint was resolved.",
		Action:        "/complaints/" + id + "/resolve",
		CancelHref:    "/complaints",
		ConfirmLabel:  "Resolve",
		NotesLabel:    "Resolution Notes",
		NotesRequired: true,
		AllowProof:    true,
	}
}

// complaintFor carga la queja de la ruta. Si su transición siguiente no es want,
// vuelve al listado con un toast y devuelve nil.
func (h *WorkflowHandler) complaintFor(c *fiber.Ctx, want entity.ComplaintAction) (*entity.Complaint, error) {
	cp, err := h.complaints.Get(ctx(c), c.Params("id"))
	if err != nil {
		return nil, err
	}
	if cp.NextAction() != want {
		return nil, rejectTransition(c, "/complaints", "Cannot "+string(want)+" a complaint that is "+cp.Status.Label())
	}
	return cp, nil
}

// ProcessForm GET /complaints/:id/process. Solo para quejas abiertas.
func (h *WorkflowHandler) ProcessForm(c *fiber.Ctx) error {
	cp, err := h.complaintFor(c, entity.ComplaintActionProcess)
	if cp == nil {
		return err
	}
	return h.dialog(c, "complaints", processDialog(cp.ID), fiber.StatusOK)
}

// Process POST /complaints/:id/process
func (h *WorkflowHandler) Process(c *fiber.Ctx) error {
	cp, err := h.complaintFor(c, entity.ComplaintActionProcess)
	if cp == nil {
		return err
	}
	if err := h.complaints.Process(ctx(c), cp.ID); err != nil {
		return h.dialogError(c, "complaints", processDialog(cp.ID), err)
	}
	return redirectWithFlash(c, "/complaints", "Complaint is now in progress")
}

// ResolveForm GET /complaints/:id/resolve. Solo para quejas en progreso.
func (h *WorkflowHandler) ResolveForm(c *fiber.Ctx) error {
	cp, err := h.complaintFor(c, entity.ComplaintActionResolve)
	if cp == nil {
		return err
	}
	return h.dialog(c, "complaints", resolveDialog(cp.ID), fiber.StatusOK)
}

// Resolve POST /complaints/:id/resolve. Sin notas el diálogo vuelve con error y no se
// llama al backend; con notas se revisa el estado antes de enviar.
func (h *WorkflowHandler) Resolve(c *fiber.Ctx) error {
	id := c.Params("id")
	view := resolveDialog(id)
	view.Notes = c.FormValue("notes")
	if dto.Blank(view.Notes) {
		return h.dialogError(c, "complaints", view, domain.NewValidationError("notes", usecase.MsgResolutionNotesRequired))
	}
	cp, err := h.complaintFor(c, entity.ComplaintActionResolve)
	if cp == nil {
		return err
	}
	proof, err := formFile(c, "resolution_proof")
	if err != nil {
		return err
	}
	if err := h.complaints.Resolve(ctx(c), cp.ID, view.Notes, proof); err != nil {
		return h.dialogError(c, "complaints", view, err)
	}
	return redirectWithFlash(c, "/complaints", "Complaint resolved")
}

// ── Tareas ────────────────────────────────────────────────────────────────────

func completeDialog(key, id string) dto.DialogView {
	return dto.DialogView{
		Title:         "Complete Task",
		Message:       "Add completion notes before closing the task.",
		Action:        "/" + key + "/" + id + "/complete",
		CancelHref:    "/" + key,
		ConfirmLabel:  "Complete",
		NotesLabel:    "Completion Notes",
		NotesRequired: true,
		ProofLabel:    "Completion Proof (optional)",
	}
}

// CompleteTaskForm GET /tasks/:id/complete
func (h *WorkflowHandler) CompleteTaskForm(c *fiber.Ctx) error {
	t, err := h.tasks.Get(ctx(c), c.Params("id"))
	if err != nil {
		return err
	}
	if !t.Status.IsOpen() {
		return rejectTransition(c, "/tasks", "Task is already "+t.Status.Label())
	}
	return h.dialog(c, "tasks", completeDialog("tasks", t.ID), fiber.StatusOK)
}

// CompleteTask POST /tasks/:id/complete
func (h *WorkflowHandler) CompleteTask(c *fiber.Ctx) error {
	id := c.Params("id")
	view := completeDialog("tasks", id)
	view.Notes, view.Proof = c.FormValue("notes"), c.FormValue("proof")
	if err := h.tasks.Complete(ctx(c), id, view.Notes, view.Proof); err != nil {
		return h.dialogError(c, "tasks", view, err)
	}
	return redirectWithFlash(c, "/tasks", "Task completed")
}

// CompleteRecoveryForm GET /recovery-tasks/:id/complete
func (h *WorkflowHandler) CompleteRecoveryForm(c *fiber.Ctx) error {
	r, err := h.recovery.Get(ctx(c), c.Params("id"))
	if err != nil {
		return err
	}
	if !r.Status.IsOpen() {
		return rejectTransition(c, "/recovery-tasks", "Recovery task is already "+r.Status.Label())
	}
	view := completeDialog("recovery-tasks", r.ID)
	view.Title = "Complete Recovery Task"
	return h.dialog(c, "recovery-tasks", view, fiber.StatusOK)
}

// CompleteRecovery POST /recovery-tasks/:id/complete
func (h *WorkflowHandler) CompleteRecovery(c *fiber.Ctx) error {
	id := c.Params("id")
	view := completeDialog("recovery-tasks", id)
	view.Title = "Complete Recovery Task"
	view.Notes, view.Proof = c.FormValue("notes"), c.FormValue("proof")
	if err := h.recovery.Complete(ctx(c), id, view.Notes, view.Proof); err != nil {
		return h.dialogError(c, "recovery-tasks", view, err)
	}
	return redirectWithFlash(c, "/recovery-tasks", "Recovery task completed")
}

// ── Pagos ─────────────────────────────────────────────────────────────────────

func verifyDialog(id, action string) dto.DialogView {
	return dto.DialogView{
		Title:        "Verify Payment",
		Message:      "Approve the payment or reject it with a reason.",
		Action:       "/payments/" + id + "/verify",
		CancelHref:   "/payments",
		ConfirmLabel: "Submit",
		NotesLabel:   "Notes (required when rejecting)",
		Choices: dto.Options([][2]string{
			{billing.VerifyApprove, "Approve"},
			{billing.VerifyReject, "Reject"},
		}, action),
	}
}

// VerifyForm GET /payments/:id/verify
func (h *WorkflowHandler) VerifyForm(c *fiber.Ctx) error {
	p, err := h.payments.Get(ctx(c), c.Params("id"))
	if err != nil {
		return err
	}
	if !p.AwaitingVerification() {
		return rejectTransition(c, "/payments", "Only pending payments can be verified")
	}
	return h.dialog(c, "payments", verifyDialog(p.ID, billing.VerifyApprove), fiber.StatusOK)
}

// Verify POST /payments/:id/verify
func (h *WorkflowHandler) Verify(c *fiber.Ctx) error {
	id := c.Params("id")
	action := c.FormValue("action")
	view := verifyDialog(id, action)
	view.Notes = c.FormValue("notes")
	view.Danger = action == billing.VerifyReject
	if err := h.payments.Verify(ctx(c), id, action, view.Notes); err != nil {
		return h.dialogError(c, "payments", view, err)
	}
	msg := "Payment approved"
	if action == billing.VerifyReject {
		msg = "Payment rejected"
	}
	return redirectWithFlash(c, "/payments", msg)
}

// Proof GET /payments/:id/proof
func (h *WorkflowHandler) Proof(c *fiber.Ctx) error {
	blob, err := h.payments.ProofImage(ctx(c), c.Params("id"))
	if err != nil {
		return err
	}
	return sendBlob(c, blob, "payment-proof")
}

