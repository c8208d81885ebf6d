package dto

import "github.com/jhoicas/isp-backoffice/internal/domain/entity"

// Page datos comunes del layout (sidebar, topbar, toasts).
type Page struct {
	Title          string
	Active         string // clave del ítem de navegación resaltado
	User           *SessionUser
	Flash          *Flash
	Error          string
	RefreshSeconds int // >0 agrega <meta http-equiv="refresh">
	CompanyName    string
}

// SessionUser usuario mostrado en la topbar.
type SessionUser struct {
	Name      string
	Role      string
	CompanyID string
}

// Flash mensaje de una sola lectura tras una mutación (toast).
type Flash struct {
	Kind    string // success | error
	Message string
}

// ── Tablas ────────────────────────────────────────────────────────────────────

// Table listado genérico; también es la fuente de los exportes CSV/XLSX.
type Table struct {
	Title      string
	Headers    []string
	Rows       []TableRow
	CreateHref string
	ExportHref string // sin extensión; se agrega .csv / .xlsx
	Empty      string
}

// TableRow una fila por elemento devuelto por el backend.
type TableRow struct {
	ID      string
	Cells   []Cell
	Actions []RowAction
}

// Cell texto de celda; Badge es la variante de color del estado (si aplica).
type Cell struct {
	Text  string
	Badge string
	Href  string
}

// RowAction botón de fila. Method "post" se renderiza como formulario.
type RowAction struct {
	Label    string
	Href     string
	Method   string
	Confirm  string
	Disabled bool
	Kind     string // primary | danger | neutral
}

// Records encabezados + filas en texto plano.
func (t Table) Records() [][]string {
	out := make([][]string, 0, len(t.Rows)+1)
	out = append(out, t.Headers)
	for _, r := range t.Rows {
		rec := make([]string, len(r.Cells))
		for i, c := range r.Cells {
			rec[i] = c.Text
		}
		out = append(out, rec)
	}
	return out
}

// ── Formularios ───────────────────────────────────────────────────────────────

// FormView formulario renderizado.
type FormView struct {
	Title      string
	Action     string
	CancelHref string
	Submit     string
	Multipart  bool
	Fields     []Field
	Error      string
	ErrorField string
}

// Field campo del formulario. Type: text, email, number, date, password, textarea,
// select, multiselect, combobox, file.
type Field struct {
	Name        string
	Label       string
	Type        string
	Value       string
	Values      []string
	Placeholder string
	Accept      string
	Step        string
	Required    bool
	Options     []Option
}

// Option opción de select.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Options construye opciones marcando las seleccionadas.
func Options(pairs [][2]string, selected ...string) []Option {
	sel := make(map[string]bool, len(selected))
	for _, s := range selected {
		sel[s] = true
	}
	out := make([]Option, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, Option{Value: p[0], Label: p[1], Selected: sel[p[0]]})
	}
	return out
}

// EnumOptions opciones para valores snake_case con etiqueta humanizada.
func EnumOptions(values []string, selected ...string) []Option {
	pairs := make([][2]string, 0, len(values))
	for _, v := range values {
		pairs = append(pairs, [2]string{v, entity.HumanizeEnum(v)})
	}
	return Options(pairs, selected...)
}

// ── Diálogos ──────────────────────────────────────────────────────────────────

// DialogView confirmación de una transición (procesar, resolver, completar, verificar).
type DialogView struct {
	Title         string
	Message       string
	Action        string
	CancelHref    string
	ConfirmLabel  string
	NotesLabel    string
	Notes         string
	NotesRequired bool
	AllowProof    bool   // adjunto de prueba opcional
	ProofLabel    string // prueba como texto (enlace o referencia); vacío la oculta
	Proof         string
	Choices       []Option
	Danger        bool
	Error         string
}

// ConfirmDisabled el botón confirmar queda deshabilitado mientras las notas obligatorias estén vacías.
func (d DialogView) ConfirmDisabled() bool {
	return d.NotesRequired && Blank(d.Notes)
}
