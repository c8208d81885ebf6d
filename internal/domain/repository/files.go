package repository

// File archivo recibido de un formulario que se reenvía al backend como parte multipart.
type File struct {
	Field       string // nombre del campo en el backend (cnic_front_image, payment_proof...)
	Name        string
	ContentType string
	Data        []byte
}

// MultipartForm cuerpo multipart: campos planos + archivos.
// Cualquier payload de tipo *MultipartForm se envía como multipart/form-data; el resto como JSON.
type MultipartForm struct {
	Fields map[string]string
	Files  []File
}

// NewMultipartForm construye un formulario vacío.
func NewMultipartForm() *MultipartForm {
	return &MultipartForm{Fields: map[string]string{}}
}

// Set agrega un campo; los valores vacíos se omiten.
func (f *MultipartForm) Set(key, value string) *MultipartForm {
	if value != "" {
		f.Fields[key] = value
	}
	return f
}

// Attach agrega un archivo si existe.
func (f *MultipartForm) Attach(file *File) *MultipartForm {
	if file != nil && len(file.Data) > 0 {
		f.Files = append(f.Files, *file)
	}
	return f
}

// Blob contenido binario descargado del backend (imágenes CNIC, comprobantes).
type Blob struct {
	ContentType string
	Filename    string
	Data        []byte
}
