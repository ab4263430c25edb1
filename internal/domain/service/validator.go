package service

// StructValidator checks struct tags and reports failures as a
// *domainerrors.ValidationError.
type StructValidator interface {
	Struct(s any) error
}
