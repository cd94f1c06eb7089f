package validators

import (
	"fmt"

	"github.com/modelgen/modelgen/pkg/model"
)

// EntityValidator validates the shape of a single entity
type EntityValidator struct {
	FieldValidator *FieldValidator
}

// Validate checks that the entity can be keyed and that its fields are well formed
func (ev *EntityValidator) Validate(obj *model.Entity) error {
	if IsBlank(obj.Name) {
		return ErrEntityNameEmpty
	}
	if !HasNoSpaces(obj.Name) {
		return fmt.Errorf("%w: %q", ErrEntityNameHasSpaces, obj.Name)
	}

	seen := make(map[string]bool, len(obj.Fields))
	for i := range obj.Fields {
		field := &obj.Fields[i]
		if err := ev.FieldValidator.Validate(field); err != nil {
			return fmt.Errorf("entity %s, field %d: %w", obj.Name, i, err)
		}
		if seen[field.Name] {
			return fmt.Errorf("%w: %s.%s", ErrDuplicateField, obj.Name, field.Name)
		}
		seen[field.Name] = true
	}
	return nil
}

// NewEntityValidator creates a new EntityValidator instance
func NewEntityValidator() *EntityValidator {
	return &EntityValidator{
		FieldValidator: NewFieldValidator(),
	}
}

// FieldValidator validates the shape of a single field
type FieldValidator struct{}

// Validate checks that the field has a usable name. Unknown type tokens are
// not an error; every generator has a fallback for them.
func (fv *FieldValidator) Validate(obj *model.Field) error {
	if IsBlank(obj.Name) {
		return ErrFieldNameEmpty
	}
	return nil
}

// NewFieldValidator creates a new FieldValidator instance
func NewFieldValidator() *FieldValidator {
	return &FieldValidator{}
}

// ModelValidator aggregates the entity and field validators so a whole canonical
// model can be checked from a single entry point. Violations are hard failures:
// generation cannot key its output without unique, non-empty names.
type ModelValidator struct {
	EntityValidator *EntityValidator
}

func NewModelValidator() *ModelValidator {
	return &ModelValidator{
		EntityValidator: NewEntityValidator(),
	}
}

func (mv *ModelValidator) Validate(obj *model.Model) error {
	seen := make(map[string]bool, len(obj.Entities))
	for i := range obj.Entities {
		entity := &obj.Entities[i]
		if err := mv.EntityValidator.Validate(entity); err != nil {
			return err
		}
		if seen[entity.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateEntity, entity.Name)
		}
		seen[entity.Name] = true
	}
	return nil
}

// ValidateModel validates a canonical model using the default validators
func ValidateModel(m *model.Model) error {
	if m == nil {
		return nil
	}
	return NewModelValidator().Validate(m)
}
