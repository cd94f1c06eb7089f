package validators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/modelgen/modelgen/internal/validators"
	"github.com/modelgen/modelgen/pkg/model"
)

func TestModelValidator_Validate(t *testing.T) {
	validator := validators.NewModelValidator()

	tests := []struct {
		name          string
		model         model.Model
		expectedError error
	}{
		{
			name: "valid model",
			model: model.Model{
				Entities: []model.Entity{
					{Name: "user", TableName: "users", Fields: []model.Field{{Name: "id", Type: "number"}}},
					{Name: "order", TableName: "orders", Fields: []model.Field{{Name: "total", Type: "bogus"}}},
				},
			},
		},
		{
			name:  "empty model",
			model: model.Model{},
		},
		{
			name: "entity without name",
			model: model.Model{
				Entities: []model.Entity{{Name: "  ", TableName: "things"}},
			},
			expectedError: validators.ErrEntityNameEmpty,
		},
		{
			name: "entity name with spaces",
			model: model.Model{
				Entities: []model.Entity{{Name: "line item", TableName: "line_items"}},
			},
			expectedError: validators.ErrEntityNameHasSpaces,
		},
		{
			name: "duplicate entity",
			model: model.Model{
				Entities: []model.Entity{{Name: "user"}, {Name: "user"}},
			},
			expectedError: validators.ErrDuplicateEntity,
		},
		{
			name: "field without name",
			model: model.Model{
				Entities: []model.Entity{{Name: "user", Fields: []model.Field{{Type: "string"}}}},
			},
			expectedError: validators.ErrFieldNameEmpty,
		},
		{
			name: "duplicate field",
			model: model.Model{
				Entities: []model.Entity{{Name: "user", Fields: []model.Field{{Name: "email"}, {Name: "email"}}}},
			},
			expectedError: validators.ErrDuplicateField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Validate(&tt.model)
			if tt.expectedError == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expectedError)
			}
		})
	}
}

func TestValidateModel_Nil(t *testing.T) {
	assert.NoError(t, validators.ValidateModel(nil))
}

func TestHasNoSpaces(t *testing.T) {
	assert.True(t, validators.HasNoSpaces("order_item"))
	assert.False(t, validators.HasNoSpaces("order item"))
	assert.False(t, validators.HasNoSpaces("order\titem"))
}
