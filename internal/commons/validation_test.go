package commons

import (
	"testing"

	apperrors "meatshop/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lineItem struct {
	Quantity int `json:"quantity" validate:"gte=1,lte=10"`
}

type sampleRequest struct {
	Name  string     `json:"name" validate:"required,max=5"`
	Price *float64   `json:"price" validate:"required,gte=0"`
	Items []lineItem `json:"items" validate:"max=2,dive"`
}

func TestValidate_OK(t *testing.T) {
	price := 0.0
	err := Validate(sampleRequest{Name: "Mutton", Price: &price, Items: []lineItem{{Quantity: 1}}})

	assert.NoError(t, err)
}

func TestValidate_CollectsDetailsByJSONPath(t *testing.T) {
	price := -1.0
	err := Validate(sampleRequest{Price: &price, Items: []lineItem{{Quantity: 1}, {Quantity: 0}}})

	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)

	fields := map[string]string{}
	for _, d := range ve.Details {
		fields[d.Field] = d.Message
	}

	assert.Equal(t, "name is required", fields["name"])
	assert.Equal(t, "price must be greater than or equal to 0", fields["price"])
	assert.Equal(t, "items[1].quantity must be greater than or equal to 1", fields["items[1].quantity"])
}

func TestValidate_RequiredPointer(t *testing.T) {
	err := Validate(sampleRequest{Name: "Mutton"})

	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	require.Len(t, ve.Details, 1)
	assert.Equal(t, "price", ve.Details[0].Field)
}

func TestValidate_UpperBounds(t *testing.T) {
	price := 1.0
	err := Validate(sampleRequest{
		Name:  "Chicken",
		Price: &price,
		Items: []lineItem{{Quantity: 11}, {Quantity: 1}, {Quantity: 1}},
	})

	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)

	fields := map[string]string{}
	for _, d := range ve.Details {
		fields[d.Field] = d.Message
	}

	assert.Equal(t, "name must be at most 5 characters", fields["name"])
	assert.Equal(t, "items must have at most 2 entries", fields["items"])

	err = Validate(sampleRequest{Name: "Wings", Price: &price, Items: []lineItem{{Quantity: 11}}})
	ve, ok = apperrors.IsValidationError(err)
	require.True(t, ok)
	require.Len(t, ve.Details, 1)
	assert.Equal(t, "items[0].quantity must be less than or equal to 10", ve.Details[0].Message)
}
