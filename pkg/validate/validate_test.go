package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type registerInput struct {
	Name     string  `json:"name"     validate:"required,max=255"`
	Email    string  `json:"email"    validate:"required,email"`
	Photo    string  `json:"photo"    validate:"nullable,url"`
	Password string  `json:"password" validate:"nullable,min=6"`
	Price    float64 `json:"price"    validate:"gt=0"`
}

func TestStructValid(t *testing.T) {
	errs := Struct(registerInput{
		Name:  "Guest",
		Email: "guest@bistro.test",
		Photo: "https://img.test/guest.png",
		Price: 9.5,
	})

	assert.False(t, HasErrors(errs))
}

func TestStructRequired(t *testing.T) {
	errs := Struct(registerInput{Price: 1})

	assert.Equal(t, "The name field is required.", errs["name"])
	assert.Equal(t, "The email field is required.", errs["email"])
}

func TestStructEmail(t *testing.T) {
	errs := Struct(registerInput{Name: "Guest", Email: "not-an-email", Price: 1})
	assert.Equal(t, "The email field must be a valid email address.", errs["email"])
}

func TestStructNullableSkipsEmpty(t *testing.T) {
	errs := Struct(registerInput{Name: "Guest", Email: "guest@bistro.test", Price: 1})

	_, photoFailed := errs["photo"]
	_, passwordFailed := errs["password"]
	assert.False(t, photoFailed)
	assert.False(t, passwordFailed)
}

func TestStructNullableValidatesWhenPresent(t *testing.T) {
	errs := Struct(registerInput{
		Name:     "Guest",
		Email:    "guest@bistro.test",
		Photo:    "ftp://wrong-scheme.test/a.png",
		Password: "shrt",
		Price:    1,
	})

	assert.Equal(t, "The photo field must be a valid URL.", errs["photo"])
	assert.Equal(t, "The password field must be at least 6 characters.", errs["password"])
}

func TestStructGreaterThan(t *testing.T) {
	errs := Struct(registerInput{Name: "Guest", Email: "guest@bistro.test", Price: 0})
	assert.Equal(t, "The price field must be greater than 0.", errs["price"])

	errs = Struct(registerInput{Name: "Guest", Email: "guest@bistro.test", Price: 0.01})
	_, priceFailed := errs["price"]
	assert.False(t, priceFailed)
}

func TestStructFirstFailingRuleWins(t *testing.T) {
	// Empty email fails required before the email rule runs.
	errs := Struct(registerInput{Name: "Guest", Price: 1})
	assert.Equal(t, "The email field is required.", errs["email"])
}

func TestStructPointerInput(t *testing.T) {
	errs := Struct(&registerInput{Name: "Guest", Email: "guest@bistro.test", Price: 1})
	assert.False(t, HasErrors(errs))
}

func TestStructNonStructInput(t *testing.T) {
	assert.Empty(t, Struct("just a string"))
	assert.Empty(t, Struct(42))
}

func TestStructInRule(t *testing.T) {
	type input struct {
		Role string `json:"role" validate:"required,in=admin|user"`
	}

	assert.Empty(t, Struct(input{Role: "admin"}))
	assert.Empty(t, Struct(input{Role: "user"}))
	assert.Equal(t, "The selected role is invalid.", Struct(input{Role: "chef"})["role"])
}
