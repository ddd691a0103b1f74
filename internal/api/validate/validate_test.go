package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func fields(t *testing.T, err error) []string {
	t.Helper()
	require.Error(t, err)
	var errs Errs
	require.ErrorAs(t, err, &errs)
	out := make([]string, len(errs))
	for i, ef := range errs {
		out[i] = ef.Field
	}
	return out
}

func TestRegisterRequest(t *testing.T) {
	ok := RegisterRequest{Username: ptr("alice"), Email: ptr("alice@x.com"), Password: ptr("secret1")}
	assert.NoError(t, ok.Validate())

	cases := []struct {
		name  string
		req   RegisterRequest
		field string
	}{
		{"short username", RegisterRequest{ptr("ab"), ptr("a@x.com"), ptr("secret1")}, "username"},
		{"long username", RegisterRequest{ptr(strings.Repeat("u", 51)), ptr("a@x.com"), ptr("secret1")}, "username"},
		{"bad email", RegisterRequest{ptr("alice"), ptr("invalid-email"), ptr("secret1")}, "email"},
		{"short password", RegisterRequest{ptr("alice"), ptr("a@x.com"), ptr("12345")}, "password"},
		{"long password", RegisterRequest{ptr("alice"), ptr("a@x.com"), ptr(strings.Repeat("p", 101))}, "password"},
		{"missing username", RegisterRequest{nil, ptr("a@x.com"), ptr("secret1")}, "username"},
		{"missing email", RegisterRequest{ptr("alice"), nil, ptr("secret1")}, "email"},
		{"missing password", RegisterRequest{ptr("alice"), ptr("a@x.com"), nil}, "password"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, []string{tc.field}, fields(t, tc.req.Validate()))
		})
	}
}

func TestRegisterRequest_Boundaries(t *testing.T) {
	req := RegisterRequest{ptr("abc"), ptr("a@x.co"), ptr("123456")}
	assert.NoError(t, req.Validate())

	req = RegisterRequest{ptr(strings.Repeat("u", 50)), ptr("a@x.co"), ptr(strings.Repeat("p", 100))}
	assert.NoError(t, req.Validate())

	// three characters, more than three bytes
	req = RegisterRequest{ptr("äöü"), ptr("a@x.co"), ptr("123456")}
	assert.NoError(t, req.Validate())
}

func TestEmail(t *testing.T) {
	for _, good := range []string{"alice@x.com", "first.last+tag@sub.example.org", "a_b@ex-ample.io"} {
		assert.Nil(t, Email("email", good), good)
	}
	for _, bad := range []string{"", "alice", "alice@", "@x.com", "alice@x", "a..b@x.com", ".a@x.com", "a b@x.com", "alice@-x.com"} {
		assert.NotNil(t, Email("email", bad), bad)
	}
}

func TestLoginRequest(t *testing.T) {
	assert.NoError(t, LoginRequest{ptr("alice"), ptr("")}.Validate())
	assert.Equal(t, []string{"username", "password"}, fields(t, LoginRequest{}.Validate()))
}

func TestCalculationCreate(t *testing.T) {
	assert.NoError(t, CalculationCreate{ptr("add"), ptr(5.0), ptr(3.0)}.Validate())
	assert.NoError(t, CalculationCreate{ptr("add"), ptr(5.0), ptr(0.0)}.Validate())
	assert.NoError(t, CalculationCreate{ptr("divide"), ptr(0.0), ptr(2.0)}.Validate())

	assert.Equal(t, []string{"operation"}, fields(t, CalculationCreate{ptr("power"), ptr(1.0), ptr(2.0)}.Validate()))
	assert.Equal(t, []string{"operand2"}, fields(t, CalculationCreate{ptr("divide"), ptr(10.0), ptr(0.0)}.Validate()))
	assert.Equal(t, []string{"operation", "operand1", "operand2"}, fields(t, CalculationCreate{}.Validate()))
}

func TestCalculationUpdate(t *testing.T) {
	assert.NoError(t, CalculationUpdate{}.Validate())
	assert.NoError(t, CalculationUpdate{Operand2: ptr(0.0)}.Validate(), "stored operation is checked after the merge")
	assert.NoError(t, CalculationUpdate{Operation: ptr("multiply"), Operand2: ptr(0.0)}.Validate())

	assert.Equal(t, []string{"operation"}, fields(t, CalculationUpdate{Operation: ptr("root")}.Validate()))
	assert.Equal(t, []string{"operand2"}, fields(t, CalculationUpdate{Operation: ptr("divide"), Operand2: ptr(0.0)}.Validate()))
}

func TestCalculationUpdatePatch(t *testing.T) {
	p := CalculationUpdate{Operand1: ptr(4.0)}.Patch()
	assert.Nil(t, p.Operation)
	assert.Nil(t, p.Operand2)
	require.NotNil(t, p.Operand1)
	assert.Equal(t, 4.0, *p.Operand1)
}

func TestErrsError(t *testing.T) {
	errs := Errs{{Field: "a", Msg: "x"}, {Field: "b", Msg: "y"}}
	assert.Equal(t, "a: x; b: y", errs.Error())
	assert.Nil(t, Errs(nil).Err())
}

func TestIntBounds(t *testing.T) {
	assert.Nil(t, MinInt("skip", 0, 0))
	assert.NotNil(t, MinInt("skip", -1, 0))
	assert.Nil(t, MaxInt("limit", 1000, 1000))
	assert.NotNil(t, MaxInt("limit", 1001, 1000))
}
