package blogportal

import (
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakePGError implements pg.Error for classifier tests.
type fakePGError struct {
	code string
	msg  string
}

func (e fakePGError) Error() string { return e.msg }

func (e fakePGError) Field(f byte) string {
	if f == 'C' {
		return e.code
	}
	return ""
}

func (e fakePGError) IntegrityViolation() bool { return e.code == "23505" }

func TestClassifyCategories(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want FaultCategory
	}{
		{
			name: "cors marker",
			err:  errors.New("request blocked by CORS policy"),
			want: FaultCORS,
		},
		{
			name: "cross-origin marker",
			err:  errors.New("Cross-Origin request rejected"),
			want: FaultCORS,
		},
		{
			name: "access-control header marker",
			err:  errors.New("missing access-control-allow-origin header"),
			want: FaultCORS,
		},
		{
			name: "insufficient privilege code regardless of text",
			err:  fakePGError{code: "42501", msg: "permission denied for table blogs"},
			want: FaultRLS,
		},
		{
			name: "row-level security text",
			err:  errors.New(`new row violates row-level security for table "blogs"`),
			want: FaultRLS,
		},
		{
			name: "policy text",
			err:  errors.New("no policy allows this operation"),
			want: FaultRLS,
		},
		{
			name: "connection refused",
			err:  errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"),
			want: FaultNetwork,
		},
		{
			name: "net.Error type",
			err:  &net.OpError{Op: "read", Err: errors.New("timeout")},
			want: FaultNetwork,
		},
		{
			name: "unclassified",
			err:  errors.New("value too long for type character varying(64)"),
			want: FaultGeneric,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fault := Classify(tc.err)
			assert.Equal(t, tc.want, fault.Category)
			assert.NotEmpty(t, fault.Title)
			assert.NotEmpty(t, fault.Message)
		})
	}
}

func TestClassifyPrecedence(t *testing.T) {
	// cors beats network even when both markers are present
	fault := Classify(errors.New("cors rejected: network failure while fetching"))
	assert.Equal(t, FaultCORS, fault.Category)

	// cors beats the rls code
	fault = Classify(fakePGError{code: "42501", msg: "cors preflight failed"})
	assert.Equal(t, FaultCORS, fault.Category)

	// rls beats network
	fault = Classify(errors.New("policy rejected over broken network link"))
	assert.Equal(t, FaultRLS, fault.Category)
}

func TestClassifyGenericKeepsMessage(t *testing.T) {
	original := fmt.Errorf("db insert post: %w", errors.New("duplicate key value"))

	fault := Classify(original)
	assert.Equal(t, FaultGeneric, fault.Category)
	assert.Equal(t, "Error", fault.Title)
	assert.Equal(t, original.Error(), fault.Message)
	assert.Empty(t, fault.Docs)
}

func TestClassifyDocsLinks(t *testing.T) {
	assert.NotEmpty(t, Classify(errors.New("cors")).Docs)
	assert.NotEmpty(t, Classify(errors.New("policy")).Docs)
	assert.Empty(t, Classify(errors.New("connection refused")).Docs)
}

func TestClassifyNil(t *testing.T) {
	fault := Classify(nil)
	assert.Equal(t, FaultGeneric, fault.Category)
	assert.NotEmpty(t, fault.Message)
}
