package validation

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRule struct {
	calls *int
}

func (c countingRule) Validate(string) error {
	*c.calls++
	return nil
}

func TestValidator(t *testing.T) {
	t.Run("validates with no rules", func(t *testing.T) {
		assert.NoError(t, NewValidator().Validate(""))
	})

	t.Run("stops at the first failing rule", func(t *testing.T) {
		calls := 0
		v := NewValidator().
			AddRule(NotEmpty{Reason: "empty"}).
			AddRule(countingRule{calls: &calls})

		err := v.Validate("")
		require.Error(t, err)
		assert.Equal(t, "empty", err.Error())
		assert.Equal(t, 0, calls)

		require.NoError(t, v.Validate("x"))
		assert.Equal(t, 1, calls)
	})

	t.Run("pattern reason is returned verbatim", func(t *testing.T) {
		v := NewValidator().AddRule(MatchesPattern{Pattern: nodeNamePattern, Reason: "bad name"})
		assert.EqualError(t, v.Validate("My_Node"), "bad name")
	})
}

func TestValidateProjectName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "simple", input: "my-app"},
		{name: "underscore", input: "my_app"},
		{name: "digits", input: "app2"},
		{name: "node-red prefix", input: "node-red-contrib-filter"},
		{name: "empty", input: "", wantErr: "Name cannot be empty"},
		{name: "uppercase", input: "MyApp", wantErr: "lowercase letters"},
		{name: "space", input: "my app", wantErr: "lowercase letters"},
		{name: "dot", input: "my.app", wantErr: "lowercase letters"},
		{name: "slash", input: "../app", wantErr: "lowercase letters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProjectName(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateNodeName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple", input: "my-filter"},
		{name: "digits", input: "filter2"},
		{name: "empty", input: "", wantErr: true},
		{name: "underscore", input: "my_node", wantErr: true},
		{name: "uppercase and underscore", input: "My_Node", wantErr: true},
		{name: "space", input: "my node", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNodeName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNameGrammars_Generated(t *testing.T) {
	const projectAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789-_"
	const nodeAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789-"
	rng := rand.New(rand.NewSource(42))

	gen := func(alphabet string) string {
		n := 1 + rng.Intn(24)
		var b strings.Builder
		for i := 0; i < n; i++ {
			b.WriteByte(alphabet[rng.Intn(len(alphabet))])
		}
		return b.String()
	}

	for i := 0; i < 500; i++ {
		s := gen(projectAlphabet)
		assert.NoError(t, ValidateProjectName(s), "project name %q", s)

		n := gen(nodeAlphabet)
		assert.NoError(t, ValidateNodeName(n), "node name %q", n)

		bad := s + string("A !@.$/"[rng.Intn(7)])
		assert.Error(t, ValidateProjectName(bad), "project name %q", bad)
		assert.Error(t, ValidateNodeName(bad), "node name %q", bad)
	}
}
