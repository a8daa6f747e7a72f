package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		want input
	}{
		{"0", input{kind: inputBack}},
		{"A", input{kind: inputRewrite}},
		{"a", input{kind: inputRewrite}},
		{"1", input{kind: inputChoice, choice: 1}},
		{"12", input{kind: inputChoice, choice: 12}},
		{"00", input{kind: inputFreeText, text: "00"}},
		{"-3", input{kind: inputFreeText, text: "-3"}},
		{"hola", input{kind: inputFreeText, text: "hola"}},
		{"1a", input{kind: inputFreeText, text: "1a"}},
		{"", input{kind: inputFreeText, text: ""}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.text))
		})
	}
}
